package rosters

import (
	"context"
	"time"

	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store 課堂名冊 (報名關係) 資料存取
type Store struct {
	col       *mongo.Collection
	attendees *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		col:       db.Collection(database.ColRoster),
		attendees: db.Collection(database.ColAttendees),
	}
}

// Enroll - 報名, idempotent: 已報名者再報名是 no-op
func (s *Store) Enroll(ctx context.Context, classID, attendeeID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"classId": classID, "attendeeId": attendeeID}
	update := bson.M{"$setOnInsert": bson.M{"classId": classID, "attendeeId": attendeeID}}
	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// lost an upsert race with an identical enroll, same outcome
		return nil
	}
	return err
}

// Unenroll - 取消報名
func (s *Store) Unenroll(ctx context.Context, classID, attendeeID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.col.DeleteOne(ctx, bson.M{"classId": classID, "attendeeId": attendeeID})
	return err
}

// IsEnrolled - 是否已報名該課堂
func (s *Store) IsEnrolled(ctx context.Context, classID, attendeeID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := s.col.CountDocuments(ctx, bson.M{"classId": classID, "attendeeId": attendeeID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemberIDs - 課堂名冊的學員 ID 清單
func (s *Store) MemberIDs(ctx context.Context, classID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{"classId": classID})
	if err != nil {
		return nil, err
	}
	var entries []models.RosterEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.AttendeeID)
	}
	return ids, nil
}

// Count - 名冊人數 (應到人數)
func (s *Store) Count(ctx context.Context, classID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.col.CountDocuments(ctx, bson.M{"classId": classID})
}

// ListRoster - 課堂名冊, 依姓名排序
func (s *Store) ListRoster(ctx context.Context, classID primitive.ObjectID) ([]models.Attendee, error) {
	ids, err := s.MemberIDs(ctx, classID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Attendee{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.attendees.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var list []models.Attendee
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
