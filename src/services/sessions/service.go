package sessions

import (
	"context"
	"time"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store 課程週次資料存取
type Store struct {
	col *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{col: db.Collection(database.ColSessions)}
}

// Create - 新增週次, 同一課堂的週次不可重複
func (s *Store) Create(ctx context.Context, classID primitive.ObjectID, in models.SessionInput) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session := models.Session{
		ID:        primitive.NewObjectID(),
		ClassID:   classID,
		Week:      in.Week,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if _, err := s.col.InsertOne(ctx, session); err != nil {
		// unique index on (classId, week), a concurrent insert loses here
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateWeek
		}
		return nil, err
	}
	return &session, nil
}

// ListByClass - 課堂的所有週次, 依週次排序
func (s *Store) ListByClass(ctx context.Context, classID primitive.ObjectID) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{"classId": classID},
		options.Find().SetSort(bson.D{{Key: "week", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var list []models.Session
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID - 依 ID 取得週次
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.Session
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}
