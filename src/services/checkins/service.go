package checkins

import (
	"context"
	"sort"
	"time"

	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store 簽到紀錄資料存取
// 每個 (sessionId, attendeeId) 最多一筆, 由唯一索引保證. 簽到/簽退都是單一
// atomic 操作, 兩台終端機同時刷同一張卡時只有一邊會成功.
type Store struct {
	col       *mongo.Collection
	attendees *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		col:       db.Collection(database.ColCheckins),
		attendees: db.Collection(database.ColAttendees),
	}
}

// Get - 取得紀錄, 不存在時回 (nil, nil)
func (s *Store) Get(ctx context.Context, sessionID, attendeeID primitive.ObjectID) (*models.CheckinRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.CheckinRecord
	err := s.col.FindOne(ctx, bson.M{"sessionId": sessionID, "attendeeId": attendeeID}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// GetOrDefault - 取得紀錄, 不存在時回零值 (NotStarted)
func (s *Store) GetOrDefault(ctx context.Context, sessionID, attendeeID primitive.ObjectID) (models.CheckinRecord, error) {
	rec, err := s.Get(ctx, sessionID, attendeeID)
	if err != nil {
		return models.CheckinRecord{}, err
	}
	if rec == nil {
		return models.CheckinRecord{SessionID: sessionID, AttendeeID: attendeeID}, nil
	}
	return *rec, nil
}

// CheckIn - 簽到: lazy 建立紀錄. 回傳 false 表示紀錄已存在
// (同張卡幾乎同時刷兩次, 後到的那次在唯一索引上撞掉).
func (s *Store) CheckIn(ctx context.Context, sessionID, attendeeID primitive.ObjectID, t time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rec := models.CheckinRecord{
		ID:          primitive.NewObjectID(),
		SessionID:   sessionID,
		AttendeeID:  attendeeID,
		CheckInTime: &t,
	}
	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckOut - 簽退: 只在已簽到且未簽退時寫入. 回傳 false 表示狀態已被別人改走
func (s *Store) CheckOut(ctx context.Context, sessionID, attendeeID primitive.ObjectID, t time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"sessionId":    sessionID,
		"attendeeId":   attendeeID,
		"checkInTime":  bson.M{"$ne": nil},
		"checkOutTime": nil, // null matches both missing and explicit null
	}
	res, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"checkOutTime": t}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// Reset - 管理員重置: 直接刪掉該筆紀錄, 不走 Resolve 的狀態機
func (s *Store) Reset(ctx context.Context, sessionID, attendeeID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.col.DeleteOne(ctx, bson.M{"sessionId": sessionID, "attendeeId": attendeeID})
	return err
}

// ListBySession - 該週次的所有紀錄, join 學員後依姓名排序
func (s *Store) ListBySession(ctx context.Context, sessionID primitive.ObjectID) ([]models.CheckinRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	var recs []models.CheckinRecord
	if err = cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return []models.CheckinRow{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(recs))
	byAttendee := make(map[primitive.ObjectID]models.CheckinRecord, len(recs))
	for _, r := range recs {
		ids = append(ids, r.AttendeeID)
		byAttendee[r.AttendeeID] = r
	}

	acursor, err := s.attendees.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var people []models.Attendee
	if err = acursor.All(ctx, &people); err != nil {
		return nil, err
	}

	rows := make([]models.CheckinRow, 0, len(people))
	for _, a := range people {
		rows = append(rows, models.CheckinRow{Attendee: a, Record: byAttendee[a.ID]})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Attendee.Name < rows[j].Attendee.Name })
	return rows, nil
}

// CountCheckedIn - 名冊內已簽到人數
func (s *Store) CountCheckedIn(ctx context.Context, sessionID primitive.ObjectID, rosterIDs []primitive.ObjectID) (int64, error) {
	return s.countWith(ctx, sessionID, rosterIDs, "checkInTime")
}

// CountCheckedOut - 名冊內已簽退人數
func (s *Store) CountCheckedOut(ctx context.Context, sessionID primitive.ObjectID, rosterIDs []primitive.ObjectID) (int64, error) {
	return s.countWith(ctx, sessionID, rosterIDs, "checkOutTime")
}

func (s *Store) countWith(ctx context.Context, sessionID primitive.ObjectID, rosterIDs []primitive.ObjectID, field string) (int64, error) {
	if len(rosterIDs) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return s.col.CountDocuments(ctx, bson.M{
		"sessionId":  sessionID,
		"attendeeId": bson.M{"$in": rosterIDs},
		field:        bson.M{"$ne": nil},
	})
}
