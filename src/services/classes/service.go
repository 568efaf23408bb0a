package classes

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

// Store 課堂資料存取
type Store struct {
	col      *mongo.Collection
	sessions *mongo.Collection
	roster   *mongo.Collection
	checkins *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		col:      db.Collection(database.ColClasses),
		sessions: db.Collection(database.ColSessions),
		roster:   db.Collection(database.ColRoster),
		checkins: db.Collection(database.ColCheckins),
	}
}

// Create - 新增課堂
func (s *Store) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	class.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// GetAll - 取得所有課堂
func (s *Store) GetAll(ctx context.Context) ([]models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var list []models.Class
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID - 依 ID 取得課堂
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var class models.Class
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

// Update - 更新課堂名稱
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name string) (*models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete - 刪除課堂, 依序清掉底下的簽到紀錄 / 週次 / 名單 (dependency order)
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	// 先撈出課堂的所有週次, 簽到紀錄掛在週次底下
	cursor, err := s.sessions.Find(ctx, bson.M{"classId": id},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return err
	}
	var sessionDocs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &sessionDocs); err != nil {
		return err
	}
	sessionIDs := make([]primitive.ObjectID, 0, len(sessionDocs))
	for _, d := range sessionDocs {
		sessionIDs = append(sessionIDs, d.ID)
	}

	if len(sessionIDs) > 0 {
		if _, err := s.checkins.DeleteMany(ctx, bson.M{"sessionId": bson.M{"$in": sessionIDs}}); err != nil {
			return err
		}
	}
	if _, err := s.sessions.DeleteMany(ctx, bson.M{"classId": id}); err != nil {
		return err
	}
	if _, err := s.roster.DeleteMany(ctx, bson.M{"classId": id}); err != nil {
		return err
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
