package orginfo

import (
	"context"
	"time"

	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const docID = "org_info"

// Store 組織資訊 (單一文件)
type Store struct {
	col *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{col: db.Collection(database.ColOrgInfo)}
}

// Get - 取得組織資訊, 尚未設定時回傳預設值
func (s *Store) Get(ctx context.Context) (*models.OrgInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var info models.OrgInfo
	err := s.col.FindOne(ctx, bson.M{"_id": docID}).Decode(&info)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.OrgInfo{ID: docID, OrgName: "課堂簽到系統"}, nil
		}
		return nil, err
	}
	return &info, nil
}

// Update - 更新組織資訊 (upsert)
func (s *Store) Update(ctx context.Context, info *models.OrgInfo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"orgName": info.OrgName,
		"manager": info.Manager,
		"contact": info.Contact,
	}}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": docID}, update, options.Update().SetUpsert(true))
	return err
}
