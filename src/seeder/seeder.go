package seeder

import (
	"context"
	"log"

	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/auth"
	"Backend-CourseSignin/src/services/schema"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedDefaults 建立預設資料: 內建自訂欄位 / 預設帳號 / 組織資訊
// 已有資料時不重複建立, 重啟服務不會洗掉使用者改過的設定
func SeedDefaults(db *mongo.Database) error {
	ctx := context.Background()

	if err := seedCustomFields(ctx, db); err != nil {
		return err
	}
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	if err := seedOrgInfo(ctx, db); err != nil {
		return err
	}
	return nil
}

func seedCustomFields(ctx context.Context, db *mongo.Database) error {
	count, err := db.Collection(database.ColCustomFields).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	store := schema.NewStore(db)
	defaults := []models.CustomFieldInput{
		{Name: "性別", Type: models.FieldTypeSelect, Required: false, Options: []string{"男", "女", "其他"}},
		{Name: "住址", Type: models.FieldTypeText},
		{Name: "連絡電話", Type: models.FieldTypeText},
		{Name: "身分證號", Type: models.FieldTypeText},
		{Name: "餐飲葷素", Type: models.FieldTypeSelect, Options: []string{"葷食", "素食"}},
	}
	for _, in := range defaults {
		if _, err := store.DefineField(ctx, in); err != nil {
			return err
		}
	}
	log.Println("✅ Default custom fields seeded")
	return nil
}

func seedUsers(ctx context.Context, db *mongo.Database) error {
	count, err := db.Collection(database.ColUsers).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	svc := auth.NewService(db)
	if _, err := svc.CreateUser(ctx, "admin", "admin123", "admin"); err != nil {
		return err
	}
	if _, err := svc.CreateUser(ctx, "user", "user123", "user"); err != nil {
		return err
	}
	log.Println("✅ Default users seeded (admin / user)")
	return nil
}

func seedOrgInfo(ctx context.Context, db *mongo.Database) error {
	count, err := db.Collection(database.ColOrgInfo).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	doc := models.OrgInfo{ID: "org_info", OrgName: "課堂簽到系統"}
	if _, err := db.Collection(database.ColOrgInfo).InsertOne(ctx, doc); err != nil {
		return err
	}
	log.Println("✅ Org info seeded")
	return nil
}
