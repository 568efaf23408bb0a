package schema

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

// Store 自訂欄位定義的資料存取
// Options live inside the field document, so deleting a field drops them with
// it; attendee values are cascaded explicitly.
type Store struct {
	fields *mongo.Collection
	values *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		fields: db.Collection(database.ColCustomFields),
		values: db.Collection(database.ColAttendeeValues),
	}
}

// DefineField - 新增自訂欄位, 欄位名稱不可重複
func (s *Store) DefineField(ctx context.Context, in models.CustomFieldInput) (*models.CustomField, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if in.Type != models.FieldTypeText && in.Type != models.FieldTypeSelect {
		return nil, apperrors.ErrInvalidFieldType
	}

	order, err := s.nextDisplayOrder(ctx)
	if err != nil {
		return nil, err
	}

	field := models.CustomField{
		ID:           primitive.NewObjectID(),
		Name:         in.Name,
		Type:         in.Type,
		Required:     in.Required,
		DisplayOrder: order,
	}
	if in.Type == models.FieldTypeSelect {
		field.Options = buildOptions(in.Options)
	}

	if _, err := s.fields.InsertOne(ctx, field); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateField
		}
		return nil, err
	}
	return &field, nil
}

// DeleteField - 刪除欄位並 cascade: 先清學員值, 再刪定義 (選項隨文件一併刪除)
func (s *Store) DeleteField(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := s.values.DeleteMany(ctx, bson.M{"fieldId": id}); err != nil {
		return err
	}
	res, err := s.fields.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListFields - 所有欄位, 依 displayOrder 再依建立順序排序
func (s *Store) ListFields(ctx context.Context) ([]models.CustomField, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.fields.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var list []models.CustomField
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetField - 依 ID 取得欄位
func (s *Store) GetField(ctx context.Context, id primitive.ObjectID) (*models.CustomField, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var field models.CustomField
	err := s.fields.FindOne(ctx, bson.M{"_id": id}).Decode(&field)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &field, nil
}

// AddOption - 為選項型欄位加選項, 文字欄位會回錯誤.
// 順位在單一 update pipeline 內算出, 並發新增不會拿到相同順位.
func (s *Store) AddOption(ctx context.Context, fieldID primitive.ObjectID, value string) error {
	field, err := s.GetField(ctx, fieldID)
	if err != nil {
		return err
	}
	if field.Type != models.FieldTypeSelect {
		return apperrors.ErrInvalidFieldType
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = s.fields.UpdateOne(ctx, bson.M{"_id": fieldID}, appendOptionUpdate(value))
	return err
}

// appendOptionUpdate 把新選項接到 options 尾端, displayOrder 取現有最大值加一
func appendOptionUpdate(value string) mongo.Pipeline {
	return mongo.Pipeline{bson.D{{Key: "$set", Value: bson.M{
		"options": bson.M{"$concatArrays": bson.A{
			bson.M{"$ifNull": bson.A{"$options", bson.A{}}},
			bson.A{bson.M{
				"value": value,
				"displayOrder": bson.M{"$add": bson.A{
					bson.M{"$ifNull": bson.A{bson.M{"$max": "$options.displayOrder"}, 0}},
					1,
				}},
			}},
		}},
	}}}}
}

// buildOptions 依輸入順序編排選項, 順位從 1 起算
func buildOptions(values []string) []models.FieldOption {
	opts := make([]models.FieldOption, 0, len(values))
	for i, v := range values {
		opts = append(opts, models.FieldOption{Value: v, DisplayOrder: i + 1})
	}
	return opts
}

// nextDisplayOrder 取目前最大 displayOrder 加一
func (s *Store) nextDisplayOrder(ctx context.Context) (int, error) {
	var top models.CustomField
	err := s.fields.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "displayOrder", Value: -1}})).Decode(&top)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return top.DisplayOrder + 1, nil
}
