package attendees

import (
	"context"
	"time"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/identity"
	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store 學員資料存取, 持有掃描碼 seed
type Store struct {
	col      *mongo.Collection
	values   *mongo.Collection
	roster   *mongo.Collection
	checkins *mongo.Collection
	seed     string
}

func NewStore(db *mongo.Database, seed string) *Store {
	return &Store{
		col:      db.Collection(database.ColAttendees),
		values:   db.Collection(database.ColAttendeeValues),
		roster:   db.Collection(database.ColRoster),
		checkins: db.Collection(database.ColCheckins),
		seed:     seed,
	}
}

// Create - 新增學員, 姓名全庫唯一, 掃描碼由姓名加 seed 導出
func (s *Store) Create(ctx context.Context, in models.AttendeeInput) (*models.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	a := models.Attendee{
		ID:         primitive.NewObjectID(),
		Name:       in.Name,
		Department: in.Department,
		Gender:     in.Gender,
		Address:    in.Address,
		Phone:      in.Phone,
		IDNumber:   in.IDNumber,
		Dietary:    in.Dietary,
		Hash:       identity.Encode(in.Name, s.seed),
	}

	if n, err := s.col.CountDocuments(ctx, bson.M{"name": in.Name}); err != nil {
		return nil, err
	} else if n > 0 {
		return nil, apperrors.ErrDuplicateName
	}

	if _, err := s.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost a create race on the name, or two names collided on one hash
			n, cntErr := s.col.CountDocuments(ctx, bson.M{"name": in.Name})
			return nil, dupKeyError(cntErr == nil && n > 0)
		}
		return nil, err
	}

	if err := s.replaceValues(ctx, a.ID, in.Custom); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update - 編輯學員; 改名時重算掃描碼, 自訂欄位值整組覆蓋 (表單重送全部)
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, in models.AttendeeInput) (*models.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash := existing.Hash
	if in.Name != existing.Name {
		if n, err := s.col.CountDocuments(ctx, bson.M{"name": in.Name, "_id": bson.M{"$ne": id}}); err != nil {
			return nil, err
		} else if n > 0 {
			return nil, apperrors.ErrDuplicateName
		}
		hash = identity.Encode(in.Name, s.seed)
	}

	update := bson.M{"$set": bson.M{
		"name":       in.Name,
		"department": in.Department,
		"gender":     in.Gender,
		"address":    in.Address,
		"phone":      in.Phone,
		"idNumber":   in.IDNumber,
		"dietary":    in.Dietary,
		"hash":       hash,
	}}
	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost a rename race onto an existing name, or the new name's
			// hash collided with another attendee's scan code
			n, cntErr := s.col.CountDocuments(ctx, bson.M{"name": in.Name, "_id": bson.M{"$ne": id}})
			return nil, dupKeyError(cntErr == nil && n > 0)
		}
		return nil, err
	}

	if err := s.replaceValues(ctx, id, in.Custom); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete - 刪除學員, cascade 依序: 自訂欄位值 → 名冊 → 簽到紀錄 → 學員本身
// 原系統刪學員會留下孤兒簽到紀錄, 這裡改為一併清除.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := s.values.DeleteMany(ctx, bson.M{"attendeeId": id}); err != nil {
		return err
	}
	if _, err := s.roster.DeleteMany(ctx, bson.M{"attendeeId": id}); err != nil {
		return err
	}
	if _, err := s.checkins.DeleteMany(ctx, bson.M{"attendeeId": id}); err != nil {
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

// GetByID - 依 ID 取得學員
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error) {
	var a models.Attendee
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByName - 依姓名取得學員 (姓名全庫唯一)
func (s *Store) FindByName(ctx context.Context, name string) (*models.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a models.Attendee
	err := s.col.FindOne(ctx, bson.M{"name": name}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByScanCode - 完整掃描碼精確比對 (光學掃描路徑)
func (s *Store) FindByScanCode(ctx context.Context, code string) (*models.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a models.Attendee
	err := s.col.FindOne(ctx, bson.M{"hash": code}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUnknownCode
		}
		return nil, err
	}
	return &a, nil
}

// ResolveScanCode - 掃描路徑: 完整碼比對並限定在課堂名冊內
func (s *Store) ResolveScanCode(ctx context.Context, classID primitive.ObjectID, code string) (*models.Attendee, error) {
	a, err := s.FindByScanCode(ctx, code)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.isEnrolled(ctx, classID, a.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrUnknownCode
	}
	return a, nil
}

// ResolveManualCode - 手動輸入路徑: 完整碼或備用短碼, 限定課堂名冊
// 短碼是前綴截斷, 兩位學員可能撞碼; 名冊內多人符合時回 ErrAmbiguousBackupCode
// 而不是猜第一位.
func (s *Store) ResolveManualCode(ctx context.Context, classID primitive.ObjectID, code string) (*models.Attendee, error) {
	members, err := s.rosterMembers(ctx, classID)
	if err != nil {
		return nil, err
	}

	var matches []models.Attendee
	for _, a := range members {
		if code == a.Hash || code == identity.BackupCode(a.Hash) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return nil, apperrors.ErrUnknownCode
	case 1:
		return &matches[0], nil
	default:
		return nil, apperrors.ErrAmbiguousBackupCode
	}
}

// Values - 學員的自訂欄位值
func (s *Store) Values(ctx context.Context, attendeeID primitive.ObjectID) ([]models.AttendeeValue, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := s.values.Find(ctx, bson.M{"attendeeId": attendeeID})
	if err != nil {
		return nil, err
	}
	var vals []models.AttendeeValue
	if err = cursor.All(ctx, &vals); err != nil {
		return nil, err
	}
	return vals, nil
}

// List - 學員列表, 支援姓名/部門搜尋與分頁
func (s *Store) List(ctx context.Context, params models.PaginationParams) ([]models.Attendee, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"department": regex},
		}
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(params.GetSortOrder()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var list []models.Attendee
	if err = cursor.All(ctx, &list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// replaceValues 整組覆蓋自訂欄位值, 新集合沒有的值會被刪掉.
// 先驗證再寫入, 鍵格式錯誤時不會留下改了一半的結果.
func (s *Store) replaceValues(ctx context.Context, attendeeID primitive.ObjectID, custom map[string]string) error {
	docs, err := buildValueDocs(attendeeID, custom)
	if err != nil {
		return err
	}
	if _, err := s.values.DeleteMany(ctx, bson.M{"attendeeId": attendeeID}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err = s.values.InsertMany(ctx, docs)
	return err
}

// buildValueDocs 把表單的 custom map 轉成值文件, 鍵必須是欄位 ObjectID hex
func buildValueDocs(attendeeID primitive.ObjectID, custom map[string]string) ([]interface{}, error) {
	docs := make([]interface{}, 0, len(custom))
	for fieldHex, value := range custom {
		if value == "" {
			continue // unset, not empty string
		}
		fieldID, err := primitive.ObjectIDFromHex(fieldHex)
		if err != nil {
			return nil, apperrors.ErrInvalidFieldID
		}
		docs = append(docs, models.AttendeeValue{
			ID:         primitive.NewObjectID(),
			AttendeeID: attendeeID,
			FieldID:    fieldID,
			Value:      value,
		})
	}
	return docs, nil
}

// dupKeyError 判斷 duplicate key 撞到的是姓名索引還是掃描碼索引
func dupKeyError(nameTaken bool) error {
	if nameTaken {
		return apperrors.ErrDuplicateName
	}
	return apperrors.ErrCodeCollision
}

func (s *Store) isEnrolled(ctx context.Context, classID, attendeeID primitive.ObjectID) (bool, error) {
	n, err := s.roster.CountDocuments(ctx, bson.M{"classId": classID, "attendeeId": attendeeID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) rosterMembers(ctx context.Context, classID primitive.ObjectID) ([]models.Attendee, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.roster.Find(ctx, bson.M{"classId": classID})
	if err != nil {
		return nil, err
	}
	var entries []models.RosterEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.AttendeeID)
	}

	mcursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var members []models.Attendee
	if err = mcursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}
