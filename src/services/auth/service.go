package auth

import (
	"context"
	"errors"
	"time"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// Service 使用者帳號管理與登入驗證
type Service struct {
	col *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{col: db.Collection(database.ColUsers)}
}

// Authenticate - 驗證帳號密碼
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, errors.New("帳號或密碼錯誤")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("帳號或密碼錯誤")
	}
	return &user, nil
}

// FindByID - 依 ID 取得使用者
func (s *Service) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

// CreateUser - 新增使用者
func (s *Service) CreateUser(ctx context.Context, username, password, role string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: time.Now(),
	}
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.New("使用者名稱已存在")
		}
		return nil, err
	}
	return &user, nil
}

// ChangePassword - 修改密碼, 需提供舊密碼
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	user, err := s.Authenticate(ctx, username, oldPassword)
	if err != nil {
		return errors.New("舊密碼錯誤")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.col.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"password": string(hashed)}})
	return err
}

// ListUsers - 所有使用者 (不含密碼)
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}).SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser - 刪除使用者, admin 帳號不可刪
func (s *Service) DeleteUser(ctx context.Context, username string) error {
	if username == "admin" {
		return errors.New("無法刪除管理員帳號")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
