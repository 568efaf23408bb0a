package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 系統使用者 (admin / user)
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username" example:"admin"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role" example:"admin" enums:"admin,user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// LoginRequest 登入請求
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"admin123"`
}

// LoginResponse 登入回應
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username"`
	Role         string `json:"role"`
}

// OrgInfo 組織資訊 (singleton document)
type OrgInfo struct {
	ID      string `bson:"_id" json:"-"`
	OrgName string `bson:"orgName" json:"orgName" example:"課堂簽到系統"`
	Manager string `bson:"manager" json:"manager"`
	Contact string `bson:"contact" json:"contact"`
}
