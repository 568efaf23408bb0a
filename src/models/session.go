package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session 課程週次, one dated occurrence of a class
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	ClassID   primitive.ObjectID `bson:"classId" json:"classId" swaggertype:"string"`
	Week      int                `bson:"week" json:"week" example:"3"`
	Date      string             `bson:"date" json:"date" example:"2024-09-18"`
	StartTime string             `bson:"startTime" json:"startTime" example:"09:00"`
	EndTime   string             `bson:"endTime" json:"endTime" example:"12:00"`
}

// SessionInput 新增週次用的輸入資料
type SessionInput struct {
	Week      int    `json:"week" validate:"required,min=1" example:"3"`
	Date      string `json:"date" validate:"required" example:"2024-09-18"`
	StartTime string `json:"startTime" validate:"required" example:"09:00"`
	EndTime   string `json:"endTime" validate:"required" example:"12:00"`
}
