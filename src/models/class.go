package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class 課堂/活動
type Class struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Name string             `bson:"name" json:"name" example:"樂齡課程"`
}

// RosterEntry 課堂與學員的報名關係, unique per (classId, attendeeId)
type RosterEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID    primitive.ObjectID `bson:"classId" json:"classId"`
	AttendeeID primitive.ObjectID `bson:"attendeeId" json:"attendeeId"`
}
