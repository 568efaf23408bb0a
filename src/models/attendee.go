package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendee 學員
type Attendee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Name       string             `bson:"name" json:"name" example:"王小明"`
	Department string             `bson:"department" json:"department" example:"資訊部"`
	Gender     string             `bson:"gender,omitempty" json:"gender,omitempty" example:"男"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty" example:"0912345678"`
	IDNumber   string             `bson:"idNumber,omitempty" json:"idNumber,omitempty"`
	Dietary    string             `bson:"dietary,omitempty" json:"dietary,omitempty" example:"素食"`
	Hash       string             `bson:"hash" json:"hash" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
}

// BackupCode 取得備用短碼, the fixed-length manual-entry prefix of the scan code
func (a *Attendee) BackupCode() string {
	if len(a.Hash) < 8 {
		return a.Hash
	}
	return a.Hash[:8]
}

// AttendeeInput 建立/編輯學員用的輸入資料 (表單或 CSV)
type AttendeeInput struct {
	Name       string            `json:"name" validate:"required" example:"王小明"`
	Department string            `json:"department" example:"資訊部"`
	Gender     string            `json:"gender,omitempty"`
	Address    string            `json:"address,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	IDNumber   string            `json:"idNumber,omitempty"`
	Dietary    string            `json:"dietary,omitempty"`
	Custom     map[string]string `json:"custom,omitempty"` // fieldId (hex) -> value, unset fields are simply absent
}

// AttendeeValue 學員的自訂欄位值 (sparse, at most one per pair)
type AttendeeValue struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AttendeeID primitive.ObjectID `bson:"attendeeId" json:"attendeeId"`
	FieldID    primitive.ObjectID `bson:"fieldId" json:"fieldId"`
	Value      string             `bson:"value" json:"value"`
}

// AttendeeWithValues 編輯表單用, attendee plus its sparse custom values
type AttendeeWithValues struct {
	Attendee Attendee        `json:"attendee"`
	Values   []AttendeeValue `json:"values"`
}
