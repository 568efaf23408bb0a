package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field types for custom attendee attributes.
const (
	FieldTypeText   = "text"
	FieldTypeSelect = "select"
)

// FieldOption 下拉選項, ordered inside its field
type FieldOption struct {
	Value        string `bson:"value" json:"value" example:"葷食"`
	DisplayOrder int    `bson:"displayOrder" json:"displayOrder" example:"1"`
}

// CustomField 自訂欄位定義
// Required is advisory only, historical records may predate the flag.
type CustomField struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Name         string             `bson:"name" json:"name" example:"餐飲葷素"`
	Type         string             `bson:"type" json:"type" example:"select" enums:"text,select"`
	Required     bool               `bson:"required" json:"required" example:"false"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder" example:"5"`
	Options      []FieldOption      `bson:"options,omitempty" json:"options,omitempty"`
}

// CustomFieldInput 建立欄位用的輸入資料
type CustomFieldInput struct {
	Name     string   `json:"name" validate:"required" example:"餐飲葷素"`
	Type     string   `json:"type" validate:"required,oneof=text select" example:"select"`
	Required bool     `json:"required" example:"false"`
	Options  []string `json:"options,omitempty" example:"葷食,素食"`
}
