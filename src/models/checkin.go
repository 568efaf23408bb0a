package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckinRecord 簽到紀錄, unique per (sessionId, attendeeId)
// CheckOutTime set implies CheckInTime set.
type CheckinRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID    primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	AttendeeID   primitive.ObjectID `bson:"attendeeId" json:"attendeeId"`
	CheckInTime  *time.Time         `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	CheckOutTime *time.Time         `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
}

// CheckinRow 簽到名單的一列 (ListBySession), attendee joined with its record
type CheckinRow struct {
	Attendee Attendee      `json:"attendee"`
	Record   CheckinRecord `json:"record"`
}

// SessionStats 單一週次的出缺席統計
type SessionStats struct {
	Expected      int64 `json:"expected" example:"30"`      // 應到
	CheckedIn     int64 `json:"checkedIn" example:"25"`     // 簽到
	CheckedOut    int64 `json:"checkedOut" example:"20"`    // 簽退
	NotCheckedIn  int64 `json:"notCheckedIn" example:"5"`   // 未簽到
	NotCheckedOut int64 `json:"notCheckedOut" example:"5"`  // 未簽退
}
