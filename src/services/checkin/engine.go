// Package checkin implements the sign-in state machine. One scan moves a
// (session, attendee) pair along NotStarted → CheckedIn → CheckedOut;
// CheckedOut is terminal and repeated scans are acknowledged without effect.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mode 解碼路徑: 光學掃描只認完整碼, 手動輸入接受完整碼或備用短碼
type Mode int

const (
	ModeScan Mode = iota
	ModeManual
)

// Outcome tags, rendered by the caller as popup text / speech / sound.
const (
	OutcomeCheckedIn  = "checked_in"
	OutcomeCheckedOut = "checked_out"
	OutcomeAlreadyOut = "already_out"
	OutcomeUnknown    = "unknown"
	OutcomeNoSession  = "no_session"
)

// Result 單次刷碼的結果
type Result struct {
	AttendeeID   primitive.ObjectID `json:"attendeeId"`
	AttendeeName string             `json:"attendeeName"`
	Outcome      string             `json:"outcome"`
	Message      string             `json:"message"`
	CheckInTime  *time.Time         `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time         `json:"checkOutTime,omitempty"`
}

// SessionFinder 查週次
type SessionFinder interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Session, error)
}

// CodeResolver 把刷進來的碼解成學員, 限定在課堂名冊內
type CodeResolver interface {
	ResolveScanCode(ctx context.Context, classID primitive.ObjectID, code string) (*models.Attendee, error)
	ResolveManualCode(ctx context.Context, classID primitive.ObjectID, code string) (*models.Attendee, error)
}

// RecordStore 簽到紀錄的讀寫, CheckIn/CheckOut 都是 atomic 的 insert/CAS
type RecordStore interface {
	Get(ctx context.Context, sessionID, attendeeID primitive.ObjectID) (*models.CheckinRecord, error)
	CheckIn(ctx context.Context, sessionID, attendeeID primitive.ObjectID, t time.Time) (bool, error)
	CheckOut(ctx context.Context, sessionID, attendeeID primitive.ObjectID, t time.Time) (bool, error)
}

// Engine 簽到引擎, 自身不保存任何狀態
type Engine struct {
	sessions SessionFinder
	resolver CodeResolver
	records  RecordStore
}

func NewEngine(sessions SessionFinder, resolver CodeResolver, records RecordStore) *Engine {
	return &Engine{sessions: sessions, resolver: resolver, records: records}
}

// Resolve - 處理一次刷碼: 解析學員身分, 套用狀態轉移, 回報結果
// 同一組 (session, attendee) 的並發刷碼由 store 的唯一索引串行化;
// 搶輸的那一次會重讀狀態, 看到的是對方寫入後的世界.
func (e *Engine) Resolve(ctx context.Context, sessionID string, rawCode string, mode Mode, now time.Time) (*Result, error) {
	if sessionID == "" {
		return &Result{Outcome: OutcomeNoSession, Message: apperrors.ErrNoActiveSession.Error()},
			apperrors.ErrNoActiveSession
	}
	sid, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return &Result{Outcome: OutcomeNoSession, Message: apperrors.ErrNoActiveSession.Error()},
			apperrors.ErrNoActiveSession
	}

	session, err := e.sessions.GetByID(ctx, sid)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &Result{Outcome: OutcomeNoSession, Message: apperrors.ErrNoActiveSession.Error()},
				apperrors.ErrNoActiveSession
		}
		return nil, err
	}

	var attendee *models.Attendee
	if mode == ModeScan {
		attendee, err = e.resolver.ResolveScanCode(ctx, session.ClassID, rawCode)
	} else {
		attendee, err = e.resolver.ResolveManualCode(ctx, session.ClassID, rawCode)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCode) || errors.Is(err, apperrors.ErrAmbiguousBackupCode) {
			return &Result{Outcome: OutcomeUnknown, Message: err.Error()}, err
		}
		return nil, err
	}

	return e.transition(ctx, sid, attendee, now)
}

// transition 套用狀態機. 最多重試一次: CAS 失敗代表有並發寫入,
// 重讀後以新狀態繼續.
func (e *Engine) transition(ctx context.Context, sessionID primitive.ObjectID, attendee *models.Attendee, now time.Time) (*Result, error) {
	for attempt := 0; attempt < 2; attempt++ {
		rec, err := e.records.Get(ctx, sessionID, attendee.ID)
		if err != nil {
			return nil, err
		}

		switch {
		case rec == nil || rec.CheckInTime == nil:
			ok, err := e.records.CheckIn(ctx, sessionID, attendee.ID, now)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue // someone beat us to the check-in, re-read
			}
			return &Result{
				AttendeeID:   attendee.ID,
				AttendeeName: attendee.Name,
				Outcome:      OutcomeCheckedIn,
				Message:      fmt.Sprintf("%s 簽到成功", attendee.Name),
				CheckInTime:  &now,
			}, nil

		case rec.CheckOutTime == nil:
			// a terminal with a slow clock must not produce an inverted interval
			out := now
			if out.Before(*rec.CheckInTime) {
				out = *rec.CheckInTime
			}
			ok, err := e.records.CheckOut(ctx, sessionID, attendee.ID, out)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue // concurrently checked out, re-read
			}
			return &Result{
				AttendeeID:   attendee.ID,
				AttendeeName: attendee.Name,
				Outcome:      OutcomeCheckedOut,
				Message:      fmt.Sprintf("%s 簽退成功", attendee.Name),
				CheckInTime:  rec.CheckInTime,
				CheckOutTime: &out,
			}, nil

		default:
			// CheckedOut is terminal. 已簽退者再刷碼只回報, 不是錯誤.
			return &Result{
				AttendeeID:   attendee.ID,
				AttendeeName: attendee.Name,
				Outcome:      OutcomeAlreadyOut,
				Message:      fmt.Sprintf("%s 已簽退, 無法重複簽到", attendee.Name),
				CheckInTime:  rec.CheckInTime,
				CheckOutTime: rec.CheckOutTime,
			}, nil
		}
	}

	// two lost races in a row means the pair reached the terminal state
	rec, err := e.records.Get(ctx, sessionID, attendee.ID)
	if err != nil {
		return nil, err
	}
	res := &Result{
		AttendeeID:   attendee.ID,
		AttendeeName: attendee.Name,
		Outcome:      OutcomeAlreadyOut,
		Message:      fmt.Sprintf("%s 已簽退, 無法重複簽到", attendee.Name),
	}
	if rec != nil {
		res.CheckInTime = rec.CheckInTime
		res.CheckOutTime = rec.CheckOutTime
	}
	return res, nil
}
