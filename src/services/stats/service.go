package stats

import (
	"context"

	"Backend-CourseSignin/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RosterReader 名冊查詢
type RosterReader interface {
	MemberIDs(ctx context.Context, classID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// CheckinCounter 簽到/簽退計數, 只算名冊內的紀錄
type CheckinCounter interface {
	CountCheckedIn(ctx context.Context, sessionID primitive.ObjectID, rosterIDs []primitive.ObjectID) (int64, error)
	CountCheckedOut(ctx context.Context, sessionID primitive.ObjectID, rosterIDs []primitive.ObjectID) (int64, error)
}

// Aggregator 出缺席統計, 每次查詢即時計算
type Aggregator struct {
	roster   RosterReader
	checkins CheckinCounter
}

func NewAggregator(roster RosterReader, checkins CheckinCounter) *Aggregator {
	return &Aggregator{roster: roster, checkins: checkins}
}

// Compute - 計算 (課堂, 週次) 的應到/簽到/簽退統計
func (a *Aggregator) Compute(ctx context.Context, classID, sessionID primitive.ObjectID) (models.SessionStats, error) {
	ids, err := a.roster.MemberIDs(ctx, classID)
	if err != nil {
		return models.SessionStats{}, err
	}
	checkedIn, err := a.checkins.CountCheckedIn(ctx, sessionID, ids)
	if err != nil {
		return models.SessionStats{}, err
	}
	checkedOut, err := a.checkins.CountCheckedOut(ctx, sessionID, ids)
	if err != nil {
		return models.SessionStats{}, err
	}
	return buildStats(int64(len(ids)), checkedIn, checkedOut), nil
}

// buildStats 推導統計數字. 名冊在簽到後縮水時, 衍生數字 clamp 在 0,
// 絕不回報負數.
func buildStats(expected, checkedIn, checkedOut int64) models.SessionStats {
	if checkedIn > expected {
		checkedIn = expected
	}
	if checkedOut > checkedIn {
		checkedOut = checkedIn
	}
	return models.SessionStats{
		Expected:      expected,
		CheckedIn:     checkedIn,
		CheckedOut:    checkedOut,
		NotCheckedIn:  expected - checkedIn,
		NotCheckedOut: checkedIn - checkedOut,
	}
}
