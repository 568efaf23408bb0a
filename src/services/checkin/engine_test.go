package checkin

import (
	"context"
	"testing"
	"time"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeSessions 固定回傳單一週次
type fakeSessions struct {
	session *models.Session
}

func (f *fakeSessions) GetByID(_ context.Context, id primitive.ObjectID) (*models.Session, error) {
	if f.session == nil || f.session.ID != id {
		return nil, apperrors.ErrNotFound
	}
	return f.session, nil
}

// fakeResolver 以 map 模擬名冊內的碼
type fakeResolver struct {
	byScan   map[string]*models.Attendee
	byManual map[string]*models.Attendee
	manual   error
}

func (f *fakeResolver) ResolveScanCode(_ context.Context, _ primitive.ObjectID, code string) (*models.Attendee, error) {
	if a, ok := f.byScan[code]; ok {
		return a, nil
	}
	return nil, apperrors.ErrUnknownCode
}

func (f *fakeResolver) ResolveManualCode(_ context.Context, _ primitive.ObjectID, code string) (*models.Attendee, error) {
	if f.manual != nil {
		return nil, f.manual
	}
	if a, ok := f.byManual[code]; ok {
		return a, nil
	}
	return nil, apperrors.ErrUnknownCode
}

type pairKey struct {
	session  primitive.ObjectID
	attendee primitive.ObjectID
}

// fakeRecords 記憶體版的簽到紀錄, 模擬唯一索引下的 insert / CAS 行為.
// failNextCheckIn / failNextCheckOut 用來演出輸掉並發競爭的那一次.
type fakeRecords struct {
	recs             map[pairKey]*models.CheckinRecord
	failNextCheckIn  bool
	failNextCheckOut bool
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{recs: map[pairKey]*models.CheckinRecord{}}
}

func (f *fakeRecords) Get(_ context.Context, sessionID, attendeeID primitive.ObjectID) (*models.CheckinRecord, error) {
	rec, ok := f.recs[pairKey{sessionID, attendeeID}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecords) CheckIn(_ context.Context, sessionID, attendeeID primitive.ObjectID, t time.Time) (bool, error) {
	key := pairKey{sessionID, attendeeID}
	if f.failNextCheckIn {
		f.failNextCheckIn = false
		// 對手搶先完成簽到
		if _, ok := f.recs[key]; !ok {
			other := t.Add(-time.Second)
			f.recs[key] = &models.CheckinRecord{SessionID: sessionID, AttendeeID: attendeeID, CheckInTime: &other}
		}
		return false, nil
	}
	if _, ok := f.recs[key]; ok {
		return false, nil
	}
	f.recs[key] = &models.CheckinRecord{SessionID: sessionID, AttendeeID: attendeeID, CheckInTime: &t}
	return true, nil
}

func (f *fakeRecords) CheckOut(_ context.Context, sessionID, attendeeID primitive.ObjectID, t time.Time) (bool, error) {
	key := pairKey{sessionID, attendeeID}
	rec, ok := f.recs[key]
	if !ok || rec.CheckInTime == nil || rec.CheckOutTime != nil {
		return false, nil
	}
	if f.failNextCheckOut {
		f.failNextCheckOut = false
		other := t.Add(-time.Second)
		rec.CheckOutTime = &other
		return false, nil
	}
	rec.CheckOutTime = &t
	return true, nil
}

func newTestEngine() (*Engine, *fakeRecords, string, string) {
	sessionID := primitive.NewObjectID()
	classID := primitive.NewObjectID()
	attendee := &models.Attendee{
		ID:   primitive.NewObjectID(),
		Name: "王小明",
		Hash: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
	}
	records := newFakeRecords()
	engine := NewEngine(
		&fakeSessions{session: &models.Session{ID: sessionID, ClassID: classID, Week: 1}},
		&fakeResolver{
			byScan:   map[string]*models.Attendee{attendee.Hash: attendee},
			byManual: map[string]*models.Attendee{attendee.Hash[:8]: attendee},
		},
		records,
	)
	return engine, records, sessionID.Hex(), attendee.Hash
}

func TestResolveFullCycle(t *testing.T) {
	engine, _, sessionID, code := newTestEngine()
	ctx := context.Background()
	now := time.Now()

	// 第一刷: 簽到
	res, err := engine.Resolve(ctx, sessionID, code, ModeScan, now)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCheckedIn, res.Outcome)
	assert.Contains(t, res.Message, "簽到成功")
	require.NotNil(t, res.CheckInTime)

	// 第二刷: 簽退
	res, err = engine.Resolve(ctx, sessionID, code, ModeScan, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, OutcomeCheckedOut, res.Outcome)
	assert.Contains(t, res.Message, "簽退成功")
	require.NotNil(t, res.CheckOutTime)
	assert.False(t, res.CheckOutTime.Before(*res.CheckInTime))

	// 第三刷之後: 已簽退, 狀態不再改變
	for i := 0; i < 3; i++ {
		res, err = engine.Resolve(ctx, sessionID, code, ModeScan, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyOut, res.Outcome)
		assert.Contains(t, res.Message, "已簽退")
	}
}

func TestResolveNoSession(t *testing.T) {
	engine, _, _, code := newTestEngine()
	ctx := context.Background()

	res, err := engine.Resolve(ctx, "", code, ModeScan, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
	assert.Equal(t, OutcomeNoSession, res.Outcome)

	// 不存在的週次與格式錯誤的 ID 都視同未選週次
	res, err = engine.Resolve(ctx, primitive.NewObjectID().Hex(), code, ModeScan, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
	assert.Equal(t, OutcomeNoSession, res.Outcome)

	res, err = engine.Resolve(ctx, "not-an-id", code, ModeScan, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
	assert.Equal(t, OutcomeNoSession, res.Outcome)
}

func TestResolveUnknownCode(t *testing.T) {
	engine, records, sessionID, _ := newTestEngine()
	ctx := context.Background()

	res, err := engine.Resolve(ctx, sessionID, "deadbeef", ModeScan, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)
	assert.Equal(t, OutcomeUnknown, res.Outcome)

	// 解不出學員時不得留下任何紀錄
	assert.Empty(t, records.recs)
}

func TestResolveManualBackupCode(t *testing.T) {
	engine, _, sessionID, code := newTestEngine()
	ctx := context.Background()

	// 掃描模式不認備用短碼
	res, err := engine.Resolve(ctx, sessionID, code[:8], ModeScan, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrUnknownCode)
	assert.Equal(t, OutcomeUnknown, res.Outcome)

	// 手動模式接受備用短碼
	res, err = engine.Resolve(ctx, sessionID, code[:8], ModeManual, time.Now())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCheckedIn, res.Outcome)
}

func TestResolveAmbiguousBackupCode(t *testing.T) {
	sessionID := primitive.NewObjectID()
	engine := NewEngine(
		&fakeSessions{session: &models.Session{ID: sessionID, ClassID: primitive.NewObjectID()}},
		&fakeResolver{manual: apperrors.ErrAmbiguousBackupCode},
		newFakeRecords(),
	)

	res, err := engine.Resolve(context.Background(), sessionID.Hex(), "9f86d081", ModeManual, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrAmbiguousBackupCode)
	assert.Equal(t, OutcomeUnknown, res.Outcome)
}

func TestResolveLostCheckInRace(t *testing.T) {
	engine, records, sessionID, code := newTestEngine()
	records.failNextCheckIn = true

	// 簽到 CAS 輸了: 重讀後看到對方已簽到, 這一刷變成簽退
	res, err := engine.Resolve(context.Background(), sessionID, code, ModeScan, time.Now())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCheckedOut, res.Outcome)
}

func TestResolveLostCheckOutRace(t *testing.T) {
	engine, records, sessionID, code := newTestEngine()
	ctx := context.Background()
	now := time.Now()

	res, err := engine.Resolve(ctx, sessionID, code, ModeScan, now)
	require.NoError(t, err)
	require.Equal(t, OutcomeCheckedIn, res.Outcome)

	// 簽退 CAS 輸了: 對方已完成簽退, 這一刷回報已簽退
	records.failNextCheckOut = true
	res, err = engine.Resolve(ctx, sessionID, code, ModeScan, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyOut, res.Outcome)
}

func TestResolveClockSkewClamped(t *testing.T) {
	engine, _, sessionID, code := newTestEngine()
	ctx := context.Background()
	checkIn := time.Now()

	res, err := engine.Resolve(ctx, sessionID, code, ModeScan, checkIn)
	require.NoError(t, err)
	require.Equal(t, OutcomeCheckedIn, res.Outcome)

	// 簽退時鐘比簽到慢: 簽退時間被抬升到簽到時間, 區間不得倒置
	res, err = engine.Resolve(ctx, sessionID, code, ModeScan, checkIn.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, OutcomeCheckedOut, res.Outcome)
	assert.Equal(t, *res.CheckInTime, *res.CheckOutTime)
}
