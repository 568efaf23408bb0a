package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRoster struct {
	ids []primitive.ObjectID
}

func (f *fakeRoster) MemberIDs(_ context.Context, _ primitive.ObjectID) ([]primitive.ObjectID, error) {
	return f.ids, nil
}

type fakeCounter struct {
	in, out int64
}

func (f *fakeCounter) CountCheckedIn(_ context.Context, _ primitive.ObjectID, _ []primitive.ObjectID) (int64, error) {
	return f.in, nil
}

func (f *fakeCounter) CountCheckedOut(_ context.Context, _ primitive.ObjectID, _ []primitive.ObjectID) (int64, error) {
	return f.out, nil
}

func ids(n int) []primitive.ObjectID {
	out := make([]primitive.ObjectID, n)
	for i := range out {
		out[i] = primitive.NewObjectID()
	}
	return out
}

func TestComputeBasic(t *testing.T) {
	agg := NewAggregator(&fakeRoster{ids: ids(30)}, &fakeCounter{in: 25, out: 20})

	s, err := agg.Compute(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(30), s.Expected)
	assert.Equal(t, int64(25), s.CheckedIn)
	assert.Equal(t, int64(20), s.CheckedOut)
	assert.Equal(t, int64(5), s.NotCheckedIn)
	assert.Equal(t, int64(5), s.NotCheckedOut)
}

func TestComputeNobodyScanned(t *testing.T) {
	// 名冊三人, 無人刷碼
	agg := NewAggregator(&fakeRoster{ids: ids(3)}, &fakeCounter{})

	s, err := agg.Compute(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Expected)
	assert.Equal(t, int64(0), s.CheckedIn)
	assert.Equal(t, int64(0), s.CheckedOut)
	assert.Equal(t, int64(3), s.NotCheckedIn)
	assert.Equal(t, int64(0), s.NotCheckedOut)
}

func TestComputeEmptyRoster(t *testing.T) {
	agg := NewAggregator(&fakeRoster{}, &fakeCounter{})

	s, err := agg.Compute(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.Expected)
	assert.Equal(t, int64(0), s.NotCheckedIn)
	assert.Equal(t, int64(0), s.NotCheckedOut)
}

func TestBuildStatsClamping(t *testing.T) {
	// 名冊在簽到後縮水: 簽到數超過應到數也不得出現負數
	s := buildStats(3, 5, 4)
	assert.Equal(t, int64(3), s.Expected)
	assert.Equal(t, int64(3), s.CheckedIn)
	assert.Equal(t, int64(3), s.CheckedOut)
	assert.Equal(t, int64(0), s.NotCheckedIn)
	assert.Equal(t, int64(0), s.NotCheckedOut)

	// 簽退數不得超過簽到數
	s = buildStats(10, 4, 7)
	assert.Equal(t, int64(4), s.CheckedOut)
	assert.Equal(t, int64(0), s.NotCheckedOut)
	assert.Equal(t, int64(6), s.NotCheckedIn)
}
