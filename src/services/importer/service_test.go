package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDirectory struct {
	byName  map[string]*models.Attendee
	created int
	failOn  string
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{byName: map[string]*models.Attendee{}}
}

func (f *fakeDirectory) Create(_ context.Context, in models.AttendeeInput) (*models.Attendee, error) {
	if in.Name == f.failOn {
		return nil, errors.New("insert failed")
	}
	if _, ok := f.byName[in.Name]; ok {
		return nil, apperrors.ErrDuplicateName
	}
	a := &models.Attendee{ID: primitive.NewObjectID(), Name: in.Name, Department: in.Department}
	f.byName[in.Name] = a
	f.created++
	return a, nil
}

func (f *fakeDirectory) FindByName(_ context.Context, name string) (*models.Attendee, error) {
	if a, ok := f.byName[name]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

type fakeRosterWriter struct {
	enrolled map[primitive.ObjectID]int
}

func newFakeRosterWriter() *fakeRosterWriter {
	return &fakeRosterWriter{enrolled: map[primitive.ObjectID]int{}}
}

func (f *fakeRosterWriter) Enroll(_ context.Context, _ primitive.ObjectID, attendeeID primitive.ObjectID) error {
	f.enrolled[attendeeID]++
	return nil
}

func TestImportDuplicateNameSkipped(t *testing.T) {
	dir := newFakeDirectory()
	roster := newFakeRosterWriter()
	svc := NewService(dir, roster)

	report, err := svc.Import(context.Background(), primitive.NewObjectID(), []Row{
		{Name: "王小明", Department: "資訊部"},
		{Name: "王小明", Department: "資訊部"},
	})
	require.NoError(t, err)

	// 同名只建一位學員, 第二列計入 skipped 但報名關係照樣成立
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, dir.created)

	require.Len(t, roster.enrolled, 1)
	existing := dir.byName["王小明"]
	assert.Equal(t, 2, roster.enrolled[existing.ID])
}

func TestImportBlankNamesIgnored(t *testing.T) {
	dir := newFakeDirectory()
	roster := newFakeRosterWriter()
	svc := NewService(dir, roster)

	report, err := svc.Import(context.Background(), primitive.NewObjectID(), []Row{
		{Name: "  "},
		{Name: "李小華"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Added)
	assert.Zero(t, report.Skipped)
}

func TestImportAbortsOnStoreError(t *testing.T) {
	dir := newFakeDirectory()
	dir.failOn = "李小華"
	roster := newFakeRosterWriter()
	svc := NewService(dir, roster)

	_, err := svc.Import(context.Background(), primitive.NewObjectID(), []Row{
		{Name: "王小明"},
		{Name: "李小華"},
	})
	require.Error(t, err)
	// 第一列已經寫入, 失敗列之後不再處理
	assert.Equal(t, 1, dir.created)
}

func TestParseCSVChineseHeader(t *testing.T) {
	csv := "姓名,部門\n王小明,資訊部\n李小華,行政部\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Name: "王小明", Department: "資訊部"}, rows[0])
	assert.Equal(t, Row{Name: "李小華", Department: "行政部"}, rows[1])
}

func TestParseCSVEnglishHeader(t *testing.T) {
	csv := "Name,Department\n王小明,資訊部\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "王小明", rows[0].Name)
}

func TestParseCSVMissingNameColumn(t *testing.T) {
	csv := "部門\n資訊部\n"

	_, err := ParseCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "姓名")
}

func TestParseCSVNameOnly(t *testing.T) {
	csv := "姓名\n王小明\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Department)
}

func TestParseCSVColumnOrderIrrelevant(t *testing.T) {
	csv := "部門,姓名\n資訊部,王小明\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "王小明", rows[0].Name)
	assert.Equal(t, "資訊部", rows[0].Department)
}
