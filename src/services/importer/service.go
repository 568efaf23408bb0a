package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Row 匯入的一列
type Row struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Report 匯入結果, 重複姓名跳過計數而不是整批失敗
type Report struct {
	BatchID string `json:"batchId"`
	Total   int    `json:"total"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
}

// AttendeeDirectory 建立學員, 撞名時以姓名回查既有學員
type AttendeeDirectory interface {
	Create(ctx context.Context, in models.AttendeeInput) (*models.Attendee, error)
	FindByName(ctx context.Context, name string) (*models.Attendee, error)
}

// RosterWriter 報名寫入, Enroll 是 idempotent upsert
type RosterWriter interface {
	Enroll(ctx context.Context, classID, attendeeID primitive.ObjectID) error
}

// Service 名冊批次匯入: 逐列 Create + Enroll
type Service struct {
	attendees AttendeeDirectory
	roster    RosterWriter
}

func NewService(att AttendeeDirectory, roster RosterWriter) *Service {
	return &Service{attendees: att, roster: roster}
}

// Import - 把列資料匯入課堂. 已存在的姓名不會重建學員, 但仍會確保
// 報名關係存在 (Enroll 是 idempotent 的, 同檔匯兩次結果相同).
func (s *Service) Import(ctx context.Context, classID primitive.ObjectID, rows []Row) (*Report, error) {
	report := &Report{BatchID: uuid.NewString()}

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		report.Total++

		attendee, err := s.attendees.Create(ctx, models.AttendeeInput{
			Name:       name,
			Department: strings.TrimSpace(row.Department),
		})
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, apperrors.ErrDuplicateName):
			report.Skipped++
			attendee, err = s.attendees.FindByName(ctx, name)
			if err != nil {
				return nil, err
			}
		default:
			return nil, err
		}

		if err := s.roster.Enroll(ctx, classID, attendee.ID); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// ParseCSV 解析匯入檔. 表頭沿用原系統的「姓名」「部門」, 也接受英文表頭.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	nameIdx, deptIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.ToLower(h)) {
		case "姓名", "name":
			nameIdx = i
		case "部門", "department":
			deptIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, errors.New("CSV 缺少「姓名」欄位")
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := Row{Name: record[nameIdx]}
		if deptIdx >= 0 && deptIdx < len(record) {
			row.Department = record[deptIdx]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
