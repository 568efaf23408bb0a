// Package apperrors holds the error taxonomy shared by the stores and the
// check-in engine. Controllers map these to HTTP statuses and short
// user-facing messages; raw storage errors are never exposed verbatim.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrDuplicateName       = errors.New("學員姓名已存在")
	ErrDuplicateWeek       = errors.New("該課堂已有相同週次")
	ErrDuplicateField      = errors.New("欄位名稱已存在")
	ErrNotFound            = errors.New("查無資料")
	ErrUnknownCode         = errors.New("查無此學員或QR碼錯誤")
	ErrNoActiveSession     = errors.New("請先選擇週次")
	ErrInvalidFieldType    = errors.New("非選項型欄位無法新增選項")
	ErrInvalidFieldID      = errors.New("自訂欄位識別碼格式錯誤")
	ErrAmbiguousBackupCode = errors.New("備用短碼對應多位學員, 請改用完整掃描碼")
	ErrCodeCollision       = errors.New("掃描碼與其他學員衝突")
)

// StatusCode 對應 HTTP 狀態碼
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownCode):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrDuplicateWeek),
		errors.Is(err, ErrDuplicateField),
		errors.Is(err, ErrCodeCollision):
		return fiber.StatusConflict
	case errors.Is(err, ErrNoActiveSession),
		errors.Is(err, ErrInvalidFieldType),
		errors.Is(err, ErrInvalidFieldID),
		errors.Is(err, ErrAmbiguousBackupCode):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
