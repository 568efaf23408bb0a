package controllers

import (
	"encoding/csv"
	"fmt"
	"time"

	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/checkin"
	"Backend-CourseSignin/src/services/checkins"
	"Backend-CourseSignin/src/services/stats"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckinController 刷碼簽到 / 簽到名單 / 統計
type CheckinController struct {
	engine *checkin.Engine
	store  *checkins.Store
	stats  *stats.Aggregator
}

func NewCheckinController(engine *checkin.Engine, store *checkins.Store, agg *stats.Aggregator) *CheckinController {
	return &CheckinController{engine: engine, store: store, stats: agg}
}

// ResolveRequest 刷碼請求
type ResolveRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Code      string `json:"code" validate:"required"`
	Mode      string `json:"mode" validate:"omitempty,oneof=scan manual" example:"scan"`
}

// Resolve godoc
// @Summary      Resolve one scan or manual code entry
// @Description  Walks the pair through NotStarted, CheckedIn, CheckedOut. Repeated scans after checkout are acknowledged without effect.
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Param        body body ResolveRequest true "Scan"
// @Success      200  {object}  checkin.Result
// @Failure      400  {object}  checkin.Result
// @Failure      404  {object}  checkin.Result
// @Router       /checkins/resolve [post]
func (cc *CheckinController) Resolve(c *fiber.Ctx) error {
	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "請提供週次與掃描碼")
	}

	mode := checkin.ModeScan
	if req.Mode == "manual" {
		mode = checkin.ModeManual
	}

	result, err := cc.engine.Resolve(c.Context(), req.SessionID, req.Code, mode, time.Now())
	if err != nil {
		if result == nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
		// 解析失敗也回傳 Result, 前端靠 outcome 決定提示音與畫面
		return c.Status(apperrors.StatusCode(err)).JSON(result)
	}
	return c.JSON(result)
}

// GetSessionList godoc
// @Summary      List checkin rows of a session ordered by attendee name
// @Tags         checkins
// @Produce      json
// @Param        sessionId path  string  true  "Session ID"
// @Success      200  {array}  models.CheckinRow
// @Failure      400  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId}/checkins [get]
func (cc *CheckinController) GetSessionList(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid session ID")
	}
	rows, err := cc.store.ListBySession(c.Context(), sessionID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rows)
}

// ExportSessionCSV godoc
// @Summary      Export the checkin list of a session as CSV
// @Tags         checkins
// @Produce      text/csv
// @Param        sessionId path  string  true  "Session ID"
// @Success      200  {string}  string
// @Failure      400  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId}/checkins/export [get]
func (cc *CheckinController) ExportSessionCSV(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid session ID")
	}
	rows, err := cc.store.ListBySession(c.Context(), sessionID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="checkins_%s.csv"`, sessionID.Hex()))

	w := csv.NewWriter(c)
	_ = w.Write([]string{"姓名", "部門", "簽到時間", "簽退時間"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.Attendee.Name,
			row.Attendee.Department,
			formatTime(row.Record.CheckInTime),
			formatTime(row.Record.CheckOutTime),
		})
	}
	w.Flush()
	return w.Error()
}

// GetCheckinRecord godoc
// @Summary      Get the checkin record of one attendee in a session
// @Description  Returns a zero-value record when the pair has not started yet
// @Tags         checkins
// @Produce      json
// @Param        sessionId   path  string  true  "Session ID"
// @Param        attendeeId  path  string  true  "Attendee ID"
// @Success      200  {object}  models.CheckinRecord
// @Failure      400  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId}/checkins/{attendeeId} [get]
func (cc *CheckinController) GetCheckinRecord(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid session ID")
	}
	attendeeID, err := primitive.ObjectIDFromHex(c.Params("attendeeId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid attendee ID")
	}
	rec, err := cc.store.GetOrDefault(c.Context(), sessionID, attendeeID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rec)
}

// ResetCheckin godoc
// @Summary      Reset the checkin record of one attendee (admin)
// @Description  Direct store mutation; does not go through the scan state machine
// @Tags         checkins
// @Produce      json
// @Security     BearerAuth
// @Param        sessionId   path  string  true  "Session ID"
// @Param        attendeeId  path  string  true  "Attendee ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{sessionId}/checkins/{attendeeId} [delete]
func (cc *CheckinController) ResetCheckin(c *fiber.Ctx) error {
	sessionID, err := primitive.ObjectIDFromHex(c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid session ID")
	}
	attendeeID, err := primitive.ObjectIDFromHex(c.Params("attendeeId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid attendee ID")
	}
	if err := cc.store.Reset(c.Context(), sessionID, attendeeID); err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "簽到紀錄已重設"})
}

// GetSessionStats godoc
// @Summary      Attendance statistics of a session
// @Tags         checkins
// @Produce      json
// @Param        classId   path  string  true  "Class ID"
// @Param        sessionId path  string  true  "Session ID"
// @Success      200  {object}  models.SessionStats
// @Failure      400  {object}  models.ErrorResponse
// @Router       /classes/{classId}/sessions/{sessionId}/stats [get]
func (cc *CheckinController) GetSessionStats(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	sessionID, err := primitive.ObjectIDFromHex(c.Params("sessionId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid session ID")
	}
	s, err := cc.stats.Compute(c.Context(), classID, sessionID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(s)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
