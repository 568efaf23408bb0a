package controllers

import (
	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/database"
	"Backend-CourseSignin/src/jobs"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/qrcode"
	"Backend-CourseSignin/src/services/attendees"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCodeController 學員 QR Code
type QRCodeController struct {
	attendees *attendees.Store
}

func NewQRCodeController(store *attendees.Store) *QRCodeController {
	return &QRCodeController{attendees: store}
}

// GetAttendeeQRCode godoc
// @Summary      Download one attendee's QR code as PNG
// @Tags         qrcodes
// @Produce      image/png
// @Param        id   path  string  true  "Attendee ID"
// @Success      200  {string}  binary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /attendees/{id}/qrcode [get]
func (qc *QRCodeController) GetAttendeeQRCode(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	attendee, err := qc.attendees.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	png, err := qrcode.GeneratePNG(attendee.Hash)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// GenerateClassQRCodes godoc
// @Summary      Batch-generate QR code files for a whole class (admin)
// @Description  Enqueues a background job; files land in public/qrcodes
// @Tags         qrcodes
// @Produce      json
// @Security     BearerAuth
// @Param        classId path  string  true  "Class ID"
// @Success      202  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /classes/{classId}/qrcodes [post]
func (qc *QRCodeController) GenerateClassQRCodes(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if _, err := primitive.ObjectIDFromHex(classID); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	if database.AsynqClient == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "背景工作服務未啟動, 請確認 Redis 連線")
	}

	batchID := uuid.NewString()
	task, err := jobs.NewGenerateQRCodesTask(classID, batchID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusAccepted).JSON(models.SuccessResponse{
		Message: "QR Code 批次產生工作已送出",
		Data:    fiber.Map{"batchId": batchID},
	})
}
