package controllers

import (
	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/rosters"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RosterController 課堂名單管理
type RosterController struct {
	store *rosters.Store
}

func NewRosterController(store *rosters.Store) *RosterController {
	return &RosterController{store: store}
}

// Enroll godoc
// @Summary      Enroll an attendee into a class
// @Description  Idempotent; enrolling the same pair twice is a no-op
// @Tags         rosters
// @Accept       json
// @Produce      json
// @Param        classId path  string                     true "Class ID"
// @Param        body    body  object{attendeeId=string}  true "Attendee"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /classes/{classId}/roster [post]
func (rc *RosterController) Enroll(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	var req struct {
		AttendeeID string `json:"attendeeId" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	attendeeID, err := primitive.ObjectIDFromHex(req.AttendeeID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid attendee ID")
	}
	if err := rc.store.Enroll(c.Context(), classID, attendeeID); err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "已加入課堂名單"})
}

// Unenroll godoc
// @Summary      Remove an attendee from a class roster
// @Tags         rosters
// @Produce      json
// @Param        classId     path  string  true "Class ID"
// @Param        attendeeId  path  string  true "Attendee ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /classes/{classId}/roster/{attendeeId} [delete]
func (rc *RosterController) Unenroll(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	attendeeID, err := primitive.ObjectIDFromHex(c.Params("attendeeId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid attendee ID")
	}
	if err := rc.store.Unenroll(c.Context(), classID, attendeeID); err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "已自名單移除"})
}

// GetRoster godoc
// @Summary      List class roster ordered by attendee name
// @Tags         rosters
// @Produce      json
// @Param        classId path  string  true "Class ID"
// @Success      200  {object}  object{data=[]models.Attendee,total=int}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /classes/{classId}/roster [get]
func (rc *RosterController) GetRoster(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	list, err := rc.store.ListRoster(c.Context(), classID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	total, err := rc.store.Count(c.Context(), classID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"data": list, "total": total})
}
