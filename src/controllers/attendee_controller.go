package controllers

import (
	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/attendees"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendeeController 學員管理
type AttendeeController struct {
	store *attendees.Store
}

func NewAttendeeController(store *attendees.Store) *AttendeeController {
	return &AttendeeController{store: store}
}

// CreateAttendee godoc
// @Summary      Create an attendee
// @Description  Name is unique across the whole store; the scan code hash is derived from it
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        body body models.AttendeeInput true "Attendee"
// @Success      201  {object}  models.Attendee
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /attendees [post]
func (ac *AttendeeController) CreateAttendee(c *fiber.Ctx) error {
	var in models.AttendeeInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "請輸入學員姓名")
	}
	attendee, err := ac.store.Create(c.Context(), in)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(attendee)
}

// GetAttendees godoc
// @Summary      List attendees with pagination and search
// @Tags         attendees
// @Produce      json
// @Param        page    query  int     false  "Page number"  default(1)
// @Param        limit   query  int     false  "Items per page"  default(10)
// @Param        search  query  string  false  "Search by name or department"
// @Param        sortBy  query  string  false  "Sort field"  default(name)
// @Param        order   query  string  false  "asc | desc"  default(asc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /attendees [get]
func (ac *AttendeeController) GetAttendees(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	list, total, err := ac.store.List(c.Context(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(list, total, params))
}

// GetAttendeeByID godoc
// @Summary      Get an attendee with custom field values
// @Tags         attendees
// @Produce      json
// @Param        id   path  string  true  "Attendee ID"
// @Success      200  {object}  models.AttendeeWithValues
// @Failure      404  {object}  models.ErrorResponse
// @Router       /attendees/{id} [get]
func (ac *AttendeeController) GetAttendeeByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	attendee, err := ac.store.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	values, err := ac.store.Values(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.AttendeeWithValues{Attendee: *attendee, Values: values})
}

// UpdateAttendee godoc
// @Summary      Update an attendee
// @Description  Renaming recomputes the scan code; custom values are replaced in full
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        id     path  string               true  "Attendee ID"
// @Param        body   body  models.AttendeeInput true  "Attendee"
// @Success      200  {object}  models.Attendee
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /attendees/{id} [put]
func (ac *AttendeeController) UpdateAttendee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	var in models.AttendeeInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "請輸入學員姓名")
	}
	attendee, err := ac.store.Update(c.Context(), id, in)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(attendee)
}

// DeleteAttendee godoc
// @Summary      Delete an attendee
// @Description  Removes custom values, roster entries and checkin history before the attendee itself
// @Tags         attendees
// @Produce      json
// @Param        id   path  string  true  "Attendee ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /attendees/{id} [delete]
func (ac *AttendeeController) DeleteAttendee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	if err := ac.store.Delete(c.Context(), id); err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "學員已刪除"})
}
