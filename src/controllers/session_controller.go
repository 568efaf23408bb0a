package controllers

import (
	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/sessions"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionController 課程週次管理
type SessionController struct {
	store *sessions.Store
}

func NewSessionController(store *sessions.Store) *SessionController {
	return &SessionController{store: store}
}

// CreateSession godoc
// @Summary      Create a session (week) for a class
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        classId path  string              true  "Class ID"
// @Param        body    body  models.SessionInput true  "Session"
// @Success      201  {object}  models.Session
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /classes/{classId}/sessions [post]
func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	var in models.SessionInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "週次與日期時間皆為必填")
	}
	session, err := sc.store.Create(c.Context(), classID, in)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSessionsByClass godoc
// @Summary      List sessions of a class ordered by week
// @Tags         sessions
// @Produce      json
// @Param        classId path  string  true  "Class ID"
// @Success      200  {array}  models.Session
// @Failure      400  {object}  models.ErrorResponse
// @Router       /classes/{classId}/sessions [get]
func (sc *SessionController) GetSessionsByClass(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}
	list, err := sc.store.ListByClass(c.Context(), classID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}

// GetSessionByID godoc
// @Summary      Get a session by ID
// @Tags         sessions
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  models.Session
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sessions/{id} [get]
func (sc *SessionController) GetSessionByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	session, err := sc.store.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(session)
}
