package controllers

import (
	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/classes"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassController 課堂管理
type ClassController struct {
	store *classes.Store
}

func NewClassController(store *classes.Store) *ClassController {
	return &ClassController{store: store}
}

// CreateClass godoc
// @Summary      Create a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        body body models.Class true "Class"
// @Success      201  {object}  models.Class
// @Failure      400  {object}  models.ErrorResponse
// @Router       /classes [post]
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var request models.Class
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if request.Name == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "請輸入課堂名稱")
	}
	class, err := cc.store.Create(c.Context(), &request)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(class)
}

// GetAllClasses godoc
// @Summary      Get all classes
// @Tags         classes
// @Produce      json
// @Success      200  {array}  models.Class
// @Failure      500  {object}  models.ErrorResponse
// @Router       /classes [get]
func (cc *ClassController) GetAllClasses(c *fiber.Ctx) error {
	list, err := cc.store.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}

// GetClassByID godoc
// @Summary      Get a class by ID
// @Tags         classes
// @Produce      json
// @Param        id   path  string  true  "Class ID"
// @Success      200  {object}  models.Class
// @Failure      404  {object}  models.ErrorResponse
// @Router       /classes/{id} [get]
func (cc *ClassController) GetClassByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	class, err := cc.store.GetByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(class)
}

// UpdateClass godoc
// @Summary      Update a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        id     path  string       true  "Class ID"
// @Param        body   body  models.Class true  "Class"
// @Success      200  {object}  models.Class
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /classes/{id} [put]
func (cc *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	var request models.Class
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	updated, err := cc.store.Update(c.Context(), id, request.Name)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(updated)
}

// DeleteClass godoc
// @Summary      Delete a class and everything under it
// @Description  Delete a class with its sessions, checkin records and roster
// @Tags         classes
// @Produce      json
// @Param        id   path  string  true  "Class ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /classes/{id} [delete]
func (cc *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	if err := cc.store.Delete(c.Context(), id); err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "課堂已刪除"})
}
