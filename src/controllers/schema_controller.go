package controllers

import (
	"Backend-CourseSignin/src/apperrors"
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/schema"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SchemaController 自訂欄位管理
type SchemaController struct {
	store *schema.Store
}

func NewSchemaController(store *schema.Store) *SchemaController {
	return &SchemaController{store: store}
}

// CreateField godoc
// @Summary      Define a custom field
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        body body models.CustomFieldInput true "Field"
// @Success      201  {object}  models.CustomField
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /fields [post]
func (sc *SchemaController) CreateField(c *fiber.Ctx) error {
	var in models.CustomFieldInput
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "欄位名稱必填, 類型限 text/select")
	}
	field, err := sc.store.DefineField(c.Context(), in)
	if err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(field)
}

// GetFields godoc
// @Summary      List custom fields ordered by display order
// @Tags         fields
// @Produce      json
// @Success      200  {array}  models.CustomField
// @Failure      500  {object}  models.ErrorResponse
// @Router       /fields [get]
func (sc *SchemaController) GetFields(c *fiber.Ctx) error {
	fields, err := sc.store.ListFields(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fields)
}

// DeleteField godoc
// @Summary      Delete a custom field
// @Description  Also removes every attendee value stored for the field
// @Tags         fields
// @Produce      json
// @Param        id   path  string  true  "Field ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /fields/{id} [delete]
func (sc *SchemaController) DeleteField(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	if err := sc.store.DeleteField(c.Context(), id); err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "欄位已刪除"})
}

// AddOption godoc
// @Summary      Append an option to a select field
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        id     path  string                true  "Field ID"
// @Param        body   body  object{value=string}  true  "Option"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /fields/{id}/options [post]
func (sc *SchemaController) AddOption(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	var req struct {
		Value string `json:"value" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "請輸入選項內容")
	}
	if err := sc.store.AddOption(c.Context(), id, req.Value); err != nil {
		return utils.HandleError(c, apperrors.StatusCode(err), err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "選項已新增"})
}
