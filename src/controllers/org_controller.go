package controllers

import (
	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/orginfo"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
)

// OrgController 組織資訊
type OrgController struct {
	store *orginfo.Store
}

func NewOrgController(store *orginfo.Store) *OrgController {
	return &OrgController{store: store}
}

// GetOrgInfo godoc
// @Summary      Get organization info
// @Tags         org
// @Produce      json
// @Success      200  {object}  models.OrgInfo
// @Router       /org [get]
func (oc *OrgController) GetOrgInfo(c *fiber.Ctx) error {
	info, err := oc.store.Get(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(info)
}

// UpdateOrgInfo godoc
// @Summary      Update organization info
// @Tags         org
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.OrgInfo true "Org info"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /org [put]
func (oc *OrgController) UpdateOrgInfo(c *fiber.Ctx) error {
	var info models.OrgInfo
	if err := c.BodyParser(&info); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := oc.store.Update(c.Context(), &info); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "組織資訊已更新"})
}
