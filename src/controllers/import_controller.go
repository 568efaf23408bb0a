package controllers

import (
	"Backend-CourseSignin/src/services/importer"
	"Backend-CourseSignin/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImportController CSV 名單匯入
type ImportController struct {
	svc *importer.Service
}

func NewImportController(svc *importer.Service) *ImportController {
	return &ImportController{svc: svc}
}

// ImportCSV godoc
// @Summary      Import attendees from a CSV file into a class
// @Description  Duplicate names are skipped but still enrolled; importing the same file twice adds nothing
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        classId path     string true "Class ID"
// @Param        file    formData file   true "CSV file with 姓名/部門 columns"
// @Success      200  {object}  importer.Report
// @Failure      400  {object}  models.ErrorResponse
// @Router       /classes/{classId}/import [post]
func (ic *ImportController) ImportCSV(c *fiber.Ctx) error {
	classID, err := primitive.ObjectIDFromHex(c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "請上傳 CSV 檔案")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "無法讀取上傳檔案")
	}
	defer f.Close()

	rows, err := importer.ParseCSV(f)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := ic.svc.Import(c.Context(), classID, rows)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(report)
}
