package routes

import (
	"Backend-CourseSignin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func fieldRoutes(app *fiber.App, sc *controllers.SchemaController) {
	fields := app.Group("/fields")
	fields.Get("/", sc.GetFields)
	fields.Post("/", sc.CreateField)
	fields.Delete("/:id", sc.DeleteField)
	fields.Post("/:id/options", sc.AddOption)
}
