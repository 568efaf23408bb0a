package routes

import (
	"Backend-CourseSignin/src/controllers"
	"Backend-CourseSignin/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func orgRoutes(app *fiber.App, oc *controllers.OrgController) {
	org := app.Group("/org")
	org.Get("/", oc.GetOrgInfo)
	org.Put("/", middleware.AuthJWT, middleware.AdminOnly, oc.UpdateOrgInfo)
}
