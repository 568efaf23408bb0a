package routes

import (
	"Backend-CourseSignin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func checkinRoutes(app *fiber.App, kc *controllers.CheckinController) {
	checkins := app.Group("/checkins")
	checkins.Post("/resolve", kc.Resolve)
}
