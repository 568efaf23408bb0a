package routes

import (
	"Backend-CourseSignin/src/controllers"
	"Backend-CourseSignin/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func sessionRoutes(app *fiber.App, sc *controllers.SessionController, kc *controllers.CheckinController) {
	sessions := app.Group("/sessions")
	sessions.Get("/:id", sc.GetSessionByID)

	sessions.Get("/:sessionId/checkins", kc.GetSessionList)
	sessions.Get("/:sessionId/checkins/export", kc.ExportSessionCSV)
	sessions.Get("/:sessionId/checkins/:attendeeId", kc.GetCheckinRecord)
	sessions.Delete("/:sessionId/checkins/:attendeeId", middleware.AuthJWT, middleware.AdminOnly, kc.ResetCheckin)
}
