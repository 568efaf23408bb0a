package routes

import (
	"Backend-CourseSignin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func attendeeRoutes(app *fiber.App, ac *controllers.AttendeeController, qc *controllers.QRCodeController) {
	attendees := app.Group("/attendees")
	attendees.Get("/", ac.GetAttendees)
	attendees.Post("/", ac.CreateAttendee)
	attendees.Get("/:id", ac.GetAttendeeByID)
	attendees.Put("/:id", ac.UpdateAttendee)
	attendees.Delete("/:id", ac.DeleteAttendee)
	attendees.Get("/:id/qrcode", qc.GetAttendeeQRCode)
}
