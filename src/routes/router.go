package routes

import (
	"Backend-CourseSignin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Controllers 各區塊的 controller, 由 main 建好後注入
type Controllers struct {
	Auth     *controllers.AuthController
	Class    *controllers.ClassController
	Session  *controllers.SessionController
	Attendee *controllers.AttendeeController
	Schema   *controllers.SchemaController
	Roster   *controllers.RosterController
	Checkin  *controllers.CheckinController
	Import   *controllers.ImportController
	Org      *controllers.OrgController
	QRCode   *controllers.QRCodeController
}

func InitRoutes(app *fiber.App, c Controllers) {
	authRoutes(app, c.Auth)
	classRoutes(app, c.Class, c.Session, c.Roster, c.Import, c.QRCode, c.Checkin)
	sessionRoutes(app, c.Session, c.Checkin)
	attendeeRoutes(app, c.Attendee, c.QRCode)
	fieldRoutes(app, c.Schema)
	checkinRoutes(app, c.Checkin)
	orgRoutes(app, c.Org)

	// Route 檢查 API 是否存活
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
