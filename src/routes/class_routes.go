package routes

import (
	"Backend-CourseSignin/src/controllers"
	"Backend-CourseSignin/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// classRoutes 課堂本身與掛在課堂底下的週次 / 名單 / 匯入 / QR / 統計
func classRoutes(app *fiber.App,
	cc *controllers.ClassController,
	sc *controllers.SessionController,
	rc *controllers.RosterController,
	ic *controllers.ImportController,
	qc *controllers.QRCodeController,
	kc *controllers.CheckinController,
) {
	classes := app.Group("/classes")
	classes.Get("/", cc.GetAllClasses)
	classes.Post("/", cc.CreateClass)
	classes.Get("/:id", cc.GetClassByID)
	classes.Put("/:id", cc.UpdateClass)
	classes.Delete("/:id", middleware.AuthJWT, middleware.AdminOnly, cc.DeleteClass)

	classes.Get("/:classId/sessions", sc.GetSessionsByClass)
	classes.Post("/:classId/sessions", sc.CreateSession)

	classes.Get("/:classId/roster", rc.GetRoster)
	classes.Post("/:classId/roster", rc.Enroll)
	classes.Delete("/:classId/roster/:attendeeId", rc.Unenroll)

	classes.Post("/:classId/import", ic.ImportCSV)
	classes.Post("/:classId/qrcodes", middleware.AuthJWT, middleware.AdminOnly, qc.GenerateClassQRCodes)
	classes.Get("/:classId/sessions/:sessionId/stats", kc.GetSessionStats)
}
