package routes

import (
	"Backend-CourseSignin/src/controllers"
	"Backend-CourseSignin/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes 登入登出與帳號管理, 帳號管理限 admin
func authRoutes(app *fiber.App, ac *controllers.AuthController) {
	auth := app.Group("/auth")
	auth.Post("/login", ac.Login)
	auth.Post("/refresh", ac.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, ac.Logout)
	auth.Put("/password", middleware.AuthJWT, ac.ChangePassword)

	users := auth.Group("/users", middleware.AuthJWT, middleware.AdminOnly)
	users.Get("/", ac.ListUsers)
	users.Post("/", ac.CreateUser)
	users.Delete("/:username", ac.DeleteUser)
}
