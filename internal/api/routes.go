package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/signup", handler.Signup)
	api.Post("/verify-otp", handler.VerifyOTP)
	api.Post("/login", handler.Login)
	api.Post("/forgot-password", handler.ForgotPassword)
	api.Post("/reset-password", handler.ResetPassword)
	api.Post("/logout", handler.Logout)
	api.Post("/federated-signin", handler.FederatedSignIn)
	api.Delete("/account", handler.DeleteAccount)

	api.Get("/me", handler.AuthRequired, handler.Me)
}
