package routes

import (
	"github.com/arogyamitra/backend/internal/config"
	"github.com/arogyamitra/backend/internal/handlers"
	"github.com/arogyamitra/backend/internal/middleware"
	"github.com/arogyamitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	planHandler *handlers.PlanHandler,
	chatHandler *handlers.ChatHandler,
	plannerHandler *handlers.PlannerHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth — public
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Everything else sits behind the two-stage gate: signature check,
	// then a liveness re-check of the token's subject.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.UserAlive(authService))

	protected.Get("/profile", profileHandler.Get)
	protected.Post("/profile", profileHandler.Put)

	ai := protected.Group("/ai")
	ai.Get("/workout", planHandler.GetWorkout)
	ai.Post("/save-workout", planHandler.SaveWorkout)
	ai.Get("/nutrition", planHandler.GetNutrition)
	ai.Post("/save-nutrition", planHandler.SaveNutrition)

	ai.Post("/chat-history", chatHandler.Append)
	ai.Get("/chat-history", chatHandler.History)
	ai.Delete("/chat-history", chatHandler.Clear)

	ai.Post("/generate-workout", plannerHandler.GenerateWorkout)
	ai.Post("/generate-nutrition", plannerHandler.GenerateNutrition)
	ai.Post("/chat", plannerHandler.Chat)
}
