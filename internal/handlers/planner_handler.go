package handlers

import (
	"log/slog"

	"github.com/arogyamitra/backend/internal/dto"
	"github.com/arogyamitra/backend/internal/middleware"
	"github.com/arogyamitra/backend/internal/models"
	"github.com/arogyamitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// PlannerHandler proxies generation requests to the external provider and
// persists successful results before returning them.
type PlannerHandler struct {
	plannerService *services.PlannerService
	profileService *services.ProfileService
	planService    *services.PlanService
	chatService    *services.ChatService
}

func NewPlannerHandler(
	plannerService *services.PlannerService,
	profileService *services.ProfileService,
	planService *services.PlanService,
	chatService *services.ChatService,
) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
		profileService: profileService,
		planService:    planService,
		chatService:    chatService,
	}
}

// GenerateWorkout handles POST /ai/generate-workout.
func (h *PlannerHandler) GenerateWorkout(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.loadProfile(identity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	plan, err := h.plannerService.GenerateWorkout(c.Context(), profile)
	if err != nil {
		slog.Error("workout generation failed", "error", err, "user_id", identity.UserID.String())
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if err := h.planService.AppendWorkout(identity.UserID, datatypes.JSON(plan)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save workout plan",
		})
	}

	return c.JSON(plan)
}

// GenerateNutrition handles POST /ai/generate-nutrition.
func (h *PlannerHandler) GenerateNutrition(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.GenerateNutritionRequest
	if err := c.BodyParser(&req); err != nil {
		req.Cuisine = ""
	}

	profile, err := h.loadProfile(identity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	plan, err := h.plannerService.GenerateNutrition(c.Context(), profile, req.Cuisine)
	if err != nil {
		slog.Error("nutrition generation failed", "error", err, "user_id", identity.UserID.String())
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if err := h.planService.AppendMeal(identity.UserID, datatypes.JSON(plan)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save meal plan",
		})
	}

	return c.JSON(plan)
}

// Chat handles POST /ai/chat: one coach turn. The user message is persisted
// before the provider call; if the call fails, the transcript keeps the
// user message and nothing is rolled back.
func (h *PlannerHandler) Chat(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message is required",
		})
	}

	profile, err := h.loadProfile(identity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	if err := h.chatService.Append(identity.UserID, models.RoleUser, req.Message); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save chat history",
		})
	}

	reply, err := h.plannerService.Chat(c.Context(), profile, req.Message)
	if err != nil {
		slog.Error("coach chat failed", "error", err, "user_id", identity.UserID.String())
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if err := h.chatService.Append(identity.UserID, models.RoleAssistant, reply); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save chat history",
		})
	}

	return c.JSON(dto.ChatReplyResponse{Reply: reply})
}

// loadProfile falls back to placeholder defaults when the user has no
// profile row yet.
func (h *PlannerHandler) loadProfile(identity *services.Identity) (*models.Profile, error) {
	profile, err := h.profileService.Get(identity.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = models.DefaultProfile(identity.UserID)
	}
	return profile, nil
}
