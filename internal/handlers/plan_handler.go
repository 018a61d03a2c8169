package handlers

import (
	"github.com/arogyamitra/backend/internal/dto"
	"github.com/arogyamitra/backend/internal/middleware"
	"github.com/arogyamitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type PlanHandler struct {
	planService *services.PlanService
}

func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetWorkout handles GET /ai/workout: the most recent plan, or [] if the
// user has never saved one.
func (h *PlanHandler) GetWorkout(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	plan, err := h.planService.LatestWorkout(identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch workout plan",
		})
	}
	if plan == nil {
		return c.JSON([]interface{}{})
	}

	return c.JSON(plan)
}

// SaveWorkout handles POST /ai/save-workout. The payload is appended as-is;
// shape is the generation contract's problem, not the store's.
func (h *PlanHandler) SaveWorkout(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SavePlanRequest
	if err := c.BodyParser(&req); err != nil || len(req.Plan) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Plan payload is required",
		})
	}

	if err := h.planService.AppendWorkout(identity.UserID, datatypes.JSON(req.Plan)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save workout plan",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// GetNutrition handles GET /ai/nutrition.
func (h *PlanHandler) GetNutrition(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	plan, err := h.planService.LatestMeal(identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch meal plan",
		})
	}
	if plan == nil {
		return c.JSON([]interface{}{})
	}

	return c.JSON(plan)
}

// SaveNutrition handles POST /ai/save-nutrition.
func (h *PlanHandler) SaveNutrition(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SavePlanRequest
	if err := c.BodyParser(&req); err != nil || len(req.Plan) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Plan payload is required",
		})
	}

	if err := h.planService.AppendMeal(identity.UserID, datatypes.JSON(req.Plan)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save meal plan",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
