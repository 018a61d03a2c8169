package handlers

import (
	"github.com/arogyamitra/backend/internal/dto"
	"github.com/arogyamitra/backend/internal/middleware"
	"github.com/arogyamitra/backend/internal/models"
	"github.com/arogyamitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /profile. A user without a profile row gets an empty
// object, not an error.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.profileService.Get(identity.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}
	if profile == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(profile)
}

// Put handles POST /profile as a full replace: every field is taken from
// the request body, absent ones included.
func (h *ProfileHandler) Put(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.profileService.Put(identity.UserID, &profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save profile",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
