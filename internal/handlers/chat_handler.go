package handlers

import (
	"github.com/arogyamitra/backend/internal/dto"
	"github.com/arogyamitra/backend/internal/middleware"
	"github.com/arogyamitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Append handles POST /ai/chat-history.
func (h *ChatHandler) Append(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ChatAppendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Role == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Role and content are required",
		})
	}

	if err := h.chatService.Append(identity.UserID, req.Role, req.Content); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save chat history",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// History handles GET /ai/chat-history: the last 20 messages, oldest first.
func (h *ChatHandler) History(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messages, err := h.chatService.Recent(identity.UserID, services.DefaultHistoryLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch chat history",
		})
	}

	return c.JSON(messages)
}

// Clear handles DELETE /ai/chat-history.
func (h *ChatHandler) Clear(c *fiber.Ctx) error {
	identity, err := middleware.CurrentIdentity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.chatService.Clear(identity.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear chat history",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
