package middleware

import (
	"errors"

	"github.com/arogyamitra/backend/internal/config"
	"github.com/arogyamitra/backend/internal/dto"
	"github.com/arogyamitra/backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// JWTProtected is stage one of the request gate: signature verification.
// An absent token is 401; a present but malformed or forged token is 403,
// so clients can tell "log in" from "this session is permanently invalid".
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if c.Get(fiber.HeaderAuthorization) == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Authorization token required",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid or malformed token",
			})
		},
	})
}

// UserAlive is stage two: the signature proves the token was issued here,
// but the subject may have disappeared since. Stale sessions are rejected
// with 401 so the client re-authenticates.
func UserAlive(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := CurrentIdentity(c)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid token claims",
			})
		}

		if !auth.Exists(identity.UserID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User no longer exists. Please log in again.",
			})
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// CurrentIdentity extracts the authenticated identity from the request
// context: the cached value set by UserAlive, or the verified JWT claims.
func CurrentIdentity(c *fiber.Ctx) (*services.Identity, error) {
	if identity, ok := c.Locals(identityKey).(*services.Identity); ok {
		return identity, nil
	}

	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return services.IdentityFromClaims(claims)
}
