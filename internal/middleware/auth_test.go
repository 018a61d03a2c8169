package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arogyamitra/backend/internal/config"
	"github.com/arogyamitra/backend/internal/dto"
	"github.com/arogyamitra/backend/internal/models"
	"github.com/arogyamitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type gateFixture struct {
	app  *fiber.App
	db   *gorm.DB
	auth *services.AuthService
	cfg  *config.Config
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}))

	cfg := &config.Config{JWTSecret: "test-secret"}
	auth := services.NewAuthService(db, services.NewTokenService(cfg))

	app := fiber.New()
	app.Get("/protected", JWTProtected(cfg), UserAlive(auth), func(c *fiber.Ctx) error {
		identity, err := CurrentIdentity(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"email": identity.Email})
	})

	return &gateFixture{app: app, db: db, auth: auth, cfg: cfg}
}

func (f *gateFixture) request(t *testing.T, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGateMissingToken(t *testing.T) {
	f := newGateFixture(t)

	resp := f.request(t, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Authorization token required", body.Message)
}

func TestGateMalformedToken(t *testing.T) {
	f := newGateFixture(t)

	resp := f.request(t, "not-a-jwt")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid or malformed token", body.Message)
}

func TestGateForgedToken(t *testing.T) {
	f := newGateFixture(t)

	forger := services.NewTokenService(&config.Config{JWTSecret: "other-secret"})
	signup, err := f.auth.Signup(&dto.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})
	require.NoError(t, err)

	token, err := forger.Issue(signup.User.ID, "a@x.com")
	require.NoError(t, err)

	resp := f.request(t, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGateStaleUser(t *testing.T) {
	f := newGateFixture(t)

	signup, err := f.auth.Signup(&dto.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})
	require.NoError(t, err)
	require.NoError(t, f.db.Delete(&models.User{}, "id = ?", signup.User.ID).Error)

	resp := f.request(t, signup.Token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User no longer exists. Please log in again.", body.Message)
}

func TestGateValidToken(t *testing.T) {
	f := newGateFixture(t)

	signup, err := f.auth.Signup(&dto.SignupRequest{Email: "a@x.com", Password: "pw", Name: "A"})
	require.NoError(t, err)

	resp := f.request(t, signup.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "a@x.com", body["email"])
}
