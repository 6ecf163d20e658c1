package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"user-api/internal/config"
	"user-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWT.Secret = "middleware-secret"
	cfg.Auth.JWT.Expiry = "1h"
	return cfg
}

func newProtectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(cfg), func(c *fiber.Ctx) error {
		claims := c.Locals("claims").(*utils.Claims)
		return c.JSON(fiber.Map{"userId": claims.UserID})
	})
	app.Get("/optional", OptionalAuth(cfg), func(c *fiber.Ctx) error {
		if claims, ok := c.Locals("claims").(*utils.Claims); ok {
			return c.JSON(fiber.Map{"userId": claims.UserID})
		}
		return c.JSON(fiber.Map{"userId": nil})
	})
	return app
}

func issueToken(t *testing.T, secret string, expiry time.Duration) string {
	t.Helper()
	tok, err := utils.GenerateToken(utils.Claims{UserID: 7, Email: "a@x.com", Username: "a1"}, []byte(secret), expiry)
	require.NoError(t, err)
	return tok
}

func TestRequireAuth_MissingToken(t *testing.T) {
	app := newProtectedApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	app := newProtectedApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "other-secret", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	app := newProtectedApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "middleware-secret", -time.Second))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	app := newProtectedApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+issueToken(t, "middleware-secret", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalAuth_IgnoresBadTokens(t *testing.T) {
	app := newProtectedApp(testConfig())

	// no token at all is not an error on an optional path
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// neither is a garbage token
	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
