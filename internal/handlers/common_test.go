package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"user-api/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/require"
)

func TestMapServiceError_StatusAndLogging(t *testing.T) {
	var buf bytes.Buffer
	log.DefaultLogger().SetOutput(&buf)
	defer log.DefaultLogger().SetOutput(os.Stderr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: apperrors.ErrUserNotFound, want: fiber.StatusNotFound},
		{name: "duplicate email", err: apperrors.ErrEmailExists, want: fiber.StatusConflict},
		{name: "duplicate username", err: apperrors.ErrUsernameExists, want: fiber.StatusConflict},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, want: fiber.StatusUnauthorized},
		{name: "account not active", err: apperrors.ErrAccountNotActive, want: fiber.StatusForbidden},
		{name: "unanticipated", err: errors.New("connection refused"), want: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return mapServiceError(c, "update user", tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			require.Equal(t, tt.want, resp.StatusCode)

			// every failure is logged with its operation context before
			// translation
			require.Contains(t, buf.String(), "update user")
			require.Contains(t, buf.String(), tt.err.Error())

			// internal detail never reaches the client
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.NotContains(t, string(body), "connection refused")
		})
	}
}
