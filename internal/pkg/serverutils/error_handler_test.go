package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"notely-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nil))
	app.Get("/boom", handler)
	return app
}

func TestErrorHandlerMapsAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", apperror.NotFound("Entry not found."), 404, "Entry not found."},
		{"validation", apperror.Validation("Missing search query."), 400, "Missing search query."},
		{"conflict", apperror.Conflict("Email already registered."), 400, "Email already registered."},
		{"unauthenticated", apperror.Unauthenticated("No token provided."), 401, "No token provided."},
		{"external", apperror.External("Summarization service unavailable.", errors.New("timeout")), 502, "Summarization service unavailable."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newErrorApp(func(ctx *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body Response[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestErrorHandlerMasksUnknownErrors(t *testing.T) {
	app := newErrorApp(func(ctx *fiber.Ctx) error {
		return errors.New("pq: relation \"entries\" does not exist")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body Response[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Something went wrong.", body.Message)
}

func TestErrorHandlerPassesThroughFiberErrors(t *testing.T) {
	app := newErrorApp(func(ctx *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestErrorHandlerNoErrorPassthrough(t *testing.T) {
	app := newErrorApp(func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", "data"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
