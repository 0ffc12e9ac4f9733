package app

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-api-server/cmd/api-server/app/options"
	_ "inventory-api-server/docs"
)

func testOptions() *options.Options {
	mode := "release"
	threshold := 5
	return &options.Options{
		Mode:      &mode,
		Threshold: &threshold,
	}
}

func TestNewServerRoutes(t *testing.T) {
	t.Setenv("DATABRICKS_HOST", "")
	t.Setenv("DATABRICKS_TOKEN", "")

	server := NewServer(testOptions(), zap.NewNop())

	t.Run("swagger UI is mounted", func(t *testing.T) {
		resp, err := server.app.Test(httptest.NewRequest(fiber.MethodGet, "/swagger/index.html", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("inventory routes are mounted", func(t *testing.T) {
		// no credentials anywhere, so the aggregation gate answers 400
		resp, err := server.app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/inventory", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown routes report a structured 404", func(t *testing.T) {
		resp, err := server.app.Test(httptest.NewRequest(fiber.MethodGet, "/no-such-route", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
