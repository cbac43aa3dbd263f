package api

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, NewSiteHandler(zap.NewNop(), "website-test"))
	return app
}

func TestReturnHTTP(t *testing.T) {
	app := newTestApp()

	req, _ := http.NewRequest(http.MethodGet, "/return_http", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello World™</h1>", string(body))
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]string
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, "website-test", result["service"])
	assert.NotEmpty(t, result["uptime"])
}

func TestMetricsRouteRegistered(t *testing.T) {
	app := newTestApp()

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
