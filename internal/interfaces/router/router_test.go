package router

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"orgboard-backend/internal/config"
	"orgboard-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:        "test",
		Port:       "0",
		SQLitePath: filepath.Join(t.TempDir(), "orgboard.db"),
	}
}

// TestCreateApp_Routes wires the app without Redis or Postgres configured.
func TestCreateApp_Routes(t *testing.T) {
	app, deps, err := CreateApp(testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, deps.Store)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/organizations/grid-columns", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// TestCreateApp_DashboardRendersStoreState.
func TestCreateApp_DashboardRendersStoreState(t *testing.T) {
	app, deps, err := CreateApp(testConfig(t))
	require.NoError(t, err)

	deps.Store.ReplaceAll([]domain.Organization{{ID: 1, CompanyName: "Acme Inc"}})
	deps.Store.MarkReady()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
