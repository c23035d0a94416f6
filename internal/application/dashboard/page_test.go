package dashboard

import (
	"testing"

	"orgboard-backend/internal/domain"
	"orgboard-backend/internal/grid"
	"orgboard-backend/internal/store"

	"github.com/stretchr/testify/assert"
)

// TestRenderPageHTML embeds the shell controls and the formatted grid payload.
func TestRenderPageHTML(t *testing.T) {
	cols := grid.OrganizationColumns()
	rows := grid.RenderRows(cols, []domain.Organization{
		{ID: 1, CompanyName: "Acme Inc", FirstEngagement: "2025-02-06", IconColor: "#2563EB"},
	})

	html := RenderPageHTML(store.StateReady, cols, rows)

	assert.Contains(t, html, "Acme Inc")
	assert.Contains(t, html, "02/06/2025")
	assert.Contains(t, html, "New Company")
	assert.Contains(t, html, "Search companies")
	assert.Contains(t, html, "create-intent")
}

// TestRenderPageHTML_Empty renders without rows and without error.
func TestRenderPageHTML_Empty(t *testing.T) {
	html := RenderPageHTML(store.StateReady, grid.OrganizationColumns(), nil)
	assert.Contains(t, html, "No companies yet")
}
