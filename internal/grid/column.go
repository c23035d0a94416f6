// Package grid owns the tabular presentation contract: a static column
// schema plus pure per-column formatters. Sorting, filtering and column
// sizing are performed by the client grid widget from the hints carried in
// the schema; this package only supplies data and format hints.
package grid

import (
	"strings"
	"time"
	"unicode"

	"orgboard-backend/internal/domain"
)

// Kind discriminates the column variants.
type Kind string

const (
	KindPlain         Kind = "plain"
	KindBadge         Kind = "badge"
	KindDateFormatted Kind = "dateFormatted"
	KindActionStub    Kind = "actionStub"
)

// Cell is one formatted grid cell. Badge fields are set only by badge-kind
// formatters.
type Cell struct {
	Value        string `json:"value"`
	BadgeColor   string `json:"badge_color,omitempty"`
	BadgeInitial string `json:"badge_initial,omitempty"`
}

// Formatter derives a cell from a record. Formatters must be pure: no
// record mutation, no external state.
type Formatter func(org domain.Organization) Cell

// ColumnSpec declares one grid column. The schema is static and independent
// of the data it renders.
type ColumnSpec struct {
	Field      string    `json:"field"`
	Header     string    `json:"header"`
	Kind       Kind      `json:"kind"`
	Sortable   bool      `json:"sortable"`
	Filterable bool      `json:"filterable"`
	Resizable  bool      `json:"resizable"`
	Format     Formatter `json:"-"`
}

// Row is one formatted grid row keyed by column field.
type Row struct {
	ID    int             `json:"id"`
	Cells map[string]Cell `json:"cells"`
}

const isoDateLayout = "2006-01-02"
const displayDateLayout = "01/02/2006"

// FormatEngagementDate reformats an ISO 8601 date to MM/DD/YYYY at render
// time. Empty or unparseable input renders as the empty string, never an
// error; source values are stored as-is and only reformatted here.
func FormatEngagementDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return ""
	}
	return t.Format(displayDateLayout)
}

// AvatarColor resolves the avatar badge background, falling back to the
// default gray when the record carries no icon_color.
func AvatarColor(iconColor string) string {
	if strings.TrimSpace(iconColor) == "" {
		return domain.DefaultIconColor
	}
	return iconColor
}

// AvatarInitial returns the uppercased first letter of the company name, or
// empty for a nameless record.
func AvatarInitial(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}
