package loader

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"orgboard-backend/internal/domain"

	"github.com/rs/zerolog/log"
)

// Expected header names, case-sensitive. There is no id column: ids are
// synthesized from row position.
var headerFields = []string{
	"company_name",
	"industry",
	"size",
	"status",
	"first_engagement",
	"last_engagement",
	"final_engagement_summary",
	"icon_color",
}

// RowIssue is a per-row diagnostic collected during parsing. Parsing is
// pass-through: an issue never rejects the record it describes.
type RowIssue struct {
	Row    int    `json:"row"` // 1-based data row number (header excluded)
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Parse maps CSV text into organization records in document order.
//
// Columns are resolved by header name. Blank lines are skipped, every other
// non-header line becomes one record, and no field is validated except size,
// which is coerced to an int (SizeUnknown when not numeric). IDs are assigned
// 1..N after parsing, so two parses of the same text agree on ids only while
// row order is unchanged.
func Parse(text string) ([]domain.Organization, []RowIssue) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		if err != nil {
			return nil, []RowIssue{{Row: 0, Field: "", Reason: "malformed csv: " + err.Error()}}
		}
		return nil, nil
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var issues []RowIssue
	for _, name := range headerFields {
		if _, ok := index[name]; !ok {
			issues = append(issues, RowIssue{Row: 0, Field: name, Reason: "column missing from header"})
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	orgs := make([]domain.Organization, 0, len(rows)-1)
	for n, row := range rows[1:] {
		org := domain.Organization{
			CompanyName:            field(row, "company_name"),
			Industry:               field(row, "industry"),
			Status:                 field(row, "status"),
			FirstEngagement:        field(row, "first_engagement"),
			LastEngagement:         field(row, "last_engagement"),
			FinalEngagementSummary: field(row, "final_engagement_summary"),
			IconColor:              field(row, "icon_color"),
		}
		rawSize := strings.TrimSpace(field(row, "size"))
		size, err := strconv.Atoi(rawSize)
		if err != nil {
			size = domain.SizeUnknown
			issues = append(issues, RowIssue{Row: n + 1, Field: "size", Reason: "not numeric: " + rawSize})
		}
		org.Size = size
		orgs = append(orgs, org)
	}

	for i := range orgs {
		orgs[i].ID = i + 1
	}
	return orgs, issues
}

// Loader runs the one-shot fetch+parse chain that populates the record store.
type Loader struct {
	Source Source
}

// Load fetches and parses the CSV. It never propagates failure: a fetch or
// parse error yields an empty sequence so the caller can still mark the
// store Ready and render an empty grid.
func (l *Loader) Load(ctx context.Context) []domain.Organization {
	text, err := l.Source.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("organization csv fetch failed; serving empty record set")
		return nil
	}
	orgs, issues := Parse(text)
	for _, issue := range issues {
		log.Warn().Int("row", issue.Row).Str("field", issue.Field).Str("reason", issue.Reason).Msg("organization csv row issue")
	}
	log.Info().Int("records", len(orgs)).Int("issues", len(issues)).Msg("organization csv loaded")
	return orgs
}
