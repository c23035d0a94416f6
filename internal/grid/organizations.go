package grid

import (
	"strconv"

	"orgboard-backend/internal/domain"
)

// column builds a spec with the default per-column behavior: sortable,
// filterable by value, user-resizable.
func column(field, header string, kind Kind, format Formatter) ColumnSpec {
	return ColumnSpec{
		Field:      field,
		Header:     header,
		Kind:       kind,
		Sortable:   true,
		Filterable: true,
		Resizable:  true,
		Format:     format,
	}
}

// OrganizationColumns is the static column schema for the organizations
// grid. Declared once; independent of the records it renders.
func OrganizationColumns() []ColumnSpec {
	cols := []ColumnSpec{
		column("company_name", "Company", KindBadge, func(org domain.Organization) Cell {
			return Cell{
				Value:        org.CompanyName,
				BadgeColor:   AvatarColor(org.IconColor),
				BadgeInitial: AvatarInitial(org.CompanyName),
			}
		}),
		column("industry", "Industry", KindPlain, func(org domain.Organization) Cell {
			return Cell{Value: org.Industry}
		}),
		column("size", "Size", KindPlain, func(org domain.Organization) Cell {
			if org.Size == domain.SizeUnknown {
				return Cell{Value: ""}
			}
			return Cell{Value: strconv.Itoa(org.Size)}
		}),
		column("status", "Status", KindBadge, func(org domain.Organization) Cell {
			// Value passes through unchanged: any string renders as a badge,
			// there is no enum mapping.
			return Cell{Value: org.Status}
		}),
		column("first_engagement", "First Engagement", KindDateFormatted, func(org domain.Organization) Cell {
			return Cell{Value: FormatEngagementDate(org.FirstEngagement)}
		}),
		column("last_engagement", "Last Engagement", KindDateFormatted, func(org domain.Organization) Cell {
			return Cell{Value: FormatEngagementDate(org.LastEngagement)}
		}),
		column("final_engagement_summary", "Engagement Summary", KindPlain, func(org domain.Organization) Cell {
			return Cell{Value: org.FinalEngagementSummary}
		}),
	}

	// Actions column: a visual affordance only, no bound behavior.
	actions := column("actions", "", KindActionStub, func(domain.Organization) Cell {
		return Cell{}
	})
	actions.Sortable = false
	actions.Filterable = false
	actions.Resizable = false
	return append(cols, actions)
}

// RenderRow formats one record against the schema.
func RenderRow(cols []ColumnSpec, org domain.Organization) Row {
	cells := make(map[string]Cell, len(cols))
	for _, col := range cols {
		cells[col.Field] = col.Format(org)
	}
	return Row{ID: org.ID, Cells: cells}
}

// RenderRows formats a record sequence in order.
func RenderRows(cols []ColumnSpec, orgs []domain.Organization) []Row {
	rows := make([]Row, len(orgs))
	for i, org := range orgs {
		rows[i] = RenderRow(cols, org)
	}
	return rows
}
