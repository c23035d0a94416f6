package domain

// SizeUnknown is the sentinel stored when the CSV size field is not numeric.
const SizeUnknown = -1

// DefaultIconColor is the avatar background used when a record has no icon_color.
const DefaultIconColor = "#9CA3AF"

// Organization is one dashboard record mapped from a CSV row.
//
// IDs are positional (1-based, in document order) and assigned at load time,
// so they are stable only within a single load: reloading the same file
// regenerates them from row position. Records are never mutated after
// construction; the whole sequence is replaced on each load.
type Organization struct {
	ID                     int    `json:"id"`
	CompanyName            string `json:"company_name"`
	Industry               string `json:"industry"`
	Size                   int    `json:"size"`
	Status                 string `json:"status"`
	FirstEngagement        string `json:"first_engagement"`
	LastEngagement         string `json:"last_engagement"`
	FinalEngagementSummary string `json:"final_engagement_summary"`
	IconColor              string `json:"icon_color"`
}
