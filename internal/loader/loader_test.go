package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"orgboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `company_name,industry,size,status,first_engagement,last_engagement,final_engagement_summary,icon_color
Acme Inc,Software,120,Active,2024-01-05,2025-03-20,Renewal signed.,#2563EB
Globex,Energy,340,Paused,2023-06-12,2024-11-30,On hold until next budget cycle.,#DC2626
Initech,Finance,55,Active,2025-02-06,2025-02-06,First workshop delivered.,
`

// TestParse_AssignsSequentialIDs: N data rows produce N records with ids 1..N
// in document order.
func TestParse_AssignsSequentialIDs(t *testing.T) {
	orgs, issues := Parse(sampleCSV)
	require.Len(t, orgs, 3)
	assert.Empty(t, issues)

	for i, org := range orgs {
		assert.Equal(t, i+1, org.ID)
	}
	assert.Equal(t, "Acme Inc", orgs[0].CompanyName)
	assert.Equal(t, "Software", orgs[0].Industry)
	assert.Equal(t, 120, orgs[0].Size)
	assert.Equal(t, "Active", orgs[0].Status)
	assert.Equal(t, "2024-01-05", orgs[0].FirstEngagement)
	assert.Equal(t, "2025-03-20", orgs[0].LastEngagement)
	assert.Equal(t, "Renewal signed.", orgs[0].FinalEngagementSummary)
	assert.Equal(t, "#2563EB", orgs[0].IconColor)
}

// TestParse_ReparseRecomputesIDs: two parses of the same text are value-equal;
// ids come from row position, not from any prior load.
func TestParse_ReparseRecomputesIDs(t *testing.T) {
	first, _ := Parse(sampleCSV)
	second, _ := Parse(sampleCSV)
	assert.Equal(t, first, second)

	// Reordering rows reassigns ids by the new positions.
	reordered := `company_name,industry,size,status,first_engagement,last_engagement,final_engagement_summary,icon_color
Globex,Energy,340,Paused,2023-06-12,2024-11-30,On hold until next budget cycle.,#DC2626
Acme Inc,Software,120,Active,2024-01-05,2025-03-20,Renewal signed.,#2563EB
`
	swapped, _ := Parse(reordered)
	require.Len(t, swapped, 2)
	assert.Equal(t, 1, swapped[0].ID)
	assert.Equal(t, "Globex", swapped[0].CompanyName)
	assert.Equal(t, 2, swapped[1].ID)
	assert.Equal(t, "Acme Inc", swapped[1].CompanyName)
}

// TestParse_NonNumericSize: the record still loads, size becomes the sentinel,
// and a row issue is collected.
func TestParse_NonNumericSize(t *testing.T) {
	csv := `company_name,industry,size,status,first_engagement,last_engagement,final_engagement_summary,icon_color
Acme Inc,Software,lots,Active,2024-01-05,2025-03-20,Renewal signed.,#2563EB
`
	orgs, issues := Parse(csv)
	require.Len(t, orgs, 1)
	assert.Equal(t, domain.SizeUnknown, orgs[0].Size)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Row)
	assert.Equal(t, "size", issues[0].Field)
}

// TestParse_HeaderOnly: an empty CSV (header row only) yields an empty
// sequence, not an error.
func TestParse_HeaderOnly(t *testing.T) {
	orgs, issues := Parse("company_name,industry,size,status,first_engagement,last_engagement,final_engagement_summary,icon_color\n")
	assert.Empty(t, orgs)
	assert.Empty(t, issues)
}

// TestParse_SkipsBlankLines.
func TestParse_SkipsBlankLines(t *testing.T) {
	csv := `company_name,industry,size,status,first_engagement,last_engagement,final_engagement_summary,icon_color
Acme Inc,Software,120,Active,2024-01-05,2025-03-20,Renewal signed.,#2563EB

Globex,Energy,340,Paused,2023-06-12,2024-11-30,On hold.,#DC2626
`
	orgs, _ := Parse(csv)
	require.Len(t, orgs, 2)
	assert.Equal(t, 2, orgs[1].ID)
	assert.Equal(t, "Globex", orgs[1].CompanyName)
}

// TestParse_QuotedCommaInSummary: free-text summaries may carry commas.
func TestParse_QuotedCommaInSummary(t *testing.T) {
	csv := `company_name,industry,size,status,first_engagement,last_engagement,final_engagement_summary,icon_color
Acme Inc,Software,120,Active,2024-01-05,2025-03-20,"Two phases shipped, third in review.",#2563EB
`
	orgs, _ := Parse(csv)
	require.Len(t, orgs, 1)
	assert.Equal(t, "Two phases shipped, third in review.", orgs[0].FinalEngagementSummary)
}

// TestParse_MissingIconColorPassesThrough: the empty value is stored as-is;
// the default color is a render-time concern.
func TestParse_MissingIconColorPassesThrough(t *testing.T) {
	orgs, _ := Parse(sampleCSV)
	require.Len(t, orgs, 3)
	assert.Equal(t, "", orgs[2].IconColor)
}

// TestParse_MissingHeaderColumn: records still load with empty values and a
// header issue is reported once.
func TestParse_MissingHeaderColumn(t *testing.T) {
	csv := `company_name,industry,size,status,first_engagement,last_engagement,final_engagement_summary
Acme Inc,Software,120,Active,2024-01-05,2025-03-20,Renewal signed.
`
	orgs, issues := Parse(csv)
	require.Len(t, orgs, 1)
	assert.Equal(t, "", orgs[0].IconColor)
	require.Len(t, issues, 1)
	assert.Equal(t, "icon_color", issues[0].Field)
}

// TestLoad_FetchFailureYieldsEmpty: a missing file resolves to an empty
// sequence instead of an error.
func TestLoad_FetchFailureYieldsEmpty(t *testing.T) {
	l := &Loader{Source: &FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")}}
	orgs := l.Load(context.Background())
	assert.Empty(t, orgs)
}

// TestLoad_FileSource.
func TestLoad_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgs.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	l := &Loader{Source: &FileSource{Path: path}}
	orgs := l.Load(context.Background())
	require.Len(t, orgs, 3)
	assert.Equal(t, 1, orgs[0].ID)
}
