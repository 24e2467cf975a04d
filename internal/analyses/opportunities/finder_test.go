package opportunities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisorpilot/internal/catalog"
)

const testIntegrations = `{
	"Salesforce": {"integrates_with": ["QuickBooks", "Slack", "Gmail", "DocuSign", "Mailchimp", "Zapier"], "verified": true},
	"QuickBooks": {"integrates_with": ["Salesforce"], "verified": true},
	"Slack": {"integrates_with": ["Gmail"], "verified": false},
	"Gmail": {"integrates_with": [], "verified": true},
	"Legacy Tool": {"integrates_with": ["Gmail"], "verified": false},
	"Lonely": {"integrates_with": [], "verified": true}
}`

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.Load([]byte(`{}`), []byte(testIntegrations))
	require.NoError(t, err)
	return store
}

func TestFindQuickWinForVerifiedPair(t *testing.T) {
	got := Find(testCatalog(t), []string{"Salesforce", "QuickBooks"}, nil)

	require.Len(t, got.Existing, 1)
	require.Len(t, got.QuickWins, 1)
	assert.Empty(t, got.Missing)

	win := got.QuickWins[0]
	assert.Equal(t, "Salesforce", win.SoftwareA)
	assert.Equal(t, "QuickBooks", win.SoftwareB)
	assert.True(t, win.IntegrationExists)
	assert.Equal(t, DifficultyEasy, win.Difficulty)
	assert.Equal(t, "1-2 weeks", win.SetupTime)
}

func TestFindEdgeInEitherDirection(t *testing.T) {
	got := Find(testCatalog(t), []string{"Gmail", "Slack"}, nil)

	require.Len(t, got.Existing, 1)
	assert.Empty(t, got.QuickWins, "slack is unverified and gmail has few partners")
	assert.Empty(t, got.Missing)
}

func TestFindQuickWinByPartnerCount(t *testing.T) {
	// Salesforce lists six partners, so the pair qualifies even though Slack is unverified.
	got := Find(testCatalog(t), []string{"Salesforce", "Slack"}, nil)
	require.Len(t, got.QuickWins, 1)

	// Reversed order puts Slack on the A side with a short partner list.
	got = Find(testCatalog(t), []string{"Slack", "Salesforce"}, nil)
	require.Len(t, got.Existing, 1)
	assert.Empty(t, got.QuickWins)
}

func TestFindMissing(t *testing.T) {
	got := Find(testCatalog(t), []string{"Lonely", "QuickBooks", "Homegrown ERP"}, nil)

	assert.Empty(t, got.Existing)
	require.Len(t, got.Missing, 3)
	for _, opp := range got.Missing {
		assert.False(t, opp.IntegrationExists)
		assert.Equal(t, DifficultyMedium, opp.Difficulty)
		assert.Equal(t, "3-4 weeks", opp.SetupTime)
		assert.Equal(t, []string{"Potential data sync", "Reduced manual work", "Better reporting"}, opp.Benefits)
	}
}

func TestFindResolvesFuzzyNames(t *testing.T) {
	got := Find(testCatalog(t), []string{"salesforce", "Quick Books"}, nil)
	require.Len(t, got.Existing, 1)
	assert.Equal(t, "salesforce", got.Existing[0].SoftwareA, "raw names are reported")
}

func TestFindSkipsAlreadyIntegratedPairs(t *testing.T) {
	selected := []string{"Salesforce", "QuickBooks", "Slack", "Lonely"}
	statuses := map[string]Status{
		"QuickBooks": {InUse: true, Available: []string{"Salesforce"}, Active: []string{"Salesforce"}},
		"Lonely":     {InUse: true, Available: []string{"Slack"}, Active: []string{"Slack"}},
	}

	got := Find(testCatalog(t), selected, statuses)

	for _, bucket := range [][]Opportunity{got.Missing, got.Existing, got.QuickWins} {
		for _, opp := range bucket {
			pair := map[string]bool{opp.SoftwareA: true, opp.SoftwareB: true}
			assert.False(t, pair["Salesforce"] && pair["QuickBooks"], "salesforce/quickbooks already wired")
			assert.False(t, pair["Lonely"] && pair["Slack"], "lonely/slack already wired")
			assert.False(t, opp.AlreadyIntegrated)
		}
	}
	assert.Len(t, got.Existing, 1, "only salesforce/slack remains an existing edge")
}

func TestFindEmptySelection(t *testing.T) {
	got := Find(testCatalog(t), nil, nil)
	assert.NotNil(t, got.Missing)
	assert.NotNil(t, got.Existing)
	assert.NotNil(t, got.QuickWins)
	assert.Empty(t, got.Missing)
}

func TestMatrix(t *testing.T) {
	matrix := Matrix(testCatalog(t), []string{"Salesforce", "QuickBooks", "Lonely", "Homegrown ERP"})

	require.Contains(t, matrix, "Salesforce")
	assert.Equal(t, []string{"QuickBooks"}, matrix["Salesforce"].IntegratesWith)
	assert.Equal(t, []string{"Lonely", "Homegrown ERP"}, matrix["Salesforce"].MissingConnections)
	require.Len(t, matrix["Salesforce"].PotentialIntegrations, 2)
	assert.Equal(t, DifficultyMedium, matrix["Salesforce"].PotentialIntegrations[0].Difficulty)

	assert.Empty(t, matrix["Lonely"].IntegratesWith)
	assert.Len(t, matrix["Lonely"].MissingConnections, 3)
	assert.NotContains(t, matrix, "Homegrown ERP")
}
