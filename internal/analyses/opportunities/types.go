package opportunities

import "advisorpilot/internal/catalog"

// Difficulty of wiring two products together.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Status is the caller's view of how one product is wired up today.
type Status struct {
	InUse     bool     `json:"isIntegrated"`
	Available []string `json:"availableIntegrations"`
	Active    []string `json:"activeIntegrations"`
}

// IsActive reports whether name is among the active integrations.
func (s Status) IsActive(name string) bool {
	for _, active := range s.Active {
		if active == name {
			return true
		}
	}
	return false
}

// Unused returns the available integrations that are not active, in order.
func (s Status) Unused() []string {
	out := make([]string, 0, len(s.Available))
	for _, name := range s.Available {
		if !s.IsActive(name) {
			out = append(out, name)
		}
	}
	return out
}

// Opportunity is one unordered pair of selected products.
type Opportunity struct {
	SoftwareA         string     `json:"software_a"`
	SoftwareB         string     `json:"software_b"`
	IntegrationExists bool       `json:"integration_exists"`
	Difficulty        Difficulty `json:"difficulty"`
	SetupTime         string     `json:"estimated_setup_time"`
	Benefits          []string   `json:"benefits"`
	AlreadyIntegrated bool       `json:"already_integrated"`
}

// Opportunities groups the pairs by how they should be pursued.
type Opportunities struct {
	Missing   []Opportunity `json:"missing_integrations"`
	Existing  []Opportunity `json:"existing_integrations"`
	QuickWins []Opportunity `json:"quick_wins"`
}

// Catalog is the lookup surface the finder needs.
type Catalog interface {
	ResolvedProfile(raw string) (string, catalog.SoftwareProfile, bool)
}
