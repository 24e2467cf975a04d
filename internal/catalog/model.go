package catalog

// SoftwareProfile describes one software product. Industry-catalog entries never
// carry Verified; global integration-catalog entries do.
type SoftwareProfile struct {
	Name           string   `json:"name"`
	MainFunctions  []string `json:"main_functions"`
	IntegratesWith []string `json:"integrates_with"`
	BestUsedFor    []string `json:"best_used_for_industries"`
	Verified       bool     `json:"verified"`
}

// IndustryProfile is the software list and pain points of one industry vertical.
type IndustryProfile struct {
	Name      string            `json:"name"`
	Software  []SoftwareProfile `json:"software"`
	Frictions []string          `json:"frictions"`
}

// IndustrySoftware is an industry-catalog entry annotated with the partner count
// of its resolved global profile.
type IndustrySoftware struct {
	SoftwareProfile
	IntegrationCount int `json:"integration_count"`
}

// HasPartner reports whether name is listed as an integration partner.
func (p SoftwareProfile) HasPartner(name string) bool {
	for _, partner := range p.IntegratesWith {
		if partner == name {
			return true
		}
	}
	return false
}
