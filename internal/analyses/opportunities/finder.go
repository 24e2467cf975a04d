package opportunities

const quickWinPartnerThreshold = 5

var (
	existingBenefits = []string{"Eliminate duplicate data entry", "Real-time data sync", "Improved workflow efficiency"}
	missingBenefits  = []string{"Potential data sync", "Reduced manual work", "Better reporting"}
)

// Find classifies every unordered pair of the selection. Pairs the caller has
// already wired up are left out of every bucket.
func Find(cat Catalog, selected []string, statuses map[string]Status) Opportunities {
	result := Opportunities{
		Missing:   []Opportunity{},
		Existing:  []Opportunity{},
		QuickWins: []Opportunity{},
	}

	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			rawA, rawB := selected[i], selected[j]
			nameA, profileA, _ := cat.ResolvedProfile(rawA)
			nameB, profileB, _ := cat.ResolvedProfile(rawB)

			if alreadyIntegrated(statuses, rawA, rawB) {
				continue
			}

			exists := profileA.HasPartner(nameB) || profileB.HasPartner(nameA)
			opp := newOpportunity(rawA, rawB, exists)
			if !exists {
				result.Missing = append(result.Missing, opp)
				continue
			}
			result.Existing = append(result.Existing, opp)
			if (profileA.Verified && profileB.Verified) || len(profileA.IntegratesWith) > quickWinPartnerThreshold {
				result.QuickWins = append(result.QuickWins, opp)
			}
		}
	}
	return result
}

func alreadyIntegrated(statuses map[string]Status, a, b string) bool {
	if statuses == nil {
		return false
	}
	if status, ok := statuses[a]; ok && status.IsActive(b) {
		return true
	}
	if status, ok := statuses[b]; ok && status.IsActive(a) {
		return true
	}
	return false
}

func newOpportunity(a, b string, exists bool) Opportunity {
	opp := Opportunity{
		SoftwareA:         a,
		SoftwareB:         b,
		IntegrationExists: exists,
	}
	if exists {
		opp.Difficulty = DifficultyEasy
		opp.SetupTime = "1-2 weeks"
		opp.Benefits = append([]string(nil), existingBenefits...)
	} else {
		opp.Difficulty = DifficultyMedium
		opp.SetupTime = "3-4 weeks"
		opp.Benefits = append([]string(nil), missingBenefits...)
	}
	return opp
}
