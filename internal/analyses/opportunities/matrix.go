package opportunities

// MatrixEntry is one row of the integration matrix.
type MatrixEntry struct {
	IntegratesWith        []string      `json:"integrates_with"`
	MissingConnections    []string      `json:"missing_connections"`
	PotentialIntegrations []Opportunity `json:"potential_integrations"`
}

// Matrix builds a row for every selected product with a catalog profile. Rows
// compare partner names against the selection as the caller spelled it.
func Matrix(cat Catalog, selected []string) map[string]MatrixEntry {
	matrix := make(map[string]MatrixEntry, len(selected))
	inSelection := make(map[string]bool, len(selected))
	for _, name := range selected {
		inSelection[name] = true
	}

	for _, software := range selected {
		_, profile, ok := cat.ResolvedProfile(software)
		if !ok {
			continue
		}
		entry := MatrixEntry{
			IntegratesWith:        []string{},
			MissingConnections:    []string{},
			PotentialIntegrations: []Opportunity{},
		}
		for _, partner := range profile.IntegratesWith {
			if inSelection[partner] {
				entry.IntegratesWith = append(entry.IntegratesWith, partner)
			}
		}
		for _, other := range selected {
			if other == software || profile.HasPartner(other) {
				continue
			}
			entry.MissingConnections = append(entry.MissingConnections, other)
			entry.PotentialIntegrations = append(entry.PotentialIntegrations, Opportunity{
				SoftwareA:  software,
				SoftwareB:  other,
				Difficulty: DifficultyMedium,
				SetupTime:  "3-4 weeks",
				Benefits:   []string{"Data synchronization", "Workflow automation"},
			})
		}
		matrix[software] = entry
	}
	return matrix
}
