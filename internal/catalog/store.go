package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
)

//go:embed data/*.json
var dataFiles embed.FS

const (
	industryFile    = "data/industries.json"
	integrationFile = "data/integrations.json"
)

// Store is the read-only industry and integration catalog. It is safe for
// concurrent use because nothing mutates it after Load.
type Store struct {
	industries   map[string]IndustryProfile
	integrations map[string]SoftwareProfile
	industryKeys []string
	softwareKeys []string
}

// Default loads the catalog compiled into the binary.
func Default() (*Store, error) {
	industryRaw, err := dataFiles.ReadFile(industryFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded industries: %w", err)
	}
	integrationRaw, err := dataFiles.ReadFile(integrationFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded integrations: %w", err)
	}
	return Load(industryRaw, integrationRaw)
}

// LoadFiles loads the catalog from disk. An empty path falls back to the
// embedded document for that source.
func LoadFiles(industryPath, integrationPath string) (*Store, error) {
	industryRaw, err := readOrEmbedded(industryPath, industryFile)
	if err != nil {
		return nil, err
	}
	integrationRaw, err := readOrEmbedded(integrationPath, integrationFile)
	if err != nil {
		return nil, err
	}
	return Load(industryRaw, integrationRaw)
}

func readOrEmbedded(path, embedded string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return dataFiles.ReadFile(embedded)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return raw, nil
}

// Load parses both catalog documents. Only a document that is not a JSON object
// is an error; malformed entries inside it degrade to empty fields.
func Load(industryRaw, integrationRaw []byte) (*Store, error) {
	var industryDoc map[string]json.RawMessage
	if err := json.Unmarshal(industryRaw, &industryDoc); err != nil {
		return nil, fmt.Errorf("parse industry catalog: %w", err)
	}
	var integrationDoc map[string]json.RawMessage
	if err := json.Unmarshal(integrationRaw, &integrationDoc); err != nil {
		return nil, fmt.Errorf("parse integration catalog: %w", err)
	}

	s := &Store{
		industries:   make(map[string]IndustryProfile, len(industryDoc)),
		integrations: make(map[string]SoftwareProfile, len(integrationDoc)),
	}
	for name, raw := range industryDoc {
		s.industries[name] = decodeIndustry(name, raw)
		s.industryKeys = append(s.industryKeys, name)
	}
	for name, raw := range integrationDoc {
		profile := decodeSoftware(raw)
		profile.Name = name
		s.integrations[name] = profile
		s.softwareKeys = append(s.softwareKeys, name)
	}
	sort.Strings(s.industryKeys)
	sort.Strings(s.softwareKeys)
	return s, nil
}

// Industries returns the industry names in ascending order.
func (s *Store) Industries() []string {
	return slices.Clone(s.industryKeys)
}

// SoftwareForIndustry returns the industry-catalog software list, empty for an
// unknown industry.
func (s *Store) SoftwareForIndustry(industry string) []SoftwareProfile {
	profile, ok := s.industries[industry]
	if !ok {
		return []SoftwareProfile{}
	}
	return cloneProfiles(profile.Software)
}

// SoftwareWithIntegrationCounts annotates each industry entry with the partner
// count of its resolved global profile, or zero when it cannot be resolved.
func (s *Store) SoftwareWithIntegrationCounts(industry string) []IndustrySoftware {
	software := s.SoftwareForIndustry(industry)
	out := make([]IndustrySoftware, 0, len(software))
	for _, sw := range software {
		count := 0
		if key, ok := s.Resolve(sw.Name); ok {
			count = len(s.integrations[key].IntegratesWith)
		}
		out = append(out, IndustrySoftware{SoftwareProfile: sw, IntegrationCount: count})
	}
	return out
}

// FrictionsForIndustry returns the pain points of an industry, empty when unknown.
func (s *Store) FrictionsForIndustry(industry string) []string {
	profile, ok := s.industries[industry]
	if !ok {
		return []string{}
	}
	return slices.Clone(profile.Frictions)
}

// IntegrationProfile looks a name up in the global catalog by exact key.
func (s *Store) IntegrationProfile(name string) (SoftwareProfile, bool) {
	profile, ok := s.integrations[name]
	if !ok {
		return SoftwareProfile{}, false
	}
	return cloneProfile(profile), true
}

// SoftwareNames returns the global catalog keys in ascending order.
func (s *Store) SoftwareNames() []string {
	return slices.Clone(s.softwareKeys)
}

func decodeIndustry(name string, raw json.RawMessage) IndustryProfile {
	profile := IndustryProfile{Name: name, Software: []SoftwareProfile{}, Frictions: []string{}}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return profile
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(fields["software"], &entries); err == nil {
		for _, entry := range entries {
			sw := decodeSoftware(entry)
			if strings.TrimSpace(sw.Name) == "" {
				continue
			}
			profile.Software = append(profile.Software, sw)
		}
	}
	var painPoints map[string]json.RawMessage
	if err := json.Unmarshal(fields["pain_points"], &painPoints); err == nil {
		profile.Frictions = stringList(painPoints["frictions"])
	}
	return profile
}

func decodeSoftware(raw json.RawMessage) SoftwareProfile {
	profile := SoftwareProfile{
		MainFunctions:  []string{},
		IntegratesWith: []string{},
		BestUsedFor:    []string{},
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return profile
	}
	_ = json.Unmarshal(fields["name"], &profile.Name)
	_ = json.Unmarshal(fields["verified"], &profile.Verified)
	profile.MainFunctions = stringList(fields["main_functions"])
	profile.IntegratesWith = stringList(fields["integrates_with"])
	profile.BestUsedFor = stringList(fields["best_used_for_industries"])
	return profile
}

// stringList keeps the string elements of a JSON array and drops the rest.
func stringList(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func cloneProfiles(in []SoftwareProfile) []SoftwareProfile {
	out := make([]SoftwareProfile, len(in))
	for i, p := range in {
		out[i] = cloneProfile(p)
	}
	return out
}

func cloneProfile(p SoftwareProfile) SoftwareProfile {
	p.MainFunctions = slices.Clone(p.MainFunctions)
	p.IntegratesWith = slices.Clone(p.IntegratesWith)
	p.BestUsedFor = slices.Clone(p.BestUsedFor)
	return p
}
