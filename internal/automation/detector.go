// Package automation spots workflow-automation opportunities in a selected
// software stack and scores how automated the stack already is.
package automation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"advisorpilot/internal/catalog"
)

const (
	pairBase           = 8000
	pairSpread         = 12000
	platformSavings    = 15000
	crmEmailSavings    = 12000
	missingPlatformCap = 3
)

var platformKeywords = []string{"zapier", "automation", "workflow", "integration", "api"}

// Jitter supplies the illustrative variance in pairwise savings. It must return
// values in [0,1).
type Jitter interface {
	Float64() float64
}

type globalJitter struct{}

func (globalJitter) Float64() float64 { return rand.Float64() }

// FixedJitter always returns the same value; useful for reproducible output.
type FixedJitter float64

func (f FixedJitter) Float64() float64 { return float64(f) }

// Catalog is the lookup surface the detector needs.
type Catalog interface {
	ResolvedProfile(raw string) (string, catalog.SoftwareProfile, bool)
	SoftwareNames() []string
	IntegrationProfile(name string) (catalog.SoftwareProfile, bool)
}

// Detector is safe for concurrent use when its Jitter is.
type Detector struct {
	catalog Catalog
	jitter  Jitter
}

// NewDetector builds a detector. A nil jitter uses the process-wide random source.
func NewDetector(cat Catalog, jitter Jitter) *Detector {
	if jitter == nil {
		jitter = globalJitter{}
	}
	return &Detector{catalog: cat, jitter: jitter}
}

type resolved struct {
	raw     string
	key     string
	profile catalog.SoftwareProfile
	found   bool
}

// Detect analyses the selection. employeeCount may be nil.
func (d *Detector) Detect(selected []string, companySize string, employeeCount *int) Analysis {
	stack := make([]resolved, 0, len(selected))
	for _, raw := range selected {
		key, profile, ok := d.catalog.ResolvedProfile(raw)
		stack = append(stack, resolved{raw: raw, key: key, profile: profile, found: ok})
	}

	detected := d.detectPlatforms(stack)
	missing := d.missingPlatforms(stack)
	multiplier := sizeMultiplier(employeeCount)

	opps := d.pairOpportunities(stack, multiplier)
	if len(detected) == 0 && len(selected) >= 2 {
		opps = append(opps, addPlatformOpportunity(selected, multiplier))
	}
	if opp, ok := crmEmailOpportunity(selected, multiplier); ok {
		opps = append(opps, opp)
	}
	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].EstimatedSavings > opps[j].EstimatedSavings
	})

	total := 0
	for _, opp := range opps {
		total += opp.EstimatedSavings
	}

	return Analysis{
		HasAutomationPlatform:  len(detected) > 0,
		DetectedPlatforms:      detected,
		MissingPlatforms:       missing,
		Opportunities:          opps,
		PotentialAnnualSavings: total,
		MaturityScore:          maturity(len(detected), len(selected), directedEdges(stack)),
		CompanySize:            companySize,
	}
}

// detectPlatforms keeps selected products whose name, functions or partners
// mention an automation keyword. Unresolved products never qualify.
func (d *Detector) detectPlatforms(stack []resolved) []string {
	detected := []string{}
	for _, sw := range stack {
		if !sw.found {
			continue
		}
		if containsKeyword(sw.key) || anyContainsKeyword(sw.profile.MainFunctions) || anyContainsKeyword(sw.profile.IntegratesWith) {
			detected = append(detected, sw.raw)
		}
	}
	return detected
}

// missingPlatforms suggests up to three catalog automation platforms, in key
// order, that are not already selected.
func (d *Detector) missingPlatforms(stack []resolved) []string {
	selectedKeys := make(map[string]bool, len(stack))
	for _, sw := range stack {
		selectedKeys[sw.key] = true
	}
	missing := []string{}
	for _, name := range d.catalog.SoftwareNames() {
		if len(missing) == missingPlatformCap {
			break
		}
		if selectedKeys[name] {
			continue
		}
		profile, _ := d.catalog.IntegrationProfile(name)
		if containsKeyword(name) || anyContainsKeyword(profile.MainFunctions) {
			missing = append(missing, name)
		}
	}
	return missing
}

func (d *Detector) pairOpportunities(stack []resolved, multiplier float64) []Opportunity {
	opps := []Opportunity{}
	for i := 0; i < len(stack); i++ {
		a := stack[i]
		if !a.found {
			continue
		}
		for j := i + 1; j < len(stack); j++ {
			b := stack[j]
			if !b.found {
				continue
			}
			if !a.profile.HasPartner(b.key) && !b.profile.HasPartner(a.key) {
				continue
			}
			category := categorize(a.profile.MainFunctions, b.profile.MainFunctions)
			savings := (pairBase + d.jitter.Float64()*pairSpread) * multiplier
			opps = append(opps, Opportunity{
				ID:                fmt.Sprintf("%s-%s-automation", a.raw, b.raw),
				Title:             fmt.Sprintf("%s ↔ %s Integration", a.raw, b.raw),
				Description:       describe(a.raw, b.raw, category),
				Difficulty:        DifficultyMedium,
				EstimatedSavings:  int(math.Round(savings)),
				SetupTime:         "2-4 hours",
				SoftwareInvolved:  []string{a.raw, b.raw},
				WorkflowSteps:     workflowSteps(a.raw, b.raw, category),
				Category:          category,
				IntegrationExists: true,
			})
		}
	}
	return opps
}

func addPlatformOpportunity(selected []string, multiplier float64) Opportunity {
	involved := append([]string{"Zapier"}, selected[:min(3, len(selected))]...)
	return Opportunity{
		ID:               "add-automation-platform",
		Title:            "Add Automation Platform (Zapier/Make)",
		Description:      fmt.Sprintf("Connect your %d tools with an automation platform to eliminate manual data transfer and create powerful workflows.", len(selected)),
		Difficulty:       DifficultyEasy,
		EstimatedSavings: int(math.Round(platformSavings * multiplier)),
		SetupTime:        "1-2 days",
		SoftwareInvolved: involved,
		WorkflowSteps: []string{
			"Sign up for automation platform",
			"Connect your existing software",
			"Create automated workflows",
			"Monitor and optimize processes",
		},
		Category: CategoryDataSync,
	}
}

// crmEmailOpportunity fires when Salesforce or HubSpot sits next to a mail tool.
func crmEmailOpportunity(selected []string, multiplier float64) (Opportunity, bool) {
	crm := ""
	for _, candidate := range []string{"Salesforce", "HubSpot"} {
		if contains(selected, candidate) {
			crm = candidate
			break
		}
	}
	if crm == "" {
		return Opportunity{}, false
	}
	mailTool := ""
	for _, s := range selected {
		lowered := strings.ToLower(s)
		if strings.Contains(lowered, "gmail") || strings.Contains(lowered, "outlook") || strings.Contains(lowered, "mail") {
			mailTool = s
			break
		}
	}
	if mailTool == "" {
		return Opportunity{}, false
	}
	return Opportunity{
		ID:               "crm-email-automation",
		Title:            crm + " Email Automation",
		Description:      "Automatically trigger personalized email sequences based on CRM actions and lead behavior.",
		Difficulty:       DifficultyEasy,
		EstimatedSavings: int(math.Round(crmEmailSavings * multiplier)),
		SetupTime:        "3-4 hours",
		SoftwareInvolved: []string{crm, mailTool},
		WorkflowSteps: []string{
			"Set up email templates in CRM",
			"Configure trigger conditions",
			"Map data fields between systems",
			"Test automation workflows",
		},
		Category:          CategoryLeadManagement,
		IntegrationExists: true,
	}, true
}

// directedEdges counts ordered pairs where the first lists the second as a partner.
func directedEdges(stack []resolved) int {
	count := 0
	for _, a := range stack {
		if !a.found {
			continue
		}
		for _, b := range stack {
			if a.raw != b.raw && a.profile.HasPartner(b.key) {
				count++
			}
		}
	}
	return count
}

func maturity(platforms, selected, edges int) int {
	score := platforms*25 + min(selected*3, 30) + min(edges*5, 30)
	return min(100, score)
}

// sizeMultiplier scales by headcount in units of 50, never below 1.
func sizeMultiplier(employees *int) float64 {
	if employees == nil || *employees == 0 {
		return 1
	}
	return math.Max(1, float64(*employees)/50)
}

func containsKeyword(s string) bool {
	lowered := strings.ToLower(s)
	for _, kw := range platformKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func anyContainsKeyword(items []string) bool {
	for _, item := range items {
		if containsKeyword(item) {
			return true
		}
	}
	return false
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
