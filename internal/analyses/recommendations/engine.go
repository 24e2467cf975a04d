package recommendations

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"advisorpilot/internal/analyses/opportunities"
)

const (
	currentValuePerIntegration = 2000
	expansionPerIntegration    = 1500
	quickWinBase               = 15000
	missingBase                = 8000
	missingLimit               = 3
	expansionPreview           = 3
)

var printer = message.NewPrinter(language.English)

// Generate runs every rule and returns the recommendations in rank order.
func Generate(input Input) []Recommendation {
	multiplier := SizeMultiplier(input.CompanySize)
	rules := []func(Input, float64) []Recommendation{
		currentValueRule,
		quickWinRule,
		missingIntegrationRule,
		sizeTierRule,
		communicationRule,
	}

	out := make([]Recommendation, 0, 8)
	for _, rule := range rules {
		out = append(out, rule(input, multiplier)...)
	}
	Sort(out)
	return out
}

// SizeMultiplier scales savings by company-size bracket; unknown brackets count as 1.
func SizeMultiplier(bracket string) float64 {
	switch bracket {
	case BracketSmall:
		return 1
	case BracketMid:
		return 2.5
	case BracketLarge:
		return 5
	default:
		return 1
	}
}

// TotalSavings sums estimated savings.
func TotalSavings(items []Recommendation) int {
	total := 0
	for _, item := range items {
		total += item.EstimatedSavings
	}
	return total
}

// Sort orders by category rank, then priority, then savings, all descending.
// Equal items keep their generation order.
func Sort(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if categoryRank(a.Category) != categoryRank(b.Category) {
			return categoryRank(a.Category) > categoryRank(b.Category)
		}
		if priorityRank(a.Priority) != priorityRank(b.Priority) {
			return priorityRank(a.Priority) > priorityRank(b.Priority)
		}
		return a.EstimatedSavings > b.EstimatedSavings
	})
}

func categoryRank(category string) int {
	switch category {
	case CategoryCurrentValue:
		return 5
	case CategoryExpansion:
		return 4
	case CategoryQuickWin:
		return 3
	case CategoryGap:
		return 2
	case CategoryAutomation, CategoryIntegration:
		return 1
	default:
		return 0
	}
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// currentValueRule also emits the expansion recommendation for the same product.
func currentValueRule(input Input, multiplier float64) []Recommendation {
	var out []Recommendation
	for _, name := range statusOrder(input) {
		status := input.Statuses[name]
		if !status.InUse || len(status.Active) == 0 {
			continue
		}
		slug := slugify(name)
		currentValue := round(float64(len(status.Active)*currentValuePerIntegration) * multiplier)
		out = append(out, Recommendation{
			ID:    "current-value-" + slug,
			Title: fmt.Sprintf("Current Value: %s Integration", name),
			Description: fmt.Sprintf(
				"Your %s integration is already delivering value. Active integrations: %s. You're saving approximately %s/year in reduced manual work and improved efficiency.",
				name, strings.Join(status.Active, ", "), dollars(currentValue),
			),
			Priority:         PriorityHigh,
			Category:         CategoryCurrentValue,
			EstimatedSavings: 0,
			SoftwareInvolved: []string{name},
			IntegrationDetails: &IntegrationDetails{
				Difficulty:       "Already Complete",
				SetupTime:        "Active",
				SpecificBenefits: []string{"Currently saving time", "Eliminating manual data entry", "Improving accuracy"},
			},
		})

		unused := status.Unused()
		if len(unused) == 0 {
			continue
		}
		value := round(float64(len(unused)*expansionPerIntegration) * multiplier)
		preview := strings.Join(unused[:min(len(unused), expansionPreview)], ", ")
		if extra := len(unused) - expansionPreview; extra > 0 {
			preview += fmt.Sprintf(" and %d more", extra)
		}
		out = append(out, Recommendation{
			ID:    "expansion-" + slug,
			Title: fmt.Sprintf("Expansion Opportunity: %s", name),
			Description: fmt.Sprintf(
				"You have untapped potential in %s. Consider activating these unused integrations: %s. This could add %s/year in additional value.",
				name, preview, dollars(value),
			),
			Priority:         PriorityMedium,
			Category:         CategoryExpansion,
			EstimatedSavings: value,
			SoftwareInvolved: []string{name},
			IntegrationDetails: &IntegrationDetails{
				Difficulty:       "Easy",
				SetupTime:        "1-2 weeks",
				SpecificBenefits: []string{"Expand current automation", "Additional time savings", "Enhanced workflow"},
			},
		})
	}
	return out
}

// statusOrder visits statuses for the selected software first, in selection
// order, then any remaining status keys alphabetically.
func statusOrder(input Input) []string {
	if len(input.Statuses) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(input.Statuses))
	order := make([]string, 0, len(input.Statuses))
	for _, sw := range input.Software {
		if _, ok := input.Statuses[sw.Name]; ok && !seen[sw.Name] {
			seen[sw.Name] = true
			order = append(order, sw.Name)
		}
	}
	rest := make([]string, 0, len(input.Statuses))
	for name := range input.Statuses {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func quickWinRule(input Input, multiplier float64) []Recommendation {
	out := make([]Recommendation, 0, len(input.Opportunities.QuickWins))
	for i, opp := range input.Opportunities.QuickWins {
		out = append(out, Recommendation{
			ID:    fmt.Sprintf("quick-win-%d", i),
			Title: fmt.Sprintf("Quick Win: %s ↔ %s Integration", opp.SoftwareA, opp.SoftwareB),
			Description: fmt.Sprintf(
				"This integration is marked as %q difficulty and can be completed in %s. Benefits include: %s.",
				opp.Difficulty, opp.SetupTime, strings.Join(opp.Benefits, ", "),
			),
			Priority:           PriorityHigh,
			Category:           CategoryQuickWin,
			EstimatedSavings:   round(quickWinBase * multiplier),
			SoftwareInvolved:   []string{opp.SoftwareA, opp.SoftwareB},
			IntegrationDetails: detailsFor(opp),
		})
	}
	return out
}

func missingIntegrationRule(input Input, multiplier float64) []Recommendation {
	missing := input.Opportunities.Missing
	if len(missing) > missingLimit {
		missing = missing[:missingLimit]
	}
	out := make([]Recommendation, 0, len(missing))
	for i, opp := range missing {
		out = append(out, Recommendation{
			ID:                 fmt.Sprintf("missing-integration-%d", i),
			Title:              fmt.Sprintf("Integration Opportunity: %s ↔ %s", opp.SoftwareA, opp.SoftwareB),
			Description:        gapDescription(input.CompanySize),
			Priority:           PriorityMedium,
			Category:           CategoryGap,
			EstimatedSavings:   round(missingBase * multiplier),
			SoftwareInvolved:   []string{opp.SoftwareA, opp.SoftwareB},
			IntegrationDetails: detailsFor(opp),
		})
	}
	return out
}

func gapDescription(bracket string) string {
	switch bracket {
	case BracketSmall:
		return "These tools aren't talking to each other, causing manual data entry. For small companies, even basic integration can save 3-5 hours weekly."
	case BracketMid:
		return "Missing integration between these systems is creating inefficiencies across multiple team members. Integration can eliminate duplicate work."
	default:
		return "This integration gap is causing enterprise-level inefficiencies. Proper API connection can streamline operations across departments."
	}
}

// sizeTierRule emits nothing for an unknown bracket.
func sizeTierRule(input Input, multiplier float64) []Recommendation {
	switch input.CompanySize {
	case BracketSmall:
		return []Recommendation{{
			ID:               "small-business-automation",
			Title:            "Small Business Automation Package",
			Description:      "For companies your size, focus on automating repetitive tasks first. Zapier integrations can connect your tools without expensive custom development.",
			Priority:         PriorityHigh,
			Category:         CategoryAutomation,
			EstimatedSavings: round(12000 * multiplier),
			SoftwareInvolved: []string{"Zapier", "Automation Tools"},
		}}
	case BracketMid:
		return []Recommendation{{
			ID:               "mid-market-integration",
			Title:            "Mid-Market Integration Hub",
			Description:      "Growing companies benefit from a central integration platform. This eliminates data silos as you scale.",
			Priority:         PriorityHigh,
			Category:         CategoryIntegration,
			EstimatedSavings: round(25000 * multiplier),
			SoftwareInvolved: []string{"Integration Platform"},
		}}
	case BracketLarge:
		return []Recommendation{{
			ID:               "enterprise-api-strategy",
			Title:            "Enterprise API Management",
			Description:      "Large organizations need robust API management to prevent data fragmentation. A unified API strategy can transform operations.",
			Priority:         PriorityHigh,
			Category:         CategoryIntegration,
			EstimatedSavings: round(75000 * multiplier),
			SoftwareInvolved: []string{"API Management Platform"},
		}}
	default:
		return nil
	}
}

// communicationRule always fires. Its savings are not size-scaled and an
// unknown bracket gets the enterprise variant.
func communicationRule(input Input, _ float64) []Recommendation {
	rec := Recommendation{
		ID:       "communication-upgrade",
		Priority: PriorityMedium,
		Category: CategoryComm,
	}
	switch input.CompanySize {
	case BracketSmall:
		rec.Title = "Cloud Phone System"
		rec.Description = "Replace traditional phone systems with cloud-based VoIP. No hardware maintenance, built-in features like CRM integration."
		rec.EstimatedSavings = 8000
		rec.SoftwareInvolved = []string{"Cloud VoIP"}
	case BracketMid:
		rec.Title = "Unified Communications Platform"
		rec.Description = "Integrate voice, video, messaging and collaboration tools. UCaaS platforms eliminate communication silos and integrate with your existing software stack."
		rec.EstimatedSavings = 18000
		rec.SoftwareInvolved = []string{"UCaaS Platform"}
	default:
		rec.Title = "Enterprise Communication Infrastructure"
		rec.Description = "Deploy enterprise-grade communication infrastructure with AI-powered features, global redundancy and deep integrations with your business applications."
		rec.EstimatedSavings = 35000
		rec.SoftwareInvolved = []string{"Enterprise Communications"}
	}
	return []Recommendation{rec}
}

func detailsFor(opp opportunities.Opportunity) *IntegrationDetails {
	return &IntegrationDetails{
		Difficulty:         string(opp.Difficulty),
		SetupTime:          opp.SetupTime,
		MiddlewareRequired: !opp.IntegrationExists,
		SpecificBenefits:   append([]string(nil), opp.Benefits...),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func dollars(v int) string {
	return printer.Sprintf("$%d", v)
}

// slugify lowercases and joins whitespace-separated words with dashes.
func slugify(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), "-")
}
