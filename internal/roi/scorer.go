// Package roi turns self-reported weekly manual hours into an annual savings
// estimate and a 0-100 tech maturity score.
package roi

import "math"

const weeksPerYear = 52

// WeeklyHours are the three slider inputs.
type WeeklyHours struct {
	Manual    int `json:"manual"`
	DataEntry int `json:"dataEntry"`
	Reporting int `json:"reporting"`
}

// Total is the sum of all three inputs.
func (h WeeklyHours) Total() int {
	return h.Manual + h.DataEntry + h.Reporting
}

// Input is one scoring request. A nil EmployeeCount means unknown.
type Input struct {
	WeeklyHours           WeeklyHours `json:"weeklyHours"`
	EmployeeCount         *int        `json:"employeeCount,omitempty"`
	SelectedSoftwareCount int         `json:"selectedSoftwareCount"`
}

// Result carries the headline figures plus the breakdown behind them.
type Result struct {
	EstimatedAnnualSavings int     `json:"estimatedAnnualSavings"`
	MaturityScore          int     `json:"maturityScore"`
	Benchmark              string  `json:"benchmark"`
	HourlyRate             int     `json:"hourlyRate"`
	EfficiencyGain         float64 `json:"efficiencyGain"`
	RateTier               string  `json:"rateTier"`
	AnnualHours            int     `json:"annualHours"`
	HoursSaved             int     `json:"hoursSaved"`
	HoursRemaining         int     `json:"hoursRemaining"`
}

// Score is pure. Callers validate the slider bounds before calling.
func Score(in Input) Result {
	rate := HourlyRate(in.EmployeeCount)
	gain := EfficiencyGain(in.EmployeeCount)
	total := in.WeeklyHours.Total()
	annualHours := total * weeksPerYear

	maturity := Maturity(total, in.SelectedSoftwareCount, in.EmployeeCount)
	saved := int(math.Round(float64(annualHours) * gain))
	return Result{
		EstimatedAnnualSavings: int(math.Round(float64(annualHours) * float64(rate) * gain)),
		MaturityScore:          maturity,
		Benchmark:              Benchmark(maturity),
		HourlyRate:             rate,
		EfficiencyGain:         gain,
		RateTier:               rateTier(rate),
		AnnualHours:            annualHours,
		HoursSaved:             saved,
		HoursRemaining:         annualHours - saved,
	}
}

// HourlyRate is the loaded labour cost for the company size.
func HourlyRate(employees *int) int {
	switch {
	case employees == nil:
		return 50
	case *employees <= 50:
		return 35
	case *employees <= 200:
		return 50
	default:
		return 75
	}
}

// EfficiencyGain is the share of manual hours automation removes.
func EfficiencyGain(employees *int) float64 {
	switch {
	case employees == nil:
		return 0.7
	case *employees <= 50:
		return 0.6
	case *employees <= 200:
		return 0.7
	default:
		return 0.8
	}
}

// Maturity blends manual load, stack size and company size. A heavier weekly
// load yields the lower automation component (20 vs 40); this polarity is
// carried over unchanged and is pending product confirmation.
func Maturity(weeklyHours, softwareCount int, employees *int) int {
	automation := 40
	if weeklyHours > 20 {
		automation = 20
	}
	score := automation + softwareCount*5 + sizeBonus(employees) + 10
	return max(0, min(100, score))
}

func sizeBonus(employees *int) int {
	switch {
	case employees == nil:
		return 0
	case *employees <= 50:
		return 0
	case *employees <= 200:
		return 10
	default:
		return 20
	}
}

// Benchmark positions a maturity score against peers.
func Benchmark(score int) string {
	switch {
	case score >= 80:
		return "You're ahead of 85% of companies in your industry"
	case score >= 60:
		return "You're on par with 60% of industry leaders"
	default:
		return "Significant opportunity to improve vs industry standards"
	}
}

func rateTier(rate int) string {
	switch rate {
	case 35:
		return "small business"
	case 50:
		return "mid-market"
	default:
		return "enterprise"
	}
}
