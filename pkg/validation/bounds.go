package validation

import (
	"fmt"

	"github.com/iwvelando/fixedincome-compare/pkg/constants"
)

// The bounds checked here replicate the entry-form restrictions of the
// original simulator. They are a usability policy, not a contract of the
// calculation core, so violations surface as warnings rather than errors.

// SimulationWarnings checks the shared simulation parameters against the
// entry-form bounds.
func SimulationWarnings(initialValue, monthlyContribution float64, termDays int) []string {
	var warnings []string

	if initialValue < constants.MinInitialValue {
		warnings = append(warnings, fmt.Sprintf("initial value %.2f is below the supported minimum of %.2f",
			initialValue, constants.MinInitialValue))
	}
	if monthlyContribution < 0 {
		warnings = append(warnings, fmt.Sprintf("monthly contribution %.2f is negative", monthlyContribution))
	}
	if termDays < constants.MinTermDays || termDays > constants.MaxTermDays {
		warnings = append(warnings, fmt.Sprintf("term of %d days is outside the supported range of %d to %d days",
			termDays, constants.MinTermDays, constants.MaxTermDays))
	} else if termDays%constants.TermStepDays != 0 {
		warnings = append(warnings, fmt.Sprintf("term of %d days is not a multiple of %d; the remainder days are discarded",
			termDays, constants.TermStepDays))
	}

	return warnings
}

// MarketWarnings checks the shared market rates against the entry-form bounds.
func MarketWarnings(cdiAnnualRatePct, inflationAnnualRatePct float64) []string {
	var warnings []string

	if cdiAnnualRatePct < constants.MinBenchmarkRate || cdiAnnualRatePct > constants.MaxBenchmarkRate {
		warnings = append(warnings, fmt.Sprintf("CDI rate %.2f%% is outside the supported range of %.2f%% to %.2f%%",
			cdiAnnualRatePct, constants.MinBenchmarkRate, constants.MaxBenchmarkRate))
	}
	if inflationAnnualRatePct < constants.MinInflationRate || inflationAnnualRatePct > constants.MaxInflationRate {
		warnings = append(warnings, fmt.Sprintf("IPCA rate %.2f%% is outside the supported range of %.2f%% to %.2f%%",
			inflationAnnualRatePct, constants.MinInflationRate, constants.MaxInflationRate))
	}

	return warnings
}

// RateWarning checks a regime-specific rate against the entry-form bounds for
// its regime kind and returns an empty string when the rate is in range.
func RateWarning(scenarioName, regimeKind string, ratePct, min, max float64) string {
	if ratePct < min || ratePct > max {
		return fmt.Sprintf("scenario %q: %s rate %.2f%% is outside the supported range of %.2f%% to %.2f%%",
			scenarioName, regimeKind, ratePct, min, max)
	}
	return ""
}
