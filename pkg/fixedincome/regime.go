package fixedincome

import (
	"fmt"
	"math"

	"github.com/iwvelando/fixedincome-compare/pkg/constants"
)

// minAnnualRatePct is the open lower bound for every annual percentage rate.
// At or below -100% the base of the fractional exponent in the annual-to-
// monthly conversion becomes non-positive and the result is not a real
// number, so construction rejects such rates up front.
const minAnnualRatePct = -100.0

// YieldRegime describes how an instrument accrues yield. It is a closed set
// of three variants: Fixed, FloatingBenchmark, and InflationLinked.
type YieldRegime interface {
	// MonthlyRate returns the effective monthly growth fraction for the
	// regime. It may be negative when input rates are negative.
	MonthlyRate() float64

	// Describe returns a short human-readable label for output tables.
	Describe() string

	validate() error
}

// annualToMonthly converts an effective annual percentage rate into the
// equivalent effective monthly growth fraction: (1 + a/100)^(1/12) - 1.
func annualToMonthly(annualPct float64) float64 {
	return math.Pow(1+annualPct/constants.PercentageMultiplier, 1.0/constants.MonthsPerYear) - 1
}

// Fixed is a deterministic nominal annual rate ("prefixada").
type Fixed struct {
	AnnualRatePct float64
}

// MonthlyRate converts the annual rate to its effective monthly equivalent.
func (f Fixed) MonthlyRate() float64 {
	return annualToMonthly(f.AnnualRatePct)
}

// Describe returns a label such as "fixed 11.00% p.a.".
func (f Fixed) Describe() string {
	return fmt.Sprintf("fixed %.2f%% p.a.", f.AnnualRatePct)
}

func (f Fixed) validate() error {
	if f.AnnualRatePct <= minAnnualRatePct {
		return fmt.Errorf("fixed annual rate must be greater than %.0f%%, got %.2f%%", minAnnualRatePct, f.AnnualRatePct)
	}
	return nil
}

// FloatingBenchmark is a rate expressed as a percentage of an external
// benchmark such as the CDI ("pos-fixada").
type FloatingBenchmark struct {
	PercentOfBenchmark     float64
	BenchmarkAnnualRatePct float64
}

// MonthlyRate converts the benchmark to its effective monthly equivalent and
// then scales by the percentage. The scaling must happen after the
// conversion; converting a pre-scaled annual rate yields a different result.
func (f FloatingBenchmark) MonthlyRate() float64 {
	return annualToMonthly(f.BenchmarkAnnualRatePct) * (f.PercentOfBenchmark / constants.PercentageMultiplier)
}

// Describe returns a label such as "105.00% of CDI".
func (f FloatingBenchmark) Describe() string {
	return fmt.Sprintf("%.2f%% of CDI", f.PercentOfBenchmark)
}

func (f FloatingBenchmark) validate() error {
	if f.BenchmarkAnnualRatePct <= minAnnualRatePct {
		return fmt.Errorf("benchmark annual rate must be greater than %.0f%%, got %.2f%%", minAnnualRatePct, f.BenchmarkAnnualRatePct)
	}
	return nil
}

// InflationLinked is an inflation index rate plus a fixed real spread
// ("hibrida"). Index and spread are converted to monthly rates independently
// and summed; converting the summed annual rates instead would not be
// equivalent.
type InflationLinked struct {
	AnnualSpreadPct        float64
	InflationAnnualRatePct float64
}

// MonthlyRate returns the sum of the independently converted monthly rates.
func (i InflationLinked) MonthlyRate() float64 {
	return annualToMonthly(i.InflationAnnualRatePct) + annualToMonthly(i.AnnualSpreadPct)
}

// Describe returns a label such as "IPCA + 5.00% p.a.".
func (i InflationLinked) Describe() string {
	return fmt.Sprintf("IPCA + %.2f%% p.a.", i.AnnualSpreadPct)
}

func (i InflationLinked) validate() error {
	if i.InflationAnnualRatePct <= minAnnualRatePct {
		return fmt.Errorf("inflation annual rate must be greater than %.0f%%, got %.2f%%", minAnnualRatePct, i.InflationAnnualRatePct)
	}
	if i.AnnualSpreadPct <= minAnnualRatePct {
		return fmt.Errorf("annual spread must be greater than %.0f%%, got %.2f%%", minAnnualRatePct, i.AnnualSpreadPct)
	}
	return nil
}
