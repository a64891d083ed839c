package fixedincome

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/fixedincome-compare/pkg/constants"
)

// InstrumentKind identifies the class of fixed-income instrument, which
// determines the tax treatment at redemption.
type InstrumentKind string

// Supported instrument kinds. CDB is subject to the regressive withholding
// table; LCI and LCA are exempt.
const (
	CDB InstrumentKind = "CDB"
	LCI InstrumentKind = "LCI"
	LCA InstrumentKind = "LCA"
)

// Taxable reports whether redemption gains on the instrument are subject to
// withholding tax.
func (k InstrumentKind) Taxable() bool {
	return k == CDB
}

// ParseInstrumentKind parses a case-insensitive instrument name.
func ParseInstrumentKind(s string) (InstrumentKind, error) {
	switch InstrumentKind(strings.ToUpper(strings.TrimSpace(s))) {
	case CDB:
		return CDB, nil
	case LCI:
		return LCI, nil
	case LCA:
		return LCA, nil
	default:
		return "", fmt.Errorf("unknown instrument kind %q (expected CDB, LCI, or LCA)", s)
	}
}

// ScenarioInput holds the validated parameters of a single simulation.
// Construct with NewScenarioInput.
type ScenarioInput struct {
	InitialValue        float64
	MonthlyContribution float64
	TermDays            int
	Instrument          InstrumentKind
	Regime              YieldRegime
}

// NewScenarioInput validates and constructs a ScenarioInput. Validation here
// is the boundary the projection math relies on; Project itself performs no
// checks.
func NewScenarioInput(initialValue, monthlyContribution float64, termDays int, instrument InstrumentKind, regime YieldRegime) (ScenarioInput, error) {
	if initialValue <= 0 {
		return ScenarioInput{}, fmt.Errorf("initial value must be positive, got %.2f", initialValue)
	}
	if monthlyContribution < 0 {
		return ScenarioInput{}, fmt.Errorf("monthly contribution must be non-negative, got %.2f", monthlyContribution)
	}
	if termDays < 1 {
		return ScenarioInput{}, fmt.Errorf("term must be at least 1 day, got %d", termDays)
	}
	switch instrument {
	case CDB, LCI, LCA:
	default:
		return ScenarioInput{}, fmt.Errorf("unknown instrument kind %q", string(instrument))
	}
	if regime == nil {
		return ScenarioInput{}, fmt.Errorf("yield regime must be set")
	}
	if err := regime.validate(); err != nil {
		return ScenarioInput{}, err
	}

	return ScenarioInput{
		InitialValue:        initialValue,
		MonthlyContribution: monthlyContribution,
		TermDays:            termDays,
		Instrument:          instrument,
		Regime:              regime,
	}, nil
}

// TermMonths returns the term converted to whole months. Remainder days are
// discarded (a 45-day term is one month); this whole-month approximation is
// inherited from the reference system.
func (s ScenarioInput) TermMonths() int {
	return s.TermDays / constants.DaysPerMonth
}

// ProjectionResult is the outcome of projecting a single scenario. It is a
// plain value, immutable after construction.
type ProjectionResult struct {
	// MonthlyBalances is the balance trajectory with termMonths+1 entries;
	// index 0 is the initial value before any contribution or growth.
	MonthlyBalances []float64

	GrossFinalValue  float64
	NetFinalValue    float64
	TaxDue           float64
	TaxRate          float64
	TotalContributed float64

	// AnnualizedNetYieldPct is the annual rate that would turn the total
	// contributed into the net final value over the term. Zero for
	// zero-month terms.
	AnnualizedNetYieldPct float64
}

// Project runs the month-by-month simulation for a scenario at the given
// effective monthly rate. Within each month the contribution is added before
// growth is applied; reversing that order would change the compounding.
//
// For taxable instruments the tax due is the gross profit times the
// regressive rate for the term, deliberately not floored at zero: a losing
// scenario produces a negative tax that lifts the net value above gross.
// This mirrors the reference system and is preserved as-is.
func Project(scenario ScenarioInput, monthlyRate float64) ProjectionResult {
	termMonths := scenario.TermMonths()

	balances := make([]float64, 0, termMonths+1)
	balance := scenario.InitialValue
	balances = append(balances, balance)

	for month := 1; month <= termMonths; month++ {
		balance += scenario.MonthlyContribution
		balance *= 1 + monthlyRate
		balances = append(balances, balance)
	}

	grossFinal := balances[len(balances)-1]
	totalContributed := scenario.InitialValue + scenario.MonthlyContribution*float64(termMonths)

	taxRate := 0.0
	taxDue := 0.0
	netFinal := grossFinal
	if scenario.Instrument.Taxable() {
		grossProfit := grossFinal - totalContributed
		taxRate = ResolveTaxRate(scenario.TermDays)
		taxDue = grossProfit * taxRate
		netFinal = grossFinal - taxDue
	}

	annualizedNetYield := 0.0
	if termMonths > 0 {
		annualizedNetYield = (math.Pow(netFinal/totalContributed, constants.MonthsPerYear/float64(termMonths)) - 1) * constants.PercentageMultiplier
	}

	return ProjectionResult{
		MonthlyBalances:       balances,
		GrossFinalValue:       grossFinal,
		NetFinalValue:         netFinal,
		TaxDue:                taxDue,
		TaxRate:               taxRate,
		TotalContributed:      totalContributed,
		AnnualizedNetYieldPct: annualizedNetYield,
	}
}
