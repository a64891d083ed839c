// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"

	"github.com/iwvelando/fixedincome-compare/pkg/fixedincome"
)

// Regime builds the core yield regime for a scenario, combining the
// scenario's own rate with the shared market rates.
func (s *Scenario) Regime(market Market) (fixedincome.YieldRegime, error) {
	switch s.Yield.Type {
	case YieldTypeFixed:
		return fixedincome.Fixed{AnnualRatePct: s.Yield.RatePct}, nil
	case YieldTypeCDIPercent:
		return fixedincome.FloatingBenchmark{
			PercentOfBenchmark:     s.Yield.RatePct,
			BenchmarkAnnualRatePct: market.CDIAnnualRatePct,
		}, nil
	case YieldTypeInflationPlus:
		return fixedincome.InflationLinked{
			AnnualSpreadPct:        s.Yield.RatePct,
			InflationAnnualRatePct: market.InflationAnnualRatePct,
		}, nil
	default:
		return nil, fmt.Errorf("scenario %q: unknown yield type %q (expected %s, %s, or %s)",
			s.Name, s.Yield.Type, YieldTypeFixed, YieldTypeCDIPercent, YieldTypeInflationPlus)
	}
}

// ScenarioInput converts a configured scenario into a validated core input.
func (s *Scenario) ScenarioInput(simulation Simulation, market Market) (fixedincome.ScenarioInput, error) {
	instrument, err := fixedincome.ParseInstrumentKind(s.Instrument)
	if err != nil {
		return fixedincome.ScenarioInput{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	regime, err := s.Regime(market)
	if err != nil {
		return fixedincome.ScenarioInput{}, err
	}

	input, err := fixedincome.NewScenarioInput(simulation.InitialValue,
		simulation.MonthlyContribution, simulation.TermDays, instrument, regime)
	if err != nil {
		return fixedincome.ScenarioInput{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	return input, nil
}
