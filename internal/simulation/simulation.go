// Package simulation defines the data structures related to a comparison run
// and includes functions for computing and ranking the scenario projections.
package simulation

import (
	"fmt"

	"github.com/iwvelando/fixedincome-compare/internal/config"
	"github.com/iwvelando/fixedincome-compare/pkg/fixedincome"
	"github.com/iwvelando/fixedincome-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// ScenarioResult pairs a scenario label with its computed projection.
type ScenarioResult struct {
	Name        string
	Instrument  fixedincome.InstrumentKind
	RegimeLabel string
	MonthlyRate float64
	Input       fixedincome.ScenarioInput
	Projection  fixedincome.ProjectionResult
}

// NetEarnings returns the net profit over the total contributed.
func (r ScenarioResult) NetEarnings() float64 {
	return r.Projection.NetFinalValue - r.Projection.TotalContributed
}

// Compare processes the projections for all active scenarios in order.
func Compare(logger *zap.Logger, conf config.Configuration) ([]ScenarioResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []ScenarioResult
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "simulation.Compare"),
			)
			continue
		}

		input, err := scenario.ScenarioInput(conf.Simulation, conf.Market)
		if err != nil {
			return results, err
		}

		monthlyRate := input.Regime.MonthlyRate()
		projection := fixedincome.Project(input, monthlyRate)

		name := scenario.Name
		if name == "" {
			name = fmt.Sprintf("%s - %s", input.Instrument, input.Regime.Describe())
		}

		logger.Debug("scenario projected",
			zap.String("op", "simulation.Compare"),
			zap.String("scenario", name),
			zap.Float64("monthlyRate", monthlyRate),
			zap.Float64("grossFinalValue", projection.GrossFinalValue),
			zap.Float64("netFinalValue", projection.NetFinalValue),
		)

		results = append(results, ScenarioResult{
			Name:        name,
			Instrument:  input.Instrument,
			RegimeLabel: input.Regime.Describe(),
			MonthlyRate: monthlyRate,
			Input:       input,
			Projection:  projection,
		})
	}

	logger.Info("comparison computed",
		zap.String("op", "simulation.Compare"),
		zap.Int("scenarios", len(results)),
	)

	return results, nil
}

// Comparison summarizes the ranking of a comparison run: the scenario with
// the highest net final value and its lead over the runner-up.
type Comparison struct {
	BestName      string
	BestNet       float64
	BestEarnings  float64
	BestYieldPct  float64
	RunnerUpName  string
	GapToRunnerUp float64
	GapPercent    float64
}

// Rank selects the best scenario by net final value and measures the gap to
// the runner-up. Returns nil for an empty result set; a single-scenario run
// has no runner-up and a zero gap.
func Rank(results []ScenarioResult) *Comparison {
	if len(results) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].Projection.NetFinalValue > results[best].Projection.NetFinalValue {
			best = i
		}
	}

	comparison := &Comparison{
		BestName:     results[best].Name,
		BestNet:      results[best].Projection.NetFinalValue,
		BestEarnings: results[best].NetEarnings(),
		BestYieldPct: results[best].Projection.AnnualizedNetYieldPct,
	}

	runnerUp := -1
	for i := range results {
		if i == best {
			continue
		}
		if runnerUp == -1 || results[i].Projection.NetFinalValue > results[runnerUp].Projection.NetFinalValue {
			runnerUp = i
		}
	}
	if runnerUp >= 0 {
		comparison.RunnerUpName = results[runnerUp].Name
		comparison.GapToRunnerUp = comparison.BestNet - results[runnerUp].Projection.NetFinalValue
		comparison.GapPercent = mathutil.CalculatePercentage(comparison.GapToRunnerUp,
			results[runnerUp].Projection.NetFinalValue)
	}

	return comparison
}
