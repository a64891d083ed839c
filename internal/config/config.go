// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/fixedincome-compare/pkg/constants"
	"github.com/iwvelando/fixedincome-compare/pkg/validation"
	"github.com/spf13/viper"
)

// Yield regime kinds accepted in scenario configuration.
const (
	YieldTypeFixed         = "fixed"
	YieldTypeCDIPercent    = "cdiPercent"
	YieldTypeInflationPlus = "inflationPlus"
)

// Configuration holds all configuration for fixedincome-compare.
type Configuration struct {
	Simulation Simulation
	Market     Market
	Scenarios  []Scenario
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Simulation holds the parameters shared by every compared scenario.
type Simulation struct {
	InitialValue        float64
	MonthlyContribution float64
	TermDays            int
}

// Market holds the reference market rates shared by every scenario.
type Market struct {
	CDIAnnualRatePct       float64
	InflationAnnualRatePct float64
}

// Scenario describes one investment to include in the comparison.
type Scenario struct {
	Name       string
	Active     bool
	Instrument string
	Yield      Yield
}

// Yield describes how a scenario accrues: the regime kind plus its
// regime-specific rate (annual % for fixed, % of CDI for cdiPercent, annual
// spread % for inflationPlus).
type Yield struct {
	Type    string
	RatePct float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader; the HTTP server uses this for uploaded configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Bounds mirror the original entry form and never block a
// simulation; structural problems (unknown instrument or regime kind) are
// reported by ScenarioInput instead.
func (c *Configuration) ValidateConfiguration() []string {
	warnings := validation.SimulationWarnings(c.Simulation.InitialValue,
		c.Simulation.MonthlyContribution, c.Simulation.TermDays)
	warnings = append(warnings, validation.MarketWarnings(c.Market.CDIAnnualRatePct,
		c.Market.InflationAnnualRatePct)...)

	activeCount := 0
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		activeCount++

		var warning string
		switch scenario.Yield.Type {
		case YieldTypeFixed:
			warning = validation.RateWarning(scenario.Name, "fixed annual",
				scenario.Yield.RatePct, constants.MinFixedRate, constants.MaxFixedRate)
		case YieldTypeCDIPercent:
			warning = validation.RateWarning(scenario.Name, "percent of CDI",
				scenario.Yield.RatePct, constants.MinBenchmarkPercent, constants.MaxBenchmarkPercent)
		case YieldTypeInflationPlus:
			warning = validation.RateWarning(scenario.Name, "inflation spread",
				scenario.Yield.RatePct, constants.MinInflationSpread, constants.MaxInflationSpread)
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if activeCount > constants.MaxComparedScenarios {
		warnings = append(warnings, fmt.Sprintf("%d active scenarios; the comparison is designed for at most %d",
			activeCount, constants.MaxComparedScenarios))
	}

	return warnings
}
