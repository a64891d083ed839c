// Package constants provides shared constants for the fixedincome-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerMonth is the whole-month approximation used to convert a term
	// in days into months (termDays / DaysPerMonth, floor division)
	DaysPerMonth = 30

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultRateLimitPerSecond is the default request rate allowed per client
	DefaultRateLimitPerSecond = 5.0

	// DefaultRateLimitBurst is the default request burst allowed per client
	DefaultRateLimitBurst = 10
)

// Input bounds enforced by the original entry form. The calculation core
// accepts anything satisfying its own preconditions; these bounds only feed
// configuration warnings.
const (
	// MinInitialValue is the smallest initial investment the entry form accepts
	MinInitialValue = 100.0

	// MinTermDays is the shortest supported term
	MinTermDays = 30

	// MaxTermDays is the longest supported term
	MaxTermDays = 7200

	// TermStepDays is the granularity of the term input
	TermStepDays = 30

	// MinBenchmarkRate and MaxBenchmarkRate bound the CDI annual rate input
	MinBenchmarkRate = 0.1
	MaxBenchmarkRate = 30.0

	// MinInflationRate and MaxInflationRate bound the IPCA annual rate input
	MinInflationRate = 0.0
	MaxInflationRate = 20.0

	// MinFixedRate and MaxFixedRate bound the fixed annual rate input
	MinFixedRate = 0.1
	MaxFixedRate = 50.0

	// MinBenchmarkPercent and MaxBenchmarkPercent bound the %-of-CDI input
	MinBenchmarkPercent = 50.0
	MaxBenchmarkPercent = 150.0

	// MinInflationSpread and MaxInflationSpread bound the IPCA+ spread input
	MinInflationSpread = 0.0
	MaxInflationSpread = 20.0

	// MaxComparedScenarios is how many scenarios the comparison is designed for
	MaxComparedScenarios = 3
)
