// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/fixedincome-compare/internal/simulation"
	"github.com/iwvelando/fixedincome-compare/pkg/format"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []simulation.ScenarioResult, comparison *simulation.Comparison) {
	WritePretty(os.Stdout, results, comparison)
}

// WritePretty writes the comparison summary table, the ranking highlight, and
// the balance evolution to w.
func WritePretty(w io.Writer, results []simulation.ScenarioResult, comparison *simulation.Comparison) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No active scenarios to compare.")
		return
	}

	termMonths := results[0].Input.TermMonths()
	fmt.Fprintf(w, "--- Comparison over %d months (%d days) ---\n",
		termMonths, results[0].Input.TermDays)

	table := tablewriter.NewWriter(w)
	table.Header("Scenario", "Instrument", "Rate", "Invested", "Gross", "Tax due", "Net", "Net earnings", "Net yield")

	for _, result := range results {
		projection := result.Projection
		_ = table.Append(
			result.Name,
			string(result.Instrument),
			result.RegimeLabel,
			format.Currency(projection.TotalContributed),
			format.Currency(projection.GrossFinalValue),
			format.Currency(projection.TaxDue),
			format.Currency(projection.NetFinalValue),
			format.Currency(projection.NetFinalValue-projection.TotalContributed),
			fmt.Sprintf("%.2f%% p.a.", projection.AnnualizedNetYieldPct),
		)
	}
	_ = table.Render()

	if comparison != nil {
		fmt.Fprintf(w, "\nBest option: %s with a net value of %s (%.2f%% p.a. net)\n",
			comparison.BestName, format.Currency(comparison.BestNet), comparison.BestYieldPct)
		if comparison.RunnerUpName != "" {
			fmt.Fprintf(w, "It earns %s more than %s, a difference of %.1f%% in final value.\n",
				format.Currency(comparison.GapToRunnerUp), comparison.RunnerUpName, comparison.GapPercent)
		}
	}

	writeEvolution(w, results)
}

// writeEvolution prints the month-by-month balance of each scenario, the
// textual counterpart of the original evolution chart.
func writeEvolution(w io.Writer, results []simulation.ScenarioResult) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "\n--- Balance evolution ---\n")
	fmt.Fprintf(w, "Month")
	for _, result := range results {
		fmt.Fprintf(w, " | %s", result.Name)
	}
	fmt.Fprintf(w, "\n")

	// All scenarios share the same term, so the first trajectory sets the
	// month range.
	for month := range results[0].Projection.MonthlyBalances {
		_, _ = p.Fprintf(w, "%5d", month)
		for _, result := range results {
			_, _ = p.Fprintf(w, " | R$ %.2f", result.Projection.MonthlyBalances[month])
		}
		fmt.Fprintf(w, "\n")
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []simulation.ScenarioResult) {
	fmt.Print(CsvString(results))
}

// CsvString renders the month-indexed balance trajectories as CSV.
func CsvString(results []simulation.ScenarioResult) string {
	if len(results) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(`"month"`)
	for _, result := range results {
		fmt.Fprintf(&builder, `,"balance (%s)"`, result.Name)
	}
	builder.WriteString("\n")

	for month := range results[0].Projection.MonthlyBalances {
		fmt.Fprintf(&builder, `"%d"`, month)
		for _, result := range results {
			fmt.Fprintf(&builder, `,"%.2f"`, result.Projection.MonthlyBalances[month])
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
