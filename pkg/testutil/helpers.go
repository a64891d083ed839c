// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/fixedincome-compare/internal/simulation"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindScenario(results []simulation.ScenarioResult, name string) *simulation.ScenarioResult {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
