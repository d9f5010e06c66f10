package engine

import (
	"errors"

	"github.com/piwi3910/PickPack/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the placement outcome and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario   ComparisonScenario
	Result     model.PlacementResult
	Err        error
	Fits       bool
	Placed     int
	Fillers    int
	Occupied   int // entries in the final occupied set
	Efficiency float64
}

// CompareScenarios places the same order under each scenario and returns the
// results in scenario order. An overflow is recorded on the result rather
// than aborting the comparison.
func CompareScenarios(scenarios []ComparisonScenario, items []model.Item) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		placer := New(scenario.Settings)
		result, err := placer.PlaceItems(items)

		cr := ComparisonResult{
			Scenario: scenario,
			Result:   result,
			Err:      err,
			Fits:     err == nil,
		}
		if err == nil {
			cr.Placed = len(result.Placements)
			cr.Fillers = result.Fillers
			cr.Occupied = len(result.Occupied)
			cr.Efficiency = result.Efficiency()
		} else {
			var overflow *model.OverflowError
			if errors.As(err, &overflow) {
				cr.Placed = overflow.Placed
			}
		}
		results = append(results, cr)
	}

	return results
}

// BuildDefaultScenarios generates one scenario per box size and overlap
// policy, starting from the current settings.
func BuildDefaultScenarios(baseSettings model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	for _, box := range model.BoxSizes() {
		if box == baseSettings.Box {
			continue
		}
		alt := baseSettings
		alt.Box = box
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Box " + string(box),
			Settings: alt,
		})
	}

	alt := baseSettings
	if baseSettings.Overlap == model.OverlapContainment {
		alt.Overlap = model.OverlapStrict
		scenarios = append(scenarios, ComparisonScenario{Name: "Strict Overlap", Settings: alt})
	} else {
		alt.Overlap = model.OverlapContainment
		scenarios = append(scenarios, ComparisonScenario{Name: "Containment Only", Settings: alt})
	}

	return scenarios
}
