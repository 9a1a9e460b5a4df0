package valuation

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rewired-gh/tokval/internal/models"
)

// Summarize folds results into summary statistics. results must line up
// one-to-one with space; anything else is a caller defect and is reported as
// an *models.AggregationMismatchError. The results slice is not reordered.
func Summarize(results []models.ScenarioResult, space []models.Scenario) (models.ValuationSummary, error) {
	if len(results) != len(space) {
		return models.ValuationSummary{}, &models.AggregationMismatchError{Expected: len(space), Got: len(results)}
	}
	if len(results) == 0 {
		return models.ValuationSummary{}, &models.AggregationMismatchError{Detail: "no results to summarize"}
	}
	for i, r := range results {
		if r.Scenario != space[i] {
			return models.ValuationSummary{}, &models.AggregationMismatchError{
				Expected: len(space),
				Got:      len(results),
				Detail:   fmt.Sprintf("result %d is for scenario %s, expected %s", i, r.Scenario, space[i]),
			}
		}
	}

	var w welford
	for _, r := range results {
		w.add(r.PresentValue)
	}

	sorted := make([]models.ScenarioResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PresentValue < sorted[j].PresentValue
	})

	values := make([]float64, len(sorted))
	for i, r := range sorted {
		values[i] = r.PresentValue
	}

	n := len(sorted)
	minResult := sorted[0]
	// Among equal maxima the stable sort keeps space order; take the first.
	maxIdx := n - 1
	for maxIdx > 0 && sorted[maxIdx-1].PresentValue == sorted[n-1].PresentValue {
		maxIdx--
	}
	maxResult := sorted[maxIdx]

	// Clamp away rounding drift in the running mean.
	mean := math.Min(math.Max(w.mean, minResult.PresentValue), maxResult.PresentValue)

	return models.ValuationSummary{
		Count:       n,
		Min:         minResult.PresentValue,
		Max:         maxResult.PresentValue,
		Mean:        mean,
		Median:      median(values),
		StdDev:      w.stdDev(),
		P10:         stat.Quantile(0.10, stat.Empirical, values, nil),
		P90:         stat.Quantile(0.90, stat.Empirical, values, nil),
		MinScenario: minResult.Scenario,
		MaxScenario: maxResult.Scenario,
	}, nil
}

// median of an ascending slice; even lengths average the two central values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
