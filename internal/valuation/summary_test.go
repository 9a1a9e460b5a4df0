package valuation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewired-gh/tokval/internal/models"
	"github.com/rewired-gh/tokval/internal/scenario"
)

// syntheticResults assigns pv(i) to the i-th scenario of the space.
func syntheticResults(pv func(i int) float64) ([]models.ScenarioResult, []models.Scenario) {
	space := scenario.Space()
	results := make([]models.ScenarioResult, len(space))
	for i, s := range space {
		results[i] = models.ScenarioResult{Scenario: s, PresentValue: pv(i)}
	}
	return results, space
}

func TestSummarize_Statistics(t *testing.T) {
	results, space := syntheticResults(func(i int) float64 { return float64(47 - i) })

	summary, err := Summarize(results, space)
	require.NoError(t, err)

	assert.Equal(t, 48, summary.Count)
	assert.Equal(t, 0.0, summary.Min)
	assert.Equal(t, 47.0, summary.Max)
	assert.InDelta(t, 23.5, summary.Mean, 1e-12)
	// Even count: average of the two central values 23 and 24.
	assert.Equal(t, 23.5, summary.Median)
	assert.InDelta(t, 14.0, summary.StdDev, 1e-9)
	assert.Equal(t, space[len(space)-1], summary.MinScenario)
	assert.Equal(t, space[0], summary.MaxScenario)

	assert.LessOrEqual(t, summary.Min, summary.P10)
	assert.LessOrEqual(t, summary.P10, summary.Median)
	assert.LessOrEqual(t, summary.Median, summary.P90)
	assert.LessOrEqual(t, summary.P90, summary.Max)
}

func TestSummarize_DoesNotReorderInput(t *testing.T) {
	results, space := syntheticResults(func(i int) float64 { return float64((i * 7) % 48) })
	before := make([]models.ScenarioResult, len(results))
	copy(before, results)

	_, err := Summarize(results, space)
	require.NoError(t, err)
	assert.Equal(t, before, results)
}

func TestSummarize_TiesResolveToEarliestScenario(t *testing.T) {
	results, space := syntheticResults(func(int) float64 { return 100 })

	summary, err := Summarize(results, space)
	require.NoError(t, err)

	assert.Equal(t, space[0], summary.MinScenario)
	assert.Equal(t, space[0], summary.MaxScenario)
	assert.Equal(t, 100.0, summary.Mean)
	assert.Equal(t, 100.0, summary.Median)
	assert.Zero(t, summary.StdDev)
}

func TestSummarize_BoundsOnRealRun(t *testing.T) {
	a := testAssumptions()
	space := scenario.Space()
	results, err := New(DefaultConfig()).EvaluateAll(a, space)
	require.NoError(t, err)

	summary, err := Summarize(results, space)
	require.NoError(t, err)

	for _, r := range results {
		assert.GreaterOrEqual(t, summary.Max, r.PresentValue)
		assert.LessOrEqual(t, summary.Min, r.PresentValue)
	}
	assert.GreaterOrEqual(t, summary.Mean, summary.Min)
	assert.LessOrEqual(t, summary.Mean, summary.Max)

	// Shortest payout, lowest volatility, most engaged investors is the best case.
	assert.Equal(t, models.Scenario{Timing: models.Quarterly, Volatility: models.Low, Engagement: models.HighlyActive}, summary.MaxScenario)
	assert.Equal(t, models.Scenario{Timing: models.Annual, Volatility: models.Extreme, Engagement: models.Passive}, summary.MinScenario)
}

func TestSummarize_Mismatch(t *testing.T) {
	results, space := syntheticResults(func(i int) float64 { return float64(i) })

	tests := []struct {
		name    string
		results []models.ScenarioResult
	}{
		{"truncated", results[:len(results)-1]},
		{"empty", nil},
		{"extra", append(append([]models.ScenarioResult{}, results...), results[0])},
		{"duplicate replaces a scenario", func() []models.ScenarioResult {
			dup := append([]models.ScenarioResult{}, results...)
			dup[5] = dup[4]
			return dup
		}()},
		{"reordered", func() []models.ScenarioResult {
			swapped := append([]models.ScenarioResult{}, results...)
			swapped[0], swapped[1] = swapped[1], swapped[0]
			return swapped
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Summarize(tt.results, space)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrAggregationMismatch))
		})
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 2.0, median([]float64{1, 2, 3}))
	assert.Equal(t, 2.5, median([]float64{1, 2, 3, 4}))
}
