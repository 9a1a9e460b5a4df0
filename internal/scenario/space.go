// Package scenario enumerates the fixed sensitivity sweep.
package scenario

import "github.com/rewired-gh/tokval/internal/models"

// Space returns every (timing, volatility, engagement) triple. Timing varies
// slowest and engagement fastest, each in declaration order, so the sequence
// is identical across runs. The returned slice is owned by the caller.
func Space() []models.Scenario {
	timings := models.AllPayoutTimings()
	vols := models.AllVolatilityLevels()
	engs := models.AllEngagementLevels()

	space := make([]models.Scenario, 0, len(timings)*len(vols)*len(engs))
	for _, t := range timings {
		for _, v := range vols {
			for _, e := range engs {
				space = append(space, models.Scenario{Timing: t, Volatility: v, Engagement: e})
			}
		}
	}
	return space
}

// Size is the cardinality of Space.
func Size() int {
	return len(models.AllPayoutTimings()) * len(models.AllVolatilityLevels()) * len(models.AllEngagementLevels())
}

// Index returns the position of s in Space order.
func Index(s models.Scenario) (int, bool) {
	if !s.Valid() {
		return 0, false
	}
	nv := len(models.AllVolatilityLevels())
	ne := len(models.AllEngagementLevels())
	return (int(s.Timing)*nv+int(s.Volatility))*ne + int(s.Engagement), true
}
