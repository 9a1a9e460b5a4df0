package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewired-gh/tokval/internal/models"
)

func TestSpace_SizeAndUniqueness(t *testing.T) {
	space := Space()

	require.Len(t, space, 48)
	assert.Equal(t, len(space), Size())

	seen := make(map[models.Scenario]bool, len(space))
	for _, s := range space {
		assert.True(t, s.Valid(), s.String())
		assert.False(t, seen[s], "duplicate scenario %s", s)
		seen[s] = true
	}
}

func TestSpace_Order(t *testing.T) {
	space := Space()

	assert.Equal(t, models.Scenario{Timing: models.Quarterly, Volatility: models.Low, Engagement: models.Passive}, space[0])
	assert.Equal(t, models.Scenario{Timing: models.Quarterly, Volatility: models.Low, Engagement: models.Active}, space[1])
	assert.Equal(t, models.Scenario{Timing: models.Quarterly, Volatility: models.Medium, Engagement: models.Passive}, space[3])
	assert.Equal(t, models.Scenario{Timing: models.SemiAnnual, Volatility: models.Low, Engagement: models.Passive}, space[12])
	assert.Equal(t, models.Scenario{Timing: models.Annual, Volatility: models.Extreme, Engagement: models.HighlyActive}, space[47])
}

func TestSpace_Stable(t *testing.T) {
	assert.Equal(t, Space(), Space())

	// Callers own the returned slice.
	a := Space()
	a[0] = models.Scenario{Timing: models.Annual}
	assert.Equal(t, models.Quarterly, Space()[0].Timing)
}

func TestIndex(t *testing.T) {
	for i, s := range Space() {
		idx, ok := Index(s)
		require.True(t, ok)
		assert.Equal(t, i, idx, s.String())
	}

	_, ok := Index(models.Scenario{Volatility: models.VolatilityLevel(7)})
	assert.False(t, ok)
}
