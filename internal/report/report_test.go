package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewired-gh/tokval/internal/models"
	"github.com/rewired-gh/tokval/internal/valuation"
)

func testReport(t *testing.T) *models.Report {
	t.Helper()
	r, err := valuation.New(valuation.DefaultConfig()).Run(models.Assumptions{
		Forecast:            220000,
		RiskFreeRate:        4.5,
		PlatformRiskPremium: 12.0,
		PlatformAdjustment:  -9.1,
		BaselineAudience:    1000000,
		RPM:                 15.0,
		InvestorCount:       1000,
		LiftPerInvestor:     10,
	})
	require.NoError(t, err)
	return r
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, nil, FormatText))
	assert.Error(t, Render(&buf, testReport(t), Format("pdf")))
	assert.Zero(t, buf.Len())
}

func TestRenderText(t *testing.T) {
	r := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatText))
	out := buf.String()

	for _, want := range []string{
		"Executive Summary",
		"Table 1: Discount Rates by Volatility Level",
		"Table 2: Baseline Valuation Matrix",
		"Table 6: Passive Engagement",
		"Table 8: Highly Active Engagement",
		"Central estimate (Quarterly / Medium / Active): $158,205.53",
		"Adjusted baseline revenue: $199,980.00",
		"Nine-Month",
		"Extreme (30%)",
		"Run ID: " + r.RunID,
		"Model Version: " + valuation.ModelVersion,
	} {
		assert.Contains(t, out, want)
	}

	// Every scenario present value appears in the full valuation matrices.
	for _, res := range r.Results {
		assert.Contains(t, out, currency(res.PresentValue), res.Scenario.String())
	}
	assert.NotContains(t, out, "N/A")
}

func TestRenderText_MissingResultsShowPlaceholder(t *testing.T) {
	r := testReport(t)
	r.Results = r.Results[:1]

	out := Text(r)
	assert.Contains(t, out, "N/A")
}

func TestRenderJSON(t *testing.T) {
	r := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, FormatJSON))

	var got struct {
		RunID        string `json:"run_id"`
		ModelVersion string `json:"model_version"`
		Assumptions  struct {
			Forecast float64 `json:"forecast"`
		} `json:"assumptions"`
		Results []struct {
			Scenario struct {
				PayoutTiming string `json:"payout_timing"`
				Volatility   string `json:"volatility"`
				Engagement   string `json:"engagement"`
			} `json:"scenario"`
			PresentValue string `json:"present_value"`
			Periods      int    `json:"periods"`
		} `json:"results"`
		Summary struct {
			Count int `json:"count"`
		} `json:"summary"`
		Sensitivity struct {
			CentralEstimate string `json:"central_estimate"`
			DiscountRates   []struct {
				Total float64 `json:"total"`
			} `json:"discount_rates"`
		} `json:"sensitivity"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, r.RunID, got.RunID)
	assert.Equal(t, valuation.ModelVersion, got.ModelVersion)
	assert.Equal(t, 220000.0, got.Assumptions.Forecast)
	require.Len(t, got.Results, 48)
	assert.Equal(t, 48, got.Summary.Count)

	first := got.Results[0]
	assert.Equal(t, "Quarterly", first.Scenario.PayoutTiming)
	assert.Equal(t, "Low", first.Scenario.Volatility)
	assert.Equal(t, "Passive", first.Scenario.Engagement)
	assert.Equal(t, 1, first.Periods)

	// Money is rounded to cents.
	assert.Equal(t, "158205.53", got.Sensitivity.CentralEstimate)
	for _, res := range got.Results {
		if i := strings.IndexByte(res.PresentValue, '.'); i >= 0 {
			assert.LessOrEqual(t, len(res.PresentValue)-i-1, 2, res.PresentValue)
		}
	}

	require.Len(t, got.Sensitivity.DiscountRates, 4)
	assert.InDelta(t, 21.5, got.Sensitivity.DiscountRates[0].Total, 1e-9)
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{158205.53359683792, "$158,205.53"},
		{-2500, "-$2,500.00"},
	}
	for _, tt := range tests {
		if got := currency(tt.in); got != tt.want {
			t.Errorf("currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,005,000", count(1005000))
	assert.Equal(t, "7,500", count(7499.6))
}
