package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rewired-gh/tokval/internal/models"
)

// Money amounts are rounded to cents; rates and ratios stay floats.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

type jsonScenario struct {
	PayoutTiming string `json:"payout_timing"`
	Volatility   string `json:"volatility"`
	Engagement   string `json:"engagement"`
}

func toJSONScenario(s models.Scenario) jsonScenario {
	return jsonScenario{
		PayoutTiming: s.Timing.String(),
		Volatility:   s.Volatility.String(),
		Engagement:   s.Engagement.String(),
	}
}

type jsonResult struct {
	Scenario         jsonScenario    `json:"scenario"`
	BaseCashFlow     decimal.Decimal `json:"base_cash_flow"`
	LiftedAudience   float64         `json:"lifted_audience"`
	LiftRevenue      decimal.Decimal `json:"lift_revenue"`
	AdjustedCashFlow decimal.Decimal `json:"adjusted_cash_flow"`
	DiscountRate     float64         `json:"discount_rate"`
	Periods          int             `json:"periods"`
	PresentValue     decimal.Decimal `json:"present_value"`
}

type jsonSummary struct {
	Count       int             `json:"count"`
	Min         decimal.Decimal `json:"min"`
	Max         decimal.Decimal `json:"max"`
	Mean        decimal.Decimal `json:"mean"`
	Median      decimal.Decimal `json:"median"`
	StdDev      decimal.Decimal `json:"std_dev"`
	P10         decimal.Decimal `json:"p10"`
	P90         decimal.Decimal `json:"p90"`
	MinScenario jsonScenario    `json:"min_scenario"`
	MaxScenario jsonScenario    `json:"max_scenario"`
}

type jsonDiscountRate struct {
	Volatility        string  `json:"volatility"`
	RiskFree          float64 `json:"risk_free"`
	VolatilityPremium float64 `json:"volatility_premium"`
	PlatformPremium   float64 `json:"platform_premium"`
	Total             float64 `json:"total"`
}

type jsonBaseline struct {
	PayoutTiming string          `json:"payout_timing"`
	Volatility   string          `json:"volatility"`
	PresentValue decimal.Decimal `json:"present_value"`
}

type jsonLift struct {
	Engagement     string          `json:"engagement"`
	Multiplier     float64         `json:"multiplier"`
	LiftedAudience float64         `json:"lifted_audience"`
	TotalAudience  float64         `json:"total_audience"`
	LiftRevenue    decimal.Decimal `json:"lift_revenue"`
}

type jsonSensitivity struct {
	AdjustedBaseline decimal.Decimal    `json:"adjusted_baseline"`
	DiscountRates    []jsonDiscountRate `json:"discount_rates"`
	Baseline         []jsonBaseline     `json:"baseline"`
	Lift             []jsonLift         `json:"lift"`
	CentralScenario  jsonScenario       `json:"central_scenario"`
	CentralEstimate  decimal.Decimal    `json:"central_estimate"`
	VolatilityImpact float64            `json:"volatility_impact_pct"`
	LiftImpact       float64            `json:"lift_impact_pct"`
	PayoutImpact     float64            `json:"payout_impact_pct"`
}

type jsonReport struct {
	RunID        string             `json:"run_id"`
	GeneratedAt  time.Time          `json:"generated_at"`
	ModelVersion string             `json:"model_version"`
	Assumptions  models.Assumptions `json:"assumptions"`
	Results      []jsonResult       `json:"results"`
	Summary      jsonSummary        `json:"summary"`
	Sensitivity  jsonSensitivity    `json:"sensitivity"`
}

func toJSONReport(r *models.Report) jsonReport {
	out := jsonReport{
		RunID:        r.RunID,
		GeneratedAt:  r.GeneratedAt,
		ModelVersion: r.ModelVersion,
		Assumptions:  r.Assumptions,
		Results:      make([]jsonResult, 0, len(r.Results)),
	}

	for _, res := range r.Results {
		out.Results = append(out.Results, jsonResult{
			Scenario:         toJSONScenario(res.Scenario),
			BaseCashFlow:     money(res.BaseCashFlow),
			LiftedAudience:   res.LiftedAudience,
			LiftRevenue:      money(res.LiftRevenue),
			AdjustedCashFlow: money(res.AdjustedCashFlow),
			DiscountRate:     res.DiscountRate,
			Periods:          res.Periods,
			PresentValue:     money(res.PresentValue),
		})
	}

	s := r.Summary
	out.Summary = jsonSummary{
		Count:       s.Count,
		Min:         money(s.Min),
		Max:         money(s.Max),
		Mean:        money(s.Mean),
		Median:      money(s.Median),
		StdDev:      money(s.StdDev),
		P10:         money(s.P10),
		P90:         money(s.P90),
		MinScenario: toJSONScenario(s.MinScenario),
		MaxScenario: toJSONScenario(s.MaxScenario),
	}

	sens := r.Sensitivity
	out.Sensitivity = jsonSensitivity{
		AdjustedBaseline: money(sens.AdjustedBaseline),
		DiscountRates:    make([]jsonDiscountRate, 0, len(sens.DiscountRates)),
		Baseline:         make([]jsonBaseline, 0, len(sens.Baseline)),
		Lift:             make([]jsonLift, 0, len(sens.Lift)),
		CentralScenario:  toJSONScenario(sens.CentralScenario),
		CentralEstimate:  money(sens.CentralEstimate),
		VolatilityImpact: sens.VolatilityImpact,
		LiftImpact:       sens.LiftImpact,
		PayoutImpact:     sens.PayoutImpact,
	}
	for _, d := range sens.DiscountRates {
		out.Sensitivity.DiscountRates = append(out.Sensitivity.DiscountRates, jsonDiscountRate{
			Volatility:        d.Volatility.String(),
			RiskFree:          d.RiskFree,
			VolatilityPremium: d.VolatilityPremium,
			PlatformPremium:   d.PlatformPremium,
			Total:             d.Total(),
		})
	}
	for _, b := range sens.Baseline {
		out.Sensitivity.Baseline = append(out.Sensitivity.Baseline, jsonBaseline{
			PayoutTiming: b.Timing.String(),
			Volatility:   b.Volatility.String(),
			PresentValue: money(b.PresentValue),
		})
	}
	for _, l := range sens.Lift {
		out.Sensitivity.Lift = append(out.Sensitivity.Lift, jsonLift{
			Engagement:     l.Engagement.String(),
			Multiplier:     l.Multiplier,
			LiftedAudience: l.LiftedAudience,
			TotalAudience:  l.TotalAudience,
			LiftRevenue:    money(l.LiftRevenue),
		})
	}

	return out
}

func writeJSON(w io.Writer, r *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSONReport(r)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
