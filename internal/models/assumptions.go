// Package models defines the core valuation entities: assumptions, scenarios and results.
package models

import "math"

// Assumptions are the financial and behavioral inputs of a valuation run.
// Rates and the platform adjustment are percentages (4.5 means 4.5%).
type Assumptions struct {
	Forecast            float64 `json:"forecast"`
	RiskFreeRate        float64 `json:"risk_free_rate"`
	PlatformRiskPremium float64 `json:"platform_risk_premium"`
	PlatformAdjustment  float64 `json:"platform_adjustment"`
	BaselineAudience    int64   `json:"baseline_audience"`
	RPM                 float64 `json:"rpm"`
	InvestorCount       int     `json:"investor_count"`
	LiftPerInvestor     float64 `json:"lift_per_investor"`
}

// Validate checks the Assumptions invariants. The returned error is always
// an *InvalidAssumptionError naming the first offending field.
func (a Assumptions) Validate() error {
	finite := []struct {
		field string
		value float64
	}{
		{"forecast", a.Forecast},
		{"risk_free_rate", a.RiskFreeRate},
		{"platform_risk_premium", a.PlatformRiskPremium},
		{"platform_adjustment", a.PlatformAdjustment},
		{"rpm", a.RPM},
		{"lift_per_investor", a.LiftPerInvestor},
	}
	for _, f := range finite {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidAssumptionError{Field: f.field, Value: f.value, Reason: "must be a finite number"}
		}
	}

	if a.Forecast <= 0 {
		return &InvalidAssumptionError{Field: "forecast", Value: a.Forecast, Reason: "must be positive"}
	}
	if a.BaselineAudience <= 0 {
		return &InvalidAssumptionError{Field: "baseline_audience", Value: float64(a.BaselineAudience), Reason: "must be positive"}
	}
	if a.RPM < 0 {
		return &InvalidAssumptionError{Field: "rpm", Value: a.RPM, Reason: "must not be negative"}
	}
	if a.InvestorCount < 0 {
		return &InvalidAssumptionError{Field: "investor_count", Value: float64(a.InvestorCount), Reason: "must not be negative"}
	}
	if a.LiftPerInvestor < 0 {
		return &InvalidAssumptionError{Field: "lift_per_investor", Value: a.LiftPerInvestor, Reason: "must not be negative"}
	}
	return nil
}

// AdjustedBaseline is the forecast after the platform adjustment, before any lift.
func (a Assumptions) AdjustedBaseline() float64 {
	return a.Forecast * (1 + a.PlatformAdjustment/100)
}
