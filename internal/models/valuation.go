package models

import (
	"time"
)

// ScenarioResult is the valuation of a single scenario. Never mutated after creation.
type ScenarioResult struct {
	Scenario Scenario

	BaseCashFlow     float64
	LiftedAudience   float64
	LiftRevenue      float64
	AdjustedCashFlow float64

	DiscountRate float64 // decimal fraction
	Periods      int
	PresentValue float64
}

type ValuationSummary struct {
	Count int

	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
	P10    float64
	P90    float64

	MinScenario Scenario
	MaxScenario Scenario
}

// DiscountRateComponents breaks a volatility level's discount rate into its
// parts, all in percent.
type DiscountRateComponents struct {
	Volatility        VolatilityLevel
	RiskFree          float64
	VolatilityPremium float64
	PlatformPremium   float64
}

func (d DiscountRateComponents) Total() float64 {
	return d.RiskFree + d.VolatilityPremium + d.PlatformPremium
}

// BaselineValuation is a present value with no investor lift.
type BaselineValuation struct {
	Timing       PayoutTiming
	Volatility   VolatilityLevel
	PresentValue float64
}

type LiftProjection struct {
	Engagement     EngagementLevel
	Multiplier     float64
	LiftedAudience float64
	TotalAudience  float64
	LiftRevenue    float64
}

type Sensitivity struct {
	AdjustedBaseline float64

	DiscountRates []DiscountRateComponents
	Baseline      []BaselineValuation
	Lift          []LiftProjection

	CentralScenario Scenario
	CentralEstimate float64

	// Percent changes between the extremes of one dimension, holding the
	// others at the central scenario.
	VolatilityImpact float64
	LiftImpact       float64
	PayoutImpact     float64
}

// Report is everything a report generator may depend on.
type Report struct {
	RunID        string
	GeneratedAt  time.Time
	ModelVersion string

	Assumptions Assumptions
	Results     []ScenarioResult
	Summary     ValuationSummary
	Sensitivity Sensitivity
}

// Result returns the result for scenario s, if present.
func (r *Report) Result(s Scenario) (ScenarioResult, bool) {
	for _, res := range r.Results {
		if res.Scenario == s {
			return res, true
		}
	}
	return ScenarioResult{}, false
}
