package valuation

import (
	"fmt"

	"github.com/rewired-gh/tokval/internal/models"
)

// CentralScenario is the "most likely" configuration used as the anchor for
// one-dimensional sensitivities.
var CentralScenario = models.Scenario{
	Timing:     models.Quarterly,
	Volatility: models.Medium,
	Engagement: models.Active,
}

// Analyze derives the sensitivity breakdown reported alongside the sweep.
// results must cover the full scenario space.
func Analyze(a models.Assumptions, results []models.ScenarioResult) (models.Sensitivity, error) {
	byScenario := make(map[models.Scenario]float64, len(results))
	for _, r := range results {
		byScenario[r.Scenario] = r.PresentValue
	}
	lookup := func(s models.Scenario) (float64, error) {
		pv, ok := byScenario[s]
		if !ok {
			return 0, &models.AggregationMismatchError{Detail: fmt.Sprintf("missing result for scenario %s", s)}
		}
		return pv, nil
	}

	sens := models.Sensitivity{
		AdjustedBaseline: a.AdjustedBaseline(),
		CentralScenario:  CentralScenario,
	}

	for _, v := range models.AllVolatilityLevels() {
		sens.DiscountRates = append(sens.DiscountRates, models.DiscountRateComponents{
			Volatility:        v,
			RiskFree:          a.RiskFreeRate,
			VolatilityPremium: v.Premium(),
			PlatformPremium:   a.PlatformRiskPremium,
		})
	}

	for _, t := range models.AllPayoutTimings() {
		for _, v := range models.AllVolatilityLevels() {
			rate := discountRate(a, v)
			pv, err := discount(sens.AdjustedBaseline, rate, t.Periods())
			if err != nil {
				return models.Sensitivity{}, &models.DegenerateDiscountRateError{
					Scenario: models.Scenario{Timing: t, Volatility: v},
					Rate:     rate,
				}
			}
			sens.Baseline = append(sens.Baseline, models.BaselineValuation{Timing: t, Volatility: v, PresentValue: pv})
		}
	}

	for _, e := range models.AllEngagementLevels() {
		lifted := float64(a.InvestorCount) * a.LiftPerInvestor * e.Multiplier()
		sens.Lift = append(sens.Lift, models.LiftProjection{
			Engagement:     e,
			Multiplier:     e.Multiplier(),
			LiftedAudience: lifted,
			TotalAudience:  float64(a.BaselineAudience) + lifted,
			LiftRevenue:    lifted / 1000 * a.RPM,
		})
	}

	central, err := lookup(CentralScenario)
	if err != nil {
		return models.Sensitivity{}, err
	}
	sens.CentralEstimate = central

	vary := func(mutate func(*models.Scenario)) (float64, error) {
		s := CentralScenario
		mutate(&s)
		return lookup(s)
	}

	lowVol, err := vary(func(s *models.Scenario) { s.Volatility = models.Low })
	if err != nil {
		return models.Sensitivity{}, err
	}
	extremeVol, err := vary(func(s *models.Scenario) { s.Volatility = models.Extreme })
	if err != nil {
		return models.Sensitivity{}, err
	}
	passive, err := vary(func(s *models.Scenario) { s.Engagement = models.Passive })
	if err != nil {
		return models.Sensitivity{}, err
	}
	highlyActive, err := vary(func(s *models.Scenario) { s.Engagement = models.HighlyActive })
	if err != nil {
		return models.Sensitivity{}, err
	}
	quarterly, err := vary(func(s *models.Scenario) { s.Timing = models.Quarterly })
	if err != nil {
		return models.Sensitivity{}, err
	}
	annual, err := vary(func(s *models.Scenario) { s.Timing = models.Annual })
	if err != nil {
		return models.Sensitivity{}, err
	}

	sens.VolatilityImpact = percentChange(lowVol, extremeVol, -1)
	sens.LiftImpact = percentChange(passive, highlyActive, 1)
	sens.PayoutImpact = percentChange(quarterly, annual, -1)

	return sens, nil
}

// percentChange is (to-from)/from in percent, multiplied by sign so that
// decreases can be reported as positive numbers. Zero when from is zero.
func percentChange(from, to, sign float64) float64 {
	if from == 0 {
		return 0
	}
	return sign * (to - from) / from * 100
}
