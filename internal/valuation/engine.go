// Package valuation prices tokenized ad revenue across the scenario space.
package valuation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rewired-gh/tokval/internal/logger"
	"github.com/rewired-gh/tokval/internal/models"
	"github.com/rewired-gh/tokval/internal/scenario"
)

const ModelVersion = "0.3.0"

type Config struct {
	Parallel bool
	Workers  int
}

func DefaultConfig() Config {
	return Config{
		Parallel: false,
		Workers:  4,
	}
}

type Engine struct {
	config Config
}

func New(config Config) *Engine {
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Engine{config: config}
}

// Evaluate values one scenario. It is a pure function of its arguments.
func Evaluate(a models.Assumptions, s models.Scenario) (models.ScenarioResult, error) {
	if err := a.Validate(); err != nil {
		return models.ScenarioResult{}, err
	}
	return evaluate(a, s)
}

func evaluate(a models.Assumptions, s models.Scenario) (models.ScenarioResult, error) {
	if !s.Valid() {
		return models.ScenarioResult{}, fmt.Errorf("unknown scenario %s", s)
	}

	liftedAudience := float64(a.InvestorCount) * a.LiftPerInvestor * s.Engagement.Multiplier()
	liftRevenue := liftedAudience / 1000 * a.RPM

	// Lift is additive revenue and is not subject to the platform adjustment.
	base := a.AdjustedBaseline()
	total := base + liftRevenue

	rate := discountRate(a, s.Volatility)
	periods := s.Timing.Periods()
	pv, err := discount(total, rate, periods)
	if err != nil {
		return models.ScenarioResult{}, &models.DegenerateDiscountRateError{Scenario: s, Rate: rate}
	}

	return models.ScenarioResult{
		Scenario:         s,
		BaseCashFlow:     base,
		LiftedAudience:   liftedAudience,
		LiftRevenue:      liftRevenue,
		AdjustedCashFlow: total,
		DiscountRate:     rate,
		Periods:          periods,
		PresentValue:     pv,
	}, nil
}

// discountRate returns the risk-adjusted rate as a decimal fraction.
func discountRate(a models.Assumptions, v models.VolatilityLevel) float64 {
	return (a.RiskFreeRate + a.PlatformRiskPremium + v.Premium()) / 100
}

var errDegenerate = errors.New("discount factor is not positive")

// discount computes cashFlow / (1+rate)^periods. A rate at or below -100% is
// rejected regardless of the number of periods.
func discount(cashFlow, rate float64, periods int) (float64, error) {
	growth := 1 + rate
	if growth <= 0 {
		return 0, errDegenerate
	}
	denominator := math.Pow(growth, float64(periods))
	if denominator <= 0 || math.IsInf(denominator, 0) || math.IsNaN(denominator) {
		return 0, errDegenerate
	}
	return cashFlow / denominator, nil
}

// EvaluateAll values every scenario in space and returns the results in the
// same order. In parallel mode results are written by index, so ordering does
// not depend on scheduling. If any scenario fails, the error of the earliest
// failing scenario in space order is returned and no results are.
func (e *Engine) EvaluateAll(a models.Assumptions, space []models.Scenario) ([]models.ScenarioResult, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	results := make([]models.ScenarioResult, len(space))

	if !e.config.Parallel {
		for i, s := range space {
			r, err := evaluate(a, s)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	errs := make([]error, len(space))
	var g errgroup.Group
	g.SetLimit(e.config.Workers)
	for i, s := range space {
		g.Go(func() error {
			r, err := evaluate(a, s)
			if err != nil {
				errs[i] = err
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		return nil, err
	}
	return results, nil
}

// Run executes the full pipeline: validation, sweep, aggregation and
// sensitivity analysis. Any failure invalidates the whole report.
func (e *Engine) Run(a models.Assumptions) (*models.Report, error) {
	runID := uuid.New().String()
	log := logger.With("run_id", runID)
	start := time.Now()

	if err := a.Validate(); err != nil {
		return nil, err
	}

	space := scenario.Space()
	log.Debugf("Evaluating %d scenarios (parallel=%v, workers=%d)", len(space), e.config.Parallel, e.config.Workers)

	results, err := e.EvaluateAll(a, space)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate scenarios: %w", err)
	}

	summary, err := Summarize(results, space)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize results: %w", err)
	}
	log.Debugf("Summary: min=%.2f max=%.2f mean=%.2f median=%.2f", summary.Min, summary.Max, summary.Mean, summary.Median)

	sens, err := Analyze(a, results)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze sensitivity: %w", err)
	}

	log.Debugf("Valuation run completed in %v", time.Since(start))

	return &models.Report{
		RunID:        runID,
		GeneratedAt:  time.Now().UTC(),
		ModelVersion: ModelVersion,
		Assumptions:  a,
		Results:      results,
		Summary:      summary,
		Sensitivity:  sens,
	}, nil
}
