package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAssumption      = errors.New("invalid assumption")
	ErrDegenerateDiscountRate = errors.New("degenerate discount rate")
	ErrAggregationMismatch    = errors.New("aggregation mismatch")
)

// InvalidAssumptionError reports an input that violates an Assumptions invariant.
type InvalidAssumptionError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidAssumptionError) Error() string {
	return fmt.Sprintf("invalid assumption %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidAssumptionError) Unwrap() error { return ErrInvalidAssumption }

// DegenerateDiscountRateError reports a scenario whose discount rate is at or
// below -100%, where (1 + rate) is no longer a positive growth factor.
type DegenerateDiscountRateError struct {
	Scenario Scenario
	Rate     float64 // decimal fraction
}

func (e *DegenerateDiscountRateError) Error() string {
	return fmt.Sprintf("degenerate discount rate %.4f%% for scenario %s: rate must be greater than -100%%",
		e.Rate*100, e.Scenario)
}

func (e *DegenerateDiscountRateError) Unwrap() error { return ErrDegenerateDiscountRate }

// AggregationMismatchError reports a result set that does not line up with
// the scenario space it is summarized against.
type AggregationMismatchError struct {
	Expected int
	Got      int
	Detail   string
}

func (e *AggregationMismatchError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("aggregation mismatch: %s", e.Detail)
	}
	return fmt.Sprintf("aggregation mismatch: expected %d results, got %d", e.Expected, e.Got)
}

func (e *AggregationMismatchError) Unwrap() error { return ErrAggregationMismatch }
