package models

import "fmt"

// PayoutTiming is when the tokenized revenue is paid out to holders.
// Each timing maps to a fixed number of quarterly discounting periods.
type PayoutTiming uint8

const (
	Quarterly PayoutTiming = iota
	SemiAnnual
	NineMonth
	Annual
)

var payoutTimings = [...]struct {
	name    string
	periods int
}{
	Quarterly:  {"Quarterly", 1},
	SemiAnnual: {"Semi-Annual", 2},
	NineMonth:  {"Nine-Month", 3},
	Annual:     {"Annual", 4},
}

// AllPayoutTimings returns every payout timing in declaration order.
func AllPayoutTimings() []PayoutTiming {
	return []PayoutTiming{Quarterly, SemiAnnual, NineMonth, Annual}
}

func (p PayoutTiming) Valid() bool { return int(p) < len(payoutTimings) }

// Periods returns the discounting exponent, in quarters.
func (p PayoutTiming) Periods() int {
	if !p.Valid() {
		return 0
	}
	return payoutTimings[p].periods
}

func (p PayoutTiming) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PayoutTiming(%d)", uint8(p))
	}
	return payoutTimings[p].name
}

// VolatilityLevel is the market volatility regime of a scenario.
type VolatilityLevel uint8

const (
	Low VolatilityLevel = iota
	Medium
	High
	Extreme
)

var volatilityLevels = [...]struct {
	name    string
	premium float64 // percent
}{
	Low:     {"Low", 5.0},
	Medium:  {"Medium", 10.0},
	High:    {"High", 20.0},
	Extreme: {"Extreme", 30.0},
}

// AllVolatilityLevels returns every volatility level in declaration order.
func AllVolatilityLevels() []VolatilityLevel {
	return []VolatilityLevel{Low, Medium, High, Extreme}
}

func (v VolatilityLevel) Valid() bool { return int(v) < len(volatilityLevels) }

// Premium returns the volatility premium in percent.
func (v VolatilityLevel) Premium() float64 {
	if !v.Valid() {
		return 0
	}
	return volatilityLevels[v].premium
}

func (v VolatilityLevel) String() string {
	if !v.Valid() {
		return fmt.Sprintf("VolatilityLevel(%d)", uint8(v))
	}
	return volatilityLevels[v].name
}

// EngagementLevel models how actively token holders promote the publisher.
type EngagementLevel uint8

const (
	Passive EngagementLevel = iota
	Active
	HighlyActive
)

var engagementLevels = [...]struct {
	name       string
	multiplier float64
}{
	Passive:      {"Passive", 0.5},
	Active:       {"Active", 1.0},
	HighlyActive: {"Highly Active", 1.5},
}

// AllEngagementLevels returns every engagement level in declaration order.
func AllEngagementLevels() []EngagementLevel {
	return []EngagementLevel{Passive, Active, HighlyActive}
}

func (e EngagementLevel) Valid() bool { return int(e) < len(engagementLevels) }

// Multiplier scales the per-investor audience lift.
func (e EngagementLevel) Multiplier() float64 {
	if !e.Valid() {
		return 0
	}
	return engagementLevels[e].multiplier
}

func (e EngagementLevel) String() string {
	if !e.Valid() {
		return fmt.Sprintf("EngagementLevel(%d)", uint8(e))
	}
	return engagementLevels[e].name
}

// Scenario is one point of the sensitivity sweep.
type Scenario struct {
	Timing     PayoutTiming
	Volatility VolatilityLevel
	Engagement EngagementLevel
}

func (s Scenario) Valid() bool {
	return s.Timing.Valid() && s.Volatility.Valid() && s.Engagement.Valid()
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s / %s / %s", s.Timing, s.Volatility, s.Engagement)
}
