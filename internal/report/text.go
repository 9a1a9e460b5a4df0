package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rewired-gh/tokval/internal/models"
)

const ruleWidth = 82

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// Text renders the full plain-text report.
func Text(r *models.Report) string {
	var b strings.Builder

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(&b, "%s\n  Valuation and Sensitivity Analysis of Tokenized Future Advertising Revenue\n%s\n\n", rule, rule)

	writeExecutiveSummary(&b, r)
	writeMethodology(&b)
	writeAssumptions(&b, r)
	writeDiscountRates(&b, r)
	writeBaseline(&b, r)
	writeLiftModel(&b, r)
	writeValuationMatrices(&b, r)
	writeStatistics(&b, r)
	writeInsights(&b, r)
	writeConclusion(&b, r)

	return b.String()
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
}

func writeExecutiveSummary(b *strings.Builder, r *models.Report) {
	s, sens := r.Summary, r.Sensitivity
	vols := models.AllVolatilityLevels()
	timings := models.AllPayoutTimings()

	fmt.Fprintf(b, "Executive Summary\n-----------------\n")
	fmt.Fprintf(b, "The tokenized quarterly advertising revenue is valued by discounted cash flow across %d scenarios\n", s.Count)
	fmt.Fprintf(b, "of payout timing, market volatility and investor engagement.\n\n")
	fmt.Fprintf(b, "* Valuation range: %s to %s.\n", currency(s.Min), currency(s.Max))
	fmt.Fprintf(b, "* Central estimate (%s): %s.\n", sens.CentralScenario, currency(sens.CentralEstimate))
	fmt.Fprintf(b, "* Market volatility: moving from %s (%.0f%%) to %s (%.0f%%) volatility lowers the valuation by %s.\n",
		vols[0], vols[0].Premium(), vols[len(vols)-1], vols[len(vols)-1].Premium(), percent(sens.VolatilityImpact))
	fmt.Fprintf(b, "* Investor lift: moving from %s to %s engagement raises the valuation by %s.\n",
		models.Passive, models.HighlyActive, percent(sens.LiftImpact))
	fmt.Fprintf(b, "* Payout cycle: extending payout from %s to %s lowers the valuation by %s.\n\n",
		timings[0], timings[len(timings)-1], percent(sens.PayoutImpact))
}

func writeMethodology(b *strings.Builder) {
	section(b, "Section 1: Methodology")
	b.WriteString("Each scenario is valued as PV = CF / (1 + r)^n where:\n")
	b.WriteString("1. CF is the forecast after the platform adjustment plus investor lift revenue.\n")
	b.WriteString("2. r is the risk-free rate plus the platform risk premium plus a volatility premium.\n")
	b.WriteString("3. n is the number of quarters until payout.\n")
	b.WriteString("Investor lift revenue is (investors x lift per investor x engagement multiplier) / 1000 x RPM\n")
	b.WriteString("and is not subject to the platform adjustment.\n\n")
}

func writeAssumptions(b *strings.Builder, r *models.Report) {
	a := r.Assumptions
	section(b, "Section 2: Assumptions")
	fmt.Fprintf(b, "* Raw quarterly revenue forecast: %s\n", currency(a.Forecast))
	fmt.Fprintf(b, "* Platform adjustment: %s\n", percent(a.PlatformAdjustment))
	fmt.Fprintf(b, "* Adjusted baseline revenue: %s\n", currency(r.Sensitivity.AdjustedBaseline))
	fmt.Fprintf(b, "* Risk-free rate: %s\n", percent(a.RiskFreeRate))
	fmt.Fprintf(b, "* Platform risk premium: %s\n\n", percent(a.PlatformRiskPremium))

	var vols, timings, engs []string
	for _, v := range models.AllVolatilityLevels() {
		vols = append(vols, fmt.Sprintf("%s (%.0f%%)", v, v.Premium()))
	}
	for _, t := range models.AllPayoutTimings() {
		timings = append(timings, fmt.Sprintf("%s (%d qtr)", t, t.Periods()))
	}
	for _, e := range models.AllEngagementLevels() {
		engs = append(engs, fmt.Sprintf("%s (x%.1f)", e, e.Multiplier()))
	}
	fmt.Fprintf(b, "* Volatility levels: %s\n", strings.Join(vols, ", "))
	fmt.Fprintf(b, "* Payout timing: %s\n", strings.Join(timings, ", "))
	fmt.Fprintf(b, "* Investor engagement: %s\n\n", strings.Join(engs, ", "))
}

func writeDiscountRates(b *strings.Builder, r *models.Report) {
	section(b, "Section 3: Risk-Adjusted Discount Rates")
	t := newTable("Volatility", "Risk-Free", "Volatility Premium", "Platform Premium", "Total")
	for _, d := range r.Sensitivity.DiscountRates {
		t.Row(d.Volatility.String(), percent(d.RiskFree), percent(d.VolatilityPremium), percent(d.PlatformPremium), percent(d.Total()))
	}
	fmt.Fprintf(b, "Table 1: Discount Rates by Volatility Level\n%s\n\n", t.String())
}

func volatilityHeaders(first string) []string {
	headers := []string{first}
	for _, v := range models.AllVolatilityLevels() {
		headers = append(headers, fmt.Sprintf("%s (%.0f%%)", v, v.Premium()))
	}
	return headers
}

func writeBaseline(b *strings.Builder, r *models.Report) {
	section(b, "Section 4: Baseline Valuation (No Investor Lift)")
	grid := make(map[models.PayoutTiming]map[models.VolatilityLevel]float64)
	for _, bv := range r.Sensitivity.Baseline {
		if grid[bv.Timing] == nil {
			grid[bv.Timing] = make(map[models.VolatilityLevel]float64)
		}
		grid[bv.Timing][bv.Volatility] = bv.PresentValue
	}

	t := newTable(volatilityHeaders("Payout Timing")...)
	for _, timing := range models.AllPayoutTimings() {
		row := []string{timing.String()}
		for _, v := range models.AllVolatilityLevels() {
			pv, ok := grid[timing][v]
			if !ok {
				row = append(row, "N/A")
				continue
			}
			row = append(row, currency(pv))
		}
		t.Row(row...)
	}
	fmt.Fprintf(b, "Table 2: Baseline Valuation Matrix\n%s\n\n", t.String())
}

func writeLiftModel(b *strings.Builder, r *models.Report) {
	a := r.Assumptions
	section(b, "Section 5: Investor Lift Model")
	fmt.Fprintf(b, "* Investors: %s\n", count(float64(a.InvestorCount)))
	fmt.Fprintf(b, "* Audience lift per investor: %.1f\n", a.LiftPerInvestor)
	fmt.Fprintf(b, "* Baseline audience: %s\n", count(float64(a.BaselineAudience)))
	fmt.Fprintf(b, "* RPM: %s\n\n", currency(a.RPM))

	activation := newTable("Engagement", "Multiplier", "Audience Lift")
	growth := newTable("Engagement", "Total Audience", "Growth")
	revenue := newTable("Engagement", "Lift Revenue", "Adjusted Cash Flow")
	for _, l := range r.Sensitivity.Lift {
		activation.Row(l.Engagement.String(), fmt.Sprintf("%.0f%%", l.Multiplier*100), count(l.LiftedAudience))

		g := 0.0
		if a.BaselineAudience > 0 {
			g = l.LiftedAudience / float64(a.BaselineAudience) * 100
		}
		growth.Row(l.Engagement.String(), count(l.TotalAudience), fmt.Sprintf("%.2f%%", g))
		revenue.Row(l.Engagement.String(), currency(l.LiftRevenue), currency(r.Sensitivity.AdjustedBaseline+l.LiftRevenue))
	}

	fmt.Fprintf(b, "Table 3: Engagement Scenarios\n%s\n\n", activation.String())
	fmt.Fprintf(b, "Table 4: Audience Growth\n%s\n\n", growth.String())
	fmt.Fprintf(b, "Table 5: Revenue Impact\n%s\n\n", revenue.String())
}

func writeValuationMatrices(b *strings.Builder, r *models.Report) {
	section(b, "Section 6: Full Valuation with Investor Lift")
	for i, e := range models.AllEngagementLevels() {
		t := newTable(volatilityHeaders("Payout Timing")...)
		for _, timing := range models.AllPayoutTimings() {
			row := []string{timing.String()}
			for _, v := range models.AllVolatilityLevels() {
				res, ok := r.Result(models.Scenario{Timing: timing, Volatility: v, Engagement: e})
				if !ok {
					row = append(row, "N/A")
					continue
				}
				row = append(row, currency(res.PresentValue))
			}
			t.Row(row...)
		}
		fmt.Fprintf(b, "Table %d: %s Engagement\n%s\n\n", 6+i, e, t.String())
	}
}

func writeStatistics(b *strings.Builder, r *models.Report) {
	s := r.Summary
	section(b, "Section 7: Summary Statistics")
	t := newTable("Statistic", "Present Value")
	t.Row("Minimum", currency(s.Min))
	t.Row("10th percentile", currency(s.P10))
	t.Row("Median", currency(s.Median))
	t.Row("Mean", currency(s.Mean))
	t.Row("90th percentile", currency(s.P90))
	t.Row("Maximum", currency(s.Max))
	t.Row("Standard deviation", currency(s.StdDev))
	fmt.Fprintf(b, "%s\n\n", t.String())
	fmt.Fprintf(b, "* Best case: %s at %s\n", s.MaxScenario, currency(s.Max))
	fmt.Fprintf(b, "* Worst case: %s at %s\n\n", s.MinScenario, currency(s.Min))
}

func writeInsights(b *strings.Builder, r *models.Report) {
	sens := r.Sensitivity
	timings := models.AllPayoutTimings()
	quarters := timings[len(timings)-1].Periods() - timings[0].Periods()
	perQuarter := 0.0
	if quarters > 0 {
		perQuarter = sens.PayoutImpact / float64(quarters)
	}

	section(b, "Section 8: Key Insights and Risk Factors")
	fmt.Fprintf(b, "1. Time value: each additional quarter of payout delay costs roughly %s of value.\n", percent(perQuarter))
	fmt.Fprintf(b, "2. Volatility: the spread between the calmest and most extreme market is %s.\n", percent(sens.VolatilityImpact))
	fmt.Fprintf(b, "3. Investor lift: active promotion by holders adds up to %s.\n\n", percent(sens.LiftImpact))
	b.WriteString("Risks: platform operations, advertising market volatility, payment delays and\n")
	b.WriteString("the durability of investor engagement all move realized value away from these estimates.\n\n")
}

func writeConclusion(b *strings.Builder, r *models.Report) {
	section(b, "Section 9: Conclusion")
	fmt.Fprintf(b, "The fair value of the token pool lies between %s and %s, with a central estimate of %s.\n\n",
		currency(r.Summary.Min), currency(r.Summary.Max), currency(r.Sensitivity.CentralEstimate))
	b.WriteString("---\n")
	fmt.Fprintf(b, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(b, "Generated: %s\n", r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(b, "Model Version: %s\n", r.ModelVersion)
}
