package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/valueobject"
)

// SpendSpikePercent triggers the spend-spike suggestion.
const SpendSpikePercent = 15.0

// BundleMinBills triggers the bundling suggestion for the streaming group.
const BundleMinBills = 2

const maxFallbackHighlights = 8

// FallbackText writes the report with deterministic templates.
func FallbackText(draft *Draft) Text {
	return Text{
		Summary:     fallbackSummary(draft),
		Highlights:  fallbackHighlights(draft.Highlights),
		Suggestions: fallbackSuggestions(draft),
	}
}

func fallbackSummary(draft *Draft) string {
	s := draft.Snapshot
	sentences := make([]string, 0, 4)

	spend := fmt.Sprintf("This month you have spent %s across %d expenses",
		formatMoney(s.Spending.ThisPeriodTotal), s.Spending.ThisPeriodCount)
	if pc := s.Spending.PercentChange; pc != nil {
		direction := "up"
		if *pc < 0 {
			direction = "down"
		}
		spend += fmt.Sprintf(", %s %.0f%% from %s", direction, math.Abs(*pc), s.Spending.LastPeriodLabel)
	}
	sentences = append(sentences, spend+".")

	if groups := draft.CostAnalysis.Groups; len(groups) > 0 {
		count := 0
		for _, g := range groups {
			count += g.Count
		}
		sentences = append(sentences, fmt.Sprintf("Your %d active bills total %s, led by %s at %s.",
			count, formatMoney(draft.CostAnalysis.Total), groups[0].Label, formatMoney(groups[0].Total)))
	}

	if trend := draft.CostAnalysis.Trend; len(trend) > 0 && anyPaid(trend) {
		parts := make([]string, 0, len(trend))
		for _, p := range trend {
			parts = append(parts, fmt.Sprintf("%s %s", strings.Fields(p.Label)[0], formatMoney(p.Total)))
		}
		sentences = append(sentences, "Paid bills over the last three months: "+strings.Join(parts, ", ")+".")
	}

	sentences = append(sentences, fmt.Sprintf("Coming up in the next 30 days: %s and %s.",
		plural(s.Upcoming.AppointmentCount, "appointment"), plural(s.Upcoming.ObligationsDueCount, "bill")))
	return strings.Join(sentences, " ")
}

func anyPaid(trend []TrendPoint) bool {
	for _, p := range trend {
		if p.Count > 0 {
			return true
		}
	}
	return false
}

func fallbackHighlights(highlights []Highlight) []string {
	out := make([]string, 0, len(highlights))
	for _, h := range highlights {
		if len(out) == maxFallbackHighlights {
			break
		}
		line := h.Label
		if h.Date != nil && h.Type != HighlightBirthday {
			line += " on " + h.Date.Format("Jan 2")
		}
		if h.Detail != nil && *h.Detail != "" {
			line += " (" + *h.Detail + ")"
		}
		out = append(out, line)
	}
	return out
}

func fallbackSuggestions(draft *Draft) []string {
	s := draft.Snapshot
	suggestions := []string{}

	if g, ok := draft.CostAnalysis.Group(valueobject.CostGroupStreaming); ok && g.Count >= BundleMinBills {
		suggestions = append(suggestions, fmt.Sprintf(
			"You pay for %d streaming services (%s a month). A bundle or rotating subscriptions could cut that.",
			g.Count, formatMoney(g.Total)))
	}

	if pc := s.Spending.PercentChange; pc != nil && *pc > SpendSpikePercent {
		suggestions = append(suggestions, fmt.Sprintf(
			"Spending is up %.0f%% from %s. Review recent purchases for one-off costs.", *pc, s.Spending.LastPeriodLabel))
	}

	overdue := 0
	for _, o := range s.Records.Obligations {
		if o != nil && o.IsOverdue(s.GeneratedAt) {
			overdue++
		}
	}
	if overdue > 0 {
		suggestions = append(suggestions, fmt.Sprintf("%s overdue. Paying now avoids late fees.", pluralVerb(overdue, "bill")))
	}

	for _, m := range s.Predictions.Maintenance {
		if m.Urgent {
			suggestions = append(suggestions, fmt.Sprintf("Schedule service for the %s. %s", m.VehicleLabel, m.Message))
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Nothing needs attention right now. Keep logging bills to sharpen next month's report.")
	}
	return suggestions
}

func formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func pluralVerb(n int, noun string) string {
	if n == 1 {
		return "1 " + noun + " is"
	}
	return fmt.Sprintf("%d %ss are", n, noun)
}
