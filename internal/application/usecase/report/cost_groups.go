package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger/backend/internal/domain/entity"
	"github.com/homeledger/backend/internal/domain/valueobject"
)

// CostGroupRule is one (predicate, label) pair. Rules are evaluated in order and the first match wins.
type CostGroupRule struct {
	Matches func(o *entity.Obligation) bool
	Label   func(o *entity.Obligation) string
}

func fixedLabel(label string) func(*entity.Obligation) string {
	return func(*entity.Obligation) string { return label }
}

// NewCostGroupRules builds the ordered rule list: keyword groups, then the declared category, then Other.
func NewCostGroupRules(rules valueobject.ClassificationRules) []CostGroupRule {
	out := make([]CostGroupRule, 0, len(rules.CostGroups)+2)
	for _, kr := range rules.CostGroups {
		matches := valueobject.KeywordMatcher(kr.Keywords)
		out = append(out, CostGroupRule{
			Matches: func(o *entity.Obligation) bool { return matches(o.Name) || matches(o.Provider) },
			Label:   fixedLabel(kr.Label),
		})
	}
	out = append(out,
		CostGroupRule{
			Matches: func(o *entity.Obligation) bool { return strings.TrimSpace(o.Category) != "" },
			Label:   func(o *entity.Obligation) string { return strings.TrimSpace(o.Category) },
		},
		CostGroupRule{
			Matches: func(*entity.Obligation) bool { return true },
			Label:   fixedLabel(valueobject.CostGroupOther),
		},
	)
	return out
}

// Classify returns the label of the first matching rule.
func Classify(rules []CostGroupRule, o *entity.Obligation) string {
	for _, rule := range rules {
		if rule.Matches(o) {
			return rule.Label(o)
		}
	}
	return valueobject.CostGroupOther
}

// InPeriod reports whether o is one of the bills of the month containing period:
// due or paid within that month, or still unpaid and due by its end. Undated
// unpaid bills are always open.
func InPeriod(o *entity.Obligation, period time.Time) bool {
	if o == nil || !o.IsActive() {
		return false
	}
	start, end := valueobject.MonthBounds(period)
	within := func(t *time.Time) bool {
		return t != nil && !t.Before(start) && t.Before(end)
	}
	if o.IsPaid() {
		return within(o.PaidDate) || within(o.DueDate)
	}
	return o.DueDate == nil || o.DueDate.Before(end)
}

// GroupCosts totals the period's active obligations per cost group, largest group first.
func GroupCosts(rules []CostGroupRule, obligations []*entity.Obligation, period time.Time) ([]CostGroup, decimal.Decimal) {
	index := make(map[string]int)
	groups := []CostGroup{}
	total := decimal.Zero
	for _, o := range obligations {
		if !InPeriod(o, period) {
			continue
		}
		label := Classify(rules, o)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, CostGroup{Label: label, Total: decimal.Zero, Items: []CostItem{}})
		}
		groups[i].Total = groups[i].Total.Add(o.Amount)
		groups[i].Count++
		groups[i].Items = append(groups[i].Items, CostItem{Name: o.Name, Amount: o.Amount})
		total = total.Add(o.Amount)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if c := groups[i].Total.Cmp(groups[j].Total); c != 0 {
			return c > 0
		}
		return groups[i].Label < groups[j].Label
	})
	return groups, total
}
