// Package valueobject contains immutable domain values shared across use cases.
package valueobject

import (
	"regexp"
	"strings"
)

// Cost group labels.
const (
	CostGroupStreaming = "Streaming & subscriptions"
	CostGroupUtilities = "Utilities"
	CostGroupOther     = "Other"
)

// Checkup types.
const (
	CheckupDental   = "dental"
	CheckupPhysical = "physical"
)

// KeywordRule maps a set of case-insensitive keywords to a label.
type KeywordRule struct {
	Label    string   `toml:"label"`
	Keywords []string `toml:"keywords"`
}

// CheckupRule describes one health checkup type and when it becomes stale.
type CheckupRule struct {
	Type             string   `toml:"type"`
	Keywords         []string `toml:"keywords"`
	StaleAfterMonths int      `toml:"stale_after_months"`

	// UseMedicalRecords enables the medical-history fallback when no appointment matches.
	UseMedicalRecords bool `toml:"use_medical_records"`
}

// ClassificationRules holds the ordered keyword heuristics used by reports and predictions.
// Rules are evaluated top to bottom and the first match wins.
type ClassificationRules struct {
	CostGroups []KeywordRule `toml:"cost_groups"`
	Checkups   []CheckupRule `toml:"checkups"`
}

// DefaultClassificationRules returns the built-in rule set.
func DefaultClassificationRules() ClassificationRules {
	return ClassificationRules{
		CostGroups: []KeywordRule{
			{
				Label: CostGroupStreaming,
				Keywords: []string{
					"netflix", "hulu", "disney", "spotify", "hbo", "paramount", "peacock",
					"apple tv", "apple music", "youtube", "prime video", "audible", "crunchyroll",
					"sling", "fubo", "streaming",
				},
			},
			{
				Label: CostGroupUtilities,
				Keywords: []string{
					"electric", "power", "energy", "water", "sewer", "gas", "trash", "waste",
					"internet", "broadband", "comcast", "xfinity", "verizon", "at&t", "spectrum",
					"t-mobile", "phone", "utility", "utilities",
				},
			},
		},
		Checkups: []CheckupRule{
			{
				Type:              CheckupDental,
				Keywords:          []string{"dental", "dentist", "teeth", "tooth", "orthodont", "hygienist", "cleaning"},
				StaleAfterMonths:  6,
				UseMedicalRecords: true,
			},
			{
				Type:             CheckupPhysical,
				Keywords:         []string{"physical", "annual", "checkup", "check-up", "check up", "wellness", "well visit"},
				StaleAfterMonths: 10,
			},
		},
	}
}

// CheckupRule returns the rule for a checkup type, if configured.
func (r ClassificationRules) CheckupRule(checkupType string) (CheckupRule, bool) {
	for _, rule := range r.Checkups {
		if rule.Type == checkupType {
			return rule, true
		}
	}
	return CheckupRule{}, false
}

// KeywordMatcher compiles keywords into a single case-insensitive matcher.
// Keywords match at a word start so "orthodont" also matches "orthodontist".
func KeywordMatcher(keywords []string) func(string) bool {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(k)))
	}
	if len(quoted) == 0 {
		return func(string) bool { return false }
	}
	re := regexp.MustCompile(`(?i)(^|[^\pL\pN])(` + strings.Join(quoted, "|") + `)`)
	return re.MatchString
}
