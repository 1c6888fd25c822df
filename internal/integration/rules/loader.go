// Package rules loads classification rule overrides from TOML.
package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/homeledger/backend/internal/domain/valueobject"
)

// Load reads classification rules from path. An empty path, or a file that does not
// exist, yields the built-in defaults. Each section present in the file replaces the
// matching default section; absent sections keep their defaults.
func Load(path string) (valueobject.ClassificationRules, error) {
	rules := valueobject.DefaultClassificationRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rules, nil
		}
		return rules, fmt.Errorf("reading rules file: %w", err)
	}

	return Parse(string(data))
}

// Parse decodes a TOML rules document over the defaults.
func Parse(data string) (valueobject.ClassificationRules, error) {
	rules := valueobject.DefaultClassificationRules()

	var override valueobject.ClassificationRules
	md, err := toml.Decode(data, &override)
	if err != nil {
		return rules, fmt.Errorf("parsing rules file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return rules, fmt.Errorf("parsing rules file: unknown key %q", undecoded[0].String())
	}

	if md.IsDefined("cost_groups") {
		if err := validateCostGroups(override.CostGroups); err != nil {
			return rules, err
		}
		rules.CostGroups = normalizeCostGroups(override.CostGroups)
	}
	if md.IsDefined("checkups") {
		if err := validateCheckups(override.Checkups); err != nil {
			return rules, err
		}
		rules.Checkups = normalizeCheckups(override.Checkups)
	}

	return rules, nil
}

func validateCostGroups(groups []valueobject.KeywordRule) error {
	for i, group := range groups {
		if strings.TrimSpace(group.Label) == "" {
			return fmt.Errorf("cost_groups[%d]: label is required", i)
		}
		if len(group.Keywords) == 0 {
			return fmt.Errorf("cost_groups[%d]: at least one keyword is required", i)
		}
	}
	return nil
}

func validateCheckups(checkups []valueobject.CheckupRule) error {
	seen := make(map[string]bool, len(checkups))
	for i, checkup := range checkups {
		kind := strings.TrimSpace(checkup.Type)
		switch {
		case kind == "":
			return fmt.Errorf("checkups[%d]: type is required", i)
		case seen[kind]:
			return fmt.Errorf("checkups[%d]: duplicate type %q", i, kind)
		case len(checkup.Keywords) == 0:
			return fmt.Errorf("checkups[%d]: at least one keyword is required", i)
		case checkup.StaleAfterMonths <= 0:
			return fmt.Errorf("checkups[%d]: stale_after_months must be positive", i)
		}
		seen[kind] = true
	}
	return nil
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func normalizeCostGroups(groups []valueobject.KeywordRule) []valueobject.KeywordRule {
	out := make([]valueobject.KeywordRule, len(groups))
	for i, group := range groups {
		out[i] = valueobject.KeywordRule{
			Label:    strings.TrimSpace(group.Label),
			Keywords: normalizeKeywords(group.Keywords),
		}
	}
	return out
}

func normalizeCheckups(checkups []valueobject.CheckupRule) []valueobject.CheckupRule {
	out := make([]valueobject.CheckupRule, len(checkups))
	for i, checkup := range checkups {
		checkup.Type = strings.TrimSpace(checkup.Type)
		checkup.Keywords = normalizeKeywords(checkup.Keywords)
		out[i] = checkup
	}
	return out
}
