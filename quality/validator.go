package quality

import (
	"fmt"
	"strings"

	"github.com/voicebubble/voicebubble/prompt"
	"github.com/voicebubble/voicebubble/utils"
)

// Result is the outcome of one validation pass. It is a value that drives
// retry/accept decisions, never an error.
type Result struct {
	Score       int
	Issues      []string
	Valid       bool
	Category    prompt.Category
	ParseFailed bool // extraction categories only: output was not valid JSON
}

// Validator scores output against category rules under a policy.
type Validator struct {
	policy   Policy
	patterns *PatternSet
}

// NewValidator builds a validator. A nil pattern set falls back to the
// compiled-in slop defaults.
func NewValidator(policy Policy, patterns *PatternSet) *Validator {
	if patterns == nil {
		patterns = NewPatternSet()
	}
	return &Validator{policy: policy, patterns: patterns}
}

// Policy returns the active scoring policy.
func (v *Validator) Policy() Policy {
	return v.policy
}

// Validate scores output against the rules for the given category. Scoring is
// deterministic: identical inputs always produce identical results. For the
// extraction categories a JSON parse failure is fatal: remaining checks are
// skipped and the score is pinned to zero.
func (v *Validator) Validate(output string, category prompt.Category, originalInput string) Result {
	rules, ok := rulesByCategory[category]
	if !ok {
		rules = rulesByCategory[prompt.CategoryDefault]
		category = prompt.CategoryDefault
	}

	res := Result{Score: 100, Category: category}

	// Structured contracts are checked first: nothing else matters if the
	// payload doesn't parse.
	switch category {
	case prompt.CategoryOutcomes:
		if issue, fatal := checkOutcomesShape(output); issue != "" {
			res.Issues = append(res.Issues, issue)
			if fatal {
				res.Score = 0
				res.ParseFailed = true
				return res
			}
			res.Score -= v.policy.CheckPenalty
		}
	case prompt.CategoryUnstuck:
		if issue, fatal := checkUnstuckShape(output); issue != "" {
			res.Issues = append(res.Issues, issue)
			if fatal {
				res.Score = 0
				res.ParseFailed = true
				return res
			}
			res.Score -= v.policy.CheckPenalty
		}
	}

	// Length bounds. Too short is worse than too long.
	if len(output) < rules.minLength {
		res.Issues = append(res.Issues, fmt.Sprintf("Output too short (%d < %d)", len(output), rules.minLength))
		res.Score -= v.policy.TooShortPenalty
	}
	if rules.maxLength > 0 && len(output) > rules.maxLength {
		res.Issues = append(res.Issues, fmt.Sprintf("Output too long (%d > %d)", len(output), rules.maxLength))
		res.Score -= v.policy.TooLongPenalty
	}

	// Forbidden substrings.
	lower := strings.ToLower(output)
	for _, phrase := range rules.mustNotContain {
		if strings.Contains(lower, phrase) {
			res.Issues = append(res.Issues, fmt.Sprintf("Contains forbidden phrase: %q", phrase))
			res.Score -= v.policy.ForbiddenPenalty
		}
	}

	// Category-specific named checks.
	for _, check := range rules.checks {
		if !check.test(output, originalInput) {
			res.Issues = append(res.Issues, "Failed check: "+check.name)
			res.Score -= v.policy.CheckPenalty
		}
	}

	// Universal slop pass, regardless of category.
	for _, pattern := range v.patterns.Match(output) {
		res.Issues = append(res.Issues, "AI slop detected: "+pattern)
		res.Score -= v.policy.SlopPenalty
	}

	if res.Score < 0 {
		res.Score = 0
	}
	res.Valid = res.Score >= v.policy.AcceptScore
	return res
}

type outcomesPayload struct {
	Outcomes []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"outcomes"`
}

var validOutcomeTypes = map[string]bool{
	"message": true,
	"task":    true,
	"idea":    true,
	"content": true,
	"note":    true,
}

// checkOutcomesShape validates the structured outcomes contract.
// Returns (issue, fatal); fatal means the output is unusable.
func checkOutcomesShape(output string) (string, bool) {
	var parsed outcomesPayload
	if err := utils.UnmarshalLenient(output, &parsed); err != nil {
		return "Output is not valid outcomes JSON", true
	}
	if len(parsed.Outcomes) == 0 {
		return "No outcomes extracted", true
	}
	for _, o := range parsed.Outcomes {
		if !validOutcomeTypes[o.Type] {
			return fmt.Sprintf("Invalid outcome type: %q", o.Type), false
		}
		if strings.TrimSpace(o.Text) == "" {
			return "Outcome with empty text", false
		}
	}
	return "", false
}

type unstuckPayload struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
}

// checkUnstuckShape validates the insight+action contract.
func checkUnstuckShape(output string) (string, bool) {
	var parsed unstuckPayload
	if err := utils.UnmarshalLenient(output, &parsed); err != nil {
		return "Output is not valid insight/action JSON", true
	}
	if strings.TrimSpace(parsed.Insight) == "" || strings.TrimSpace(parsed.Action) == "" {
		return "Missing insight or action field", true
	}
	return "", false
}
