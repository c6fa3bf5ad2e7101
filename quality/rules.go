package quality

import (
	"regexp"
	"strings"

	"github.com/voicebubble/voicebubble/prompt"
)

// Policy holds the score weights and acceptance threshold. These are tunable
// product constants, not derived values; keep them in one place.
type Policy struct {
	AcceptScore      int // minimum score considered valid
	TooShortPenalty  int
	TooLongPenalty   int
	ForbiddenPenalty int // per forbidden-phrase hit
	CheckPenalty     int // per failed named check
	SlopPenalty      int // per universal slop-pattern hit
}

// DefaultPolicy matches current product tuning.
func DefaultPolicy() Policy {
	return Policy{
		AcceptScore:      60,
		TooShortPenalty:  30,
		TooLongPenalty:   10,
		ForbiddenPenalty: 25,
		CheckPenalty:     15,
		SlopPenalty:      20,
	}
}

// namedCheck is a boolean predicate over the output, optionally comparing
// against the original input.
type namedCheck struct {
	name string
	test func(output, original string) bool
}

// ruleSet is the per-category quality contract.
type ruleSet struct {
	minLength      int
	maxLength      int
	mustNotContain []string // case-insensitive substrings
	checks         []namedCheck
}

var (
	greetingRe    = regexp.MustCompile(`(?i)^(hi|hello|hey|dear|good morning|good afternoon)`)
	signoffRe     = regexp.MustCompile(`(?im)(best|regards|thanks|cheers|sincerely|thank you)[,.]?\s*(\[|$)`)
	tooFormalRe   = regexp.MustCompile(`(?i)(pursuant to|aforementioned|hereby|heretofore)`)
	boringRe      = regexp.MustCompile(`(?i)(it is important to|we should all|in today's world)`)
	genericRe     = regexp.MustCompile(`(?i)(embrace the journey|live your best life|be the change)`)
	listMarkerRe  = regexp.MustCompile(`(?m)^[\-•\*\d]`)
	structureRe   = regexp.MustCompile(`(?m)[\-•☐\*]|^\d+\.`)
	headingRe     = regexp.MustCompile(`(?m)##|:$`)
)

// rulesByCategory maps each validator category to its rule set. Extraction
// categories (outcomes, unstuck) are handled structurally in the validator;
// their entries here carry only length bounds.
var rulesByCategory = map[prompt.Category]ruleSet{

	prompt.CategoryEmail: {
		minLength:      50,
		maxLength:      800,
		mustNotContain: []string{"here is your", "as an ai", "i cannot", "i can't"},
		checks: []namedCheck{
			{"hasGreeting", func(out, _ string) bool {
				return greetingRe.MatchString(strings.TrimSpace(out))
			}},
			{"hasSignoff", func(out, _ string) bool {
				return signoffRe.MatchString(out)
			}},
			{"notTooFormal", func(out, _ string) bool {
				return !tooFormalRe.MatchString(out)
			}},
		},
	},

	prompt.CategorySocial: {
		minLength:      20,
		maxLength:      2000,
		mustNotContain: []string{"as an ai", "i cannot", "i can't", "here is your"},
		checks: []namedCheck{
			// First line is punchy.
			{"hasHook", func(out, _ string) bool {
				first, _, _ := strings.Cut(out, "\n")
				return len(first) < 100
			}},
			{"notBoring", func(out, _ string) bool {
				return !boringRe.MatchString(out)
			}},
			{"notGeneric", func(out, _ string) bool {
				return !genericRe.MatchString(out)
			}},
		},
	},

	prompt.CategoryReply: {
		minLength:      5,
		maxLength:      300,
		mustNotContain: []string{"as an ai", "i cannot"},
		checks: []namedCheck{
			{"isShort", func(out, _ string) bool {
				return len(strings.Fields(out)) < 50
			}},
			{"notOverExplain", func(out, _ string) bool {
				return strings.Count(out, ".") < 4
			}},
		},
	},

	prompt.CategoryCreative: {
		minLength:      100,
		maxLength:      3000,
		mustNotContain: []string{"as an ai", "i cannot", "here is your", "here's a"},
		checks: []namedCheck{
			{"hasDepth", func(out, _ string) bool {
				return len(out) > 150
			}},
			// Creative output shouldn't read like a list.
			{"notList", func(out, _ string) bool {
				return len(listMarkerRe.FindAllString(out, -1)) < 3
			}},
		},
	},

	prompt.CategoryUtility: {
		minLength:      10,
		maxLength:      2000,
		mustNotContain: []string{"as an ai", "i cannot", "here is your"},
		checks: []namedCheck{
			{"transformed", func(out, original string) bool {
				return original == "" || !strings.EqualFold(out, original)
			}},
		},
	},

	prompt.CategoryStructured: {
		minLength:      20,
		maxLength:      1500,
		mustNotContain: []string{"as an ai", "i cannot"},
		checks: []namedCheck{
			{"hasStructure", func(out, _ string) bool {
				return structureRe.MatchString(out) || headingRe.MatchString(out)
			}},
		},
	},

	prompt.CategoryOutcomes: {
		maxLength: 5000,
	},

	prompt.CategoryUnstuck: {
		maxLength: 2000,
	},

	prompt.CategoryDefault: {
		minLength:      20,
		maxLength:      3000,
		mustNotContain: []string{"as an ai", "i cannot", "i can't", "here is your rewritten", "here's your"},
	},
}
