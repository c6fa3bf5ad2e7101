package extract

import (
	"regexp"
	"strings"
)

var (
	vagueOutcomeRe = regexp.MustCompile(`(?i)^(do|handle|deal with|look into|think about|work on) (it|this|that|things|stuff)\b`)

	therapySpeakRe = regexp.MustCompile(`(?i)\b(it sounds like|it seems like|you might be feeling|have you considered|journey|self-care)\b`)
	bigActionRe    = regexp.MustCompile(`(?i)\b(make a plan|create a (detailed|comprehensive)|figure out your|redesign|overhaul|research all)\b`)
	vagueActionRe  = regexp.MustCompile(`(?i)\b(try (harder|to be)|believe in yourself|stay positive|be more|think about what)\b`)
)

// scoreOutcomes rates one extraction candidate. Starts at 100, deducts for
// structural problems. Deterministic for a given candidate.
func scoreOutcomes(outcomes []Outcome) (int, []string) {
	score := 100
	var issues []string

	if len(outcomes) == 0 {
		score -= 50
		issues = append(issues, "no outcomes extracted")
		return score, issues
	}

	for _, o := range outcomes {
		text := strings.TrimSpace(o.Text)
		if len(text) < 5 {
			score -= 10
			issues = append(issues, "outcome text too short: "+text)
		}
		if len(text) > 200 {
			score -= 5
			issues = append(issues, "outcome text too long")
		}
		if vagueOutcomeRe.MatchString(text) {
			score -= 5
			issues = append(issues, "vague outcome: "+text)
		}
	}

	if len(outcomes) > 3 {
		types := map[OutcomeType]bool{}
		for _, o := range outcomes {
			types[o.Type] = true
		}
		if len(types) == 1 {
			score -= 10
			issues = append(issues, "no type diversity across outcomes")
		}
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

var isoDatetimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)

// scoreActions rates a smart-action candidate. Structural validity (required
// fields, calendar datetime presence) is enforced by normalizeActions before
// scoring; this rates what survived.
func scoreActions(actions []Action) (int, []string) {
	score := 100
	var issues []string

	if len(actions) == 0 {
		score -= 50
		issues = append(issues, "no valid actions extracted")
		return score, issues
	}

	for _, a := range actions {
		if len(a.Title) > 100 {
			score -= 5
			issues = append(issues, "action title too long: "+a.Title)
		}
		if a.Type == ActionCalendar && !isoDatetimeRe.MatchString(a.Datetime) {
			score -= 10
			issues = append(issues, "calendar datetime not in ISO format: "+a.Datetime)
		}
	}

	if len(actions) > 8 {
		score -= 10
		issues = append(issues, "too many actions for one input")
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

// scoreInsightAction rates an insight+action candidate.
func scoreInsightAction(ia InsightAction) (int, []string) {
	score := 100
	var issues []string

	insight := strings.TrimSpace(ia.Insight)
	action := strings.TrimSpace(ia.Action)

	switch {
	case len(insight) < 20:
		score -= 20
		issues = append(issues, "insight too short to be specific")
	case len(insight) > 300:
		score -= 10
		issues = append(issues, "insight too long")
	}
	if therapySpeakRe.MatchString(insight) {
		score -= 15
		issues = append(issues, "insight uses generic therapy language")
	}

	switch {
	case len(action) < 15:
		score -= 20
		issues = append(issues, "action too short to be actionable")
	case len(action) > 200:
		score -= 15
		issues = append(issues, "action too long for a tiny step")
	}
	if bigActionRe.MatchString(action) {
		score -= 20
		issues = append(issues, "action is too big a step")
	}
	if vagueActionRe.MatchString(action) {
		score -= 15
		issues = append(issues, "action is vague")
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}
