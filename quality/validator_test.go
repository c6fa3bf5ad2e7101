package quality

import (
	"strings"
	"testing"

	"github.com/voicebubble/voicebubble/prompt"
)

func newTestValidator() *Validator {
	return NewValidator(DefaultPolicy(), nil)
}

func TestValidateDeterministic(t *testing.T) {
	v := newTestValidator()
	output := "Hi Sarah, the report is ready for review. Best, Tom"

	first := v.Validate(output, prompt.CategoryEmail, "report ready tell sarah")
	second := v.Validate(output, prompt.CategoryEmail, "report ready tell sarah")

	if first.Score != second.Score || first.Valid != second.Valid {
		t.Errorf("validation not deterministic: %+v vs %+v", first, second)
	}
	if len(first.Issues) != len(second.Issues) {
		t.Errorf("issue lists differ: %v vs %v", first.Issues, second.Issues)
	}
}

func TestValidateEmailRules(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		output    string
		wantValid bool
		wantIssue string
	}{
		{
			name:      "good email",
			output:    "Hi Sarah,\n\nThe report is ready for your review. Can we sync tomorrow morning?\n\nBest,\nTom",
			wantValid: true,
		},
		{
			name:      "missing greeting and signoff",
			output:    "The report is ready for your review and the numbers look solid overall today.",
			wantValid: true, // two failed checks = -30, still above threshold
			wantIssue: "Failed check: hasGreeting",
		},
		{
			name:      "too short",
			output:    "Okay then.",
			wantValid: false,
			wantIssue: "Output too short",
		},
		{
			name:      "forbidden phrase",
			output:    "Hi Sarah, as an AI I cannot send emails, but here is a draft for you to use today. Best, Tom",
			wantValid: false,
			wantIssue: "Contains forbidden phrase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.output, prompt.CategoryEmail, "original input")
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (score %d, issues %v)", res.Valid, tt.wantValid, res.Score, res.Issues)
			}
			if tt.wantIssue != "" && !hasIssueContaining(res.Issues, tt.wantIssue) {
				t.Errorf("expected issue containing %q, got %v", tt.wantIssue, res.Issues)
			}
		})
	}
}

func TestValidateUtilityRequiresTransformation(t *testing.T) {
	v := newTestValidator()
	input := "this text was not changed at all"

	res := v.Validate(input, prompt.CategoryUtility, input)
	if !hasIssueContaining(res.Issues, "Failed check: transformed") {
		t.Errorf("identical output should fail the transformed check, got %v", res.Issues)
	}

	res = v.Validate("Shorter now.", prompt.CategoryUtility, input)
	if hasIssueContaining(res.Issues, "Failed check: transformed") {
		t.Errorf("changed output should pass the transformed check, got %v", res.Issues)
	}
}

func TestValidateSlopPenalty(t *testing.T) {
	v := newTestValidator()

	clean := v.Validate("The quarterly numbers came in ahead of plan, so we are moving the launch up two weeks.", prompt.CategoryDefault, "")
	sloppy := v.Validate("Let us delve into the rich tapestry of quarterly numbers that came in ahead of plan this time.", prompt.CategoryDefault, "")

	if sloppy.Score >= clean.Score {
		t.Errorf("slop should lower the score: sloppy=%d clean=%d", sloppy.Score, clean.Score)
	}
	if !hasIssueContaining(sloppy.Issues, "AI slop detected") {
		t.Errorf("expected slop issue, got %v", sloppy.Issues)
	}
}

func TestValidateOutcomesShape(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name       string
		output     string
		wantParse  bool
		wantValid  bool
	}{
		{
			name:      "valid payload",
			output:    `{"outcomes":[{"type":"task","text":"Book flights"},{"type":"message","text":"Email John"}]}`,
			wantValid: true,
		},
		{
			name:      "not json",
			output:    "I couldn't find any outcomes in this text.",
			wantParse: true,
		},
		{
			name:      "empty outcomes",
			output:    `{"outcomes":[]}`,
			wantParse: true,
		},
		{
			name:      "unknown type is non-fatal",
			output:    `{"outcomes":[{"type":"reminder","text":"Book flights for the conference next month"}]}`,
			wantValid: true, // one check penalty, still above threshold
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.output, prompt.CategoryOutcomes, "")
			if res.ParseFailed != tt.wantParse {
				t.Errorf("ParseFailed = %v, want %v (issues %v)", res.ParseFailed, tt.wantParse, res.Issues)
			}
			if tt.wantParse && res.Score != 0 {
				t.Errorf("parse failure must pin score to 0, got %d", res.Score)
			}
			if !tt.wantParse && res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (score %d)", res.Valid, tt.wantValid, res.Score)
			}
		})
	}
}

func TestValidateUnstuckShape(t *testing.T) {
	v := newTestValidator()

	good := v.Validate(`{"insight":"You are waiting for motivation that only follows action.","action":"Set a 5-minute timer and start."}`, prompt.CategoryUnstuck, "")
	if !good.Valid {
		t.Errorf("well-formed insight/action should be valid, got score %d issues %v", good.Score, good.Issues)
	}

	missing := v.Validate(`{"insight":"Something is off."}`, prompt.CategoryUnstuck, "")
	if !missing.ParseFailed || missing.Score != 0 {
		t.Errorf("missing action must be fatal: %+v", missing)
	}
}

func TestValidateUnknownCategoryFallsBack(t *testing.T) {
	v := newTestValidator()
	res := v.Validate("A perfectly reasonable piece of rewritten text for testing.", prompt.Category("mystery"), "")
	if res.Category != prompt.CategoryDefault {
		t.Errorf("unknown category should fall back to default, got %s", res.Category)
	}
}

func TestValidateScoreFloor(t *testing.T) {
	v := newTestValidator()
	// Short, forbidden, slop-ridden output stacks enough penalties to go negative.
	res := v.Validate("As an AI I cannot delve.", prompt.CategoryCreative, "")
	if res.Score < 0 {
		t.Errorf("score must floor at 0, got %d", res.Score)
	}
	if res.Valid {
		t.Error("heavily penalized output must not be valid")
	}
}

func TestValidateReplyOverExplain(t *testing.T) {
	v := newTestValidator()

	// Four sentences is already over-explaining for a quick reply.
	long := v.Validate("Sounds good. I will be there. See you at noon. Thanks again.", prompt.CategoryReply, "")
	if !hasIssueContaining(long.Issues, "Failed check: notOverExplain") {
		t.Errorf("four-sentence reply should fail notOverExplain, got %v", long.Issues)
	}

	short := v.Validate("Sounds good. See you at noon.", prompt.CategoryReply, "")
	if hasIssueContaining(short.Issues, "Failed check: notOverExplain") {
		t.Errorf("two-sentence reply should pass notOverExplain, got %v", short.Issues)
	}
}

func hasIssueContaining(issues []string, want string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, want) {
			return true
		}
	}
	return false
}
