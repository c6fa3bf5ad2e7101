package quality

import (
	"context"
	"fmt"
	"strings"

	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/log"
	"github.com/voicebubble/voicebubble/prompt"
)

// correctionSystemPrompt frames the single self-correction attempt.
const correctionSystemPrompt = `You are a QUALITY CONTROL editor.

You've been given an AI output that has quality issues. Your job is to FIX IT.

RULES:
1. Keep the same intent and meaning
2. Fix ONLY the issues mentioned
3. Output ONLY the corrected text — no explanations
4. Never start with "Here is" or "Sure" or "Certainly"
5. Never end with "Let me know if you need anything"
6. Never use AI slop words: delve, tapestry, leverage, synergy, evergreen
7. Sound HUMAN, not AI

Just output the fixed version. Nothing else.`

// Sampling for the correction call; deliberately cooler than most presets.
const (
	correctionTemperature float32 = 0.5
	correctionMaxTokens           = 1000
)

// ImproveResult is the outcome of the validate-and-improve pass.
type ImproveResult struct {
	FinalOutput string
	WasImproved bool
	Validation  Result
}

// Improver runs the bounded self-correction loop: validate, and when the
// output misses the bar, make one correction attempt keyed on the issue list.
type Improver struct {
	gen       llm.Generator
	validator *Validator
}

// NewImprover wires an improver to a generator and validator.
func NewImprover(gen llm.Generator, validator *Validator) *Improver {
	return &Improver{gen: gen, validator: validator}
}

// Validator exposes the underlying validator for callers that need a plain
// validation pass.
func (im *Improver) Validator() *Validator {
	return im.validator
}

// ValidateAndImprove validates output and, when invalid, issues a single
// correction call referencing the original input, the flawed output, and the
// concrete issue list. The corrected candidate replaces the original only if
// its score is strictly higher; a correction that doesn't improve anything is
// discarded, never surfaced.
func (im *Improver) ValidateAndImprove(ctx context.Context, output, presetID, originalInput, language string) ImproveResult {
	category := prompt.Resolve(presetID).Category
	validation := im.validator.Validate(output, category, originalInput)

	if validation.Valid {
		return ImproveResult{FinalOutput: output, Validation: validation}
	}

	corrected, err := im.correct(ctx, output, originalInput, validation.Issues, language)
	if err != nil {
		// Correction is best-effort; the original output always exists.
		log.Warn().Err(err).Str("presetId", presetID).Msg("correction attempt failed")
		return ImproveResult{FinalOutput: output, Validation: validation}
	}

	correctedValidation := im.validator.Validate(corrected, category, originalInput)
	if correctedValidation.Score > validation.Score {
		log.Info().
			Int("before", validation.Score).
			Int("after", correctedValidation.Score).
			Str("presetId", presetID).
			Msg("output improved by correction")
		return ImproveResult{FinalOutput: corrected, WasImproved: true, Validation: correctedValidation}
	}

	return ImproveResult{FinalOutput: output, Validation: validation}
}

func (im *Improver) correct(ctx context.Context, output, originalInput string, issues []string, language string) (string, error) {
	system := correctionSystemPrompt
	if name := prompt.LanguageName(language); name != "" {
		system += fmt.Sprintf("\n\nCRITICAL: Write your corrected output ENTIRELY in %s. Every word must be in %s.", name, name)
	}

	user := fmt.Sprintf("ORIGINAL USER INPUT:\n%s\n\nAI OUTPUT WITH ISSUES:\n%s\n\nISSUES TO FIX:\n- %s\n\nProvide the corrected output only:",
		originalInput, output, strings.Join(issues, "\n- "))

	corrected, err := im.gen.Complete(ctx, llm.Request{
		Messages: []prompt.Message{
			{Role: prompt.RoleSystem, Content: system},
			{Role: prompt.RoleUser, Content: user},
		},
		Temperature: correctionTemperature,
		MaxTokens:   correctionMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(corrected), nil
}
