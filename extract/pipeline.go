package extract

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/log"
	"github.com/voicebubble/voicebubble/utils"
)

const (
	outcomesBaseTemperature = 0.4
	unstuckBaseTemperature  = 0.6
	actionsBaseTemperature  = 0.1
	temperatureStep         = 0.1

	outcomesMaxTokens = 900
	unstuckMaxTokens  = 400
	actionsMaxTokens  = 2000
)

// Minimum input lengths (in characters, after trimming). Shorter input is a
// request error: there is nothing worth spending backend attempts on.
const (
	MinOutcomesInput = 5
	MinUnstuckInput  = 10
	MinActionsInput  = 5
)

// ErrExtractionFailed means no attempt ever produced a parseable candidate.
var ErrExtractionFailed = errors.New("extraction failed: no parseable output")

// Extractor runs the retry loop for structured extractions. Attempts are
// strictly sequential, each retry slightly hotter than the last.
type Extractor struct {
	gen         llm.Generator
	maxAttempts int
	acceptScore int
}

func NewExtractor(gen llm.Generator, maxAttempts, acceptScore int) *Extractor {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Extractor{gen: gen, maxAttempts: maxAttempts, acceptScore: acceptScore}
}

// ExtractOutcomes pulls atomic outcomes from raw voice input. Returns the
// best-scoring candidate across attempts; ErrExtractionFailed only when every
// attempt failed to parse.
func (e *Extractor) ExtractOutcomes(ctx context.Context, text, language string) (*OutcomesResult, error) {
	messages := buildMessages(outcomesSystemPrompt, outcomesExamples, text, language)

	var best *OutcomesResult
	attempts := 0

	for i := 0; i < e.maxAttempts; i++ {
		attempts++
		temp := outcomesBaseTemperature + temperatureStep*float32(i)

		content, err := e.gen.Complete(ctx, llm.Request{
			Messages:    messages,
			Temperature: temp,
			MaxTokens:   outcomesMaxTokens,
			JSONMode:    true,
		})
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempts).Msg("outcomes generation failed")
			continue
		}

		var payload struct {
			Outcomes []Outcome `json:"outcomes"`
		}
		if err := utils.UnmarshalLenient(content, &payload); err != nil {
			log.Warn().Err(err).Int("attempt", attempts).Msg("outcomes parse failed")
			continue
		}

		outcomes := normalizeOutcomes(payload.Outcomes)
		score, issues := scoreOutcomes(outcomes)
		if len(issues) > 0 {
			log.Debug().Int("attempt", attempts).Int("score", score).Strs("issues", issues).Msg("outcomes candidate scored")
		}

		if best == nil || score > best.Score {
			best = &OutcomesResult{Outcomes: outcomes, Score: score}
		}
		if score >= e.acceptScore {
			break
		}
	}

	if best == nil {
		return nil, ErrExtractionFailed
	}
	best.Attempts = attempts
	best.Status = StatusAccepted
	if best.Score < e.acceptScore {
		best.Status = StatusAcceptedDegraded
	}
	return best, nil
}

// ExtractActions classifies voice input into typed, ready-to-use actions:
// calendar events, emails, todos, notes, messages. Runs cold (low base
// temperature) because classification wants consistency, not variety.
func (e *Extractor) ExtractActions(ctx context.Context, text, language string) (*ActionsResult, error) {
	messages := buildMessages(actionsSystemPrompt, nil, text, language)

	var best *ActionsResult
	attempts := 0

	for i := 0; i < e.maxAttempts; i++ {
		attempts++
		temp := actionsBaseTemperature + temperatureStep*float32(i)

		content, err := e.gen.Complete(ctx, llm.Request{
			Messages:    messages,
			Temperature: temp,
			MaxTokens:   actionsMaxTokens,
			JSONMode:    true,
		})
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempts).Msg("actions generation failed")
			continue
		}

		var payload struct {
			Actions []Action `json:"actions"`
		}
		if err := utils.UnmarshalLenient(content, &payload); err != nil {
			log.Warn().Err(err).Int("attempt", attempts).Msg("actions parse failed")
			continue
		}

		actions := normalizeActions(payload.Actions)
		score, issues := scoreActions(actions)
		if len(issues) > 0 {
			log.Debug().Int("attempt", attempts).Int("score", score).Strs("issues", issues).Msg("actions candidate scored")
		}

		if best == nil || score > best.Score {
			best = &ActionsResult{Actions: actions, Score: score}
		}
		if score >= e.acceptScore {
			break
		}
	}

	if best == nil {
		return nil, ErrExtractionFailed
	}
	best.Attempts = attempts
	best.Status = StatusAccepted
	if best.Score < e.acceptScore {
		best.Status = StatusAcceptedDegraded
	}
	return best, nil
}

// ExtractInsightAction produces one insight and one tiny action for someone
// who is stuck.
func (e *Extractor) ExtractInsightAction(ctx context.Context, text, language string) (*InsightActionResult, error) {
	messages := buildMessages(unstuckSystemPrompt, unstuckExamples, text, language)

	var best *InsightActionResult
	attempts := 0

	for i := 0; i < e.maxAttempts; i++ {
		attempts++
		temp := unstuckBaseTemperature + temperatureStep*float32(i)

		content, err := e.gen.Complete(ctx, llm.Request{
			Messages:    messages,
			Temperature: temp,
			MaxTokens:   unstuckMaxTokens,
			JSONMode:    true,
		})
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempts).Msg("unstuck generation failed")
			continue
		}

		var ia InsightAction
		if err := utils.UnmarshalLenient(content, &ia); err != nil {
			log.Warn().Err(err).Int("attempt", attempts).Msg("unstuck parse failed")
			continue
		}
		ia.Insight = normalizeLine(ia.Insight)
		ia.Action = normalizeLine(ia.Action)
		if ia.Insight == "" || ia.Action == "" {
			log.Warn().Int("attempt", attempts).Msg("unstuck candidate missing insight or action")
			continue
		}

		score, issues := scoreInsightAction(ia)
		if len(issues) > 0 {
			log.Debug().Int("attempt", attempts).Int("score", score).Strs("issues", issues).Msg("unstuck candidate scored")
		}

		if best == nil || score > best.Score {
			best = &InsightActionResult{Insight: ia.Insight, Action: ia.Action, Score: score}
		}
		if score >= e.acceptScore {
			break
		}
	}

	if best == nil {
		return nil, ErrExtractionFailed
	}
	best.Attempts = attempts
	best.Status = StatusAccepted
	if best.Score < e.acceptScore {
		best.Status = StatusAcceptedDegraded
	}
	return best, nil
}

var leadingMarkerRe = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeOutcomes drops items with unknown types or empty text and strips
// list markers the model sometimes prepends despite the contract.
func normalizeOutcomes(in []Outcome) []Outcome {
	out := make([]Outcome, 0, len(in))
	for _, o := range in {
		if !o.Type.Valid() {
			continue
		}
		text := leadingMarkerRe.ReplaceAllString(o.Text, "")
		text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
		if text == "" {
			continue
		}
		out = append(out, Outcome{Type: o.Type, Text: text})
	}
	return out
}

// normalizeActions drops actions that break the contract: unknown type,
// missing title or formatted text, calendar without a datetime, email without
// a recipient or body.
func normalizeActions(in []Action) []Action {
	out := make([]Action, 0, len(in))
	for _, a := range in {
		a.Title = strings.TrimSpace(a.Title)
		a.FormattedText = strings.TrimSpace(a.FormattedText)
		if !a.Type.Valid() || a.Title == "" || a.FormattedText == "" {
			log.Debug().Str("type", string(a.Type)).Str("title", a.Title).Msg("dropping action missing required fields")
			continue
		}
		if a.Type == ActionCalendar && strings.TrimSpace(a.Datetime) == "" {
			log.Debug().Str("title", a.Title).Msg("dropping calendar action without datetime")
			continue
		}
		if a.Type == ActionEmail && strings.TrimSpace(a.Body) == "" && strings.TrimSpace(a.Recipient) == "" {
			log.Debug().Str("title", a.Title).Msg("dropping email action without recipient or body")
			continue
		}
		out = append(out, a)
	}
	return out
}

// normalizeLine strips wrapping quotes and markdown bold from a single-line
// field.
func normalizeLine(s string) string {
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}
