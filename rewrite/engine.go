package rewrite

import (
	"context"
	"fmt"
	"strings"

	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/log"
	"github.com/voicebubble/voicebubble/prompt"
	"github.com/voicebubble/voicebubble/quality"
)

// RequestError is a request-shape problem, caught before any model call.
// Distinct from llm.GenerationError so callers can map it to a 400.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// IsRequestError reports whether err is a RequestError
func IsRequestError(err error) bool {
	_, ok := err.(*RequestError)
	return ok
}

// Request is one rewrite call
type Request struct {
	Text     string   `json:"text"`
	PresetID string   `json:"presetId"`
	Language string   `json:"language,omitempty"`
	Context  []string `json:"context,omitempty"`
}

// Status is the terminal state of a rewrite. Sub-threshold output is
// surfaced as degraded, never hidden.
type Status string

const (
	StatusAccepted         Status = "accepted"
	StatusAcceptedDegraded Status = "accepted_degraded"
)

// Result is a finished rewrite
type Result struct {
	Text         string `json:"text"`
	PresetID     string `json:"presetId"`
	WasImproved  bool   `json:"wasImproved"`
	QualityScore int    `json:"qualityScore"`
	Cached       bool   `json:"cached"`
	Status       Status `json:"status"`
}

// Cache is read-through storage for rewrite results. Nil-safe at the engine
// level so tests and cache-less deployments skip it entirely.
type Cache interface {
	Get(text, presetID, language string) (output string, score int, ok bool, err error)
	Set(text, presetID, language, output string, score int) error
}

// Engine runs the full rewrite pipeline: compose, generate, sanitize,
// validate, self-correct.
type Engine struct {
	gen      llm.Generator
	improver *quality.Improver
	cache    Cache
}

func NewEngine(gen llm.Generator, improver *quality.Improver, cache Cache) *Engine {
	return &Engine{gen: gen, improver: improver, cache: cache}
}

func (e *Engine) validate(req Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return &RequestError{Field: "text", Reason: "must not be empty"}
	}
	return nil
}

// Rewrite transforms text through the preset's pipeline. Unknown presets fall
// back to the default rather than failing.
func (e *Engine) Rewrite(ctx context.Context, req Request) (*Result, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	preset := prompt.Resolve(req.PresetID)

	if e.cache != nil && len(req.Context) == 0 {
		output, score, ok, err := e.cache.Get(req.Text, preset.ID, req.Language)
		if err != nil {
			log.Warn().Err(err).Msg("cache read failed")
		} else if ok {
			return &Result{
				Text:         quality.Clean(output),
				PresetID:     preset.ID,
				QualityScore: score,
				Cached:       true,
				Status:       StatusAccepted,
			}, nil
		}
	}

	messages := prompt.BuildMessages(preset.ID, req.Text, req.Language)
	if len(req.Context) > 0 {
		messages = prompt.WithContext(messages, req.Context)
	}

	params := prompt.ParametersFor(preset.ID)
	raw, err := e.gen.Complete(ctx, llm.Request{
		Messages:    messages,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return e.finish(ctx, req, preset.ID, raw)
}

// RewriteStream is Rewrite with live delta forwarding. Quality validation
// runs after the final fragment, so the streamed text may differ from the
// returned Result when sanitation or correction kicked in.
func (e *Engine) RewriteStream(ctx context.Context, req Request, onDelta func(string)) (*Result, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	preset := prompt.Resolve(req.PresetID)

	messages := prompt.BuildMessages(preset.ID, req.Text, req.Language)
	if len(req.Context) > 0 {
		messages = prompt.WithContext(messages, req.Context)
	}

	params := prompt.ParametersFor(preset.ID)
	raw, err := e.gen.CompleteStream(ctx, llm.Request{
		Messages:    messages,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	}, onDelta)
	if err != nil {
		return nil, err
	}

	return e.finish(ctx, req, preset.ID, raw)
}

func (e *Engine) finish(ctx context.Context, req Request, presetID, raw string) (*Result, error) {
	cleaned := quality.Clean(raw)

	improved := e.improver.ValidateAndImprove(ctx, cleaned, presetID, req.Text, req.Language)

	result := &Result{
		Text:         improved.FinalOutput,
		PresetID:     presetID,
		WasImproved:  improved.WasImproved,
		QualityScore: improved.Validation.Score,
		Status:       StatusAccepted,
	}
	if !improved.Validation.Valid {
		result.Status = StatusAcceptedDegraded
	}

	if e.cache != nil && len(req.Context) == 0 && improved.Validation.Valid {
		if err := e.cache.Set(req.Text, presetID, req.Language, result.Text, result.QualityScore); err != nil {
			log.Warn().Err(err).Msg("cache write failed")
		}
	}

	return result, nil
}
