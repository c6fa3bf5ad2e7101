package rewrite

import (
	"context"
	"strings"
	"testing"

	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/quality"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
	requests []llm.Request
}

func (s *stubGenerator) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.calls++
	s.requests = append(s.requests, req)
	return s.response, s.err
}

func (s *stubGenerator) CompleteStream(ctx context.Context, req llm.Request, onDelta func(string)) (string, error) {
	s.calls++
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	// Deliver in two fragments whose concatenation is the full text
	half := len(s.response) / 2
	onDelta(s.response[:half])
	onDelta(s.response[half:])
	return s.response, nil
}

func (s *stubGenerator) Healthy(ctx context.Context) bool { return s.err == nil }

type memoryCache struct {
	entries map[string]cacheEntry
	gets    int
	sets    int
}

type cacheEntry struct {
	output string
	score  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]cacheEntry{}}
}

func (m *memoryCache) key(text, presetID, language string) string {
	return text + "|" + presetID + "|" + language
}

func (m *memoryCache) Get(text, presetID, language string) (string, int, bool, error) {
	m.gets++
	e, ok := m.entries[m.key(text, presetID, language)]
	return e.output, e.score, ok, nil
}

func (m *memoryCache) Set(text, presetID, language, output string, score int) error {
	m.sets++
	m.entries[m.key(text, presetID, language)] = cacheEntry{output: output, score: score}
	return nil
}

func newTestEngine(gen llm.Generator, cache Cache) *Engine {
	validator := quality.NewValidator(quality.DefaultPolicy(), nil)
	improver := quality.NewImprover(gen, validator)
	return NewEngine(gen, improver, cache)
}

const decentOutput = "The quarterly report is finished and the numbers look stronger than last time around."

func TestRewriteEmptyTextRejectedBeforeGeneration(t *testing.T) {
	gen := &stubGenerator{response: decentOutput}
	eng := newTestEngine(gen, nil)

	tests := []string{"", "   ", "\n\t"}
	for _, text := range tests {
		_, err := eng.Rewrite(context.Background(), Request{Text: text, PresetID: "magic"})
		if err == nil {
			t.Fatalf("text %q: expected a request error", text)
		}
		if !IsRequestError(err) {
			t.Errorf("text %q: expected RequestError, got %T", text, err)
		}
	}
	if gen.calls != 0 {
		t.Errorf("no generation call may happen for rejected requests, got %d", gen.calls)
	}
}

func TestRewriteHappyPath(t *testing.T) {
	gen := &stubGenerator{response: "Sure, " + decentOutput}
	eng := newTestEngine(gen, nil)

	res, err := eng.Rewrite(context.Background(), Request{Text: "quarterly report done numbers look good", PresetID: "magic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != decentOutput {
		t.Errorf("filler prefix should be stripped, got %q", res.Text)
	}
	if res.PresetID != "magic" {
		t.Errorf("result should carry the resolved preset, got %s", res.PresetID)
	}
	if res.Cached {
		t.Error("uncached request must not report a cache hit")
	}
	if res.Status != StatusAccepted {
		t.Errorf("valid output should be accepted, got %s", res.Status)
	}
	if !strings.Contains(gen.requests[0].Messages[0].Content, "ACTIVE PRESET: MAGIC") {
		t.Error("generation request should carry the composed system instruction")
	}
}

func TestRewriteUnknownPresetFallsBack(t *testing.T) {
	gen := &stubGenerator{response: decentOutput}
	eng := newTestEngine(gen, nil)

	res, err := eng.Rewrite(context.Background(), Request{Text: "some text to rewrite", PresetID: "nonsense_preset"})
	if err != nil {
		t.Fatalf("unknown preset must not fail: %v", err)
	}
	if res.PresetID != "magic" {
		t.Errorf("unknown preset should resolve to the default, got %s", res.PresetID)
	}
}

func TestRewriteCacheHitSkipsGeneration(t *testing.T) {
	gen := &stubGenerator{response: decentOutput}
	cache := newMemoryCache()
	eng := newTestEngine(gen, cache)

	req := Request{Text: "quarterly report done", PresetID: "magic"}

	first, err := eng.Rewrite(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Error("first request must miss the cache")
	}
	if cache.sets != 1 {
		t.Fatalf("valid result should be cached once, got %d sets", cache.sets)
	}

	callsBefore := gen.calls
	second, err := eng.Rewrite(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Error("second identical request must hit the cache")
	}
	if second.Text != first.Text {
		t.Errorf("cache hit should return the stored text: %q vs %q", second.Text, first.Text)
	}
	if gen.calls != callsBefore {
		t.Errorf("cache hit must not call the generator, got %d extra calls", gen.calls-callsBefore)
	}
}

func TestRewriteContextBypassesCache(t *testing.T) {
	gen := &stubGenerator{response: decentOutput}
	cache := newMemoryCache()
	eng := newTestEngine(gen, cache)

	req := Request{Text: "continue from before", PresetID: "magic", Context: []string{"earlier output"}}
	if _, err := eng.Rewrite(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.gets != 0 || cache.sets != 0 {
		t.Errorf("continuation requests must bypass the cache: gets=%d sets=%d", cache.gets, cache.sets)
	}

	// Context rides along as a secondary system message
	found := false
	for _, m := range gen.requests[0].Messages {
		if strings.Contains(m.Content, "CONTEXT FROM PREVIOUS ITEMS") {
			found = true
		}
	}
	if !found {
		t.Error("context splice missing from generation request")
	}
}

func TestRewriteSubThresholdSurfacedAsDegraded(t *testing.T) {
	// Output fails email rules and the correction attempt returns the same
	// text, so the final result stays below threshold.
	gen := &stubGenerator{response: "Okay then."}
	cache := newMemoryCache()
	eng := newTestEngine(gen, cache)

	res, err := eng.Rewrite(context.Background(), Request{Text: "tell sarah the report is ready", PresetID: "email_professional"})
	if err != nil {
		t.Fatalf("degraded output must not error: %v", err)
	}
	if res.Status != StatusAcceptedDegraded {
		t.Errorf("sub-threshold result should be degraded, got %s (score %d)", res.Status, res.QualityScore)
	}
	if cache.sets != 0 {
		t.Errorf("invalid results must not be cached, got %d sets", cache.sets)
	}
}

func TestRewriteStreamDeltasConcatenateToFullText(t *testing.T) {
	gen := &stubGenerator{response: decentOutput}
	eng := newTestEngine(gen, nil)

	var streamed strings.Builder
	res, err := eng.RewriteStream(context.Background(), Request{Text: "quarterly report", PresetID: "magic"}, func(delta string) {
		streamed.WriteString(delta)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streamed.String() != decentOutput {
		t.Errorf("streamed fragments must concatenate to the full text, got %q", streamed.String())
	}
	if res.Text != decentOutput {
		t.Errorf("final result mismatch: %q", res.Text)
	}
}

func TestRewriteStreamEmptyTextRejected(t *testing.T) {
	gen := &stubGenerator{response: decentOutput}
	eng := newTestEngine(gen, nil)

	_, err := eng.RewriteStream(context.Background(), Request{Text: "", PresetID: "magic"}, func(string) {})
	if !IsRequestError(err) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("no generation call for rejected stream request, got %d", gen.calls)
	}
}
