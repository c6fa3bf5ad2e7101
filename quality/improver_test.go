package quality

import (
	"context"
	"errors"
	"testing"

	"github.com/voicebubble/voicebubble/llm"
)

// stubGenerator answers every Complete call with a fixed response (or error)
// and counts calls.
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubGenerator) CompleteStream(ctx context.Context, req llm.Request, onDelta func(string)) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	onDelta(s.response)
	return s.response, nil
}

func (s *stubGenerator) Healthy(ctx context.Context) bool { return s.err == nil }

const goodEmail = "Hi Sarah,\n\nThe report is ready for your review. Can we sync tomorrow morning?\n\nBest,\nTom"
const badEmail = "Okay then."

func TestValidateAndImproveValidSkipsCorrection(t *testing.T) {
	gen := &stubGenerator{response: "unused"}
	im := NewImprover(gen, newTestValidator())

	res := im.ValidateAndImprove(context.Background(), goodEmail, "email_professional", "tell sarah report ready", "")

	if res.FinalOutput != goodEmail {
		t.Errorf("valid output must pass through unchanged, got %q", res.FinalOutput)
	}
	if res.WasImproved {
		t.Error("valid output must not be marked improved")
	}
	if gen.calls != 0 {
		t.Errorf("no correction call expected for valid output, got %d", gen.calls)
	}
}

func TestValidateAndImproveAcceptsBetterCorrection(t *testing.T) {
	gen := &stubGenerator{response: goodEmail}
	im := NewImprover(gen, newTestValidator())

	res := im.ValidateAndImprove(context.Background(), badEmail, "email_professional", "tell sarah report ready", "")

	if !res.WasImproved {
		t.Fatalf("correction should have been accepted: %+v", res)
	}
	if res.FinalOutput != goodEmail {
		t.Errorf("corrected output should replace the original, got %q", res.FinalOutput)
	}
	if gen.calls != 1 {
		t.Errorf("exactly one correction attempt expected, got %d", gen.calls)
	}
}

func TestValidateAndImproveNeverWorse(t *testing.T) {
	// Correction is as bad as the original; it must be discarded.
	gen := &stubGenerator{response: badEmail}
	im := NewImprover(gen, newTestValidator())

	res := im.ValidateAndImprove(context.Background(), badEmail, "email_professional", "tell sarah report ready", "")

	if res.WasImproved {
		t.Error("correction without score improvement must be discarded")
	}
	if res.FinalOutput != badEmail {
		t.Errorf("original output must survive a failed correction, got %q", res.FinalOutput)
	}
}

func TestValidateAndImproveCorrectionErrorKeepsOriginal(t *testing.T) {
	gen := &stubGenerator{err: errors.New("backend down")}
	im := NewImprover(gen, newTestValidator())

	res := im.ValidateAndImprove(context.Background(), badEmail, "email_professional", "tell sarah report ready", "")

	if res.FinalOutput != badEmail {
		t.Errorf("correction error must surface the original output, got %q", res.FinalOutput)
	}
	if res.WasImproved {
		t.Error("failed correction must not report improvement")
	}
}
