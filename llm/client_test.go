package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/voicebubble/voicebubble/prompt"
)

func TestBuildRequestMapsMessages(t *testing.T) {
	c := &Client{model: "gpt-4o-mini"}

	req := Request{
		Messages: []prompt.Message{
			{Role: prompt.RoleSystem, Content: "system instruction"},
			{Role: prompt.RoleUser, Content: "example in"},
			{Role: prompt.RoleAssistant, Content: "example out"},
			{Role: prompt.RoleUser, Content: "real input"},
		},
		Temperature: 0.75,
		MaxTokens:   700,
	}

	out := c.buildRequest(req)

	if out.Model != "gpt-4o-mini" {
		t.Errorf("model = %s", out.Model)
	}
	if out.Temperature != 0.75 || out.MaxTokens != 700 {
		t.Errorf("sampling params lost: temp=%v maxTokens=%d", out.Temperature, out.MaxTokens)
	}
	if len(out.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(out.Messages))
	}
	if out.Messages[0].Role != "system" || out.Messages[3].Content != "real input" {
		t.Errorf("message order or roles lost: %+v", out.Messages)
	}
	if out.ResponseFormat != nil {
		t.Error("ResponseFormat should be unset without JSON mode")
	}
}

func TestBuildRequestJSONMode(t *testing.T) {
	c := &Client{model: "gpt-4o-mini"}

	out := c.buildRequest(Request{JSONMode: true})
	if out.ResponseFormat == nil || out.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Errorf("JSON mode should set the response format, got %+v", out.ResponseFormat)
	}
}

func TestGenerationErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := &GenerationError{Err: cause}

	if !IsGenerationError(err) {
		t.Error("direct GenerationError should be detected")
	}
	if !IsGenerationError(fmt.Errorf("outer: %w", err)) {
		t.Error("wrapped GenerationError should be detected")
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
	if IsGenerationError(cause) {
		t.Error("plain errors are not generation errors")
	}
}
