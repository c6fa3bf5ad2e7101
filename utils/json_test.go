package utils

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "bare object",
			content: `{"key":"value"}`,
			want:    `{"key":"value"}`,
		},
		{
			name:    "fenced json block",
			content: "```json\n{\"key\":\"value\"}\n```",
			want:    `{"key":"value"}`,
		},
		{
			name:    "fenced block without language tag",
			content: "```\n[1,2,3]\n```",
			want:    `[1,2,3]`,
		},
		{
			name:    "object surrounded by prose",
			content: `Here's what I extracted: {"outcomes":[{"type":"task","text":"Do it"}]} Hope that works!`,
			want:    `{"outcomes":[{"type":"task","text":"Do it"}]}`,
		},
		{
			name:    "array surrounded by prose",
			content: `The items are [“a”, “b”] sorry, I mean ["a","b"] there.`,
			wantErr: true, // greedy span over both arrays is not valid JSON
		},
		{
			name:    "no json at all",
			content: "I could not produce any structured output.",
			wantErr: true,
		},
		{
			name:    "whitespace padding",
			content: "\n\n  {\"a\":1}  \n",
			want:    `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrNoJSON) {
					t.Fatalf("expected ErrNoJSON, got %v (payload %q)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalLenient(t *testing.T) {
	var payload struct {
		Insight string `json:"insight"`
		Action  string `json:"action"`
	}

	content := "Sure! Here you go:\n```json\n{\"insight\":\"the real blocker\",\"action\":\"one tiny step\"}\n```"
	if err := UnmarshalLenient(content, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Insight != "the real blocker" || payload.Action != "one tiny step" {
		t.Errorf("unexpected payload: %+v", payload)
	}

	if err := UnmarshalLenient("nothing structured here", &payload); err == nil {
		t.Error("expected an error for prose-only content")
	}
}
