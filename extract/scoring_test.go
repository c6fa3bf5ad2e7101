package extract

import "testing"

func TestScoreOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		outcomes  []Outcome
		wantScore int
	}{
		{
			name: "clean extraction",
			outcomes: []Outcome{
				{Type: TypeTask, Text: "Book flights for the conference"},
				{Type: TypeMessage, Text: "Email John about the budget"},
			},
			wantScore: 100,
		},
		{
			name:      "empty extraction",
			outcomes:  nil,
			wantScore: 50,
		},
		{
			name: "too-short text",
			outcomes: []Outcome{
				{Type: TypeTask, Text: "Go"},
			},
			wantScore: 90,
		},
		{
			name: "vague outcome",
			outcomes: []Outcome{
				{Type: TypeTask, Text: "Deal with it later somehow"},
			},
			wantScore: 95,
		},
		{
			name: "no type diversity on a long list",
			outcomes: []Outcome{
				{Type: TypeTask, Text: "First task to complete"},
				{Type: TypeTask, Text: "Second task to complete"},
				{Type: TypeTask, Text: "Third task to complete"},
				{Type: TypeTask, Text: "Fourth task to complete"},
			},
			wantScore: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreOutcomes(tt.outcomes)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

func TestScoreInsightAction(t *testing.T) {
	tests := []struct {
		name      string
		ia        InsightAction
		wantScore int
	}{
		{
			name: "sharp pair",
			ia: InsightAction{
				Insight: "You are waiting for motivation, but motivation follows action.",
				Action:  "Set a 5-minute timer and start the smallest piece.",
			},
			wantScore: 100,
		},
		{
			name: "short insight and action",
			ia: InsightAction{
				Insight: "You're stuck.",
				Action:  "Just start.",
			},
			wantScore: 60,
		},
		{
			name: "therapy speak",
			ia: InsightAction{
				Insight: "It sounds like you might be feeling overwhelmed by everything right now.",
				Action:  "Write down one task and pick a start time.",
			},
			wantScore: 85,
		},
		{
			name: "action too big",
			ia: InsightAction{
				Insight: "You keep planning because planning feels safer than starting.",
				Action:  "Make a plan covering every milestone for the next quarter.",
			},
			wantScore: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreInsightAction(tt.ia)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

func TestScoreActions(t *testing.T) {
	tests := []struct {
		name      string
		actions   []Action
		wantScore int
	}{
		{
			name:      "empty list heavily penalized",
			actions:   nil,
			wantScore: 50,
		},
		{
			name: "clean candidate",
			actions: []Action{
				{Type: ActionTodo, Title: "Buy groceries", FormattedText: "Buy groceries"},
				{Type: ActionMessage, Title: "Tell the team", FormattedText: "Tell the team the demo moved"},
			},
			wantScore: 100,
		},
		{
			name: "calendar with malformed datetime",
			actions: []Action{
				{Type: ActionCalendar, Title: "Budget meeting", Datetime: "tomorrow at 3pm", FormattedText: "Budget meeting tomorrow"},
			},
			wantScore: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreActions(tt.actions)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}
