package extract

// OutcomeType classifies one extracted outcome. Closed enum: anything else
// coming back from the model is dropped at parse time.
type OutcomeType string

const (
	TypeMessage OutcomeType = "message"
	TypeTask    OutcomeType = "task"
	TypeIdea    OutcomeType = "idea"
	TypeContent OutcomeType = "content"
	TypeNote    OutcomeType = "note"
)

// Valid reports whether t is one of the known outcome types.
func (t OutcomeType) Valid() bool {
	switch t {
	case TypeMessage, TypeTask, TypeIdea, TypeContent, TypeNote:
		return true
	}
	return false
}

// Outcome is one atomic, typed, actionable item extracted from chaotic input.
type Outcome struct {
	Type OutcomeType `json:"type"`
	Text string      `json:"text"`
}

// ActionType classifies one extracted smart action. Closed enum, like
// OutcomeType: unknown types are dropped at parse time.
type ActionType string

const (
	ActionCalendar ActionType = "calendar"
	ActionEmail    ActionType = "email"
	ActionTodo     ActionType = "todo"
	ActionNote     ActionType = "note"
	ActionMessage  ActionType = "message"
)

// Valid reports whether t is one of the known action types.
func (t ActionType) Valid() bool {
	switch t {
	case ActionCalendar, ActionEmail, ActionTodo, ActionNote, ActionMessage:
		return true
	}
	return false
}

// Action is one typed, ready-to-use action extracted from voice input.
// Calendar actions always carry a datetime; email actions always carry a
// recipient or a body.
type Action struct {
	Type          ActionType `json:"type"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Datetime      string     `json:"datetime,omitempty"`
	Location      string     `json:"location,omitempty"`
	Attendees     []string   `json:"attendees,omitempty"`
	Recipient     string     `json:"recipient,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	Body          string     `json:"body,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	Platform      string     `json:"platform,omitempty"`
	FormattedText string     `json:"formattedText"`
}

// InsightAction pairs a diagnostic one-liner with one small concrete step.
type InsightAction struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
}

// Status is the terminal state of an extraction run.
type Status string

const (
	StatusAccepted         Status = "accepted"
	StatusAcceptedDegraded Status = "accepted_degraded"
)

// OutcomesResult is the result of an outcome extraction run.
type OutcomesResult struct {
	Outcomes []Outcome `json:"outcomes"`
	Attempts int       `json:"attempts"`
	Score    int       `json:"score"`
	Status   Status    `json:"status"`
}

// ActionsResult is the result of a smart-action extraction run.
type ActionsResult struct {
	Actions  []Action `json:"actions"`
	Attempts int      `json:"attempts"`
	Score    int      `json:"score"`
	Status   Status   `json:"status"`
}

// InsightActionResult is the result of an insight+action extraction run.
type InsightActionResult struct {
	Insight  string `json:"insight"`
	Action   string `json:"action"`
	Attempts int    `json:"attempts"`
	Score    int    `json:"score"`
	Status   Status `json:"status"`
}
