package prompt

import (
	"fmt"
	"strings"
)

// Role tags a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry in the sequence sent to the generation backend.
type Message struct {
	Role    Role
	Content string
}

const sectionRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Compose builds the full system instruction for a preset and language.
// The order is fixed: global engine, then mode amplifier, then language
// directive, then preset behaviour. Later blocks narrow earlier ones but
// never contradict them. The global block carries the only safety rules.
func Compose(presetID, language string) string {
	p := Resolve(presetID)

	parts := []string{globalEngine}

	if amp, ok := modeAmplifiers[p.Mode]; ok && p.Mode != ModeNone {
		parts = append(parts, section(amp))
	}

	if name := LanguageName(language); name != "" {
		parts = append(parts, section(fmt.Sprintf(`LANGUAGE REQUIREMENT

OUTPUT LANGUAGE: %s

You MUST write your ENTIRE response in %s.
This is non-negotiable. Every word of output must be in %s.
If outputting JSON, write JSON values in %s (keys stay English).`, name, name, name, name)))
	}

	behaviour := strings.TrimSpace(p.Behaviour)
	if behaviour == "" {
		behaviour = "Apply standard transformation rules."
	}
	parts = append(parts, section(fmt.Sprintf("ACTIVE PRESET: %s (%s)\n\n%s",
		strings.ToUpper(p.ID), p.Label, behaviour)))

	return strings.Join(parts, "\n\n")
}

func section(body string) string {
	return sectionRule + "\n" + strings.TrimSpace(body)
}

// BuildMessages assembles the ordered message sequence for a generation call:
// one system message, the preset's example pairs in registry order, then the
// user's text verbatim as the final message. Cleanup of the input happens
// downstream, never here.
func BuildMessages(presetID, userText, language string) []Message {
	p := Resolve(presetID)

	messages := []Message{
		{Role: RoleSystem, Content: Compose(presetID, language)},
	}

	for _, ex := range p.Examples {
		if ex.Input == "" || ex.Output == "" {
			continue
		}
		messages = append(messages,
			Message{Role: RoleUser, Content: ex.Input},
			Message{Role: RoleAssistant, Content: ex.Output},
		)
	}

	messages = append(messages, Message{Role: RoleUser, Content: userText})
	return messages
}

// WithContext splices prior items into a message sequence as a secondary
// system message, directly after the leading system message. Used by the
// continuation feature: the user is extending earlier output.
func WithContext(messages []Message, context []string) []Message {
	if len(context) == 0 {
		return messages
	}

	var b strings.Builder
	b.WriteString("CONTEXT FROM PREVIOUS ITEMS:\n")
	for i, item := range context {
		fmt.Fprintf(&b, "[%d] %s\n\n", i+1, item)
	}
	b.WriteString("Use this context to inform your response. The user is CONTINUING from this context. Maintain consistency and flow.")

	out := make([]Message, 0, len(messages)+1)
	out = append(out, messages[0])
	out = append(out, Message{Role: RoleSystem, Content: b.String()})
	out = append(out, messages[1:]...)
	return out
}
