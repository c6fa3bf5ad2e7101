package prompt

import "fmt"

// Mode selects which instruction amplifier is appended to the global engine.
type Mode string

const (
	ModeNone       Mode = "none"
	ModeSocial     Mode = "social"
	ModeEmail      Mode = "email"
	ModeCreative   Mode = "creative"
	ModeExtraction Mode = "extraction"
)

// Category selects which quality rule set the validator applies.
type Category string

const (
	CategoryDefault    Category = "default"
	CategoryEmail      Category = "email"
	CategorySocial     Category = "social"
	CategoryReply      Category = "reply"
	CategoryCreative   Category = "creative"
	CategoryUtility    Category = "utility"
	CategoryStructured Category = "structured"
	CategoryOutcomes   Category = "outcomes"
	CategoryUnstuck    Category = "unstuck"
)

// Example is one few-shot input/output pair shown to the model before the real input.
type Example struct {
	Input  string
	Output string
}

// Preset describes how to transform input text: behaviour rules, few-shot
// examples, sampling parameters, and the mode/category tags that drive
// instruction amplification and quality validation.
type Preset struct {
	ID          string
	Label       string
	Mode        Mode
	Category    Category
	Behaviour   string
	Examples    []Example
	Temperature float32
	MaxTokens   int
}

// DefaultPresetID is the fallback for unknown preset ids.
const DefaultPresetID = "magic"

// Sampling defaults applied when a preset leaves its parameters unset.
const (
	DefaultTemperature float32 = 0.7
	DefaultMaxTokens           = 600
)

var validModes = map[Mode]bool{
	ModeNone:       true,
	ModeSocial:     true,
	ModeEmail:      true,
	ModeCreative:   true,
	ModeExtraction: true,
}

var validCategories = map[Category]bool{
	CategoryDefault:    true,
	CategoryEmail:      true,
	CategorySocial:     true,
	CategoryReply:      true,
	CategoryCreative:   true,
	CategoryUtility:    true,
	CategoryStructured: true,
	CategoryOutcomes:   true,
	CategoryUnstuck:    true,
}

// CheckRegistry verifies every preset carries a known mode and category and
// that the default preset exists. Call at startup: a bad tag here is a
// configuration error, not something to paper over at request time.
func CheckRegistry() error {
	if _, ok := presets[DefaultPresetID]; !ok {
		return fmt.Errorf("default preset %q missing from registry", DefaultPresetID)
	}
	for id, p := range presets {
		if p.ID != id {
			return fmt.Errorf("preset %q registered under key %q", p.ID, id)
		}
		if !validModes[p.Mode] {
			return fmt.Errorf("preset %q has unknown mode %q", id, p.Mode)
		}
		if !validCategories[p.Category] {
			return fmt.Errorf("preset %q has unknown category %q", id, p.Category)
		}
	}
	return nil
}
