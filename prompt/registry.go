package prompt

import (
	"github.com/voicebubble/voicebubble/log"
)

// Resolve returns the preset for the given id, falling back to the default
// preset when the id is unknown. Never returns nil.
func Resolve(presetID string) *Preset {
	if p, ok := presets[presetID]; ok {
		return p
	}
	log.Warn().Str("presetId", presetID).Msg("unknown preset, falling back to default")
	return presets[DefaultPresetID]
}

// IsValid reports whether the preset id exists in the registry.
// Callers that want to reject unknown ids outright use this; Resolve never rejects.
func IsValid(presetID string) bool {
	_, ok := presets[presetID]
	return ok
}

// Parameters holds the sampling parameters for a generation call.
type Parameters struct {
	Temperature float32
	MaxTokens   int
}

// ParametersFor returns the sampling parameters for a preset, applying the
// hard-coded defaults for unset fields.
func ParametersFor(presetID string) Parameters {
	p := Resolve(presetID)
	params := Parameters{
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	}
	if params.Temperature == 0 {
		params.Temperature = DefaultTemperature
	}
	if params.MaxTokens == 0 {
		params.MaxTokens = DefaultMaxTokens
	}
	return params
}

// All returns every preset in stable registry order.
func All() []*Preset {
	result := make([]*Preset, 0, len(presetOrder))
	for _, id := range presetOrder {
		if p, ok := presets[id]; ok {
			result = append(result, p)
		}
	}
	return result
}
