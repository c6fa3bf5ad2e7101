package api

import (
	"github.com/gin-gonic/gin"
	"github.com/voicebubble/voicebubble/prompt"
)

// PresetInfo is the public metadata for one preset
type PresetInfo struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// GetPresets handles GET /api/presets
func (h *Handlers) GetPresets(c *gin.Context) {
	presets := prompt.All()
	infos := make([]PresetInfo, 0, len(presets))
	for _, p := range presets {
		infos = append(infos, PresetInfo{
			ID:       p.ID,
			Label:    p.Label,
			Category: string(p.Category),
		})
	}
	RespondList(c, infos)
}
