package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/log"
	"github.com/voicebubble/voicebubble/rewrite"
)

// RewriteRequest is the request body for both rewrite endpoints
type RewriteRequest struct {
	Text     string   `json:"text" binding:"required"`
	PresetID string   `json:"presetId"`
	Language string   `json:"language"`
	Context  []string `json:"context"`
}

func (r RewriteRequest) toEngine() rewrite.Request {
	return rewrite.Request{
		Text:     r.Text,
		PresetID: r.PresetID,
		Language: r.Language,
		Context:  r.Context,
	}
}

// Rewrite handles POST /api/rewrite/batch
func (h *Handlers) Rewrite(c *gin.Context) {
	var req RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	result, err := h.engine.Rewrite(c.Request.Context(), req.toEngine())
	if err != nil {
		respondRewriteError(c, err)
		return
	}

	RespondData(c, result)
}

// streamEvent is one SSE payload on the rewrite stream
type streamEvent struct {
	Type    string `json:"type"` // chunk | done | error
	Text    string `json:"text,omitempty"`
	Message string `json:"message,omitempty"`

	// done only
	FinalText    string `json:"finalText,omitempty"`
	WasImproved  bool   `json:"wasImproved,omitempty"`
	QualityScore int    `json:"qualityScore,omitempty"`
}

// RewriteStream handles POST /api/rewrite (SSE)
func (h *Handlers) RewriteStream(c *gin.Context) {
	var req RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		RespondInternalError(c, "streaming unsupported")
		return
	}

	send := func(ev streamEvent) {
		data, err := json.Marshal(ev)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal stream event")
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", data)
		flusher.Flush()
	}

	result, err := h.engine.RewriteStream(c.Request.Context(), req.toEngine(), func(delta string) {
		send(streamEvent{Type: "chunk", Text: delta})
	})
	if err != nil {
		send(streamEvent{Type: "error", Message: streamErrorMessage(err)})
		return
	}

	send(streamEvent{
		Type:         "done",
		FinalText:    result.Text,
		WasImproved:  result.WasImproved,
		QualityScore: result.QualityScore,
	})
}

func respondRewriteError(c *gin.Context, err error) {
	if rewrite.IsRequestError(err) {
		RespondValidationError(c, err.Error(), nil)
		return
	}
	if llm.IsGenerationError(err) {
		log.Error().Err(err).Str("requestId", log.RequestID(c)).Msg("generation backend failed")
		RespondServiceUnavailable(c, "generation backend unavailable")
		return
	}
	log.Error().Err(err).Str("requestId", log.RequestID(c)).Msg("rewrite failed")
	RespondInternalError(c, "rewrite failed")
}

func streamErrorMessage(err error) string {
	if rewrite.IsRequestError(err) {
		return err.Error()
	}
	if llm.IsGenerationError(err) {
		return "generation backend unavailable"
	}
	return "rewrite failed"
}
