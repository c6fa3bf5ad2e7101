package api

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/voicebubble/voicebubble/extract"
	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/log"
)

// ExtractRequest is the shared request body for the extraction endpoints
type ExtractRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

// ExtractOutcomes handles POST /api/extract/outcomes
func (h *Handlers) ExtractOutcomes(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Text)) < extract.MinOutcomesInput {
		RespondValidationError(c, "text too short to extract outcomes", nil)
		return
	}

	result, err := h.extractor.ExtractOutcomes(c.Request.Context(), req.Text, req.Language)
	if err != nil {
		respondExtractError(c, err)
		return
	}

	RespondData(c, result)
}

// ExtractUnstuck handles POST /api/extract/unstuck
func (h *Handlers) ExtractUnstuck(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Text)) < extract.MinUnstuckInput {
		RespondValidationError(c, "text too short, tell me more about what's going on", nil)
		return
	}

	result, err := h.extractor.ExtractInsightAction(c.Request.Context(), req.Text, req.Language)
	if err != nil {
		respondExtractError(c, err)
		return
	}

	RespondData(c, result)
}

// ExtractActions handles POST /api/extract/actions
func (h *Handlers) ExtractActions(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err.Error())
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Text)) < extract.MinActionsInput {
		RespondValidationError(c, "text too short to extract actions", nil)
		return
	}

	result, err := h.extractor.ExtractActions(c.Request.Context(), req.Text, req.Language)
	if err != nil {
		respondExtractError(c, err)
		return
	}

	RespondData(c, result)
}

func respondExtractError(c *gin.Context, err error) {
	if errors.Is(err, extract.ErrExtractionFailed) {
		RespondUnprocessable(c, "could not extract structured output from input")
		return
	}
	if llm.IsGenerationError(err) {
		log.Error().Err(err).Msg("generation backend failed")
		RespondServiceUnavailable(c, "generation backend unavailable")
		return
	}
	log.Error().Err(err).Msg("extraction failed")
	RespondInternalError(c, "extraction failed")
}
