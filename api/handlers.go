package api

import (
	"github.com/voicebubble/voicebubble/extract"
	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/rewrite"
)

// Handlers holds the services the API routes dispatch to
type Handlers struct {
	engine    *rewrite.Engine
	extractor *extract.Extractor
	gen       llm.Generator
}

func NewHandlers(engine *rewrite.Engine, extractor *extract.Extractor, gen llm.Generator) *Handlers {
	return &Handlers{engine: engine, extractor: extractor, gen: gen}
}
