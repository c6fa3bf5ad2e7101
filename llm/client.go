package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/voicebubble/voicebubble/config"
	"github.com/voicebubble/voicebubble/log"
	"github.com/voicebubble/voicebubble/prompt"
)

// requestTimeout bounds a single backend call. The pipeline must fail rather
// than hang on a stuck connection.
const requestTimeout = 60 * time.Second

// Request carries one completion call's inputs.
type Request struct {
	Messages    []prompt.Message
	Temperature float32
	MaxTokens   int
	JSONMode    bool
}

// GenerationError wraps every backend failure (transport, quota, malformed
// response) so callers treat them uniformly.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether err is (or wraps) a backend failure.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// Generator is the text-generation backend boundary. CompleteStream delivers
// fragments in generation order via onDelta and returns the complete text;
// the concatenation of all fragments equals the returned text.
type Generator interface {
	Complete(ctx context.Context, req Request) (string, error)
	CompleteStream(ctx context.Context, req Request, onDelta func(string)) (string, error)
	Healthy(ctx context.Context) bool
}

// Client is the OpenAI-backed Generator.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a Client from configuration. Returns an error when no API
// key is configured; the service cannot run without a backend.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" && cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	log.Info().Str("model", cfg.OpenAIModel).Str("baseURL", cfg.OpenAIBaseURL).Msg("openai client initialized")

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAIModel,
	}, nil
}

func (c *Client) buildRequest(req Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	out := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSONMode {
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return out
}

// Complete performs a chat completion and returns the raw text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	log.Debug().
		Int("messages", len(req.Messages)).
		Float32("temperature", req.Temperature).
		Int("maxTokens", req.MaxTokens).
		Bool("jsonMode", req.JSONMode).
		Msg("openai request")

	resp, err := c.client.CreateChatCompletion(ctx, c.buildRequest(req))
	if err != nil {
		log.Error().Err(err).Msg("completion failed")
		return "", &GenerationError{Err: err}
	}

	if len(resp.Choices) == 0 {
		log.Error().Msg("openai response has no choices")
		return "", &GenerationError{Err: errors.New("response has no choices")}
	}

	content := resp.Choices[0].Message.Content
	log.Debug().
		Str("finishReason", string(resp.Choices[0].FinishReason)).
		Int("completionTokens", resp.Usage.CompletionTokens).
		Msg("openai response")

	return content, nil
}

// CompleteStream performs a streaming chat completion. Each fragment is passed
// to onDelta in arrival order; the full concatenated text is returned once the
// backend signals the end of the stream.
func (c *Client) CompleteStream(ctx context.Context, req Request, onDelta func(string)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	apiReq := c.buildRequest(req)
	apiReq.Stream = true

	stream, err := c.client.CreateChatCompletionStream(ctx, apiReq)
	if err != nil {
		log.Error().Err(err).Msg("stream open failed")
		return "", &GenerationError{Err: err}
	}
	defer stream.Close()

	var full []byte
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Error().Err(err).Msg("stream read failed")
			return "", &GenerationError{Err: err}
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		full = append(full, delta...)
		if onDelta != nil {
			onDelta(delta)
		}
	}

	return string(full), nil
}

// Healthy reports whether the backend answers a models listing.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := c.client.ListModels(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("openai health check failed")
		return false
	}
	return true
}
