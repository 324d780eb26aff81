// Package llm adapts hosted text-generation providers to out.TextGenerator.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"style_server/core/port/out"
	"style_server/pkg/httputil"
	"style_server/pkg/logger"
	"style_server/pkg/metrics"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

const DefaultModel = "gpt-4o-mini"

// ErrEmptyCompletion is returned when the provider answers without content.
var ErrEmptyCompletion = errors.New("empty completion")

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration

	// FailureThreshold consecutive failures open the breaker for OpenFor.
	FailureThreshold uint32
	OpenFor          time.Duration
}

// OpenAIGenerator calls an OpenAI-compatible chat completion endpoint.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	cb          *gobreaker.CircuitBreaker
	latency     *metrics.LatencyTracker
}

var _ out.TextGenerator = (*OpenAIGenerator)(nil)

func NewOpenAIGenerator(cfg Config) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = httputil.NewClient(httputil.DefaultClientConfig())

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	openFor := cfg.OpenFor
	if openFor == 0 {
		openFor = 30 * time.Second
	}

	cbSettings := gobreaker.Settings{
		Name:        "text-generation",
		MaxRequests: 1,
		Timeout:     openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("[CircuitBreaker] %s: state changed from %s to %s", name, from.String(), to.String())
		},
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(cfg.Temperature),
		timeout:     timeout,
		cb:          gobreaker.NewCircuitBreaker(cbSettings),
		latency:     metrics.NewLatencyTracker(500),
	}
}

// Generate sends prompt as a single user message.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	result, err := g.cb.Execute(func() (interface{}, error) {
		return g.complete(ctx, prompt)
	})
	g.latency.Record(time.Since(start), err != nil)
	if err != nil {
		return "", fmt.Errorf("text generation: %w", err)
	}
	return result.(string), nil
}

func (g *OpenAIGenerator) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// Stats reports call latency and breaker state for the readiness check.
func (g *OpenAIGenerator) Stats() map[string]any {
	stats := g.latency.Stats().ToMap()
	stats["breaker"] = g.cb.State().String()
	return stats
}

// IsOpen reports whether calls are currently short-circuited.
func (g *OpenAIGenerator) IsOpen() bool {
	return g.cb.State() == gobreaker.StateOpen
}
