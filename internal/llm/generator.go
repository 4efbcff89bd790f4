package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/ollama"
	"google.golang.org/genai"

	"github.com/codelens/snippet-review/internal/config"
	"github.com/codelens/snippet-review/internal/core"
)

// NewGenerator creates the model client for the configured provider.
func NewGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		logger.Info("using Gemini model provider", "model", cfg.GeneratorModelName)
		return newGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeneratorModelName)

	case config.ProviderOllama:
		logger.Info("using Ollama model provider", "model", cfg.GeneratorModelName, "host", cfg.OllamaHost)
		return newOllamaGenerator(cfg, logger)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

// geminiGenerator calls the Gemini API with the thinking budget set to zero,
// which keeps latency low for interactive reviews.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(ctx context.Context, apiKey, model string) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(0)),
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return resp.Text(), nil
}

// ollamaGenerator wraps a locally hosted Ollama model.
type ollamaGenerator struct {
	model llms.Model
}

func newOllamaGenerator(cfg *config.Config, logger *slog.Logger) (*ollamaGenerator, error) {
	model, err := ollama.New(
		ollama.WithServerURL(cfg.OllamaHost),
		ollama.WithModel(cfg.GeneratorModelName),
		ollama.WithHTTPClient(newOllamaHTTPClient()),
		ollama.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &ollamaGenerator{model: model}, nil
}

func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.Call(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("ollama generation failed: %w", err)
	}
	return resp, nil
}

// newOllamaHTTPClient creates an HTTP client with longer timeouts for Ollama
// requests. Local models can take a while to produce a full review.
func newOllamaHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Minute,
	}
}
