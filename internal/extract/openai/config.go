package openai

import (
	"log/slog"
	"net/http"

	"github.com/pantryops/pantryd/internal/common"
)

// Config controls the OpenAI-compatible extraction client.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	VisionModel string
	Temperature float32
	// LenientOptional enables the sanitize-and-revalidate pass when strict
	// schema validation of the model output fails.
	LenientOptional bool
}

// Client calls an OpenAI-compatible chat/completions endpoint and implements
// extract.Provider.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient builds a Client. The HTTP client carries no timeout of its own;
// callers bound each request through the context.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = "gpt-4o"
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 0},
		log:        logger,
	}
}

// FromAppConfig adapts the application-level extraction config.
func FromAppConfig(ec common.ExtractConfig, logger *slog.Logger) *Client {
	return NewClient(Config{
		BaseURL:         ec.BaseURL,
		APIKey:          ec.APIKey,
		Model:           ec.Model,
		VisionModel:     ec.VisionModel,
		Temperature:     ec.Temperature,
		LenientOptional: true,
	}, logger)
}
