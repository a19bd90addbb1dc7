package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultEndpoint is the translation provider URL.
const DefaultEndpoint = "https://api.sarvam.ai/translate"

// ErrorMarker prefixes the input text when the provider call fails, so
// the message still shows something readable instead of vanishing.
const ErrorMarker = "[Translation failed] "

// Fixed provider parameters. The provider's formal register and the
// mayura model are what the counsellor flow was tuned against.
const (
	defaultSpeakerGender = "Female"
	translateMode        = "formal"
	translateModel       = "mayura:v1"
)

// maxResponseBytes caps provider response reads.
const maxResponseBytes = 1 << 20

// requestTimeout bounds one provider round trip.
const requestTimeout = 30 * time.Second

// Translator converts text to one of the supported languages.
//
// The error return is reserved for client-side failures (nil client,
// request construction). Provider failures are folded into the returned
// text with ErrorMarker, mirroring how the chat UI degrades: a failed
// translation must never blank a message.
type Translator interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

// Client calls the translation provider over HTTP.
type Client struct {
	httpClient    *http.Client
	endpoint      string
	apiKey        string
	speakerGender string
	logger        *zap.Logger
}

var _ Translator = (*Client)(nil)

// Option configures the client
type Option func(*Client)

// WithEndpoint overrides the provider URL
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithAPIKey sets the provider API key
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSpeakerGender overrides the speaker gender parameter
func WithSpeakerGender(gender string) Option {
	return func(c *Client) {
		if gender != "" {
			c.speakerGender = gender
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a translation client
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: requestTimeout},
		endpoint:      DefaultEndpoint,
		speakerGender: defaultSpeakerGender,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// translateRequest is the provider request body
type translateRequest struct {
	Input               string `json:"input"`
	SourceLanguageCode  string `json:"source_language_code"`
	TargetLanguageCode  string `json:"target_language_code"`
	SpeakerGender       string `json:"speaker_gender"`
	Mode                string `json:"mode"`
	Model               string `json:"model"`
	EnablePreprocessing bool   `json:"enable_preprocessing"`
}

// Translate converts text to the language named by targetCode.
//
// Short-circuits, in order: an unmapped target code returns the text
// unchanged without any provider call; so does text whose detected
// source locale already equals the target. Provider failures return
// the text prefixed with ErrorMarker and a nil error.
func (c *Client) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", fmt.Errorf("translate client is not initialized")
	}
	if text == "" {
		return text, nil
	}

	target, ok := ProviderLocale(targetCode)
	if !ok {
		c.logger.Warn("unmapped target language code", zap.String("code", targetCode))
		return text, nil
	}

	source := DetectLocale(text)
	if source == target {
		c.logger.Debug("translation skipped, already in target language",
			zap.String("locale", target.String()))
		return text, nil
	}

	payload, err := json.Marshal(translateRequest{
		Input:               text,
		SourceLanguageCode:  source.String(),
		TargetLanguageCode:  target.String(),
		SpeakerGender:       c.speakerGender,
		Mode:                translateMode,
		Model:               translateModel,
		EnablePreprocessing: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-subscription-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("translation request failed", zap.Error(err))
		return ErrorMarker + text, nil
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Warn("failed to read translation response", zap.Error(err))
		return ErrorMarker + text, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("translation provider rejected request",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return ErrorMarker + text, nil
	}

	if !gjson.ValidBytes(body) {
		c.logger.Warn("malformed translation response")
		return ErrorMarker + text, nil
	}

	translated := gjson.GetBytes(body, "translated_text")
	if !translated.Exists() || translated.String() == "" {
		// A success response without the field falls back to the input.
		c.logger.Debug("translation response missing translated_text")
		return text, nil
	}

	c.logger.Debug("translated",
		zap.String("source", source.String()),
		zap.String("target", target.String()),
		zap.Int("input_len", len(text)))

	return translated.String(), nil
}
