package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout     = 25 * time.Second
	healthTimeout      = 5 * time.Second
	defaultMinLength   = 150
	defaultTemperature = 0.4
	defaultMaxTokens   = 2048
	defaultStyle       = "detailed"
)

var (
	// ErrEmptyPrompt is returned when Generate is called with a blank prompt.
	ErrEmptyPrompt = errors.New("generator: prompt must not be empty")

	// ErrScoringViaGenerator is returned when a caller routes a scoring
	// request through Generate. Scoring has its own client.
	ErrScoringViaGenerator = errors.New("generator: scoring requests must use the scoring client")
)

// Config controls the generation client.
type Config struct {
	// WorkerURL is the base URL of the remote generation worker.
	WorkerURL string

	// DefaultModel is used when Options.Model is empty.
	DefaultModel string

	// Timeout bounds each worker request.
	Timeout time.Duration

	// StrictPromptMode restricts model selection to executable models and
	// enforces executable-prompt validation on results.
	StrictPromptMode bool

	// MinPromptLength is the minimum length of a valid generated prompt.
	MinPromptLength int

	// FallbackToLocal enables the local template when all remote attempts fail.
	FallbackToLocal bool

	// FallbackModels are tried in order after the primary model fails.
	FallbackModels []string
}

// DefaultConfig returns the production configuration.
func DefaultConfig(workerURL string) Config {
	return Config{
		WorkerURL:        workerURL,
		DefaultModel:     "gemini-3-flash-preview",
		Timeout:          defaultTimeout,
		StrictPromptMode: true,
		MinPromptLength:  defaultMinLength,
		FallbackToLocal:  true,
		FallbackModels:   []string{"gpt-4o-mini"},
	}
}

// Options are per-request generation parameters.
type Options struct {
	// Model overrides the configured default model.
	Model string

	// Style selects the generation style. Defaults to "detailed".
	Style string

	// Temperature defaults to 0.4.
	Temperature float64

	// MaxTokens defaults to 2048.
	MaxTokens int

	// Timeout overrides the configured request timeout.
	Timeout time.Duration

	// ScoreOnly marks a misrouted scoring request. Generate rejects it.
	ScoreOnly bool
}

func (o Options) withDefaults(cfg Config) Options {
	if o.Model == "" {
		o.Model = cfg.DefaultModel
	}
	if o.Style == "" {
		o.Style = defaultStyle
	}
	if o.Temperature == 0 {
		o.Temperature = defaultTemperature
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = defaultMaxTokens
	}
	if o.Timeout == 0 {
		o.Timeout = cfg.Timeout
	}
	return o
}

// Usage reports token accounting from the worker.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Result is the structured outcome of a generation request. Generate
// returns a Result for every recoverable condition; the error return is
// reserved for empty input and API misuse.
type Result struct {
	Success                   bool      `json:"success"`
	Prompt                    string    `json:"prompt"`
	Model                     string    `json:"model"`
	Provider                  string    `json:"provider"`
	Usage                     Usage     `json:"usage"`
	Suggestions               []string  `json:"suggestions,omitempty"`
	RequestID                 string    `json:"requestId"`
	Timestamp                 time.Time `json:"timestamp"`
	FallbackUsed              bool      `json:"fallbackUsed,omitempty"`
	PartialContent            bool      `json:"partialContent,omitempty"`
	RelaxedValidationUsed     bool      `json:"relaxedValidationUsed,omitempty"`
	ValidationWarning         string    `json:"validationWarning,omitempty"`
	ExecutableFormatValidated bool      `json:"executableFormatValidated,omitempty"`
	ModelCorrectionWarning    string    `json:"modelCorrectionWarning,omitempty"`
	PromptType                string    `json:"promptType,omitempty"`
	Error                     string    `json:"error,omitempty"`
}

// Metrics counts client activity since construction.
type Metrics struct {
	Requests          int `json:"requests"`
	CacheHits         int `json:"cacheHits"`
	Fallbacks         int `json:"fallbacks"`
	LocalFallbacks    int `json:"localFallbacks"`
	ModelCorrections  int `json:"modelCorrections"`
	PartialRecoveries int `json:"partialRecoveries"`
}

// Client talks to the remote generation worker.
type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      *resultCache

	mu      sync.Mutex
	metrics Metrics
}

// NewClient creates a generation client with the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = "gemini-3-flash-preview"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MinPromptLength == 0 {
		cfg.MinPromptLength = defaultMinLength
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		cache:      newResultCache(),
	}
}

// Metrics returns a snapshot of client counters.
func (c *Client) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// ClearCache drops all cached results.
func (c *Client) ClearCache() {
	c.cache.clear()
}

func (c *Client) count(f func(*Metrics)) {
	c.mu.Lock()
	f(&c.metrics)
	c.mu.Unlock()
}

func newRequestID() string {
	return uuid.NewString()
}

// Generate crafts a prompt for the given task description. The primary model
// is tried first, then each configured fallback model; when everything fails
// and local fallback is enabled, a deterministic template result is returned.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (Result, error) {
	if opts.ScoreOnly {
		return Result{}, ErrScoringViaGenerator
	}
	if strings.TrimSpace(prompt) == "" {
		return Result{}, ErrEmptyPrompt
	}

	opts = opts.withDefaults(c.cfg)
	c.count(func(m *Metrics) { m.Requests++ })

	// Image prompts follow a different grammar; strict executable-format
	// enforcement would reject valid ones.
	strict := c.cfg.StrictPromptMode
	isImage := IsLikelyImagePrompt(prompt)
	if isImage {
		strict = false
	}

	var correctionWarning string
	validation := ValidateModelSelection(opts.Model, strict)
	if validation.Corrected {
		correctionWarning = validation.Reason
		opts.Model = validation.Model
		c.count(func(m *Metrics) { m.ModelCorrections++ })
	}

	cacheKey := c.cache.key(prompt, opts, strict)
	if cached, ok := c.cache.get(cacheKey); ok {
		c.count(func(m *Metrics) { m.CacheHits++ })
		cached.RequestID = newRequestID()
		cached.Timestamp = time.Now()
		return cached, nil
	}

	models := append([]string{opts.Model}, c.fallbacksAfter(opts.Model)...)

	var lastErr error
	for i, model := range models {
		if i > 0 {
			c.count(func(m *Metrics) { m.Fallbacks++ })
			log.Printf("Warning: model %s failed, retrying with %s: %v", models[i-1], model, lastErr)
		}

		attempt := opts
		attempt.Model = model
		result, err := c.callWorker(ctx, prompt, attempt, strict)
		if err != nil {
			lastErr = err
			continue
		}

		result = c.finishResult(result, prompt, isImage, strict)
		result.ModelCorrectionWarning = correctionWarning
		if i > 0 {
			result.FallbackUsed = true
		}

		c.cache.put(cacheKey, result)
		return result, nil
	}

	if c.cfg.FallbackToLocal {
		c.count(func(m *Metrics) { m.LocalFallbacks++ })
		result := c.generateLocal(prompt, opts, lastErr)
		result.ModelCorrectionWarning = correctionWarning
		return result, nil
	}

	return Result{
		Success:   false,
		Model:     opts.Model,
		RequestID: newRequestID(),
		Timestamp: time.Now(),
		Error:     fmt.Sprintf("all models failed: %v", lastErr),
	}, nil
}

// fallbacksAfter returns the configured fallback models, skipping the one
// already used as primary.
func (c *Client) fallbacksAfter(primary string) []string {
	var out []string
	for _, m := range c.cfg.FallbackModels {
		if m != primary {
			out = append(out, m)
		}
	}
	return out
}

type workerRequest struct {
	Prompt                  string  `json:"prompt"`
	Model                   string  `json:"model"`
	Style                   string  `json:"style"`
	Temperature             float64 `json:"temperature"`
	MaxTokens               int     `json:"maxTokens"`
	EnforceExecutableFormat bool    `json:"enforceExecutableFormat"`
	RequestID               string  `json:"requestId"`
	Timestamp               string  `json:"timestamp"`
}

// workerPartial is the partialResult object attached to truncated
// generations.
type workerPartial struct {
	Prompt     string `json:"prompt"`
	Model      string `json:"model"`
	Provider   string `json:"provider"`
	PromptType string `json:"promptType"`
}

type workerResponse struct {
	Success                   bool           `json:"success"`
	Result                    string         `json:"result"`
	Prompt                    string         `json:"prompt"`
	Model                     string         `json:"model"`
	Provider                  string         `json:"provider"`
	Usage                     Usage          `json:"usage"`
	Suggestions               []string       `json:"suggestions"`
	PartialResult             *workerPartial `json:"partialResult"`
	ExecutableFormatValidated bool           `json:"executableFormatValidated"`
	RelaxedEnforcement        bool           `json:"relaxedEnforcement"`
	ValidationWarning         string         `json:"validationWarning"`
	PromptType                string         `json:"promptType"`
	Error                     string         `json:"error"`
}

func (r workerResponse) text() string {
	if r.Result != "" {
		return r.Result
	}
	return r.Prompt
}

// callWorker performs one request against the worker for one model. Network
// errors, HTTP errors, worker-reported errors, and unrepairable bodies all
// return an error so the caller can move to the next model. A partially
// recovered prompt is returned as a success with PartialContent set.
func (c *Client) callWorker(ctx context.Context, prompt string, opts Options, strict bool) (Result, error) {
	requestID := newRequestID()
	payload, err := json.Marshal(workerRequest{
		Prompt:                  prompt,
		Model:                   opts.Model,
		Style:                   opts.Style,
		Temperature:             opts.Temperature,
		MaxTokens:               opts.MaxTokens,
		EnforceExecutableFormat: strict,
		RequestID:               requestID,
		Timestamp:               time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.cfg.WorkerURL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("worker request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return Result{}, fmt.Errorf("worker returned status %d", resp.StatusCode)
	}

	var data workerResponse
	if decodeStrict(body, &data) != nil && !repairJSON(body, &data) {
		// The body never parsed; a partial prompt field may still be salvageable.
		partial, ok := extractPartialPrompt(body)
		if !ok {
			return Result{}, fmt.Errorf("unparseable worker response (%d bytes)", len(body))
		}
		c.count(func(m *Metrics) { m.PartialRecoveries++ })
		return Result{
			Success:        true,
			Prompt:         partial,
			Model:          opts.Model,
			RequestID:      requestID,
			Timestamp:      time.Now(),
			PartialContent: true,
		}, nil
	}

	// A 206, or a failure carrying a partialResult object, is still a usable
	// generation.
	if resp.StatusCode == http.StatusPartialContent || (!data.Success && data.PartialResult != nil) {
		p := data.PartialResult
		if p == nil {
			p = &workerPartial{Prompt: data.text(), Model: data.Model, Provider: data.Provider}
		}
		c.count(func(m *Metrics) { m.PartialRecoveries++ })
		return Result{
			Success:               true,
			Prompt:                p.Prompt,
			Model:                 firstNonEmpty(p.Model, opts.Model),
			Provider:              p.Provider,
			Usage:                 data.Usage,
			Suggestions:           data.Suggestions,
			RequestID:             requestID,
			Timestamp:             time.Now(),
			PartialContent:        true,
			RelaxedValidationUsed: true,
			ValidationWarning:     firstNonEmpty(data.Error, "Partial content returned"),
			PromptType:            p.PromptType,
		}, nil
	}

	if !data.Success {
		// Some failure paths still carry usable text.
		if data.text() != "" {
			c.count(func(m *Metrics) { m.PartialRecoveries++ })
			return Result{
				Success:               true,
				Prompt:                data.text(),
				Model:                 firstNonEmpty(data.Model, opts.Model),
				Provider:              data.Provider,
				Usage:                 data.Usage,
				Suggestions:           data.Suggestions,
				RequestID:             requestID,
				Timestamp:             time.Now(),
				PartialContent:        true,
				RelaxedValidationUsed: true,
				ValidationWarning:     firstNonEmpty(data.Error, "Partial success"),
			}, nil
		}
		if data.Error != "" {
			return Result{}, fmt.Errorf("worker error: %s", data.Error)
		}
		return Result{}, errors.New("worker reported failure with no detail")
	}
	if data.text() == "" {
		return Result{}, errors.New("worker returned empty result")
	}

	return Result{
		Success:     true,
		Prompt:      data.text(),
		Model:       firstNonEmpty(data.Model, opts.Model),
		Provider:    data.Provider,
		Usage:       data.Usage,
		Suggestions: data.Suggestions,
		RequestID:   requestID,
		Timestamp:   time.Now(),

		ExecutableFormatValidated: data.ExecutableFormatValidated,
		RelaxedValidationUsed:     data.RelaxedEnforcement,
		ValidationWarning:         data.ValidationWarning,
		PromptType:                data.PromptType,
	}, nil
}

// finishResult applies post-generation validation and cleanup to a worker
// result. Validation failures never discard the prompt: the result is
// annotated and, where possible, repaired.
func (c *Client) finishResult(result Result, task string, isImage, strict bool) Result {
	if !isImage {
		result.Prompt = ensureCompletePrompt(result.Prompt)
	}

	if strict && !result.ExecutableFormatValidated {
		if c.isExecutablePrompt(result.Prompt) {
			result.ExecutableFormatValidated = true
		} else {
			check := c.validatePromptNotContent(result.Prompt)
			if !check.valid {
				switch {
				case strings.Contains(check.reason, "too short"):
					result.ValidationWarning = "Prompt slightly shorter than required"
					result.RelaxedValidationUsed = true
				default:
					result.ValidationWarning = "Format slightly relaxed"
					result.RelaxedValidationUsed = true
					result.Prompt = check.cleaned
				}
			}
		}
	}
	if isImage {
		// Image prompts skip the executable grammar entirely.
		result.RelaxedValidationUsed = true
	}

	if len(result.Suggestions) == 0 {
		result.Suggestions = generateSuggestions(result.Prompt)
	}
	// The worker's own promptType wins when it sent one.
	if result.PromptType == "" {
		result.PromptType = promptTypeFor(task)
	}
	return result
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// HealthStatus is the worker /health response.
type HealthStatus struct {
	Status          string   `json:"status"`
	Models          int      `json:"models"`
	AvailableModels []string `json:"availableModels"`
	Version         string   `json:"version"`
	Architecture    string   `json:"architecture"`
}

// Health probes the worker health endpoint with a short timeout.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	url := strings.TrimRight(c.cfg.WorkerURL, "/") + "/health"

	reqCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HealthStatus{}, fmt.Errorf("health endpoint returned status %d", resp.StatusCode)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	return status, nil
}
