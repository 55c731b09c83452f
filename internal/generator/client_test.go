package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

func workerOK(t *testing.T, prompt string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(workerResponse{
			Success:                   true,
			Result:                    prompt,
			Model:                     "gemini-3-flash-preview",
			Provider:                  "google",
			Usage:                     Usage{PromptTokens: 12, CompletionTokens: 80, TotalTokens: 92},
			ExecutableFormatValidated: true,
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(workerOK(t, executableFixture()))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	result, err := c.Generate(context.Background(), "summarize the sales report", Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !result.Success {
		t.Errorf("Success = false: %s", result.Error)
	}
	if result.Prompt != executableFixture() {
		t.Errorf("prompt altered: %q", result.Prompt)
	}
	if result.Model != "gemini-3-flash-preview" || result.Provider != "google" {
		t.Errorf("model/provider = %s/%s", result.Model, result.Provider)
	}
	if !result.ExecutableFormatValidated {
		t.Error("worker validation not carried through")
	}
	if result.RequestID == "" {
		t.Error("missing request ID")
	}
	if result.FallbackUsed || result.PartialContent {
		t.Errorf("unexpected degradation flags: %+v", result)
	}
}

// The worker speaks in success/executableFormatValidated terms; raw JSON here
// guards the field names independently of the Go struct.
func TestGenerate_WorkerFieldNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := `{"success":true,"result":` + strconv.Quote(executableFixture()) +
			`,"model":"gemini-3-flash-preview","provider":"google",` +
			`"usage":{"promptTokens":9,"completionTokens":61,"totalTokens":70},` +
			`"suggestions":["Add expected output format"],"executableFormatValidated":true}`
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	result, err := c.Generate(context.Background(), "summarize the sales report", Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !result.Success || result.PartialContent {
		t.Errorf("result = %+v, want a clean success", result)
	}
	if !result.ExecutableFormatValidated {
		t.Error("executableFormatValidated not decoded")
	}
	if result.Usage.TotalTokens != 70 || result.Usage.PromptTokens != 9 {
		t.Errorf("usage = %+v, want worker accounting carried through", result.Usage)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0] != "Add expected output format" {
		t.Errorf("suggestions = %v, want the worker's own suggestion kept", result.Suggestions)
	}
	if c.Metrics().PartialRecoveries != 0 {
		t.Errorf("PartialRecoveries = %d, want 0", c.Metrics().PartialRecoveries)
	}
}

func TestGenerate_PartialResultObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPartialContent)
		body := `{"success":false,"error":"generation truncated",` +
			`"partialResult":{"prompt":` + strconv.Quote(executableFixture()) +
			`,"model":"gpt-4o-mini","provider":"openai","promptType":"coding"}}`
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	result, err := c.Generate(context.Background(), "summarize the sales report", Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !result.Success || !result.PartialContent || !result.RelaxedValidationUsed {
		t.Errorf("result = %+v, want recovered partial", result)
	}
	if result.Prompt != executableFixture() {
		t.Errorf("prompt = %q, want the partialResult prompt", result.Prompt)
	}
	if result.Model != "gpt-4o-mini" || result.Provider != "openai" {
		t.Errorf("model/provider = %s/%s, want partialResult values", result.Model, result.Provider)
	}
	if result.PromptType != "coding" {
		t.Errorf("promptType = %q, want the worker's", result.PromptType)
	}
	if result.ValidationWarning != "generation truncated" {
		t.Errorf("warning = %q", result.ValidationWarning)
	}
	if c.Metrics().PartialRecoveries != 1 {
		t.Errorf("PartialRecoveries = %d, want 1", c.Metrics().PartialRecoveries)
	}
}

func TestGenerate_ModelCorrection(t *testing.T) {
	var sentModel atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req workerRequest
		json.NewDecoder(r.Body).Decode(&req)
		sentModel.Store(req.Model)
		workerOK(t, executableFixture())(w, r)
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	result, err := c.Generate(context.Background(), "summarize the sales report", Options{
		Model: "llama-3.1-8b-instant",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.ModelCorrectionWarning == "" {
		t.Error("chat-only model substituted silently")
	}
	if !strings.Contains(result.ModelCorrectionWarning, "Executable Prompt") {
		t.Errorf("warning = %q", result.ModelCorrectionWarning)
	}
	if got := sentModel.Load(); got != "gemini-3-flash-preview" {
		t.Errorf("worker received model %v, want the default", got)
	}
	if c.Metrics().ModelCorrections != 1 {
		t.Errorf("ModelCorrections = %d, want 1", c.Metrics().ModelCorrections)
	}
}

func TestGenerate_FallbackModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req workerRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model == "gemini-3-flash-preview" {
			http.Error(w, "upstream overloaded", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(workerResponse{
			Success: true, Result: executableFixture(), Model: req.Model,
			Provider: "openai", ExecutableFormatValidated: true,
		})
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	result, err := c.Generate(context.Background(), "summarize the sales report", Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !result.Success || result.Model != "gpt-4o-mini" {
		t.Errorf("result = %+v, want success via gpt-4o-mini", result)
	}
	if !result.FallbackUsed {
		t.Error("FallbackUsed not set")
	}
	if c.Metrics().Fallbacks != 1 {
		t.Errorf("Fallbacks = %d, want 1", c.Metrics().Fallbacks)
	}
}

func TestGenerate_LocalFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	result, err := c.Generate(context.Background(), "plan a product launch", Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !result.Success || !result.FallbackUsed {
		t.Errorf("result = %+v, want local fallback success", result)
	}
	if result.Model != "local-fallback" || result.Provider != "local" {
		t.Errorf("model/provider = %s/%s", result.Model, result.Provider)
	}
	if !strings.HasPrefix(result.Prompt, "Task to perform: plan a product launch") {
		t.Errorf("local prompt = %q", result.Prompt)
	}
	if !strings.Contains(result.Prompt, "Requirements:") || !strings.Contains(result.Prompt, "Format:") {
		t.Error("local template missing structure sections")
	}
	if result.Error == "" {
		t.Error("original error not preserved")
	}
}

func TestGenerate_LocalFallbackDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := DefaultConfig(srv.URL)
	cfg.FallbackToLocal = false
	c := NewClient(cfg)

	result, err := c.Generate(context.Background(), "plan a product launch", Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Success {
		t.Error("Success = true with fallback disabled and worker down")
	}
	if result.Error == "" {
		t.Error("failure result carries no error detail")
	}
}

func TestGenerate_PartialRecovery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"Task to perform: partially streamed prompt body","mod`))
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	result, err := c.Generate(context.Background(), "stream something", Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !result.Success || !result.PartialContent {
		t.Errorf("result = %+v, want partial success", result)
	}
	if !strings.Contains(result.Prompt, "partially streamed prompt body") {
		t.Errorf("prompt = %q", result.Prompt)
	}
	if c.Metrics().PartialRecoveries == 0 {
		t.Error("partial recovery not counted")
	}
}

func TestGenerate_InputErrors(t *testing.T) {
	c := NewClient(DefaultConfig("http://worker.test"))

	if _, err := c.Generate(context.Background(), "   ", Options{}); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("empty prompt error = %v, want ErrEmptyPrompt", err)
	}
	if _, err := c.Generate(context.Background(), "score this", Options{ScoreOnly: true}); !errors.Is(err, ErrScoringViaGenerator) {
		t.Errorf("score-only error = %v, want ErrScoringViaGenerator", err)
	}
}

func TestGenerate_CacheHit(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		workerOK(t, executableFixture())(w, r)
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	ctx := context.Background()

	first, err := c.Generate(ctx, "summarize the sales report", Options{})
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	second, err := c.Generate(ctx, "summarize the sales report", Options{})
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("worker called %d times, want 1", calls.Load())
	}
	if second.Prompt != first.Prompt {
		t.Error("cached prompt differs")
	}
	if second.RequestID == first.RequestID {
		t.Error("cached result reuses request ID")
	}
	if c.Metrics().CacheHits != 1 {
		t.Errorf("CacheHits = %d, want 1", c.Metrics().CacheHits)
	}

	c.ClearCache()
	if _, err := c.Generate(ctx, "summarize the sales report", Options{}); err != nil {
		t.Fatalf("post-clear Generate failed: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("worker called %d times after cache clear, want 2", calls.Load())
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(HealthStatus{
			Status:          "ok",
			Models:          5,
			AvailableModels: AllowedModels(false),
			Version:         "2.0",
			Architecture:    "worker",
		})
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL + "/"))
	status, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if status.Status != "ok" || status.Models != 5 {
		t.Errorf("status = %+v", status)
	}
}

func TestHealth_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	if _, err := c.Health(context.Background()); err == nil {
		t.Error("Health succeeded against a down worker")
	}
}
