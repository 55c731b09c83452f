package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

const (
	scoreTimeout = 8 * time.Second
	defaultTool  = "chatgpt"
)

// ErrScoreInFlight is returned when a scoring request is already running.
// Scoring is single-flight; callers drop the request rather than queue it.
var ErrScoreInFlight = errors.New("scoring: a scoring request is already in flight")

// Client scores prompts against the remote worker, degrading to the local
// heuristic on any failure.
type Client struct {
	workerURL  string
	tool       string
	timeout    time.Duration
	httpClient *http.Client
	inFlight   atomic.Bool
}

// NewClient creates a scoring client for the given worker base URL.
func NewClient(workerURL string) *Client {
	return &Client{
		workerURL:  workerURL,
		tool:       defaultTool,
		timeout:    scoreTimeout,
		httpClient: &http.Client{},
	}
}

// SetTool sets the tool identity the prompt is scored against.
func (c *Client) SetTool(tool string) {
	if tool != "" {
		c.tool = tool
	}
}

type scoreRequest struct {
	Prompt string `json:"prompt"`
	Tool   string `json:"tool"`
}

// scoreResponse is the /score wire format. The component fields decode
// through Score's tags; isFallback marks a score the worker itself had to
// estimate, which callers see as mock data.
type scoreResponse struct {
	Score
	IsFallback bool `json:"isFallback"`
}

// Score evaluates a prompt. Only one request runs at a time; a second call
// while one is in flight returns ErrScoreInFlight. Remote failures are not
// errors: the local heuristic fills in and the result is flagged IsMockData.
func (c *Client) Score(ctx context.Context, prompt string) (Score, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Score{}, ErrScoreInFlight
	}
	defer c.inFlight.Store(false)

	remote, err := c.scoreRemote(ctx, prompt)
	if err != nil {
		log.Printf("Warning: remote scoring failed, using heuristic: %v", err)
		score := HeuristicScore(prompt)
		score.Tool = c.tool
		score.IsMockData = true
		return score, nil
	}
	return remote, nil
}

func (c *Client) scoreRemote(ctx context.Context, prompt string) (Score, error) {
	payload, err := json.Marshal(scoreRequest{Prompt: prompt, Tool: c.tool})
	if err != nil {
		return Score{}, fmt.Errorf("encode request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := strings.TrimRight(c.workerURL, "/") + "/score"
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Score{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Score{}, fmt.Errorf("score request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Score{}, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var wire scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Score{}, fmt.Errorf("decode score: %w", err)
	}
	score := wire.Score
	if wire.IsFallback {
		score.IsMockData = true
	}

	// The worker's totalScore is not trusted; the components are the source
	// of truth and the total must stay additive.
	score.TotalScore = score.Clarity + score.Structure + score.Context
	if score.Grade == "" {
		score.Grade = gradeFor(score.TotalScore)
	}
	if score.Feedback == "" {
		score.Feedback = feedbackFor(score.TotalScore, score.Grade)
	}
	score.Tool = c.tool
	return score, nil
}
