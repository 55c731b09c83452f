/*
Package session orchestrates one crafting flow: generate a prompt, classify
it, rank the tools, record history, and score the result. It carries the
cross-call state the pipeline needs, such as which tool was last recommended
so a later manual selection can be judged against it.
*/
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/vshagun/promptcraft/internal/classify"
	"github.com/vshagun/promptcraft/internal/generator"
	"github.com/vshagun/promptcraft/internal/platform"
	"github.com/vshagun/promptcraft/internal/prefs"
	"github.com/vshagun/promptcraft/internal/ranking"
	"github.com/vshagun/promptcraft/internal/scoring"
	"github.com/vshagun/promptcraft/internal/storage"
)

// Session runs the crafting pipeline and tracks the state that links one
// command to the next.
type Session struct {
	gen    *generator.Client
	scorer *scoring.Client
	prefs  *prefs.Manager
	store  storage.Store

	// CurrentRecommendedTool is the top-ranked tool from the last Craft call.
	CurrentRecommendedTool string

	lastPrompt      string
	lastTaskType    string
	lastExplanation string
}

// New creates a session over the given clients and store.
func New(gen *generator.Client, scorer *scoring.Client, manager *prefs.Manager, store storage.Store) *Session {
	return &Session{
		gen:          gen,
		scorer:       scorer,
		prefs:        manager,
		store:        store,
		lastTaskType: classify.TaskGeneral,
	}
}

// CraftResult is the combined outcome of one crafting flow.
type CraftResult struct {
	Generation      generator.Result     `json:"generation"`
	Analysis        classify.Analysis    `json:"analysis"`
	Ranking         []ranking.RankedTool `json:"ranking"`
	RecommendedTool string               `json:"recommendedTool"`
	Explanation     string               `json:"explanation,omitempty"`

	// Score is nil when scoring was skipped (a request was already in flight).
	Score *scoring.Score `json:"score,omitempty"`
}

// Craft generates a prompt for the task, classifies the generated prompt,
// ranks the tools, and scores the result. Generation failures degrade inside
// the generator; the only errors surfaced here are empty input and misuse.
func (s *Session) Craft(ctx context.Context, task string, opts generator.Options) (CraftResult, error) {
	gen, err := s.gen.Generate(ctx, task, opts)
	if err != nil {
		return CraftResult{}, err
	}

	s.prefs.SetLastPromptLength(len(gen.Prompt))
	s.lastPrompt = gen.Prompt

	analysis := classify.Classify(gen.Prompt)
	s.lastTaskType = analysis.TaskType

	ranked := ranking.Rank(analysis, s.prefs)
	result := CraftResult{
		Generation: gen,
		Analysis:   analysis,
		Ranking:    ranked,
	}

	if len(ranked) > 0 {
		top := ranked[0]
		result.RecommendedTool = top.ToolID
		if profile, ok := ranking.ByID(top.ToolID); ok {
			result.Explanation = profile.Name + ": " + profile.Explanation
		}
		s.CurrentRecommendedTool = top.ToolID
		s.lastExplanation = result.Explanation

		if err := s.prefs.LogSelection(analysis.TaskType, top.ToolID, true, result.Explanation); err != nil {
			log.Printf("Warning: failed to log recommendation: %v", err)
		}
	}

	if err := s.store.SavePrompt(storage.PromptRecord{
		Timestamp: time.Now(),
		Input:     task,
		Output:    gen.Prompt,
		Model:     gen.Model,
	}); err != nil {
		log.Printf("Warning: failed to save prompt history: %v", err)
	}

	score, err := s.scorer.Score(ctx, gen.Prompt)
	switch {
	case errors.Is(err, scoring.ErrScoreInFlight):
		// Dropped, not queued. The crafted prompt stands on its own.
	case err != nil:
		log.Printf("Warning: scoring failed: %v", err)
	default:
		result.Score = &score
	}

	return result, nil
}

// SelectTool records a manual tool choice for the last crafted prompt and
// returns the platform to launch. The choice counts as recommended only when
// it matches the current recommendation.
func (s *Session) SelectTool(toolID string) (platform.Platform, error) {
	p, ok := platform.ByID(toolID)
	if !ok {
		return platform.Platform{}, fmt.Errorf("unknown tool %q", toolID)
	}

	explanation := s.lastExplanation
	if profile, found := ranking.ByID(toolID); found {
		explanation = profile.Name + ": " + profile.Explanation
	}

	wasRecommended := toolID == s.CurrentRecommendedTool
	if err := s.prefs.LogSelection(s.lastTaskType, toolID, wasRecommended, explanation); err != nil {
		log.Printf("Warning: failed to log selection: %v", err)
	}
	if err := s.prefs.SavePreference(s.lastTaskType, toolID, explanation); err != nil {
		log.Printf("Warning: failed to save preference: %v", err)
	}

	return p, nil
}

// LastPrompt returns the most recently crafted prompt text.
func (s *Session) LastPrompt() string {
	return s.lastPrompt
}

// LastTaskType returns the task type of the most recent classification.
func (s *Session) LastTaskType() string {
	return s.lastTaskType
}
