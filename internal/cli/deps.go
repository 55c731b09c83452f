/*
Package cli implements the promptcraft commands.

Each command follows the NewXxxCmd/runXxx split: the constructor declares
flags and usage, the run function does the work against the shared pipeline
built from ~/.promptcraft.json and the on-disk history store.
*/
package cli

import (
	"log"
	"time"

	"github.com/vshagun/promptcraft/internal/config"
	"github.com/vshagun/promptcraft/internal/generator"
	"github.com/vshagun/promptcraft/internal/prefs"
	"github.com/vshagun/promptcraft/internal/scoring"
	"github.com/vshagun/promptcraft/internal/session"
	"github.com/vshagun/promptcraft/internal/storage"
)

// deps is the wired pipeline shared by the commands.
type deps struct {
	cfg     *config.Config
	store   storage.Store
	prefs   *prefs.Manager
	gen     *generator.Client
	scorer  *scoring.Client
	session *session.Session
}

// buildDeps loads configuration and wires the pipeline. Storage failures are
// not fatal; the store degrades to empty state and commands keep working.
func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store := storage.NewStore()
	if err := store.Init(); err != nil {
		log.Printf("Warning: history storage unavailable: %v", err)
	}

	gen := generator.NewClient(generatorConfig(cfg))
	scorer := scoring.NewClient(cfg.WorkerURL)
	manager := prefs.NewManager(store)

	return &deps{
		cfg:     cfg,
		store:   store,
		prefs:   manager,
		gen:     gen,
		scorer:  scorer,
		session: session.New(gen, scorer, manager, store),
	}, nil
}

// generatorConfig maps the file configuration onto the generator client.
func generatorConfig(cfg *config.Config) generator.Config {
	out := generator.DefaultConfig(cfg.WorkerURL)
	if cfg.DefaultModel != "" {
		out.DefaultModel = cfg.DefaultModel
	}
	if cfg.TimeoutSeconds > 0 {
		out.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	out.StrictPromptMode = cfg.StrictPromptMode
	if cfg.MinPromptLength > 0 {
		out.MinPromptLength = cfg.MinPromptLength
	}
	out.FallbackToLocal = cfg.FallbackToLocal
	if len(cfg.FallbackModels) > 0 {
		out.FallbackModels = cfg.FallbackModels
	}
	return out
}

func (d *deps) close() {
	if err := d.store.Close(); err != nil {
		log.Printf("Warning: failed to close store: %v", err)
	}
}
