package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/TuftsBCB/taxares/internal/config"
	"github.com/TuftsBCB/taxares/newick"
	"github.com/TuftsBCB/taxares/replicate"
	"github.com/TuftsBCB/taxares/resiliency"
)

// App is a configured pipeline run.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New returns an App that logs to logW using the level and format in cfg.
func New(cfg *config.Config, logW io.Writer) *App {
	return &App{
		cfg:    cfg,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
	}
}

// Run executes the pipeline. Output files are checked before any tree is read
// so a bad output path fails fast.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	outs, err := a.outputs()
	if err != nil {
		return err
	}

	ref, err := newick.ReadFile(a.cfg.MainTree, "main")
	if err != nil {
		return fmt.Errorf("Failed to read the main tree: %w", err)
	}
	if err := ref.CheckUniqueLeaves(); err != nil {
		return err
	}
	a.logger.Info("Read main tree.", "path", a.cfg.MainTree,
		"taxa", len(ref.LeafLabels()))

	manifest, err := a.manifest()
	if err != nil {
		return err
	}
	if err := resiliency.CheckTaxa(ref.LeafLabels(), manifest.Taxa()); err != nil {
		return err
	}
	if err := resiliency.CheckReplicateCounts(manifest.Counts()); err != nil {
		return err
	}
	manifest.Sort()
	if err := manifest.Resolve(); err != nil {
		return err
	}

	replicates, err := replicate.Load(ctx, manifest, a.cfg.Workers)
	if err != nil {
		return err
	}
	// The manifest checks above ran before any file was parsed; this repeats
	// them on the loaded trees and checks every taxon was really removed.
	if err := resiliency.Validate(ref, replicates); err != nil {
		return err
	}
	a.logger.Info("Read jackknifed trees.", "taxa", len(replicates),
		"trees", treeCount(replicates))

	scorer := &resiliency.Scorer{
		Workers:   a.cfg.Workers,
		CacheSize: a.cfg.CacheSize,
		Logger:    a.logger,
	}
	scores, err := scorer.Score(ref, replicates)
	if err != nil {
		return err
	}
	undefined := 0
	for _, s := range scores {
		if !s.Defined() {
			undefined++
		}
	}
	a.logger.Info("Scored clades.", "clades", len(scores), "unscored", undefined)

	if err := a.write(ref, outs); err != nil {
		return err
	}
	a.logger.Info("Done.", "elapsed", time.Since(start))
	return nil
}

// manifest finds the replicate tree files, preferring the file of file names
// over the directory layout.
func (a *App) manifest() (replicate.Manifest, error) {
	if a.cfg.ReplicateFOFN != "" {
		m, err := replicate.ReadFOFNFile(a.cfg.ReplicateFOFN)
		if err != nil {
			return nil, fmt.Errorf("Failed to read the jackknifed tree list "+
				"'%s': %w", a.cfg.ReplicateFOFN, err)
		}
		a.logger.Debug("Read jackknifed tree list.", "path", a.cfg.ReplicateFOFN)
		return m, nil
	}

	m, err := replicate.ScanDir(a.cfg.ReplicateDir, a.cfg.ReplicateExt)
	if err != nil {
		return nil, fmt.Errorf("Failed to find jackknifed trees in '%s': %w",
			a.cfg.ReplicateDir, err)
	}
	a.logger.Debug("Scanned jackknifed tree directory.", "path", a.cfg.ReplicateDir,
		"ext", a.cfg.ReplicateExt)
	return m, nil
}

func treeCount(replicates map[string][]*newick.Tree) int {
	n := 0
	for _, trees := range replicates {
		n += len(trees)
	}
	return n
}
