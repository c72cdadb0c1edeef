package assembler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"montage/internal/catalog"
	"montage/internal/config"
	"montage/internal/logging"
	"montage/internal/manifest"
	"montage/internal/mixdown"
	"montage/internal/services"
	"montage/internal/timeline"
)

// Assembler builds project documents from asset manifests. The catalog store
// is optional; runs are simply not recorded when it is nil.
type Assembler struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *catalog.Store
}

// Options overrides the derived output locations of one assembly run.
// Empty fields fall back to the configured directories.
type Options struct {
	OutputPath    string
	MixOutputPath string
}

// RunResult summarizes one completed assembly run.
type RunResult struct {
	ProjectID      string
	ProjectPath    string
	MixRequestPath string
	TotalDuration  float64
	Validated      bool
	Validation     timeline.Result
	Warnings       []string
}

// New constructs an Assembler. logger may be nil; store may be nil to skip
// catalog recording.
func New(cfg *config.Config, logger *slog.Logger, store *catalog.Store) *Assembler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Assembler{cfg: cfg, logger: logger, store: store}
}

// Assemble runs the full pipeline for one manifest: resource table, track
// layout, document serialization, mix request derivation, optional
// post-write validation, and catalog recording. The project identifier is
// resolved exactly once so every output of the run agrees on it.
func (a *Assembler) Assemble(ctx context.Context, m *manifest.Manifest, opts Options) (*RunResult, error) {
	if m == nil {
		return nil, services.Wrap(services.ErrValidation, "timeline", "assemble", "asset manifest is required", nil)
	}

	projectID := m.ProjectID()
	ctx = services.WithJobID(services.WithComponent(ctx, "assembler"), projectID)
	logger := logging.WithContext(ctx, a.logger)

	projectPath, mixPath, err := a.resolvePaths(projectID, opts)
	if err != nil {
		return nil, err
	}

	if err := a.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "assembler", "prepare", "create output directories", err)
	}

	lock := flock.New(projectPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "assembler", "lock", fmt.Sprintf("acquire write lock for %s", projectPath), err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrTransient, "assembler", "lock", fmt.Sprintf("output %s is being written by another run", projectPath), nil)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if !a.cfg.Timeline.OverwriteExisting {
		if _, err := os.Stat(projectPath); err == nil {
			return nil, services.Wrap(services.ErrValidation, "assembler", "write", fmt.Sprintf("output %s already exists and overwrite is disabled", projectPath), nil)
		}
	}

	table := timeline.BuildResources(m)
	layout := timeline.LayoutTracks(m, table)
	total := timeline.TotalDuration(m)

	for _, warning := range table.Warnings() {
		logger.Warn(warning)
	}

	doc := &timeline.Document{
		ProjectID:     projectID,
		Title:         m.Title(),
		TotalDuration: total,
		Table:         table,
		Layout:        layout,
	}
	if err := doc.Write(projectPath); err != nil {
		return nil, services.Wrap(services.ErrTransient, "assembler", "write", "serialize project document", err)
	}
	logger.Info("project document written",
		logging.String("path", projectPath),
		logging.Int("resources", table.Len()),
		logging.Float64("total_duration", total))

	request := mixdown.Derive(m, projectID, a.cfg.Paths.AudioDir)
	if err := mixdown.Write(request, mixPath); err != nil {
		return nil, services.Wrap(services.ErrTransient, "assembler", "write", "serialize mix request", err)
	}
	logger.Info("mix request written", logging.String("path", mixPath))

	result := &RunResult{
		ProjectID:      projectID,
		ProjectPath:    projectPath,
		MixRequestPath: mixPath,
		TotalDuration:  total,
		Warnings:       table.Warnings(),
	}

	if a.cfg.Timeline.ValidateAfterWrite {
		result.Validated = true
		result.Validation = timeline.Validate(projectPath)
		if !result.Validation.Valid {
			logger.Error("document failed validation",
				logging.Int("errors", len(result.Validation.Errors)))
		}
	}

	if a.store != nil {
		if err := a.record(ctx, m, result); err != nil {
			logger.Warn("catalog record failed", logging.Error(err))
		}
	}

	return result, nil
}

func (a *Assembler) resolvePaths(projectID string, opts Options) (projectPath, mixPath string, err error) {
	projectPath = opts.OutputPath
	if projectPath == "" {
		projectPath = filepath.Join(a.cfg.Paths.TimelineDir, projectID+"_project.fcpxml")
	}
	projectPath, err = config.ExpandPath(projectPath)
	if err != nil {
		return "", "", services.Wrap(services.ErrConfiguration, "assembler", "prepare", "resolve project path", err)
	}

	mixPath = opts.MixOutputPath
	if mixPath == "" {
		mixPath = filepath.Join(a.cfg.Paths.AudioDir, projectID+"_mix_request.json")
	}
	mixPath, err = config.ExpandPath(mixPath)
	if err != nil {
		return "", "", services.Wrap(services.ErrConfiguration, "assembler", "prepare", "resolve mix request path", err)
	}
	return projectPath, mixPath, nil
}

func (a *Assembler) record(ctx context.Context, m *manifest.Manifest, result *RunResult) error {
	valid := true
	errorCount := 0
	warningCount := len(result.Warnings)
	if result.Validated {
		valid = result.Validation.Valid
		errorCount = len(result.Validation.Errors)
		warningCount += len(result.Validation.Warnings)
	}

	_, err := a.store.RecordRun(ctx, catalog.Run{
		JobID:          result.ProjectID,
		Title:          m.Title(),
		ProjectPath:    result.ProjectPath,
		MixRequestPath: result.MixRequestPath,
		TotalDuration:  result.TotalDuration,
		Valid:          valid,
		ErrorCount:     errorCount,
		WarningCount:   warningCount,
	})
	return err
}
