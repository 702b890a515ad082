package initializer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/hytalemodding/modinit/internal/fetcher"
	"github.com/hytalemodding/modinit/internal/prompt"
	"github.com/hytalemodding/modinit/internal/writer"
)

// Phase labels reported to the progress sink, in order.
const (
	PhaseDownload = "Downloading template"
	PhaseExtract  = "Extracting template"
	PhaseCopy     = "Copying files"
	PhaseApply    = "Applying configuration"
)

const (
	workspacePattern = "hytale-mod-*"
	archiveName      = "template.zip"
	extractDirName   = "extracted"
)

// TemplateFetcher downloads and unpacks the template archive.
type TemplateFetcher interface {
	Download(ctx context.Context, url, destPath string) error
	Extract(archivePath, destDir string) error
}

// ProgressSink receives a label each time the run enters a new phase.
type ProgressSink interface {
	Phase(label string)
	Done()
}

// Runner holds the collaborators of a scaffolding run.
type Runner struct {
	Input    prompt.InputSource
	Progress ProgressSink
	Fetcher  TemplateFetcher
	Source   fetcher.Source

	// Exclude lists base names skipped when copying; nil uses
	// writer.DefaultExclude.
	Exclude []string

	// TempDir is where the workspace is created; empty uses os.TempDir.
	TempDir string

	Logger *log.Logger
}

// Result summarizes a successful run.
type Result struct {
	TargetDirectory string
	Files           []string
	Warnings        []string
}

// Run executes the scaffolding pipeline. It returns (nil, nil) when the user
// cancels input. Any error aborts the run; files already written to the
// target directory are left in place.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	cfg, err := r.Input.Collect(ctx)
	if errors.Is(err, prompt.ErrCancelled) {
		logger.Debug("input cancelled")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("collecting input: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ws, err := os.MkdirTemp(r.TempDir, workspacePattern)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(ws); rmErr != nil {
			logger.Warn("could not remove workspace", "path", ws, "error", rmErr)
		}
	}()
	logger.Debug("created workspace", "path", ws)

	progress := r.Progress
	if progress == nil {
		progress = nopProgress{}
	}
	defer progress.Done()

	progress.Phase(PhaseDownload)
	archive := filepath.Join(ws, archiveName)
	if err := r.Fetcher.Download(ctx, r.Source.URL, archive); err != nil {
		return nil, err
	}

	progress.Phase(PhaseExtract)
	extracted := filepath.Join(ws, extractDirName)
	if err := r.Fetcher.Extract(archive, extracted); err != nil {
		return nil, err
	}
	templateRoot, err := fetcher.TemplateRoot(extracted, r.Source)
	if err != nil {
		return nil, err
	}

	opts := []writer.Option{writer.WithLogger(logger)}
	if r.Exclude != nil {
		opts = append(opts, writer.WithExclude(r.Exclude))
	}
	w := writer.New(opts...)

	progress.Phase(PhaseCopy)
	if err := w.Copy(templateRoot, cfg.TargetDirectory); err != nil {
		return nil, err
	}

	progress.Phase(PhaseApply)
	applied, err := w.Apply(cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		TargetDirectory: cfg.TargetDirectory,
		Files:           applied.Files,
		Warnings:        applied.Warnings,
	}, nil
}

type nopProgress struct{}

func (nopProgress) Phase(string) {}
func (nopProgress) Done()        {}
