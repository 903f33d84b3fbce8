package domain

import (
	"fmt"
	"io/fs"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/utilmind/replace-php-includes/internal/adapter"
	"github.com/utilmind/replace-php-includes/internal/controller"
	m "github.com/utilmind/replace-php-includes/internal/model"
)

const defaultFilePerm fs.FileMode = 0o644

// EstimateArgs holds the parameters for an estimation run.
type EstimateArgs struct {
	Paths   []m.Path
	Exclude []string
}

// RewriteArgs holds the parameters for a rewrite run.
type RewriteArgs struct {
	EstimateArgs
	DryRun  bool
	Backup  bool
	Threads int
}

// Workflow defines the interface for include-rewriting operations.
type Workflow interface {
	// Rewrite processes the resolved files, persisting changed ones unless
	// DryRun is set.
	Rewrite(args RewriteArgs) error
	// Estimate reports per-file rewritable line counts without writing.
	Estimate(args EstimateArgs) error
}

type workflow struct {
	fsAdapter adapter.PHPSourceFSAdapter
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(fsAdapter adapter.PHPSourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
	}
}

// Rewrite discovers the target files and processes them with a bounded worker
// pool. Files are independent, so processing is parallel across files; each
// file itself is a strict top-to-bottom fold. Per-file failures are reported
// and never abort the run.
func (w *workflow) Rewrite(args RewriteArgs) error {
	files, notes, err := w.fsAdapter.Discover(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(controller.WithRewriteMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	for _, note := range notes {
		w.ui.DisplayNote(note)
	}

	w.ui.DisplayRunInfo(len(files), threads, args.DryRun)

	results := make(chan m.FileResult, len(files))

	var g errgroup.Group

	g.SetLimit(threads)

	for _, path := range files {
		path := path

		g.Go(func() error {
			results <- w.processFile(path, args)

			return nil
		})
	}

	go func() {
		_ = g.Wait()

		close(results)
	}()

	// Collect on this goroutine so UI calls stay single-threaded.
	var summary m.Summary

	for result := range results {
		w.ui.DisplayFileResult(result)
		summary.Add(result)
	}

	w.ui.DisplaySummary(summary, args.DryRun, args.Backup)

	return nil
}

// Estimate runs the rewriter over every file without persisting anything.
func (w *workflow) Estimate(args EstimateArgs) error {
	files, notes, err := w.fsAdapter.Discover(args.Paths, args.Exclude)
	if err != nil {
		return w.ui.DisplayEstimation(nil, err)
	}

	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	for _, note := range notes {
		w.ui.DisplayNote(note)
	}

	results := make([]m.FileResult, 0, len(files))

	for _, path := range files {
		content, err := w.fsAdapter.ReadFile(path)
		if err != nil {
			results = append(results, m.FileResult{
				Path: path,
				Err:  fmt.Errorf("reading %s: %w", path, err),
			})

			continue
		}

		_, result := RewriteSource(path, content)
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	return w.ui.DisplayEstimation(results, nil)
}

// processFile rewrites one file and persists the result when something
// changed. Filesystem failures land in FileResult.Err; the rewriting itself
// cannot fail.
func (w *workflow) processFile(path m.Path, args RewriteArgs) m.FileResult {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.FileResult{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
	}

	out, result := RewriteSource(path, content)
	if !result.Changed() || args.DryRun {
		return result
	}

	if args.Backup {
		if _, err := w.fsAdapter.Backup(path); err != nil {
			result.Err = fmt.Errorf("backing up %s: %w", path, err)

			return result
		}
	}

	perm := defaultFilePerm
	if info, err := w.fsAdapter.FileInfo(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.fsAdapter.WriteFile(path, out, perm); err != nil {
		result.Err = fmt.Errorf("writing %s: %w", path, err)
	}

	return result
}
