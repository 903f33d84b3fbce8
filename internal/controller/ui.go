// Package controller provides output adapters for displaying rewrite results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	m "github.com/utilmind/replace-php-includes/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRewrite StartMode = iota
	ModeEstimate
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRewriteMode sets the UI to live rewrite-progress mode.
func WithRewriteMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRewrite
	}
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// UI defines the interface for displaying rewrite progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// DisplayNote surfaces a discovery warning (missing path, skipped
	// directory, explicitly provided non-.php file).
	DisplayNote(note string)
	// DisplayRunInfo announces the file count and worker count for a run.
	DisplayRunInfo(files, threads int, dryRun bool)
	// DisplayFileResult reports one processed file, including unterminated
	// block comment warnings and per-file errors.
	DisplayFileResult(result m.FileResult)
	// DisplayEstimation renders the per-file rewritable line counts.
	DisplayEstimation(results []m.FileResult, err error) error
	// DisplaySummary renders the end-of-run totals.
	DisplaySummary(summary m.Summary, dryRun, backup bool)
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
