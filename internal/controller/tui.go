package controller

import (
	"fmt"
	"io"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/utilmind/replace-php-includes/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	runErr  error
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI. Rewrite mode launches the live progress program;
// estimation output is short and rendered directly without one.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.mode == ModeEstimate {
		return nil
	}

	return t.startWithModel(newRewriteModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})
	t.started = true

	go func() {
		_, t.runErr = t.program.Run()

		close(t.done)
	}()

	return nil
}

// Close asks the program to quit and waits for the final frame.
func (t *TUI) Close() {
	if !t.started {
		return
	}

	t.program.Quit()
	<-t.done

	if t.runErr != nil {
		_, _ = fmt.Fprintf(t.output, "ui error: %v\n", t.runErr)
	}

	t.started = false
}

// Wait blocks until the running program finishes (user closes it).
func (t *TUI) Wait() {
	if !t.started {
		return
	}

	<-t.done
}

// DisplayNote surfaces a discovery warning.
func (t *TUI) DisplayNote(note string) {
	t.send(noteMsg{text: note})
}

// DisplayRunInfo announces the run parameters.
func (t *TUI) DisplayRunInfo(files, threads int, dryRun bool) {
	t.send(runInfoMsg{files: files, threads: threads, dryRun: dryRun})
}

// DisplayFileResult reports one processed file.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileResultMsg{result: result})
}

// DisplayEstimation prints the per-file rewritable line counts.
func (t *TUI) DisplayEstimation(results []m.FileResult, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)

		return err
	}

	sorted := make([]m.FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(6).
		Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	total := 0

	for _, result := range sorted {
		if result.Err != nil {
			_, _ = fmt.Fprintf(t.output, "ERROR: %s: %v\n", result.Path, result.Err)
			continue
		}

		total += result.ChangedLines

		_, _ = fmt.Fprintf(t.output, "%s  %s\n",
			countStyle.Render(fmt.Sprintf("%d", result.ChangedLines)),
			pathStyle.Render(string(result.Path)),
		)
	}

	_, _ = fmt.Fprintf(t.output, "\n%d rewritable line(s) across %d file(s)\n", total, len(sorted))

	return nil
}

// DisplaySummary forwards the end-of-run totals to the progress model, which
// renders its final frame and quits.
func (t *TUI) DisplaySummary(summary m.Summary, dryRun, backup bool) {
	t.send(summaryMsg{summary: summary, dryRun: dryRun, backup: backup})
}

// send delivers a message to the running program; a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	if !t.started {
		return
	}

	t.program.Send(msg)
}
