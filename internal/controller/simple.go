package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "github.com/utilmind/replace-php-includes/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayNote prints a discovery warning.
func (s *SimpleUI) DisplayNote(note string) {
	s.printf("WARNING: %s\n", note)
}

// DisplayRunInfo announces the run parameters.
func (s *SimpleUI) DisplayRunInfo(files, threads int, dryRun bool) {
	mode := ""
	if dryRun {
		mode = " (dry run)"
	}

	s.printf("Processing %d file(s) with %d worker(s)%s\n", files, threads, mode)
}

// DisplayFileResult reports one processed file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	if result.Err != nil {
		s.printf("ERROR: %s: %v\n", result.Path, result.Err)
		return
	}

	if result.InBlockComment {
		s.printf("WARNING: %s: unterminated block comment at end of file\n", result.Path)
	}

	if result.Changed() {
		s.printf("%s: changed %d line(s)\n", result.Path, result.ChangedLines)
	}
}

// DisplayEstimation prints the per-file rewritable line counts as a table.
func (s *SimpleUI) DisplayEstimation(results []m.FileResult, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	sorted := make([]m.FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Rewritable Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	totalLines := 0

	for _, result := range sorted {
		if result.Err != nil {
			s.printf("ERROR: %s: %v\n", result.Path, result.Err)
			continue
		}

		table.Append([]string{string(result.Path), fmt.Sprintf("%d", result.ChangedLines)})

		totalLines += result.ChangedLines
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("%d", totalLines),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySummary renders the end-of-run totals.
func (s *SimpleUI) DisplaySummary(summary m.Summary, dryRun, backup bool) {
	if dryRun {
		s.printf("\nDRY RUN: would change %d line(s) across %d/%d file(s).\n",
			summary.ChangedLines, summary.ChangedFiles, summary.Files)
		return
	}

	s.printf("\nDone: changed %d line(s) across %d/%d file(s).\n",
		summary.ChangedLines, summary.ChangedFiles, summary.Files)

	if backup && summary.ChangedFiles > 0 {
		s.printf("Backups created as *.bak (only for files that actually changed).\n")
	}

	if summary.Failed > 0 {
		s.printf("%d file(s) failed, see errors above.\n", summary.Failed)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
