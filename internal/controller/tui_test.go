package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// send while running should go through program.Send
	tui.DisplayRunInfo(2, 1, false)

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_SendBeforeStart_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be a no-op
	tui.DisplayFileResult(m.FileResult{Path: "a.php", ChangedLines: 1})
	tui.Close()
	tui.Wait()
}

func TestTUI_EstimateModeNeedsNoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithEstimateMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	err := tui.DisplayEstimation([]m.FileResult{
		{Path: "b.php", ChangedLines: 2},
		{Path: "a.php", ChangedLines: 1},
	}, nil)
	if err != nil {
		t.Fatalf("DisplayEstimation error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "3 rewritable line(s) across 2 file(s)") {
		t.Fatalf("estimation output missing totals:\n%s", out)
	}

	if strings.Index(out, "a.php") > strings.Index(out, "b.php") {
		t.Fatalf("estimation rows must be sorted by path:\n%s", out)
	}

	tui.Close()
}
