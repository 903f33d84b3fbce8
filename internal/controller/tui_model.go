package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/utilmind/replace-php-includes/internal/model"
)

const recentFilesShown = 8

// rewriteModel handles the TUI display while files are being rewritten.
type rewriteModel struct {
	width       int
	spin        spinner.Model
	progressBar progress.Model
	totalFiles  int
	threads     int
	dryRun      bool
	completed   int
	notes       []string
	recent      []m.FileResult
	summary     m.Summary
	backup      bool
	finished    bool
	rendered    bool
}

func newRewriteModel() rewriteModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return rewriteModel{
		width:       80,
		spin:        spin,
		progressBar: prog,
	}
}

func (md rewriteModel) Init() tea.Cmd {
	return tea.Batch(
		md.spin.Tick,
		tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
			return tickMsg(t)
		}),
	)
}

func (md rewriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		md.width = msg.Width
		md.rendered = true

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return md, tea.Quit
		}

	case tickMsg:
		md.rendered = true

		return md, tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case spinner.TickMsg:
		md.spin, cmd = md.spin.Update(msg)

	case noteMsg:
		md.notes = append(md.notes, msg.text)

	case runInfoMsg:
		md.totalFiles = msg.files
		md.threads = msg.threads
		md.dryRun = msg.dryRun
		md.completed = 0

	case fileResultMsg:
		md.completed++

		if msg.result.Changed() || msg.result.Err != nil || msg.result.InBlockComment {
			md.recent = append(md.recent, msg.result)
			if len(md.recent) > recentFilesShown {
				md.recent = md.recent[len(md.recent)-recentFilesShown:]
			}
		}

	case summaryMsg:
		md.summary = msg.summary
		md.dryRun = msg.dryRun
		md.backup = msg.backup
		md.finished = true

		return md, tea.Quit
	}

	return md, cmd
}

func (md rewriteModel) View() string {
	if !md.rendered {
		return "Scanning PHP files…\n"
	}

	if md.finished {
		return md.viewSummary()
	}

	return md.viewProgress()
}

func (md rewriteModel) viewProgress() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render(md.spin.View() + "phpinc — rewriting include/require calls")

	mode := ""
	if md.dryRun {
		mode = "  •  dry run"
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s  •  Workers: %s%s",
		accentStyle.Render(fmt.Sprintf("%d", md.completed)),
		accentStyle.Render(fmt.Sprintf("%d", md.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", md.threads)),
		mode,
	))

	percent := 0.0
	if md.totalFiles > 0 {
		percent = float64(md.completed) / float64(md.totalFiles)
	}

	progressStyle := lipgloss.NewStyle().Padding(0, 2)
	progressView := progressStyle.Render(md.progressBar.ViewAs(percent))

	recentBox := md.renderRecentBox()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(md.width)

	footer := footerStyle.Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		recentBox,
		footer,
	)
}

func (md rewriteModel) renderRecentBox() string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(md.width - 4)

	if len(md.recent) == 0 && len(md.notes) == 0 {
		return contentStyle.Render(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("no changes yet"))
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	lines := make([]string, 0, len(md.notes)+len(md.recent))

	for _, note := range md.notes {
		lines = append(lines, warnStyle.Render("! "+note))
	}

	for _, result := range md.recent {
		switch {
		case result.Err != nil:
			lines = append(lines, errStyle.Render(fmt.Sprintf("✗ %s: %v", result.Path, result.Err)))
		case result.InBlockComment:
			lines = append(lines, warnStyle.Render(fmt.Sprintf("! %s: unterminated block comment", result.Path)))
		default:
			lines = append(lines, pathStyle.Render(fmt.Sprintf("✓ %s: %d line(s)", result.Path, result.ChangedLines)))
		}
	}

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (md rewriteModel) viewSummary() string {
	headStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	head := "Done"
	if md.dryRun {
		head = "Dry run"
	}

	body := fmt.Sprintf("changed %d line(s) across %d/%d file(s)",
		md.summary.ChangedLines, md.summary.ChangedFiles, md.summary.Files)

	if md.backup && !md.dryRun && md.summary.ChangedFiles > 0 {
		body += "\nbackups created as *.bak for changed files"
	}

	if md.summary.Failed > 0 {
		body += fmt.Sprintf("\n%d file(s) failed", md.summary.Failed)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headStyle.Render(head),
		bodyStyle.Render(body),
	) + "\n"
}
