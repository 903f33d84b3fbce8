package controller

import (
	"time"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

type tickMsg time.Time

// Message types.
type noteMsg struct {
	text string
}

type runInfoMsg struct {
	files   int
	threads int
	dryRun  bool
}

type fileResultMsg struct {
	result m.FileResult
}

type summaryMsg struct {
	summary m.Summary
	dryRun  bool
	backup  bool
}
