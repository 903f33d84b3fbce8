package model

// Path represents a file system path.
type Path string

// FileResult holds the rewriting outcome for a single PHP file.
type FileResult struct {
	Path         Path
	ChangedLines int
	TotalLines   int
	// InBlockComment reports that the file ended inside an unterminated
	// /* ... */ comment. The rewritten output is still valid; the flag is a
	// hint of malformed or truncated input surfaced as a warning.
	InBlockComment bool
	// Err records a filesystem failure for this file. Rewriting decisions
	// never error; a failing file is reported and skipped.
	Err error
}

// Changed reports whether any line of the file was rewritten.
func (r FileResult) Changed() bool {
	return r.ChangedLines > 0
}

// Summary aggregates a whole run across files.
type Summary struct {
	Files        int
	ChangedFiles int
	ChangedLines int
	Failed       int
}

// Add folds one file's result into the summary.
func (s *Summary) Add(r FileResult) {
	s.Files++

	if r.Err != nil {
		s.Failed++
		return
	}

	if r.Changed() {
		s.ChangedFiles++
		s.ChangedLines += r.ChangedLines
	}
}
