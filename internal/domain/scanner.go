// Package domain contains the core line classification and rewriting logic.
package domain

import (
	"strings"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

// ScanLine classifies one physical line (without its terminator) into an
// ordered sequence of segments and returns the updated cross-line state.
// The segments cover the whole line with no gaps and no zero-length entries.
//
// The scan is a single left-to-right pass. When state.InBlockComment is set
// the line starts inside a /* ... */ comment carried over from the previous
// line and only the terminator is looked for until normal scanning resumes.
func ScanLine(line string, state m.ScanState) ([]m.Segment, m.ScanState) {
	var segments []m.Segment

	i := 0
	n := len(line)

	if state.InBlockComment {
		end := strings.Index(line, "*/")
		if end < 0 {
			if n > 0 {
				segments = append(segments, m.Segment{Kind: m.SegmentBlockComment, Text: line})
			}

			return segments, state
		}

		i = end + 2
		segments = append(segments, m.Segment{Kind: m.SegmentBlockComment, Text: line[:i]})
		state.InBlockComment = false
	}

	codeStart := i

	flushCode := func(end int) {
		if end > codeStart {
			segments = append(segments, m.Segment{Kind: m.SegmentCode, Text: line[codeStart:end]})
		}
	}

	for i < n {
		c := line[i]

		switch {
		case c == '\'' || c == '"':
			flushCode(i)

			end := scanStringLiteral(line, i)
			segments = append(segments, m.Segment{Kind: m.SegmentStringLiteral, Text: line[i:end]})
			i = end
			codeStart = end

		case c == '#' || (c == '/' && i+1 < n && line[i+1] == '/'):
			flushCode(i)
			segments = append(segments, m.Segment{Kind: m.SegmentLineComment, Text: line[i:]})

			return segments, state

		case c == '/' && i+1 < n && line[i+1] == '*':
			flushCode(i)

			end := strings.Index(line[i+2:], "*/")
			if end < 0 {
				segments = append(segments, m.Segment{Kind: m.SegmentBlockComment, Text: line[i:]})
				state.InBlockComment = true

				return segments, state
			}

			stop := i + 2 + end + 2
			segments = append(segments, m.Segment{Kind: m.SegmentBlockComment, Text: line[i:stop]})
			i = stop
			codeStart = stop

		default:
			i++
		}
	}

	flushCode(n)

	return segments, state
}

// scanStringLiteral returns the index one past the closing quote of the
// literal opening at line[start], or len(line) when the quote never closes
// on this line. PHP string literals do not span physical lines here, so an
// unterminated literal simply runs to end of line.
func scanStringLiteral(line string, start int) int {
	quote := line[start]

	for i := start + 1; i < len(line); i++ {
		if line[i] != quote {
			continue
		}

		// A quote preceded by an odd number of backslashes is escaped.
		backslashes := 0
		for j := i - 1; j > start && line[j] == '\\'; j-- {
			backslashes++
		}

		if backslashes%2 == 0 {
			return i + 1
		}
	}

	return len(line)
}
