package domain

import (
	"bytes"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

// RewriteSource runs the scanner and rewriter over a whole file's content and
// returns the rewritten text plus the per-file result. Lines are processed
// strictly top to bottom because the block-comment state is a left-to-right
// fold over the file; every line threads the state even when it cannot match.
// Per-line terminators (\n, \r\n, or none on the last line) are preserved.
func RewriteSource(path m.Path, content []byte) ([]byte, m.FileResult) {
	result := m.FileResult{Path: path}

	var out bytes.Buffer

	out.Grow(len(content))

	state := m.ScanState{}

	for offset := 0; offset < len(content); {
		line, eol, next := nextLine(content, offset)
		offset = next

		segments, newState := ScanLine(line, state)
		state = newState

		verdict := RewriteLine(line, segments)
		if verdict.Rewritten {
			result.ChangedLines++
			out.WriteString(verdict.Text)
		} else {
			out.WriteString(line)
		}

		out.WriteString(eol)

		result.TotalLines++
	}

	result.InBlockComment = state.InBlockComment

	return out.Bytes(), result
}

// nextLine splits off one physical line starting at offset, returning the
// line content without its terminator, the terminator itself, and the offset
// of the following line.
func nextLine(content []byte, offset int) (line, eol string, next int) {
	i := bytes.IndexByte(content[offset:], '\n')
	if i < 0 {
		return string(content[offset:]), "", len(content)
	}

	end := offset + i
	next = end + 1

	if end > offset && content[end-1] == '\r' {
		return string(content[offset : end-1]), "\r\n", next
	}

	return string(content[offset:end]), "\n", next
}
