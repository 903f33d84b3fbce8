package domain

import (
	"strings"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

// RewriteLine decides the verdict for one line given its segments. A line is
// rewritten only when it carries exactly one parenthesized include/require
// statement and nothing else but whitespace, comments and an optional
// trailing ?> close tag. Every other case, including malformed or ambiguous
// code, degrades to Unchanged.
//
// The rewrite is applied to the original line text at the matched span, so
// whitespace and comment bytes outside the statement survive untouched. The
// argument is kept verbatim, inner whitespace included; the keyword keeps its
// original casing.
func RewriteLine(line string, segments []m.Segment) m.LineVerdict {
	kinds := kindByOffset(line, segments)

	match, ok := matchStatement(line, kinds)
	if !ok || !onlyTriviaOutside(line, kinds, match) {
		return m.Unchanged()
	}

	// The inserted separator collapses into the argument's own leading
	// whitespace when it has any, so `kw( 'a' );` becomes `kw 'a' ;`.
	sep := " "
	if len(match.Argument) > 0 && (match.Argument[0] == ' ' || match.Argument[0] == '\t') {
		sep = ""
	}

	return m.Rewritten(line[:match.Start] + match.Keyword + sep + match.Argument + ";" + line[match.End:])
}

// kindByOffset expands the segment partition into a per-byte kind lookup.
func kindByOffset(line string, segments []m.Segment) []m.SegmentKind {
	kinds := make([]m.SegmentKind, 0, len(line))

	for _, seg := range segments {
		for i := 0; i < len(seg.Text); i++ {
			kinds = append(kinds, seg.Kind)
		}
	}

	return kinds
}

// matchStatement locates the first rewritable statement on the line:
// keyword, optional whitespace, balanced parenthesized argument, optional
// whitespace, semicolon. Parentheses and the semicolon only count at code
// offsets, so delimiters inside string literals or comments embedded in the
// argument never confuse the scan. Unbalanced parentheses are a non-match.
func matchStatement(line string, kinds []m.SegmentKind) (m.RewriteMatch, bool) {
	start, keyword := findKeyword(line, kinds)
	if start < 0 {
		return m.RewriteMatch{}, false
	}

	i := start + len(keyword)
	i = skipCodeSpaces(line, kinds, i)

	if i >= len(line) || kinds[i] != m.SegmentCode || line[i] != '(' {
		return m.RewriteMatch{}, false
	}

	i++
	argStart := i
	depth := 1

	for i < len(line) {
		if kinds[i] == m.SegmentCode {
			switch line[i] {
			case '(':
				depth++
			case ')':
				depth--
			}

			if depth == 0 {
				break
			}
		}

		i++
	}

	if depth != 0 {
		return m.RewriteMatch{}, false
	}

	argEnd := i
	i = skipCodeSpaces(line, kinds, i+1)

	if i >= len(line) || kinds[i] != m.SegmentCode || line[i] != ';' {
		return m.RewriteMatch{}, false
	}

	return m.RewriteMatch{
		Keyword:  line[start : start+len(keyword)],
		Argument: line[argStart:argEnd],
		Start:    start,
		End:      i + 1,
	}, true
}

// findKeyword returns the offset and matched text of the first
// whole-identifier include/require keyword at a code offset. Matching is
// case-insensitive; the returned text keeps the source casing.
func findKeyword(line string, kinds []m.SegmentKind) (int, string) {
	for i := 0; i < len(line); i++ {
		if kinds[i] != m.SegmentCode {
			continue
		}

		if i > 0 && kinds[i-1] == m.SegmentCode && isIdentChar(line[i-1]) {
			continue
		}

		for _, kw := range m.Keywords {
			end := i + len(kw)
			if end > len(line) || !strings.EqualFold(line[i:end], string(kw)) {
				continue
			}

			if end < len(line) && kinds[end] == m.SegmentCode && isIdentChar(line[end]) {
				continue
			}

			return i, line[i:end]
		}
	}

	return -1, ""
}

// onlyTriviaOutside verifies the single-statement safety rule: outside the
// matched span the line may carry only whitespace code, comments and one
// trailing ?> close tag. A string literal outside the span is extra code.
func onlyTriviaOutside(line string, kinds []m.SegmentKind, match m.RewriteMatch) bool {
	var before, after strings.Builder

	for i := 0; i < len(line); i++ {
		if i >= match.Start && i < match.End {
			continue
		}

		switch kinds[i] {
		case m.SegmentLineComment, m.SegmentBlockComment:
		case m.SegmentStringLiteral:
			return false
		case m.SegmentCode:
			if i < match.Start {
				before.WriteByte(line[i])
			} else {
				after.WriteByte(line[i])
			}
		}
	}

	if strings.TrimSpace(before.String()) != "" {
		return false
	}

	trailing := strings.TrimSpace(after.String())

	return trailing == "" || trailing == "?>"
}

func skipCodeSpaces(line string, kinds []m.SegmentKind, i int) int {
	for i < len(line) && kinds[i] == m.SegmentCode && (line[i] == ' ' || line[i] == '\t') {
		i++
	}

	return i
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
