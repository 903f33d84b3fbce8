// Package model defines the data structures for PHP include rewriting.
package model

// SegmentKind represents the lexical classification of a span of a line.
type SegmentKind string

const (
	// SegmentCode represents plain PHP code outside strings and comments.
	SegmentCode SegmentKind = "code"
	// SegmentStringLiteral represents a single- or double-quoted string literal.
	SegmentStringLiteral SegmentKind = "string"
	// SegmentLineComment represents a // or # comment running to end of line.
	SegmentLineComment SegmentKind = "line-comment"
	// SegmentBlockComment represents a /* ... */ comment, possibly unterminated.
	SegmentBlockComment SegmentKind = "block-comment"
)

// Segment is a maximal contiguous span of a line tagged with its kind.
// The segments of a line form a complete partition: no gaps, no overlaps,
// no zero-length entries.
type Segment struct {
	Kind SegmentKind
	Text string
}

// ScanState carries the only piece of cross-line scanner memory: whether the
// previous line ended inside an unterminated /* ... */ comment. String
// literals and line comments never span physical lines in PHP, so nothing
// else persists.
type ScanState struct {
	InBlockComment bool
}
