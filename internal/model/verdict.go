package model

// Keyword is one of the four rewritable PHP statement keywords.
type Keyword string

const (
	KeywordInclude     Keyword = "include"
	KeywordIncludeOnce Keyword = "include_once"
	KeywordRequire     Keyword = "require"
	KeywordRequireOnce Keyword = "require_once"
)

// Keywords lists every rewritable keyword in canonical (lowercase) form.
var Keywords = []Keyword{KeywordInclude, KeywordIncludeOnce, KeywordRequire, KeywordRequireOnce}

// RewriteMatch is the parsed shape of a rewritable statement found on a line.
// Keyword preserves the original casing from the source; Argument is the
// verbatim text between the statement's outermost parentheses, untrimmed.
// Start and End bound the matched span within the original line text, from
// the first keyword byte through the terminating semicolon.
type RewriteMatch struct {
	Keyword  string
	Argument string
	Start    int
	End      int
}

// LineVerdict is the rewriter's decision for a single line: either the line
// is left as is, or it is replaced by Text.
type LineVerdict struct {
	Rewritten bool
	Text      string
}

// Unchanged is the verdict for a line the rewriter leaves alone.
func Unchanged() LineVerdict {
	return LineVerdict{}
}

// Rewritten is the verdict carrying the transformed line text.
func Rewritten(text string) LineVerdict {
	return LineVerdict{Rewritten: true, Text: text}
}
