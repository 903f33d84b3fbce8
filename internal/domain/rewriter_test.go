package domain

import (
	"testing"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

func rewriteOne(line string) m.LineVerdict {
	segments, _ := ScanLine(line, m.ScanState{})
	return RewriteLine(line, segments)
}

func TestRewriteLine_Rewrites(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "simple include",
			line: "include('a.php');",
			want: "include 'a.php';",
		},
		{
			name: "indent preserved",
			line: "  require_once('x.php');",
			want: "  require_once 'x.php';",
		},
		{
			name: "inner whitespace preserved verbatim",
			line: `  require_once( "init.php" ) ;`,
			want: `  require_once "init.php" ;`,
		},
		{
			name: "whitespace before parenthesis",
			line: "include ('a.php');",
			want: "include 'a.php';",
		},
		{
			name: "nested parentheses kept as argument text",
			line: "require(getPath('a') . 'b.php');",
			want: "require getPath('a') . 'b.php';",
		},
		{
			name: "trailing comment byte-identical",
			line: "include('a.php'); // include('b.php')",
			want: "include 'a.php'; // include('b.php')",
		},
		{
			name: "leading block comment kept",
			line: "/* note */ include('a.php');",
			want: "/* note */ include 'a.php';",
		},
		{
			name: "block comment inside argument kept",
			line: "include('a.php' /* main */);",
			want: "include 'a.php' /* main */;",
		},
		{
			name: "keyword casing preserved",
			line: "INCLUDE('a.php');",
			want: "INCLUDE 'a.php';",
		},
		{
			name: "close tag after statement tolerated",
			line: "include('a.php'); ?>",
			want: "include 'a.php'; ?>",
		},
		{
			name: "semicolon inside string argument",
			line: "include('a;b.php');",
			want: "include 'a;b.php';",
		},
		{
			name: "parenthesis inside string argument",
			line: "include('a(b.php');",
			want: "include 'a(b.php';",
		},
		{
			name: "tab indented require",
			line: "\trequire('lib.php');",
			want: "\trequire 'lib.php';",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := rewriteOne(tt.line)
			if !verdict.Rewritten {
				t.Fatalf("expected %q to be rewritten", tt.line)
			}
			if verdict.Text != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, verdict.Text)
			}
		})
	}
}

func TestRewriteLine_LeavesUnchanged(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "whitespace only", line: "   \t"},
		{name: "comment only", line: "// include('a.php');"},
		{name: "hash comment only", line: "# include('a.php');"},
		{name: "already parentheses-free", line: "include 'a.php';"},
		{name: "two statements on one line", line: "include('a.php'); include('b.php');"},
		{name: "statement plus extra code", line: "echo $x; include('a.php');"},
		{name: "assignment from include", line: "$x = include('a.php');"},
		{name: "candidate inside string", line: `$x = "include('y.php')";`},
		{name: "string outside statement", line: "'label' . include('a.php');"},
		{name: "not a whole-word keyword", line: "includeOnceCustom('x');"},
		{name: "keyword with identifier prefix", line: "my_include('a.php');"},
		{name: "keyword with dollar prefix", line: "$include('a.php');"},
		{name: "unbalanced parentheses", line: "include('a.php';"},
		{name: "missing semicolon", line: "include('a.php')"},
		{name: "extra closing parenthesis", line: "include('a.php'));"},
		{name: "comment between keyword and parenthesis", line: "include/* odd */('a.php');"},
		{name: "comment between parenthesis and semicolon", line: "include('a.php')/* odd */;"},
		{name: "keyword inside conditional", line: "if ($x) include('a.php');"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := rewriteOne(tt.line)
			if verdict.Rewritten {
				t.Fatalf("expected %q to stay unchanged, got %q", tt.line, verdict.Text)
			}
		})
	}
}

func TestRewriteLine_Idempotent(t *testing.T) {
	lines := []string{
		"include('a.php');",
		"  require_once( 'init.php' );",
		"require(getPath('a') . 'b.php');",
	}

	for _, line := range lines {
		first := rewriteOne(line)
		if !first.Rewritten {
			t.Fatalf("expected %q to be rewritten", line)
		}

		second := rewriteOne(first.Text)
		if second.Rewritten {
			t.Fatalf("rewriting %q twice must be stable, got %q", line, second.Text)
		}
	}
}

func TestRewriteLine_InsideBlockComment(t *testing.T) {
	_, state := ScanLine("/* start", m.ScanState{})

	line := "include('x.php');"
	segments, _ := ScanLine(line, state)

	verdict := RewriteLine(line, segments)
	if verdict.Rewritten {
		t.Fatalf("line inside a block comment must stay unchanged, got %q", verdict.Text)
	}
}
