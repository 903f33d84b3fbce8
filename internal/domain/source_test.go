package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

func TestRewriteSource_BlockCommentSpansLines(t *testing.T) {
	content := "/* start\ninclude('x.php');\nend */\ninclude('y.php');\n"

	out, result := RewriteSource("test.php", []byte(content))

	want := "/* start\ninclude('x.php');\nend */\ninclude 'y.php';\n"
	if string(out) != want {
		t.Fatalf("expected %q, got %q", want, out)
	}

	if result.ChangedLines != 1 {
		t.Fatalf("expected 1 changed line, got %d", result.ChangedLines)
	}
	if result.TotalLines != 4 {
		t.Fatalf("expected 4 total lines, got %d", result.TotalLines)
	}
	if result.InBlockComment {
		t.Fatal("block comment is terminated, flag must be clear")
	}
}

func TestRewriteSource_PreservesLineEndings(t *testing.T) {
	content := "include('a.php');\r\ninclude('b.php');\ninclude('c.php')"

	out, result := RewriteSource("test.php", []byte(content))

	want := "include 'a.php';\r\ninclude 'b.php';\ninclude 'c.php'"
	if string(out) != want {
		t.Fatalf("expected %q, got %q", want, out)
	}

	// The last line has no semicolon and no terminator; only two change.
	if result.ChangedLines != 2 {
		t.Fatalf("expected 2 changed lines, got %d", result.ChangedLines)
	}
	if result.TotalLines != 3 {
		t.Fatalf("expected 3 total lines, got %d", result.TotalLines)
	}
}

func TestRewriteSource_UnterminatedBlockComment(t *testing.T) {
	content := "/*\ninclude('a.php');\n"

	out, result := RewriteSource("test.php", []byte(content))

	if string(out) != content {
		t.Fatalf("expected content untouched, got %q", out)
	}
	if result.ChangedLines != 0 {
		t.Fatalf("expected no changes, got %d", result.ChangedLines)
	}
	if !result.InBlockComment {
		t.Fatal("expected InBlockComment to survive to end of file")
	}
}

func TestRewriteSource_EmptyContent(t *testing.T) {
	out, result := RewriteSource("test.php", nil)

	if len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
	if result.TotalLines != 0 || result.ChangedLines != 0 {
		t.Fatalf("expected zero counts, got %+v", result)
	}
}

func TestRewriteSource_Idempotent(t *testing.T) {
	content := "<?php\ninclude('a.php');\nrequire_once( 'b.php' );\n// include('c.php');\n"

	first, result := RewriteSource("test.php", []byte(content))
	if result.ChangedLines != 2 {
		t.Fatalf("expected 2 changed lines on first pass, got %d", result.ChangedLines)
	}

	second, result := RewriteSource("test.php", first)
	if result.ChangedLines != 0 {
		t.Fatalf("expected no changes on second pass, got %d", result.ChangedLines)
	}
	if string(second) != string(first) {
		t.Fatalf("second pass altered output: %q vs %q", second, first)
	}
}

func TestRewriteSource_LegacyExample(t *testing.T) {
	path := filepath.Join("..", "..", "examples", "legacy", "index.php")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	out, result := RewriteSource(m.Path(path), content)

	if result.ChangedLines != 4 {
		t.Fatalf("expected 4 changed lines, got %d", result.ChangedLines)
	}
	if result.TotalLines != 12 {
		t.Fatalf("expected 12 total lines, got %d", result.TotalLines)
	}
	if result.InBlockComment {
		t.Fatal("example ends outside any block comment")
	}

	text := string(out)

	for _, want := range []string{
		"require_once 'config.php';",
		"include 'header.php' ;",
		"include 'nav.php'; // main navigation",
		"require dirname(__FILE__) . '/footer.php';",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, text)
		}
	}

	for _, untouched := range []string{
		"$title = \"Home - include('never.php')\";",
		"include('debug.php');",
		"echo $title; include('inline.php');",
	} {
		if !strings.Contains(text, untouched) {
			t.Fatalf("expected output to keep %q untouched:\n%s", untouched, text)
		}
	}
}
