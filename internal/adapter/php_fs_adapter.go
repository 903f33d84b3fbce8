// Package adapter contains filesystem and UI adapters for the phpinc CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/utilmind/replace-php-includes/internal/model"
)

const phpFileExt = ".php"

// PHPSourceFSAdapter abstracts the filesystem operations the workflow relies
// on when discovering and rewriting PHP files. It hides direct `os` access so
// the workflow logic can be tested without touching the disk.
type PHPSourceFSAdapter interface {
	// Discover resolves the user-provided paths into the list of files to
	// process. With no paths it walks the current directory recursively for
	// *.php files. Notes carry per-path warnings (missing paths, skipped
	// directories) that the caller surfaces without failing the run.
	Discover(paths []m.Path, exclude []string) (files []m.Path, notes []string, err error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Backup copies path to path+".bak" before the first rewrite. An already
	// existing backup is never overwritten; created reports whether a new
	// backup was written.
	Backup(path m.Path) (created bool, err error)

	// FileInfo returns metadata for a path so the workflow can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalPHPSourceFSAdapter is the concrete implementation backed by the local
// filesystem.
type LocalPHPSourceFSAdapter struct{}

// NewLocalPHPSourceFSAdapter constructs a LocalPHPSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalPHPSourceFSAdapter() *LocalPHPSourceFSAdapter {
	return &LocalPHPSourceFSAdapter{}
}

// Discover resolves paths per the adapter contract.
func (a *LocalPHPSourceFSAdapter) Discover(paths []m.Path, exclude []string) ([]m.Path, []string, error) {
	excluded, err := compileExcludes(exclude)
	if err != nil {
		return nil, nil, err
	}

	if len(paths) == 0 {
		files, err := a.walkPHPFiles(".", excluded)
		return files, nil, err
	}

	var files []m.Path

	var notes []string

	for _, path := range paths {
		norm := filepath.Clean(string(path))

		info, err := os.Stat(norm)
		if err != nil {
			notes = append(notes, fmt.Sprintf("path not found, skipped: %s", path))
			continue
		}

		if info.IsDir() {
			notes = append(notes, fmt.Sprintf("directory provided, skipped: %s", path))
			continue
		}

		if excluded(norm) {
			continue
		}

		if !isPHPFile(norm) {
			notes = append(notes, fmt.Sprintf("processing non-.php file because it was explicitly provided: %s", norm))
		}

		files = append(files, m.Path(norm))
	}

	return files, notes, nil
}

// walkPHPFiles collects every *.php file under root recursively.
func (a *LocalPHPSourceFSAdapter) walkPHPFiles(root string, excluded func(string) bool) ([]m.Path, error) {
	var files []m.Path

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !isPHPFile(path) || excluded(path) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalPHPSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalPHPSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Backup copies the file to a .bak sibling unless one already exists.
func (a *LocalPHPSourceFSAdapter) Backup(path m.Path) (bool, error) {
	bakPath := string(path) + ".bak"

	if _, err := os.Stat(bakPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return false, err
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(bakPath, content, info.Mode().Perm()); err != nil {
		return false, err
	}

	return true, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalPHPSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// compileExcludes builds a single predicate over the exclude regexes.
func compileExcludes(exclude []string) (func(string) bool, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return func(path string) bool {
		for _, re := range patterns {
			if re.MatchString(path) {
				return true
			}
		}

		return false
	}, nil
}

func isPHPFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), phpFileExt)
}
