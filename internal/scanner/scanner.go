package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"diskmap/internal/tree"
)

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Option configures a scan.
type Option func(*scanner)

// WithExclude skips entries matching any of the glob patterns. Patterns
// ending in "/" match directory names at any depth; other patterns match
// the entry's base name, or its path relative to the root when they
// contain a "/".
func WithExclude(patterns []string) Option {
	return func(s *scanner) { s.exclude = patterns }
}

type scanner struct {
	root    string
	exclude []string
}

// Scan walks the directory at root depth-first and returns its weighted
// tree. Regular files become leaves, directories become internal nodes,
// and symlinks and other entry types are skipped. The root is not followed
// either: a symlink to a directory yields ErrNotDirectory. Any I/O error
// aborts the scan; no partial tree is returned.
func Scan(root string, opts ...Option) (*tree.Node, error) {
	s := &scanner{root: filepath.Clean(root)}
	for _, opt := range opts {
		opt(s)
	}

	info, err := os.Lstat(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", s.root, ErrNotDirectory)
	}

	return s.visit(s.root)
}

func (s *scanner) visit(dir string) (*tree.Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	children := make([]*tree.Node, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if s.excluded(path, entry) {
			continue
		}

		switch typ := entry.Type(); {
		case typ.IsDir():
			child, err := s.visit(path)
			if err != nil {
				return nil, err
			}
			children = append(children, child)

		case typ.IsRegular():
			info, err := entry.Info()
			if err != nil {
				return nil, fmt.Errorf("failed to read file info: %w", err)
			}
			// The entry may have been replaced between readdir and lstat.
			if !info.Mode().IsRegular() {
				continue
			}
			children = append(children, tree.NewFile(path, uint64(info.Size())))
		}
	}

	return tree.NewDir(dir, children), nil
}

func (s *scanner) excluded(path string, entry fs.DirEntry) bool {
	if len(s.exclude) == 0 {
		return false
	}
	relPath, err := filepath.Rel(s.root, path)
	if err != nil {
		return false
	}
	return shouldExclude(relPath, entry.IsDir(), s.exclude)
}

func shouldExclude(relPath string, isDir bool, exclusions []string) bool {
	for _, pattern := range exclusions {
		if dirPattern, ok := strings.CutSuffix(pattern, "/"); ok {
			if !isDir {
				continue
			}
			if matched, _ := filepath.Match(dirPattern, filepath.Base(relPath)); matched {
				return true
			}
			continue
		}

		if matched, err := filepath.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
		// Patterns with a separator are matched against the whole relative path
		if strings.Contains(pattern, "/") {
			if matched, err := filepath.Match(pattern, filepath.ToSlash(relPath)); err == nil && matched {
				return true
			}
		}
	}
	return false
}
