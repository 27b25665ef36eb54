package compare

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"diskmap/internal/tree"
)

type ChangeType string

const (
	Added   ChangeType = "ADDED"
	Resized ChangeType = "RESIZED"
	Removed ChangeType = "REMOVED"
)

// Change describes one file whose presence or size differs between scans.
// Path is relative to the scanned root.
type Change struct {
	Type    ChangeType
	Path    string
	OldSize uint64
	NewSize uint64
}

// Delta returns the size difference in bytes, new minus old.
func (c Change) Delta() int64 {
	return int64(c.NewSize) - int64(c.OldSize)
}

type CompareResult struct {
	Added   []Change
	Resized []Change
	Removed []Change
}

func (r *CompareResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Resized) > 0 || len(r.Removed) > 0
}

// Growth returns the net size change across all changes.
func (r *CompareResult) Growth() int64 {
	var total int64
	for _, group := range [][]Change{r.Added, r.Resized, r.Removed} {
		for _, c := range group {
			total += c.Delta()
		}
	}
	return total
}

// leafSizes maps each file under root to its size, keyed by slash-separated
// path relative to root.
func leafSizes(root *tree.Node) map[string]uint64 {
	sizes := make(map[string]uint64)
	for _, leaf := range root.Leaves() {
		rel, err := filepath.Rel(root.Path, leaf.Path)
		if err != nil {
			rel = leaf.Path
		}
		sizes[filepath.ToSlash(rel)] = leaf.Size
	}
	return sizes
}

// Compare reports files added, resized and removed between two scans.
// The roots need not share a path; files are matched by relative path.
func Compare(oldTree, newTree *tree.Node) *CompareResult {
	result := &CompareResult{
		Added:   make([]Change, 0),
		Resized: make([]Change, 0),
		Removed: make([]Change, 0),
	}

	oldSizes := leafSizes(oldTree)
	newSizes := leafSizes(newTree)

	for path, newSize := range newSizes {
		oldSize, exists := oldSizes[path]
		switch {
		case !exists:
			result.Added = append(result.Added, Change{Type: Added, Path: path, NewSize: newSize})
		case oldSize != newSize:
			result.Resized = append(result.Resized, Change{Type: Resized, Path: path, OldSize: oldSize, NewSize: newSize})
		}
	}

	for path, oldSize := range oldSizes {
		if _, exists := newSizes[path]; !exists {
			result.Removed = append(result.Removed, Change{Type: Removed, Path: path, OldSize: oldSize})
		}
	}

	// Sort for deterministic output
	for _, group := range [][]Change{result.Added, result.Resized, result.Removed} {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Path < group[j].Path
		})
	}

	return result
}

func FormatReport(result *CompareResult) string {
	if !result.HasChanges() {
		return "No changes detected."
	}

	var report strings.Builder
	report.WriteString("Changes detected:\n\n")

	if len(result.Added) > 0 {
		fmt.Fprintf(&report, "ADDED (%d files):\n", len(result.Added))
		for _, change := range result.Added {
			fmt.Fprintf(&report, "  + %s (%s)\n", change.Path, tree.FormatSize(change.NewSize))
		}
		report.WriteString("\n")
	}

	if len(result.Resized) > 0 {
		fmt.Fprintf(&report, "RESIZED (%d files):\n", len(result.Resized))
		for _, change := range result.Resized {
			fmt.Fprintf(&report, "  ~ %s (%s -> %s)\n", change.Path,
				tree.FormatSize(change.OldSize), tree.FormatSize(change.NewSize))
		}
		report.WriteString("\n")
	}

	if len(result.Removed) > 0 {
		fmt.Fprintf(&report, "REMOVED (%d files):\n", len(result.Removed))
		for _, change := range result.Removed {
			fmt.Fprintf(&report, "  - %s (%s)\n", change.Path, tree.FormatSize(change.OldSize))
		}
		report.WriteString("\n")
	}

	fmt.Fprintf(&report, "Summary: %d added, %d resized, %d removed, net %+d bytes\n",
		len(result.Added), len(result.Resized), len(result.Removed), result.Growth())

	return report.String()
}
