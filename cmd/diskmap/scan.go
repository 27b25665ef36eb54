package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"diskmap/internal/progress"
	"diskmap/internal/scanner"
	"diskmap/internal/tree"
)

func newScanCmd(opts *options) *cobra.Command {
	var (
		top     int
		exclude []string
	)

	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Scan a directory and print its size breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig(ctx)
			if err != nil {
				return err
			}

			root, err := scanTree(ctx, args[0], append(cfg.Exclude, exclude...))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			files, dirs := root.Count()
			fmt.Fprintf(out, "%s  %s  (%d files, %d directories)\n", root.Path, tree.FormatSize(root.Size), files, dirs)
			for i, child := range root.Children {
				if i == top {
					fmt.Fprintf(out, "  ... %d more\n", len(root.Children)-top)
					break
				}
				name := filepath.Base(child.Path)
				if !child.IsLeaf() {
					name += "/"
				}
				fmt.Fprintf(out, "  %10s  %s\n", tree.FormatSize(child.Size), name)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of top-level entries to list")
	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "additional exclude patterns")
	return cmd
}

// scanTree runs the scan on a worker goroutine while a spinner shows the
// scan is alive. An interrupt returns immediately; the abandoned worker
// finishes on its own since a scan cannot be cancelled.
func scanTree(ctx context.Context, dir string, exclude []string) (*tree.Node, error) {
	logger := loggerFromContext(ctx)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Info("Scanning directory", "path", absDir)
	if len(exclude) > 0 {
		logger.Debug("Excluding", "patterns", exclude)
	}

	p := newStepTimer(logger)
	done := make(chan struct{})
	var root *tree.Node

	var g errgroup.Group
	g.Go(func() error {
		defer close(done)
		var err error
		root, err = scanner.Scan(absDir, scanner.WithExclude(exclude))
		return err
	})
	g.Go(func() error {
		progress.New("Scanning " + absDir).Run(done)
		return nil
	})

	waited := make(chan error, 1)
	go func() { waited <- g.Wait() }()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-waited:
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory: %w", err)
		}
	}

	files, dirs := root.Count()
	p.done(fmt.Sprintf("Scanned %d files in %d directories, %s", files, dirs, tree.FormatSize(root.Size)))
	return root, nil
}
