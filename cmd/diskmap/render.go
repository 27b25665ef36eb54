package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"diskmap/internal/geom"
	"diskmap/internal/hash"
	"diskmap/internal/render"
	"diskmap/internal/treemap"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		lf      layoutFlags
		formats []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render DIR",
		Short: "Scan a directory and render its treemap",
		Long: `Scan DIR, lay it out as a treemap and write one file per format
(<output>.svg, <output>.png, <output>.json). The term format is printed to
standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Formats = formats
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if err := lf.apply(cmd, cfg); err != nil {
				return err
			}

			scene, err := buildScene(ctx, args[0], cfg.Exclude, cfg.Mode, geom.FromSize(cfg.Width, cfg.Height))
			if err != nil {
				return err
			}
			return writeScene(cmd, scene, cfg.Formats, cfg.Output)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "output formats: svg, png, json, term (overrides config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path without extension (overrides config)")
	return cmd
}

// buildScene scans dir and lays it out inside bounds.
func buildScene(ctx context.Context, dir string, exclude []string, modeName string, bounds geom.Rect) (render.Scene, error) {
	mode, err := treemap.ParseMode(modeName)
	if err != nil {
		return render.Scene{}, err
	}

	root, err := scanTree(ctx, dir, exclude)
	if err != nil {
		return render.Scene{}, err
	}

	logger := loggerFromContext(ctx)
	p := newStepTimer(logger)
	boxes := treemap.Layout(mode, root, bounds)
	p.done(fmt.Sprintf("Laid out %d boxes (%s)", len(boxes), mode))
	logger.Debug("Layout fingerprint", "hash", hash.Layout(boxes), "bounds", bounds)

	return render.Scene{
		Root:   root.Path,
		Size:   root.Size,
		Mode:   mode,
		Bounds: bounds,
		Boxes:  boxes,
	}, nil
}

// writeScene renders file formats concurrently and the term format to
// standard output.
func writeScene(cmd *cobra.Command, scene render.Scene, formats []string, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	seen := make(map[string]bool, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range formats {
		if seen[format] || format == render.FormatTerm {
			seen[format] = true
			continue
		}
		seen[format] = true

		format := format
		path := output + "." + format
		g.Go(func() error {
			if err := writeFile(gctx, path, format, scene); err != nil {
				return err
			}
			logger.Info("Wrote treemap", "format", format, "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if seen[render.FormatTerm] {
		return render.Write(cmd.OutOrStdout(), render.FormatTerm, scene)
	}
	return nil
}

func writeFile(ctx context.Context, path, format string, scene render.Scene) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := render.Write(f, format, scene); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
