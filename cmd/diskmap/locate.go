package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"diskmap/internal/geom"
	"diskmap/internal/tree"
	"diskmap/internal/treemap"
)

func newLocateCmd(opts *options) *cobra.Command {
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "locate DIR X Y",
		Short: "Print the file under a point of the treemap",
		Long: `Lay DIR out exactly as render would and print the path of the file
whose rectangle contains the point (X, Y). The path alone goes to standard
output so it can be piped to a clipboard tool.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid x coordinate %q: %w", args[1], err)
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid y coordinate %q: %w", args[2], err)
			}

			ctx := cmd.Context()
			cfg, err := opts.loadConfig(ctx)
			if err != nil {
				return err
			}
			if err := lf.apply(cmd, cfg); err != nil {
				return err
			}

			scene, err := buildScene(ctx, args[0], cfg.Exclude, cfg.Mode, geom.FromSize(cfg.Width, cfg.Height))
			if err != nil {
				return err
			}

			box, ok := treemap.Hit(scene.Boxes, x, y)
			if !ok {
				return fmt.Errorf("no file at (%g, %g)", x, y)
			}
			loggerFromContext(ctx).Info("Located file", "size", tree.FormatSize(box.Size), "rect", box.Rect)
			fmt.Fprintln(cmd.OutOrStdout(), box.Path)
			return nil
		},
	}

	lf.register(cmd)
	return cmd
}
