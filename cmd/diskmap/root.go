package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"diskmap/internal/config"
)

// options holds the flags shared by every subcommand.
type options struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "diskmap",
		Short: "Visualize disk usage as a squarified treemap",
		Long: `diskmap scans a directory tree, sums file sizes bottom-up and lays the
result out as nested rectangles whose areas match the bytes they hold.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "diskmap.yaml", "config file (YAML, or TOML by extension)")

	root.AddCommand(newScanCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newLocateCmd(opts))
	root.AddCommand(newCompareCmd(opts))

	return root
}

func (o *options) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	loggerFromContext(ctx).Debug("Loaded config", "path", o.configPath, "exclude", cfg.Exclude, "mode", cfg.Mode)
	return cfg, nil
}

// layoutFlags override the layout settings of a loaded config.
type layoutFlags struct {
	width   float64
	height  float64
	mode    string
	exclude []string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width (overrides config)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height (overrides config)")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "layout mode: squarify or slice (overrides config)")
	cmd.Flags().StringSliceVarP(&f.exclude, "exclude", "x", nil, "additional exclude patterns")
}

func (f *layoutFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if flags.Changed("mode") {
		cfg.Mode = f.mode
	}
	cfg.Exclude = append(cfg.Exclude, f.exclude...)
	return cfg.Validate()
}
