package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"diskmap/internal/compare"
)

// errChangesFound makes the process exit 1 without printing an error.
var errChangesFound = errors.New("differences found")

func newCompareCmd(opts *options) *cobra.Command {
	var exclude []string

	cmd := &cobra.Command{
		Use:   "compare OLD_DIR NEW_DIR",
		Short: "Compare file sizes between two directory trees",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig(ctx)
			if err != nil {
				return err
			}
			exclude = append(cfg.Exclude, exclude...)

			oldTree, err := scanTree(ctx, args[0], exclude)
			if err != nil {
				return err
			}
			newTree, err := scanTree(ctx, args[1], exclude)
			if err != nil {
				return err
			}

			result := compare.Compare(oldTree, newTree)
			fmt.Fprintln(cmd.OutOrStdout(), compare.FormatReport(result))

			if result.HasChanges() {
				return errChangesFound
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&exclude, "exclude", "x", nil, "additional exclude patterns")
	return cmd
}
