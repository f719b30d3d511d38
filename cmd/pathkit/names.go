package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathkit/pkg/pathkit/scratch"
)

func newUniqueCommand() *cobra.Command {
	var reuse bool
	cmd := &cobra.Command{
		Use:   "unique <path>",
		Short: "Print a name near <path> for which no entry exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePath(args[0])
			if err != nil {
				return err
			}
			gen := scratch.NewNameGenerator()
			unique, err := gen.MakeUnique(p, reuse)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), unique)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reuse, "reuse-existing", false, "return the path itself when nothing exists there")
	return cmd
}

func newTmpdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tmpdir",
		Short: "Create and print the process-scoped scratch directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			td := scratch.NewTempDir(logger())
			if err := td.Init(); err != nil {
				return err
			}
			dir, err := td.Dir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
