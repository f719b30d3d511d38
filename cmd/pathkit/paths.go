package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
	"github.com/arthur-debert/pathkit/pkg/pathkit/syspath"
)

func newPathsCommand() *cobra.Command {
	var (
		envFile string
		envVar  string
		libDir  string
		bitcode bool
	)
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the ordered library search path list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("load env file: %w", err)
				}
			}
			d := &syspath.Discovery{
				EnvVar:        envVar,
				DefaultLibDir: libDir,
				Log:           logger(),
			}
			var paths []pathkit.Path
			if bitcode {
				paths = d.BitcodeLibraryPaths()
			} else {
				paths = d.SystemLibraryPaths()
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "env file to load before reading the override variable")
	cmd.Flags().StringVar(&envVar, "env-var", syspath.DefaultEnvVar, "environment variable holding the search path override")
	cmd.Flags().StringVar(&libDir, "lib-dir", "", "compiled-in default library directory")
	cmd.Flags().BoolVar(&bitcode, "bitcode", false, "print the bitcode library list instead of the native one")
	return cmd
}
