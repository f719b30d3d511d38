package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

var verbosity int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Portable path inspection and filesystem mutation tool",
	Long: `pathkit validates and manipulates portable path strings (POSIX,
drive-letter and UNC forms) and performs the corresponding filesystem
operations: creating, renaming, copying and deleting entries, sniffing
file magic numbers, and discovering library search paths.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logger() zerolog.Logger {
	return pathkit.LoggerForVerbosity(os.Stderr, verbosity)
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newStatCommand())
	rootCmd.AddCommand(newMkdirCommand())
	rootCmd.AddCommand(newTouchCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newMoveCommand())
	rootCmd.AddCommand(newCopyCommand())
	rootCmd.AddCommand(newSniffCommand())
	rootCmd.AddCommand(newUniqueCommand())
	rootCmd.AddCommand(newTmpdirCommand())
	rootCmd.AddCommand(newPathsCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of pathkit`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pathkit version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
