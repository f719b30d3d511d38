package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
	"github.com/arthur-debert/pathkit/pkg/pathkit/fsops"
)

func parsePath(raw string) (pathkit.Path, error) {
	p, err := pathkit.New(raw)
	if err != nil {
		return pathkit.Path{}, err
	}
	return p, nil
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate and canonicalize path strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				p, err := parsePath(raw)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newStatCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "stat <path>",
		Short: "Print the metadata snapshot for a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePath(args[0])
			if err != nil {
				return err
			}
			sp := pathkit.NewStatusPath(p)
			st, err := sp.Status(force)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:     %s\n", p)
			fmt.Fprintf(out, "size:     %d\n", st.Size)
			fmt.Fprintf(out, "mode:     %04o\n", st.Mode)
			fmt.Fprintf(out, "modified: %s\n", st.ModTime.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "dir:      %t\n", st.IsDir)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "refresh", false, "force a fresh metadata query")
	return cmd
}

func newMkdirCommand() *cobra.Command {
	var parents bool
	cmd := &cobra.Command{
		Use:   "mkdir <path>...",
		Short: "Create directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			for _, raw := range args {
				p, err := parsePath(raw)
				if err != nil {
					return err
				}
				if err := fsops.CreateDirectory(p, parents); err != nil {
					return err
				}
				log.Info().Str("path", p.String()).Msg("directory created")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parent directories")
	return cmd
}

func newTouchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path>...",
		Short: "Create empty files (fails if a file already exists)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				p, err := parsePath(raw)
				if err != nil {
					return err
				}
				if err := fsops.CreateFile(p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRemoveCommand() *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Remove filesystem entries (absent entries are a no-op)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			for _, raw := range args {
				p, err := parsePath(raw)
				if err != nil {
					return err
				}
				if err := fsops.EraseFromDisk(p, recursive); err != nil {
					return err
				}
				log.Info().Str("path", p.String()).Msg("removed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directory contents recursively")
	return cmd
}

func newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <src> <dest>",
		Short: "Rename an entry, replacing any existing destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parsePath(args[0])
			if err != nil {
				return err
			}
			dest, err := parsePath(args[1])
			if err != nil {
				return err
			}
			return fsops.RenamePath(src, dest)
		},
	}
}

func newCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cp <src> <dest>",
		Short: "Copy a regular file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parsePath(args[0])
			if err != nil {
				return err
			}
			dest, err := parsePath(args[1])
			if err != nil {
				return err
			}
			return fsops.CopyFile(dest, src)
		},
	}
}

func newSniffCommand() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "sniff <path>",
		Short: "Print the leading bytes of a file for format identification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 1 || length > fsops.MaxMagicNumberLength {
				return fmt.Errorf("length must be in (0, %d]", fsops.MaxMagicNumberLength)
			}
			p, err := parsePath(args[0])
			if err != nil {
				return err
			}
			magic, err := fsops.MagicNumber(p, length)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "% x\n", magic)
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 4, "number of leading bytes to read")
	return cmd
}
