// Package syspath discovers library search paths and well-known OS
// locations, merging an environment override with compiled-in and OS-queried
// directories into ordered lists.
package syspath

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
	"github.com/arthur-debert/pathkit/pkg/pathkit/fsops"
)

// DefaultEnvVar is the environment variable consulted for extra library
// directories when a Discovery does not name its own.
const DefaultEnvVar = "PATHKIT_LIBRARY_PATH"

// configSubdir is the fixed component appended to the home directory by
// DefaultConfigDirectory.
const configSubdir = ".pathkit"

// wellKnownLibraryDirs are the OS-queried fallback locations, lowest
// priority, in order.
var wellKnownLibraryDirs = []string{
	"/usr/local/lib",
	"/usr/lib",
	"/lib",
}

// Discovery merges library-path sources. EnvVar names the override
// variable (DefaultEnvVar when empty); DefaultLibDir is an optional
// compiled-in library directory consulted between the override and the
// well-known locations.
type Discovery struct {
	EnvVar        string
	DefaultLibDir string
	Log           zerolog.Logger
}

// SystemLibraryPaths returns the ordered native-library search list:
// environment override first, then the compiled-in default, then the
// well-known system directories. Entries that are not readable directories
// are dropped.
func (d *Discovery) SystemLibraryPaths() []pathkit.Path {
	paths := d.envPaths()
	paths = d.appendUsable(paths, d.DefaultLibDir)
	for _, dir := range wellKnownLibraryDirs {
		paths = d.appendUsable(paths, dir)
	}
	return paths
}

// BitcodeLibraryPaths returns the ordered bitcode-library search list. It
// shares the environment override and compiled-in default with
// SystemLibraryPaths but skips the native system directories, which never
// hold bitcode.
func (d *Discovery) BitcodeLibraryPaths() []pathkit.Path {
	return d.appendUsable(d.envPaths(), d.DefaultLibDir)
}

// envPaths splits the override variable on the platform list separator and
// validates each entry, silently dropping invalid ones.
func (d *Discovery) envPaths() []pathkit.Path {
	name := d.EnvVar
	if name == "" {
		name = DefaultEnvVar
	}
	value := os.Getenv(name)
	if value == "" {
		return nil
	}
	var paths []pathkit.Path
	for _, entry := range strings.Split(value, string(pathkit.ListSeparator)) {
		p, err := pathkit.New(entry)
		if err != nil {
			d.Log.Debug().Str("entry", entry).Str("var", name).Msg("dropping invalid search path entry")
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

func (d *Discovery) appendUsable(paths []pathkit.Path, dir string) []pathkit.Path {
	if dir == "" {
		return paths
	}
	p, err := pathkit.New(dir)
	if err != nil || !fsops.IsDirectory(p) || !fsops.CanRead(p) {
		return paths
	}
	return append(paths, p)
}

// UserHomeDirectory returns the current user's home directory.
func UserHomeDirectory() (pathkit.Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return pathkit.Path{}, fmt.Errorf("query home directory: %w", err)
	}
	return pathkit.New(home)
}

// DefaultConfigDirectory returns the per-user configuration directory: the
// home directory plus a fixed subcomponent.
func DefaultConfigDirectory() (pathkit.Path, error) {
	home, err := UserHomeDirectory()
	if err != nil {
		return pathkit.Path{}, err
	}
	if !home.AppendComponent(configSubdir) {
		return pathkit.Path{}, fmt.Errorf("build config directory under '%s'", home)
	}
	return home, nil
}

// RootDirectory returns the generic filesystem root.
func RootDirectory() pathkit.Path {
	return pathkit.MustNew("/")
}

// CurrentDirectory returns the process working directory.
func CurrentDirectory() (pathkit.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return pathkit.Path{}, fmt.Errorf("query working directory: %w", err)
	}
	return pathkit.New(wd)
}

// MainExecutablePath returns the path of the running executable.
func MainExecutablePath() (pathkit.Path, error) {
	exe, err := os.Executable()
	if err != nil {
		return pathkit.Path{}, fmt.Errorf("query executable path: %w", err)
	}
	return pathkit.New(exe)
}
