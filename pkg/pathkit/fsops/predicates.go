// Package fsops provides stateless filesystem inspection and mutation
// operations over validated pathkit paths.
//
// Every operation is synchronous and runs to completion; there is no
// cancellation and no internal locking. Concurrent calls against the same
// on-disk entry are a caller concern.
package fsops

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

// Exists reports whether an entry of any kind is present at p.
// A missing or unreadable entry reports false, never an error.
func Exists(p pathkit.Path) bool {
	_, err := os.Stat(p.String())
	return err == nil
}

// IsDirectory reports whether p names a directory.
func IsDirectory(p pathkit.Path) bool {
	info, err := os.Stat(p.String())
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether p names a regular file.
func IsRegularFile(p pathkit.Path) bool {
	info, err := os.Stat(p.String())
	return err == nil && info.Mode().IsRegular()
}

// IsSymbolicLink reports whether p itself is a symbolic link. Unlike the
// other predicates this does not follow the link.
func IsSymbolicLink(p pathkit.Path) bool {
	info, err := os.Lstat(p.String())
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// CanRead reports whether the owner read bit is set on p.
func CanRead(p pathkit.Path) bool {
	return hasPermBit(p, 0o400)
}

// CanWrite reports whether the owner write bit is set on p.
func CanWrite(p pathkit.Path) bool {
	return hasPermBit(p, 0o200)
}

// CanExecute reports whether the owner execute bit is set on p.
func CanExecute(p pathkit.Path) bool {
	return hasPermBit(p, 0o100)
}

func hasPermBit(p pathkit.Path, bit fs.FileMode) bool {
	info, err := os.Stat(p.String())
	return err == nil && info.Mode().Perm()&bit != 0
}
