package fsops

import (
	"errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

// EraseFromDisk removes the entry at p. A path that does not exist is a
// no-op success. Directories are only descended into when removeContents is
// set; a read-only attribute on a file is cleared before deletion.
//
// Recursive deletion snapshots the immediate child listing before acting on
// it, rather than deleting against the live directory enumeration. The
// window between snapshot and deletion is an accepted TOCTOU limitation:
// a child that vanishes in the interim is treated as already deleted.
func EraseFromDisk(p pathkit.Path, removeContents bool) error {
	return eraseTree(p.String(), removeContents)
}

func eraseTree(path string, removeContents bool) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return opErr("inspect", path, err)
	}

	if info.IsDir() {
		if removeContents {
			entries, err := os.ReadDir(path)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return opErr("list directory", path, err)
			}
			for _, entry := range entries {
				if err := eraseTree(path+"/"+entry.Name(), true); err != nil {
					return err
				}
			}
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return opErr("remove directory", path, err)
		}
		return nil
	}

	if info.Mode().Perm()&0o200 == 0 {
		// Read-only entries would survive the unlink on some platforms.
		_ = os.Chmod(path, info.Mode().Perm()|0o200)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return opErr("remove file", path, err)
	}
	return nil
}

// List returns a snapshot of the immediate children of p. Child names that
// do not survive the path grammar (for example names containing '<') are
// skipped.
func List(p pathkit.Path) ([]pathkit.Path, error) {
	entries, err := os.ReadDir(p.String())
	if err != nil {
		return nil, opErr("list directory", p.String(), err)
	}
	children := make([]pathkit.Path, 0, len(entries))
	for _, entry := range entries {
		child := p
		if !child.AppendComponent(entry.Name()) {
			continue
		}
		children = append(children, child)
	}
	return children, nil
}
