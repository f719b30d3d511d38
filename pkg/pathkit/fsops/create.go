package fsops

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

// CreateDirectory creates the directory named by p. With createParents set,
// every missing intermediate directory is created as well, walking the path
// component by component past any drive-letter or UNC host+share prefix.
// An already-existing directory is success at every step; any other OS
// failure aborts the walk immediately.
func CreateDirectory(p pathkit.Path, createParents bool) error {
	path := p.String()
	if path == "" {
		return opErr("create directory", path, errors.New("empty path"))
	}
	if !createParents {
		return mkdirTolerant(path)
	}
	off := rootPrefixLen(path)
	for off < len(path) {
		end := len(path)
		if i := strings.IndexByte(path[off:], '/'); i >= 0 {
			end = off + i
		}
		if end > 0 {
			if err := mkdirTolerant(path[:end]); err != nil {
				return err
			}
		}
		off = end + 1
	}
	return nil
}

// CreateFile creates an empty regular file at p, failing if an entry with
// that name already exists.
func CreateFile(p pathkit.Path) error {
	f, err := os.OpenFile(p.String(), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o666)
	if err != nil {
		return opErr("create file", p.String(), err)
	}
	return opErr("create file", p.String(), f.Close())
}

func mkdirTolerant(dir string) error {
	err := os.Mkdir(dir, 0o777)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return opErr("create directory", dir, err)
	}
	// Only a pre-existing directory counts as success; a file squatting on
	// the name must surface as a failure.
	info, statErr := os.Stat(dir)
	if statErr != nil {
		return opErr("create directory", dir, statErr)
	}
	if !info.IsDir() {
		return opErr("create directory", dir, errors.New("existing entry is not a directory"))
	}
	return nil
}

// rootPrefixLen returns the length of a drive-letter ("C:/") or UNC
// ("//host/share/") prefix, whose components must never be mkdir'd.
func rootPrefixLen(path string) int {
	if len(path) >= 3 && path[1] == ':' && path[2] == '/' {
		return 3
	}
	if !strings.HasPrefix(path, "//") {
		return 0
	}
	hostEnd := strings.IndexByte(path[2:], '/')
	if hostEnd < 0 {
		return len(path)
	}
	shareStart := 2 + hostEnd + 1
	shareEnd := strings.IndexByte(path[shareStart:], '/')
	if shareEnd < 0 {
		return len(path)
	}
	return shareStart + shareEnd + 1
}
