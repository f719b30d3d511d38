package fsops

import (
	"io"
	"os"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

// RenamePath renames p to newName, replacing any existing entry at the
// destination.
func RenamePath(p pathkit.Path, newName pathkit.Path) error {
	if err := os.Rename(p.String(), newName.String()); err != nil {
		return opErr("rename", p.String(), err)
	}
	return nil
}

// CopyFile copies the whole regular file at src to dest. No cleanup of a
// partially-written destination is attempted beyond what the OS calls
// themselves provide.
func CopyFile(dest, src pathkit.Path) error {
	in, err := os.Open(src.String())
	if err != nil {
		return opErr("copy", src.String(), err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest.String())
	if err != nil {
		return opErr("copy", dest.String(), err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return opErr("copy", dest.String(), err)
	}
	return opErr("copy", dest.String(), out.Close())
}
