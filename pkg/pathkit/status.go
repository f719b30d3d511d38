package pathkit

import (
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Mode approximations. The portable grammar carries only a single
// read-only bit, so modes collapse to fully-accessible or read-plus-execute.
const (
	ModeAll      fs.FileMode = 0o777
	ModeReadOnly fs.FileMode = 0o555
)

// SentinelID is reported for owner and group, which have no portable
// equivalent here.
const SentinelID uint32 = 9999

// FileStatus is a plain snapshot of filesystem metadata for one path.
//
// UniqueID is a weak identity substitute (a byte sum over the path
// spelling): two different spellings of the same on-disk entry get
// different IDs. Callers must not rely on it for same-file detection.
type FileStatus struct {
	Size     uint64
	Mode     fs.FileMode
	User     uint32
	Group    uint32
	UniqueID uint64
	ModTime  time.Time
	IsDir    bool
}

// QueryStatus issues a single metadata query for p and maps the result into
// a FileStatus snapshot.
func QueryStatus(p Path) (*FileStatus, error) {
	info, err := os.Stat(p.String())
	if err != nil {
		return nil, fmt.Errorf("query status of '%s': %w", p, err)
	}
	st := &FileStatus{
		Size:     uint64(info.Size()),
		Mode:     ModeReadOnly,
		User:     SentinelID,
		Group:    SentinelID,
		UniqueID: pathByteSum(p.String()),
		ModTime:  info.ModTime(),
		IsDir:    info.IsDir(),
	}
	if info.Mode().Perm()&0o200 != 0 {
		st.Mode = ModeAll
	}
	return st, nil
}

// SetStatusInfo writes the last-modified timestamp and the owner-writable
// bit from desired back onto the entry at p. Other mode bits have no
// portable equivalent and are ignored. Not defined for directories.
func SetStatusInfo(p Path, desired *FileStatus) error {
	info, err := os.Stat(p.String())
	if err != nil {
		return fmt.Errorf("set status of '%s': %w", p, err)
	}
	if info.IsDir() {
		return fmt.Errorf("set status of '%s': not supported for directories", p)
	}
	perm := info.Mode().Perm()
	if desired.Mode&0o200 != 0 {
		perm |= 0o200
	} else {
		perm &^= 0o222
	}
	if err := os.Chmod(p.String(), perm); err != nil {
		return fmt.Errorf("set status of '%s': %w", p, err)
	}
	if err := os.Chtimes(p.String(), desired.ModTime, desired.ModTime); err != nil {
		return fmt.Errorf("set status of '%s': %w", p, err)
	}
	return nil
}

// StatusPath couples a Path with a lazily-computed FileStatus cache. The
// cache is invalid until the first successful query, and is dropped whenever
// a mutator repoints the path, so a stale snapshot is never served for a
// different entry.
type StatusPath struct {
	Path
	status *FileStatus
}

// NewStatusPath wraps p with an empty status cache.
func NewStatusPath(p Path) *StatusPath {
	return &StatusPath{Path: p}
}

// Status returns the cached snapshot, querying the filesystem when the
// cache is empty or force is set. A failed query reports an error and
// leaves any previous cache untouched.
func (sp *StatusPath) Status(force bool) (*FileStatus, error) {
	if sp.status != nil && !force {
		return sp.status, nil
	}
	st, err := QueryStatus(sp.Path)
	if err != nil {
		return nil, err
	}
	sp.status = st
	return st, nil
}

// Invalidate drops the cached snapshot so the next Status call re-queries.
func (sp *StatusPath) Invalidate() {
	sp.status = nil
}

// Set replaces the held path, dropping the cached status on success.
func (sp *StatusPath) Set(raw string) bool {
	if !sp.Path.Set(raw) {
		return false
	}
	sp.status = nil
	return true
}

// AppendComponent appends a component, dropping the cached status on
// success.
func (sp *StatusPath) AppendComponent(name string) bool {
	if !sp.Path.AppendComponent(name) {
		return false
	}
	sp.status = nil
	return true
}

// EraseComponent removes the final component, dropping the cached status on
// success.
func (sp *StatusPath) EraseComponent() bool {
	if !sp.Path.EraseComponent() {
		return false
	}
	sp.status = nil
	return true
}

// EraseSuffix removes a trailing suffix, dropping the cached status on
// success.
func (sp *StatusPath) EraseSuffix() bool {
	if !sp.Path.EraseSuffix() {
		return false
	}
	sp.status = nil
	return true
}

// AppendSuffix appends a suffix, dropping the cached status on success.
func (sp *StatusPath) AppendSuffix(ext string) bool {
	if !sp.Path.AppendSuffix(ext) {
		return false
	}
	sp.status = nil
	return true
}

func pathByteSum(s string) uint64 {
	var sum uint64
	for i := 0; i < len(s); i++ {
		sum += uint64(s[i])
	}
	return sum
}
