// Package pathkit provides a portable, validated path string abstraction.
//
// Paths are stored in a canonical forward-slash form regardless of the
// separator style of the input. The grammar accepts plain POSIX-style paths,
// drive-letter paths ("C:/...") and UNC share paths ("//host/share/...").
// A trailing separator is present exactly when the path denotes a root.
//
// Path values are not safe for concurrent mutation. Callers sharing a Path
// across goroutines must provide their own synchronization.
package pathkit

import (
	"strings"
)

// Separator is the canonical path component separator. Inputs using
// backslashes are converted on every ingest.
const Separator = '/'

// ListSeparator separates entries in a search-path list (e.g. the value of
// a library-path environment variable).
const ListSeparator = ':'

// Path holds a validated, canonicalized path string. The zero value is the
// empty path, which is not valid for filesystem use but is a legal starting
// point for AppendComponent.
type Path struct {
	raw string
}

// New canonicalizes and validates raw, returning the resulting Path.
func New(raw string) (Path, error) {
	norm, err := normalize(flipBackslashes(raw))
	if err != nil {
		return Path{}, err
	}
	return Path{raw: norm}, nil
}

// MustNew is like New but panics on invalid input. Intended for
// compiled-in constants.
func MustNew(raw string) Path {
	p, err := New(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical path string.
func (p Path) String() string {
	return p.raw
}

// IsEmpty reports whether the path holds no value.
func (p Path) IsEmpty() bool {
	return p.raw == ""
}

// IsRoot reports whether the path denotes a root directory (drive root,
// UNC share root, or "/"). By the trailing-slash invariant this is exactly
// the set of paths ending in a separator.
func (p Path) IsRoot() bool {
	return p.raw != "" && p.raw[len(p.raw)-1] == '/'
}

// IsAbsolute reports whether the path is absolute under either path grammar.
func (p Path) IsAbsolute() bool {
	return IsAbsolute(p.raw)
}

// IsAbsolute reports whether s names an absolute path: it starts with a
// separator, or carries a drive marker (":" at position 1 followed by a
// separator of either style, tolerated even though stored paths never
// contain backslashes).
func IsAbsolute(s string) bool {
	switch len(s) {
	case 0:
		return false
	case 1, 2:
		return s[0] == '/'
	default:
		return s[0] == '/' || (s[1] == ':' && (s[2] == '/' || s[2] == '\\'))
	}
}

// Set replaces the held path with raw after canonicalization and
// validation. On failure the previous value is kept and false is returned.
func (p *Path) Set(raw string) bool {
	return p.commit(flipBackslashes(raw))
}

// AppendComponent appends name as a new final component, inserting a single
// separator when needed. Empty names are rejected. On validation failure the
// path is left unchanged and false is returned.
func (p *Path) AppendComponent(name string) bool {
	if name == "" {
		return false
	}
	staged := p.raw
	if staged != "" && staged[len(staged)-1] != '/' {
		staged += string(Separator)
	}
	staged += name
	return p.commit(flipBackslashes(staged))
}

// EraseComponent removes the suffix after the last separator, so that
// "a/b/c" becomes "a/b" and "C:/foo" becomes the root "C:/". It fails
// without mutation when there is no separator, or when the separator is the
// final character (the path is already a root).
func (p *Path) EraseComponent() bool {
	slash := strings.LastIndexByte(p.raw, '/')
	if slash < 0 || slash == len(p.raw)-1 {
		return false
	}
	return p.commit(p.raw[:slash+1])
}

// EraseSuffix removes a trailing ".ext" from the final component. It fails
// without mutation when the last dot is not inside the final component or is
// the component's leading character.
func (p *Path) EraseSuffix() bool {
	dot := strings.LastIndexByte(p.raw, '.')
	if dot < 0 {
		return false
	}
	if slash := strings.LastIndexByte(p.raw, '/'); slash >= 0 && dot <= slash+1 {
		return false
	}
	return p.commit(p.raw[:dot])
}

// AppendSuffix appends "." plus ext to the final component. Empty ext is a
// no-op success. Rolls back on validation failure.
func (p *Path) AppendSuffix(ext string) bool {
	if ext == "" {
		return true
	}
	return p.commit(p.raw + "." + ext)
}

// commit stages a candidate value and assigns it only if validation
// succeeds. The live value is never mutated speculatively; the grammar is
// non-local, so a single appended character can invalidate the whole string.
func (p *Path) commit(staged string) bool {
	norm, err := normalize(staged)
	if err != nil {
		return false
	}
	p.raw = norm
	return true
}

// Last returns the final component, including any suffix. Root paths return
// themselves.
func (p Path) Last() string {
	slash := strings.LastIndexByte(p.raw, '/')
	if slash < 0 || slash == len(p.raw)-1 {
		return p.raw
	}
	return p.raw[slash+1:]
}

// Dirname returns everything up to the final component, normalized so that
// roots keep their trailing separator. A single-component path yields ".".
func (p Path) Dirname() string {
	slash := strings.LastIndexByte(p.raw, '/')
	if slash < 0 {
		return "."
	}
	norm, err := normalize(p.raw[:slash+1])
	if err != nil {
		return "."
	}
	return norm
}

// Basename returns the final component with its suffix removed:
// "C:/dir/file.tar.gz" yields "file.tar".
func (p Path) Basename() string {
	last := p.Last()
	if dot := strings.LastIndexByte(last, '.'); dot > 0 {
		return last[:dot]
	}
	return last
}

// Suffix returns the extension after the final dot of the final component,
// without the dot. It is empty when the component has no suffix.
func (p Path) Suffix() string {
	last := p.Last()
	if dot := strings.LastIndexByte(last, '.'); dot > 0 && dot < len(last)-1 {
		return last[dot+1:]
	}
	return ""
}

func flipBackslashes(s string) string {
	return strings.ReplaceAll(s, "\\", "/")
}
