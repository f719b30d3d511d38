package pathkit

import (
	"fmt"
	"strings"
)

// ValidationError reports why a candidate path string was rejected by the
// grammar. Raw holds the candidate after separator canonicalization.
type ValidationError struct {
	Raw    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Raw, e.Reason)
}

// IsValid reports whether raw, after separator canonicalization, satisfies
// the path grammar.
func IsValid(raw string) bool {
	_, err := normalize(flipBackslashes(raw))
	return err == nil
}

// normalize validates a canonicalized (forward-slash) candidate and returns
// it with any non-root trailing separator stripped.
//
// Grammar, in order:
//  1. the empty string is invalid;
//  2. a colon must be the second character, preceded by a letter, in a
//     string of at least three characters (drive-letter form); the root
//     boundary is then index 2;
//  3. a string starting with two separators and longer than three
//     characters is a UNC path; the root boundary is the first separator at
//     index >= 2, or 0 if there is none;
//  4. control characters, backslash, '<', '>' and '"' are illegal anywhere;
//  5. a trailing separator is stripped unless it sits at the root boundary;
//  6. no component may end in a space or a bare period, except the
//     pseudo-components "." and "..", which accept the whole string.
func normalize(path string) (string, error) {
	if path == "" {
		return "", &ValidationError{Raw: path, Reason: "empty path"}
	}

	rootSlash := 0
	if pos := strings.LastIndexByte(path, ':'); pos >= 0 {
		if pos != 1 || !isAlpha(path[0]) || len(path) < 3 {
			return "", &ValidationError{Raw: path, Reason: "misplaced colon"}
		}
		rootSlash = 2
	}
	if len(path) > 3 && path[0] == '/' && path[1] == '/' {
		if i := strings.IndexByte(path[2:], '/'); i >= 0 {
			rootSlash = i + 2
		} else {
			rootSlash = 0
		}
	}

	for i := 0; i < len(path); i++ {
		if c := path[i]; c < 0x20 || c == '\\' || c == '<' || c == '>' || c == '"' {
			return "", &ValidationError{Raw: path, Reason: fmt.Sprintf("illegal character 0x%02x", c)}
		}
	}

	for len(path) > 0 && path[len(path)-1] == '/' && len(path)-1 != rootSlash {
		path = path[:len(path)-1]
	}
	if path == "" {
		return "", &ValidationError{Raw: path, Reason: "empty path"}
	}

	for i := 0; i < len(path); i++ {
		c := path[i]
		if c != ' ' && c != '.' {
			continue
		}
		if i+1 != len(path) && path[i+1] != '/' {
			continue
		}
		// The character ends a component.
		if c == ' ' {
			return "", &ValidationError{Raw: path, Reason: "component ends in a space"}
		}
		if i == 0 || path[i-1] == '/' || path[i-1] == ':' {
			return path, nil // the component is ".": accepted, scan stops
		}
		if path[i-1] == '.' && (i == 1 || path[i-2] == '/' || path[i-2] == ':') {
			return path, nil // the component is "..": accepted, scan stops
		}
		return "", &ValidationError{Raw: path, Reason: "component ends in a period"}
	}
	return path, nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
