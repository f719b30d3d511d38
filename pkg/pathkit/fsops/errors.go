package fsops

import "fmt"

// OpError carries the context of a failed filesystem operation: the
// human-readable action, the path involved, and the underlying OS error.
type OpError struct {
	Op   string
	Path string
	Err  error
}

// Error returns a formatted error message.
func (e *OpError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

func opErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Path: path, Err: err}
}
