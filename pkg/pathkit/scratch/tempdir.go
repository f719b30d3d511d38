package scratch

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
	"github.com/arthur-debert/pathkit/pkg/pathkit/fsops"
)

// TempDir manages a process-scoped scratch directory beneath the OS temp
// root, named by process ID. Initialization is an explicit call, not a lazy
// first use; call Init once before sharing the value across goroutines.
//
// No teardown is performed here. Cleaning the tree up at process exit is
// the caller's responsibility.
type TempDir struct {
	dir   pathkit.Path
	ready bool
	log   zerolog.Logger
}

// NewTempDir returns an uninitialized TempDir logging through log.
func NewTempDir(log zerolog.Logger) *TempDir {
	return &TempDir{log: log}
}

// Init resolves the OS temp root, appends a process-keyed component,
// force-erases any stale leftover directory of the same name (a prior
// process may have reused the PID), and recreates it empty. Calling Init
// on a ready TempDir is a no-op success.
func (t *TempDir) Init() error {
	if t.ready {
		return nil
	}
	p, err := pathkit.New(os.TempDir())
	if err != nil {
		return fmt.Errorf("resolve temp root: %w", err)
	}
	if !p.AppendComponent(fmt.Sprintf("pathkit-%d", os.Getpid())) {
		return fmt.Errorf("build temp directory name under '%s'", p)
	}
	if err := fsops.EraseFromDisk(p, true); err != nil {
		return err
	}
	if err := fsops.CreateDirectory(p, true); err != nil {
		return err
	}
	t.log.Debug().Str("path", p.String()).Msg("scratch directory ready")
	t.dir = p
	t.ready = true
	return nil
}

// Dir returns the scratch directory path. It is an error to ask before a
// successful Init.
func (t *TempDir) Dir() (pathkit.Path, error) {
	if !t.ready {
		return pathkit.Path{}, fmt.Errorf("scratch directory not initialized")
	}
	return t.dir, nil
}
