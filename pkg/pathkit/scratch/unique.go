// Package scratch produces fresh, verified-available filesystem names: a
// collision-probing unique-name generator and a process-scoped scratch
// directory.
//
// Both types are explicit, caller-owned objects. There are no package-level
// singletons and no lazy first-use initialization; construct them once and
// share them deliberately. Neither performs its own locking.
package scratch

import (
	"fmt"
	"os"
	"time"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
	"github.com/arthur-debert/pathkit/pkg/pathkit/fsops"
)

// suffixModulus bounds the numeric probe suffix to six digits.
const suffixModulus = 1_000_000

// NameGenerator appends monotonically-advancing "-NNNNNN" suffixes to a
// base path until a name with no existing entry is found. The counter is
// seeded from the process ID mixed with a high-resolution timer sample;
// that lowers the collision odds between processes, it does not guarantee
// uniqueness.
type NameGenerator struct {
	counter uint32
}

// NewNameGenerator returns a generator with a freshly seeded counter.
func NewNameGenerator() *NameGenerator {
	seed := uint32(os.Getpid()) ^ uint32(time.Now().UnixNano())
	return &NameGenerator{counter: seed % suffixModulus}
}

// MakeUnique returns a path for which no entry currently exists. With
// reuseExisting set, p itself is returned when nothing exists there.
// Otherwise numeric suffixes are probed, wrapping at one million, until a
// free name turns up; a full wrap without success is an error.
//
// The returned name can still be taken by another process before the
// caller uses it; this narrows the race, it cannot close it.
func (g *NameGenerator) MakeUnique(p pathkit.Path, reuseExisting bool) (pathkit.Path, error) {
	if reuseExisting && !fsops.Exists(p) {
		return p, nil
	}
	base := p.String()
	for probes := 0; probes < suffixModulus; probes++ {
		g.counter = (g.counter + 1) % suffixModulus
		candidate, err := pathkit.New(fmt.Sprintf("%s-%06d", base, g.counter))
		if err != nil {
			return pathkit.Path{}, err
		}
		if !fsops.Exists(candidate) {
			return candidate, nil
		}
	}
	return pathkit.Path{}, fmt.Errorf("no unique name available for '%s'", base)
}
