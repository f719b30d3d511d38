package fsops

import (
	"fmt"
	"strings"

	"github.com/gammazero/toposort"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
)

// StepKind identifies a planned mutation.
type StepKind int

const (
	StepCreateDirectory StepKind = iota
	StepCreateFile
	StepErase
)

func (k StepKind) String() string {
	switch k {
	case StepCreateDirectory:
		return "create-directory"
	case StepCreateFile:
		return "create-file"
	case StepErase:
		return "erase"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

// Step is one planned filesystem mutation.
type Step struct {
	Kind StepKind
	Path pathkit.Path
}

// Plan collects filesystem mutations and applies them in dependency order:
// an ancestor directory is created before anything beneath it, and erased
// only after everything beneath it. Steps with no path relationship keep
// their insertion order.
type Plan struct {
	steps []Step
	log   zerolog.Logger
}

// NewPlan returns an empty plan logging through log.
func NewPlan(log zerolog.Logger) *Plan {
	return &Plan{log: log}
}

// CreateDirectory schedules a single-level directory creation.
func (pl *Plan) CreateDirectory(p pathkit.Path) *Plan {
	return pl.add(StepCreateDirectory, p)
}

// CreateFile schedules an exclusive file creation.
func (pl *Plan) CreateFile(p pathkit.Path) *Plan {
	return pl.add(StepCreateFile, p)
}

// Erase schedules a recursive removal.
func (pl *Plan) Erase(p pathkit.Path) *Plan {
	return pl.add(StepErase, p)
}

func (pl *Plan) add(kind StepKind, p pathkit.Path) *Plan {
	pl.steps = append(pl.steps, Step{Kind: kind, Path: p})
	return pl
}

// Steps returns the planned steps in resolved execution order without
// applying them.
func (pl *Plan) Steps() ([]Step, error) {
	order, err := pl.resolve()
	if err != nil {
		return nil, err
	}
	out := make([]Step, 0, len(order))
	for _, i := range order {
		out = append(out, pl.steps[i])
	}
	return out, nil
}

// Apply resolves the dependency order and executes every step, stopping at
// the first failure.
func (pl *Plan) Apply() error {
	order, err := pl.resolve()
	if err != nil {
		return err
	}
	for _, i := range order {
		step := pl.steps[i]
		pl.log.Debug().
			Str("step", step.Kind.String()).
			Str("path", step.Path.String()).
			Msg("applying plan step")
		var stepErr error
		switch step.Kind {
		case StepCreateDirectory:
			stepErr = CreateDirectory(step.Path, false)
		case StepCreateFile:
			stepErr = CreateFile(step.Path)
		case StepErase:
			stepErr = EraseFromDisk(step.Path, true)
		default:
			stepErr = fmt.Errorf("unknown step kind %v", step.Kind)
		}
		if stepErr != nil {
			pl.log.Info().
				Err(stepErr).
				Str("step", step.Kind.String()).
				Str("path", step.Path.String()).
				Msg("plan step failed")
			return stepErr
		}
	}
	return nil
}

// resolve orders step indices so every ancestor/descendant constraint
// holds, via topological sort. Steps not constrained by any edge are
// appended in insertion order.
func (pl *Plan) resolve() ([]int, error) {
	edges := make([]toposort.Edge, 0)
	for i := range pl.steps {
		for j := range pl.steps {
			if i == j || !isAncestorPath(pl.steps[i].Path, pl.steps[j].Path) {
				continue
			}
			if pl.steps[i].Kind == StepErase {
				// Children go before the erase of their ancestor.
				edges = append(edges, toposort.Edge{j, i})
			} else {
				edges = append(edges, toposort.Edge{i, j})
			}
		}
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("plan ordering failed: %w", err)
	}

	order := make([]int, 0, len(pl.steps))
	seen := make(map[int]bool, len(pl.steps))
	for _, node := range sorted {
		i, ok := node.(int)
		if !ok {
			continue
		}
		order = append(order, i)
		seen[i] = true
	}
	for i := range pl.steps {
		if !seen[i] {
			order = append(order, i)
		}
	}
	return order, nil
}

// isAncestorPath reports whether a strictly contains b.
func isAncestorPath(a, b pathkit.Path) bool {
	as, bs := a.String(), b.String()
	if as == "" || len(bs) <= len(as) || !strings.HasPrefix(bs, as) {
		return false
	}
	return as[len(as)-1] == '/' || bs[len(as)] == '/'
}
