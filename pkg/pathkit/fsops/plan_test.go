package fsops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathkit/pkg/pathkit"
	"github.com/arthur-debert/pathkit/pkg/pathkit/fsops"
)

func planLogger() zerolog.Logger {
	return pathkit.NewLogger(os.Stderr, zerolog.Disabled)
}

func TestPlanOrdering(t *testing.T) {
	dir := t.TempDir()
	sub := pathkit.MustNew(filepath.Join(dir, "sub"))
	file := pathkit.MustNew(filepath.Join(dir, "sub", "f.txt"))

	t.Run("parents sort before children regardless of insertion order", func(t *testing.T) {
		plan := fsops.NewPlan(planLogger()).
			CreateFile(file).
			CreateDirectory(sub)

		steps, err := plan.Steps()
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, fsops.StepCreateDirectory, steps[0].Kind)
		assert.Equal(t, fsops.StepCreateFile, steps[1].Kind)
	})

	t.Run("erase of an ancestor sorts after its children", func(t *testing.T) {
		plan := fsops.NewPlan(planLogger()).
			Erase(sub).
			Erase(file)

		steps, err := plan.Steps()
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, file.String(), steps[0].Path.String())
		assert.Equal(t, sub.String(), steps[1].Path.String())
	})

	t.Run("unrelated steps keep insertion order", func(t *testing.T) {
		a := pathkit.MustNew(filepath.Join(dir, "one"))
		b := pathkit.MustNew(filepath.Join(dir, "two"))
		plan := fsops.NewPlan(planLogger()).
			CreateDirectory(a).
			CreateDirectory(b)

		steps, err := plan.Steps()
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, a.String(), steps[0].Path.String())
		assert.Equal(t, b.String(), steps[1].Path.String())
	})
}

func TestPlanApply(t *testing.T) {
	dir := t.TempDir()
	sub := pathkit.MustNew(filepath.Join(dir, "tree"))
	inner := pathkit.MustNew(filepath.Join(dir, "tree", "inner"))
	file := pathkit.MustNew(filepath.Join(dir, "tree", "inner", "f.txt"))

	err := fsops.NewPlan(planLogger()).
		CreateFile(file).
		CreateDirectory(inner).
		CreateDirectory(sub).
		Apply()
	require.NoError(t, err)

	assert.True(t, fsops.IsDirectory(sub))
	assert.True(t, fsops.IsDirectory(inner))
	assert.True(t, fsops.IsRegularFile(file))

	t.Run("erase plan tears the tree down child-first", func(t *testing.T) {
		err := fsops.NewPlan(planLogger()).
			Erase(sub).
			Erase(file).
			Erase(inner).
			Apply()
		require.NoError(t, err)
		assert.False(t, fsops.Exists(sub))
	})

	t.Run("first failure stops the plan", func(t *testing.T) {
		missingParent := pathkit.MustNew(filepath.Join(dir, "no-such", "leaf"))
		after := pathkit.MustNew(filepath.Join(dir, "after"))
		err := fsops.NewPlan(planLogger()).
			CreateDirectory(missingParent).
			CreateDirectory(after).
			Apply()
		require.Error(t, err)
		assert.False(t, fsops.Exists(after))
	})
}
