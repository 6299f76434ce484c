package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"option-terminal/src/eventmodels"
)

func TestLoadSolverConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadSolverConfig("")
		assert.NoError(t, err)
		assert.Equal(t, eventmodels.NewSolverConfig(), cfg)
	})

	t.Run("file overrides merge with defaults", func(t *testing.T) {
		data := `
solver:
  max_iterations: 50
  sigma_max: 3.0
`

		path := filepath.Join(t.TempDir(), "solver.yaml")
		assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := LoadSolverConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, 50, cfg.MaxIterations)
		assert.Equal(t, 3.0, cfg.SigmaMax)
		assert.Equal(t, eventmodels.NewSolverConfig().Tolerance, cfg.Tolerance)
	})

	t.Run("invalid constants are rejected", func(t *testing.T) {
		data := `
solver:
  sigma_min: 2.0
  sigma_max: 1.0
`

		path := filepath.Join(t.TempDir(), "solver.yaml")
		assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := LoadSolverConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadSolverConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
