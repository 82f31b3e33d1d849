package matfeas_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telluric-labs/matfeas"
	"github.com/telluric-labs/matfeas/pkg/domain"
	"github.com/telluric-labs/matfeas/pkg/ports"
)

type staticOracle struct{ energy float64 }

func (o staticOracle) PredictEnergyPerAtom(context.Context, domain.CandidateStructure) (float64, error) {
	return o.energy, nil
}

type staticHull struct{ ehull float64 }

func (h staticHull) EnergyAboveHull(context.Context, ports.PhaseEntry, []ports.PhaseEntry) (float64, error) {
	return h.ehull, nil
}

func TestEngineEvaluate(t *testing.T) {
	t.Run("full stack verdict", func(t *testing.T) {
		eng, err := matfeas.New(
			matfeas.WithEnergyPredictor(staticOracle{energy: -0.9}),
			matfeas.WithHullCalculator(staticHull{ehull: 0.05}),
		)
		require.NoError(t, err)

		result, err := eng.Evaluate(context.Background(), "CuCl")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictFeasible, result.Verdict)
		assert.Len(t, result.Decisions, 6)
	})

	t.Run("defaults degrade gracefully", func(t *testing.T) {
		eng, err := matfeas.New()
		require.NoError(t, err)

		result, err := eng.Evaluate(context.Background(), "CuCl")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictMetastable, result.Verdict)
	})

	t.Run("parse failure is the only error", func(t *testing.T) {
		eng, err := matfeas.New()
		require.NoError(t, err)

		_, err = eng.Evaluate(context.Background(), "123")
		require.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("custom thresholds apply", func(t *testing.T) {
		thresholds := matfeas.DefaultThresholds()
		thresholds.HullFeasibleMax = 0.01
		eng, err := matfeas.New(
			matfeas.WithEnergyPredictor(staticOracle{energy: -0.9}),
			matfeas.WithHullCalculator(staticHull{ehull: 0.05}),
			matfeas.WithThresholds(thresholds),
		)
		require.NoError(t, err)

		result, err := eng.Evaluate(context.Background(), "CuCl")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictMetastable, result.Verdict)
	})
}

func TestKnownSystems(t *testing.T) {
	eng, err := matfeas.New()
	require.NoError(t, err)

	systems := eng.KnownSystems()
	assert.Contains(t, systems, "Cl-Cu")
	assert.Contains(t, systems, "Mg-O")
}

func TestCatalogOverlayOption(t *testing.T) {
	overlay := `
systems:
  - elements: [K, Br]
    phases:
      - formula: KBr
        energy_per_atom: -0.95
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	t.Run("overlay extends the known systems", func(t *testing.T) {
		eng, err := matfeas.New(matfeas.WithCatalogOverlay(path))
		require.NoError(t, err)
		assert.Contains(t, eng.KnownSystems(), "Br-K")
	})

	t.Run("bad overlay fails construction", func(t *testing.T) {
		_, err := matfeas.New(matfeas.WithCatalogOverlay(filepath.Join(t.TempDir(), "absent.yaml")))
		require.Error(t, err)
	})
}

func TestHooksFire(t *testing.T) {
	verdicts := 0
	eng, err := matfeas.New(matfeas.WithHooks(domain.Hooks{
		OnVerdict: func(context.Context, string, domain.Verdict) { verdicts++ },
	}))
	require.NoError(t, err)

	_, err = eng.Evaluate(context.Background(), "MgO")
	require.NoError(t, err)
	assert.Equal(t, 1, verdicts)
}
