package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telluric-labs/matfeas/pkg/chem"
)

func TestBuiltinCompeting(t *testing.T) {
	lib := Builtin()

	t.Run("known binary system", func(t *testing.T) {
		phases := lib.Competing(chem.MustParse("CuCl").System())
		require.Len(t, phases, 4)

		byFormula := map[string]float64{}
		for _, p := range phases {
			byFormula[p.Formula] = p.EnergyPerAtom
		}
		assert.InDelta(t, 0.0, byFormula["Cu"], 1e-9)
		assert.InDelta(t, -0.8, byFormula["CuCl"], 1e-9)
		assert.InDelta(t, -0.6, byFormula["CuCl2"], 1e-9)
	})

	t.Run("stoichiometry does not change the key", func(t *testing.T) {
		assert.Equal(t,
			lib.Competing(chem.MustParse("FeO").System()),
			lib.Competing(chem.MustParse("Fe2O3").System()),
		)
	})

	t.Run("unseen system yields empty", func(t *testing.T) {
		assert.Empty(t, lib.Competing(chem.MustParse("KBr").System()))
	})

	t.Run("no superset matching", func(t *testing.T) {
		// Fe-Mg-O is not a key even though Fe-O and Mg-O are.
		assert.Empty(t, lib.Competing([]string{"Fe", "Mg", "O"}))
	})
}

func TestSystemsSorted(t *testing.T) {
	systems := Builtin().Systems()
	require.Len(t, systems, 6)
	assert.Equal(t, []string{"Al-Na-O-Si", "Cl-Cu", "Cl-Na", "Fe-O", "Mg-O", "O-Si"}, systems)
}

func TestLoadOverlay(t *testing.T) {
	overlay := `
systems:
  - elements: [Cu, Cl]
    phases:
      - formula: CuCl
        energy_per_atom: -0.75
  - elements: [K, Br]
    phases:
      - formula: K
        energy_per_atom: 0.0
      - formula: Br2
        energy_per_atom: 0.0
      - formula: KBr
        energy_per_atom: -0.95
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	lib := Builtin()
	require.NoError(t, lib.Load(path))

	t.Run("overlay replaces the builtin system wholesale", func(t *testing.T) {
		phases := lib.Competing([]string{"Cl", "Cu"})
		require.Len(t, phases, 1)
		assert.Equal(t, "CuCl", phases[0].Formula)
		assert.InDelta(t, -0.75, phases[0].EnergyPerAtom, 1e-9)
	})

	t.Run("overlay adds new systems", func(t *testing.T) {
		phases := lib.Competing([]string{"Br", "K"})
		require.Len(t, phases, 3)
	})

	t.Run("untouched systems survive", func(t *testing.T) {
		assert.Len(t, lib.Competing([]string{"Mg", "O"}), 3)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := Builtin().Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("systems: {nope"), 0o644))
		require.Error(t, Builtin().Load(path))
	})

	t.Run("unparseable phase formula", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "badformula.yaml")
		content := "systems:\n  - elements: [Cu, Cl]\n    phases:\n      - formula: \"???\"\n        energy_per_atom: 0.0\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		require.Error(t, Builtin().Load(path))
	})
}
