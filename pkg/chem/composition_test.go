package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telluric-labs/matfeas/pkg/domain"
)

func TestParseFormula(t *testing.T) {
	t.Run("simple binary", func(t *testing.T) {
		comp, err := ParseFormula("CuCl")
		require.NoError(t, err)
		assert.Equal(t, Composition{"Cu": 1, "Cl": 1}, comp)
	})

	t.Run("counts", func(t *testing.T) {
		comp, err := ParseFormula("Fe2O3")
		require.NoError(t, err)
		assert.Equal(t, Composition{"Fe": 2, "O": 3}, comp)
	})

	t.Run("repeated symbols accumulate", func(t *testing.T) {
		comp, err := ParseFormula("FeOFe")
		require.NoError(t, err)
		assert.Equal(t, Composition{"Fe": 2, "O": 1}, comp)
	})

	t.Run("absent count means one", func(t *testing.T) {
		comp, err := ParseFormula("NaAlSi3O8")
		require.NoError(t, err)
		assert.Equal(t, Composition{"Na": 1, "Al": 1, "Si": 3, "O": 8}, comp)
	})

	t.Run("no recognizable tokens", func(t *testing.T) {
		_, err := ParseFormula("xyz123")
		require.ErrorIs(t, err, domain.ErrParse)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseFormula("")
		require.ErrorIs(t, err, domain.ErrParse)
	})
}

func TestCompositionSystem(t *testing.T) {
	comp := MustParse("Fe2O3")
	assert.Equal(t, []string{"Fe", "O"}, comp.System())

	// Stoichiometry does not change the system.
	assert.Equal(t, MustParse("FeO").System(), comp.System())
}

func TestTotalAtoms(t *testing.T) {
	assert.Equal(t, 5, MustParse("Fe2O3").TotalAtoms())
	assert.Equal(t, 2, MustParse("CuCl").TotalAtoms())
}

func TestSplitByElectronegativity(t *testing.T) {
	t.Run("binary splits one and one", func(t *testing.T) {
		cations, anions := MustParse("NaCl").SplitByElectronegativity()
		assert.Equal(t, []string{"Na"}, cations)
		assert.Equal(t, []string{"Cl"}, anions)
	})

	t.Run("odd count favors the anion half", func(t *testing.T) {
		cations, anions := MustParse("NaAlO2").SplitByElectronegativity()
		// EN order: Na (0.93) < Al (1.61) < O (3.44), midpoint at 1.
		assert.Equal(t, []string{"Na"}, cations)
		assert.Equal(t, []string{"Al", "O"}, anions)
	})

	t.Run("unknown elements use the default electronegativity", func(t *testing.T) {
		// Xq is unknown (default 2.0), so it sorts between Cu (1.90) and Cl (3.16).
		cations, anions := MustParse("CuXqCl2").SplitByElectronegativity()
		assert.Equal(t, []string{"Cu"}, cations)
		assert.Equal(t, []string{"Xq", "Cl"}, anions)
	})

	t.Run("single element keeps a cation half", func(t *testing.T) {
		cations, anions := MustParse("Cu").SplitByElectronegativity()
		assert.Equal(t, []string{"Cu"}, cations)
		assert.Empty(t, anions)
	})
}
