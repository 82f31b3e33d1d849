package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElectronegativity(t *testing.T) {
	en, ok := Electronegativity("O")
	assert.True(t, ok)
	assert.InDelta(t, 3.44, en, 1e-9)

	_, ok = Electronegativity("Xq")
	assert.False(t, ok)

	assert.InDelta(t, DefaultElectronegativity, ElectronegativityOrDefault("Xq"), 1e-9)
	assert.InDelta(t, 1.90, ElectronegativityOrDefault("Cu"), 1e-9)
}

func TestOxidationStateSelection(t *testing.T) {
	t.Run("lowest positive", func(t *testing.T) {
		state, ok := LowestPositiveOxidationState("Fe")
		assert.True(t, ok)
		assert.Equal(t, 2, state)

		state, ok = LowestPositiveOxidationState("Cu")
		assert.True(t, ok)
		assert.Equal(t, 1, state)
	})

	t.Run("lowest negative", func(t *testing.T) {
		state, ok := LowestNegativeOxidationState("O")
		assert.True(t, ok)
		assert.Equal(t, -2, state)

		state, ok = LowestNegativeOxidationState("Cl")
		assert.True(t, ok)
		assert.Equal(t, -1, state)
	})

	t.Run("no state of the requested sign", func(t *testing.T) {
		_, ok := LowestNegativeOxidationState("Na")
		assert.False(t, ok)

		_, ok = LowestPositiveOxidationState("Xq")
		assert.False(t, ok)
	})
}

func TestIonicRadius(t *testing.T) {
	r, ok := IonicRadiusPM("Cl")
	assert.True(t, ok)
	assert.InDelta(t, 181.0, r, 1e-9)

	_, ok = IonicRadiusPM("Xq")
	assert.False(t, ok)
	assert.InDelta(t, DefaultIonicRadiusPM, IonicRadiusPMOrDefault("Xq"), 1e-9)
}
