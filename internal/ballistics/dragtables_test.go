package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragModelString(t *testing.T) {
	assert.Equal(t, "G1", G1.String())
	assert.Equal(t, "G7", G7.String())
}

func TestResolvedDragModelPrecedence(t *testing.T) {
	g7 := G7
	g1 := G1

	ammoPrefersG7 := Ammunition{PreferredModel: &g7}
	profile := RifleProfile{Ammo: ammoPrefersG7}
	assert.Equal(t, G7, profile.ResolvedDragModel(), "ammo preference wins over default")

	profile.DragModelChoice = &g1
	assert.Equal(t, G1, profile.ResolvedDragModel(), "explicit profile choice wins over ammo preference")

	noPreference := RifleProfile{Ammo: Ammunition{}}
	assert.Equal(t, G1, noPreference.ResolvedDragModel(), "defaults to G1")
}
