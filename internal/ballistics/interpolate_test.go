package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolateClampsAtEnds(t *testing.T) {
	table := []dragPoint{{0.0, 1.0}, {1.0, 2.0}, {2.0, 4.0}}

	assert.Equal(t, 1.0, interpolate(-1.0, table), "below first point clamps to first Cd")
	assert.Equal(t, 4.0, interpolate(10.0, table), "above last point clamps to last Cd")
}

func TestInterpolateLinear(t *testing.T) {
	table := []dragPoint{{0.0, 0.0}, {1.0, 1.0}, {2.0, 5.0}}

	assert.InDelta(t, 0.5, interpolate(0.5, table), 1e-12)
	assert.InDelta(t, 3.0, interpolate(1.5, table), 1e-12)
	assert.Equal(t, 1.0, interpolate(1.0, table))
}

func TestDragTablesAscendingAndSpanFullMachRange(t *testing.T) {
	for name, table := range map[string][]dragPoint{"G1": g1Table, "G7": g7Table} {
		t.Run(name, func(t *testing.T) {
			require := assert.New(t)
			require.Equal(0.0, table[0].mach)
			require.Equal(5.0, table[len(table)-1].mach)
			for i := 1; i < len(table); i++ {
				require.Greater(table[i].mach, table[i-1].mach, "table must be strictly ascending")
			}
		})
	}
}
