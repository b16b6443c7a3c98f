package ballistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedOfSound(t *testing.T) {
	assert.InDelta(t, 340.3, SpeedOfSound(15), 0.2)
	assert.InDelta(t, 325.1, SpeedOfSound(-10), 0.2)
	assert.InDelta(t, 349.0, SpeedOfSound(30), 0.2)
}

func TestAirDensityISA(t *testing.T) {
	rho := AirDensity(15, 1013.25, 0.5)
	assert.InDelta(t, 1.224, rho, 0.01)
}

func TestPressureFromAltitude(t *testing.T) {
	assert.InDelta(t, 1013.25, PressureFromAltitude(0, 1013.25), 1e-9)
	assert.InDelta(t, 1013.25, PressureFromAltitude(0, 0), 1e-9, "zero sea-level pressure defaults to ISA")
	assert.InDelta(t, 898.76, PressureFromAltitude(1000, 1013.25), 0.5)
	assert.InDelta(t, 845.59, PressureFromAltitude(1500, 1013.25), 0.5)
	assert.InDelta(t, 616.6, PressureFromAltitude(4000, 1013.25), 1.0)
}

func TestHigherHumidityLowersDensity(t *testing.T) {
	dry := AirDensity(20, 1013.25, 0.0)
	humid := AirDensity(20, 1013.25, 1.0)
	assert.Less(t, humid, dry, "moist air is less dense than dry air at the same T,P")
}
