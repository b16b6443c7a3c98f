package config

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amiavia/ostermayer-jagd/internal/ballistics"
)

func TestLoadSessionFromTOML(t *testing.T) {
	session, err := Load("../../testdata/session.toml")
	require.NoError(t, err)

	assert.Equal(t, "308-eldx-gee100", session.Name)
	assert.NotEqual(t, [16]byte{}, [16]byte(session.ID))
	assert.Len(t, session.TargetDistancesM, 5)

	profile, err := session.Profile.ToProfile()
	require.NoError(t, err)
	assert.Equal(t, ballistics.ZeroGEE, profile.ZeroType)
	assert.Equal(t, 792.0, profile.Ammo.MuzzleVelocity)
	assert.True(t, profile.Ammo.HasG7)

	env := session.Environment.ToEnvironment()
	assert.Equal(t, 15.0, env.TemperatureC)
	assert.Equal(t, 90.0, env.WindAngleDeg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("../../testdata/does-not-exist.toml")
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveZeroDistance(t *testing.T) {
	s := Session{
		Profile: RifleProfile{
			Ammo:          Ammunition{BulletMassGrain: 150, BCG1: 0.4},
			ZeroDistanceM: 0,
			SightHeightCM: 4.5,
		},
		TargetDistancesM: []float64{100},
	}
	assert.Error(t, s.Validate())
}

func TestToProfileRejectsUnknownZeroType(t *testing.T) {
	p := RifleProfile{
		Ammo:          Ammunition{BulletMassGrain: 150, BCG1: 0.4},
		ZeroDistanceM: 100,
		SightHeightCM: 4.5,
		ZeroType:      "nonsense",
	}
	_, err := p.ToProfile()
	assert.Error(t, err)
}

func TestToEnvironmentPreservesExplicitZero(t *testing.T) {
	const doc = `
temperature_c = 0.0
rel_humidity = 0.0
pressure_hpa = 980.0
altitude_m = 0.0
wind_speed_ms = 0.0
wind_angle_deg = 0.0
`
	var e Environment
	_, err := toml.Decode(doc, &e)
	require.NoError(t, err)

	env := e.ToEnvironment()
	assert.Equal(t, 0.0, env.TemperatureC, "freezing temperature must not fall back to the ISA default")
	assert.Equal(t, 0.0, env.RelHumidity, "dry air must not fall back to the ISA default")
	assert.Equal(t, 0.0, env.AltitudeM)
	assert.Equal(t, 980.0, env.PressureHPA)
}

func TestToEnvironmentFallsBackWhenUnset(t *testing.T) {
	const doc = `
pressure_hpa = 980.0
wind_speed_ms = 2.0
wind_angle_deg = 45.0
`
	var e Environment
	_, err := toml.Decode(doc, &e)
	require.NoError(t, err)

	standard := ballistics.NewStandardEnvironment(2.0, 45.0)
	env := e.ToEnvironment()
	assert.Equal(t, standard.TemperatureC, env.TemperatureC, "unset temperature_c should keep the ISA default")
	assert.Equal(t, standard.RelHumidity, env.RelHumidity, "unset rel_humidity should keep the ISA default")
	assert.Equal(t, 980.0, env.PressureHPA)
}

func TestToAmmunitionValidatesVelocityBandOrder(t *testing.T) {
	a := Ammunition{
		BulletMassGrain: 150,
		BCG1:            0.4,
		VelocityBands: []VelocityBand{
			{ThresholdMS: 400, BC: 0.3},
			{ThresholdMS: 700, BC: 0.35},
		},
	}
	_, err := a.ToAmmunition()
	assert.Error(t, err, "ascending thresholds are invalid")
}
