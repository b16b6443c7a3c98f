// Package config loads rifle/ammunition/environment profiles describing a
// calculation session from TOML files, the same way stignarnia-co-atc and
// spatialmodel-inmap load their own scenario/config files.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/amiavia/ostermayer-jagd/internal/ballistics"
)

// VelocityBand is the TOML representation of a ballistics.VelocityBand.
type VelocityBand struct {
	ThresholdMS float64 `toml:"threshold_ms"`
	BC          float64 `toml:"bc"`
}

// Ammunition is the TOML representation of ballistics.Ammunition.
type Ammunition struct {
	Name             string         `toml:"name"`
	BulletMassGrain  float64        `toml:"bullet_mass_grain"`
	BCG1             float64        `toml:"bc_g1"`
	BCG7             float64        `toml:"bc_g7"`
	PreferredModel   string         `toml:"preferred_model"` // "", "g1", "g7"
	VelocityBands    []VelocityBand `toml:"velocity_bands"`
	MuzzleVelocityMS float64        `toml:"muzzle_velocity_ms"`
}

// RifleProfile is the TOML representation of ballistics.RifleProfile.
type RifleProfile struct {
	Ammo          Ammunition `toml:"ammo"`
	ZeroDistanceM float64    `toml:"zero_distance_m"`
	ZeroType      string     `toml:"zero_type"` // "standard" or "gee"
	SightHeightCM float64    `toml:"sight_height_cm"`
	DragModel     string     `toml:"drag_model"` // optional override, "" defers to ammo
}

// Environment is the TOML representation of ballistics.Environment.
//
// TemperatureC, PressureHPA, RelHumidity and AltitudeM are pointers so that
// an explicit zero (0 degC, dry 0.0 relative humidity, sea-level 0 m
// altitude) survives TOML decoding as the field's true value rather than
// being indistinguishable from "not set in the file" and silently replaced
// by the ISA default in ToEnvironment.
type Environment struct {
	TemperatureC *float64 `toml:"temperature_c"`
	PressureHPA  *float64 `toml:"pressure_hpa"`
	RelHumidity  *float64 `toml:"rel_humidity"`
	AltitudeM    *float64 `toml:"altitude_m"`
	WindSpeedMS  float64  `toml:"wind_speed_ms"`
	WindAngleDeg float64  `toml:"wind_angle_deg"`
}

// Session describes one calculation run: a named, UUID-tagged rifle
// profile and environment, plus the list of target distances to report a
// drop table across (the "batch calculation" convenience of SPEC_FULL.md
// §6).
type Session struct {
	ID               uuid.UUID `toml:"-"`
	Name             string    `toml:"name"`
	Profile          RifleProfile `toml:"profile"`
	Environment      Environment  `toml:"environment"`
	TargetDistancesM []float64    `toml:"target_distances_m"`
}

// Load reads and validates a Session from a TOML file at path.
func Load(path string) (Session, error) {
	var s Session
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Session{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	s.ID = uuid.New()
	if err := s.Validate(); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Validate checks the session for the preconditions the ballistics core
// requires, returning a wrapped error describing the first violation
// found rather than panicking.
func (s Session) Validate() error {
	if s.Profile.Ammo.BulletMassGrain <= 0 {
		return fmt.Errorf("config: bullet_mass_grain must be positive")
	}
	if s.Profile.Ammo.BCG1 <= 0 {
		return fmt.Errorf("config: bc_g1 must be positive")
	}
	if s.Profile.Ammo.MuzzleVelocityMS < 0 {
		return fmt.Errorf("config: muzzle_velocity_ms must be non-negative")
	}
	if s.Profile.ZeroDistanceM <= 0 {
		return fmt.Errorf("config: zero_distance_m must be positive")
	}
	if s.Profile.SightHeightCM <= 0 {
		return fmt.Errorf("config: sight_height_cm must be positive")
	}
	if len(s.TargetDistancesM) == 0 {
		return fmt.Errorf("config: target_distances_m must not be empty")
	}
	for _, d := range s.TargetDistancesM {
		if d <= 0 {
			return fmt.Errorf("config: target distance %g must be positive", d)
		}
	}
	return nil
}

func parseDragModel(s string) (*ballistics.DragModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "g1":
		m := ballistics.G1
		return &m, nil
	case "g7":
		m := ballistics.G7
		return &m, nil
	default:
		return nil, fmt.Errorf("config: unknown drag model %q", s)
	}
}

// ToAmmunition converts the TOML representation to ballistics.Ammunition.
func (a Ammunition) ToAmmunition() (ballistics.Ammunition, error) {
	preferred, err := parseDragModel(a.PreferredModel)
	if err != nil {
		return ballistics.Ammunition{}, err
	}

	var bands []ballistics.VelocityBand
	if len(a.VelocityBands) > 0 {
		for _, b := range a.VelocityBands {
			bands = append(bands, ballistics.VelocityBand{VelocityThresholdMS: b.ThresholdMS, BC: b.BC})
		}
		bands, err = ballistics.NewVelocityBands(bands)
		if err != nil {
			return ballistics.Ammunition{}, err
		}
	}

	return ballistics.Ammunition{
		Name:            a.Name,
		BulletMassGrain: a.BulletMassGrain,
		BCG1:            a.BCG1,
		BCG7:            a.BCG7,
		HasG7:           a.BCG7 > 0,
		VelocityBands:   bands,
		PreferredModel:  preferred,
		MuzzleVelocity:  a.MuzzleVelocityMS,
	}, nil
}

// ToProfile converts the TOML representation to ballistics.RifleProfile.
func (p RifleProfile) ToProfile() (ballistics.RifleProfile, error) {
	ammo, err := p.Ammo.ToAmmunition()
	if err != nil {
		return ballistics.RifleProfile{}, err
	}

	zeroType := ballistics.ZeroStandard
	switch strings.ToLower(strings.TrimSpace(p.ZeroType)) {
	case "", "standard":
		zeroType = ballistics.ZeroStandard
	case "gee":
		zeroType = ballistics.ZeroGEE
	default:
		return ballistics.RifleProfile{}, fmt.Errorf("config: unknown zero_type %q", p.ZeroType)
	}

	dragModel, err := parseDragModel(p.DragModel)
	if err != nil {
		return ballistics.RifleProfile{}, err
	}

	return ballistics.RifleProfile{
		Ammo:            ammo,
		ZeroDistanceM:   p.ZeroDistanceM,
		ZeroType:        zeroType,
		SightHeightCM:   p.SightHeightCM,
		DragModelChoice: dragModel,
	}, nil
}

// ToEnvironment converts the TOML representation to ballistics.Environment,
// falling back to ISA defaults for any scalar field left unset (nil) in the
// TOML file. An explicitly written zero (e.g. temperature_c = 0.0, a normal
// winter-hunting condition, or rel_humidity = 0.0, dry air) is a real value
// and is applied as-is, never conflated with "not present in the file".
func (e Environment) ToEnvironment() ballistics.Environment {
	base := ballistics.NewStandardEnvironment(e.WindSpeedMS, e.WindAngleDeg)
	if e.TemperatureC != nil {
		base.TemperatureC = *e.TemperatureC
	}
	if e.PressureHPA != nil {
		base.PressureHPA = *e.PressureHPA
	}
	if e.RelHumidity != nil {
		base.RelHumidity = *e.RelHumidity
	}
	if e.AltitudeM != nil {
		base.AltitudeM = *e.AltitudeM
	}
	return base
}
