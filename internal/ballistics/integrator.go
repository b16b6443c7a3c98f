package ballistics

import "math"

const (
	gravity             = 9.81  // m/s^2
	maxFlightTimeS      = 5.0   // simulated-flight-time safety cap, spec.md §4.7
	stepNormal          = 0.001 // s
	stepTransonic       = 0.0005
	transonicMachLow    = 0.9
	transonicMachHigh   = 1.1
)

// windComponents decomposes wind speed/angle into headwind and crosswind
// components per spec.md §4.7: v_head positive opposes the bullet,
// v_cross positive blows from the right into the bullet.
func windComponents(env Environment) (vHead, vCross float64) {
	rad := env.WindAngleDeg * math.Pi / 180.0
	return env.WindSpeedMS * math.Cos(rad), env.WindSpeedMS * math.Sin(rad)
}

// integrate2D runs the no-wind, planar variant of the point-mass integrator
// used exclusively by the zero-angle solver: fixed 1 ms step, no adaptive
// refinement, no lateral axis. It returns the height y at the point the
// loop terminates (either x has reached targetM or the 5 s cap fired),
// without interpolating to the exact target range.
func integrate2D(ammo Ammunition, model DragModel, v0, theta, sightHeightM, targetM float64, atm atmosphereState) float64 {
	x, y := 0.0, -sightHeightM
	vx := v0 * math.Cos(theta)
	vy := v0 * math.Sin(theta)
	t := 0.0

	for x < targetM && t < maxFlightTimeS {
		vr := math.Hypot(vx, vy)
		dragAx, dragAy := 0.0, 0.0
		if vr > 0 {
			bc := effectiveBC(ammo, vr, model)
			a := dragDeceleration(vr, bc, atm.density, atm.speedOfSound, model)
			dragAx, dragAy = a*vx/vr, a*vy/vr
		}

		dt := stepNormal
		vx -= dragAx * dt
		vy -= (gravity + dragAy) * dt
		x += vx * dt
		y += vy * dt
		t += dt
	}
	return y
}

// integrate3D runs the full wind-coupled 3-D point-mass integrator per
// spec.md §4.7 and returns the raw (unrounded) result at the point the
// loop terminates.
func integrate3D(ammo Ammunition, model DragModel, v0, theta, sightHeightM, targetM float64, atm atmosphereState, env Environment) RawResult {
	vHead, vCross := windComponents(env)

	x, y, z := 0.0, -sightHeightM, 0.0
	vx := v0 * math.Cos(theta)
	vy := v0 * math.Sin(theta)
	vz := 0.0
	t := 0.0

	for x < targetM && t < maxFlightTimeS {
		vxr := vx - vHead
		vyr := vy
		vzr := vz - vCross
		vr := math.Sqrt(vxr*vxr + vyr*vyr + vzr*vzr)

		dt := stepNormal
		dragAx, dragAy, dragAz := 0.0, 0.0, 0.0
		if vr > 0 {
			mach := vr / atm.speedOfSound
			if mach > transonicMachLow && mach < transonicMachHigh {
				dt = stepTransonic
			}
			bc := effectiveBC(ammo, vr, model)
			a := dragDeceleration(vr, bc, atm.density, atm.speedOfSound, model)
			dragAx, dragAy, dragAz = a*vxr/vr, a*vyr/vr, a*vzr/vr
		}

		vx -= dragAx * dt
		vy -= (gravity + dragAy) * dt
		vz -= dragAz * dt
		x += vx * dt
		y += vy * dt
		z += vz * dt
		t += dt
	}

	velocityExact := math.Sqrt(vx*vx + vy*vy + vz*vz)
	massKg := ammo.BulletMassGrain * 0.0000648

	return RawResult{
		DropCM:       -y * 100,
		DriftCM:      z * 100,
		TimeS:        t,
		VelocityMS:   velocityExact,
		EnergyJ:      0.5 * massKg * velocityExact * velocityExact,
		MachAtTarget: velocityExact / atm.speedOfSound,
	}
}
