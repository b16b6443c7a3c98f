package ballistics

const (
	solverAngleLowRad  = 0.0
	solverAngleHighRad = 0.02
	solverIterations   = 30
	geeOffsetM         = 0.04 // GEE bullet impacts 4cm above point of aim at zero distance
)

// zeroHeightTarget returns h_target, the height the bullet must cross at
// the zero distance for the given zero convention, per spec.md §4.6.
func zeroHeightTarget(p RifleProfile) float64 {
	sightHeightM := p.SightHeightCM / 100.0
	if p.ZeroType == ZeroGEE {
		return sightHeightM + geeOffsetM
	}
	return sightHeightM
}

// solveZeroAngle bisects the launch angle theta (radians, above horizontal)
// over [0, 0.02] so that the no-wind planar trajectory crosses hTarget at
// horizontal range dZero, per spec.md §4.6. The planar trajectory is
// launched from the bore origin (height 0), so hTarget is measured from the
// bore axis. It shares the atmosphere state with the 3-D integrator
// (invariant i in spec.md §3).
func solveZeroAngle(p RifleProfile, atm atmosphereState) float64 {
	hTarget := zeroHeightTarget(p)
	model := p.dragModel()
	v0 := p.Ammo.MuzzleVelocity

	lo, hi := solverAngleLowRad, solverAngleHighRad
	for i := 0; i < solverIterations; i++ {
		mid := (lo + hi) / 2
		y := integrate2D(p.Ammo, model, v0, mid, 0, p.ZeroDistanceM, atm)
		if y < hTarget {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
