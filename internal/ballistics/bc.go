package ballistics

// effectiveBC chooses the ballistic coefficient to use at the current
// relative airspeed v under the active drag model, per spec.md §4.3:
//
//  1. a non-empty velocity-band list takes priority: scan in (descending
//     threshold) order and return the first band whose threshold <= v; if
//     none qualifies, return the lowest-threshold (last) band;
//  2. else G7 model with an ammo-supplied G7 BC returns that BC;
//  3. else fall back to the ammo's G1 BC.
func effectiveBC(ammo Ammunition, v float64, model DragModel) float64 {
	if len(ammo.VelocityBands) > 0 {
		for _, band := range ammo.VelocityBands {
			if band.VelocityThresholdMS <= v {
				return band.BC
			}
		}
		return ammo.VelocityBands[len(ammo.VelocityBands)-1].BC
	}
	if model == G7 && ammo.HasG7 {
		return ammo.BCG7
	}
	return ammo.BCG1
}
