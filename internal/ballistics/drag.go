package ballistics

const (
	// dragScaleConstant is K = rho_std/(2*SD_ref) with rho_std = 1.225
	// kg/m^3 and the G1/G7 reference sectional density SD_ref = 703.07
	// kg/m^2, per spec.md §4.5.
	dragScaleConstant = 0.000871
	stdAirDensity     = 1.225 // kg/m^3, rho_std
)

// dragDeceleration returns the magnitude of drag acceleration (m/s^2) for a
// bullet travelling at relative airspeed v (m/s) through air of density
// rho (kg/m^3) and speed of sound c (m/s), given its effective ballistic
// coefficient bc and drag model.
func dragDeceleration(v, bc, rho, c float64, model DragModel) float64 {
	mach := v / c
	cd := model.dragCoefficient(mach)
	return dragScaleConstant * (rho / stdAirDensity) * (cd / bc) * v * v
}
