package slide

// Resolve converts a signed target distance into the factor expected by
// the native edge slide transform.
//
// The relevant directional range is picked by the sign of target, so
// target and factor always share sign. A zero range means sliding is
// impossible in that direction and resolves to factor 0 rather than an
// error. With clamp enabled the factor is bounded to [-1, 1], since
// values beyond that move past the adjacent boundary.
func Resolve(d LoopDistance, target float64, clamp bool) float64 {
	maxDist := d.Positive
	if target < 0 {
		maxDist = d.Negative
	}
	if maxDist == 0 {
		return 0
	}

	factor := target / maxDist
	if clamp {
		if factor > 1 {
			factor = 1
		} else if factor < -1 {
			factor = -1
		}
	}
	return factor
}
