package vmath

import "math"

const FullTurnDeg = 360.0

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// WrapUnit folds x into [0, 1)
// Returns the folded value and the number of whole units removed (negative when x < 0)
func WrapUnit(x float64) (frac float64, whole int64) {
	w := math.Floor(x)
	frac = x - w
	// Floor of a tiny negative can leave frac == 1 after subtraction
	if frac >= 1 {
		frac = 0
		w++
	}
	return frac, int64(w)
}
