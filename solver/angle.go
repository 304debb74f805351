package solver

import "math"

// Angle inputs may arrive in degrees or radians; the original
// calculator disambiguated by magnitude and this engine keeps that
// contract. Any angle with |v| > 2π is treated as degrees and
// converted for solving. Derived angles are reported in degrees.
// The heuristic misreads small degree values (a true 3° input is
// taken as radians); callers wanting certainty pre-convert.

func degreesToRadians(deg float64) float64 { return deg * math.Pi / 180 }

func radiansToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// normalizeAngle converts a raw input angle to radians for solving.
func normalizeAngle(v float64) float64 {
	if math.Abs(v) > 2*math.Pi {
		return degreesToRadians(v)
	}
	return v
}
