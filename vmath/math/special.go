package math

import stdmath "math"

// Scalar reference implementations, spliced into the lanes the fast paths
// reject. The float32 forms evaluate in float64 and round once, which is
// exact for every input class the gates can flag (zero, huge, Inf, NaN).

func cosfScalar(x float32) float32 {
	return float32(stdmath.Cos(float64(x)))
}

func sinfScalar(x float32) float32 {
	return float32(stdmath.Sin(float64(x)))
}

func atanScalar(x float64) float64 {
	return stdmath.Atan(x)
}

func atanfScalar(x float32) float32 {
	return float32(stdmath.Atan(float64(x)))
}
