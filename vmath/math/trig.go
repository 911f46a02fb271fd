package math

import (
	"github.com/courbet-space/external-arm-optimized-routines/vmath"
)

// trigReduceF32 maps a non-negative input below 2^20 onto [-pi/4, pi/4] plus
// the integer count of pi/2 multiples removed.
//
// The quotient is rounded by biasing with a large power of two: adding
// 1.5*2^23 to ax * 2/pi forces the significand to hold round(ax * 2/pi)
// directly, and subtracting the bias back recovers it as an exact
// integer-valued float. The subtraction of n*(pi/2) then runs high-to-low
// through the three-way split of pi/2, each step a single fused multiply-add,
// so the reduced argument keeps its low bits even when ax lands close to a
// multiple of pi/2.
func trigReduceF32(ax vmath.Vec[float32]) (vmath.Vec[float32], vmath.Vec[int32]) {
	shift := vmath.Set(trigShift_f32)
	q := vmath.MulAdd(ax, vmath.Set(trigInvPio2_f32), shift)
	nf := vmath.Sub(q, shift)
	r := vmath.MulAdd(nf, vmath.Set(trigNegPio2Hi_f32), ax)
	r = vmath.MulAdd(nf, vmath.Set(trigNegPio2Lo_f32), r)
	r = vmath.MulAdd(nf, vmath.Set(trigNegPio2Ex_f32), r)
	return r, vmath.ConvertToInt32(nf)
}

// trigCombineF32 finishes a reduced sine or cosine evaluation branchlessly.
// Lanes flagged in sinLanes evaluate the sin(r)/r series and multiply by r;
// the remaining lanes evaluate the cos(r) series and multiply by 1. negLanes
// flips the sign of that factor for the lower half of the circle. Both series
// share one multiply-add chain; only the coefficients are selected per lane.
func trigCombineF32(r vmath.Vec[float32], sinLanes, negLanes vmath.Mask[float32]) vmath.Vec[float32] {
	r2 := vmath.Mul(r, r)

	p := vmath.Merge(vmath.Set(trigSinC10_f32), vmath.Set(trigCosC10_f32), sinLanes)
	p = vmath.MulAdd(p, r2, vmath.Merge(vmath.Set(trigSinC8_f32), vmath.Set(trigCosC8_f32), sinLanes))
	p = vmath.MulAdd(p, r2, vmath.Merge(vmath.Set(trigSinC6_f32), vmath.Set(trigCosC6_f32), sinLanes))
	p = vmath.MulAdd(p, r2, vmath.Merge(vmath.Set(trigSinC4_f32), vmath.Set(trigCosC4_f32), sinLanes))
	p = vmath.MulAdd(p, r2, vmath.Merge(vmath.Set(trigSinC2_f32), vmath.Set(trigCosC2_f32), sinLanes))
	one := vmath.Set[float32](1)
	p = vmath.MulAdd(p, r2, one)

	f := vmath.Merge(r, one, sinLanes)
	f = vmath.Merge(vmath.Neg(f), f, negLanes)
	return vmath.Mul(f, p)
}
