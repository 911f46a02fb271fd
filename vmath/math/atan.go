package math

import (
	stdmath "math"

	"github.com/courbet-space/external-arm-optimized-routines/vmath"
)

// Atan computes the arctangent of each float64 lane.
//
// The polynomial argument z is |x| itself when |x| <= 1 and -1/|x| when
// |x| > 1, with pi/2 added back in the reduced case; both choices are made
// branchlessly per lane. The result is computed on the magnitude and the
// input's sign bit is XORed back in, so Atan(-x) == -Atan(x) bit-exactly.
//
// Lanes with |x| below 2^-30 or at and beyond 2^54, plus Inf and NaN, take
// the scalar reference: tiny inputs must return x itself without the
// polynomial's rounding noise, and the boundary classes must raise exactly
// the IEEE exception flags the scalar function raises. Declared error
// bound: 3.5 ULP, largest near |x| = 1 where the two evaluation branches
// meet.
func Atan(x vmath.Vec[float64]) vmath.Vec[float64] {
	ix := vmath.BitCastF64ToU64(x)
	sign := vmath.And(ix, vmath.Set[uint64](0x8000000000000000))

	// One unsigned compare of the biased exponent flags both tails plus
	// Inf and NaN: exponents below the tiny bound wrap around.
	exp := vmath.And(vmath.ShiftRight(ix, 52), vmath.Set[uint64](0x7ff))
	special := vmath.RebindMask[uint64, float64](vmath.GreaterThan(
		vmath.Sub(exp, vmath.Set(atanTinyBound_u64)),
		vmath.Set(atanBigBound_u64-atanTinyBound_u64)))

	ax := vmath.Abs(x)
	one := vmath.Set[float64](1)
	red := vmath.GreaterThan(ax, one)

	// atan(t) = pi/2 - atan(1/t) for t > 1. Negating the reciprocal folds
	// the subtraction into the shared tail: z and -1/z give the same even
	// powers, and the odd final term carries the needed minus sign.
	z := vmath.Merge(vmath.Div(vmath.Neg(one), ax), ax, red)
	shift := vmath.Merge(vmath.Set(atanPiOver2_f64), vmath.Zero[float64](), red)

	z2 := vmath.Mul(z, z)
	p := vmath.Set(atanPoly_f64[len(atanPoly_f64)-1])
	for i := len(atanPoly_f64) - 2; i >= 0; i-- {
		p = vmath.MulAdd(p, z2, vmath.Set(atanPoly_f64[i]))
	}
	z3 := vmath.Mul(z2, z)
	y := vmath.Add(shift, vmath.MulAdd(p, z3, z))

	y = vmath.BitCastU64ToF64(vmath.Xor(vmath.BitCastF64ToU64(y), sign))
	return vmath.CallScalar(atanScalar, x, y, special)
}

// AtanSlice computes the arctangent of every element of src into dst,
// processing vector-width chunks. Excess elements of the longer slice are
// ignored. dst and src may be the same slice.
func AtanSlice(dst, src []float64) {
	n := min(len(dst), len(src))
	step := vmath.MaxLanes[float64]()
	for i := 0; i < n; i += step {
		vmath.Store(Atan(vmath.Load(src[i:n])), dst[i:n])
	}
}

func init() {
	registerContract(Contract{
		Name:             "atan",
		Arity:            1,
		Precision:        Double,
		DomainLo:         -10,
		DomainHi:         10,
		ULPBound:         3.5,
		WantFPExceptions: true,
		Intervals: []Interval{
			{0, 0x1p-30, 10000},
			{stdmath.Copysign(0, -1), -0x1p-30, 10000},
			{0x1p-30, 0x1p53, 900000},
			{-0x1p-30, -0x1p53, 900000},
			{0x1p53, stdmath.Inf(1), 10000},
			{-0x1p53, stdmath.Inf(-1), 10000},
		},
		slice64:  AtanSlice,
		scalar64: atanScalar,
		ref:      stdmath.Atan,
	})
}
