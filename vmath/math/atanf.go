package math

import (
	stdmath "math"

	"github.com/courbet-space/external-arm-optimized-routines/vmath"
)

// Atanf computes the arctangent of each float32 lane.
//
// Same structure as Atan, with a degree-15 odd polynomial in the form
// z * Q(z^2). The fast path covers 2^-30 <= |x| <= 2^30; lanes outside that
// window, plus Inf and NaN, take the scalar reference. Atanf(-x) == -Atanf(x)
// bit-exactly. Declared error bound: 3.5 ULP.
func Atanf(x vmath.Vec[float32]) vmath.Vec[float32] {
	ix := vmath.BitCastF32ToU32(x)
	sign := vmath.And(ix, vmath.Set[uint32](0x80000000))
	ia := vmath.And(ix, vmath.Set[uint32](0x7fffffff))
	special := vmath.RebindMask[uint32, float32](vmath.GreaterThan(
		vmath.Sub(ia, vmath.Set(atanfTinyBits_u32)),
		vmath.Set(atanfBigBits_u32-atanfTinyBits_u32)))

	ax := vmath.Abs(x)
	one := vmath.Set[float32](1)
	red := vmath.GreaterThan(ax, one)

	z := vmath.Merge(vmath.Div(vmath.Neg(one), ax), ax, red)
	shift := vmath.Merge(vmath.Set(atanfPiOver2_f32), vmath.Zero[float32](), red)

	z2 := vmath.Mul(z, z)
	q := vmath.Set(atanfPoly_f32[len(atanfPoly_f32)-1])
	for i := len(atanfPoly_f32) - 2; i >= 0; i-- {
		q = vmath.MulAdd(q, z2, vmath.Set(atanfPoly_f32[i]))
	}
	y := vmath.MulAdd(z, q, shift)

	y = vmath.BitCastU32ToF32(vmath.Xor(vmath.BitCastF32ToU32(y), sign))
	return vmath.CallScalar(atanfScalar, x, y, special)
}

// AtanfSlice computes the arctangent of every element of src into dst,
// processing vector-width chunks. Excess elements of the longer slice are
// ignored. dst and src may be the same slice.
func AtanfSlice(dst, src []float32) {
	n := min(len(dst), len(src))
	step := vmath.MaxLanes[float32]()
	for i := 0; i < n; i += step {
		vmath.Store(Atanf(vmath.Load(src[i:n])), dst[i:n])
	}
}

func init() {
	registerContract(Contract{
		Name:             "atanf",
		Arity:            1,
		Precision:        Single,
		DomainLo:         -10,
		DomainHi:         10,
		ULPBound:         3.5,
		WantFPExceptions: true,
		Intervals: []Interval{
			{0, 0x1p-30, 10000},
			{stdmath.Copysign(0, -1), -0x1p-30, 10000},
			{0x1p-30, 1, 200000},
			{-0x1p-30, -1, 200000},
			{1, 0x1p30, 200000},
			{-1, -0x1p30, 200000},
			{0x1p30, stdmath.Inf(1), 10000},
			{-0x1p30, stdmath.Inf(-1), 10000},
		},
		slice32:  AtanfSlice,
		scalar32: atanfScalar,
		ref:      stdmath.Atan,
	})
}
