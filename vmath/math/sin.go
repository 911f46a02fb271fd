package math

import (
	stdmath "math"

	"github.com/courbet-space/external-arm-optimized-routines/vmath"
)

// Sinf computes the sine of each float32 lane.
//
// The reduction and polynomial chain are shared with Cosf; only the quadrant
// selection differs. The result is computed on |x| and the input's sign bit
// is XORed back in at the end, so Sinf(-x) == -Sinf(x) bit-exactly and
// Sinf(±0) returns ±0. Lanes at or beyond 2^20, including Inf and NaN, take
// the scalar reference. Declared error bound: 2.5 ULP.
func Sinf(x vmath.Vec[float32]) vmath.Vec[float32] {
	ix := vmath.BitCastF32ToU32(x)
	sign := vmath.And(ix, vmath.Set[uint32](0x80000000))
	ia := vmath.And(ix, vmath.Set[uint32](0x7fffffff))
	special := vmath.RebindMask[uint32, float32](
		vmath.GreaterEqual(ia, vmath.Set(trigRangeBits_u32)))

	r, n := trigReduceF32(vmath.BitCastU32ToF32(ia))

	// sin(r + n*pi/2): even quadrants evaluate the sine series, and the
	// factor is negated when n has bit 1 set (quadrants 2 and 3).
	one := vmath.Set[int32](1)
	two := vmath.Set[int32](2)
	even := vmath.Equal(vmath.And(n, one), vmath.Zero[int32]())
	neg := vmath.Equal(vmath.And(n, two), two)

	y := trigCombineF32(r,
		vmath.RebindMask[int32, float32](even),
		vmath.RebindMask[int32, float32](neg))
	y = vmath.BitCastU32ToF32(vmath.Xor(vmath.BitCastF32ToU32(y), sign))
	return vmath.CallScalar(sinfScalar, x, y, special)
}

// SinfSlice computes the sine of every element of src into dst, processing
// vector-width chunks. Excess elements of the longer slice are ignored.
// dst and src may be the same slice.
func SinfSlice(dst, src []float32) {
	n := min(len(dst), len(src))
	step := vmath.MaxLanes[float32]()
	for i := 0; i < n; i += step {
		vmath.Store(Sinf(vmath.Load(src[i:n])), dst[i:n])
	}
}

func init() {
	registerContract(Contract{
		Name:      "sinf",
		Arity:     1,
		Precision: Single,
		DomainLo:  -3.1,
		DomainHi:  3.1,
		ULPBound:  2.5,
		Intervals: []Interval{
			{0, 0x1p-4, 10000},
			{0x1p-4, 0x1p4, 500000},
			{0x1p4, 0x1p20, 100000},
			{0x1p20, stdmath.Inf(1), 10000},
			{stdmath.Copysign(0, -1), stdmath.Inf(-1), 10000},
		},
		slice32:  SinfSlice,
		scalar32: sinfScalar,
		ref:      stdmath.Sin,
	})
}
