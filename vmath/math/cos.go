package math

import (
	stdmath "math"

	"github.com/courbet-space/external-arm-optimized-routines/vmath"
)

// Cosf computes the cosine of each float32 lane.
//
// The fast path covers |x| < 2^20: the magnitude is reduced by multiples of
// pi/2 into [-pi/4, pi/4], a shared degree-10 polynomial chain evaluates
// sin(r)/r or cos(r) per lane depending on the quadrant parity, and the sign
// follows from the quadrant count. Lanes at or beyond 2^20, including Inf and
// NaN, take the scalar reference. Declared error bound: 2.5 ULP; the largest
// errors sit near arguments like 0x1.dea2f2p+19 whose reduced argument is
// smallest.
func Cosf(x vmath.Vec[float32]) vmath.Vec[float32] {
	ix := vmath.BitCastF32ToU32(x)
	ia := vmath.And(ix, vmath.Set[uint32](0x7fffffff))
	special := vmath.RebindMask[uint32, float32](
		vmath.GreaterEqual(ia, vmath.Set(trigRangeBits_u32)))

	r, n := trigReduceF32(vmath.BitCastU32ToF32(ia))

	// cos(r + n*pi/2): odd quadrants evaluate the sine series, and the
	// factor is negated when (n+1) has bit 1 set (quadrants 1 and 2).
	one := vmath.Set[int32](1)
	two := vmath.Set[int32](2)
	odd := vmath.Equal(vmath.And(n, one), one)
	neg := vmath.Equal(vmath.And(vmath.Add(n, one), two), two)

	y := trigCombineF32(r,
		vmath.RebindMask[int32, float32](odd),
		vmath.RebindMask[int32, float32](neg))
	return vmath.CallScalar(cosfScalar, x, y, special)
}

// CosfSlice computes the cosine of every element of src into dst, processing
// vector-width chunks. Excess elements of the longer slice are ignored.
// dst and src may be the same slice.
func CosfSlice(dst, src []float32) {
	n := min(len(dst), len(src))
	step := vmath.MaxLanes[float32]()
	for i := 0; i < n; i += step {
		vmath.Store(Cosf(vmath.Load(src[i:n])), dst[i:n])
	}
}

func init() {
	registerContract(Contract{
		Name:      "cosf",
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
		slice32:  CosfSlice,
		scalar32: cosfScalar,
		ref:      stdmath.Cos,
	})
}
