package math

import (
	stdmath "math"
	"math/rand"
)

// ULPError32 measures how far got is from the float64 reference want, in
// units in the last place of the float32 format at want's magnitude.
func ULPError32(got float32, want float64) float64 {
	if stdmath.IsNaN(want) {
		if got != got {
			return 0
		}
		return stdmath.Inf(1)
	}
	if stdmath.IsInf(want, 0) || stdmath.IsInf(float64(got), 0) {
		if float64(got) == want {
			return 0
		}
		return stdmath.Inf(1)
	}
	if want == 0 {
		if got == 0 {
			return 0
		}
		return stdmath.Abs(float64(got)) / 0x1p-149
	}
	_, exp := stdmath.Frexp(want)
	ulp := stdmath.Ldexp(1, max(exp-24, -149))
	return stdmath.Abs(float64(got)-want) / ulp
}

// ULPError64 measures the distance between got and want in float64 ULPs by
// walking the ordered bit encoding: adjacent finite floats differ by exactly
// one key, so the key difference counts representable values between them.
func ULPError64(got, want float64) float64 {
	if stdmath.IsNaN(want) {
		if got != got {
			return 0
		}
		return stdmath.Inf(1)
	}
	if got != got {
		return stdmath.Inf(1)
	}
	if got == want {
		return 0
	}
	a, b := orderKey64(got), orderKey64(want)
	if a > b {
		a, b = b, a
	}
	return float64(b - a)
}

// orderKey32 maps float32 bit patterns onto uint32 keys that sort in numeric
// order, with -0 immediately below +0. NaN patterns sort outside the keys of
// any finite or infinite value.
func orderKey32(f float32) uint32 {
	b := stdmath.Float32bits(f)
	if b&0x80000000 != 0 {
		return ^b
	}
	return b | 0x80000000
}

func fromOrderKey32(k uint32) float32 {
	if k&0x80000000 != 0 {
		return stdmath.Float32frombits(k &^ 0x80000000)
	}
	return stdmath.Float32frombits(^k)
}

func orderKey64(f float64) uint64 {
	b := stdmath.Float64bits(f)
	if b&0x8000000000000000 != 0 {
		return ^b
	}
	return b | 0x8000000000000000
}

func fromOrderKey64(k uint64) float64 {
	if k&0x8000000000000000 != 0 {
		return stdmath.Float64frombits(k &^ 0x8000000000000000)
	}
	return stdmath.Float64frombits(^k)
}

// fillInterval32 fills dst with values drawn uniformly over the float32 bit
// patterns between iv.Lo and iv.Hi, both endpoints included. Bit-space
// uniformity spends samples evenly across binades, so the small end of an
// interval is exercised as thoroughly as the large end. dst must hold at
// least two elements; the first two are the interval endpoints.
func fillInterval32(rng *rand.Rand, iv Interval, dst []float32) {
	lo := orderKey32(float32(iv.Lo))
	hi := orderKey32(float32(iv.Hi))
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi-lo) + 1
	dst[0] = fromOrderKey32(lo)
	if len(dst) > 1 {
		dst[1] = fromOrderKey32(hi)
	}
	for i := 2; i < len(dst); i++ {
		dst[i] = fromOrderKey32(lo + uint32(rng.Uint64()%span))
	}
}

// fillInterval64 is the float64 form of fillInterval32.
func fillInterval64(rng *rand.Rand, iv Interval, dst []float64) {
	lo := orderKey64(iv.Lo)
	hi := orderKey64(iv.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	dst[0] = fromOrderKey64(lo)
	if len(dst) > 1 {
		dst[1] = fromOrderKey64(hi)
	}
	for i := 2; i < len(dst); i++ {
		dst[i] = fromOrderKey64(lo + rng.Uint64()%span)
	}
}
