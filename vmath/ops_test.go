package vmath

import (
	"math"
	"testing"
)

func TestLoadCapsAtMaxLanes(t *testing.T) {
	data := make([]float32, MaxLanes[float32]()+7)
	for i := range data {
		data[i] = float32(i)
	}
	v := Load(data)

	if v.NumLanes() != MaxLanes[float32]() {
		t.Errorf("Load: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShortSlice(t *testing.T) {
	v := Load([]float64{1.5, -2.5})
	if v.NumLanes() != 2 {
		t.Errorf("Load: got %d lanes, want 2", v.NumLanes())
	}
}

func TestStorePartial(t *testing.T) {
	v := Set[float32](3.0)
	dst := []float32{-1, -1}
	Store(v, dst)
	for i, x := range dst {
		if x != 3.0 {
			t.Errorf("Store: element %d: got %v, want 3.0", i, x)
		}
	}
}

func TestSetAndZero(t *testing.T) {
	v := Set[int32](42)
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42 {
			t.Errorf("Set: lane %d: got %v, want 42", i, v.data[i])
		}
	}
	z := Zero[float64]()
	for i := 0; i < z.NumLanes(); i++ {
		if z.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, z.data[i])
		}
	}
}

func TestArith(t *testing.T) {
	a := Set[float32](10.0)
	b := Set[float32](4.0)

	if got := Add(a, b).data[0]; got != 14.0 {
		t.Errorf("Add: got %v, want 14.0", got)
	}
	if got := Sub(a, b).data[0]; got != 6.0 {
		t.Errorf("Sub: got %v, want 6.0", got)
	}
	if got := Mul(a, b).data[0]; got != 40.0 {
		t.Errorf("Mul: got %v, want 40.0", got)
	}
	if got := Div(a, b).data[0]; got != 2.5 {
		t.Errorf("Div: got %v, want 2.5", got)
	}
	if got := Neg(a).data[0]; got != -10.0 {
		t.Errorf("Neg: got %v, want -10.0", got)
	}
}

func TestFMAFusedProduct(t *testing.T) {
	// (1+2^-13)^2 = 1 + 2^-12 + 2^-26. The last bit is below float32
	// precision, so a rounded multiply loses it and the naive form
	// cancels to zero; the fused form must keep it.
	a := Set[float32](1 + 0x1p-13)
	c := Set[float32](-(1 + 0x1p-12))

	fused := FMA(a, a, c)
	for i := 0; i < fused.NumLanes(); i++ {
		if fused.data[i] != 0x1p-26 {
			t.Errorf("FMA: lane %d: got %v, want %v", i, fused.data[i], float32(0x1p-26))
		}
	}

	naive := Add(Mul(a, a), c)
	if naive.data[0] != 0 {
		t.Errorf("rounded multiply: got %v, want 0", naive.data[0])
	}
}

func TestFMAMatchesScalar(t *testing.T) {
	vals := []float64{1.0000000001, -2.5, 3e100, 1e-200, 0}
	for _, av := range vals {
		for _, bv := range vals {
			a := Set(av)
			b := Set(bv)
			c := Set(-1.5)
			got := FMA(a, b, c).data[0]
			want := math.FMA(av, bv, -1.5)
			if got != want {
				t.Errorf("FMA(%v, %v, -1.5): got %v, want %v", av, bv, got, want)
			}
		}
	}
}

func TestAbsClearsSignBit(t *testing.T) {
	v := Load([]float32{float32(math.Copysign(0, -1)), -2.5, float32(math.NaN())})
	r := Abs(v)

	if math.Signbit(float64(r.data[0])) || r.data[0] != 0 {
		t.Errorf("Abs(-0): got %v, want +0", r.data[0])
	}
	if r.data[1] != 2.5 {
		t.Errorf("Abs(-2.5): got %v, want 2.5", r.data[1])
	}
	if r.data[2] == r.data[2] {
		t.Errorf("Abs(NaN): got %v, want NaN", r.data[2])
	}
}

func TestAbsInteger(t *testing.T) {
	v := Load([]int32{-8, 7, 0})
	r := Abs(v)
	want := []int32{8, 7, 0}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("Abs: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestComparisons(t *testing.T) {
	a := Load([]float32{1, 2, 3})
	b := Load([]float32{2, 2, 2})

	lt := LessThan(a, b)
	if !lt.GetBit(0) || lt.GetBit(1) || lt.GetBit(2) {
		t.Errorf("LessThan: got %v %v %v, want true false false",
			lt.GetBit(0), lt.GetBit(1), lt.GetBit(2))
	}
	ge := GreaterEqual(a, b)
	if ge.GetBit(0) || !ge.GetBit(1) || !ge.GetBit(2) {
		t.Errorf("GreaterEqual: got %v %v %v, want false true true",
			ge.GetBit(0), ge.GetBit(1), ge.GetBit(2))
	}
	eq := Equal(a, b)
	if eq.CountTrue() != 1 {
		t.Errorf("Equal: CountTrue got %d, want 1", eq.CountTrue())
	}
}

func TestIsNaN(t *testing.T) {
	v := Load([]float32{float32(math.NaN()), 1, float32(math.Inf(1))})
	m := IsNaN(v)
	if !m.GetBit(0) || m.GetBit(1) || m.GetBit(2) {
		t.Error("IsNaN flagged the wrong lanes")
	}
}

func TestMergeSelectsFirstOperandWhereTrue(t *testing.T) {
	a := Load([]float32{1, 1, 1})
	b := Load([]float32{2, 2, 2})
	mask := LessThan(Load([]float32{0, 5, 0}), Load([]float32{3, 3, 3}))

	r := Merge(a, b, mask)
	want := []float32{1, 2, 1}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("Merge: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}
}

func TestBitwiseOps(t *testing.T) {
	a := Load([]uint32{0xf0f0f0f0, 0xffffffff})
	b := Load([]uint32{0x0ff00ff0, 0x80000000})

	if got := And(a, b).data[0]; got != 0x00f000f0 {
		t.Errorf("And: got %#x, want 0x00f000f0", got)
	}
	if got := Or(a, b).data[0]; got != 0xfff0fff0 {
		t.Errorf("Or: got %#x, want 0xfff0fff0", got)
	}
	if got := Xor(a, b).data[1]; got != 0x7fffffff {
		t.Errorf("Xor: got %#x, want 0x7fffffff", got)
	}
	if got := AndNot(a, b).data[1]; got != 0x7fffffff {
		t.Errorf("AndNot: got %#x, want 0x7fffffff", got)
	}
}

func TestShifts(t *testing.T) {
	u := Load([]uint32{0x80000000})
	if got := ShiftRight(u, 31).data[0]; got != 1 {
		t.Errorf("ShiftRight unsigned: got %v, want 1", got)
	}
	s := Load([]int32{-8})
	if got := ShiftRight(s, 1).data[0]; got != -4 {
		t.Errorf("ShiftRight signed: got %v, want -4", got)
	}
	if got := ShiftLeft(s, 2).data[0]; got != -32 {
		t.Errorf("ShiftLeft: got %v, want -32", got)
	}
}

func TestMaskMethods(t *testing.T) {
	a := Load([]int32{1, 2, 3, 4})
	all := Equal(a, a)
	none := NotEqual(a, a)

	if !all.AllTrue() || !all.AnyTrue() || all.CountTrue() != 4 {
		t.Error("all-true mask reported wrong aggregate")
	}
	if none.AllTrue() || none.AnyTrue() || none.CountTrue() != 0 {
		t.Error("all-false mask reported wrong aggregate")
	}

	half := LessThan(a, Set[int32](3))
	if got := half.And(all).CountTrue(); got != 2 {
		t.Errorf("Mask.And: CountTrue got %d, want 2", got)
	}
	if got := half.Or(none).CountTrue(); got != 2 {
		t.Errorf("Mask.Or: CountTrue got %d, want 2", got)
	}
	if half.GetBit(-1) || half.GetBit(99) {
		t.Error("GetBit out of range must be false")
	}
}

func TestRebindMask(t *testing.T) {
	bits := Load([]uint32{0x7f800000, 0x3f800000})
	big := GreaterEqual(bits, Set[uint32](0x7f800000))
	m := RebindMask[uint32, float32](big)

	r := Merge(Load([]float32{1, 1}), Load([]float32{2, 2}), m)
	if r.data[0] != 1 || r.data[1] != 2 {
		t.Errorf("RebindMask blend: got %v %v, want 1 2", r.data[0], r.data[1])
	}
}

func TestConvertTruncatesTowardZero(t *testing.T) {
	v := Load([]float32{-1.7, 1.7, 0})
	r := ConvertToInt32(v)
	want := []int32{-1, 1, 0}
	for i, w := range want {
		if r.data[i] != w {
			t.Errorf("ConvertToInt32: lane %d: got %v, want %v", i, r.data[i], w)
		}
	}

	d := Load([]float64{-2.9, 0x1p40})
	r64 := ConvertToInt64(d)
	if r64.data[0] != -2 || r64.data[1] != 1<<40 {
		t.Errorf("ConvertToInt64: got %v %v", r64.data[0], r64.data[1])
	}
}

func TestBitCastRoundTrip(t *testing.T) {
	v := Load([]float32{float32(math.Copysign(0, -1)), float32(math.NaN()), -1.5})
	u := BitCastF32ToU32(v)
	if u.data[0] != 0x80000000 {
		t.Errorf("BitCastF32ToU32(-0): got %#x, want 0x80000000", u.data[0])
	}
	back := BitCastU32ToF32(u)
	for i := range v.data {
		if math.Float32bits(back.data[i]) != math.Float32bits(v.data[i]) {
			t.Errorf("bit cast round trip: lane %d changed bits", i)
		}
	}

	d := Load([]float64{math.Inf(-1)})
	if got := BitCastF64ToU64(d).data[0]; got != 0xfff0000000000000 {
		t.Errorf("BitCastF64ToU64(-Inf): got %#x", got)
	}
	if got := BitCastU64ToF64(Load([]uint64{0x3ff0000000000000})).data[0]; got != 1.0 {
		t.Errorf("BitCastU64ToF64: got %v, want 1.0", got)
	}
}

func TestMaxLanesWidth(t *testing.T) {
	if MaxLanes[float32]() < 1 || MaxLanes[float64]() < 1 {
		t.Fatal("MaxLanes must be at least 1")
	}
	if MaxLanes[float32]() != 2*MaxLanes[float64]() && MaxLanes[float64]() != 1 {
		t.Errorf("MaxLanes: float32 %d vs float64 %d", MaxLanes[float32](), MaxLanes[float64]())
	}
	if VectorLevel() == "" {
		t.Error("VectorLevel must not be empty")
	}
	if VectorBytes() < 8 {
		t.Errorf("VectorBytes: got %d", VectorBytes())
	}
}
