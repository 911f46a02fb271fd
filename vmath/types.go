// Package vmath provides portable lane-vector arithmetic for vectorized
// elementary-function kernels.
//
// It follows the single-instruction-multiple-data programming model: values
// are processed as fixed-width groups of lanes, per-lane decisions are
// expressed as predicate masks consumed by blend operations, and lanes that
// the fast path cannot handle are spliced from a scalar reference with
// CallScalar. The number of lanes per vector adapts to the widest SIMD
// extension the host CPU reports.
//
// Basic usage:
//
//	a := vmath.Load(data1)
//	b := vmath.Load(data2)
//	sum := vmath.Add(a, b)
//	vmath.Store(sum, output)
package vmath

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector of lanes, processed uniformly by the operations in
// this package. A Vec is immutable once produced.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to a slice.
// This is the method form of the vmath.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask is a per-lane boolean vector produced by comparison operations and
// consumed by Merge, IfThenElse, and CallScalar.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterEqual instead.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// RebindMask reinterprets a mask over lane type U as a mask over lane type T.
// Masks carry no lane values, only per-lane predicates, so rebinding is free;
// it is needed when a predicate computed on the bit pattern of a float vector
// (as an integer vector) gates a blend of the float vector itself.
func RebindMask[U, T Lanes](m Mask[U]) Mask[T] {
	return Mask[T]{bits: m.bits}
}

// And returns the lanewise conjunction of two masks.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	n := min(len(m.bits), len(o.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = m.bits[i] && o.bits[i]
	}
	return Mask[T]{bits: bits}
}

// Or returns the lanewise disjunction of two masks.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	n := min(len(m.bits), len(o.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = m.bits[i] || o.bits[i]
	}
	return Mask[T]{bits: bits}
}
