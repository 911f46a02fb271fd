// Copyright 2025 external-arm-optimized-routines Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vmath

import "math"

// ConvertToInt32 converts float lanes to int32 with truncation toward zero.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = int32(x)
	}
	return Vec[int32]{data: result}
}

// ConvertToInt64 converts float lanes to int64 with truncation toward zero.
func ConvertToInt64[T Floats](v Vec[T]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i, x := range v.data {
		result[i] = int64(x)
	}
	return Vec[int64]{data: result}
}

// ============================================================================
// Type reinterpretation operations (bit cast, no value conversion)
// ============================================================================

// BitCastF32ToU32 reinterprets a float32 vector as uint32 (bit cast).
func BitCastF32ToU32(v Vec[float32]) Vec[uint32] {
	result := make([]uint32, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float32bits(x)
	}
	return Vec[uint32]{data: result}
}

// BitCastU32ToF32 reinterprets a uint32 vector as float32 (bit cast).
func BitCastU32ToF32(v Vec[uint32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float32frombits(x)
	}
	return Vec[float32]{data: result}
}

// BitCastF64ToU64 reinterprets a float64 vector as uint64 (bit cast).
func BitCastF64ToU64(v Vec[float64]) Vec[uint64] {
	result := make([]uint64, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float64bits(x)
	}
	return Vec[uint64]{data: result}
}

// BitCastU64ToF64 reinterprets a uint64 vector as float64 (bit cast).
func BitCastU64ToF64(v Vec[uint64]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float64frombits(x)
	}
	return Vec[float64]{data: result}
}
