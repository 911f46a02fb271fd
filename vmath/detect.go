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

import (
	"os"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// vectorBytes is the lane-group width in bytes, fixed at startup from the
// widest SIMD extension the CPU reports. It only sizes the portable vectors;
// selecting between alternative code paths is up to the build, not this
// package.
var vectorBytes, vectorLevel = detectVector()

func detectVector() (int, string) {
	// VMATH_NO_SIMD forces the narrowest grouping, mainly for tests that
	// want single-lane behavior.
	if os.Getenv("VMATH_NO_SIMD") != "" {
		return 8, "scalar"
	}
	switch {
	case cpu.X86.HasAVX512F:
		return 64, "avx512"
	case cpu.X86.HasAVX2:
		return 32, "avx2"
	case cpu.X86.HasSSE2:
		return 16, "sse2"
	case cpu.ARM64.HasASIMD:
		return 16, "neon"
	default:
		return 16, "portable"
	}
}

// VectorBytes returns the lane-group width in bytes.
func VectorBytes() int {
	return vectorBytes
}

// VectorLevel returns a human-readable name for the SIMD extension that
// determined the lane-group width ("avx2", "neon", ...).
func VectorLevel() string {
	return vectorLevel
}

// MaxLanes returns the number of lanes of type T per vector.
func MaxLanes[T Lanes]() int {
	var zero T
	return max(vectorBytes/int(unsafe.Sizeof(zero)), 1)
}
