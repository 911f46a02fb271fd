package math

import (
	"fmt"
	"math/rand"
	"sort"
)

// Precision identifies the lane format a contract's function operates on.
type Precision int

const (
	Single Precision = iota // float32 lanes
	Double                  // float64 lanes
)

func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// Interval is one verification range with its sample count. Lo may exceed Hi
// for ranges that walk the negative axis; sampling is symmetric in the
// endpoints.
type Interval struct {
	Lo, Hi float64
	Count  int
}

// Contract records the accuracy commitments of one vectorized function:
// its signature class, the input intervals it is validated on, and the
// worst-case error it promises. Contracts are registered during package
// initialization and queryable at runtime, so callers can select functions
// by their error bound and harnesses can re-verify the claims.
type Contract struct {
	Name      string
	Arity     int
	Precision Precision

	// DomainLo and DomainHi bound the primary domain for random spot
	// checks; Intervals refine it with boundary-focused ranges.
	DomainLo, DomainHi float64

	// ULPBound is the declared worst-case error of the fast path in ULP,
	// measured against a float64 reference.
	ULPBound float64

	// WantFPExceptions records that the function routes boundary lanes to
	// the scalar reference so IEEE exception flags stay faithful.
	WantFPExceptions bool

	Intervals []Interval

	slice32  func(dst, src []float32)
	slice64  func(dst, src []float64)
	scalar32 func(float32) float32
	scalar64 func(float64) float64
	ref      func(float64) float64
}

var contracts = map[string]Contract{}

func registerContract(c Contract) {
	if _, dup := contracts[c.Name]; dup {
		panic("duplicate accuracy contract: " + c.Name)
	}
	contracts[c.Name] = c
}

// Contracts returns every registered accuracy contract, sorted by name.
func Contracts() []Contract {
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Contract, 0, len(names))
	for _, name := range names {
		out = append(out, contracts[name])
	}
	return out
}

// LookupContract returns the contract registered under name.
func LookupContract(name string) (Contract, bool) {
	c, ok := contracts[name]
	return c, ok
}

// Verification is the result of checking one contract over its intervals.
type Verification struct {
	Contract Contract
	Samples  int
	MaxULP   float64
	WorstAt  float64 // input of the worst lane
}

// Pass reports whether the measured error stayed within the declared bound.
func (v Verification) Pass() bool {
	return v.MaxULP <= v.Contract.ULPBound
}

// VerifyContract samples every interval of c with bit-uniform random inputs,
// runs the vectorized function over them, and measures each lane against the
// float64 reference. scale multiplies the per-interval sample counts, so
// short runs can shrink the sweep without changing its shape; every interval
// always contributes at least its two endpoints.
func VerifyContract(c Contract, seed int64, scale float64) Verification {
	rng := rand.New(rand.NewSource(seed))
	v := Verification{Contract: c}
	for _, iv := range c.Intervals {
		count := int(float64(iv.Count) * scale)
		if count < 2 {
			count = 2
		}
		switch c.Precision {
		case Single:
			verifyInterval32(c, iv, count, rng, &v)
		case Double:
			verifyInterval64(c, iv, count, rng, &v)
		}
	}
	return v
}

func verifyInterval32(c Contract, iv Interval, count int, rng *rand.Rand, v *Verification) {
	src := make([]float32, count)
	fillInterval32(rng, iv, src)
	dst := make([]float32, count)
	c.slice32(dst, src)
	for i, x := range src {
		e := ULPError32(dst[i], c.ref(float64(x)))
		v.Samples++
		if e > v.MaxULP {
			v.MaxULP = e
			v.WorstAt = float64(x)
		}
	}
}

func verifyInterval64(c Contract, iv Interval, count int, rng *rand.Rand, v *Verification) {
	src := make([]float64, count)
	fillInterval64(rng, iv, src)
	dst := make([]float64, count)
	c.slice64(dst, src)
	for i, x := range src {
		e := ULPError64(dst[i], c.ref(x))
		v.Samples++
		if e > v.MaxULP {
			v.MaxULP = e
			v.WorstAt = x
		}
	}
}
