// Package math provides vectorized approximations of elementary
// transcendental functions with documented worst-case error bounds.
//
// Every function follows the same shape:
//
//  1. Range reduction maps the input magnitude onto a small bounded argument
//     plus an integer quadrant count, using split constants and fused
//     multiply-adds so cancellation cannot destroy the low bits.
//  2. A fixed-degree minimax polynomial approximates the target function on
//     the reduced interval.
//  3. Sign, operand, and output selection happen branchlessly per lane,
//     driven by predicate masks over the quadrant and sign bits.
//  4. A predicate mask flags lanes outside the fast path's validated domain
//     (too large, non-finite, or needing exact floating-point exception
//     behavior); only if any lane is flagged, the scalar reference result is
//     spliced into exactly those lanes.
//
// There are no error returns: domain irregularities are corrected silently
// through the scalar fallback, and the only failure mode is a ULP deviation
// beyond a function's declared bound, which the accuracy contracts
// (see Contracts) exist to catch.
//
// All constant tables and contract records are immutable after package
// initialization; every function is pure and safe for concurrent use.
package math
