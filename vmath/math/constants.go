package math

// =============================================================================
// Constant tables. Read-only after initialization, shared by all calls.
// =============================================================================

// Float32 constants for Cosf/Sinf range reduction. pi/2 is split into high,
// low, and extra-low parts so that r = |x| - n*(pi/2) can be formed as an
// ordered sequence of fused multiply-adds without cancellation error.
var (
	trigInvPio2_f32   float32 = 0x1.45f306p-1  // 2/pi
	trigNegPio2Hi_f32 float32 = -0x1.921fb6p+0 // pi/2 high part, negated
	trigNegPio2Lo_f32 float32 = 0x1.777a5cp-25 // pi/2 low part
	trigNegPio2Ex_f32 float32 = 0x1.ee59dap-50 // pi/2 extra-low part
	trigShift_f32     float32 = 0x1.8p+23      // rounding bias 1.5 * 2^23
)

// trigRangeBits_u32 is the bit pattern of 2^20, the fast-path domain bound
// for Cosf and Sinf. Comparing |x|'s bit pattern against it as an unsigned
// integer also flags Inf and NaN, whose patterns sort above every finite
// value.
const trigRangeBits_u32 uint32 = 0x49800000

// Float32 polynomial tables for sin(r)/r and cos(r) on [-pi/4, pi/4],
// in even powers of r. The leading coefficient of both series is exactly 1.
var (
	trigSinC2_f32  float32 = -0.16666667163372039794921875
	trigSinC4_f32  float32 = 8.333347737789154052734375e-3
	trigSinC6_f32  float32 = -1.9842604524455964565277099609375e-4
	trigSinC8_f32  float32 = 2.760012648650445044040679931640625e-6
	trigSinC10_f32 float32 = -2.50293279435709337121807038784027099609375e-8

	trigCosC2_f32  float32 = -0.5
	trigCosC4_f32  float32 = 4.166664183139801025390625e-2
	trigCosC6_f32  float32 = -1.388833043165504932403564453125e-3
	trigCosC8_f32  float32 = 2.47562347794882953166961669921875e-5
	trigCosC10_f32 float32 = -2.59630184018533327616751194000244140625e-7
)

// Float64 constants for Atan.
var (
	atanPiOver2_f64 float64 = 0x1.921fb54442d18p+0

	// Biased-exponent window of the fast path: the biased exponents of
	// 0x1p-30 and 0x1p53. Lanes whose exponent falls outside [tiny, big]
	// need the scalar reference for exact exception-flag behavior.
	atanTinyBound_u64 uint64 = 0x3e1
	atanBigBound_u64  uint64 = 0x434
)

// atanPoly_f64 holds the coefficients of P in atan(z) ~ z + z^3 * P(z^2) on
// [-1, 1], lowest degree first.
var atanPoly_f64 = [20]float64{
	-0.333333333333317605173818,
	0.199999999997977351284817,
	-0.142857142756268568062339,
	0.111111108376896236538123,
	-0.0909090442773387574781907,
	0.0769225330296203768654095,
	-0.0666620884778795497194182,
	0.0587946590969581003860434,
	-0.0524914210588448421068719,
	0.0470843011653283988193763,
	-0.041848579703592507506027,
	0.0359785005035104590853656,
	-0.0289002344784740315686289,
	0.0208024799924145797902497,
	-0.0128281333663399031014274,
	0.00646262899036991172313504,
	-0.00251865614498713360352999,
	0.00070557664296393412389774,
	-0.000125620649967286867384336,
	1.06298484191448746607415e-05,
}

// Float32 constants for Atanf.
var (
	atanfPiOver2_f32 float32 = 0x1.921fb6p+0

	// Fast-path window on |x|'s bit pattern: [asuint(0x1p-30), asuint(0x1p30)].
	atanfTinyBits_u32 uint32 = 0x30800000
	atanfBigBits_u32  uint32 = 0x4e800000
)

// atanfPoly_f32 holds the coefficients of Q in atan(z) ~ z * Q(z^2) on
// [-1, 1], lowest degree first.
var atanfPoly_f32 = [8]float32{
	0.99999988079071044921875,
	-0.3333191573619842529296875,
	0.199689209461212158203125,
	-0.14015688002109527587890625,
	9.905083477497100830078125e-2,
	-5.93664981424808502197265625e-2,
	2.417283318936824798583984375e-2,
	-4.6721356920897960662841796875e-3,
}
