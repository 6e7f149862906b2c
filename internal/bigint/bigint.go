// Package bigint implements the fixed-width 256-bit integer arithmetic
// the secp256k1 engine is built on. There is exactly one canonical layout:
// eight 32-bit limbs, little-endian (limb[0] is least significant). Every
// operation here is pure — inputs are never mutated, outputs never alias
// an input's backing array — so callers can freely chain operations on
// stack-allocated values without aliasing hazards.
//
// This package intentionally does not use math/big. The whole point of the
// component is to be the kind of fixed-width, carry-aware arithmetic a
// resource-constrained compute kernel would hand-roll; reaching for an
// arbitrary-precision library would replace the thing under specification
// with the standard library's version of it.
package bigint

// BI256 is a 256-bit unsigned integer as eight little-endian 32-bit limbs.
type BI256 [8]uint32

// Zero is the additive identity.
var Zero = BI256{}

// One is the multiplicative identity.
var One = BI256{1}

// P is the secp256k1 field prime: 2^256 - 2^32 - 977.
var P = BI256{
	0xfffffc2f, 0xfffffffe, 0xffffffff, 0xffffffff,
	0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
}

// N is the secp256k1 group order.
var N = BI256{
	0xd0364141, 0xbfd25e8c, 0xaf48a03b, 0xbaaedce6,
	0xfffffffe, 0xffffffff, 0xffffffff, 0xffffffff,
}

// FromBytesBE interprets a 32-byte big-endian buffer (network byte order,
// matching every cryptographic standard in play) as a BI256.
func FromBytesBE(b *[32]byte) BI256 {
	var out BI256
	for limb := 0; limb < 8; limb++ {
		off := 28 - limb*4
		out[limb] = uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
	}
	return out
}

// BytesBE serializes a BI256 to 32 big-endian bytes.
func (x BI256) BytesBE() [32]byte {
	var out [32]byte
	for limb := 0; limb < 8; limb++ {
		off := 28 - limb*4
		v := x[limb]
		out[off] = byte(v >> 24)
		out[off+1] = byte(v >> 16)
		out[off+2] = byte(v >> 8)
		out[off+3] = byte(v)
	}
	return out
}

// IsZero reports whether x is the zero value.
func (x BI256) IsZero() bool {
	for _, limb := range x {
		if limb != 0 {
			return false
		}
	}
	return true
}

// Cmp performs an ordinary lexicographic comparison, most significant limb
// first: -1 if x<y, 0 if x==y, 1 if x>y.
func Cmp(x, y BI256) int {
	for i := 7; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Gte reports whether x >= y.
func Gte(x, y BI256) bool { return Cmp(x, y) >= 0 }

// Add computes x+y and returns the result plus the carry out of the top
// limb (0 or 1).
func Add(x, y BI256) (BI256, uint32) {
	var out BI256
	var carry uint64
	for i := 0; i < 8; i++ {
		sum := uint64(x[i]) + uint64(y[i]) + carry
		out[i] = uint32(sum)
		carry = sum >> 32
	}
	return out, uint32(carry)
}

// Sub computes x-y and returns the result plus the borrow out of the top
// limb (0 or 1); a borrow of 1 means x<y and the result has wrapped.
func Sub(x, y BI256) (BI256, uint32) {
	var out BI256
	var borrow uint64
	for i := 0; i < 8; i++ {
		diff := uint64(x[i]) - uint64(y[i]) - borrow
		out[i] = uint32(diff)
		borrow = (diff >> 63) & 1
	}
	return out, uint32(borrow)
}

// Shr1 shifts x right by one bit, shifting in a zero at the top.
func Shr1(x BI256) BI256 {
	return Shr1WithExtra(x, 0)
}

// Shr1WithExtra shifts x right by one bit, shifting the low bit of extra
// into the vacated top bit. Used by the binary modular-inverse routine,
// whose accumulators need a 9th word of headroom.
func Shr1WithExtra(x BI256, extra uint32) BI256 {
	var out BI256
	carry := extra & 1
	for i := 7; i >= 0; i-- {
		newCarry := x[i] & 1
		out[i] = (x[i] >> 1) | (carry << 31)
		carry = newCarry
	}
	return out
}

// ModAdd computes (x+y) mod m, where x and y are each already in [0, m).
// The raw sum is computed, then conditionally corrected by -m exactly
// once — the carry-aware schoolbook shape specified for this operation.
func ModAdd(x, y, m BI256) BI256 {
	sum, carry := Add(x, y)
	if carry != 0 || Gte(sum, m) {
		sum, _ = Sub(sum, m)
	}
	return sum
}

// ModSub computes (x-y) mod m, where x and y are each already in [0, m).
func ModSub(x, y, m BI256) BI256 {
	diff, borrow := Sub(x, y)
	if borrow != 0 {
		diff, _ = Add(diff, m)
	}
	return diff
}

// ModMul computes (x*y) mod p, the secp256k1 field prime, via
// digit-serial shift-and-add: Z=0; for each bit of y from most to least
// significant, Z = 2*Z mod p, then Z = Z+x mod p if that bit of y is set.
// This is the same per-step "accumulate then correct by the modulus"
// shape an interleaved modular multiplication needs, applied bit-serially
// rather than limb-serially — it avoids the quotient-estimation step a limb-serial
// interleaved reduction needs while keeping every intermediate value
// already inside [0, p), which the limb-serial form only guarantees after
// its final correction.
func ModMul(x, y BI256) BI256 {
	var z BI256
	for bitIdx := 255; bitIdx >= 0; bitIdx-- {
		z = ModAdd(z, z, P)
		limb := bitIdx / 32
		shift := uint(bitIdx % 32)
		if (y[limb]>>shift)&1 == 1 {
			z = ModAdd(z, x, P)
		}
	}
	return z
}

// ModAddN and ModSubN mirror the field operations above but
// against the group order n, used only for BIP32 private-key tweaking
// (child = (parent + IL) mod n).
func ModAddN(x, y BI256) BI256 { return modAddGeneric(x, y, N) }
func ModSubN(x, y BI256) BI256 { return modSubGeneric(x, y, N) }

func modAddGeneric(x, y, m BI256) BI256 {
	sum, carry := Add(x, y)
	if carry != 0 || Gte(sum, m) {
		sum, _ = Sub(sum, m)
	}
	return sum
}

func modSubGeneric(x, y, m BI256) BI256 {
	diff, borrow := Sub(x, y)
	if borrow != 0 {
		diff, _ = Add(diff, m)
	}
	return diff
}

// ModInv computes the modular inverse of a with respect to modulus m using
// the binary (Lehmer-style) extended Euclidean algorithm: maintain
// (r, v, A, C) such that A*a ≡ r and C*a ≡ v (mod m), halving r or v on
// even steps and subtracting the smaller from the larger on odd steps,
// until r reaches zero; v then holds gcd(a, m) = 1, so C is the inverse.
// The accumulators A and C carry an extra ninth word because
// intermediate "+m" corrections can overflow 256 bits.
func ModInv(a, m BI256) BI256 {
	// 9-word (little-endian) accumulators: word[8] is the overflow limb.
	type wide9 [9]uint32

	toWide := func(x BI256) wide9 {
		var w wide9
		copy(w[:8], x[:])
		return w
	}
	isZero9 := func(w wide9) bool {
		for _, l := range w {
			if l != 0 {
				return false
			}
		}
		return true
	}
	isOdd9 := func(w wide9) bool { return w[0]&1 == 1 }
	shr1_9 := func(w wide9) wide9 {
		var out wide9
		var carry uint32
		for i := 8; i >= 0; i-- {
			newCarry := w[i] & 1
			out[i] = (w[i] >> 1) | (carry << 31)
			carry = newCarry
		}
		return out
	}
	add9 := func(x, y wide9) wide9 {
		var out wide9
		var carry uint64
		for i := 0; i < 9; i++ {
			s := uint64(x[i]) + uint64(y[i]) + carry
			out[i] = uint32(s)
			carry = s >> 32
		}
		return out
	}
	sub9 := func(x, y wide9) wide9 {
		var out wide9
		var borrow uint64
		for i := 0; i < 9; i++ {
			d := uint64(x[i]) - uint64(y[i]) - borrow
			out[i] = uint32(d)
			borrow = (d >> 63) & 1
		}
		return out
	}
	gte9 := func(x, y wide9) bool {
		for i := 8; i >= 0; i-- {
			if x[i] != y[i] {
				return x[i] > y[i]
			}
		}
		return true
	}

	r := toWide(a)
	v := toWide(m)
	modWide := toWide(m)
	A := wide9{1}
	C := wide9{0}

	for !isZero9(r) {
		if !isOdd9(r) {
			r = shr1_9(r)
			if isOdd9(A) {
				A = add9(A, modWide)
			}
			A = shr1_9(A)
		} else if !isOdd9(v) {
			v = shr1_9(v)
			if isOdd9(C) {
				C = add9(C, modWide)
			}
			C = shr1_9(C)
		} else if gte9(r, v) {
			r = sub9(r, v)
			if gte9(A, C) {
				A = sub9(A, C)
			} else {
				A = sub9(add9(A, modWide), C)
			}
		} else {
			v = sub9(v, r)
			if gte9(C, A) {
				C = sub9(C, A)
			} else {
				C = sub9(add9(C, modWide), A)
			}
		}
	}

	var cFinal BI256
	copy(cFinal[:], C[:8])
	return cFinal
}
