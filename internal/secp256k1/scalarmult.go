package secp256k1

import "github.com/not-for-prod/vanityeth/internal/bigint"

// nibble extracts the idx-th 4-bit window of k in big-endian window order
// (idx=0 is the most significant nibble, idx=63 the least). Every nibble
// falls entirely inside one 32-bit limb since 32 is a multiple of 4, so no
// cross-limb masking is needed.
func nibble(k bigint.BI256, idx int) uint32 {
	bitStart := 252 - 4*idx
	limbIdx := bitStart / 32
	shift := uint(bitStart % 32)
	return (k[limbIdx] >> shift) & 0xF
}

// ScalarMultG computes k*G using a 4-bit windowed algorithm against the
// precomputed Table: walk the 64 windows most-significant-first, multiply
// the accumulator by 16 (four Jacobian doublings) per window, then mixed-add
// Table[w-1] if the window is non-zero. The first non-zero window lifts
// its table entry directly into the Jacobian accumulator (affine-to-
// Jacobian, Z=1) instead of mixed-adding into an empty accumulator, per
// the infinity convention in the data model.
func ScalarMultG(k bigint.BI256) Affine {
	acc := InfinityJacobian
	started := false

	for w := 0; w < 64; w++ {
		if started {
			acc = JacobianDouble(acc)
			acc = JacobianDouble(acc)
			acc = JacobianDouble(acc)
			acc = JacobianDouble(acc)
		}

		v := nibble(k, w)
		if v == 0 {
			continue
		}

		point := Table[v-1]
		if !started {
			acc = Jacobian{X: point.X, Y: point.Y, Z: bigint.One}
			started = true
			continue
		}
		acc = MixedAdd(acc, point)
	}

	return ToAffine(acc)
}

// ScalarMultGAffine computes k*G with the unoptimized affine double-and-add
// algorithm. It exists purely so tests can assert it agrees with the
// windowed Jacobian path on every scalar; it must
// never be used on the search hot path since every affine addition pays
// for a full modular inverse.
func ScalarMultGAffine(k bigint.BI256) Affine {
	var result Affine // infinity
	addend := G

	for bitIdx := 0; bitIdx < 256; bitIdx++ {
		limb := bitIdx / 32
		shift := uint(bitIdx % 32)
		if (k[limb]>>shift)&1 == 1 {
			result = AffineAdd(result, addend)
		}
		addend = AffineDouble(addend)
	}
	return result
}

// UncompressedPubKey derives the 65-byte uncompressed public key (0x04 ||
// X || Y) for a private scalar along the fixed path.
func UncompressedPubKey(priv bigint.BI256) [65]byte {
	p := ScalarMultG(priv)
	var out [65]byte
	out[0] = 0x04
	x := p.X.BytesBE()
	y := p.Y.BytesBE()
	copy(out[1:33], x[:])
	copy(out[33:65], y[:])
	return out
}
