// Package hash implements the FIPS-180-4 hash primitives the rest of the
// pipeline needs — SHA-256 (BIP39 checksum), SHA-512 and HMAC-SHA512 (BIP32
// master/child derivation, PBKDF2's inner PRF) — plus the PBKDF2-HMAC-SHA512
// key stretch BIP39 uses to turn a mnemonic into a seed.
//
// These are hand-rolled rather than calls into crypto/sha256 and
// crypto/sha512: the kernel this module stands in for needs a
// precomputed-ipad/opad HMAC fast path (see HMACState512) that the
// standard library's hash.Hash interface has no way to expose, and the
// messages in play are always small enough that a from-scratch block
// compressor costs nothing in practice.
package hash

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var sha256InitState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func rotr32(x uint32, n uint) uint32 { return (x >> n) | (x << (32 - n)) }

// sha256Block compresses one 64-byte block into state.
func sha256Block(state *[8]uint32, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 | uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

func sha256Pad(msgLen int) []byte {
	bitLen := uint64(msgLen) * 8
	padLen := 56 - (msgLen+1)%64
	if padLen < 0 {
		padLen += 64
	}
	pad := make([]byte, 1+padLen+8)
	pad[0] = 0x80
	for i := 0; i < 8; i++ {
		pad[len(pad)-1-i] = byte(bitLen >> (8 * i))
	}
	return pad
}

// Sum256 computes the SHA-256 digest of msg, single- or multi-block.
func Sum256(msg []byte) [32]byte {
	state := sha256InitState
	full := make([]byte, 0, len(msg)+72)
	full = append(full, msg...)
	full = append(full, sha256Pad(len(msg))...)
	for off := 0; off < len(full); off += 64 {
		sha256Block(&state, full[off:off+64])
	}
	var out [32]byte
	for i, v := range state {
		out[i*4] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
	return out
}
