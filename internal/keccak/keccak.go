// Package keccak implements Keccak-256 — the pre-FIPS Keccak variant used
// by Ethereum for address and hash derivation, which differs from
// SHA3-256 only in its padding byte. The kernel only ever hashes a single
// fixed-size 64-byte payload (the uncompressed EC point with its 0x04 tag
// stripped), but the sponge here is general enough for any input length.
package keccak

const (
	rate       = 136 // bytes; capacity 64 bytes gives 256-bit security
	numRounds  = 24
	laneCount  = 25
	digestSize = 32
)

var roundConstants = [numRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

var rotationOffsets = [laneCount]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// State is the 5x5 matrix of 64-bit lanes, stored row-major,
// state[5*y+x] corresponding to lane(x,y).
type State [laneCount]uint64

func rotl64(x uint64, n uint) uint64 {
	n &= 63
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// permute applies the 24-round Keccak-f[1600] permutation in place.
func (s *State) permute() {
	for round := 0; round < numRounds; round++ {
		// Theta
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				s[5*y+x] ^= d[x]
			}
		}

		// Rho and Pi combined: b[y, 2x+3y] = rotl(s[x,y], offset[x,y])
		var b State
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				nx := y
				ny := (2*x + 3*y) % 5
				b[5*ny+nx] = rotl64(s[5*y+x], rotationOffsets[5*y+x])
			}
		}

		// Chi
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				s[5*y+x] = b[5*y+x] ^ ((^b[5*y+(x+1)%5]) & b[5*y+(x+2)%5])
			}
		}

		// Iota
		s[0] ^= roundConstants[round]
	}
}

func laneFromBytes(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func laneToBytes(v uint64, out []byte) {
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
}

func (s *State) absorbBlock(block []byte) {
	for i := 0; i < rate/8; i++ {
		s[i] ^= laneFromBytes(block[i*8 : i*8+8])
	}
	s.permute()
}

// Sum256 computes the Keccak-256 digest of msg.
func Sum256(msg []byte) [digestSize]byte {
	var s State

	// Absorb full rate-sized blocks.
	remaining := msg
	for len(remaining) >= rate {
		s.absorbBlock(remaining[:rate])
		remaining = remaining[rate:]
	}

	// Keccak padding (not SHA-3): append 0x01, zero-fill, XOR 0x80 into
	// the last byte of the rate-sized block.
	var last [rate]byte
	n := copy(last[:], remaining)
	last[n] ^= 0x01
	last[rate-1] ^= 0x80
	s.absorbBlock(last[:])

	var digest [digestSize]byte
	for i := 0; i < digestSize/8; i++ {
		laneToBytes(s[i], digest[i*8:i*8+8])
	}
	return digest
}

// Sum256Address hashes the 64-byte X||Y uncompressed-point payload used
// for Ethereum address derivation and returns the trailing 20 bytes.
func Sum256Address(pointXY *[64]byte) [20]byte {
	digest := Sum256(pointXY[:])
	var addr [20]byte
	copy(addr[:], digest[12:])
	return addr
}
