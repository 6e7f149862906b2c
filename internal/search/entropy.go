package search

// IncrementBy treats entropy as a 256-bit big-endian counter — index 31
// is the least significant byte — and adds step to it in place,
// propagating carry toward index 0. It returns false iff the addition
// overflows out of the 256-bit range, which terminates that work-item's
// search.
func IncrementBy(entropy *[32]byte, step uint32) bool {
	var stepBytes [4]byte
	stepBytes[0] = byte(step >> 24)
	stepBytes[1] = byte(step >> 16)
	stepBytes[2] = byte(step >> 8)
	stepBytes[3] = byte(step)

	var carry uint32
	for i := 0; i < 4; i++ {
		idx := 31 - i
		sum := uint32(entropy[idx]) + uint32(stepBytes[3-i]) + carry
		entropy[idx] = byte(sum)
		carry = sum >> 8
	}
	for i := 27; i >= 0 && carry != 0; i-- {
		sum := uint32(entropy[i]) + carry
		entropy[i] = byte(sum)
		carry = sum >> 8
	}
	return carry == 0
}
