package hash

const (
	pbkdf2Iterations = 2048
	mnemonicSalt     = "mnemonic"
)

// Pbkdf2HmacSha512Seed derives the 64-byte BIP39 seed from a mnemonic
// password string. BIP39 only ever needs 64 bytes of output, which is
// exactly one PBKDF2 block (T1), so the block-counting logic a general
// PBKDF2 implementation needs is unnecessary here: U1 = HMAC(password,
// salt || 0x00000001), Ui+1 = HMAC(password, Ui), and T1 is the XOR of all
// 2048 Ui. The HMAC key (password) never changes across iterations, so the
// ipad/opad states are computed once via NewHMACState512 and reused.
func Pbkdf2HmacSha512Seed(password []byte) [64]byte {
	st := NewHMACState512(password)

	saltBlock := make([]byte, len(mnemonicSalt)+4)
	copy(saltBlock, mnemonicSalt)
	saltBlock[len(mnemonicSalt)+0] = 0x00
	saltBlock[len(mnemonicSalt)+1] = 0x00
	saltBlock[len(mnemonicSalt)+2] = 0x00
	saltBlock[len(mnemonicSalt)+3] = 0x01

	u := st.Sum(saltBlock)
	var t [64]byte
	t = u

	for i := 1; i < pbkdf2Iterations; i++ {
		u = st.Sum(u[:])
		for j := range t {
			t[j] ^= u[j]
		}
	}
	return t
}
