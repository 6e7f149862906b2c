package bip39

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testWordlist() *Wordlist {
	var wl Wordlist
	for i := range wl {
		wl[i] = "word" + itoa(i)
	}
	return &wl
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func TestEntropyToIndicesZeroEntropyGoldenVector(t *testing.T) {
	var entropy [32]byte // all zero

	indices := EntropyToIndices(&entropy)

	// For all-zero entropy the canonical 24-word BIP39 mnemonic is 23
	// repetitions of index 0 ("abandon") followed by index 0x066 ("art"):
	// three zero entropy bits and the checksum byte SHA-256(zeros)[0] = 0x66.
	for i := 0; i < 23; i++ {
		require.Equal(t, uint16(0), indices[i], "word %d", i)
	}
	require.Equal(t, uint16(0x066), indices[23])
}

func TestIndicesToEntropyRoundTrip(t *testing.T) {
	var entropy [32]byte
	for i := range entropy {
		entropy[i] = byte(i * 7)
	}

	indices := EntropyToIndices(&entropy)
	got, err := IndicesToEntropy(indices)
	require.NoError(t, err)
	require.Equal(t, entropy, got)
}

func TestIndicesToEntropyRejectsBadChecksum(t *testing.T) {
	var entropy [32]byte
	indices := EntropyToIndices(&entropy)
	indices[23] ^= 1 // flip a bit inside the checksum-bearing last word

	_, err := IndicesToEntropy(indices)
	require.Error(t, err)
}

func TestIndicesToPasswordJoinsWithSingleSpaces(t *testing.T) {
	wl := testWordlist()
	var entropy [32]byte
	indices := EntropyToIndices(&entropy)

	pw := IndicesToPassword(indices, wl)
	words := IndicesToMnemonicWords(indices, wl)

	rebuilt := words[0]
	for _, w := range words[1:] {
		rebuilt += " " + w
	}
	require.Equal(t, rebuilt, string(pw))
}

func TestReadBits11MatchesWriteBits11(t *testing.T) {
	var stream [33]byte
	writeBits11(stream[:], 0, 0x7FF)
	require.Equal(t, uint16(0x7FF), readBits11(stream[:], 0))

	writeBits11(stream[:], 11, 0x155)
	require.Equal(t, uint16(0x155), readBits11(stream[:], 11))
}
