package keccak

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestSum256EmptyStringGoldenVector(t *testing.T) {
	want, err := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	require.NoError(t, err)

	got := Sum256(nil)
	require.Equal(t, want, got[:])
}

func TestSum256MatchesReferenceSha3(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("abc"),
		make([]byte, 64),
		make([]byte, 136),  // exactly one rate block
		make([]byte, 137),  // one rate block plus one byte
		make([]byte, 1000), // several rate blocks
	}
	for _, in := range inputs {
		got := Sum256(in)

		h := sha3.NewLegacyKeccak256()
		h.Write(in)
		want := h.Sum(nil)

		require.Equal(t, want, got[:], "input length %d", len(in))
	}
}

func TestSum256AddressTakesTrailing20Bytes(t *testing.T) {
	var xy [64]byte
	for i := range xy {
		xy[i] = byte(i)
	}
	full := Sum256(xy[:])
	addr := Sum256Address(&xy)
	require.Equal(t, full[12:], addr[:])
}
