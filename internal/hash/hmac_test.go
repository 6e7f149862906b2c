package hash

import (
	"crypto/hmac"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHMACSum512MatchesStdlib(t *testing.T) {
	keys := [][]byte{
		[]byte("Bitcoin seed"),
		[]byte("mnemonic"),
		make([]byte, 200), // longer than the block size, gets pre-hashed
	}
	messages := [][]byte{nil, []byte("hello world"), make([]byte, 300)}

	for _, key := range keys {
		st := NewHMACState512(key)
		for _, msg := range messages {
			got := st.Sum(msg)

			mac := hmac.New(sha512.New, key)
			mac.Write(msg)
			want := mac.Sum(nil)

			require.Equal(t, want, got[:])
		}
	}
}

func TestHMACSum512ConvenienceMatchesPrecomputed(t *testing.T) {
	key := []byte("Bitcoin seed")
	msg := []byte("payload")

	st := NewHMACState512(key)
	precomputed := st.Sum(msg)
	convenience := HMACSum512(key, msg)

	require.Equal(t, precomputed, convenience)
}
