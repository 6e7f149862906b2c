package hash

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum256MatchesStdlib(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("abc"),
		make([]byte, 55), // straddles the single-block boundary
		make([]byte, 56),
		make([]byte, 64),
		make([]byte, 200),
	}
	for _, in := range inputs {
		got := Sum256(in)
		want := sha256.Sum256(in)
		require.Equal(t, want, got, "len=%d", len(in))
	}
}
