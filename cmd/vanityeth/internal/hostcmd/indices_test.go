package hostcmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/vanityeth/internal/bip39"
)

func TestIndicesForMatchesBip39Directly(t *testing.T) {
	var entropy [32]byte
	entropy[0] = 0x7F

	want := bip39.EntropyToIndices(&entropy)
	got := indicesFor(entropy)
	require.Equal(t, want, got)
}
