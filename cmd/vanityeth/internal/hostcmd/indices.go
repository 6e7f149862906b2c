package hostcmd

import "github.com/not-for-prod/vanityeth/internal/bip39"

// indicesFor is a thin naming wrapper so callers in this package read
// "indices for this entropy" rather than reaching across into bip39
// directly for a one-line call.
func indicesFor(entropy [32]byte) [24]uint16 {
	return bip39.EntropyToIndices(&entropy)
}
