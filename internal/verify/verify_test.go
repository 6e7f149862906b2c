package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/vanityeth/internal/address"
	"github.com/not-for-prod/vanityeth/internal/bip32"
	"github.com/not-for-prod/vanityeth/internal/bip39"
	"github.com/not-for-prod/vanityeth/internal/hash"
	tsbip39 "github.com/tyler-smith/go-bip39"
)

func TestRecomputeMatchesKernelForZeroEntropy(t *testing.T) {
	words := tsbip39.GetWordList()
	require.Len(t, words, 2048)
	var wl bip39.Wordlist
	copy(wl[:], words)

	var entropy [32]byte
	kernelAddr := address.FromEntropy(&entropy, &wl)

	indices := bip39.EntropyToIndices(&entropy)
	password := bip39.IndicesToPassword(indices, &wl)
	seed := hash.Pbkdf2HmacSha512Seed(password)
	kernelPrivBI := bip32.DeriveEthereumKey(&seed)
	kernelPriv := kernelPrivBI.BytesBE()

	report, err := Recompute(entropy)
	require.NoError(t, err)
	require.True(t, tsbip39.IsMnemonicValid(report.Mnemonic))

	report.Compare(kernelPriv, kernelAddr)
	require.True(t, report.MatchesKernel, report.MismatchReason)
}

func TestCompareReportsAddressMismatch(t *testing.T) {
	r := Report{PrivateKey: [32]byte{1}, Address: [20]byte{1}}
	r.Compare([32]byte{1}, [20]byte{2})
	require.False(t, r.MatchesKernel)
	require.Equal(t, "address mismatch", r.MismatchReason)
}

func TestCompareReportsPrivateKeyMismatch(t *testing.T) {
	r := Report{PrivateKey: [32]byte{1}, Address: [20]byte{1}}
	r.Compare([32]byte{2}, [20]byte{1})
	require.False(t, r.MatchesKernel)
	require.Equal(t, "private key mismatch", r.MismatchReason)
}
