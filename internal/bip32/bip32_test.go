package bip32

import (
	"testing"

	"github.com/stretchr/testify/require"
	tsbip32 "github.com/tyler-smith/go-bip32"
)

func TestMasterKeyFromSeedMatchesReferenceImplementation(t *testing.T) {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i * 3)
	}
	var seedArr [64]byte
	copy(seedArr[:], seed)

	got := MasterKeyFromSeed(&seedArr)

	want, err := tsbip32.NewMasterKey(seed)
	require.NoError(t, err)

	gotPriv := got.Priv.BytesBE()
	gotChain := got.Chain.BytesBE()
	require.Equal(t, want.Key, gotPriv[:])
	require.Equal(t, want.ChainCode, gotChain[:])
}

func TestDeriveEthereumKeyMatchesReferenceImplementation(t *testing.T) {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(255 - i)
	}
	var seedArr [64]byte
	copy(seedArr[:], seed)

	got := DeriveEthereumKey(&seedArr)

	master, err := tsbip32.NewMasterKey(seed)
	require.NoError(t, err)

	child := master
	for _, idx := range EthereumPath {
		child, err = child.NewChildKey(idx)
		require.NoError(t, err)
	}

	gotBytes := got.BytesBE()
	require.Equal(t, child.Key, gotBytes[:])
}

func TestDeriveChildHardenedVsNormalUseDifferentData(t *testing.T) {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = byte(i)
	}
	var seedArr [64]byte
	copy(seedArr[:], seed)

	master := MasterKeyFromSeed(&seedArr)
	hardened := DeriveChild(master, HardenedOffset)
	normal := DeriveChild(master, 0)

	require.NotEqual(t, hardened.Priv, normal.Priv)
}

func TestDeriveChildIsDeterministic(t *testing.T) {
	var seedArr [64]byte
	for i := range seedArr {
		seedArr[i] = byte(i + 1)
	}

	master := MasterKeyFromSeed(&seedArr)
	a := DeriveChild(master, 5)
	b := DeriveChild(master, 5)
	require.Equal(t, a, b)
}

func TestSplitDigestHalvesAreIndependent(t *testing.T) {
	var digest [64]byte
	for i := 0; i < 32; i++ {
		digest[i] = 0xAA
	}
	for i := 32; i < 64; i++ {
		digest[i] = 0xBB
	}

	key := splitDigest(digest)
	require.False(t, key.Priv.IsZero())
	require.False(t, key.Chain.IsZero())
	require.NotEqual(t, key.Priv, key.Chain)
}
