package address

import (
	"testing"

	dcrsecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
	tsbip32 "github.com/tyler-smith/go-bip32"
	tsbip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/sha3"

	"github.com/not-for-prod/vanityeth/internal/bip39"
)

func referenceWordlist(t *testing.T) *bip39.Wordlist {
	t.Helper()
	words := tsbip39.GetWordList()
	require.Len(t, words, 2048)
	var wl bip39.Wordlist
	copy(wl[:], words)
	return &wl
}

func TestFromEntropyMatchesIndependentReferenceChain(t *testing.T) {
	wl := referenceWordlist(t)

	var entropy [32]byte
	for i := range entropy {
		entropy[i] = byte(i * 11)
	}

	got := FromEntropy(&entropy, wl)

	indices := bip39.EntropyToIndices(&entropy)
	words := bip39.IndicesToMnemonicWords(indices, wl)
	mnemonic := words[0]
	for _, w := range words[1:] {
		mnemonic += " " + w
	}
	require.True(t, tsbip39.IsMnemonicValid(mnemonic))

	seed := tsbip39.NewSeed(mnemonic, "")
	master, err := tsbip32.NewMasterKey(seed)
	require.NoError(t, err)

	child := master
	path := []uint32{
		tsbip32.FirstHardenedChild + 44,
		tsbip32.FirstHardenedChild + 60,
		tsbip32.FirstHardenedChild + 0,
		0,
		0,
	}
	for _, idx := range path {
		child, err = child.NewChildKey(idx)
		require.NoError(t, err)
	}

	privKey := dcrsecp256k1.PrivKeyFromBytes(child.Key)
	pubKeyBytes := privKey.PubKey().SerializeUncompressed()[1:]

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(pubKeyBytes)
	digest := hasher.Sum(nil)

	var want [20]byte
	copy(want[:], digest[len(digest)-20:])

	require.Equal(t, want, got)
}

func TestConditionMatchesPrefix(t *testing.T) {
	c := Condition{Type: ConditionPrefix, Param: []byte{0xDE, 0xAD}}
	addr := [20]byte{0xDE, 0xAD, 0xBE, 0xEF}
	require.True(t, Matches(c, addr))

	addr[0] = 0x00
	require.False(t, Matches(c, addr))
}

func TestConditionMatchesSuffix(t *testing.T) {
	c := Condition{Type: ConditionSuffix, Param: []byte{0xCA, 0xFE}}
	var addr [20]byte
	addr[18] = 0xCA
	addr[19] = 0xFE
	require.True(t, Matches(c, addr))
}

func TestConditionLeadingZerosMin(t *testing.T) {
	c := Condition{Type: ConditionLeadingZerosMin, Param: []byte{4}}
	var addr [20]byte
	addr[0] = 0x00
	addr[1] = 0x01 // 3 leading zero nibbles: 00, 0
	require.False(t, Matches(c, addr))

	addr[1] = 0x00
	addr[2] = 0xF0 // 4 leading zero nibbles
	require.True(t, Matches(c, addr))
}

func TestConditionLeadingZerosExact(t *testing.T) {
	c := Condition{Type: ConditionLeadingZerosExact, Param: []byte{2}}
	var addr [20]byte
	addr[0] = 0x00
	addr[1] = 0xFF // exactly 2 leading zero nibbles
	require.True(t, Matches(c, addr))

	addr[1] = 0x0F // 3 leading zero nibbles
	require.False(t, Matches(c, addr))
}

func TestConditionPatternMaskAppliesInAddition(t *testing.T) {
	c := Condition{Type: ConditionPrefix, Param: []byte{0xAB}}
	mask := [20]byte{}
	value := [20]byte{}
	mask[5] = 0xFF
	value[5] = 0x42
	c.PatternMask = &mask
	c.PatternValue = &value

	var addr [20]byte
	addr[0] = 0xAB
	addr[5] = 0x42
	require.True(t, Matches(c, addr))

	addr[5] = 0x00
	require.False(t, Matches(c, addr))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := Condition{Type: ConditionSuffix, Param: []byte{0x12, 0x34, 0x56}}
	word := Encode(c)
	got := Decode(word)
	require.Equal(t, c.Type, got.Type)
	require.Equal(t, c.Param, got.Param)
}
