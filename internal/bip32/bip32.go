// Package bip32 implements hierarchical deterministic key derivation over
// secp256k1: master-key extraction from a BIP39 seed and hardened/
// non-hardened child derivation along the fixed Ethereum path.
package bip32

import (
	"github.com/not-for-prod/vanityeth/internal/bigint"
	"github.com/not-for-prod/vanityeth/internal/hash"
	"github.com/not-for-prod/vanityeth/internal/secp256k1"
)

const masterKeyHMACKey = "Bitcoin seed"

// HardenedOffset is added to an index to mark it hardened (i >= 2^31).
const HardenedOffset uint32 = 0x80000000

// EthereumPath is the fixed derivation path m/44'/60'/0'/0/0.
var EthereumPath = [5]uint32{
	HardenedOffset + 44,
	HardenedOffset + 60,
	HardenedOffset + 0,
	0,
	0,
}

// ExtendedKey is a 64-byte private half || chain-code half pair, kept on
// the derivation stack only — it is never a long-lived value.
type ExtendedKey struct {
	Priv  bigint.BI256
	Chain bigint.BI256
}

// MasterKeyFromSeed computes the BIP32 master key: HMAC-SHA512(key=
// "Bitcoin seed", data=seed). The literal 64-byte seed is split into
// 32-byte IL (private key) and 32-byte IR (chain code).
func MasterKeyFromSeed(seed *[64]byte) ExtendedKey {
	digest := hash.HMACSum512([]byte(masterKeyHMACKey), seed[:])
	return splitDigest(digest)
}

func splitDigest(digest [64]byte) ExtendedKey {
	var il, ir [32]byte
	copy(il[:], digest[:32])
	copy(ir[:], digest[32:])
	return ExtendedKey{
		Priv:  bigint.FromBytesBE(&il),
		Chain: bigint.FromBytesBE(&ir),
	}
}

// DeriveChild derives the child at index i from parent:
//   - hardened (i >= 2^31): data = 0x00 || priv || BE32(i)
//   - normal:               data = (0x02|(Y&1)) || X || BE32(i), parent pubkey
//
// If IL >= n or the tweaked key ki = (IL + parent) mod n is zero, the
// derivation is degenerate; this is a silent skip, not an error — the
// child private key is zeroed and the derived chain code IR is still
// returned, leaving the caller to notice the all-zero key on read rather
// than unwind an error up the chain.
func DeriveChild(parent ExtendedKey, index uint32) ExtendedKey {
	var data [37]byte
	if index >= HardenedOffset {
		privBytes := parent.Priv.BytesBE()
		data[0] = 0x00
		copy(data[1:33], privBytes[:])
	} else {
		pub := secp256k1.ScalarMultG(parent.Priv)
		xBytes := pub.X.BytesBE()
		yBytes := pub.Y.BytesBE()
		if yBytes[31]&1 == 1 {
			data[0] = 0x03
		} else {
			data[0] = 0x02
		}
		copy(data[1:33], xBytes[:])
	}
	data[33] = byte(index >> 24)
	data[34] = byte(index >> 16)
	data[35] = byte(index >> 8)
	data[36] = byte(index)

	chainBytes := parent.Chain.BytesBE()
	digest := hash.HMACSum512(chainBytes[:], data[:])
	child := splitDigest(digest)

	if bigint.Gte(child.Priv, bigint.N) {
		child.Priv = bigint.Zero
		return child
	}
	tweaked := bigint.ModAddN(parent.Priv, child.Priv)
	if tweaked.IsZero() {
		child.Priv = bigint.Zero
		return child
	}
	child.Priv = tweaked
	return child
}

// DeriveEthereumKey walks seed through MasterKeyFromSeed and the fixed
// Ethereum path m/44'/60'/0'/0/0, returning the final private key.
func DeriveEthereumKey(seed *[64]byte) bigint.BI256 {
	key := MasterKeyFromSeed(seed)
	for _, idx := range EthereumPath {
		key = DeriveChild(key, idx)
	}
	return key.Priv
}
