// Package address composes the entropy->address pipeline (BIP39 -> PBKDF2
// -> BIP32 -> secp256k1 -> Keccak-256) and the condition test each search
// work-item runs on every iteration.
package address

import (
	"github.com/not-for-prod/vanityeth/internal/bigint"
	"github.com/not-for-prod/vanityeth/internal/bip32"
	"github.com/not-for-prod/vanityeth/internal/bip39"
	"github.com/not-for-prod/vanityeth/internal/hash"
	"github.com/not-for-prod/vanityeth/internal/keccak"
	"github.com/not-for-prod/vanityeth/internal/secp256k1"
)

// PrivateKeyFromEntropy walks the BIP39 -> PBKDF2 -> BIP32 half of the
// pipeline and returns the derived Ethereum private key, so callers that
// need to crosscheck against a reference implementation's private key
// (rather than only the final address) don't have to re-derive it
// themselves.
func PrivateKeyFromEntropy(entropy *[32]byte, wordlist *bip39.Wordlist) bigint.BI256 {
	indices := bip39.EntropyToIndices(entropy)
	password := bip39.IndicesToPassword(indices, wordlist)
	seed := hash.Pbkdf2HmacSha512Seed(password)
	return bip32.DeriveEthereumKey(&seed)
}

// FromEntropy derives the 20-byte Ethereum address for a 32-byte entropy
// value. It allocates plainly and shares no scratch buffer between calls;
// internal/search calls it once per candidate, and tests and the host's
// one-shot commands use it as well.
func FromEntropy(entropy *[32]byte, wordlist *bip39.Wordlist) [20]byte {
	priv := PrivateKeyFromEntropy(entropy, wordlist)
	pub := secp256k1.UncompressedPubKey(priv)

	var xy [64]byte
	copy(xy[:], pub[1:])
	return keccak.Sum256Address(&xy)
}
