// Package export renders a found private key as a Base58Check string for
// users who want a copy/paste-friendly key format: version byte + payload
// + double-hash checksum, Base58 alphabet, repurposed here for key export
// rather than address encoding.
package export

import (
	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/not-for-prod/vanityeth/internal/hash"
)

// WIFVersionMainnet is the same version byte Bitcoin's WIF format uses;
// this module borrows the shape, not the Bitcoin network semantics.
const WIFVersionMainnet = 0x80

// EncodeWIFStyle Base58Check-encodes a 32-byte private key: version byte ||
// key || first 4 bytes of the from-scratch double-SHA-256 checksum. The
// checksum reuses internal/hash.Sum256 — the same SHA-256 the kernel
// already carries — instead of importing crypto/sha256 a second time for
// the same job.
func EncodeWIFStyle(priv [32]byte) string {
	payload := make([]byte, 0, 33)
	payload = append(payload, WIFVersionMainnet)
	payload = append(payload, priv[:]...)

	first := hash.Sum256(payload)
	second := hash.Sum256(first[:])

	full := append(payload, second[:4]...)
	return base58.Encode(full)
}
