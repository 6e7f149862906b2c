// Package bip39 implements the entropy<->mnemonic half of BIP39: the
// SHA-256 checksum, the 264-bit-to-24-index split, and index-to-password
// string formation. The English wordlist itself is an external
// collaborator — this package only ever deals
// in indices, taking a caller-supplied Wordlist when it needs to render
// words for the PBKDF2 password string.
package bip39

import (
	"fmt"

	"github.com/not-for-prod/vanityeth/internal/hash"
)

const (
	entropyBits  = 256
	checksumBits = 8
	totalBits    = entropyBits + checksumBits // 264
	wordCount    = totalBits / 11             // 24
)

// Wordlist is the 2048-entry BIP39 English word list, supplied by the
// host rather than embedded here.
type Wordlist [2048]string

// EntropyToIndices computes the 24 11-bit word indices for a 32-byte
// entropy value: checksum_byte = SHA-256(entropy)[0]; concatenate entropy
// (256 bits, MSB first) with the checksum byte (8 bits, MSB first) into a
// 264-bit stream; split into 24 big-endian 11-bit groups.
func EntropyToIndices(entropy *[32]byte) [wordCount]uint16 {
	checksum := hash.Sum256(entropy[:])
	checksumByte := checksum[0]

	var stream [33]byte
	copy(stream[:32], entropy[:])
	stream[32] = checksumByte

	var indices [wordCount]uint16
	for i := 0; i < wordCount; i++ {
		bitOffset := i * 11
		indices[i] = readBits11(stream[:], bitOffset)
	}
	return indices
}

// readBits11 reads an 11-bit big-endian-ordered group starting at bitOffset
// out of a byte slice interpreted MSB-first.
func readBits11(data []byte, bitOffset int) uint16 {
	var value uint16
	for i := 0; i < 11; i++ {
		bit := bitOffset + i
		byteIdx := bit / 8
		bitInByte := 7 - uint(bit%8)
		b := (data[byteIdx] >> bitInByte) & 1
		value = (value << 1) | uint16(b)
	}
	return value
}

// IndicesToPassword looks up each index in wordlist and joins the words
// with single ASCII spaces — the PBKDF2 password string BIP39 specifies.
func IndicesToPassword(indices [wordCount]uint16, wordlist *Wordlist) []byte {
	buf := make([]byte, 0, 215)
	for i, idx := range indices {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, wordlist[idx]...)
	}
	return buf
}

// IndicesToMnemonicWords is the human-readable counterpart of
// IndicesToPassword, returning a slice of words instead of a joined byte
// buffer, for host-side display.
func IndicesToMnemonicWords(indices [wordCount]uint16, wordlist *Wordlist) []string {
	words := make([]string, wordCount)
	for i, idx := range indices {
		words[i] = wordlist[idx]
	}
	return words
}

// IndicesToEntropy is the host-side inverse: reconstruct 33 bytes from the
// 24 indices, split into 32-byte entropy and a checksum byte, and verify
// the checksum against SHA-256(entropy)[0]. The kernel never needs this —
// it only produces indices. The host commands render the winning entropy
// from EntropyToIndices and IndicesToMnemonicWords and do not call it.
func IndicesToEntropy(indices [wordCount]uint16) (entropy [32]byte, err error) {
	var stream [33]byte
	for i, idx := range indices {
		writeBits11(stream[:], i*11, idx)
	}
	copy(entropy[:], stream[:32])
	checksumByte := stream[32]

	checksum := hash.Sum256(entropy[:])
	if checksum[0] != checksumByte {
		return entropy, fmt.Errorf("bip39: checksum mismatch: got %#x, want %#x", checksumByte, checksum[0])
	}
	return entropy, nil
}

func writeBits11(data []byte, bitOffset int, value uint16) {
	for i := 0; i < 11; i++ {
		bit := bitOffset + i
		byteIdx := bit / 8
		bitInByte := 7 - uint(bit%8)
		b := byte((value >> (10 - i)) & 1)
		data[byteIdx] |= b << bitInByte
	}
}
