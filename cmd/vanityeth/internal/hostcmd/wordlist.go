package hostcmd

import (
	"fmt"

	tsbip39 "github.com/tyler-smith/go-bip39"

	"github.com/not-for-prod/vanityeth/internal/bip39"
)

// loadWordlist sources the canonical English BIP39 wordlist from
// tyler-smith/go-bip39 rather than hand-maintaining a copy, and adapts
// it into the fixed-size array the kernel packages expect.
func loadWordlist() (*bip39.Wordlist, error) {
	words := tsbip39.GetWordList()
	if len(words) != 2048 {
		return nil, fmt.Errorf("hostcmd: unexpected wordlist length %d, want 2048", len(words))
	}
	var wl bip39.Wordlist
	copy(wl[:], words)
	return &wl, nil
}
