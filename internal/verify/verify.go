// Package verify independently recomputes the mnemonic->seed->key->address
// chain for a winning entropy value using audited third-party libraries,
// and reports whether the result matches what internal/search's
// hand-rolled kernel found. This is the host's job, and the natural home for every
// teacher crypto dependency this module carries: the from-scratch kernel
// packages under internal/ are deliberately not allowed to import any of
// these, since being the primitive IS their specification.
package verify

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	tsbip32 "github.com/tyler-smith/go-bip32"
	tsbip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/sha3"
)

const (
	ethereumPurpose  = 44 + tsbip32.FirstHardenedChild
	ethereumCoinType = 60 + tsbip32.FirstHardenedChild
	ethereumAccount  = 0 + tsbip32.FirstHardenedChild
)

// Report is the result of independently recomputing a winning entropy's
// derivation chain.
type Report struct {
	Mnemonic       string
	Seed           [64]byte
	PrivateKey     [32]byte
	Address        [20]byte
	MatchesKernel  bool
	MismatchReason string
}

// Recompute derives the mnemonic, seed, private key, and address for
// entropy using the tyler-smith/go-bip39, tyler-smith/go-bip32, decred
// secp256k1, and golang.org/x/crypto/sha3 reference stack.
func Recompute(entropy [32]byte) (Report, error) {
	var r Report

	mnemonic, err := tsbip39.NewMnemonic(entropy[:])
	if err != nil {
		return r, fmt.Errorf("verify: reference mnemonic: %w", err)
	}
	r.Mnemonic = mnemonic

	seed := tsbip39.NewSeed(mnemonic, "")
	copy(r.Seed[:], seed)

	masterKey, err := tsbip32.NewMasterKey(seed)
	if err != nil {
		return r, fmt.Errorf("verify: reference master key: %w", err)
	}

	child, err := masterKey.NewChildKey(ethereumPurpose)
	if err != nil {
		return r, fmt.Errorf("verify: purpose derivation: %w", err)
	}
	child, err = child.NewChildKey(ethereumCoinType)
	if err != nil {
		return r, fmt.Errorf("verify: coin-type derivation: %w", err)
	}
	child, err = child.NewChildKey(ethereumAccount)
	if err != nil {
		return r, fmt.Errorf("verify: account derivation: %w", err)
	}
	child, err = child.NewChildKey(0)
	if err != nil {
		return r, fmt.Errorf("verify: change derivation: %w", err)
	}
	child, err = child.NewChildKey(0)
	if err != nil {
		return r, fmt.Errorf("verify: address-index derivation: %w", err)
	}

	copy(r.PrivateKey[:], child.Key)

	privKey := secp256k1.PrivKeyFromBytes(child.Key)
	pubKeyBytes := privKey.PubKey().SerializeUncompressed()[1:]

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(pubKeyBytes)
	digest := hasher.Sum(nil)
	copy(r.Address[:], digest[len(digest)-20:])

	return r, nil
}

// Compare fills in MatchesKernel/MismatchReason against the kernel's own
// output for the same entropy.
func (r *Report) Compare(kernelPriv [32]byte, kernelAddr [20]byte) {
	switch {
	case r.PrivateKey != kernelPriv:
		r.MatchesKernel = false
		r.MismatchReason = "private key mismatch"
	case r.Address != kernelAddr:
		r.MatchesKernel = false
		r.MismatchReason = "address mismatch"
	default:
		r.MatchesKernel = true
	}
}
