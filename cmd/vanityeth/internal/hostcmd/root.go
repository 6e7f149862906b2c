// Package hostcmd implements the vanityeth command-line host: argument
// parsing, worker configuration, seed generation, waiting for the search, timeout, and
// result decoding — everything that sits outside the search kernel itself.
package hostcmd

import "github.com/spf13/cobra"

// Execute builds and runs the root vanityeth command.
func Execute() error {
	root := &cobra.Command{
		Use:   "vanityeth",
		Short: "Brute-force search for Ethereum addresses matching a pattern",
		Long: "vanityeth drives the BIP39/BIP32/secp256k1/Keccak-256 vanity " +
			"address search kernel: it seeds entropy, fans work out across " +
			"workers, waits for a hit, and decodes the winning entropy back " +
			"into a mnemonic and address.",
	}

	root.AddCommand(newSearchCommand())
	root.AddCommand(newVerifyCommand())

	return root.Execute()
}
