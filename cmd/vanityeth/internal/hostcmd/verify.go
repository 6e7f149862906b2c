package hostcmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/not-for-prod/vanityeth/internal/address"
	"github.com/not-for-prod/vanityeth/internal/verify"
)

func newVerifyCommand() *cobra.Command {
	var entropyHex string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Recompute an address from raw entropy using the reference crypto stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hex.DecodeString(entropyHex)
			if err != nil || len(b) != 32 {
				return fmt.Errorf("hostcmd: --entropy must be 64 hex characters (32 bytes)")
			}
			var entropy [32]byte
			copy(entropy[:], b)

			wordlist, err := loadWordlist()
			if err != nil {
				return err
			}

			kernelPriv := address.PrivateKeyFromEntropy(&entropy, wordlist)
			kernelAddr := address.FromEntropy(&entropy, wordlist)

			report, err := verify.Recompute(entropy)
			if err != nil {
				return err
			}
			report.Compare(kernelPriv.BytesBE(), kernelAddr)

			fmt.Printf("kernel address:    0x%x\n", kernelAddr)
			fmt.Printf("reference address: 0x%x\n", report.Address)
			fmt.Printf("reference mnemonic: %s\n", report.Mnemonic)
			if !report.MatchesKernel {
				return fmt.Errorf("hostcmd: mismatch: %s", report.MismatchReason)
			}
			fmt.Println("match: ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&entropyHex, "entropy", "", "32-byte hex entropy to verify")
	cmd.MarkFlagRequired("entropy")

	return cmd
}
