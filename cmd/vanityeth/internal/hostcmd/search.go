package hostcmd

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/not-for-prod/vanityeth/internal/address"
	"github.com/not-for-prod/vanityeth/internal/bip39"
	"github.com/not-for-prod/vanityeth/internal/export"
	"github.com/not-for-prod/vanityeth/internal/hostlog"
	"github.com/not-for-prod/vanityeth/internal/search"
	"github.com/not-for-prod/vanityeth/internal/verify"
)

func newSearchCommand() *cobra.Command {
	var (
		cf            conditionFlags
		threads       uint32
		checkInterval uint32
		timeout       time.Duration
		seedHex       string
		crosscheck    bool
		exportWIF     bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for an Ethereum address matching the given condition",
		RunE: func(cmd *cobra.Command, args []string) error {
			cond, err := cf.resolve()
			if err != nil {
				return err
			}

			wordlist, err := loadWordlist()
			if err != nil {
				return err
			}

			var baseEntropy [32]byte
			if seedHex != "" {
				b, err := hex.DecodeString(seedHex)
				if err != nil || len(b) != 32 {
					return fmt.Errorf("hostcmd: --seed must be 64 hex characters (32 bytes)")
				}
				copy(baseEntropy[:], b)
			} else if _, err := rand.Read(baseEntropy[:]); err != nil {
				return fmt.Errorf("hostcmd: generating random seed: %w", err)
			}

			logger, err := hostlog.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := search.Config{
				BaseEntropy:   baseEntropy,
				NumThreads:    threads,
				Condition:     cond,
				CheckInterval: checkInterval,
				Wordlist:      wordlist,
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			logger.Infow("search starting", "threads", threads, "checkInterval", checkInterval)
			result, counters, err := search.Run(ctx, cfg)
			if err != nil {
				return err
			}

			var total uint64
			for _, c := range counters {
				total += c
			}

			if !result.Found {
				logger.Warnw("no match in the searched range", "checked", total)
				return fmt.Errorf("no match in the searched range")
			}

			indices := indicesFor(result.ResultEntropy)
			words := bip39.IndicesToMnemonicWords(indices, wordlist)

			logger.Infow("match found",
				"thread", result.FoundByThread,
				"checked", total,
				"address", "0x"+hex.EncodeToString(result.EthAddress[:]),
			)
			fmt.Printf("address: 0x%x\n", result.EthAddress)
			fmt.Printf("mnemonic: %v\n", words)
			fmt.Printf("entropy: %x\n", result.ResultEntropy)

			if crosscheck {
				report, err := verify.Recompute(result.ResultEntropy)
				if err != nil {
					return fmt.Errorf("hostcmd: reference crosscheck: %w", err)
				}
				kernelPriv := address.PrivateKeyFromEntropy(&result.ResultEntropy, wordlist)
				report.Compare(kernelPriv.BytesBE(), result.EthAddress)
				if !report.MatchesKernel {
					return fmt.Errorf("hostcmd: reference crosscheck mismatch: %s", report.MismatchReason)
				}
				logger.Infow("reference crosscheck passed", "mnemonic", report.Mnemonic)

				if exportWIF {
					fmt.Println("private key (WIF-style):", export.EncodeWIFStyle(report.PrivateKey))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&cf.prefix, "prefix", "", "required hex byte prefix the address must start with")
	cmd.Flags().StringVar(&cf.suffix, "suffix", "", "required hex byte suffix the address must end with")
	cmd.Flags().IntVar(&cf.leadingZerosMin, "leading-zeros-min", 0, "minimum leading zero hex nibbles")
	cmd.Flags().IntVar(&cf.leadingZerosExact, "leading-zeros-exact", 0, "exact leading zero hex nibble count")
	cmd.Flags().Uint32Var(&threads, "threads", 1024, "number of concurrent work-items")
	cmd.Flags().Uint32Var(&checkInterval, "check-interval", 2048, "power-of-two iterations between early-exit polls")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "search timeout, 0 for no timeout")
	cmd.Flags().StringVar(&seedHex, "seed", "", "override the random 32-byte base entropy (hex)")
	cmd.Flags().BoolVar(&crosscheck, "verify", false, "independently recompute the result with reference libraries")
	cmd.Flags().BoolVar(&exportWIF, "export-wif", false, "with --verify, also print the private key in WIF-style Base58Check")

	return cmd
}
