// Command vanityeth is the host program named out of scope by the kernel
// specification: argument parsing, worker/device configuration, seed
// generation, waiting for the search, timeout, and decoding the winning entropy back into
// a printable mnemonic and address all live here, never inside
// internal/search or its dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/not-for-prod/vanityeth/cmd/vanityeth/internal/hostcmd"
)

func main() {
	if err := hostcmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vanityeth:", err)
		os.Exit(1)
	}
}
