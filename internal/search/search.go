// Package search implements the driver kernel: per-work-item entropy
// iteration, periodic early-exit polling, and single-writer result
// publication. Work-items are goroutines, the "device" is the local
// machine, and the launch model is realized as a plain fan-out of
// num_threads goroutines with no cross-goroutine suspension inside the
// hot loop.
package search

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/not-for-prod/vanityeth/internal/address"
	"github.com/not-for-prod/vanityeth/internal/bip39"
)

// Config mirrors search_config_t: a read-only record shared by every
// work-item.
type Config struct {
	BaseEntropy   [32]byte
	NumThreads    uint32
	Condition     address.Condition
	CheckInterval uint32 // must be a power of two
	Wordlist      *bip39.Wordlist
}

// Result mirrors search_result_t: the shared record only the winning
// work-item's CAS may populate.
type Result struct {
	Found         bool
	ResultEntropy [32]byte
	EthAddress    [20]byte
	FoundByThread uint32
}

// Run launches cfg.NumThreads work-items and returns once every work-item
// has terminated: by finding a hit, by observing the shared early-exit
// flag, or by exhausting its slice of the entropy space. The per-thread
// checked-counter array is returned alongside the result, one slot per
// work-item, for the host to sum.
//
// ctx cancellation sets the same early-exit flag a winning CAS would, so a
// host-initiated shutdown is observed by every work-item within at most
// CheckInterval iterations, exactly like an internally discovered hit.
func Run(ctx context.Context, cfg Config) (Result, []uint64, error) {
	var foundFlag int32 // the kernel's g_found_flag, CAS 0->1
	var resultMu sync.Mutex
	result := Result{}
	counters := make([]uint64, cfg.NumThreads)

	if cfg.CheckInterval == 0 || cfg.CheckInterval&(cfg.CheckInterval-1) != 0 {
		cfg.CheckInterval = 1 << 11 // default power of two
	}

	var wg sync.WaitGroup
	wg.Add(int(cfg.NumThreads))

	// A ctx.Done() watcher flips the same flag a winning thread's CAS
	// would, giving cooperative cancellation the identical happens-before
	// edge a winning thread's own CAS gives the internal hit case.
	stopWatcher := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			atomic.CompareAndSwapInt32(&foundFlag, 0, 1)
		case <-stopWatcher:
		}
	}()
	defer close(stopWatcher)

	for t := uint32(0); t < cfg.NumThreads; t++ {
		go func(threadID uint32) {
			defer wg.Done()
			counters[threadID] = runWorkItem(threadID, cfg, &foundFlag, &resultMu, &result)
		}(t)
	}

	wg.Wait()
	return result, counters, nil
}

// runWorkItem is one goroutine's loop: derive, test, advance, poll.
func runWorkItem(threadID uint32, cfg Config, foundFlag *int32, resultMu *sync.Mutex, result *Result) uint64 {
	entropy := cfg.BaseEntropy

	if threadID > 0 {
		if ok := IncrementBy(&entropy, threadID); !ok {
			return 0
		}
	}

	var localChecked uint64
	var counter uint32

	for atomic.LoadInt32(foundFlag) == 0 {
		addr := address.FromEntropy(&entropy, cfg.Wordlist)
		localChecked++

		if address.Matches(cfg.Condition, addr) {
			if atomic.CompareAndSwapInt32(foundFlag, 0, 1) {
				resultMu.Lock()
				result.Found = true
				result.ResultEntropy = entropy
				result.EthAddress = addr
				result.FoundByThread = threadID
				resultMu.Unlock()
			}
			break
		}

		if ok := IncrementBy(&entropy, cfg.NumThreads); !ok {
			break
		}

		counter++
		if counter&(cfg.CheckInterval-1) == 0 {
			if atomic.LoadInt32(foundFlag) != 0 {
				break
			}
		}
	}

	return localChecked
}
