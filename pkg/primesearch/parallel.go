package primesearch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/oisee/bigprime/pkg/bigint"
	"github.com/oisee/bigprime/pkg/randsrc"
)

// SearchParallel runs opts.Workers independent search chains concurrently
// and returns the first verified prime, canceling the rest — grounded on
// the teacher's pkg/search.WorkerPool (atomic counters, sync.WaitGroup)
// and pkg/stoke.Run (N independent goroutines, each with its own seeded
// source, racing to a result). Each goroutine owns a private Candidate
// and constructs its own modreduce.Reducer instances inside IsPrime, so no
// arithmetic state crosses a goroutine boundary; opts.Workers <= 1 falls
// back to Search with no goroutines spawned.
func SearchParallel(ctx context.Context, nbits int, opts Options) (bigint.Int, Stats, error) {
	if opts.Workers <= 1 {
		return Search(ctx, nbits, opts)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg        sync.WaitGroup
		once      sync.Once
		mu        sync.Mutex
		result    bigint.Int
		found     bool
		checked   atomic.Int64
		sieveRej  atomic.Int64
		millerRej atomic.Int64
	)

	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		src := perWorkerSource(opts.Source, w)
		go func(workerSrc randsrc.Source) {
			defer wg.Done()
			workerOpts := opts
			workerOpts.Source = workerSrc

			n, stats, err := Search(runCtx, nbits, workerOpts)
			checked.Add(int64(stats.Candidates))
			sieveRej.Add(int64(stats.SieveRejected))
			millerRej.Add(int64(stats.MillerRejected))

			if err != nil {
				return // canceled, or another worker already won the race
			}
			once.Do(func() {
				mu.Lock()
				result = n
				found = true
				mu.Unlock()
				cancel()
			})
		}(src)
	}

	wg.Wait()

	stats := Stats{
		Candidates:     int(checked.Load()),
		SieveRejected:  int(sieveRej.Load()),
		MillerRejected: int(millerRej.Load()),
		Trials:         trialsFor(nbits, opts.Trials),
	}

	mu.Lock()
	defer mu.Unlock()
	if !found {
		return bigint.Int{}, stats, ErrSearchCanceled
	}
	return result, stats, nil
}

// perWorkerSource gives each worker goroutine an independent randomness
// source. randsrc.MathRand holds mutable *rand.Rand state and is not safe
// to share across goroutines, so it is forked deterministically per
// worker index; randsrc.CryptoRand is stateless and safe to share as-is.
func perWorkerSource(src randsrc.Source, worker int) randsrc.Source {
	if mr, ok := src.(*randsrc.MathRand); ok {
		return mr.Fork(worker)
	}
	return src
}
