// Command bigprime generates and tests probable primes on top of the
// fixed-width bignum arithmetic in pkg/bigint.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oisee/bigprime/internal/config"
	"github.com/oisee/bigprime/internal/obslog"
	"github.com/oisee/bigprime/pkg/bigint"
	"github.com/oisee/bigprime/pkg/miller"
	"github.com/oisee/bigprime/pkg/primesearch"
	"github.com/oisee/bigprime/pkg/randsrc"
	"github.com/oisee/bigprime/pkg/report"
)

const (
	minBits     = 8
	maxBits     = 1024
	defaultBits = 512
)

func main() {
	var configPath, logLevel, logFile string

	rootCmd := &cobra.Command{
		Use:   "bigprime",
		Short: "Fixed-width bignum arithmetic and Miller-Rabin prime search",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Override the configured log file path")

	loadRuntime := func() (*config.Config, *zap.Logger, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if logFile != "" {
			cfg.Log.File = logFile
		}
		return cfg, obslog.New(cfg.Log), nil
	}

	rootCmd.AddCommand(
		generateCmd(loadRuntime),
		checkCmd(loadRuntime),
		benchCmd(loadRuntime),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runtimeLoader func() (*config.Config, *zap.Logger, error)

func clampBits(nbits int) int {
	if nbits < minBits {
		return minBits
	}
	if nbits > maxBits {
		return maxBits
	}
	return nbits
}

func sourceFromFlags(seed int64, useCrypto bool) randsrc.Source {
	if useCrypto {
		return randsrc.NewCryptoRand()
	}
	if seed != 0 {
		return randsrc.NewMathRandSeeded(uint64(seed))
	}
	return randsrc.NewMathRand()
}

func generateCmd(loadRuntime runtimeLoader) *cobra.Command {
	var (
		workers      int
		trials       int
		checkpoint   string
		output       string
		seed         int64
		useCrypto    bool
	)

	cmd := &cobra.Command{
		Use:   "generate [nbits]",
		Short: "Search for a probable prime of the given bit length",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := loadRuntime()
			if err != nil {
				return err
			}
			defer lgr.Sync() //nolint:errcheck

			nbits := defaultBits
			if len(args) == 1 {
				n, perr := parseBits(args[0])
				if perr != nil {
					return perr
				}
				nbits = n
			}
			nbits = clampBits(nbits)

			if trials == 0 {
				trials = cfg.Trials
			}
			if workers == 0 {
				workers = cfg.Workers
			}

			src := sourceFromFlags(seed, useCrypto)
			opts := primesearch.Options{Trials: trials, Workers: workers, Source: src}

			start := time.Now()

			var n bigint.Int
			var stats primesearch.Stats
			if checkpoint != "" {
				if ckpt, loadErr := report.LoadCheckpoint(checkpoint); loadErr == nil {
					lgr.Info("resuming search from checkpoint", zap.String("path", checkpoint), zap.Int("nbits", ckpt.NBits))
					n, stats, err = primesearch.ResumeSearch(context.Background(), ckpt.Candidate, ckpt.NBits, opts)
					nbits = ckpt.NBits
				} else {
					n, stats, err = primesearch.SearchParallel(context.Background(), nbits, opts)
				}
			} else {
				n, stats, err = primesearch.SearchParallel(context.Background(), nbits, opts)
			}
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			elapsed := time.Since(start)

			lgr.Info("search complete",
				zap.Int("candidates", stats.Candidates),
				zap.Int("sieve_rejected", stats.SieveRejected),
				zap.Int("miller_rejected", stats.MillerRejected),
				zap.Duration("elapsed", elapsed))

			bigint.FprintBytes(os.Stdout, "Bytes", &n)
			bigint.FprintDecimal(os.Stdout, "Decimal", &n)

			if output != "" {
				if err := appendLedger(output, report.Record{
					Bits:      nbits,
					Decimal:   n.String(),
					Trials:    stats.Trials,
					Witnesses: stats.Trials,
					Elapsed:   elapsed,
				}); err != nil {
					return fmt.Errorf("writing ledger: %w", err)
				}
				fmt.Printf("Appended to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent search workers (0 = serial)")
	cmd.Flags().IntVar(&trials, "trials", 0, "Override the computed Miller-Rabin trial count")
	cmd.Flags().StringVar(&checkpoint, "checkpoint", "", "Resume from (if present) this checkpoint file")
	cmd.Flags().StringVar(&output, "output", "", "Append the result to this JSON ledger file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Deterministic PRNG seed (0 = seed from wall-clock time)")
	cmd.Flags().BoolVar(&useCrypto, "crypto-rand", false, "Use crypto/rand instead of the default PRNG")
	return cmd
}

func checkCmd(loadRuntime runtimeLoader) *cobra.Command {
	var trials int

	cmd := &cobra.Command{
		Use:   "check [decimal-number]",
		Short: "Run Miller-Rabin on an arbitrary decimal integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lgr, err := loadRuntime()
			if err != nil {
				return err
			}
			defer lgr.Sync() //nolint:errcheck

			n, err := bigint.ParseDecimal(args[0])
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}

			cfg := miller.DefaultConfig
			if trials > 0 {
				cfg = miller.Config{TrialCount: trials}
			}
			src := randsrc.NewMathRand()

			probablyPrime := miller.IsPrime(&n, cfg, src)
			fmt.Printf("%s is %s (trials=%d)\n", n.String(), verdict(probablyPrime), cfg.Trials())

			if !probablyPrime {
				os.Exit(2)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 0, "Number of Miller-Rabin rounds (0 = library default)")
	return cmd
}

func benchCmd(loadRuntime runtimeLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [nbits]",
		Short: "Benchmark parallel prime search throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lgr, err := loadRuntime()
			if err != nil {
				return err
			}
			defer lgr.Sync() //nolint:errcheck

			nbits := defaultBits
			if len(args) == 1 {
				n, perr := parseBits(args[0])
				if perr != nil {
					return perr
				}
				nbits = n
			}
			nbits = clampBits(nbits)

			workers := runtime.NumCPU()
			src := randsrc.NewMathRand()

			start := time.Now()
			n, stats, err := primesearch.SearchParallel(context.Background(), nbits, primesearch.Options{Workers: workers, Source: src})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			rate := float64(stats.Candidates) / elapsed.Seconds()
			fmt.Printf("Found %d-bit prime %s in %s (%d workers, %d candidates, %.1f candidates/s)\n",
				nbits, n.String(), elapsed.Round(time.Millisecond), workers, stats.Candidates, rate)
			return nil
		},
	}
	return cmd
}

func verdict(probablyPrime bool) string {
	if probablyPrime {
		return "probably prime"
	}
	return "composite"
}

func parseBits(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid nbits %q: %w", s, err)
	}
	return n, nil
}

func appendLedger(path string, rec report.Record) error {
	ledger := report.NewLedger()
	if f, err := os.Open(path); err == nil {
		existing, rerr := report.ReadJSON(f)
		f.Close()
		if rerr == nil {
			for _, r := range existing {
				ledger.Add(r)
			}
		}
	}
	ledger.Add(rec)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteJSON(f, ledger.Records())
}
