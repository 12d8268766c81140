package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/markuspf/libsemigroups/pkg/cache"
	"github.com/markuspf/libsemigroups/pkg/observability"
	"github.com/markuspf/libsemigroups/pkg/semigroup"
)

// Summary is the cached result of enumerating a problem.
type Summary struct {
	Size          int  `json:"size"`
	NrRules       int  `json:"nr_rules"`
	NrIdempotents int  `json:"nr_idempotents,omitempty"`
	MaxWordLength int  `json:"max_word_length"`
	Degree        int  `json:"degree"`
	NrGens        int  `json:"nr_gens"`
	Done          bool `json:"done"`
}

// summaryTTL bounds how long cached summaries are kept. Enumeration results
// never go stale, but bounding the TTL keeps the cache dir from growing
// without limit.
const summaryTTL = 30 * 24 * time.Hour

// newRunCmd creates the "run" command.
func newRunCmd() *cobra.Command {
	var (
		limit   uint64
		noCache bool
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "run <problem.toml>",
		Short: "Enumerate a semigroup and print a summary",
		Long: `Run reads a TOML problem file, enumerates the semigroup generated by its
generators, and prints a summary: size, number of defining relations, number
of idempotents, and the maximum minimal-word length.

Summaries are cached under the user cache directory keyed by the problem file
content and the engine options; re-running an unchanged problem prints the
cached summary. Use --no-cache to force recomputation, --limit to stop after
approximately that many elements, and --watch for a live progress view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProblem(cmd.Context(), args[0], limit, noCache, watch)
		},
	}

	cmd.Flags().Uint64Var(&limit, "limit", 0, "stop after approximately this many elements (0 = enumerate fully)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the result cache")
	cmd.Flags().BoolVar(&watch, "watch", false, "show a live progress view while enumerating")

	return cmd
}

func runProblem(ctx context.Context, path string, limit uint64, noCache, watch bool) error {
	logger := loggerFromContext(ctx)

	problem, raw, err := LoadProblem(path)
	if err != nil {
		return err
	}
	logger.Debug("parsed problem", "type", problem.Type, "generators", len(problem.Generators))

	store, keyer, err := openCache(noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := keyer.SummaryKey(cache.Hash(raw), cache.SummaryKeyOpts{
		BatchSize: problem.Engine.BatchSize,
		Limit:     limit,
	})
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "summary")
		var sum Summary
		if err := json.Unmarshal(data, &sum); err == nil {
			printSummary(path, &sum, true)
			return nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "summary")

	sum, err := enumerateProblem(ctx, problem, limit, watch)
	if err != nil {
		return err
	}

	if data, err := json.Marshal(sum); err == nil {
		if err := store.Set(ctx, key, data, summaryTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "summary", len(data))
		}
	}

	printSummary(path, sum, false)
	return ctx.Err()
}

// enumerateProblem builds the engine and runs it, with either a spinner or
// the live watch view on a terminal.
func enumerateProblem(ctx context.Context, problem *Problem, limit uint64, watch bool) (*Summary, error) {
	logger := loggerFromContext(ctx)

	gens, err := problem.BuildGenerators()
	if err != nil {
		return nil, err
	}

	var opts []semigroup.Option
	if problem.Engine.BatchSize > 0 {
		opts = append(opts, semigroup.WithBatchSize(problem.Engine.BatchSize))
	}
	opts = append(opts, semigroup.WithMaxThreads(problem.Engine.MaxThreads))

	s, err := semigroup.New(gens, opts...)
	if err != nil {
		return nil, err
	}

	enumLimit := semigroup.LimitMax
	if limit > 0 && limit < uint64(semigroup.LimitMax) {
		enumLimit = semigroup.Pos(limit)
	}

	tty := isatty.IsTerminal(os.Stderr.Fd())
	switch {
	case watch && tty:
		if err := watchEnumeration(ctx, s, enumLimit); err != nil {
			return nil, err
		}
	case tty:
		if problem.Engine.Report {
			observability.SetEnumerationHooks(newLogHooks(logger))
		}
		sp := newSpinnerWithContext(ctx, "enumerating...")
		sp.Start()
		s.Enumerate(ctx, enumLimit)
		sp.Stop()
	default:
		if problem.Engine.Report {
			observability.SetEnumerationHooks(newLogHooks(logger))
		}
		track := newProgress(logger)
		s.Enumerate(ctx, enumLimit)
		track.done(fmt.Sprintf("Enumerated %d elements", s.CurrentSize()))
	}

	sum := &Summary{
		Size:          s.CurrentSize(),
		NrRules:       s.CurrentNrRules(),
		MaxWordLength: s.CurrentMaxWordLength(),
		Degree:        s.Degree(),
		NrGens:        s.NrGens(),
		Done:          s.IsDone(),
	}
	// the idempotent scan needs the whole semigroup, so skip it for partial
	// enumerations
	if s.IsDone() && ctx.Err() == nil {
		sum.NrIdempotents = s.NrIdempotents()
	}
	return sum, nil
}

// printSummary renders the summary table to stdout.
func printSummary(path string, sum *Summary, cached bool) {
	title := StyleTitle.Render(path)
	if cached {
		title += " " + styleCached.Render("(cached)")
	}
	fmt.Println(title)

	rows := []struct {
		label string
		value string
	}{
		{"size", fmt.Sprintf("%d", sum.Size)},
		{"rules", fmt.Sprintf("%d", sum.NrRules)},
		{"idempotents", fmt.Sprintf("%d", sum.NrIdempotents)},
		{"max word length", fmt.Sprintf("%d", sum.MaxWordLength)},
		{"degree", fmt.Sprintf("%d", sum.Degree)},
		{"generators", fmt.Sprintf("%d", sum.NrGens)},
	}
	for _, row := range rows {
		if row.label == "idempotents" && !sum.Done {
			continue
		}
		fmt.Printf("  %s %s\n",
			StyleLabel.Render(fmt.Sprintf("%-16s", row.label)),
			StyleNumber.Render(row.value))
	}
	if !sum.Done {
		printInfo("  enumeration stopped before completion; counts are lower bounds")
	}
}

// openCache opens the file cache, or the null cache when disabled.
func openCache(disabled bool) (cache.Cache, cache.Keyer, error) {
	keyer := cache.NewDefaultKeyer()
	if disabled {
		return cache.NewNullCache(), keyer, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), keyer, nil
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache(), keyer, nil
	}
	return store, keyer, nil
}
