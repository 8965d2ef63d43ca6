package roster

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (o Options) withDefaults() Options {
	if o.MaxTrials <= 0 {
		o.MaxTrials = DefaultMaxTrials
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Seed == nil {
		seed := rand.Uint64()
		o.Seed = &seed
	}
	if len(o.Criteria) == 0 {
		o.Criteria = DefaultCriteria()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Generate runs up to MaxTrials randomized trials and returns the one with the fewest
// unfilled slots, ties going to the earliest trial. No new trial is started once a trial
// fills every slot.
//
// A fixed seed yields the same schedule regardless of the number of workers.
// If ctx ends before any trial completes, the context error is returned; otherwise the best
// trial found so far is returned.
func Generate(ctx context.Context, in Input, opts Options) (*GenerationResult, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	logger := opts.Logger
	seed := *opts.Seed

	logger.Debug("Starting roster generation",
		zap.Int("year", in.Year),
		zap.Int("month", in.Month),
		zap.Int("perDay", in.PerDay),
		zap.Int("staff", len(in.Quotas)),
		zap.Int("maxTrials", opts.MaxTrials),
		zap.Int("workers", opts.Workers),
		zap.Uint64("seed", seed))

	var (
		mu        sync.Mutex
		best      *trialResult
		completed int
	)

	// Lowest index of a trial that filled every slot
	var perfectIndex atomic.Int64
	perfectIndex.Store(math.MaxInt64)

	var g errgroup.Group
	g.SetLimit(opts.Workers)

	for i := 0; i < opts.MaxTrials; i++ {
		if perfectIndex.Load() != math.MaxInt64 || ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			// Only trials after a perfect one are skipped, so a lower index still gets to run
			if int64(i) > perfectIndex.Load() || ctx.Err() != nil {
				return nil
			}

			result := runTrial(&in, opts.Criteria, seed, i)

			mu.Lock()
			defer mu.Unlock()

			completed++
			if result.better(best) {
				best = &result
			}
			if result.unfilled == 0 && int64(i) < perfectIndex.Load() {
				perfectIndex.Store(int64(i))
			}

			logger.Debug("Trial complete",
				zap.Int("trial", i),
				zap.Int("unfilled", result.unfilled))
			return nil
		})
	}

	// Trials never return errors
	_ = g.Wait()

	if best == nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to complete any trial: %w", err)
		}
		return nil, fmt.Errorf("failed to complete any trial")
	}

	result := &GenerationResult{
		Schedule:      best.schedule,
		Stats:         Aggregate(best.schedule, in.Quotas),
		Logs:          best.logs,
		Success:       best.unfilled == 0,
		UnfilledSlots: best.unfilled,
		Trial:         best.index,
		TrialsRun:     completed,
		Seed:          seed,
	}

	logger.Debug("Roster generation complete",
		zap.Bool("success", result.Success),
		zap.Int("unfilledSlots", result.UnfilledSlots),
		zap.Int("trial", result.Trial),
		zap.Int("trialsRun", result.TrialsRun))

	return result, nil
}
