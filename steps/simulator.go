package steps

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go-firewatch/types"
)

const progressIncrement = 25

// Config holds the simulator's pacing and is honored literally: the zero
// value runs with no delays at all. Production callers use DefaultConfig.
type Config struct {
	ProgressDelay time.Duration // pause between progress increments
	MinLeadIn     time.Duration // randomized wait before a step starts
	MaxLeadIn     time.Duration
}

func DefaultConfig() Config {
	return Config{
		ProgressDelay: 200 * time.Millisecond,
		MinLeadIn:     600 * time.Millisecond,
		MaxLeadIn:     1600 * time.Millisecond,
	}
}

// Run animates the named steps strictly in order: a randomized lead-in
// delay, pending→processing, progress 0→100 in fixed increments, then
// completed. Every change is published as a fresh snapshot. The animation
// is cosmetic and runs independently of the real backend request.
// Cancelling ctx marks the step in flight as errored and stops.
func Run(ctx context.Context, rng *rand.Rand, names []string, cfg Config, publish func([]types.ProcessingStep)) error {
	list := make([]types.ProcessingStep, 0, len(names))
	for i, name := range names {
		list = append(list, types.ProcessingStep{
			ID:     fmt.Sprintf("step-%d", i+1),
			Name:   name,
			Status: types.StepPending,
		})
	}
	publish(snapshot(list))

	for i := range list {
		leadIn := cfg.MinLeadIn
		if span := cfg.MaxLeadIn - cfg.MinLeadIn; span > 0 {
			leadIn += time.Duration(rng.Int63n(int64(span)))
		}
		if err := wait(ctx, leadIn); err != nil {
			return abort(list, i, publish, err)
		}

		list[i].Status = types.StepProcessing
		publish(snapshot(list))

		for p := progressIncrement; p <= 100; p += progressIncrement {
			if err := wait(ctx, cfg.ProgressDelay); err != nil {
				return abort(list, i, publish, err)
			}
			list[i].Progress = p
			publish(snapshot(list))
		}

		list[i].Status = types.StepCompleted
		publish(snapshot(list))
	}
	return nil
}

func abort(list []types.ProcessingStep, i int, publish func([]types.ProcessingStep), err error) error {
	list[i].Status = types.StepError
	publish(snapshot(list))
	return err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snapshot(list []types.ProcessingStep) []types.ProcessingStep {
	return append([]types.ProcessingStep(nil), list...)
}
