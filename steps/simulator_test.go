package steps

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"go-firewatch/types"
)

func fastConfig() Config {
	return Config{} // zero delays, honored literally
}

func TestDefaultConfigPacing(t *testing.T) {
	d := DefaultConfig()
	if d.ProgressDelay <= 0 {
		t.Error("default progress delay not positive")
	}
	if d.MinLeadIn != 600*time.Millisecond || d.MaxLeadIn != 1600*time.Millisecond {
		t.Errorf("default lead-in %v..%v, want 600ms..1600ms", d.MinLeadIn, d.MaxLeadIn)
	}
}

// A zero config must not be silently upgraded to production pacing.
func TestZeroConfigRunsWithoutDelays(t *testing.T) {
	start := time.Now()
	err := Run(context.Background(), rand.New(rand.NewSource(5)), []string{"a", "b", "c"}, Config{}, func([]types.ProcessingStep) {})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	// Default pacing would take seconds; a literal zero config is instant.
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("zero config took %v, delays were substituted", elapsed)
	}
}

func TestRunTerminalState(t *testing.T) {
	names := []string{"Data Collection", "Segmentation", "Prediction", "Simulation"}

	var published [][]types.ProcessingStep
	err := Run(context.Background(), rand.New(rand.NewSource(1)), names, fastConfig(), func(s []types.ProcessingStep) {
		published = append(published, s)
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(published) == 0 {
		t.Fatal("nothing was published")
	}

	final := published[len(published)-1]
	if len(final) != len(names) {
		t.Fatalf("final snapshot has %d steps, want %d", len(final), len(names))
	}
	for i, s := range final {
		if s.Status != types.StepCompleted {
			t.Errorf("step %d status %s, want completed", i, s.Status)
		}
		if s.Progress != 100 {
			t.Errorf("step %d progress %d, want 100", i, s.Progress)
		}
		if s.Name != names[i] {
			t.Errorf("step %d named %q, want %q", i, s.Name, names[i])
		}
	}
}

// A later step must never leave pending before every earlier step has
// completed.
func TestRunStepsCompleteInOrder(t *testing.T) {
	names := []string{"one", "two", "three"}

	var published [][]types.ProcessingStep
	err := Run(context.Background(), rand.New(rand.NewSource(2)), names, fastConfig(), func(s []types.ProcessingStep) {
		published = append(published, s)
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, snap := range published {
		for i := 1; i < len(snap); i++ {
			if snap[i].Status != types.StepPending && snap[i-1].Status != types.StepCompleted {
				t.Fatalf("step %d started (%s) before step %d completed (%s)",
					i, snap[i].Status, i-1, snap[i-1].Status)
			}
		}
	}
}

func TestRunProgressIncrements(t *testing.T) {
	var published [][]types.ProcessingStep
	err := Run(context.Background(), rand.New(rand.NewSource(3)), []string{"only"}, fastConfig(), func(s []types.ProcessingStep) {
		published = append(published, s)
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	seen := map[int]bool{}
	for _, snap := range published {
		seen[snap[0].Progress] = true
		if snap[0].Progress%25 != 0 {
			t.Errorf("progress %d is not a multiple of 25", snap[0].Progress)
		}
	}
	for _, want := range []int{0, 25, 50, 75, 100} {
		if !seen[want] {
			t.Errorf("progress value %d was never published", want)
		}
	}
}

func TestRunCancelMarksStepError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var published [][]types.ProcessingStep
	count := 0
	err := Run(ctx, rand.New(rand.NewSource(4)), []string{"a", "b"}, fastConfig(), func(s []types.ProcessingStep) {
		published = append(published, s)
		count++
		if count == 3 {
			cancel()
		}
	})
	if err == nil {
		t.Fatal("expected cancellation error")
	}

	final := published[len(published)-1]
	errored := false
	for _, s := range final {
		if s.Status == types.StepError {
			errored = true
		}
		if s.Status == types.StepProcessing {
			t.Errorf("step %s left in processing after cancel", s.ID)
		}
	}
	if !errored {
		t.Error("no step marked error after cancellation")
	}
}
