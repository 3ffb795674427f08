package playback

import (
	"testing"
	"time"

	"go-firewatch/regions"
	"go-firewatch/state"
	"go-firewatch/types"
)

func TestAdvanceCyclesWithWrap(t *testing.T) {
	store := state.NewStore()
	ctrl := New(store, types.DefaultTimeSteps)

	want := []int{2, 3, 6, 12, 1}
	for i, expected := range want {
		if got := ctrl.Advance(); got != expected {
			t.Fatalf("tick %d: got step %d, want %d", i+1, got, expected)
		}
	}
}

func TestAdvanceUnknownPositionRestarts(t *testing.T) {
	store := state.NewStore()
	store.SetTimeStep(99)
	ctrl := New(store, types.DefaultTimeSteps)

	if got := ctrl.Advance(); got != 1 {
		t.Fatalf("advance from unknown position: got %d, want 1", got)
	}
}

func TestPlayPauseStopsTransitions(t *testing.T) {
	store := state.NewStore()
	ctrl := New(store, types.DefaultTimeSteps)
	ctrl.base = 2 * time.Millisecond

	ctrl.Play()
	if !store.Snapshot().Playback.IsPlaying {
		t.Fatal("store not marked playing")
	}
	time.Sleep(20 * time.Millisecond)
	ctrl.Pause()

	snap := store.Snapshot()
	if snap.Playback.IsPlaying {
		t.Fatal("store still marked playing after pause")
	}

	frozen := snap.Playback.CurrentTimeStep
	time.Sleep(20 * time.Millisecond)
	if got := store.Snapshot().Playback.CurrentTimeStep; got != frozen {
		t.Fatalf("step advanced after pause: %d -> %d", frozen, got)
	}
}

// The region-selection sequence (pause the controller, then reset the
// store) must leave the ticker dead and the controller able to restart.
func TestPauseThenRegionResetFreezesTicker(t *testing.T) {
	store := state.NewStore()
	ctrl := New(store, types.DefaultTimeSteps)
	ctrl.base = 2 * time.Millisecond

	ctrl.Play()
	time.Sleep(10 * time.Millisecond)

	region, _ := regions.ByID("dehradun")
	ctrl.Pause()
	store.SelectRegion(region)

	time.Sleep(20 * time.Millisecond)
	snap := store.Snapshot()
	if snap.Playback.IsPlaying {
		t.Error("store reports playing after selection")
	}
	if snap.Playback.CurrentTimeStep != types.DefaultTimeSteps[0] {
		t.Fatalf("ticker still advancing after selection: step %d", snap.Playback.CurrentTimeStep)
	}

	ctrl.Play()
	defer ctrl.Pause()
	if !store.Snapshot().Playback.IsPlaying {
		t.Fatal("controller cannot resume after pause-and-reset")
	}
}

func TestPlayIsIdempotent(t *testing.T) {
	store := state.NewStore()
	ctrl := New(store, types.DefaultTimeSteps)
	ctrl.base = time.Hour // never ticks during the test

	ctrl.Play()
	ctrl.Play()
	ctrl.Pause()

	if store.Snapshot().Playback.IsPlaying {
		t.Fatal("still playing after pause")
	}
}

func TestSetSpeedWhilePlayingReschedules(t *testing.T) {
	store := state.NewStore()
	ctrl := New(store, types.DefaultTimeSteps)
	ctrl.base = time.Hour

	ctrl.Play()
	ctrl.SetSpeed(4)
	defer ctrl.Pause()

	if got := store.Snapshot().Playback.Speed; got != 4 {
		t.Fatalf("speed %f, want 4", got)
	}
	if !store.Snapshot().Playback.IsPlaying {
		t.Fatal("speed change stopped playback")
	}
}

func TestSetSpeedClampsToMinimum(t *testing.T) {
	store := state.NewStore()
	ctrl := New(store, types.DefaultTimeSteps)

	ctrl.SetSpeed(0.01)
	if got := store.Snapshot().Playback.Speed; got != minSpeed {
		t.Fatalf("speed %f, want clamp to %f", got, minSpeed)
	}
}
