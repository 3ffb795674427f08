package playback

import (
	"sync"
	"time"

	"go-firewatch/state"
	"go-firewatch/types"
)

// baseInterval is the tick period at speed 1.
const baseInterval = 2 * time.Second

const minSpeed = 0.25

// Controller cycles the simulation viewer through the discrete time steps
// while playing. The store holds the authoritative playback state; the
// controller only owns the ticker goroutine.
type Controller struct {
	store *state.Store
	steps []int

	mu      sync.Mutex
	base    time.Duration
	speed   float64
	stop    chan struct{} // nil while paused
	stopped sync.WaitGroup
}

func New(store *state.Store, steps []int) *Controller {
	if len(steps) == 0 {
		steps = types.DefaultTimeSteps
	}
	return &Controller{
		store: store,
		steps: append([]int(nil), steps...),
		base:  baseInterval,
		speed: 1,
	}
}

// Play starts the ticker. A no-op when already playing.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	c.store.SetPlaying(true)
	c.startLocked()
}

// Pause cancels the ticker with no further transitions.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetPlaying(false)
	c.stopLocked()
}

// SetSpeed changes the playback multiplier. While playing, the running
// ticker is torn down and rescheduled, so the new speed takes effect on
// the next tick.
func (c *Controller) SetSpeed(speed float64) {
	if speed < minSpeed {
		speed = minSpeed
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = speed
	c.store.SetSpeed(speed)
	if c.stop != nil {
		c.stopLocked()
		c.startLocked()
	}
}

// Advance moves one time step forward regardless of play state.
func (c *Controller) Advance() int {
	return c.store.AdvanceTimeStep(c.steps)
}

// Shutdown stops the ticker goroutine for good.
func (c *Controller) Shutdown() {
	c.Pause()
}

func (c *Controller) interval() time.Duration {
	return time.Duration(float64(c.base) / c.speed)
}

// startLocked spawns the tick loop. Caller holds c.mu.
func (c *Controller) startLocked() {
	stop := make(chan struct{})
	c.stop = stop
	interval := c.interval()

	c.stopped.Add(1)
	go func() {
		defer c.stopped.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.store.AdvanceTimeStep(c.steps)
			}
		}
	}()
}

// stopLocked cancels the tick loop and waits for it to exit. Caller holds c.mu.
func (c *Controller) stopLocked() {
	if c.stop == nil {
		return
	}
	close(c.stop)
	c.stop = nil
	c.stopped.Wait()
}
