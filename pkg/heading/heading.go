// Package heading tracks a target and a measured heading and reports the
// signed error between them.
package heading

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/tigerbot-team/angle/pkg/angle"
)

type Option func(*Holder)

// WithLogger sets the logger used for debug output. By default nothing is
// logged.
func WithLogger(logger *log.Logger) Option {
	return func(h *Holder) {
		h.log = logger
	}
}

// Holder is safe for use from multiple goroutines. Typically one goroutine
// feeds it sensor readings with Update while others steer with SetTarget and
// block in Wait.
type Holder struct {
	log *log.Logger

	onNewReading *sync.Cond

	controlLock sync.Mutex
	controls
}

type controls struct {
	targetHeading  angle.Angle
	currentHeading angle.Angle
	numReadings    uint64
}

func New(opts ...Option) *Holder {
	h := &Holder{
		log: log.New(io.Discard),
	}
	h.onNewReading = sync.NewCond(&h.controlLock)
	for _, o := range opts {
		o(h)
	}
	return h
}

// SetTarget sets the desired heading. It is stored folded into the signed
// range around zero.
func (h *Holder) SetTarget(target angle.Angle) {
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	h.targetHeading = target.NormalizedDelta()
	h.log.Debug("target set", "target", h.targetHeading)
}

// AddTargetDelta rotates the target by delta.
func (h *Holder) AddTargetDelta(delta angle.Angle) {
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	h.targetHeading = h.targetHeading.Add(delta).NormalizedDelta()
	h.log.Debug("target moved", "delta", delta, "target", h.targetHeading)
}

// Update records a new heading reading and wakes any waiters.
func (h *Holder) Update(reading angle.Angle) {
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	h.currentHeading = reading.NormalizedDelta()
	h.numReadings++
	h.onNewReading.Broadcast()
}

func (h *Holder) Target() angle.Angle {
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	return h.targetHeading
}

func (h *Holder) Current() angle.Angle {
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	return h.currentHeading
}

// Error returns the shortest rotation from the current heading to the
// target. Positive means the target is anti-clockwise of the current heading.
func (h *Holder) Error() angle.Angle {
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	return h.controls.headingError()
}

// OnTarget reports whether the current heading is within threshold of the
// target.
func (h *Holder) OnTarget(threshold angle.Angle) bool {
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	return h.currentHeading.CloseTo(h.targetHeading, threshold)
}

// Wait blocks until settle consecutive readings have been within threshold of
// the target, and returns the heading error at that point. If ctx is done
// first it returns the latest error along with ctx.Err().
func (h *Holder) Wait(ctx context.Context, threshold angle.Angle, settle int) (angle.Angle, error) {
	if settle < 1 {
		settle = 1
	}

	stop := context.AfterFunc(ctx, func() {
		h.controlLock.Lock()
		h.onNewReading.Broadcast()
		h.controlLock.Unlock()
	})
	defer stop()

	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	lastSeen := h.numReadings
	numReadingsOnTarget := 0
	for {
		if err := ctx.Err(); err != nil {
			return h.controls.headingError(), err
		}
		if h.numReadings == lastSeen {
			h.onNewReading.Wait()
			continue
		}
		lastSeen = h.numReadings

		angleError := h.controls.headingError()
		if h.currentHeading.CloseTo(h.targetHeading, threshold) {
			numReadingsOnTarget++
		} else {
			numReadingsOnTarget = 0
		}
		h.log.Debug("waiting for heading",
			"current", h.currentHeading, "target", h.targetHeading,
			"error", angleError, "settled", numReadingsOnTarget)
		if numReadingsOnTarget >= settle {
			return angleError, nil
		}
	}
}

func (c *controls) headingError() angle.Angle {
	return c.targetHeading.Sub(c.currentHeading).NormalizedDelta()
}
