package handler

import (
	"context"
	"time"

	"vizsla/internal/wire"
)

// flushDelay is the fixed 50ms grace period after a throttled DMMV
// before its final position is flushed regardless of further input
// (§4.7 "DMMV smoothing").
const flushDelay = 50 * time.Millisecond

// dmmvFlush is a synthetic event the flush timer submits back through
// the dispatcher, rather than touching device state directly from the
// timer's own goroutine — preserving the single-worker invariant that
// lets mmvState go unlocked (§9 "async cancellation of the flush
// timer": a re-arm must invalidate any timer already in flight).
const dmmvFlushKey = "internal:dmmv_flush"

type dmmvFlush struct{ generation uint64 }

// DispatchKey satisfies dispatch.Keyed, giving this synthetic event a
// Table entry without the dispatch package needing to know its type.
func (dmmvFlush) DispatchKey() string { return dmmvFlushKey }

// mmvState is the DMMV handler's carried state: the last time a move
// was actually emitted, any pending (not-yet-emitted) position, and a
// relative-mode resync counter. Mutated only by the single dispatcher
// worker (§9).
type mmvState struct {
	lastEmit   time.Time
	hasPending bool
	pendingX   int16
	pendingY   int16
	generation uint64
	moveCount  uint32
}

// SetSubmit wires the submit function (normally
// dispatch.Dispatcher.Submit) after construction, since it isn't available at New time in every
// wiring. It must be set before the first DMMV arrives.
func (h *Handlers) SetSubmit(submit func(any)) {
	h.submit = submit
}

func (h *Handlers) onDMMV(_ context.Context, msg any) error {
	m := msg.(*wire.DMMV)
	now := time.Now()

	h.mmv.generation++
	gen := h.mmv.generation

	interval := time.Duration(h.mouseMoveThreshold) * time.Millisecond
	if !h.mmv.lastEmit.IsZero() && now.Sub(h.mmv.lastEmit) < interval {
		h.mmv.hasPending = true
		h.mmv.pendingX, h.mmv.pendingY = m.X, m.Y
		time.AfterFunc(flushDelay, func() {
			if h.submit != nil {
				h.submit(dmmvFlush{generation: gen})
			}
		})
		return nil
	}

	return h.emitMove(m.X, m.Y, now)
}

func (h *Handlers) onDMMVFlush(_ context.Context, msg any) error {
	f := msg.(dmmvFlush)
	if f.generation != h.mmv.generation || !h.mmv.hasPending {
		return nil
	}
	return h.emitMove(h.mmv.pendingX, h.mmv.pendingY, time.Now())
}

// emitMove performs the actual injection decision from §4.7 step 3:
// absolute mode always hard-emits; relative mode periodically
// hard-resyncs and otherwise emits only a non-zero relative delta.
func (h *Handlers) emitMove(x, y int16, now time.Time) error {
	h.mmv.hasPending = false
	h.mmv.lastEmit = now

	if h.absMouseMove {
		return h.hardEmit(x, y)
	}

	h.mmv.moveCount++
	if h.mmv.moveCount >= h.mousePosSyncFreq {
		h.mmv.moveCount = 0
		return h.hardEmit(x, y)
	}

	dx, dy := h.c.Context.CalculateRelativeMove(x, y)
	if dx == 0 && dy == 0 {
		return nil
	}
	if err := h.c.Mouse.MoveRelative(dx, dy); err != nil {
		h.logger.Error("move_relative failed", "error", err, "category", "DeviceError")
		return nil
	}
	return h.c.Mouse.Syn()
}

func (h *Handlers) hardEmit(x, y int16) error {
	if err := h.c.Mouse.MoveAbsolute(x, y); err != nil {
		h.logger.Error("move_absolute failed", "error", err, "category", "DeviceError")
		return nil
	}
	return h.c.Mouse.Syn()
}
