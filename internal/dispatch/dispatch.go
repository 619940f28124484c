// Package dispatch implements the single-worker message dispatcher of
// spec §4.6: a queue plus one worker goroutine, guaranteeing that
// handler invocation order matches wire order exactly.
package dispatch

import (
	"context"

	"github.com/charmbracelet/log"
)

// Handler processes one decoded message. An error is logged and
// swallowed unless it is a Stop, which ends the worker loop (§4.6,
// §7: "one bad event must not kill the session").
type Handler func(ctx context.Context, msg any) error

// Stop, when returned by a Handler, is an unrecoverable condition that
// ends the dispatcher's worker loop (a terminal protocol message or an
// I/O failure surfaced through the handler layer).
type Stop struct{ Err error }

func (s *Stop) Error() string { return s.Err.Error() }
func (s *Stop) Unwrap() error { return s.Err }

// Table is a static map from a message's dispatch key to the handler
// that processes it, built once at startup and never mutated (§4.6
// "handler lookup"). The key is the string codeOf (keys.go) derives
// from the message: its wire code, or a Keyed event's own key.
type Table map[string]Handler

// DefaultCode names the Table entry used when a message's type has no
// registered handler: logged and dropped (§4.6).
const DefaultCode = ""

// Dispatcher drains a channel of decoded messages with a single
// goroutine, in the exact order they were enqueued, looking up and
// invoking a handler per message.
type Dispatcher struct {
	table   Table
	queue   chan any
	logger  *log.Logger
	stopped chan struct{}
}

// New returns a Dispatcher with the given handler table and queue
// capacity. A large buffer keeps Submit non-blocking from the reader
// goroutine in the common case (§4.6 "non-blocking enqueue").
func New(table Table, queueCapacity int, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		table:   table,
		queue:   make(chan any, queueCapacity),
		logger:  logger,
		stopped: make(chan struct{}),
	}
}

// Submit enqueues msg for the worker. Non-blocking unless the queue is
// completely full, which only happens if the worker has stalled.
func (d *Dispatcher) Submit(msg any) {
	d.queue <- msg
}

// Run drains the queue until ctx is cancelled or a handler returns a
// Stop. It is meant to be run in its own goroutine; the caller
// receives the terminal error, if any, over the returned channel
// exactly once.
func (d *Dispatcher) Run(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(d.stopped)
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case msg := <-d.queue:
				if err := d.dispatchOne(ctx, msg); err != nil {
					done <- err
					return
				}
			}
		}
	}()
	return done
}

func (d *Dispatcher) dispatchOne(ctx context.Context, msg any) error {
	key := codeOf(msg)
	handler, ok := d.table[key]
	if !ok {
		handler, ok = d.table[DefaultCode]
		if !ok {
			d.logger.Warn("no handler registered, message dropped", "type", key)
			return nil
		}
	}

	if err := handler(ctx, msg); err != nil {
		var stop *Stop
		if asStop(err, &stop) {
			return stop.Err
		}
		d.logger.Error("handler error", "type", key, "error", err)
	}
	return nil
}

func asStop(err error, target **Stop) bool {
	s, ok := err.(*Stop)
	if !ok {
		return false
	}
	*target = s
	return true
}
