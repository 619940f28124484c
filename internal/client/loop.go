package client

import (
	"context"
	"fmt"
)

// readBufSize is the chunk size each socket read requests; the parser
// handles reassembly regardless of how the stream is chopped up.
const readBufSize = 4096

// Run drives the reader and writer goroutines until ctx is cancelled
// or the connection fails. submit is called once per fully-framed
// message, in wire order, from the reader goroutine — the caller
// (normally a dispatch.Dispatcher.Submit) must not block indefinitely,
// since doing so would stall the reader (§4.5 "Main loop", §5).
//
// Run blocks until both goroutines have exited and returns the first
// error either observed (nil on a clean ctx cancellation).
func (c *Client) Run(ctx context.Context, submit func(any)) error {
	// writerCtx ends the writer once the reader has returned, so a
	// failed connection does not leave Run waiting on the writer.
	writerCtx, cancelWriter := context.WithCancel(ctx)
	defer cancelWriter()

	writerDone := make(chan error, 1)
	go func() {
		err := c.writeLoop(writerCtx)
		if err != nil {
			// A failed write also unblocks the reader's pending read.
			_ = c.conn.Close()
		}
		writerDone <- err
	}()

	// conn.Read has no context awareness of its own; closing the
	// socket on cancellation is what actually unblocks a pending read.
	stopWatch := make(chan struct{})
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		select {
		case <-ctx.Done():
			_ = c.conn.Close()
		case <-stopWatch:
		}
	}()

	readerErr := c.readLoop(ctx, submit)
	cancelWriter()
	close(stopWatch)
	<-watcherDone
	writerErr := <-writerDone

	if ctx.Err() != nil {
		return nil
	}
	if writerErr != nil {
		return writerErr
	}
	return readerErr
}

func (c *Client) readLoop(ctx context.Context, submit func(any)) error {
	buf := make([]byte, readBufSize)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := c.conn.Read(buf)
		if err != nil {
			return fmt.Errorf("client: read: %w", err)
		}
		if n == 0 {
			return ErrClosedByPeer
		}
		c.parser.Feed(buf[:n])

		for {
			msg, err := c.parser.NextMsg()
			if err != nil {
				return fmt.Errorf("client: decode: %w", err)
			}
			if msg == nil {
				break
			}
			submit(msg)
		}
	}
}

func (c *Client) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case frame := <-c.writeCh:
			if _, err := c.conn.Write(frame); err != nil {
				return fmt.Errorf("client: write: %w", err)
			}
		}
	}
}
