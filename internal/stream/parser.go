// Package stream reconstructs whole protocol frames out of an
// arbitrarily fragmented TCP byte stream (§4.2).
package stream

import (
	"errors"

	"vizsla/internal/wire"
)

// ErrHandshakeMismatch is returned by NextHandshakeMsg when a complete
// frame is available but its code doesn't match what the caller
// expected. It is fatal to the connection.
var ErrHandshakeMismatch = errors.New("stream: handshake code mismatch")

// compactThreshold is the fraction of the buffer the read cursor must
// pass before Parser reclaims the already-delivered prefix. This is a
// throughput optimization, not part of the framing contract.
const compactThreshold = 0.5

// Parser owns an append-only buffer and a read cursor. Everything
// before the cursor has already been delivered to the consumer; bytes
// from the cursor forward are either a complete frame, an incomplete
// frame, or nothing at all. Parser is not safe for concurrent use — by
// design it is owned exclusively by the client's reader goroutine
// (§4.4 concurrency notes).
type Parser struct {
	buf    []byte
	cursor int
}

// New returns an empty Parser.
func New() *Parser {
	return &Parser{}
}

// Feed appends newBytes to the buffer. It never blocks and never
// fails: framing errors surface later, from NextMsg/NextHandshakeMsg.
func (p *Parser) Feed(newBytes []byte) {
	p.buf = append(p.buf, newBytes...)
}

// frame attempts to consume one complete length-prefixed frame
// starting at the cursor. It reports (body, true) on success and
// (nil, false) when the buffer doesn't yet hold a full frame; framing
// never fails, only decoding does. body is a copy, so compaction of
// the buffer cannot overwrite it.
func (p *Parser) frame() (body []byte, ok bool) {
	avail := p.buf[p.cursor:]
	if len(avail) < wire.LengthPrefixWidth {
		return nil, false
	}
	length := wire.PeekLength(avail)
	total := wire.LengthPrefixWidth + int(length)
	if len(avail) < total {
		return nil, false
	}
	body = append([]byte(nil), avail[wire.LengthPrefixWidth:total]...)
	p.cursor += total
	p.maybeCompact()
	return body, true
}

func (p *Parser) maybeCompact() {
	if float64(p.cursor) <= float64(len(p.buf))*compactThreshold {
		return
	}
	remaining := len(p.buf) - p.cursor
	copy(p.buf, p.buf[p.cursor:])
	p.buf = p.buf[:remaining]
	p.cursor = 0
}

// NextHandshakeMsg attempts to frame one message and checks that it
// begins with expectedProtocolName. It returns (body, nil) once a full
// frame is available and matches; (nil, nil) if the buffer doesn't yet
// hold a full frame; (nil, ErrHandshakeMismatch) if a full frame is
// present but its leading bytes differ. Used only for the initial
// Hello frame, whose "code" position is occupied by the fixed-width
// protocol-name field rather than a four-byte Code (see wire.Hello).
func (p *Parser) NextHandshakeMsg(expectedProtocolName string) ([]byte, error) {
	body, ok := p.frame()
	if !ok {
		return nil, nil
	}
	n := len(expectedProtocolName)
	if len(body) < n || string(body[:n]) != expectedProtocolName {
		return nil, ErrHandshakeMismatch
	}
	return body, nil
}

// NextMsg attempts to frame and decode one regular message. It returns
// (nil, nil) when the buffer doesn't yet hold a full frame. A decode
// error (short body, bad encoding) is returned as-is; the frame itself
// was still fully consumed from the buffer.
func (p *Parser) NextMsg() (any, error) {
	body, ok := p.frame()
	if !ok {
		return nil, nil
	}
	return wire.Unpack(body)
}
