package client

import "errors"

// ProtocolStop wraps one of the terminal lifecycle codes (CBYE, EBAD,
// EBSY, EICV, EUNK) that ends the session with an orderly shutdown
// (§7). cmd/vizsla exits 0 for CBYE and 1 for the other codes.
type ProtocolStop struct {
	Code   string
	Reason string
}

func (e *ProtocolStop) Error() string {
	if e.Reason == "" {
		return "client: protocol stop (" + e.Code + ")"
	}
	return "client: protocol stop (" + e.Code + "): " + e.Reason
}

// ErrClosedByPeer marks a clean zero-length read: the server closed
// its write half without a CBYE.
var ErrClosedByPeer = errors.New("client: connection closed by peer")
