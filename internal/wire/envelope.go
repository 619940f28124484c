package wire

import "encoding/binary"

// LengthPrefixWidth is the size of the big-endian frame length prefix
// that precedes every body on the wire, handshake or regular (§4.1).
const LengthPrefixWidth = 4

// Envelope prefixes body with its big-endian u32 length, producing a
// complete frame ready to write to the socket.
func Envelope(body []byte) []byte {
	out := make([]byte, LengthPrefixWidth+len(body))
	binary.BigEndian.PutUint32(out, uint32(len(body)))
	copy(out[LengthPrefixWidth:], body)
	return out
}

// PeekLength reads the frame length out of a length prefix without
// consuming anything. buf must contain at least LengthPrefixWidth
// bytes; the caller (stream.Parser) is responsible for that check.
func PeekLength(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}
