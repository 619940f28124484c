package wire

import "errors"

// Decode failures a single frame can produce. ShortBody and BadEncoding
// are fatal to the connection; UnknownCode is recovered locally by the
// caller (see stream.Parser.NextMsg).
var (
	ErrShortBody   = errors.New("wire: frame body shorter than schema requires")
	ErrBadEncoding = errors.New("wire: non-UTF-8 bytes in string field")
)
