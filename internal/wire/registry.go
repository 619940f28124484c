package wire

import "fmt"

// Message is implemented by every regular (non-handshake) wire type.
// Code identifies the type on the wire; PackFields/UnpackFields encode
// and decode everything after the four-byte code. Most message types
// implement these two methods with a one-line call into packSchema /
// unpackSchema over a Schema built from their own fields; the few
// VAR_LIST-bearing types (LSYN, DDRG, DSOP) write their bodies by hand
// since Schema has no list instruction.
type Message interface {
	Code() Code
	PackFields(w *Writer)
	UnpackFields(r *Reader) error
}

// UnknownCode wraps a code the registry has no type for. It is not an
// error: the dispatcher logs and discards messages of unknown type
// rather than tearing down the connection (§4.1, §6.2).
type UnknownCode struct {
	Code Code
	Body []byte
}

var registry = map[Code]func() Message{}

// Register associates a Code with a zero-value constructor for its
// Message type. Called once per type from an init() in messages.go;
// registering the same code twice is a programming error and panics.
func Register(code Code, new func() Message) {
	if _, exists := registry[code]; exists {
		panic(fmt.Sprintf("wire: code %q already registered", code))
	}
	registry[code] = new
}

// Pack encodes msg as a complete body: four-byte code followed by
// PackFields' output.
func Pack(msg Message) []byte {
	w := NewWriter()
	w.WriteCode(msg.Code())
	msg.PackFields(w)
	return w.Bytes()
}

// Unpack decodes body (the bytes after the envelope length prefix)
// into a Message. If the leading four-byte code has no registered
// type, Unpack returns an UnknownCode instead of an error — the caller
// decides whether that is fatal.
func Unpack(body []byte) (any, error) {
	if len(body) < CodeLen {
		return nil, ErrShortBody
	}
	code := Code(body[:CodeLen])
	new, ok := registry[code]
	if !ok {
		return UnknownCode{Code: code, Body: body[CodeLen:]}, nil
	}
	msg := new()
	if err := msg.UnpackFields(NewReader(body[CodeLen:])); err != nil {
		return nil, err
	}
	return msg, nil
}
