package dispatch

import "vizsla/internal/wire"

// Keyed lets a synthetic, non-wire event (e.g. a handler's own flush
// timer) participate in dispatch without the dispatcher package
// needing to know about handler-internal types.
type Keyed interface {
	DispatchKey() string
}

// codeOf derives the Table lookup key for a decoded message: its wire
// code for anything the registry produced, its own declared key for a
// synthetic Keyed event, a fixed key for the handshake Hello, or
// "unknown:" plus the code for unknown codes; neither of the last two
// implements wire.Message.
func codeOf(msg any) string {
	switch m := msg.(type) {
	case Keyed:
		return m.DispatchKey()
	case wire.Message:
		return m.Code().String()
	case wire.UnknownCode:
		return "unknown:" + m.Code.String()
	case *wire.Hello:
		return "Hello"
	default:
		return DefaultCode
	}
}
