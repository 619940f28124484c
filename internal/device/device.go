// Package device declares the abstract input-injection contracts the
// client drives; concrete implementations live in uinputdev (§4.4).
package device

import "vizsla/internal/keymap"

// Context owns the client's belief about its screen geometry and the
// server-space position of the cursor. An implementation backs this
// with whatever the host windowing system exposes (§3 "Position
// context").
type Context interface {
	// ScreenSize returns the host's screen dimensions in pixels.
	ScreenSize() (w, h uint16)
	// LogicalPos returns the last position the client believes the
	// cursor occupies, in server coordinates.
	LogicalPos() (x, y int16)
	// UpdateScreenInfo refreshes ScreenSize from the windowing system.
	UpdateScreenInfo() error
	// SyncLogicalToReal reads the real cursor position and overwrites
	// LogicalPos with it.
	SyncLogicalToReal() error
	// CalculateRelativeMove returns the delta from the current
	// LogicalPos to (x, y), updates LogicalPos to (x, y), and returns
	// (0, 0) if LogicalPos was never initialized.
	CalculateRelativeMove(x, y int16) (dx, dy int16)
}

// Mouse is the concrete mouse half of the virtual input device.
// Implementations MUST coalesce writes between Syn calls and MUST
// have ReleaseAllButtons emit a release for every button recorded as
// held, then empty that record.
type Mouse interface {
	MoveAbsolute(x, y int16) error
	MoveRelative(dx, dy int16) error
	SendButton(code keymap.EvdevCode, pressed bool) error
	WheelRelative(clicks int16) error
	HWheelRelative(clicks int16) error
	ReleaseAllButtons() error
	Syn() error
}

// Keyboard is the concrete keyboard half of the virtual input device.
// Implementations MUST coalesce writes between Syn calls and MUST
// have ReleaseAllKeys emit a release for every key recorded as held,
// then empty that record.
type Keyboard interface {
	SendKey(code keymap.EvdevCode, pressed bool) error
	// SyncModifiers brings the local modifier state into agreement
	// with mask, pressing missing modifiers and releasing spurious
	// ones.
	SyncModifiers(mask uint16) error
	ReleaseAllKeys() error
	Syn() error
	// PressedKeys reports the evdev codes this device currently
	// believes are held down.
	PressedKeys() map[keymap.EvdevCode]struct{}
}
