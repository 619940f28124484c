// Package devicetest provides an in-memory device.Context/Mouse/
// Keyboard implementation that records every call, for asserting
// exact device traces in handler and client tests (§8).
package devicetest

import "vizsla/internal/keymap"

// Device is a recording fake satisfying device.Context, device.Mouse
// and device.Keyboard.
type Device struct {
	Trace []string

	screenW, screenH uint16
	haveLogicalPos   bool
	logicalX         int16
	logicalY         int16

	pressedKeys    map[keymap.EvdevCode]struct{}
	pressedButtons map[keymap.EvdevCode]struct{}
}

// New returns a Device reporting the given screen size.
func New(screenW, screenH uint16) *Device {
	return &Device{
		screenW:        screenW,
		screenH:        screenH,
		pressedKeys:    make(map[keymap.EvdevCode]struct{}),
		pressedButtons: make(map[keymap.EvdevCode]struct{}),
	}
}

func (d *Device) record(s string) { d.Trace = append(d.Trace, s) }

// --- device.Context ---

func (d *Device) ScreenSize() (uint16, uint16) { return d.screenW, d.screenH }
func (d *Device) LogicalPos() (int16, int16)   { return d.logicalX, d.logicalY }

func (d *Device) UpdateScreenInfo() error   { return nil }
func (d *Device) SyncLogicalToReal() error  { return nil }

func (d *Device) CalculateRelativeMove(x, y int16) (int16, int16) {
	if !d.haveLogicalPos {
		d.haveLogicalPos = true
		d.logicalX, d.logicalY = x, y
		return 0, 0
	}
	dx, dy := x-d.logicalX, y-d.logicalY
	d.logicalX, d.logicalY = x, y
	return dx, dy
}

// SetLogicalPos mirrors uinputdev.Device.SetLogicalPos.
func (d *Device) SetLogicalPos(x, y int16) {
	d.haveLogicalPos = true
	d.logicalX, d.logicalY = x, y
}

// --- device.Mouse ---

func (d *Device) MoveAbsolute(x, y int16) error {
	d.record(fmtMove("move_absolute", x, y))
	return nil
}

func (d *Device) MoveRelative(dx, dy int16) error {
	d.record(fmtMove("move_relative", dx, dy))
	return nil
}

func (d *Device) SendButton(code keymap.EvdevCode, pressed bool) error {
	d.record(fmtKey("send_button", code, pressed))
	if pressed {
		d.pressedButtons[code] = struct{}{}
	} else {
		delete(d.pressedButtons, code)
	}
	return nil
}

func (d *Device) WheelRelative(clicks int16) error {
	if clicks == 0 {
		return nil
	}
	d.record(fmtWheel("wheel_relative", clicks))
	return nil
}

func (d *Device) HWheelRelative(clicks int16) error {
	if clicks == 0 {
		return nil
	}
	d.record(fmtWheel("hwheel_relative", clicks))
	return nil
}

func (d *Device) ReleaseAllButtons() error {
	d.record("release_all_button")
	d.pressedButtons = make(map[keymap.EvdevCode]struct{})
	return nil
}

// --- device.Keyboard ---

func (d *Device) SendKey(code keymap.EvdevCode, pressed bool) error {
	d.record(fmtKey("send_key", code, pressed))
	if pressed {
		d.pressedKeys[code] = struct{}{}
	} else {
		delete(d.pressedKeys, code)
	}
	return nil
}

func (d *Device) SyncModifiers(mask uint16) error {
	d.record(fmtMask("sync_modifiers", mask))
	return nil
}

func (d *Device) ReleaseAllKeys() error {
	d.record("release_all_key")
	d.pressedKeys = make(map[keymap.EvdevCode]struct{})
	return nil
}

func (d *Device) PressedKeys() map[keymap.EvdevCode]struct{} {
	return d.pressedKeys
}

// --- shared commit ---

// Syn satisfies both device.Mouse and device.Keyboard; the mock treats
// mouse and keyboard syn as the same recorded event since it's a
// single fake device.
func (d *Device) Syn() error {
	d.record("syn")
	return nil
}
