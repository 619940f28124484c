package uinputdev

import "vizsla/internal/keymap"

// modifierCodes maps each modifier bit of CINN's mod_mask (§6.1) to
// the evdev code SyncModifiers presses or releases for it.
// Only the left-hand variant of each modifier is driven; the server
// does not distinguish which side it means.
var modifierCodes = map[uint16]keymap.EvdevCode{
	0x0001: keymap.KeyLeftShift,
	0x0002: keymap.KeyCapsLock,
	0x0004: keymap.KeyLeftCtrl,
	0x0008: keymap.KeyLeftAlt,
	0x0010: keymap.KeyNumLock,
	0x0020: keymap.KeyLeftMeta,
	0x8000: keymap.KeyScrollLock,
}

// SendKey injects a key press or release. Does not Syn.
func (d *Device) SendKey(code keymap.EvdevCode, pressed bool) error {
	val := int32(0)
	if pressed {
		val = 1
	}
	if err := d.emit(evKey, uint16(code), val); err != nil {
		return err
	}
	if pressed {
		d.pressedKeys[code] = struct{}{}
	} else {
		delete(d.pressedKeys, code)
	}
	return nil
}

// SyncModifiers brings the local modifier state into agreement with
// mask: every modifier bit set in mask that isn't currently pressed is
// pressed, and every currently-pressed modifier not set in mask is
// released.
func (d *Device) SyncModifiers(mask uint16) error {
	for bit, code := range modifierCodes {
		want := mask&bit != 0
		_, have := d.pressedKeys[code]
		if want == have {
			continue
		}
		if err := d.SendKey(code, want); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseAllKeys emits a release for every key this device believes is
// held, then empties that record.
func (d *Device) ReleaseAllKeys() error {
	for code := range d.pressedKeys {
		if err := d.emit(evKey, uint16(code), 0); err != nil {
			return err
		}
	}
	d.pressedKeys = make(map[keymap.EvdevCode]struct{})
	return nil
}

// PressedKeys reports the evdev codes currently believed held.
func (d *Device) PressedKeys() map[keymap.EvdevCode]struct{} {
	return d.pressedKeys
}
