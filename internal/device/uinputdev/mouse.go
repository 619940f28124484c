package uinputdev

import "vizsla/internal/keymap"

// MoveAbsolute injects an absolute cursor position. Does not Syn.
func (d *Device) MoveAbsolute(x, y int16) error {
	if err := d.emit(evAbs, absX, int32(x)); err != nil {
		return err
	}
	return d.emit(evAbs, absY, int32(y))
}

// MoveRelative injects a relative cursor delta. Does not Syn.
func (d *Device) MoveRelative(dx, dy int16) error {
	if dx != 0 {
		if err := d.emit(evRel, relX, int32(dx)); err != nil {
			return err
		}
	}
	if dy != 0 {
		if err := d.emit(evRel, relY, int32(dy)); err != nil {
			return err
		}
	}
	return nil
}

// SendButton injects a mouse button press or release. Does not Syn.
func (d *Device) SendButton(code keymap.EvdevCode, pressed bool) error {
	val := int32(0)
	if pressed {
		val = 1
	}
	if err := d.emit(evKey, uint16(code), val); err != nil {
		return err
	}
	if pressed {
		d.pressedButtons[code] = struct{}{}
	} else {
		delete(d.pressedButtons, code)
	}
	return nil
}

// WheelRelative injects clicks worth of vertical wheel motion. Does
// not Syn. The sign of clicks is preserved; magnitude beyond ±1 is a
// caller concern (§8: this core only ever emits ±1 per axis).
func (d *Device) WheelRelative(clicks int16) error {
	if clicks == 0 {
		return nil
	}
	return d.emit(evRel, relWheel, int32(clicks))
}

// HWheelRelative injects clicks worth of horizontal wheel motion. Does
// not Syn.
func (d *Device) HWheelRelative(clicks int16) error {
	if clicks == 0 {
		return nil
	}
	return d.emit(evRel, relHWheel, int32(clicks))
}

// ReleaseAllButtons emits a release for every button this device
// believes is held, then empties that record.
func (d *Device) ReleaseAllButtons() error {
	for code := range d.pressedButtons {
		if err := d.emit(evKey, uint16(code), 0); err != nil {
			return err
		}
	}
	d.pressedButtons = make(map[keymap.EvdevCode]struct{})
	return nil
}
