package keymap

// HIDUsage is a USB HID keyboard/button usage code.
type HIDUsage uint16

// hidToEcode is the dense HID → evdev table described in spec §4.3:
// modifiers, navigation, ASCII letters/digits, F1–F12, numpad, and
// punctuation. Grounded on original_source's keymaps/base.py
// ECODE_TO_HID_KEY table, inverted.
var hidToEcode = map[HIDUsage]EvdevCode{
	0xE0: KeyLeftCtrl,
	0xE1: KeyLeftShift,
	0xE2: KeyLeftAlt,
	0xE3: KeyLeftMeta,
	0xE4: KeyRightCtrl,
	0xE5: KeyRightShift,
	0xE6: KeyRightAlt,
	0xE7: KeyRightMeta,

	0x49: KeyInsert,
	0x4A: KeyHome,
	0x4B: KeyPageUp,
	0x4C: KeyDelete,
	0x4D: KeyEnd,
	0x4E: KeyPageDown,
	0x46: KeySysRq,
	0x47: KeyScrollLock,
	0x48: KeyPause,

	0x2A: KeyBackspace,
	0x2B: KeyTab,
	0x28: KeyEnter,
	0x29: KeyEsc,
	0x2C: KeySpace,
	0x50: KeyLeft,
	0x52: KeyUp,
	0x4F: KeyRight,
	0x51: KeyDown,
	0x76: KeyCompose,

	0x2D: KeyMinus,
	0x2E: KeyEqual,
	0x2F: KeyLeftBrace,
	0x30: KeyRightBrace,
	0x31: KeyBackslash,
	0x33: KeySemicolon,
	0x34: KeyApostrophe,
	0x35: KeyGrave,
	0x36: KeyComma,
	0x37: KeyDot,
	0x38: KeySlash,
	0x39: KeyCapsLock,
	0x53: KeyNumLock,

	0x59: KeyKP1,
	0x5A: KeyKP2,
	0x5B: KeyKP3,
	0x5C: KeyKP4,
	0x5D: KeyKP5,
	0x5E: KeyKP6,
	0x5F: KeyKP7,
	0x60: KeyKP8,
	0x61: KeyKP9,
	0x62: KeyKP0,
	0x63: KeyKPDot,
	0x54: KeyKPSlash,
	0x55: KeyKPAsterisk,
	0x56: KeyKPMinus,
	0x57: KeyKPPlus,
	0x58: KeyKPEnter,
}

// hidToEcodeBtn maps HID mouse-button usages to evdev BTN_* codes.
// Grounded on keymaps/base.py's HID_TO_ECODE_BTN (inverse of
// ECODE_TO_HID_BTN).
var hidToEcodeBtn = map[HIDUsage]EvdevCode{
	0x01: BtnLeft,
	0x02: BtnRight,
	0x03: BtnMiddle,
	0x04: BtnSide,
	0x05: BtnExtra,
}

func init() {
	for usage, code := range letterHID() {
		hidToEcode[usage] = code
	}
	for usage, code := range digitHID() {
		hidToEcode[usage] = code
	}
	for usage, code := range functionHID() {
		hidToEcode[usage] = code
	}
}

// letterHID builds HID 0x04..0x1D -> KEY_A..KEY_Z.
func letterHID() map[HIDUsage]EvdevCode {
	letters := []EvdevCode{
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ,
		KeyK, KeyL, KeyM, KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT,
		KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
	}

	out := make(map[HIDUsage]EvdevCode, len(letters))
	for i, code := range letters {
		out[HIDUsage(0x04+i)] = code
	}
	return out
}

// digitHID builds HID 0x1E..0x27 -> KEY_1..KEY_9, KEY_0.
func digitHID() map[HIDUsage]EvdevCode {
	digits := []EvdevCode{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0}
	out := make(map[HIDUsage]EvdevCode, len(digits))
	for i, code := range digits {
		out[HIDUsage(0x1E+i)] = code
	}
	return out
}

// functionHID builds HID 0x3A..0x45 -> KEY_F1..KEY_F12.
func functionHID() map[HIDUsage]EvdevCode {
	fns := []EvdevCode{
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6,
		KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
	out := make(map[HIDUsage]EvdevCode, len(fns))
	for i, code := range fns {
		out[HIDUsage(0x3A+i)] = code
	}
	return out
}

// HidToEcode translates a USB HID keyboard usage to its Linux evdev
// key code. The zero bool return is false for usages with no mapping.
func HidToEcode(usage HIDUsage) (EvdevCode, bool) {
	code, ok := hidToEcode[usage]
	return code, ok
}

// HidToEcodeButton translates a USB HID mouse-button usage to its
// evdev BTN_* code.
func HidToEcodeButton(usage HIDUsage) (EvdevCode, bool) {
	code, ok := hidToEcodeBtn[usage]
	return code, ok
}
