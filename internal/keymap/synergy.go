package keymap

// modifierKeyIDMarker is the high byte that marks a key id as directly
// encoding a modifier/control HID usage in its low byte (§3: "for
// modifier and control keys, the low byte of key_id is the HID
// usage"). The value 0xEE00 is this module's own convention, not a
// constant taken from the wire protocol.
const modifierKeyIDMarker = 0xEE00

// mouseButtonKeyIDTag marks a key id that actually encodes a mouse
// button: key_id = (button << 8) | mouseButtonKeyIDTag (§3).
const mouseButtonKeyIDTag = 0xAA

// asciiToHID covers the printable ASCII range the server uses directly
// as a key id for letters, digits, space and punctuation — the "fixed
// lookup" spec §3 describes for "other keys". Grounded on
// keymaps/base.py's VK_TO_HID_KEY table, which assigns the same HID
// usages to the equivalent printable characters.
var asciiToHID = buildASCIIToHID()

func buildASCIIToHID() map[rune]HIDUsage {
	m := make(map[rune]HIDUsage, 64)
	for i := 0; i < 26; i++ {
		m['a'+rune(i)] = HIDUsage(0x04 + i)
		m['A'+rune(i)] = HIDUsage(0x04 + i)
	}
	for i := 0; i < 9; i++ {
		m['1'+rune(i)] = HIDUsage(0x1E + i)
	}
	m['0'] = 0x27

	m[' '] = 0x2C
	m['\t'] = 0x2B
	m['\n'] = 0x28
	m['\b'] = 0x2A
	m[0x1B] = 0x29 // Escape

	m['-'] = 0x2D
	m['='] = 0x2E
	m['['] = 0x2F
	m[']'] = 0x30
	m['\\'] = 0x31
	m[';'] = 0x33
	m['\''] = 0x34
	m['`'] = 0x35
	m[','] = 0x36
	m['.'] = 0x37
	m['/'] = 0x38
	return m
}

// specialKeyIDToHID covers the non-ASCII key ids the server assigns to
// navigation, lock, and numpad keys — X11 keysym values, which is the
// id space the upstream protocol reuses for these keys on every
// platform. Grounded on keymaps/base.py's ECODE_TO_HID_KEY table,
// restricted to the subset that has no ASCII representation.
var specialKeyIDToHID = map[uint32]HIDUsage{
	0xFF08: 0x2A, // Backspace
	0xFF09: 0x2B, // Tab
	0xFF0D: 0x28, // Return
	0xFF1B: 0x29, // Escape

	0xFF50: 0x4A, // Home
	0xFF51: 0x50, // Left
	0xFF52: 0x52, // Up
	0xFF53: 0x4F, // Right
	0xFF54: 0x51, // Down
	0xFF55: 0x4B, // Page_Up
	0xFF56: 0x4E, // Page_Down
	0xFF57: 0x4D, // End
	0xFF63: 0x49, // Insert
	0xFFFF: 0x4C, // Delete

	0xFF13: 0x48, // Pause
	0xFF14: 0x47, // Scroll_Lock
	0xFF15: 0x46, // Sys_Req
	0xFF7F: 0x53, // Num_Lock
	0xFFE5: 0x39, // Caps_Lock

	0xFFB0: 0x62, // KP_0
	0xFFB1: 0x59, // KP_1
	0xFFB2: 0x5A, // KP_2
	0xFFB3: 0x5B, // KP_3
	0xFFB4: 0x5C, // KP_4
	0xFFB5: 0x5D, // KP_5
	0xFFB6: 0x5E, // KP_6
	0xFFB7: 0x5F, // KP_7
	0xFFB8: 0x60, // KP_8
	0xFFB9: 0x61, // KP_9
	0xFFAE: 0x63, // KP_Decimal
	0xFFAF: 0x54, // KP_Divide
	0xFFAA: 0x55, // KP_Multiply
	0xFFAD: 0x56, // KP_Subtract
	0xFFAB: 0x57, // KP_Add
	0xFF8D: 0x58, // KP_Enter

	0xFFBE: 0x3A, // F1
	0xFFBF: 0x3B, // F2
	0xFFC0: 0x3C, // F3
	0xFFC1: 0x3D, // F4
	0xFFC2: 0x3E, // F5
	0xFFC3: 0x3F, // F6
	0xFFC4: 0x40, // F7
	0xFFC5: 0x41, // F8
	0xFFC6: 0x42, // F9
	0xFFC7: 0x43, // F10
	0xFFC8: 0x44, // F11
	0xFFC9: 0x45, // F12

	0xFF67: 0x76, // Menu
}

// SynergyToHID maps a server key id to a USB HID usage code, following
// the three-way scheme in spec §3: modifier/control keys carry their
// HID usage directly in the low byte, mouse buttons are tagged with
// 0xAA in the low byte, and everything else goes through the
// ASCII/X11-keysym fixed lookup. The X11-keysym table is consulted
// before the mouse-button tag, so keysyms whose low byte is 0xAA
// (KP_Multiply) still resolve as keys.
func SynergyToHID(keyID uint32) (HIDUsage, bool) {
	if keyID&0xFF00 == modifierKeyIDMarker {
		return HIDUsage(keyID & 0xFF), true
	}
	if hid, ok := specialKeyIDToHID[keyID]; ok {
		return hid, true
	}
	if keyID&0xFF == mouseButtonKeyIDTag {
		return HIDUsage(keyID >> 8), true
	}
	if keyID < 0x100 {
		if hid, ok := asciiToHID[rune(keyID)]; ok {
			return hid, true
		}
		return 0, false
	}
	return 0, false
}
