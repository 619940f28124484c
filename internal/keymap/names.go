package keymap

// hidNames is the bijection between a HID usage and a human-readable
// name, used for logging and config (e.g. naming a key in a future
// remap). Grounded on original_source's keymaps/hid.py, whose HID
// class resolves a usage to a name and back via a shared table.
var hidNames = map[HIDUsage]string{
	0x04: "A", 0x05: "B", 0x06: "C", 0x07: "D", 0x08: "E", 0x09: "F",
	0x0A: "G", 0x0B: "H", 0x0C: "I", 0x0D: "J", 0x0E: "K", 0x0F: "L",
	0x10: "M", 0x11: "N", 0x12: "O", 0x13: "P", 0x14: "Q", 0x15: "R",
	0x16: "S", 0x17: "T", 0x18: "U", 0x19: "V", 0x1A: "W", 0x1B: "X",
	0x1C: "Y", 0x1D: "Z",

	0x1E: "1", 0x1F: "2", 0x20: "3", 0x21: "4", 0x22: "5",
	0x23: "6", 0x24: "7", 0x25: "8", 0x26: "9", 0x27: "0",

	0x28: "Enter", 0x29: "Escape", 0x2A: "Backspace", 0x2B: "Tab", 0x2C: "Space",
	0x2D: "Minus", 0x2E: "Equal", 0x2F: "LeftBrace", 0x30: "RightBrace",
	0x31: "Backslash", 0x33: "Semicolon", 0x34: "Apostrophe", 0x35: "Grave",
	0x36: "Comma", 0x37: "Dot", 0x38: "Slash", 0x39: "CapsLock",

	0x3A: "F1", 0x3B: "F2", 0x3C: "F3", 0x3D: "F4", 0x3E: "F5", 0x3F: "F6",
	0x40: "F7", 0x41: "F8", 0x42: "F9", 0x43: "F10", 0x44: "F11", 0x45: "F12",

	0x46: "SysRq", 0x47: "ScrollLock", 0x48: "Pause", 0x49: "Insert",
	0x4A: "Home", 0x4B: "PageUp", 0x4C: "Delete", 0x4D: "End", 0x4E: "PageDown",
	0x4F: "Right", 0x50: "Left", 0x51: "Down", 0x52: "Up", 0x53: "NumLock",

	0x54: "KPSlash", 0x55: "KPAsterisk", 0x56: "KPMinus", 0x57: "KPPlus",
	0x58: "KPEnter", 0x59: "KP1", 0x5A: "KP2", 0x5B: "KP3", 0x5C: "KP4",
	0x5D: "KP5", 0x5E: "KP6", 0x5F: "KP7", 0x60: "KP8", 0x61: "KP9",
	0x62: "KP0", 0x63: "KPDot",

	0x76: "Compose",

	0xE0: "LeftCtrl", 0xE1: "LeftShift", 0xE2: "LeftAlt", 0xE3: "LeftMeta",
	0xE4: "RightCtrl", 0xE5: "RightShift", 0xE6: "RightAlt", 0xE7: "RightMeta",

	0x01: "MouseLeft", 0x02: "MouseRight", 0x03: "MouseMiddle",
	0x04 | 0x80: "MouseX1", 0x05 | 0x80: "MouseX2",
}

var nameToHID = buildNameToHID()

func buildNameToHID() map[string]HIDUsage {
	m := make(map[string]HIDUsage, len(hidNames))
	for usage, name := range hidNames {
		m[name] = usage
	}
	return m
}

// HidToName returns the canonical logging/config name for a HID usage.
func HidToName(usage HIDUsage) (string, bool) {
	name, ok := hidNames[usage]
	return name, ok
}

// NameToHid reverses HidToName.
func NameToHid(name string) (HIDUsage, bool) {
	usage, ok := nameToHID[name]
	return usage, ok
}
