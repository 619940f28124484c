package devicetest

import (
	"fmt"

	"vizsla/internal/keymap"
)

func fmtMove(op string, a, b int16) string {
	return fmt.Sprintf("%s(%d,%d)", op, a, b)
}

func fmtWheel(op string, clicks int16) string {
	return fmt.Sprintf("%s(%d)", op, clicks)
}

func fmtMask(op string, mask uint16) string {
	return fmt.Sprintf("%s(0x%04x)", op, mask)
}

func fmtKey(op string, code keymap.EvdevCode, pressed bool) string {
	name := keyName(code)
	return fmt.Sprintf("%s(%s, %t)", op, name, pressed)
}

func keyName(code keymap.EvdevCode) string {
	for usage := keymap.HIDUsage(0); usage < 0x100; usage++ {
		if c, ok := keymap.HidToEcode(usage); ok && c == code {
			if name, ok := keymap.HidToName(usage); ok {
				return "KEY_" + name
			}
		}
		if c, ok := keymap.HidToEcodeButton(usage); ok && c == code {
			// hidNames tags the X1/X2 buttons at usage|0x80 to avoid
			// colliding with the keyboard letters sharing their raw
			// usage (0x04/0x05 are both "A"/"B" and a button index);
			// try the tagged usage first, then the raw one for
			// left/right/middle, which aren't tagged.
			if name, ok := keymap.HidToName(usage | 0x80); ok {
				return name
			}
			if name, ok := keymap.HidToName(usage); ok {
				return name
			}
		}
	}
	return fmt.Sprintf("ecode(%d)", code)
}
