// Package keymap translates between the three key-code spaces this
// client has to bridge: the server's synergy key id, the USB HID
// usage it denotes, and the Linux evdev code the uinput backend
// injects (§3, §4.3).
package keymap

// EvdevCode is a Linux input-event-codes.h KEY_*/BTN_* value, as
// injected through /dev/uinput.
type EvdevCode uint16

// Evdev key and button codes this client emits, taken verbatim from
// linux/input-event-codes.h (grounded on original_source's
// keymaps/base.py, which references the same constants via python-evdev).
const (
	KeyEsc        EvdevCode = 1
	Key1          EvdevCode = 2
	Key2          EvdevCode = 3
	Key3          EvdevCode = 4
	Key4          EvdevCode = 5
	Key5          EvdevCode = 6
	Key6          EvdevCode = 7
	Key7          EvdevCode = 8
	Key8          EvdevCode = 9
	Key9          EvdevCode = 10
	Key0          EvdevCode = 11
	KeyMinus      EvdevCode = 12
	KeyEqual      EvdevCode = 13
	KeyBackspace  EvdevCode = 14
	KeyTab        EvdevCode = 15
	KeyQ          EvdevCode = 16
	KeyW          EvdevCode = 17
	KeyE          EvdevCode = 18
	KeyR          EvdevCode = 19
	KeyT          EvdevCode = 20
	KeyY          EvdevCode = 21
	KeyU          EvdevCode = 22
	KeyI          EvdevCode = 23
	KeyO          EvdevCode = 24
	KeyP          EvdevCode = 25
	KeyLeftBrace  EvdevCode = 26
	KeyRightBrace EvdevCode = 27
	KeyEnter      EvdevCode = 28
	KeyLeftCtrl   EvdevCode = 29
	KeyA          EvdevCode = 30
	KeyS          EvdevCode = 31
	KeyD          EvdevCode = 32
	KeyF          EvdevCode = 33
	KeyG          EvdevCode = 34
	KeyH          EvdevCode = 35
	KeyJ          EvdevCode = 36
	KeyK          EvdevCode = 37
	KeyL          EvdevCode = 38
	KeySemicolon  EvdevCode = 39
	KeyApostrophe EvdevCode = 40
	KeyGrave      EvdevCode = 41
	KeyLeftShift  EvdevCode = 42
	KeyBackslash  EvdevCode = 43
	KeyZ          EvdevCode = 44
	KeyX          EvdevCode = 45
	KeyC          EvdevCode = 46
	KeyV          EvdevCode = 47
	KeyB          EvdevCode = 48
	KeyN          EvdevCode = 49
	KeyM          EvdevCode = 50
	KeyComma      EvdevCode = 51
	KeyDot        EvdevCode = 52
	KeySlash      EvdevCode = 53
	KeyRightShift EvdevCode = 54
	KeyKPAsterisk EvdevCode = 55
	KeyLeftAlt    EvdevCode = 56
	KeySpace      EvdevCode = 57
	KeyCapsLock   EvdevCode = 58
	KeyF1         EvdevCode = 59
	KeyF2         EvdevCode = 60
	KeyF3         EvdevCode = 61
	KeyF4         EvdevCode = 62
	KeyF5         EvdevCode = 63
	KeyF6         EvdevCode = 64
	KeyF7         EvdevCode = 65
	KeyF8         EvdevCode = 66
	KeyF9         EvdevCode = 67
	KeyF10        EvdevCode = 68
	KeyNumLock    EvdevCode = 69
	KeyScrollLock EvdevCode = 70
	KeyKP7        EvdevCode = 71
	KeyKP8        EvdevCode = 72
	KeyKP9        EvdevCode = 73
	KeyKPMinus    EvdevCode = 74
	KeyKP4        EvdevCode = 75
	KeyKP5        EvdevCode = 76
	KeyKP6        EvdevCode = 77
	KeyKPPlus     EvdevCode = 78
	KeyKP1        EvdevCode = 79
	KeyKP2        EvdevCode = 80
	KeyKP3        EvdevCode = 81
	KeyKP0        EvdevCode = 82
	KeyKPDot      EvdevCode = 83
	KeyF11        EvdevCode = 87
	KeyF12        EvdevCode = 88
	KeyKPEnter    EvdevCode = 96
	KeyRightCtrl  EvdevCode = 97
	KeyKPSlash    EvdevCode = 98
	KeySysRq      EvdevCode = 99
	KeyRightAlt   EvdevCode = 100
	KeyHome       EvdevCode = 102
	KeyUp         EvdevCode = 103
	KeyPageUp     EvdevCode = 104
	KeyLeft       EvdevCode = 105
	KeyRight      EvdevCode = 106
	KeyEnd        EvdevCode = 107
	KeyDown       EvdevCode = 108
	KeyPageDown   EvdevCode = 109
	KeyInsert     EvdevCode = 110
	KeyDelete     EvdevCode = 111
	KeyPause      EvdevCode = 119
	KeyLeftMeta   EvdevCode = 125
	KeyRightMeta  EvdevCode = 126
	KeyCompose    EvdevCode = 127

	BtnLeft   EvdevCode = 0x110
	BtnRight  EvdevCode = 0x111
	BtnMiddle EvdevCode = 0x112
	BtnSide   EvdevCode = 0x113
	BtnExtra  EvdevCode = 0x114
)
