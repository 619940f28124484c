package devicetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vizsla/internal/keymap"
)

// TestKeyNameDistinguishesButtonsFromLetters guards against the
// mouse-button/keyboard-letter HID usage collision: BtnSide/BtnExtra
// share their raw HID usage (0x04/0x05) with KeyA/KeyB, so keyName
// must resolve them through hidNames' tagged usage rather than
// falling back to the keyboard letter name.
func TestKeyNameDistinguishesButtonsFromLetters(t *testing.T) {
	require.Equal(t, "KEY_A", keyName(keymap.KeyA))
	require.Equal(t, "MouseX1", keyName(keymap.BtnSide))
	require.Equal(t, "KEY_B", keyName(keymap.KeyB))
	require.Equal(t, "MouseX2", keyName(keymap.BtnExtra))
	require.Equal(t, "MouseLeft", keyName(keymap.BtnLeft))
}
