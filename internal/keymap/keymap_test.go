package keymap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynergyToHIDAsciiLetter(t *testing.T) {
	hid, ok := SynergyToHID(uint32('a'))
	require.True(t, ok)
	require.Equal(t, HIDUsage(0x04), hid)
}

func TestSynergyToHIDDigitZero(t *testing.T) {
	hid, ok := SynergyToHID(uint32('0'))
	require.True(t, ok)
	require.Equal(t, HIDUsage(0x27), hid)
}

func TestSynergyToHIDModifierLowByte(t *testing.T) {
	hid, ok := SynergyToHID(modifierKeyIDMarker | 0xE1)
	require.True(t, ok)
	require.Equal(t, HIDUsage(0xE1), hid)
}

func TestSynergyToHIDMouseButtonEncoding(t *testing.T) {
	hid, ok := SynergyToHID(uint32(2)<<8 | mouseButtonKeyIDTag)
	require.True(t, ok)
	require.Equal(t, HIDUsage(2), hid)
}

func TestSynergyToHIDUnknownReturnsFalse(t *testing.T) {
	_, ok := SynergyToHID(0xDEAD)
	require.False(t, ok)
}

func TestHidToEcodeCoversLettersDigitsAndFunctionKeys(t *testing.T) {
	code, ok := HidToEcode(0x04)
	require.True(t, ok)
	require.Equal(t, KeyA, code)

	code, ok = HidToEcode(0x27)
	require.True(t, ok)
	require.Equal(t, Key0, code)

	code, ok = HidToEcode(0x3A)
	require.True(t, ok)
	require.Equal(t, KeyF1, code)

	_, ok = HidToEcode(0xFA)
	require.False(t, ok)
}

func TestScenario2EndToEndKeyA(t *testing.T) {
	// §8 scenario 2: DKDN carries key_button=97 ('a'), which the
	// handler layer feeds through SynergyToHID to resolve KEY_A.
	hid, ok := SynergyToHID(97)
	require.True(t, ok)
	code, ok := HidToEcode(hid)
	require.True(t, ok)
	require.Equal(t, KeyA, code)
}

func TestHidNameBijection(t *testing.T) {
	for usage, name := range hidNames {
		got, ok := NameToHid(name)
		require.True(t, ok)
		require.Equal(t, usage, got)
	}
}

func TestHidToEcodeButton(t *testing.T) {
	code, ok := HidToEcodeButton(0x01)
	require.True(t, ok)
	require.Equal(t, BtnLeft, code)
}
