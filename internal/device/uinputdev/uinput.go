// Package uinputdev implements device.Context, device.Mouse and
// device.Keyboard on top of the Linux /dev/uinput virtual input
// device interface, using golang.org/x/sys/unix for the raw ioctls and
// github.com/jochenvg/go-udev to discover the resulting device nodes
// for diagnostics.
package uinputdev

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"vizsla/internal/keymap"
)

// Kernel uinput ioctl request codes and event-type/code constants,
// from linux/uinput.h and linux/input-event-codes.h. x/sys/unix does
// not export these, so they're reproduced here verbatim.
const (
	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiSetRelBit  = 0x40045566
	uiSetAbsBit  = 0x40045567

	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03

	synReport = 0

	relX      = 0x00
	relY      = 0x01
	relWheel  = 0x08
	relHWheel = 0x06

	absX = 0x00
	absY = 0x01

	uinputMaxNameSize = 80
	absCnt            = 64
)

// uinputUserDev mirrors struct uinput_user_dev from linux/uinput.h,
// laid out field-for-field so binary.Write reproduces the kernel's
// expected byte layout on little-endian targets.
type uinputUserDev struct {
	Name        [uinputMaxNameSize]byte
	BusType     uint16
	Vendor      uint16
	Product     uint16
	Version     uint16
	FFEffectsMax uint32
	AbsMax      [absCnt]int32
	AbsMin      [absCnt]int32
	AbsFuzz     [absCnt]int32
	AbsFlat     [absCnt]int32
}

// inputEvent mirrors struct input_event on a 64-bit kernel: a 16-byte
// timeval followed by type/code/value.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// Device is one /dev/uinput-backed virtual device exposing both the
// mouse and keyboard surfaces, plus the screen-geometry context. A
// single uinput node carries all three since the synergy protocol
// addresses one client, not one device per input class.
type Device struct {
	f    *os.File
	name string

	screenW, screenH uint16

	haveLogicalPos bool
	logicalX       int16
	logicalY       int16

	pressedKeys    map[keymap.EvdevCode]struct{}
	pressedButtons map[keymap.EvdevCode]struct{}
}

// Open creates a new uinput device named name, capable of injecting
// every evdev key/button code this client's keymap tables can produce,
// plus relative and absolute mouse motion and the scroll wheel axes.
func Open(name string, screenW, screenH uint16) (*Device, error) {
	f, err := os.OpenFile("/dev/uinput", os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("uinputdev: open /dev/uinput: %w", err)
	}

	d := &Device{
		f:              f,
		name:           name,
		screenW:        screenW,
		screenH:        screenH,
		pressedKeys:    make(map[keymap.EvdevCode]struct{}),
		pressedButtons: make(map[keymap.EvdevCode]struct{}),
	}

	if err := d.setupBits(); err != nil {
		f.Close()
		return nil, err
	}
	if err := d.createDevice(); err != nil {
		f.Close()
		return nil, err
	}
	return d, nil
}

func (d *Device) setupBits() error {
	if err := ioctlInt(d.f, uiSetEvBit, evKey); err != nil {
		return err
	}
	if err := ioctlInt(d.f, uiSetEvBit, evRel); err != nil {
		return err
	}
	if err := ioctlInt(d.f, uiSetEvBit, evAbs); err != nil {
		return err
	}

	for code := range allKeyCodes() {
		if err := ioctlInt(d.f, uiSetKeyBit, int(code)); err != nil {
			return err
		}
	}

	for _, axis := range []int{relX, relY, relWheel, relHWheel} {
		if err := ioctlInt(d.f, uiSetRelBit, axis); err != nil {
			return err
		}
	}
	for _, axis := range []int{absX, absY} {
		if err := ioctlInt(d.f, uiSetAbsBit, axis); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) createDevice() error {
	var dev uinputUserDev
	copy(dev.Name[:], d.name)
	dev.BusType = 0x03 // BUS_USB
	dev.Vendor = 0x1
	dev.Product = 0x1
	dev.Version = 0x1
	dev.AbsMax[absX] = int32(d.screenW)
	dev.AbsMax[absY] = int32(d.screenH)

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, dev); err != nil {
		return fmt.Errorf("uinputdev: encode uinput_user_dev: %w", err)
	}
	if _, err := d.f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("uinputdev: write uinput_user_dev: %w", err)
	}

	if err := ioctlNoArg(d.f, uiDevCreate); err != nil {
		return fmt.Errorf("uinputdev: UI_DEV_CREATE: %w", err)
	}
	return nil
}

// Close destroys the uinput device and releases the file descriptor.
func (d *Device) Close() error {
	_ = ioctlNoArg(d.f, uiDevDestroy)
	return d.f.Close()
}

func (d *Device) emit(typ, code uint16, value int32) error {
	now := time.Now()
	ev := inputEvent{
		Sec:   now.Unix(),
		Usec:  int64(now.Nanosecond() / 1000),
		Type:  typ,
		Code:  code,
		Value: value,
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, ev); err != nil {
		return err
	}
	_, err := d.f.Write(buf.Bytes())
	return err
}

// Syn commits every buffered event since the last Syn.
func (d *Device) Syn() error {
	return d.emit(evSyn, synReport, 0)
}

func ioctlInt(f *os.File, req uint, val int) error {
	return unix.IoctlSetInt(int(f.Fd()), uint(req), val)
}

func ioctlNoArg(f *os.File, req uint) error {
	return unix.IoctlSetInt(int(f.Fd()), uint(req), 0)
}

// allKeyCodes returns the full set of evdev KEY_*/BTN_* codes the
// keymap package's tables can produce, so setupBits can enable exactly
// those bits rather than the entire kernel keycode space.
func allKeyCodes() map[keymap.EvdevCode]struct{} {
	seen := make(map[keymap.EvdevCode]struct{})
	for usage := keymap.HIDUsage(0); usage < 0x100; usage++ {
		if code, ok := keymap.HidToEcode(usage); ok {
			seen[code] = struct{}{}
		}
		if code, ok := keymap.HidToEcodeButton(usage); ok {
			seen[code] = struct{}{}
		}
	}
	return seen
}
