package uinputdev

import (
	"fmt"

	"github.com/jochenvg/go-udev"
)

// DescribeInputDevices enumerates /sys input devices via udev and
// returns a short diagnostic line per device node, so startup logging
// can confirm the new uinput node actually registered alongside any
// pre-existing keyboards/mice (helpful when debugging a headless or
// container environment missing /dev/uinput permissions entirely).
func DescribeInputDevices() ([]string, error) {
	u := udev.Udev{}
	e := u.NewEnumerate()
	if err := e.AddMatchSubsystem("input"); err != nil {
		return nil, fmt.Errorf("uinputdev: match input subsystem: %w", err)
	}
	if err := e.AddMatchIsInitialized(); err != nil {
		return nil, fmt.Errorf("uinputdev: match initialized: %w", err)
	}

	devices, err := e.Devices()
	if err != nil {
		return nil, fmt.Errorf("uinputdev: enumerate devices: %w", err)
	}

	descriptions := make([]string, 0, len(devices))
	for _, dev := range devices {
		node := dev.Devnode()
		if node == "" {
			continue
		}
		descriptions = append(descriptions, fmt.Sprintf("%s (sysname=%s)", node, dev.Sysname()))
	}
	return descriptions, nil
}
