package config

import "fmt"

// DeviceClass selects a tuning profile.
type DeviceClass string

const (
	DeviceAuto    DeviceClass = "auto"
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
)

// ParseDeviceClass maps a CLI value to a device class. Empty input means auto.
func ParseDeviceClass(s string) (DeviceClass, error) {
	switch DeviceClass(s) {
	case "", DeviceAuto:
		return DeviceAuto, nil
	case DeviceDesktop, DeviceMobile:
		return DeviceClass(s), nil
	}
	return "", fmt.Errorf("config: unknown device %q (want auto, desktop or mobile)", s)
}

// ResolveDevice turns a requested class into a concrete one. Auto compares the
// measured viewport width with the configured breakpoint, once per session.
func (c PlatformerConfig) ResolveDevice(requested DeviceClass, viewportW int) DeviceClass {
	switch requested {
	case DeviceDesktop, DeviceMobile:
		return requested
	}
	if viewportW > 0 && viewportW < c.Device.Breakpoint {
		return DeviceMobile
	}
	return DeviceDesktop
}
