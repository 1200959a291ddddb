// Package driveconfig registers the drive core's own configuration
// directives with configparser: ROM (firmware image path), DISK (image
// to mount at startup) and DEVICE (the IEC device-number strap),
// following the same RegisterModel/RegisterOption pattern the teacher's
// peripheral packages (emu/model1403, emu/model1052, ...) use to teach
// the parser their own directives from an init function.
package driveconfig

import (
	"fmt"

	config "github.com/go6502/drivecore/config/configparser"
)

// Loaded holds the directives collected from the most recently parsed
// configuration file.
var Loaded struct {
	ROMPath      string
	DiskPath     string
	DeviceNumber byte
}

func init() {
	config.RegisterOption("ROM", setROM)
	config.RegisterOption("DISK", setDisk)
	config.RegisterOption("DEVICE", setDevice)
}

func setROM(_ uint16, value string, _ []config.Option) error {
	if value == "" {
		return fmt.Errorf("driveconfig: ROM directive requires a file path")
	}
	Loaded.ROMPath = value
	return nil
}

func setDisk(_ uint16, value string, _ []config.Option) error {
	Loaded.DiskPath = value
	return nil
}

func setDevice(devNum uint16, value string, _ []config.Option) error {
	if devNum == config.NoDev || devNum > 0x1f {
		return fmt.Errorf("driveconfig: DEVICE directive requires an IEC address 0-31, got %q", value)
	}
	Loaded.DeviceNumber = byte(devNum)
	return nil
}
