// Package debugconfig registers the DEBUG pseudo-directive with
// configparser, turning "DEBUG component CATEGORY,CATEGORY=..." lines
// into calls against util/trace for each emulated component.
package debugconfig

import (
	"errors"
	"strings"

	config "github.com/go6502/drivecore/config/configparser"
	"github.com/go6502/drivecore/util/trace"
)

func init() {
	config.RegisterModel("DEBUG", config.TypeOptions, setDebug)
}

var components = map[string]bool{
	"CPU":   true,
	"VIA-A": true,
	"VIA-B": true,
	"FLUX":  true,
	"IEC":   true,
	"IMAGE": true,
}

// setDebug applies one "DEBUG <component> <cat,cat=...>" directive.
func setDebug(_ uint16, device string, options []config.Option) error {
	component := strings.ToUpper(device)
	if !components[component] {
		return errors.New("debugconfig: unknown component: " + device)
	}
	for _, opt := range options {
		if err := trace.Enable(component, opt.Name); err != nil {
			return err
		}
		for _, value := range opt.Value {
			if err := trace.Enable(component, *value); err != nil {
				return err
			}
		}
	}
	return nil
}
