// Package trace implements per-component debug-bitmask toggles: one
// mask of trace categories per component name (e.g. "CPU", "IEC"),
// switched on by name through Enable, and tested with Enabled before
// formatting a line so that disabled trace categories cost nothing but
// a branch.
package trace

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Category bit flags, shared across all components; Enable accepts any
// of these names for any component.
const (
	Cmd = 1 << iota
	Data
	Detail
	Timing
)

var names = map[string]int{
	"CMD":    Cmd,
	"DATA":   Data,
	"DETAIL": Detail,
	"TIMING": Timing,
}

var (
	out  io.Writer = os.Stderr
	mask = map[string]int{}
)

// SetOutput redirects all trace output (stderr by default).
func SetOutput(w io.Writer) {
	out = w
}

// Enable turns on the named categories (comma separated, e.g. "CMD,DATA")
// for the given component.
func Enable(component, opts string) error {
	for _, opt := range strings.Split(opts, ",") {
		opt = strings.ToUpper(strings.TrimSpace(opt))
		flag, ok := names[opt]
		if !ok {
			return fmt.Errorf("trace: unknown category %q", opt)
		}
		mask[component] |= flag
	}
	return nil
}

// Enabled reports whether the named component has the given category on.
func Enabled(component string, category int) bool {
	return mask[component]&category != 0
}

// Logf writes a trace line for component if category is enabled.
func Logf(component string, category int, format string, a ...interface{}) {
	if !Enabled(component, category) {
		return
	}
	fmt.Fprintf(out, component+": "+format+"\n", a...)
}

// DevLogf is Logf prefixed with a hex device/unit number, mirroring the
// per-device trace lines the VIA and flux decoder emit.
func DevLogf(component string, unit int, category int, format string, a ...interface{}) {
	if !Enabled(component, category) {
		return
	}
	fmt.Fprintf(out, component+" "+strconv.Itoa(unit)+": "+format+"\n", a...)
}
