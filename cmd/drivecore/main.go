// Command drivecore is the drive core's command-line entry point: a
// cobra command tree dispatches to "run" (boot one session and drive it
// from a REPL/TCP harness, flags parsed with getopt to match the
// teacher's flat-flag emulator surface), "convert" (offline image
// format conversion) and "verify" (the round-trip-law checks of
// spec.md §8 run as a scripted batch rather than `go test`).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go6502/drivecore/cmd/drivecore/convert"
	"github.com/go6502/drivecore/cmd/drivecore/verify"
)

func main() {
	root := &cobra.Command{
		Use:   "drivecore",
		Short: "1541-style floppy-drive emulator core",
	}
	root.AddCommand(runCommand(), convert.Command(), verify.Command())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
