// Package convert is the "drivecore convert" cobra subcommand: it
// loads a disk image in any of D64/G64/NIB/NBZ and re-saves it in
// another, driven entirely by the two paths' extensions, exercising
// emu/diskimage's format loaders/savers outside of a running session.
package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go6502/drivecore/emu/diskimage"
)

// Command returns the "convert" subcommand for a root cobra.Command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a disk image between D64, G64, NIB and NBZ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
	}
	return cmd
}

func run(inPath, outPath string) error {
	img, err := diskimage.Load(inPath)
	if err != nil {
		return fmt.Errorf("convert: reading %s: %w", inPath, err)
	}
	if err := img.SaveAs(outPath); err != nil {
		return fmt.Errorf("convert: writing %s: %w", outPath, err)
	}
	fmt.Printf("converted %s -> %s\n", inPath, outPath)
	return nil
}
