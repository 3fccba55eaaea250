// Package report renders the computed output layout as human readable text.
package report

import (
	"fmt"
	"io"

	"github.com/retroenv/romjak/internal/layout"
)

// Write renders the layout plan to the writer. The printed values mirror
// the geometry exactly, the summary is shown before the copy starts.
func Write(writer io.Writer, geo layout.Geometry, slots []layout.Slot) error {
	_, err := fmt.Fprintf(writer, "Going to create outputs for %d ROMs:\n"+
		" - Total data to generate %d bytes, %d bytes per bank\n"+
		" - Each image will be %d bytes long\n"+
		" - Input data stride (how many bytes put into an output at a time) is %d bytes\n"+
		" - Input data will be repeated %d times\n",
		geo.NumROMs, geo.TotalSize, geo.BankSize, geo.ROMSize, geo.Stride, geo.Repeats)
	if err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if _, err := fmt.Fprintln(writer, "Your output images will be like this:"); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	for bank := 0; bank < geo.NumBanks; bank++ {
		start, end := geo.BankRange(bank)
		if _, err := fmt.Fprintf(writer, " - bank %d [0x%08x - 0x%08x]:", bank, start, end); err != nil {
			return fmt.Errorf("writing bank info: %w", err)
		}

		for rom := 0; rom < geo.ROMsPerBank; rom++ {
			slot := slots[bank*geo.ROMsPerBank+rom]
			if _, err := fmt.Fprintf(writer, " rom %d - %s", slot.ROM, slot.Name); err != nil {
				return fmt.Errorf("writing bank info: %w", err)
			}
		}

		if _, err := fmt.Fprintln(writer); err != nil {
			return fmt.Errorf("writing bank info: %w", err)
		}
	}

	return nil
}
