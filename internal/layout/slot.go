package layout

import "fmt"

// Slot identifies one physical output image within the layout.
type Slot struct {
	Bank int
	ROM  int
	Name string
}

// OutputName returns the file name for one output image.
// The bank index is omitted for single bank layouts.
func OutputName(base string, bank, rom, numBanks int) string {
	if numBanks == 1 {
		return fmt.Sprintf("%s.%d", base, rom)
	}
	return fmt.Sprintf("%s.%d.%d", base, bank, rom)
}

// Slots returns the output slots of the layout in bank major order,
// matching the order in which the copy writes the images.
func (g Geometry) Slots(base string) []Slot {
	slots := make([]Slot, 0, g.NumROMs)
	for bank := 0; bank < g.NumBanks; bank++ {
		for rom := 0; rom < g.ROMsPerBank; rom++ {
			slots = append(slots, Slot{
				Bank: bank,
				ROM:  rom,
				Name: OutputName(base, bank, rom, g.NumBanks),
			})
		}
	}
	return slots
}
