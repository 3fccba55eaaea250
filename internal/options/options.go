// Package options contains the program options.
package options

// Program options of the ROM splitter.
type Program struct {
	Input    string // input file
	BaseName string // base name for the output images, derived from the input if empty

	NumROMs     int // total number of output images
	ROMWidth    int // data bus width of a single ROM in bits
	ROMSize     int // size of a single output image in bytes
	NumBanks    int // number of ROM banks
	PadUpToSize int // padding window size in bytes, 0 selects the total output size

	Debug bool
	Quiet bool
}
