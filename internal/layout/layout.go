// Package layout computes the output geometry for splitting a ROM image.
//
// A layout distributes one linear input image across multiple physical ROM
// chips. Multiple ROMs per bank widen the effective data bus, each ROM
// supplying one stride sized byte lane per row. Multiple banks extend the
// addressable size beyond the capacity of a single chip.
package layout

import (
	"errors"
	"fmt"
)

// Validation limits for a configuration.
const (
	MaxROMs     = 16 // maximum total number of output images
	MaxBanks    = 4  // maximum number of ROM banks
	MaxROMWidth = 32 // maximum data bus width of a single ROM in bits
)

// ErrInvalidConfig is returned when a configuration violates a validation limit.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes one splitting job. All fields are in their final form,
// except PadUpToSize where 0 selects the default of the total output size.
type Config struct {
	NumROMs     int // total number of output images
	ROMWidth    int // data bus width of a single ROM in bits, multiple of 8
	ROMSize     int // capacity of a single output image in bytes
	NumBanks    int // number of ROM banks, NumROMs must be divisible by it
	PadUpToSize int // padding window size in bytes, the input repeats after this many bytes
}

// Geometry is the layout derived from a validated configuration.
type Geometry struct {
	Config

	Stride      int // bytes taken from the input per ROM per row
	ROMsPerBank int
	BankSize    int // bytes of the address space covered by one bank
	TotalSize   int // bytes of the address space covered by all banks

	// Repeats is reported for information only. The copy loop derives
	// repetition from the position within the padding window instead.
	Repeats int
}

// Plan validates the configuration and derives the output geometry.
// It performs no I/O and fails with an error wrapping ErrInvalidConfig
// when any invariant is violated.
func Plan(cfg Config) (Geometry, error) {
	if err := validate(cfg); err != nil {
		return Geometry{}, err
	}

	geo := Geometry{
		Config:      cfg,
		Stride:      cfg.ROMWidth / 8,
		ROMsPerBank: cfg.NumROMs / cfg.NumBanks,
		TotalSize:   cfg.ROMSize * cfg.NumROMs,
	}
	geo.BankSize = cfg.ROMSize * geo.ROMsPerBank

	if geo.PadUpToSize == 0 {
		geo.PadUpToSize = geo.TotalSize
	}
	geo.Repeats = geo.ROMSize / geo.PadUpToSize

	return geo, nil
}

// BankRange returns the inclusive absolute byte address range covered by a bank.
func (g Geometry) BankRange(bank int) (start, end int) {
	start = bank * g.BankSize
	return start, start + g.BankSize - 1
}

func validate(cfg Config) error {
	if cfg.NumROMs < 1 {
		return fmt.Errorf("%w: number of ROMs must be positive", ErrInvalidConfig)
	}
	if cfg.ROMSize < 1 {
		return fmt.Errorf("%w: ROM size must be positive", ErrInvalidConfig)
	}
	if cfg.ROMWidth < 1 {
		return fmt.Errorf("%w: ROM width must be positive", ErrInvalidConfig)
	}
	if cfg.NumBanks < 1 {
		return fmt.Errorf("%w: number of banks must be positive", ErrInvalidConfig)
	}
	if cfg.PadUpToSize < 0 {
		return fmt.Errorf("%w: padding size must be positive", ErrInvalidConfig)
	}

	if cfg.NumBanks > MaxBanks {
		return fmt.Errorf("%w: number of banks %d exceeds the maximum of %d",
			ErrInvalidConfig, cfg.NumBanks, MaxBanks)
	}
	if cfg.ROMWidth%8 != 0 {
		return fmt.Errorf("%w: ROM width %d is not a multiple of 8",
			ErrInvalidConfig, cfg.ROMWidth)
	}
	if cfg.ROMWidth > MaxROMWidth {
		return fmt.Errorf("%w: ROM width %d exceeds the maximum of %d",
			ErrInvalidConfig, cfg.ROMWidth, MaxROMWidth)
	}
	if cfg.NumROMs%cfg.NumBanks != 0 {
		return fmt.Errorf("%w: number of ROMs %d is not a multiple of the number of banks %d",
			ErrInvalidConfig, cfg.NumROMs, cfg.NumBanks)
	}
	if cfg.NumROMs > MaxROMs {
		return fmt.Errorf("%w: number of ROMs %d exceeds the maximum of %d",
			ErrInvalidConfig, cfg.NumROMs, MaxROMs)
	}
	return nil
}
