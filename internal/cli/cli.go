// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/romjak/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	if len(args) > 1 {
		opts.BaseName = args[1]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: romjak [options] <input file> [output base name]\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after input file, please pass all options before the input file", arg),
			}
		}
	}
	if len(args) > 2 {
		return &UsageError{
			msg: fmt.Sprintf("Unexpected extra argument %s, only an input file and an output base name are accepted", args[2]),
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.NumROMs, "numroms", 0, "total number of ROM images to create")
	flags.IntVar(&opts.ROMWidth, "romwidth", 8, "data bus width of a single ROM in bits, multiple of 8")
	flags.IntVar(&opts.ROMSize, "romsize", 0, "size of a single ROM image in bytes")
	flags.IntVar(&opts.NumBanks, "rombanks", 1, "how many banks of ROMs")
	flags.IntVar(&opts.PadUpToSize, "paduptosize", 0, "how much to pad the input data up to, the input repeats "+
		"after this many bytes and is truncated beyond it, defaults to the total output size")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
