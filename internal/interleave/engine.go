// Package interleave implements the byte interleaving copy that distributes
// one linear input image across a set of output ROM images.
package interleave

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/romjak/internal/layout"
)

// padByte fills output bytes that are not covered by input data.
const padByte = 0xff

var (
	// ErrTruncatedRead is returned when the input delivers fewer bytes
	// than its reported size promises.
	ErrTruncatedRead = errors.New("truncated read")
	// ErrTruncatedWrite is returned when an output accepts fewer bytes
	// than a full stride.
	ErrTruncatedWrite = errors.New("truncated write")
)

// Output is one writable output image. The outputs passed to Copy have to
// be ordered bank major, matching layout.Geometry.Slots.
type Output struct {
	Name   string
	Writer io.Writer
}

// Copy distributes the input across the outputs, walking the logical address
// space bank by bank, row by row and ROM by ROM. Each ROM of a bank receives
// one stride sized slice per row. Positions beyond the input size are filled
// with the padding byte, and the input is rewound at every padding window
// boundary so that it tiles across the whole address space.
//
// On success every output has received exactly Geometry.ROMSize bytes.
// Any I/O failure aborts the whole run, partially written outputs are
// left behind.
func Copy(ctx context.Context, geo layout.Geometry, input io.ReadSeeker,
	inputSize int, outputs []Output) error {

	if len(outputs) != geo.NumROMs {
		return fmt.Errorf("expected %d outputs, got %d", geo.NumROMs, len(outputs))
	}

	buf := make([]byte, geo.Stride)

	// Read position within the current padding window. It can lag behind
	// posRepeat when a window boundary falls inside a stride, since the
	// rewind only happens on rows that start exactly on the boundary.
	// Reads are clamped against this position, not posRepeat, so the input
	// simply runs dry and the remaining rows of the window stay padded.
	streamPos := 0

	for bank := 0; bank < geo.NumBanks; bank++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for posBank := 0; posBank < geo.BankSize; posBank += geo.ROMsPerBank * geo.Stride {
			for rom := 0; rom < geo.ROMsPerBank; rom++ {
				out := outputs[bank*geo.ROMsPerBank+rom]

				posAbs := bank*geo.BankSize + posBank + rom*geo.Stride
				posRepeat := posAbs % geo.PadUpToSize

				// a new padding window starts, tile the input again
				if posRepeat == 0 {
					if _, err := input.Seek(0, io.SeekStart); err != nil {
						return fmt.Errorf("rewinding input at offset %#x: %w", posAbs, err)
					}
					streamPos = 0
				}

				for i := range buf {
					buf[i] = padByte
				}

				if posRepeat < inputSize {
					n, err := readStride(input, buf, inputSize-streamPos)
					if err != nil {
						return fmt.Errorf("reading input for %s at offset %#x: %w",
							out.Name, posAbs, err)
					}
					streamPos += n
				}

				if err := writeStride(out.Writer, buf); err != nil {
					return fmt.Errorf("writing %s at offset %#x: %w", out.Name, posAbs, err)
				}
			}
		}
	}

	return nil
}

// readStride overwrites the leading bytes of buf with input data and returns
// the number of bytes consumed. Only the remaining bytes are read when the
// input ends inside the stride, the tail of buf keeps its padding. An input
// that ends before delivering the remaining bytes its size promised is
// reported as truncated.
func readStride(input io.Reader, buf []byte, remaining int) (int, error) {
	want := len(buf)
	if remaining < want {
		want = remaining
	}
	if want <= 0 {
		return 0, nil
	}

	if _, err := io.ReadFull(input, buf[:want]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrTruncatedRead
		}
		return 0, err
	}
	return want, nil
}

func writeStride(writer io.Writer, buf []byte) error {
	n, err := writer.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return ErrTruncatedWrite
	}
	return nil
}
