// Package pipeline orchestrates the ROM splitting workflow.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/romjak/internal/interleave"
	"github.com/retroenv/romjak/internal/layout"
	"github.com/retroenv/romjak/internal/options"
	"github.com/retroenv/romjak/internal/report"
)

// Pipeline orchestrates the complete splitting workflow.
type Pipeline struct {
	logger *log.Logger
}

// New creates a new splitting pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
	}
}

// Execute runs the complete splitting workflow: plan the layout, print the
// plan, open the input and all output images, then run the interleaving copy.
// The configuration is validated before any file is touched. Outputs that
// were already written when an error occurs are left on disk.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, reportWriter io.Writer) error {
	geo, err := layout.Plan(layout.Config{
		NumROMs:     opts.NumROMs,
		ROMWidth:    opts.ROMWidth,
		ROMSize:     opts.ROMSize,
		NumBanks:    opts.NumBanks,
		PadUpToSize: opts.PadUpToSize,
	})
	if err != nil {
		return fmt.Errorf("planning layout: %w", err)
	}

	base := opts.BaseName
	if base == "" {
		base = GenerateBaseName(opts.Input)
	}
	slots := geo.Slots(base)

	if !opts.Quiet {
		if err := report.Write(reportWriter, geo, slots); err != nil {
			return fmt.Errorf("printing layout: %w", err)
		}
	}

	input, inputSize, err := openInput(opts.Input)
	if err != nil {
		return err
	}
	defer func() { _ = input.Close() }()

	p.logger.Debug("Copying input",
		log.String("file", opts.Input),
		log.Int("size", inputSize))

	outputs, files, err := createOutputs(slots)
	if err != nil {
		return err
	}

	if err := interleave.Copy(ctx, geo, input, inputSize, outputs); err != nil {
		closeFiles(files)
		return fmt.Errorf("copying: %w", err)
	}

	for i, file := range files {
		if err := file.Close(); err != nil {
			closeFiles(files[i+1:])
			return fmt.Errorf("closing output file %s: %w", slots[i].Name, err)
		}
	}

	p.logger.Info("Done", log.Int("images", len(slots)))
	return nil
}

// GenerateBaseName derives the default output base name from the input file
// name by stripping its extension.
func GenerateBaseName(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)]
}

func openInput(name string) (*os.File, int, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0, fmt.Errorf("opening input file %s: %w", name, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, fmt.Errorf("reading size of input file %s: %w", name, err)
	}

	return file, int(info.Size()), nil
}

func createOutputs(slots []layout.Slot) ([]interleave.Output, []*os.File, error) {
	outputs := make([]interleave.Output, 0, len(slots))
	files := make([]*os.File, 0, len(slots))

	for _, slot := range slots {
		file, err := os.Create(slot.Name)
		if err != nil {
			closeFiles(files)
			return nil, nil, fmt.Errorf("creating output file %s: %w", slot.Name, err)
		}
		files = append(files, file)
		outputs = append(outputs, interleave.Output{Name: slot.Name, Writer: file})
	}

	return outputs, files, nil
}

func closeFiles(files []*os.File) {
	for _, file := range files {
		_ = file.Close()
	}
}
