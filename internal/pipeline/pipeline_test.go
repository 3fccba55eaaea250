package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/romjak/internal/layout"
	"github.com/retroenv/romjak/internal/options"
)

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.bin")
	assert.NoError(t, os.WriteFile(input, []byte{0, 1, 2, 3, 4, 5, 6, 7}, 0o644))

	opts := options.Program{
		Input:    input,
		NumROMs:  2,
		ROMWidth: 8,
		ROMSize:  4,
		NumBanks: 1,
		Quiet:    true,
	}

	p := New(log.NewTestLogger(t))
	assert.NoError(t, p.Execute(context.Background(), opts, io.Discard))

	rom0, err := os.ReadFile(filepath.Join(dir, "data.0"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 2, 4, 6}, rom0)

	rom1, err := os.ReadFile(filepath.Join(dir, "data.1"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 3, 5, 7}, rom1)
}

func TestExecuteBanksWithBaseName(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.bin")
	assert.NoError(t, os.WriteFile(input, []byte{0, 1, 2, 3, 4, 5, 6, 7}, 0o644))

	opts := options.Program{
		Input:    input,
		BaseName: filepath.Join(dir, "out"),
		NumROMs:  4,
		ROMWidth: 8,
		ROMSize:  2,
		NumBanks: 2,
	}

	var reportBuf bytes.Buffer
	p := New(log.NewTestLogger(t))
	assert.NoError(t, p.Execute(context.Background(), opts, &reportBuf))

	assert.True(t, reportBuf.Len() > 0)

	want := map[string][]byte{
		"out.0.0": {0, 2},
		"out.0.1": {1, 3},
		"out.1.0": {4, 6},
		"out.1.1": {5, 7},
	}
	for name, expected := range want {
		data, err := os.ReadFile(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.Equal(t, expected, data)
	}
}

func TestExecuteInvalidConfigPerformsNoIO(t *testing.T) {
	dir := t.TempDir()

	opts := options.Program{
		Input:    filepath.Join(dir, "missing.bin"),
		NumROMs:  2,
		ROMWidth: 12, // not a multiple of 8
		ROMSize:  4,
		NumBanks: 1,
		Quiet:    true,
	}

	p := New(log.NewTestLogger(t))
	err := p.Execute(context.Background(), opts, io.Discard)

	// rejected by the planner, the missing input file is never touched
	assert.True(t, errors.Is(err, layout.ErrInvalidConfig))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(entries))
}

func TestExecuteMissingInput(t *testing.T) {
	dir := t.TempDir()

	opts := options.Program{
		Input:    filepath.Join(dir, "missing.bin"),
		NumROMs:  2,
		ROMWidth: 8,
		ROMSize:  4,
		NumBanks: 1,
		Quiet:    true,
	}

	p := New(log.NewTestLogger(t))
	err := p.Execute(context.Background(), opts, io.Discard)
	assert.Error(t, err)
}

func TestGenerateBaseName(t *testing.T) {
	assert.Equal(t, "data", GenerateBaseName("data.bin"))
	assert.Equal(t, "data", GenerateBaseName("data"))
	assert.Equal(t, filepath.Join("some", "dir", "data"),
		GenerateBaseName(filepath.Join("some", "dir", "data.rom")))
}
