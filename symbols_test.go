package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbols(t *testing.T) {
	table, err := ParseSymbols([]byte(`
"0000:7C00": boot
"F000:E05B": reset
L00400: bios_data
`))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	name, ok := table.Lookup(MakeFar(0x07C0, 0x0000))
	assert.True(t, ok, "aliases of 0000:7C00 find the same label")
	assert.Equal(t, "boot", name)

	name, _ = table.Lookup(MakeFar(0xFE05, 0x000B))
	assert.Equal(t, "reset", name)

	name, _ = table.Lookup(MakeFar(0x0040, 0x0000))
	assert.Equal(t, "bios_data", name)

	_, ok = table.Lookup(MakeFar(0, 0))
	assert.False(t, ok)
}

func TestParseSymbolsErrors(t *testing.T) {
	_, err := ParseSymbols([]byte(`"7C00": boot`))
	assert.ErrorIs(t, err, ErrBadAddress)

	_, err = ParseSymbols([]byte(`"0000:7C00": ""`))
	assert.ErrorContains(t, err, "empty name")

	_, err = ParseSymbols([]byte("- not\n- a mapping\n"))
	assert.ErrorContains(t, err, "parsing symbols")
}

func TestNilSymbolTable(t *testing.T) {
	var table *SymbolTable
	_, ok := table.Lookup(MakeFar(0, 0x100))
	assert.False(t, ok)
	assert.Zero(t, table.Len())
}

func TestLoadSymbols(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "boot.yaml", []byte(`"0000:7C00": boot`), 0o644))

	table, err := LoadSymbols(fs, "boot.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = LoadSymbols(fs, "missing.yaml")
	assert.Error(t, err)
}
