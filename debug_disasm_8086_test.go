package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestBus(t *testing.T, segment, offset uint16, image []byte) *SystemBus {
	t.Helper()
	bus := NewSystemBus()
	require.NoError(t, bus.Load(segment, offset, image))
	return bus
}

func TestDisassemble8086(t *testing.T) {
	bus := loadTestBus(t, 0, 0x100, testProgram)
	lines := disassemble8086(bus, MakeFar(0, 0x100), 4, nil)
	require.Len(t, lines, 4)

	assert.Equal(t, DisassembledLine{
		Address:  MakeFar(0, 0x100),
		HexBytes: "B8 34 12",
		Mnemonic: "MOV AX, 1234",
		Size:     3,
	}, lines[0])

	jz := lines[1]
	assert.True(t, jz.IsBranch)
	assert.True(t, jz.HasTarget)
	assert.Equal(t, MakeFar(0, 0x107), jz.BranchTarget)

	intr := lines[3]
	assert.True(t, intr.IsBranch)
	assert.False(t, intr.HasTarget)
}

func TestDisassembleFarTarget(t *testing.T) {
	bus := loadTestBus(t, 0x1000, 0, []byte{0xEA, 0x5B, 0xE0, 0x00, 0xF0})
	symbols := NewSymbolTable()
	symbols.Add(MakeFar(0xF000, 0xE05B), "reset")

	lines := disassemble8086(bus, MakeFar(0x1000, 0), 1, symbols)
	require.Len(t, lines, 1)
	assert.Equal(t, "JMPF F000:E05B", lines[0].Mnemonic)
	assert.Equal(t, MakeFar(0xF000, 0xE05B), lines[0].BranchTarget)
	assert.Equal(t, "reset", lines[0].TargetLabel)
}

func TestDisassembleNearTargetStaysInSegment(t *testing.T) {
	// CALL 0203 at 07C0:0100
	bus := loadTestBus(t, 0x07C0, 0x100, []byte{0xE8, 0x00, 0x01})
	lines := disassemble8086(bus, MakeFar(0x07C0, 0x100), 1, nil)
	assert.Equal(t, MakeFar(0x07C0, 0x0203), lines[0].BranchTarget)
}

func TestDisassembleImage(t *testing.T) {
	bus := loadTestBus(t, 0, 0x100, testProgram)

	lines := disassembleImage(bus, MakeFar(0, 0x100), len(testProgram), nil)
	require.Len(t, lines, 4)
	assert.Equal(t, MakeFar(0, 0x107), lines[3].Address)

	// A truncated image still decodes its last instruction in full.
	lines = disassembleImage(bus, MakeFar(0, 0x100), 2, nil)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Size)
}

func TestDisassembleImageLargerThanSegment(t *testing.T) {
	image := bytes.Repeat([]byte{0x90}, 0x20000)
	bus := loadTestBus(t, 0x1000, 0, image)

	lines := disassembleImage(bus, MakeFar(0x1000, 0), len(image), nil)
	require.Len(t, lines, len(image))
	assert.Equal(t, MakeFar(0x1000, 0xFFFF), lines[0xFFFF].Address)
	assert.Equal(t, uint32(0x20000), lines[0x10000].Address.Linear())
	assert.Equal(t, uint32(0x2FFFF), lines[len(lines)-1].Address.Linear())

	seen := make(map[uint32]bool, len(lines))
	for _, line := range lines {
		lin := line.Address.Linear()
		require.False(t, seen[lin], "%s listed twice", line.Address)
		seen[lin] = true
	}
}

func TestDisassembleIsTotal(t *testing.T) {
	// Undefined opcodes become DB lines and decoding moves on.
	bus := loadTestBus(t, 0, 0, []byte{0x60, 0x61, 0x90})
	lines := disassemble8086(bus, MakeFar(0, 0), 3, nil)
	assert.Equal(t, "DB 60", lines[0].Mnemonic)
	assert.Equal(t, "DB 61", lines[1].Mnemonic)
	assert.Equal(t, "NOP", lines[2].Mnemonic)
}

func TestFormatListingLine(t *testing.T) {
	line := DisassembledLine{
		Address:     MakeFar(0, 0x103),
		HexBytes:    "74 02",
		Mnemonic:    "JZ 0107",
		Label:       "check",
		TargetLabel: "exit",
	}
	assert.Equal(t, "check:\n0000:0103  74 02"+strings.Repeat(" ", 14)+"JZ 0107  ; exit", formatListingLine(line, true))
	assert.Equal(t, "check:\n0000:0103  JZ 0107  ; exit", formatListingLine(line, false))

	// Long prefixed instructions push the mnemonic right rather than truncate.
	long := DisassembledLine{
		Address:  MakeFar(0, 0),
		HexBytes: "F3 26 A5 90 90 90 90",
		Mnemonic: "REP ES: MOVSW",
	}
	assert.Equal(t, "0000:0000  F3 26 A5 90 90 90 90  REP ES: MOVSW", formatListingLine(long, true))
}
