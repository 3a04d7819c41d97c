// fetch_test.go - Memory adapter tests

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package disasm86

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// segmentMemory is one 64K segment; reads from any other segment return FF.
type segmentMemory struct {
	segment uint16
	data    [0x10000]byte
}

func (m *segmentMemory) ReadByteAt(segment, offset uint16) byte {
	if segment != m.segment {
		return 0xFF
	}
	return m.data[offset]
}

func TestDecodeAt(t *testing.T) {
	mem := &segmentMemory{segment: 0x1000}
	copy(mem.data[0x0100:], []byte{0xB8, 0x34, 0x12})

	inst := DecodeAt(mem, 0x1000, 0x0100)
	assert.Equal(t, "MOV AX, 1234", inst.String())
	assert.Equal(t, uint16(0x0100), inst.Address)
	assert.Equal(t, 3, inst.Length)
}

func TestDecodeAtWrapsOffset(t *testing.T) {
	mem := &segmentMemory{segment: 0x2000}
	mem.data[0xFFFF] = 0xE9
	mem.data[0x0000] = 0xFD
	mem.data[0x0001] = 0xFF

	inst := DecodeAt(mem, 0x2000, 0xFFFF)
	require.Equal(t, "JMPN", inst.Mnemonic)
	assert.Equal(t, "FFFF", inst.Operands[0])
	assert.Equal(t, []byte{0xE9, 0xFD, 0xFF}, inst.Bytes())
}

func TestReadWindowWithMemoryFunc(t *testing.T) {
	var calls []uint16
	mem := MemoryFunc(func(segment, offset uint16) byte {
		calls = append(calls, offset)
		return byte(offset)
	})

	w := ReadWindow(mem, 0, 0xFFF8)
	require.Len(t, calls, WindowSize)
	assert.Equal(t, byte(0xF8), w[0])
	assert.Equal(t, byte(0x00), w[8])
	assert.Equal(t, uint16(0x0007), calls[WindowSize-1])
}
