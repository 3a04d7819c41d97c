// memory_bus_test.go - Real-mode memory bus tests

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

package main

import (
	"errors"
	"testing"

	"github.com/intuitionamiga/ie86dis/disasm86"
)

func TestLinearAddress(t *testing.T) {
	tests := []struct {
		seg, off uint16
		want     uint32
	}{
		{0x0000, 0x7C00, 0x07C00},
		{0x07C0, 0x0000, 0x07C00},
		{0xF000, 0xE05B, 0xFE05B},
		{0x1234, 0x5678, 0x179B8},
		{0xFFFF, 0x0010, 0x00000}, // wraps at 1MB
		{0xFFFF, 0xFFFF, 0x0FFEF},
	}
	for _, tt := range tests {
		if got := Linear(tt.seg, tt.off); got != tt.want {
			t.Errorf("Linear(%04X, %04X) = %05X, want %05X", tt.seg, tt.off, got, tt.want)
		}
	}
}

// TestSystemBusIsDecoderMemory verifies the decoder can read its window
// straight out of the bus.
func TestSystemBusIsDecoderMemory(t *testing.T) {
	bus := NewSystemBus()
	if err := bus.Load(0x1000, 0x0000, []byte{0xB8, 0x34, 0x12}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	var mem disasm86.Memory = bus
	inst := disasm86.DecodeAt(mem, 0x1000, 0x0000)
	if got := inst.String(); got != "MOV AX, 1234" {
		t.Fatalf("DecodeAt = %q, want MOV AX, 1234", got)
	}

	// Same bytes through another segment:offset alias.
	if got := bus.ReadByteAt(0x0FFF, 0x0011); got != 0x34 {
		t.Fatalf("ReadByteAt alias = %02X, want 34", got)
	}
}

func TestSystemBusReadWrite(t *testing.T) {
	bus := NewSystemBus()
	bus.Write(0x12345, 0xAA)
	if got := bus.Read(0x12345); got != 0xAA {
		t.Fatalf("Read = %02X, want AA", got)
	}
	// Addresses above 20 bits fold back.
	if got := bus.Read(0x112345); got != 0xAA {
		t.Fatalf("Read above 1MB = %02X, want AA", got)
	}
}

func TestSystemBusBlocksWrap(t *testing.T) {
	bus := NewSystemBus()
	bus.WriteBlock(0xFFFFE, []byte{1, 2, 3, 4})

	if got := bus.Read(0x00000); got != 3 {
		t.Fatalf("wrapped byte at 0 = %d, want 3", got)
	}
	got := bus.ReadBlock(0xFFFFE, 4)
	for i, want := range []byte{1, 2, 3, 4} {
		if got[i] != want {
			t.Fatalf("ReadBlock[%d] = %d, want %d", i, got[i], want)
		}
	}

	// ReadBlock returns a copy.
	got[0] = 0xFF
	if bus.Read(0xFFFFE) != 1 {
		t.Fatal("ReadBlock result aliases bus memory")
	}
}

func TestSystemBusLoadBounds(t *testing.T) {
	bus := NewSystemBus()

	if err := bus.Load(0xF000, 0xFFF0, make([]byte, 16)); err != nil {
		t.Fatalf("image ending at the top of memory: %v", err)
	}
	err := bus.Load(0xF000, 0xFFF0, make([]byte, 17))
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("Load past top = %v, want ErrImageTooLarge", err)
	}
}

func TestSystemBusReset(t *testing.T) {
	bus := NewSystemBus()
	bus.WriteBlock(0x500, []byte{1, 2, 3})
	bus.Reset()
	for i, b := range bus.ReadBlock(0x500, 3) {
		if b != 0 {
			t.Fatalf("byte %d = %d after Reset", i, b)
		}
	}
}
