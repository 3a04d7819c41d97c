// memory_bus.go - Real-mode memory bus for the 8086 disassembler and monitor

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

/*
memory_bus.go - Real-mode Memory Bus

This module implements the memory the disassembler and the machine monitor look at. It models the 1MB address space of an 8086 in real mode: every access is made through a segment:offset pair, which the bus folds into a 20-bit linear address.

Core Features:

    1MB of memory allocated as a contiguous block.
    Segment:offset translation with the 8086 rule (segment << 4) + offset, wrapped at 1MB.
    Byte and block access by linear address for the monitor commands.
    Image loading with a bounds check, so a file never spills past the top of memory.
    Full memory reset capability to clear the entire memory state.

Technical Details:

    SystemBus satisfies disasm86.Memory through ReadByteAt, so the decoder reads its 16-byte window straight out of the bus.
    Offsets wrap inside their segment before translation, as IP does on real hardware; linear addresses wrap at 1MB as on an 8086 with no A20 line.

Concurrency:

    A sync.RWMutex protects all memory operations. Readers (listings, dumps) share the lock; writers (fill, transfer, load) take it exclusively.

*/

package main

import (
	"errors"
	"fmt"
	"sync"
)

const (
	REAL_MODE_MEMORY_SIZE = 1 << 20
	ADDRESS_MASK          = REAL_MODE_MEMORY_SIZE - 1
)

// ErrImageTooLarge is returned when an image does not fit between its load
// address and the top of memory.
var ErrImageTooLarge = errors.New("image too large for load address")

// Linear folds a segment:offset pair into a 20-bit physical address.
func Linear(segment, offset uint16) uint32 {
	return (uint32(segment)<<4 + uint32(offset)) & ADDRESS_MASK
}

type SystemBus struct {
	/*
		SystemBus is the 1MB real-mode address space shared by the
		disassembler and the monitor.

		Thread safety is enforced via a read/write mutex.
	*/

	memory []byte
	mutex  sync.RWMutex
}

func NewSystemBus() *SystemBus {
	/*
		NewSystemBus allocates a zeroed 1MB block of memory.
	*/

	return &SystemBus{
		memory: make([]byte, REAL_MODE_MEMORY_SIZE),
	}
}

func (bus *SystemBus) ReadByteAt(segment, offset uint16) byte {
	/*
		ReadByteAt reads one byte at segment:offset. It is the memory
		capability the decoder consumes.
	*/

	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	return bus.memory[Linear(segment, offset)]
}

func (bus *SystemBus) Read(addr uint32) byte {
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	return bus.memory[addr&ADDRESS_MASK]
}

func (bus *SystemBus) Write(addr uint32, value byte) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	bus.memory[addr&ADDRESS_MASK] = value
}

func (bus *SystemBus) ReadBlock(addr uint32, size int) []byte {
	/*
		ReadBlock copies size bytes starting at a linear address. The
		copy wraps at the top of memory.

		Parameters:

		    addr: The linear start address.

		    size: The number of bytes to copy.

		Returns:

		    A new slice the caller owns.
	*/

	result := make([]byte, size)
	bus.mutex.RLock()
	defer bus.mutex.RUnlock()
	for i := range result {
		result[i] = bus.memory[(addr+uint32(i))&ADDRESS_MASK]
	}
	return result
}

func (bus *SystemBus) WriteBlock(addr uint32, data []byte) {
	/*
		WriteBlock stores data starting at a linear address, wrapping at
		the top of memory.
	*/

	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	for i, b := range data {
		bus.memory[(addr+uint32(i))&ADDRESS_MASK] = b
	}
}

func (bus *SystemBus) Load(segment, offset uint16, image []byte) error {
	/*
		Load copies an image into memory at segment:offset. Unlike
		WriteBlock it refuses to wrap: an image that would run past the
		top of memory is rejected with ErrImageTooLarge.
	*/

	start := Linear(segment, offset)
	if uint64(start)+uint64(len(image)) > REAL_MODE_MEMORY_SIZE {
		return fmt.Errorf("%d bytes at %05X: %w", len(image), start, ErrImageTooLarge)
	}

	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	copy(bus.memory[start:], image)
	return nil
}

func (bus *SystemBus) Reset() {
	/*
		Reset clears the entire memory of the bus under the write lock.
	*/

	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	for i := range bus.memory {
		bus.memory[i] = 0
	}
}
