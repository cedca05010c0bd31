// Package bus implements the NES address-space router: it multiplexes CPU
// reads and writes across RAM, the PPU's register window, and
// mapper-translated cartridge ROM.
package bus

import (
	"fmt"

	"gones-core/internal/cartridge"
	"gones-core/internal/ppu"
)

const ramSize = 0x0800 // 2KiB

// Bus owns the 2KiB system RAM, the PPU, and a read-only reference to the
// cartridge. It is the sole owner of the PPU in the emulator's ownership
// tree: CPU owns Bus, Bus owns PPU and the cartridge handle.
type Bus struct {
	ram  [ramSize]byte
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
}

// New creates a bus wired to cart, with its own PPU instance sharing the
// same cartridge handle for CHR reads.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		ppu:  ppu.New(cart),
		cart: cart,
	}
}

// PPU returns the bus's PPU, so the caller can hand it to the CPU as the
// NMI source it polls.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }

// Read8 routes a single-byte read per the address map in spec.md §6.
// Unmapped regions are a fatal implementation bug, never game behavior.
func (b *Bus) Read8(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07ff]

	case addr < 0x4000:
		return b.ppu.ReadRegister(int(addr & 0x0007))

	case addr < 0x4018:
		// APU / controllers: out of scope, reads return 0.
		return 0

	case addr < 0x4020:
		panic(fmt.Sprintf("bus: read from disabled test-mode region $%04X", addr))

	case addr < 0x6000:
		// Cartridge expansion area, unused for mapper 0.
		return 0

	case addr < 0x8000:
		// Cartridge SRAM, unused for mapper 0.
		return 0

	default:
		return b.cart.ReadPRG(addr)
	}
}

// Read16 reads a little-endian 16-bit value as two consecutive Read8 calls.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return hi<<8 | lo
}

// Write8 routes a single-byte write per the address map in spec.md §6.
// Writes into cartridge ROM space are silently ignored, matching real
// mapper-0 hardware; writes into the disabled test-mode region are fatal.
func (b *Bus) Write8(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07ff] = value

	case addr < 0x4000:
		b.ppu.WriteRegister(int(addr&0x0007), value)

	case addr == 0x4014:
		b.ppu.WriteOAMDMA(value)

	case addr < 0x4018:
		// APU / controllers: out of scope, writes ignored.

	case addr < 0x4020:
		panic(fmt.Sprintf("bus: write to disabled test-mode region $%04X", addr))

	case addr < 0x6000:
		// Cartridge expansion area, unused for mapper 0.

	case addr < 0x8000:
		// Cartridge SRAM, unused for mapper 0.

	default:
		b.cart.WritePRG(addr, value)
	}
}

// TickPPU advances the PPU by one dot.
func (b *Bus) TickPPU() {
	b.ppu.Tick()
}

// FrameCount reports how many frames the PPU has completed.
func (b *Bus) FrameCount() uint64 {
	return b.ppu.FrameCount()
}
