// Package ppu implements the scanline/dot timing skeleton of the NES
// Picture Processing Unit (2C02). Pixel generation itself is out of scope
// for this core; only the register file and the timing state machine that
// raises vblank at the right moment are modeled.
package ppu

import "gones-core/internal/cartridge"

// Register indices as seen from the CPU, after the bus folds
// 0x2000-0x3FFF down to 0-7 via address mod 8.
const (
	RegCtrl = iota
	RegMask
	RegStatus
	RegOAMAddr
	RegOAMData
	RegScroll
	RegAddr
	RegData
	numRegisters
)

const (
	statusVBlank = 0x80

	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	visibleScanlines   = 240
	postRenderScanline = 240
	vblankStart        = 241
	vblankEnd          = 260
	preRenderScanline  = 261
)

// PPU owns the nine memory-mapped registers (eight visible at CPU
// addresses 0x2000-0x2007, mirrored through 0x3FFF, plus OAM-DMA at
// 0x4014), the scanline/dot counters that drive vblank timing, and a
// read-only handle to the cartridge for pattern-table reads.
type PPU struct {
	regs   [numRegisters]byte
	oamDMA byte // ninth register; the bus routes CPU writes to 0x4014 here

	scanline int
	dot      int
	frame    uint64

	nmiOutput bool // set when CTRL bit 7 requests NMI-on-vblank
	nmiFlag   bool // polled by the CPU, cleared once observed

	cart *cartridge.Cartridge
}

// New returns a PPU with all registers and counters at their power-on
// state, wired to cart for CHR (pattern-table) reads.
func New(cart *cartridge.Cartridge) *PPU {
	return &PPU{cart: cart}
}

// Reset clears all registers and timing counters. The cartridge handle is
// not part of the reset state; it's fixed for the PPU's lifetime.
func (p *PPU) Reset() {
	*p = PPU{cart: p.cart}
}

// ReadCHR reads a byte from the cartridge's pattern-table window. Actual
// tile/sprite fetching is out of scope for this core's timing skeleton (see
// Tick); this exists so the Data Model's cartridge reference is reachable.
func (p *PPU) ReadCHR(addr uint16) byte {
	return p.cart.ReadCHR(addr)
}

// ReadRegister returns the value of register r (0-7) and applies its
// read-time side effect. Reading the status register (2) returns the
// stored value and then clears bit 7 (vblank) as a side effect — the
// ordering matters: callers observe the pre-clear value.
func (p *PPU) ReadRegister(r int) byte {
	r &= 0x7
	value := p.regs[r]
	if r == RegStatus {
		p.regs[RegStatus] &^= statusVBlank
	}
	return value
}

// WriteRegister stores value into register r (0-7).
func (p *PPU) WriteRegister(r int, value byte) {
	r &= 0x7
	p.regs[r] = value
	if r == RegCtrl {
		p.nmiOutput = value&0x80 != 0
	}
}

// ReadOAMDMA and WriteOAMDMA expose the ninth register named in the data
// model. This core does not wire a DMA transfer off it — see DESIGN.md.
func (p *PPU) ReadOAMDMA() byte       { return p.oamDMA }
func (p *PPU) WriteOAMDMA(value byte) { p.oamDMA = value }

// Scanline returns the current scanline, 0..=261.
func (p *PPU) Scanline() int { return p.scanline }

// Dot returns the current dot within the scanline, 0..=340.
func (p *PPU) Dot() int { return p.dot }

// FrameCount returns the number of frames completed so far.
func (p *PPU) FrameCount() uint64 { return p.frame }

// NMIPending reports and clears whether the PPU has asserted NMI since the
// last check. The CPU polls this between instructions.
func (p *PPU) NMIPending() bool {
	if p.nmiFlag {
		p.nmiFlag = false
		return true
	}
	return false
}

// Tick advances the PPU by exactly one dot. scanline phases:
//
//	0..=239   visible: background/sprite fetch timing (fetch itself is a
//	          no-op placeholder in this core; only dot phases are modeled)
//	240       post-render idle
//	241..=260 vblank: status bit 7 set at dot 1 of scanline 241
//	261       pre-render: status bit 7 cleared at dot 1
func (p *PPU) Tick() {
	switch {
	case p.scanline <= visibleScanlines-1:
		// Visible scanline. Dot phases per spec.md §4.3:
		//   0       idle
		//   1-256   tile fetch
		//   257-320 sprite prep for next scanline
		//   321-336 prefetch next scanline's first two tiles
		//   337-340 filler fetches
		// The fetch itself is a no-op placeholder; only the timing
		// skeleton is required by this core.
	case p.scanline == postRenderScanline:
		// post-render idle
	case p.scanline >= vblankStart && p.scanline <= vblankEnd:
		if p.scanline == vblankStart && p.dot == 1 {
			p.regs[RegStatus] |= statusVBlank
			if p.nmiOutput {
				p.nmiFlag = true
			}
		}
	case p.scanline == preRenderScanline:
		if p.dot == 1 {
			p.regs[RegStatus] &^= statusVBlank
		}
	}

	p.dot++
	if p.dot >= dotsPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline >= scanlinesPerFrame {
			p.scanline = 0
			p.frame++
		}
	}
}
