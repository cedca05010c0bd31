// Package cpu implements the MOS 6502-derived CPU used by the NES: the 56
// documented instructions across 13 addressing modes, with exact cycle
// costs and flag semantics, dispatched through a 256-entry opcode table.
package cpu

import "fmt"

// AddressingMode names how an instruction's operand is resolved from the
// program counter.
type AddressingMode uint8

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	stackBase = 0x0100

	flagC byte = 1 << 0
	flagZ byte = 1 << 1
	flagI byte = 1 << 2
	flagD byte = 1 << 3
	flagB byte = 1 << 4
	flagU byte = 1 << 5 // unused, always irrelevant per spec.md §3
	flagV byte = 1 << 6
	flagN byte = 1 << 7

	resetVector = 0xfffc
	nmiVector   = 0xfffa
	irqVector   = 0xfffe
)

// Bus is the memory interface the CPU drives all reads and writes through.
// TickPPU and FrameCount let the CPU drive its owned bus's PPU through a
// full frame in RunFrame without the emulator needing its own handle to
// the bus.
type Bus interface {
	Read8(addr uint16) byte
	Read16(addr uint16) uint16
	Write8(addr uint16, value byte)
	TickPPU()
	FrameCount() uint64
}

// NMISource is polled by the CPU between instructions to detect a
// PPU-raised vblank interrupt. The PPU never calls into the CPU directly.
type NMISource interface {
	NMIPending() bool
}

// instruction is a decode-time value: the opcode's mnemonic, byte length,
// base cycle count, and addressing mode. opTable maps each documented
// opcode byte to one of these; a byte with no entry is unmapped.
type instruction struct {
	mnemonic string
	bytes    uint8
	cycles   uint8
	mode     AddressingMode
}

// CPU holds the architectural registers and a cycles-remaining counter that
// amortizes each instruction's cost across subsequent Step calls.
type CPU struct {
	A, X, Y byte
	SP      byte
	PC      uint16

	C, Z, I, D, B, V, N bool

	bus       Bus
	nmiSource NMISource

	cyclesRemaining int
}

// New creates a CPU driving reads and writes through bus. Call Reset before
// the first Step.
func New(bus Bus, nmiSource NMISource) *CPU {
	return &CPU{bus: bus, nmiSource: nmiSource}
}

// Reset loads the program counter from the reset vector at
// 0xFFFC/0xFFFD, sets the stack pointer to 0xFF, and clears every
// architectural register.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xff
	c.C, c.Z, c.I, c.D, c.B, c.V, c.N = false, false, false, false, false, false, false
	c.cyclesRemaining = 0
	c.PC = c.bus.Read16(resetVector)
}

// Step executes one tick of the CPU's cycle-amortized fetch/decode/execute
// cycle. If an instruction is still "in flight" (cyclesRemaining > 0) it
// just decrements the counter and returns false. Otherwise it fetches,
// decodes, and executes the next instruction atomically, seeds
// cyclesRemaining with cost-1 (this call counts as the first cycle), and
// returns true.
//
// Interrupts are checked only at an instruction boundary, never mid-flight,
// matching the "no sub-cycle accuracy" non-goal in spec.md §1.
func (c *CPU) Step() bool {
	if c.cyclesRemaining > 0 {
		c.cyclesRemaining--
		return false
	}

	if c.nmiSource != nil && c.nmiSource.NMIPending() {
		c.handleNMI()
		return true
	}

	opcode := c.bus.Read8(c.PC)
	inst, ok := opTable[opcode]
	if !ok {
		panic(fmt.Sprintf(
			"cpu: unmapped opcode $%02X at $%04X [A=$%02X X=$%02X Y=$%02X SP=$%02X P=$%02X]",
			opcode, c.PC, c.A, c.X, c.Y, c.SP, c.Status(),
		))
	}

	startPC := c.PC
	addr, pageCrossed := c.resolveOperand(inst.mode, startPC)
	extra := c.execute(opcode, startPC, addr, pageCrossed)

	// The addressing-mode resolver only computes the effective address;
	// advancing PC past the instruction's bytes happens here so that
	// branch/jump handlers which overwrite PC are not clobbered.
	if !pcModifyingMnemonic[inst.mnemonic] {
		c.PC = startPC + uint16(inst.bytes)
	}

	total := int(inst.cycles) + extra
	c.cyclesRemaining = total - 1
	return true
}

// dotsPerFrame is 262 scanlines of 341 PPU dots each.
const dotsPerFrame = 262 * 341

// RunFrame advances one full frame: dotsPerFrame PPU dot ticks, stepping
// the CPU once every three dots via a modulo-3 counter that starts from
// zero at the beginning of each frame, per the NTSC CPU:PPU 1:3 clock ratio. Grounded on the
// original reference emulator's per-dot run loop, amortizing
// dotsPerFrame/3 (rounded down) CPU steps into dotsPerFrame PPU ticks.
func (c *CPU) RunFrame() {
	phase := 0
	for dot := 0; dot < dotsPerFrame; dot++ {
		c.bus.TickPPU()
		phase++
		if phase == 3 {
			phase = 0
			c.Step()
		}
	}
}

// FrameCount reports how many frames the owned bus's PPU has completed.
func (c *CPU) FrameCount() uint64 { return c.bus.FrameCount() }

// pcModifyingMnemonic lists instructions whose handler sets PC itself
// (jumps, calls, returns, branches); all others advance PC by the
// instruction's byte length after execute returns.
var pcModifyingMnemonic = map[string]bool{
	"JMP": true, "JSR": true, "RTS": true, "RTI": true, "BRK": true,
	"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
	"BMI": true, "BPL": true, "BVC": true, "BVS": true,
}

// resolveOperand derives the effective address (or immediate operand
// address) for mode, starting from the byte immediately after the opcode
// at instrPC. It never advances the CPU's PC; that is Step's job once the
// instruction's byte length is known from the opcode table.
func (c *CPU) resolveOperand(mode AddressingMode, instrPC uint16) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implicit, Accumulator:
		return 0, false

	case Immediate:
		return instrPC + 1, false

	case ZeroPage:
		return uint16(c.bus.Read8(instrPC + 1)), false

	case ZeroPageX:
		base := c.bus.Read8(instrPC + 1)
		return uint16(base + c.X), false

	case ZeroPageY:
		base := c.bus.Read8(instrPC + 1)
		return uint16(base + c.Y), false

	case Relative:
		offset := int8(c.bus.Read8(instrPC + 1))
		base := instrPC + 2
		target := uint16(int32(base) + int32(offset))
		return target, (base & 0xff00) != (target & 0xff00)

	case Absolute:
		return c.bus.Read16(instrPC + 1), false

	case AbsoluteX:
		base := c.bus.Read16(instrPC + 1)
		addr := base + uint16(c.X)
		return addr, (base & 0xff00) != (addr & 0xff00)

	case AbsoluteY:
		base := c.bus.Read16(instrPC + 1)
		addr := base + uint16(c.Y)
		return addr, (base & 0xff00) != (addr & 0xff00)

	case Indirect:
		ptr := c.bus.Read16(instrPC + 1)
		// Corrected semantics (no page-wrap bug); see spec.md §9 Open
		// Questions — this core does not reproduce the original-silicon
		// bug where the high byte would be read from the start of the
		// same page when the pointer straddles a 0xXXFF boundary.
		return c.bus.Read16(ptr), false

	case IndexedIndirect:
		base := c.bus.Read8(instrPC + 1)
		ptr := base + c.X
		lo := uint16(c.bus.Read8(uint16(ptr)))
		hi := uint16(c.bus.Read8(uint16(ptr + 1)))
		return hi<<8 | lo, false

	case IndirectIndexed:
		ptr := c.bus.Read8(instrPC + 1)
		lo := uint16(c.bus.Read8(uint16(ptr)))
		hi := uint16(c.bus.Read8(uint16(ptr + 1)))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		return addr, (base & 0xff00) != (addr & 0xff00)

	default:
		return 0, false
	}
}

func (c *CPU) push(value byte) {
	c.bus.Write8(stackBase+uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.bus.Read8(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(value uint16) {
	c.push(byte(value >> 8))
	c.push(byte(value))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

func (c *CPU) setZN(value byte) {
	c.Z = value == 0
	c.N = value&0x80 != 0
}

// Status returns the processor status byte, bit 5 always set.
func (c *CPU) Status() byte {
	var s byte
	if c.N {
		s |= flagN
	}
	if c.V {
		s |= flagV
	}
	s |= flagU
	if c.B {
		s |= flagB
	}
	if c.D {
		s |= flagD
	}
	if c.I {
		s |= flagI
	}
	if c.Z {
		s |= flagZ
	}
	if c.C {
		s |= flagC
	}
	return s
}

// SetStatus loads the processor status flags from a byte, e.g. from PLP/RTI.
func (c *CPU) SetStatus(s byte) {
	c.N = s&flagN != 0
	c.V = s&flagV != 0
	c.B = s&flagB != 0
	c.D = s&flagD != 0
	c.I = s&flagI != 0
	c.Z = s&flagZ != 0
	c.C = s&flagC != 0
}

func (c *CPU) handleNMI() {
	c.pushWord(c.PC)
	c.push((c.Status() &^ flagB) | flagU)
	c.I = true
	c.PC = c.bus.Read16(nmiVector)
	c.cyclesRemaining = 7 - 1
}
