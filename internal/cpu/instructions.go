package cpu

// execute dispatches opcode to its semantic handler, passing the effective
// address resolveOperand already computed. It returns extra cycles beyond
// the opcode table's base cost: the page-cross penalty for read-form
// indexed/indirect-Y addressing, or the taken/page-cross bonus for
// branches.
func (c *CPU) execute(opcode byte, instrPC uint16, addr uint16, pageCrossed bool) int {
	switch opcode {
	// Load/Store
	case 0xa9, 0xa5, 0xb5, 0xad, 0xbd, 0xb9, 0xa1, 0xb1:
		c.lda(addr)
	case 0xa2, 0xa6, 0xb6, 0xae, 0xbe:
		c.ldx(addr)
	case 0xa0, 0xa4, 0xb4, 0xac, 0xbc:
		c.ldy(addr)
	case 0x85, 0x95, 0x8d, 0x9d, 0x99, 0x81, 0x91:
		c.sta(addr)
	case 0x86, 0x96, 0x8e:
		c.stx(addr)
	case 0x84, 0x94, 0x8c:
		c.sty(addr)

	// Transfer
	case 0xaa:
		c.X = c.A
		c.setZN(c.X)
	case 0x8a:
		c.A = c.X
		c.setZN(c.A)
	case 0xa8:
		c.Y = c.A
		c.setZN(c.Y)
	case 0x98:
		c.A = c.Y
		c.setZN(c.A)
	case 0xba:
		c.X = c.SP
		c.setZN(c.X)
	case 0x9a:
		c.SP = c.X

	// Stack
	case 0x48:
		c.push(c.A)
	case 0x68:
		c.A = c.pop()
		c.setZN(c.A)
	case 0x08:
		c.push(c.Status() | flagB)
	case 0x28:
		c.SetStatus(c.pop())

	// Arithmetic
	case 0x69, 0x65, 0x75, 0x6d, 0x7d, 0x79, 0x61, 0x71:
		c.adc(addr)
	case 0xe9, 0xe5, 0xf5, 0xed, 0xfd, 0xf9, 0xe1, 0xf1:
		c.sbc(addr)

	// Logic
	case 0x29, 0x25, 0x35, 0x2d, 0x3d, 0x39, 0x21, 0x31:
		c.A &= c.bus.Read8(addr)
		c.setZN(c.A)
	case 0x09, 0x05, 0x15, 0x0d, 0x1d, 0x19, 0x01, 0x11:
		c.A |= c.bus.Read8(addr)
		c.setZN(c.A)
	case 0x49, 0x45, 0x55, 0x4d, 0x5d, 0x59, 0x41, 0x51:
		c.A ^= c.bus.Read8(addr)
		c.setZN(c.A)

	// Compare
	case 0xc9, 0xc5, 0xd5, 0xcd, 0xdd, 0xd9, 0xc1, 0xd1:
		c.compare(c.A, addr)
	case 0xe0, 0xe4, 0xec:
		c.compare(c.X, addr)
	case 0xc0, 0xc4, 0xcc:
		c.compare(c.Y, addr)

	// Shift/Rotate
	case 0x0a:
		c.A = c.asl(c.A)
	case 0x06, 0x16, 0x0e, 0x1e:
		c.bus.Write8(addr, c.asl(c.bus.Read8(addr)))
	case 0x4a:
		c.A = c.lsr(c.A)
	case 0x46, 0x56, 0x4e, 0x5e:
		c.bus.Write8(addr, c.lsr(c.bus.Read8(addr)))
	case 0x2a:
		c.A = c.rol(c.A)
	case 0x26, 0x36, 0x2e, 0x3e:
		c.bus.Write8(addr, c.rol(c.bus.Read8(addr)))
	case 0x6a:
		c.A = c.ror(c.A)
	case 0x66, 0x76, 0x6e, 0x7e:
		c.bus.Write8(addr, c.ror(c.bus.Read8(addr)))

	// Increment/Decrement
	case 0xe6, 0xf6, 0xee, 0xfe:
		v := c.bus.Read8(addr) + 1
		c.bus.Write8(addr, v)
		c.setZN(v)
	case 0xc6, 0xd6, 0xce, 0xde:
		v := c.bus.Read8(addr) - 1
		c.bus.Write8(addr, v)
		c.setZN(v)
	case 0xe8:
		c.X++
		c.setZN(c.X)
	case 0xca:
		c.X--
		c.setZN(c.X)
	case 0xc8:
		c.Y++
		c.setZN(c.Y)
	case 0x88:
		c.Y--
		c.setZN(c.Y)

	// Flags
	case 0x18:
		c.C = false
	case 0x38:
		c.C = true
	case 0x58:
		c.I = false
	case 0x78:
		c.I = true
	case 0xb8:
		c.V = false
	case 0xd8:
		c.D = false
	case 0xf8:
		c.D = true

	// Control flow
	case 0x4c, 0x6c:
		c.PC = addr
	case 0x20:
		c.pushWord(c.PC + 2)
		c.PC = addr
	case 0x60:
		c.PC = c.popWord() + 1
	case 0x40:
		c.SetStatus(c.pop())
		c.PC = c.popWord()

	// Branches
	case 0x90:
		return c.branch(!c.C, instrPC+2, addr, pageCrossed)
	case 0xb0:
		return c.branch(c.C, instrPC+2, addr, pageCrossed)
	case 0xd0:
		return c.branch(!c.Z, instrPC+2, addr, pageCrossed)
	case 0xf0:
		return c.branch(c.Z, instrPC+2, addr, pageCrossed)
	case 0x10:
		return c.branch(!c.N, instrPC+2, addr, pageCrossed)
	case 0x30:
		return c.branch(c.N, instrPC+2, addr, pageCrossed)
	case 0x50:
		return c.branch(!c.V, instrPC+2, addr, pageCrossed)
	case 0x70:
		return c.branch(c.V, instrPC+2, addr, pageCrossed)

	// Bit test
	case 0x24, 0x2c:
		v := c.bus.Read8(addr)
		c.N = v&flagN != 0
		c.V = v&flagV != 0
		c.Z = c.A&v == 0

	// Interrupt/NOP
	case 0x00:
		c.brk()
	case 0xea:
		// NOP

	default:
		panic("cpu: unreachable opcode in execute")
	}

	if pageCrossed && readFormPenalty[opcode] {
		return 1
	}
	return 0
}

// readFormPenalty lists opcodes that take an extra cycle when their
// AbsoluteX/AbsoluteY/IndirectIndexed operand crosses a page boundary: the
// read-form addressing modes, per spec.md §4.4.
var readFormPenalty = map[byte]bool{
	0xbd: true, 0xb9: true, 0xb1: true, // LDA
	0xbe: true, // LDX
	0xbc: true, // LDY
	0x7d: true, 0x79: true, 0x71: true, // ADC
	0xfd: true, 0xf9: true, 0xf1: true, // SBC
	0x3d: true, 0x39: true, 0x31: true, // AND
	0x1d: true, 0x19: true, 0x11: true, // ORA
	0x5d: true, 0x59: true, 0x51: true, // EOR
	0xdd: true, 0xd9: true, 0xd1: true, // CMP
}

func (c *CPU) lda(addr uint16) {
	c.A = c.bus.Read8(addr)
	c.setZN(c.A)
}

func (c *CPU) ldx(addr uint16) {
	c.X = c.bus.Read8(addr)
	c.setZN(c.X)
}

func (c *CPU) ldy(addr uint16) {
	c.Y = c.bus.Read8(addr)
	c.setZN(c.Y)
}

func (c *CPU) sta(addr uint16) { c.bus.Write8(addr, c.A) }
func (c *CPU) stx(addr uint16) { c.bus.Write8(addr, c.X) }
func (c *CPU) sty(addr uint16) { c.bus.Write8(addr, c.Y) }

func (c *CPU) adc(addr uint16) {
	value := c.bus.Read8(addr)
	carry := uint16(0)
	if c.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := byte(sum)
	c.V = (c.A^result)&0x80 != 0 && (c.A^value)&0x80 == 0
	c.C = sum > 0xff
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) sbc(addr uint16) {
	value := c.bus.Read8(addr) ^ 0xff
	carry := uint16(0)
	if c.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := byte(sum)
	c.V = (c.A^result)&0x80 != 0 && (c.A^value)&0x80 == 0
	c.C = sum > 0xff
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg byte, addr uint16) {
	value := c.bus.Read8(addr)
	c.C = reg >= value
	c.setZN(reg - value)
}

func (c *CPU) asl(v byte) byte {
	c.C = v&0x80 != 0
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) lsr(v byte) byte {
	c.C = v&0x01 != 0
	v >>= 1
	c.setZN(v)
	return v
}

func (c *CPU) rol(v byte) byte {
	oldCarry := c.C
	c.C = v&0x80 != 0
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.setZN(v)
	return v
}

func (c *CPU) ror(v byte) byte {
	oldCarry := c.C
	c.C = v&0x01 != 0
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.setZN(v)
	return v
}

// branch sets PC to fallthrough (the instruction immediately after the
// branch) when not taken, or to target when taken, since branch mnemonics
// are responsible for advancing PC themselves (see pcModifyingMnemonic).
// crossed was computed by the addressing-mode resolver by comparing the
// fallthrough address against the branch target. Returns the branch's own
// cycle bonus: 0 if not taken, 1 if taken, 2 if taken and crossing a page.
func (c *CPU) branch(taken bool, fallthrough_ uint16, target uint16, crossed bool) int {
	if !taken {
		c.PC = fallthrough_
		return 0
	}
	c.PC = target
	if crossed {
		return 2
	}
	return 1
}

func (c *CPU) brk() {
	c.pushWord(c.PC + 2)
	c.push(c.Status() | flagB)
	c.I = true
	c.PC = c.bus.Read16(irqVector)
}
