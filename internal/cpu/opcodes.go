package cpu

// opTable maps every opcode byte that one of the 56 documented mnemonics
// claims to its (mnemonic, byte length, base cycle cost, addressing mode).
// An opcode byte with no entry is illegal/unmapped in this core — spec.md
// §1 scopes unofficial opcodes out, and spec.md §7 treats an unmapped byte
// as fatal rather than a silent NOP.
var opTable = map[byte]instruction{
	// ADC
	0x69: {"ADC", 2, 2, Immediate},
	0x65: {"ADC", 2, 3, ZeroPage},
	0x75: {"ADC", 2, 4, ZeroPageX},
	0x6d: {"ADC", 3, 4, Absolute},
	0x7d: {"ADC", 3, 4, AbsoluteX},
	0x79: {"ADC", 3, 4, AbsoluteY},
	0x61: {"ADC", 2, 6, IndexedIndirect},
	0x71: {"ADC", 2, 5, IndirectIndexed},

	// AND
	0x29: {"AND", 2, 2, Immediate},
	0x25: {"AND", 2, 3, ZeroPage},
	0x35: {"AND", 2, 4, ZeroPageX},
	0x2d: {"AND", 3, 4, Absolute},
	0x3d: {"AND", 3, 4, AbsoluteX},
	0x39: {"AND", 3, 4, AbsoluteY},
	0x21: {"AND", 2, 6, IndexedIndirect},
	0x31: {"AND", 2, 5, IndirectIndexed},

	// ASL
	0x0a: {"ASL", 1, 2, Accumulator},
	0x06: {"ASL", 2, 5, ZeroPage},
	0x16: {"ASL", 2, 6, ZeroPageX},
	0x0e: {"ASL", 3, 6, Absolute},
	0x1e: {"ASL", 3, 7, AbsoluteX},

	// Branches
	0x90: {"BCC", 2, 2, Relative},
	0xb0: {"BCS", 2, 2, Relative},
	0xf0: {"BEQ", 2, 2, Relative},
	0x30: {"BMI", 2, 2, Relative},
	0xd0: {"BNE", 2, 2, Relative},
	0x10: {"BPL", 2, 2, Relative},
	0x50: {"BVC", 2, 2, Relative},
	0x70: {"BVS", 2, 2, Relative},

	// BIT
	0x24: {"BIT", 2, 3, ZeroPage},
	0x2c: {"BIT", 3, 4, Absolute},

	// BRK
	0x00: {"BRK", 1, 7, Implicit},

	// Flags
	0x18: {"CLC", 1, 2, Implicit},
	0xd8: {"CLD", 1, 2, Implicit},
	0x58: {"CLI", 1, 2, Implicit},
	0xb8: {"CLV", 1, 2, Implicit},
	0x38: {"SEC", 1, 2, Implicit},
	0xf8: {"SED", 1, 2, Implicit},
	0x78: {"SEI", 1, 2, Implicit},

	// CMP
	0xc9: {"CMP", 2, 2, Immediate},
	0xc5: {"CMP", 2, 3, ZeroPage},
	0xd5: {"CMP", 2, 4, ZeroPageX},
	0xcd: {"CMP", 3, 4, Absolute},
	0xdd: {"CMP", 3, 4, AbsoluteX},
	0xd9: {"CMP", 3, 4, AbsoluteY},
	0xc1: {"CMP", 2, 6, IndexedIndirect},
	0xd1: {"CMP", 2, 5, IndirectIndexed},

	// CPX / CPY
	0xe0: {"CPX", 2, 2, Immediate},
	0xe4: {"CPX", 2, 3, ZeroPage},
	0xec: {"CPX", 3, 4, Absolute},
	0xc0: {"CPY", 2, 2, Immediate},
	0xc4: {"CPY", 2, 3, ZeroPage},
	0xcc: {"CPY", 3, 4, Absolute},

	// DEC / DEX / DEY
	0xc6: {"DEC", 2, 5, ZeroPage},
	0xd6: {"DEC", 2, 6, ZeroPageX},
	0xce: {"DEC", 3, 6, Absolute},
	0xde: {"DEC", 3, 7, AbsoluteX},
	0xca: {"DEX", 1, 2, Implicit},
	0x88: {"DEY", 1, 2, Implicit},

	// EOR
	0x49: {"EOR", 2, 2, Immediate},
	0x45: {"EOR", 2, 3, ZeroPage},
	0x55: {"EOR", 2, 4, ZeroPageX},
	0x4d: {"EOR", 3, 4, Absolute},
	0x5d: {"EOR", 3, 4, AbsoluteX},
	0x59: {"EOR", 3, 4, AbsoluteY},
	0x41: {"EOR", 2, 6, IndexedIndirect},
	0x51: {"EOR", 2, 5, IndirectIndexed},

	// INC / INX / INY
	0xe6: {"INC", 2, 5, ZeroPage},
	0xf6: {"INC", 2, 6, ZeroPageX},
	0xee: {"INC", 3, 6, Absolute},
	0xfe: {"INC", 3, 7, AbsoluteX},
	0xe8: {"INX", 1, 2, Implicit},
	0xc8: {"INY", 1, 2, Implicit},

	// JMP / JSR
	0x4c: {"JMP", 3, 3, Absolute},
	0x6c: {"JMP", 3, 5, Indirect},
	0x20: {"JSR", 3, 6, Absolute},

	// LDA
	0xa9: {"LDA", 2, 2, Immediate},
	0xa5: {"LDA", 2, 3, ZeroPage},
	0xb5: {"LDA", 2, 4, ZeroPageX},
	0xad: {"LDA", 3, 4, Absolute},
	0xbd: {"LDA", 3, 4, AbsoluteX},
	0xb9: {"LDA", 3, 4, AbsoluteY},
	0xa1: {"LDA", 2, 6, IndexedIndirect},
	0xb1: {"LDA", 2, 5, IndirectIndexed},

	// LDX
	0xa2: {"LDX", 2, 2, Immediate},
	0xa6: {"LDX", 2, 3, ZeroPage},
	0xb6: {"LDX", 2, 4, ZeroPageY},
	0xae: {"LDX", 3, 4, Absolute},
	0xbe: {"LDX", 3, 4, AbsoluteY},

	// LDY
	0xa0: {"LDY", 2, 2, Immediate},
	0xa4: {"LDY", 2, 3, ZeroPage},
	0xb4: {"LDY", 2, 4, ZeroPageX},
	0xac: {"LDY", 3, 4, Absolute},
	0xbc: {"LDY", 3, 4, AbsoluteX},

	// LSR
	0x4a: {"LSR", 1, 2, Accumulator},
	0x46: {"LSR", 2, 5, ZeroPage},
	0x56: {"LSR", 2, 6, ZeroPageX},
	0x4e: {"LSR", 3, 6, Absolute},
	0x5e: {"LSR", 3, 7, AbsoluteX},

	// NOP
	0xea: {"NOP", 1, 2, Implicit},

	// ORA
	0x09: {"ORA", 2, 2, Immediate},
	0x05: {"ORA", 2, 3, ZeroPage},
	0x15: {"ORA", 2, 4, ZeroPageX},
	0x0d: {"ORA", 3, 4, Absolute},
	0x1d: {"ORA", 3, 4, AbsoluteX},
	0x19: {"ORA", 3, 4, AbsoluteY},
	0x01: {"ORA", 2, 6, IndexedIndirect},
	0x11: {"ORA", 2, 5, IndirectIndexed},

	// Stack
	0x48: {"PHA", 1, 3, Implicit},
	0x08: {"PHP", 1, 3, Implicit},
	0x68: {"PLA", 1, 4, Implicit},
	0x28: {"PLP", 1, 4, Implicit},

	// ROL
	0x2a: {"ROL", 1, 2, Accumulator},
	0x26: {"ROL", 2, 5, ZeroPage},
	0x36: {"ROL", 2, 6, ZeroPageX},
	0x2e: {"ROL", 3, 6, Absolute},
	0x3e: {"ROL", 3, 7, AbsoluteX},

	// ROR
	0x6a: {"ROR", 1, 2, Accumulator},
	0x66: {"ROR", 2, 5, ZeroPage},
	0x76: {"ROR", 2, 6, ZeroPageX},
	0x6e: {"ROR", 3, 6, Absolute},
	0x7e: {"ROR", 3, 7, AbsoluteX},

	// RTI / RTS
	0x40: {"RTI", 1, 6, Implicit},
	0x60: {"RTS", 1, 6, Implicit},

	// SBC
	0xe9: {"SBC", 2, 2, Immediate},
	0xe5: {"SBC", 2, 3, ZeroPage},
	0xf5: {"SBC", 2, 4, ZeroPageX},
	0xed: {"SBC", 3, 4, Absolute},
	0xfd: {"SBC", 3, 4, AbsoluteX},
	0xf9: {"SBC", 3, 4, AbsoluteY},
	0xe1: {"SBC", 2, 6, IndexedIndirect},
	0xf1: {"SBC", 2, 5, IndirectIndexed},

	// STA
	0x85: {"STA", 2, 3, ZeroPage},
	0x95: {"STA", 2, 4, ZeroPageX},
	0x8d: {"STA", 3, 4, Absolute},
	0x9d: {"STA", 3, 5, AbsoluteX},
	0x99: {"STA", 3, 5, AbsoluteY},
	0x81: {"STA", 2, 6, IndexedIndirect},
	0x91: {"STA", 2, 6, IndirectIndexed},

	// STX / STY
	0x86: {"STX", 2, 3, ZeroPage},
	0x96: {"STX", 2, 4, ZeroPageY},
	0x8e: {"STX", 3, 4, Absolute},
	0x84: {"STY", 2, 3, ZeroPage},
	0x94: {"STY", 2, 4, ZeroPageX},
	0x8c: {"STY", 3, 4, Absolute},

	// Transfer
	0xaa: {"TAX", 1, 2, Implicit},
	0xa8: {"TAY", 1, 2, Implicit},
	0xba: {"TSX", 1, 2, Implicit},
	0x8a: {"TXA", 1, 2, Implicit},
	0x9a: {"TXS", 1, 2, Implicit},
	0x98: {"TYA", 1, 2, Implicit},
}
