package cpu6502

// opcodeTable is the full 256-entry instruction decode table. Entries
// not assigned below default to clsJam, matching real NMOS 6502 silicon
// where the unassigned illegal opcodes hang the bus.
var opcodeTable [256]instr

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = instr{class: clsJam, name: "JAM", op: opJAM}
	}
	for op, in := range opcodeDefs {
		opcodeTable[op] = in
	}
}

var opcodeDefs = map[byte]instr{
	// --- control flow ---
	0x00: {class: clsBRK, name: "BRK"},
	0x20: {class: clsJSR, name: "JSR"},
	0x40: {class: clsRTI, name: "RTI"},
	0x60: {class: clsRTS, name: "RTS"},
	0x4C: {mode: ModeAbsolute, class: clsJump, name: "JMP"},
	0x6C: {mode: ModeIndirect, class: clsJump, name: "JMP"},

	// --- branches ---
	0x10: {class: clsBranch, name: "BPL", op: bPL},
	0x30: {class: clsBranch, name: "BMI", op: bMI},
	0x50: {class: clsBranch, name: "BVC", op: bVC},
	0x70: {class: clsBranch, name: "BVS", op: bVS},
	0x90: {class: clsBranch, name: "BCC", op: bCC},
	0xB0: {class: clsBranch, name: "BCS", op: bCS},
	0xD0: {class: clsBranch, name: "BNE", op: bNE},
	0xF0: {class: clsBranch, name: "BEQ", op: bEQ},

	// --- stack ---
	0x48: {class: clsPush, name: "PHA", op: opPushA},
	0x08: {class: clsPush, name: "PHP", op: opPushP},
	0x68: {class: clsPull, name: "PLA", op: opPullA},
	0x28: {class: clsPull, name: "PLP", op: opPullP},

	// --- flags ---
	0x18: {class: clsImplied, name: "CLC", op: opCLC},
	0x38: {class: clsImplied, name: "SEC", op: opSEC},
	0x58: {class: clsImplied, name: "CLI", op: opCLI},
	0x78: {class: clsImplied, name: "SEI", op: opSEI},
	0xB8: {class: clsImplied, name: "CLV", op: opCLV},
	0xD8: {class: clsImplied, name: "CLD", op: opCLD},
	0xF8: {class: clsImplied, name: "SED", op: opSED},

	// --- transfers / NOP ---
	0xAA: {class: clsImplied, name: "TAX", op: opTAX},
	0xA8: {class: clsImplied, name: "TAY", op: opTAY},
	0x8A: {class: clsImplied, name: "TXA", op: opTXA},
	0x98: {class: clsImplied, name: "TYA", op: opTYA},
	0xBA: {class: clsImplied, name: "TSX", op: opTSX},
	0x9A: {class: clsImplied, name: "TXS", op: opTXS},
	0xEA: {class: clsImplied, name: "NOP", op: opNOP},
	0xE8: {class: clsImplied, name: "INX", op: opINX},
	0xC8: {class: clsImplied, name: "INY", op: opINY},
	0xCA: {class: clsImplied, name: "DEX", op: opDEX},
	0x88: {class: clsImplied, name: "DEY", op: opDEY},

	// --- accumulator-mode shifts ---
	0x0A: {class: clsImplied, name: "ASL", op: opASLA},
	0x4A: {class: clsImplied, name: "LSR", op: opLSRA},
	0x2A: {class: clsImplied, name: "ROL", op: opROLA},
	0x6A: {class: clsImplied, name: "ROR", op: opRORA},

	// --- LDA ---
	0xA9: {mode: ModeImmediate, class: clsRead, name: "LDA", op: opLDA},
	0xA5: {mode: ModeZeroPage, class: clsRead, name: "LDA", op: opLDA},
	0xB5: {mode: ModeZeroPageX, class: clsRead, name: "LDA", op: opLDA},
	0xAD: {mode: ModeAbsolute, class: clsRead, name: "LDA", op: opLDA},
	0xBD: {mode: ModeAbsoluteX, class: clsRead, name: "LDA", op: opLDA},
	0xB9: {mode: ModeAbsoluteY, class: clsRead, name: "LDA", op: opLDA},
	0xA1: {mode: ModeIndirectX, class: clsRead, name: "LDA", op: opLDA},
	0xB1: {mode: ModeIndirectY, class: clsRead, name: "LDA", op: opLDA},

	// --- LDX ---
	0xA2: {mode: ModeImmediate, class: clsRead, name: "LDX", op: opLDX},
	0xA6: {mode: ModeZeroPage, class: clsRead, name: "LDX", op: opLDX},
	0xB6: {mode: ModeZeroPageY, class: clsRead, name: "LDX", op: opLDX},
	0xAE: {mode: ModeAbsolute, class: clsRead, name: "LDX", op: opLDX},
	0xBE: {mode: ModeAbsoluteY, class: clsRead, name: "LDX", op: opLDX},

	// --- LDY ---
	0xA0: {mode: ModeImmediate, class: clsRead, name: "LDY", op: opLDY},
	0xA4: {mode: ModeZeroPage, class: clsRead, name: "LDY", op: opLDY},
	0xB4: {mode: ModeZeroPageX, class: clsRead, name: "LDY", op: opLDY},
	0xAC: {mode: ModeAbsolute, class: clsRead, name: "LDY", op: opLDY},
	0xBC: {mode: ModeAbsoluteX, class: clsRead, name: "LDY", op: opLDY},

	// --- STA ---
	0x85: {mode: ModeZeroPage, class: clsWrite, name: "STA", op: opSTA},
	0x95: {mode: ModeZeroPageX, class: clsWrite, name: "STA", op: opSTA},
	0x8D: {mode: ModeAbsolute, class: clsWrite, name: "STA", op: opSTA},
	0x9D: {mode: ModeAbsoluteX, class: clsWrite, name: "STA", op: opSTA},
	0x99: {mode: ModeAbsoluteY, class: clsWrite, name: "STA", op: opSTA},
	0x81: {mode: ModeIndirectX, class: clsWrite, name: "STA", op: opSTA},
	0x91: {mode: ModeIndirectY, class: clsWrite, name: "STA", op: opSTA},

	// --- STX / STY ---
	0x86: {mode: ModeZeroPage, class: clsWrite, name: "STX", op: opSTX},
	0x96: {mode: ModeZeroPageY, class: clsWrite, name: "STX", op: opSTX},
	0x8E: {mode: ModeAbsolute, class: clsWrite, name: "STX", op: opSTX},
	0x84: {mode: ModeZeroPage, class: clsWrite, name: "STY", op: opSTY},
	0x94: {mode: ModeZeroPageX, class: clsWrite, name: "STY", op: opSTY},
	0x8C: {mode: ModeAbsolute, class: clsWrite, name: "STY", op: opSTY},

	// --- AND ---
	0x29: {mode: ModeImmediate, class: clsRead, name: "AND", op: opAND},
	0x25: {mode: ModeZeroPage, class: clsRead, name: "AND", op: opAND},
	0x35: {mode: ModeZeroPageX, class: clsRead, name: "AND", op: opAND},
	0x2D: {mode: ModeAbsolute, class: clsRead, name: "AND", op: opAND},
	0x3D: {mode: ModeAbsoluteX, class: clsRead, name: "AND", op: opAND},
	0x39: {mode: ModeAbsoluteY, class: clsRead, name: "AND", op: opAND},
	0x21: {mode: ModeIndirectX, class: clsRead, name: "AND", op: opAND},
	0x31: {mode: ModeIndirectY, class: clsRead, name: "AND", op: opAND},

	// --- ORA ---
	0x09: {mode: ModeImmediate, class: clsRead, name: "ORA", op: opORA},
	0x05: {mode: ModeZeroPage, class: clsRead, name: "ORA", op: opORA},
	0x15: {mode: ModeZeroPageX, class: clsRead, name: "ORA", op: opORA},
	0x0D: {mode: ModeAbsolute, class: clsRead, name: "ORA", op: opORA},
	0x1D: {mode: ModeAbsoluteX, class: clsRead, name: "ORA", op: opORA},
	0x19: {mode: ModeAbsoluteY, class: clsRead, name: "ORA", op: opORA},
	0x01: {mode: ModeIndirectX, class: clsRead, name: "ORA", op: opORA},
	0x11: {mode: ModeIndirectY, class: clsRead, name: "ORA", op: opORA},

	// --- EOR ---
	0x49: {mode: ModeImmediate, class: clsRead, name: "EOR", op: opEOR},
	0x45: {mode: ModeZeroPage, class: clsRead, name: "EOR", op: opEOR},
	0x55: {mode: ModeZeroPageX, class: clsRead, name: "EOR", op: opEOR},
	0x4D: {mode: ModeAbsolute, class: clsRead, name: "EOR", op: opEOR},
	0x5D: {mode: ModeAbsoluteX, class: clsRead, name: "EOR", op: opEOR},
	0x59: {mode: ModeAbsoluteY, class: clsRead, name: "EOR", op: opEOR},
	0x41: {mode: ModeIndirectX, class: clsRead, name: "EOR", op: opEOR},
	0x51: {mode: ModeIndirectY, class: clsRead, name: "EOR", op: opEOR},

	// --- BIT ---
	0x24: {mode: ModeZeroPage, class: clsRead, name: "BIT", op: opBIT},
	0x2C: {mode: ModeAbsolute, class: clsRead, name: "BIT", op: opBIT},

	// --- ADC ---
	0x69: {mode: ModeImmediate, class: clsRead, name: "ADC", op: opADC},
	0x65: {mode: ModeZeroPage, class: clsRead, name: "ADC", op: opADC},
	0x75: {mode: ModeZeroPageX, class: clsRead, name: "ADC", op: opADC},
	0x6D: {mode: ModeAbsolute, class: clsRead, name: "ADC", op: opADC},
	0x7D: {mode: ModeAbsoluteX, class: clsRead, name: "ADC", op: opADC},
	0x79: {mode: ModeAbsoluteY, class: clsRead, name: "ADC", op: opADC},
	0x61: {mode: ModeIndirectX, class: clsRead, name: "ADC", op: opADC},
	0x71: {mode: ModeIndirectY, class: clsRead, name: "ADC", op: opADC},

	// --- SBC ---
	0xE9: {mode: ModeImmediate, class: clsRead, name: "SBC", op: opSBC},
	0xEB: {mode: ModeImmediate, class: clsRead, name: "SBC", op: opSBC}, // illegal duplicate
	0xE5: {mode: ModeZeroPage, class: clsRead, name: "SBC", op: opSBC},
	0xF5: {mode: ModeZeroPageX, class: clsRead, name: "SBC", op: opSBC},
	0xED: {mode: ModeAbsolute, class: clsRead, name: "SBC", op: opSBC},
	0xFD: {mode: ModeAbsoluteX, class: clsRead, name: "SBC", op: opSBC},
	0xF9: {mode: ModeAbsoluteY, class: clsRead, name: "SBC", op: opSBC},
	0xE1: {mode: ModeIndirectX, class: clsRead, name: "SBC", op: opSBC},
	0xF1: {mode: ModeIndirectY, class: clsRead, name: "SBC", op: opSBC},

	// --- CMP ---
	0xC9: {mode: ModeImmediate, class: clsRead, name: "CMP", op: opCMP},
	0xC5: {mode: ModeZeroPage, class: clsRead, name: "CMP", op: opCMP},
	0xD5: {mode: ModeZeroPageX, class: clsRead, name: "CMP", op: opCMP},
	0xCD: {mode: ModeAbsolute, class: clsRead, name: "CMP", op: opCMP},
	0xDD: {mode: ModeAbsoluteX, class: clsRead, name: "CMP", op: opCMP},
	0xD9: {mode: ModeAbsoluteY, class: clsRead, name: "CMP", op: opCMP},
	0xC1: {mode: ModeIndirectX, class: clsRead, name: "CMP", op: opCMP},
	0xD1: {mode: ModeIndirectY, class: clsRead, name: "CMP", op: opCMP},

	// --- CPX / CPY ---
	0xE0: {mode: ModeImmediate, class: clsRead, name: "CPX", op: opCPX},
	0xE4: {mode: ModeZeroPage, class: clsRead, name: "CPX", op: opCPX},
	0xEC: {mode: ModeAbsolute, class: clsRead, name: "CPX", op: opCPX},
	0xC0: {mode: ModeImmediate, class: clsRead, name: "CPY", op: opCPY},
	0xC4: {mode: ModeZeroPage, class: clsRead, name: "CPY", op: opCPY},
	0xCC: {mode: ModeAbsolute, class: clsRead, name: "CPY", op: opCPY},

	// --- INC / DEC ---
	0xE6: {mode: ModeZeroPage, class: clsRMW, name: "INC", op: opINC},
	0xF6: {mode: ModeZeroPageX, class: clsRMW, name: "INC", op: opINC},
	0xEE: {mode: ModeAbsolute, class: clsRMW, name: "INC", op: opINC},
	0xFE: {mode: ModeAbsoluteX, class: clsRMW, name: "INC", op: opINC},
	0xC6: {mode: ModeZeroPage, class: clsRMW, name: "DEC", op: opDEC},
	0xD6: {mode: ModeZeroPageX, class: clsRMW, name: "DEC", op: opDEC},
	0xCE: {mode: ModeAbsolute, class: clsRMW, name: "DEC", op: opDEC},
	0xDE: {mode: ModeAbsoluteX, class: clsRMW, name: "DEC", op: opDEC},

	// --- ASL / LSR / ROL / ROR (memory) ---
	0x06: {mode: ModeZeroPage, class: clsRMW, name: "ASL", op: opASL},
	0x16: {mode: ModeZeroPageX, class: clsRMW, name: "ASL", op: opASL},
	0x0E: {mode: ModeAbsolute, class: clsRMW, name: "ASL", op: opASL},
	0x1E: {mode: ModeAbsoluteX, class: clsRMW, name: "ASL", op: opASL},
	0x46: {mode: ModeZeroPage, class: clsRMW, name: "LSR", op: opLSR},
	0x56: {mode: ModeZeroPageX, class: clsRMW, name: "LSR", op: opLSR},
	0x4E: {mode: ModeAbsolute, class: clsRMW, name: "LSR", op: opLSR},
	0x5E: {mode: ModeAbsoluteX, class: clsRMW, name: "LSR", op: opLSR},
	0x26: {mode: ModeZeroPage, class: clsRMW, name: "ROL", op: opROL},
	0x36: {mode: ModeZeroPageX, class: clsRMW, name: "ROL", op: opROL},
	0x2E: {mode: ModeAbsolute, class: clsRMW, name: "ROL", op: opROL},
	0x3E: {mode: ModeAbsoluteX, class: clsRMW, name: "ROL", op: opROL},
	0x66: {mode: ModeZeroPage, class: clsRMW, name: "ROR", op: opROR},
	0x76: {mode: ModeZeroPageX, class: clsRMW, name: "ROR", op: opROR},
	0x6E: {mode: ModeAbsolute, class: clsRMW, name: "ROR", op: opROR},
	0x7E: {mode: ModeAbsoluteX, class: clsRMW, name: "ROR", op: opROR},

	// --- illegal: SLO/RLA/SRE/RRA (RMW + accumulate) ---
	0x07: {mode: ModeZeroPage, class: clsRMW, name: "SLO", op: opSLO},
	0x17: {mode: ModeZeroPageX, class: clsRMW, name: "SLO", op: opSLO},
	0x0F: {mode: ModeAbsolute, class: clsRMW, name: "SLO", op: opSLO},
	0x1F: {mode: ModeAbsoluteX, class: clsRMW, name: "SLO", op: opSLO},
	0x1B: {mode: ModeAbsoluteY, class: clsRMW, name: "SLO", op: opSLO},
	0x03: {mode: ModeIndirectX, class: clsRMW, name: "SLO", op: opSLO},
	0x13: {mode: ModeIndirectY, class: clsRMW, name: "SLO", op: opSLO},

	0x27: {mode: ModeZeroPage, class: clsRMW, name: "RLA", op: opRLA},
	0x37: {mode: ModeZeroPageX, class: clsRMW, name: "RLA", op: opRLA},
	0x2F: {mode: ModeAbsolute, class: clsRMW, name: "RLA", op: opRLA},
	0x3F: {mode: ModeAbsoluteX, class: clsRMW, name: "RLA", op: opRLA},
	0x3B: {mode: ModeAbsoluteY, class: clsRMW, name: "RLA", op: opRLA},
	0x23: {mode: ModeIndirectX, class: clsRMW, name: "RLA", op: opRLA},
	0x33: {mode: ModeIndirectY, class: clsRMW, name: "RLA", op: opRLA},

	0x47: {mode: ModeZeroPage, class: clsRMW, name: "SRE", op: opSRE},
	0x57: {mode: ModeZeroPageX, class: clsRMW, name: "SRE", op: opSRE},
	0x4F: {mode: ModeAbsolute, class: clsRMW, name: "SRE", op: opSRE},
	0x5F: {mode: ModeAbsoluteX, class: clsRMW, name: "SRE", op: opSRE},
	0x5B: {mode: ModeAbsoluteY, class: clsRMW, name: "SRE", op: opSRE},
	0x43: {mode: ModeIndirectX, class: clsRMW, name: "SRE", op: opSRE},
	0x53: {mode: ModeIndirectY, class: clsRMW, name: "SRE", op: opSRE},

	0x67: {mode: ModeZeroPage, class: clsRMW, name: "RRA", op: opRRA},
	0x77: {mode: ModeZeroPageX, class: clsRMW, name: "RRA", op: opRRA},
	0x6F: {mode: ModeAbsolute, class: clsRMW, name: "RRA", op: opRRA},
	0x7F: {mode: ModeAbsoluteX, class: clsRMW, name: "RRA", op: opRRA},
	0x7B: {mode: ModeAbsoluteY, class: clsRMW, name: "RRA", op: opRRA},
	0x63: {mode: ModeIndirectX, class: clsRMW, name: "RRA", op: opRRA},
	0x73: {mode: ModeIndirectY, class: clsRMW, name: "RRA", op: opRRA},

	// --- illegal: SAX/LAX/DCP/ISC ---
	0x87: {mode: ModeZeroPage, class: clsWrite, name: "SAX", op: opSAX},
	0x97: {mode: ModeZeroPageY, class: clsWrite, name: "SAX", op: opSAX},
	0x8F: {mode: ModeAbsolute, class: clsWrite, name: "SAX", op: opSAX},
	0x83: {mode: ModeIndirectX, class: clsWrite, name: "SAX", op: opSAX},

	0xA7: {mode: ModeZeroPage, class: clsRead, name: "LAX", op: opLAX},
	0xB7: {mode: ModeZeroPageY, class: clsRead, name: "LAX", op: opLAX},
	0xAF: {mode: ModeAbsolute, class: clsRead, name: "LAX", op: opLAX},
	0xBF: {mode: ModeAbsoluteY, class: clsRead, name: "LAX", op: opLAX},
	0xA3: {mode: ModeIndirectX, class: clsRead, name: "LAX", op: opLAX},
	0xB3: {mode: ModeIndirectY, class: clsRead, name: "LAX", op: opLAX},

	0xC7: {mode: ModeZeroPage, class: clsRMW, name: "DCP", op: opDCP},
	0xD7: {mode: ModeZeroPageX, class: clsRMW, name: "DCP", op: opDCP},
	0xCF: {mode: ModeAbsolute, class: clsRMW, name: "DCP", op: opDCP},
	0xDF: {mode: ModeAbsoluteX, class: clsRMW, name: "DCP", op: opDCP},
	0xDB: {mode: ModeAbsoluteY, class: clsRMW, name: "DCP", op: opDCP},
	0xC3: {mode: ModeIndirectX, class: clsRMW, name: "DCP", op: opDCP},
	0xD3: {mode: ModeIndirectY, class: clsRMW, name: "DCP", op: opDCP},

	0xE7: {mode: ModeZeroPage, class: clsRMW, name: "ISC", op: opISC},
	0xF7: {mode: ModeZeroPageX, class: clsRMW, name: "ISC", op: opISC},
	0xEF: {mode: ModeAbsolute, class: clsRMW, name: "ISC", op: opISC},
	0xFF: {mode: ModeAbsoluteX, class: clsRMW, name: "ISC", op: opISC},
	0xFB: {mode: ModeAbsoluteY, class: clsRMW, name: "ISC", op: opISC},
	0xE3: {mode: ModeIndirectX, class: clsRMW, name: "ISC", op: opISC},
	0xF3: {mode: ModeIndirectY, class: clsRMW, name: "ISC", op: opISC},

	// --- illegal: immediate-mode combos ---
	0x0B: {mode: ModeImmediate, class: clsRead, name: "ANC", op: opANC},
	0x2B: {mode: ModeImmediate, class: clsRead, name: "ANC", op: opANC},
	0x4B: {mode: ModeImmediate, class: clsRead, name: "ALR", op: opALR},
	0x6B: {mode: ModeImmediate, class: clsRead, name: "ARR", op: opARR},
	0x8B: {mode: ModeImmediate, class: clsRead, name: "XAA", op: opXAA},
	0xAB: {mode: ModeImmediate, class: clsRead, name: "LXA", op: opLXA},

	// --- illegal: unstable store forms, implemented for documented high-byte-AND behavior ---
	0x93: {mode: ModeIndirectY, class: clsWrite, name: "SHA", op: opSHA},
	0x9F: {mode: ModeAbsoluteY, class: clsWrite, name: "SHA", op: opSHA},
	0x9E: {mode: ModeAbsoluteY, class: clsWrite, name: "SHX", op: opSHX},
	0x9C: {mode: ModeAbsoluteX, class: clsWrite, name: "SHY", op: opSHY},
	0x9B: {mode: ModeAbsoluteY, class: clsWrite, name: "SHS", op: opSHS},

	// --- illegal NOPs (documented cycle counts preserved) ---
	0x1A: {class: clsImplied, name: "NOP", op: opNOP},
	0x3A: {class: clsImplied, name: "NOP", op: opNOP},
	0x5A: {class: clsImplied, name: "NOP", op: opNOP},
	0x7A: {class: clsImplied, name: "NOP", op: opNOP},
	0xDA: {class: clsImplied, name: "NOP", op: opNOP},
	0xFA: {class: clsImplied, name: "NOP", op: opNOP},
	0x80: {mode: ModeImmediate, class: clsRead, name: "NOP", op: opNOP},
	0x82: {mode: ModeImmediate, class: clsRead, name: "NOP", op: opNOP},
	0x89: {mode: ModeImmediate, class: clsRead, name: "NOP", op: opNOP},
	0xC2: {mode: ModeImmediate, class: clsRead, name: "NOP", op: opNOP},
	0xE2: {mode: ModeImmediate, class: clsRead, name: "NOP", op: opNOP},
	0x04: {mode: ModeZeroPage, class: clsRead, name: "NOP", op: opNOP},
	0x44: {mode: ModeZeroPage, class: clsRead, name: "NOP", op: opNOP},
	0x64: {mode: ModeZeroPage, class: clsRead, name: "NOP", op: opNOP},
	0x14: {mode: ModeZeroPageX, class: clsRead, name: "NOP", op: opNOP},
	0x34: {mode: ModeZeroPageX, class: clsRead, name: "NOP", op: opNOP},
	0x54: {mode: ModeZeroPageX, class: clsRead, name: "NOP", op: opNOP},
	0x74: {mode: ModeZeroPageX, class: clsRead, name: "NOP", op: opNOP},
	0xD4: {mode: ModeZeroPageX, class: clsRead, name: "NOP", op: opNOP},
	0xF4: {mode: ModeZeroPageX, class: clsRead, name: "NOP", op: opNOP},
	0x0C: {mode: ModeAbsolute, class: clsRead, name: "NOP", op: opNOP},
	0x1C: {mode: ModeAbsoluteX, class: clsRead, name: "NOP", op: opNOP},
	0x3C: {mode: ModeAbsoluteX, class: clsRead, name: "NOP", op: opNOP},
	0x5C: {mode: ModeAbsoluteX, class: clsRead, name: "NOP", op: opNOP},
	0x7C: {mode: ModeAbsoluteX, class: clsRead, name: "NOP", op: opNOP},
	0xDC: {mode: ModeAbsoluteX, class: clsRead, name: "NOP", op: opNOP},
	0xFC: {mode: ModeAbsoluteX, class: clsRead, name: "NOP", op: opNOP},

	// --- JAM opcodes (explicit, though init() already defaults everything) ---
	0x02: {class: clsJam, name: "JAM", op: opJAM},
	0x12: {class: clsJam, name: "JAM", op: opJAM},
	0x22: {class: clsJam, name: "JAM", op: opJAM},
	0x32: {class: clsJam, name: "JAM", op: opJAM},
	0x42: {class: clsJam, name: "JAM", op: opJAM},
	0x52: {class: clsJam, name: "JAM", op: opJAM},
	0x62: {class: clsJam, name: "JAM", op: opJAM},
	0x72: {class: clsJam, name: "JAM", op: opJAM},
	0x92: {class: clsJam, name: "JAM", op: opJAM},
	0xB2: {class: clsJam, name: "JAM", op: opJAM},
	0xD2: {class: clsJam, name: "JAM", op: opJAM},
	0xF2: {class: clsJam, name: "JAM", op: opJAM},
}
