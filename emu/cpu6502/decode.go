package cpu6502

// AddrMode identifies how an opcode's operand address is computed.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
	ModeIndirect
	ModeRelative
)

// opClass selects which micro-op builder assembles the instruction's
// remaining cycles once the addressing mode's effective address (if any)
// is known.
type opClass int

const (
	clsRead opClass = iota
	clsWrite
	clsRMW
	clsImplied
	clsBranch
	clsJump
	clsJSR
	clsRTS
	clsRTI
	clsPush
	clsPull
	clsBRK
	clsJam
)

// operation applies an instruction's effect. For clsRead, v is the
// fetched operand (input only). For clsWrite, the function computes the
// byte to write into *v. For clsRMW, *v is transformed in place. For
// clsImplied, v is unused (pass nil).
type operation func(c *CPU, v *byte)

type instr struct {
	mode  AddrMode
	class opClass
	op    operation
	name  string
}

// decode is called once per instruction, immediately after the opcode
// byte has been fetched (PC already advanced past it). It builds the
// micro-op program for every remaining cycle of the instruction.
func (c *CPU) decode() {
	in := opcodeTable[c.opcode]

	switch in.class {
	case clsJam:
		c.jammed = true
		c.micro = nil
		return
	case clsBRK:
		c.beginSequence(true)
		return
	case clsImplied:
		c.buildImplied(in.op)
		return
	case clsBranch:
		c.buildBranch(in.op)
		return
	case clsJump:
		c.buildJump(in.mode)
		return
	case clsJSR:
		c.buildJSR()
		return
	case clsRTS:
		c.buildRTS()
		return
	case clsRTI:
		c.buildRTI()
		return
	case clsPush:
		c.buildPush(in.op)
		return
	case clsPull:
		c.buildPull(in.op)
		return
	}

	// Read/write/RMW all share the same address-resolution micro-ops;
	// only the final cycle(s) differ.
	addrOps, final := c.addressingMicroOps(in.mode, in.class)
	c.micro = append(addrOps, final(in.op)...)
}

// addressingMicroOps returns the address-resolution micro-ops for mode
// (fetching pointer/offset bytes, indexing, page-cross fixups) and a
// constructor for the class-specific tail (the read/write/RMW cycles
// that touch the now-known effective address).
func (c *CPU) addressingMicroOps(mode AddrMode, class opClass) ([]microOp, func(operation) []microOp) {
	switch mode {
	case ModeImmediate:
		return nil, func(op operation) []microOp {
			return []microOp{func(c *CPU) bool {
				c.operand = c.bus.Read(c.PC)
				c.PC++
				op(c, &c.operand)
				return true
			}}
		}

	case ModeZeroPage:
		return []microOp{
			func(c *CPU) bool {
				lo := c.bus.Read(c.PC)
				c.PC++
				c.addr = uint16(lo)
				return true
			},
		}, c.tailFor(class)

	case ModeZeroPageX:
		return zpIndexed(&c.X), c.tailFor(class)
	case ModeZeroPageY:
		return zpIndexed(&c.Y), c.tailFor(class)

	case ModeAbsolute:
		return []microOp{
			func(c *CPU) bool { c.ptr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
			func(c *CPU) bool { c.addr = uint16(c.bus.Read(c.PC))<<8 | c.ptr; c.PC++; return true },
		}, c.tailFor(class)

	case ModeAbsoluteX:
		return absIndexed(&c.X, class != clsRead), c.tailFor(class)
	case ModeAbsoluteY:
		return absIndexed(&c.Y, class != clsRead), c.tailFor(class)

	case ModeIndirectX:
		return []microOp{
			func(c *CPU) bool { c.ptr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
			func(c *CPU) bool { _ = c.bus.Read(c.ptr); c.ptr = uint16(byte(c.ptr) + c.X); return true },
			func(c *CPU) bool { c.addr = uint16(c.bus.Read(c.ptr)); return true },
			func(c *CPU) bool {
				c.addr |= uint16(c.bus.Read(uint16(byte(c.ptr+1)))) << 8
				return true
			},
		}, c.tailFor(class)

	case ModeIndirectY:
		always := class != clsRead
		return []microOp{
			func(c *CPU) bool { c.ptr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
			func(c *CPU) bool { c.addr = uint16(c.bus.Read(c.ptr)); return true },
			func(c *CPU) bool {
				hi := c.bus.Read(uint16(byte(c.ptr+1)))
				c.pageBase = hi
				lo := byte(c.addr) + c.Y
				cross := uint16(byte(c.addr)) + uint16(c.Y) > 0xFF
				c.addr = uint16(hi)<<8 | uint16(lo)
				if cross || always {
					fix := func(c *CPU) bool {
						_ = c.bus.Read(uint16(c.pageBase)<<8 | uint16(byte(c.addr)))
						if cross {
							c.addr = uint16(c.pageBase+1)<<8 | uint16(byte(c.addr))
						}
						return true
					}
					rest := append([]microOp{fix}, c.micro[c.microIndex:]...)
					c.micro = append(c.micro[:c.microIndex], rest...)
				}
				return true
			},
		}, c.tailFor(class)
	}
	return nil, c.tailFor(class)
}

func zpIndexed(reg *byte) []microOp {
	return []microOp{
		func(c *CPU) bool { c.addr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
		func(c *CPU) bool { _ = c.bus.Read(c.addr); c.addr = uint16(byte(c.addr) + *reg); return true },
	}
}

// absIndexed builds the two pointer-fetch cycles for ABS,X / ABS,Y and,
// for write/RMW (always) or a crossing read, inserts the page-fixup
// cycle ahead of the class-specific tail.
func absIndexed(reg *byte, alwaysExtra bool) []microOp {
	return []microOp{
		func(c *CPU) bool { c.ptr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
		func(c *CPU) bool {
			hi := c.bus.Read(c.PC)
			c.PC++
			lo := byte(c.ptr) + *reg
			cross := uint16(byte(c.ptr))+uint16(*reg) > 0xFF
			c.pageBase = hi
			c.addr = uint16(hi)<<8 | uint16(lo)
			if cross || alwaysExtra {
				fix := func(c *CPU) bool {
					_ = c.bus.Read(uint16(c.pageBase)<<8 | uint16(byte(c.addr)))
					if cross {
						c.addr = uint16(c.pageBase+1)<<8 | uint16(byte(c.addr))
					}
					return true
				}
				rest := append([]microOp{fix}, c.micro[c.microIndex:]...)
				c.micro = append(c.micro[:c.microIndex], rest...)
			}
			return true
		},
	}
}

// tailFor returns the class-specific final cycle(s) given the effective
// address is already in c.addr.
func (c *CPU) tailFor(class opClass) func(operation) []microOp {
	switch class {
	case clsRead:
		return func(op operation) []microOp {
			return []microOp{func(c *CPU) bool {
				c.operand = c.bus.Read(c.addr)
				op(c, &c.operand)
				return true
			}}
		}
	case clsWrite:
		return func(op operation) []microOp {
			return []microOp{func(c *CPU) bool {
				var v byte
				op(c, &v)
				c.bus.Write(c.addr, v)
				return true
			}}
		}
	case clsRMW:
		return func(op operation) []microOp {
			return []microOp{
				func(c *CPU) bool { c.operand = c.bus.Read(c.addr); return true },
				func(c *CPU) bool { c.bus.Write(c.addr, c.operand); return true }, // dummy write of old value
				func(c *CPU) bool {
					op(c, &c.operand)
					c.bus.Write(c.addr, c.operand)
					return true
				},
			}
		}
	}
	return func(operation) []microOp { return nil }
}

func (c *CPU) buildImplied(op operation) {
	c.micro = []microOp{func(c *CPU) bool {
		_ = c.bus.Read(c.PC) // dummy read of the next opcode byte, not consumed
		op(c, nil)
		return true
	}}
}

func (c *CPU) buildBranch(cond operation) {
	c.micro = []microOp{func(c *CPU) bool {
		offset := c.bus.Read(c.PC)
		c.PC++
		var take byte
		cond(c, &take)
		if take == 0 {
			return true
		}
		c.branchDelay = true
		base := c.PC
		target := base + uint16(int8(offset))
		c.addr = target
		c.micro = append(c.micro, func(c *CPU) bool {
			_ = c.bus.Read(c.PC)
			if byte(target>>8) != byte(base>>8) {
				c.micro = append(c.micro, func(c *CPU) bool {
					_ = c.bus.Read(uint16(byte(base>>8))<<8 | uint16(byte(target)))
					c.PC = target
					return true
				})
			} else {
				c.PC = target
			}
			return true
		})
		return true
	}}
}

func (c *CPU) buildJump(mode AddrMode) {
	if mode == ModeAbsolute {
		c.micro = []microOp{
			func(c *CPU) bool { c.ptr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
			func(c *CPU) bool {
				hi := c.bus.Read(c.PC)
				c.PC = uint16(hi)<<8 | c.ptr
				return true
			},
		}
		return
	}
	// Indirect: reproduce the page-wrap bug where a pointer ending in
	// 0xFF reads its high byte from the start of the same page.
	c.micro = []microOp{
		func(c *CPU) bool { c.ptr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
		func(c *CPU) bool { c.ptr |= uint16(c.bus.Read(c.PC)) << 8; c.PC++; return true },
		func(c *CPU) bool { c.addr = uint16(c.bus.Read(c.ptr)); return true },
		func(c *CPU) bool {
			hiAddr := (c.ptr & 0xFF00) | uint16(byte(c.ptr)+1)
			hi := c.bus.Read(hiAddr)
			c.PC = uint16(hi)<<8 | c.addr
			return true
		},
	}
}

func (c *CPU) buildJSR() {
	c.micro = []microOp{
		func(c *CPU) bool { c.ptr = uint16(c.bus.Read(c.PC)); c.PC++; return true },
		func(c *CPU) bool { _ = c.bus.Read(0x0100 | uint16(c.SP)); return true },
		func(c *CPU) bool { c.push(byte(c.PC >> 8)); return true },
		func(c *CPU) bool { c.push(byte(c.PC)); return true },
		func(c *CPU) bool {
			hi := c.bus.Read(c.PC)
			c.PC = uint16(hi)<<8 | c.ptr
			return true
		},
	}
}

func (c *CPU) buildRTS() {
	c.micro = []microOp{
		func(c *CPU) bool { _ = c.bus.Read(c.PC); return true },
		func(c *CPU) bool { _ = c.bus.Read(0x0100 | uint16(c.SP)); return true },
		func(c *CPU) bool { c.ptr = uint16(c.pull()); return true },
		func(c *CPU) bool { c.ptr |= uint16(c.pull()) << 8; return true },
		func(c *CPU) bool { _ = c.bus.Read(c.ptr); c.PC = c.ptr + 1; return true },
	}
}

func (c *CPU) buildRTI() {
	c.micro = []microOp{
		func(c *CPU) bool { _ = c.bus.Read(c.PC); return true },
		func(c *CPU) bool { _ = c.bus.Read(0x0100 | uint16(c.SP)); return true },
		func(c *CPU) bool { c.P = (c.pull() &^ FlagB) | Flag1; return true },
		func(c *CPU) bool { c.ptr = uint16(c.pull()); return true },
		func(c *CPU) bool { c.PC = uint16(c.pull())<<8 | c.ptr; return true },
	}
}

func (c *CPU) buildPush(op operation) {
	c.micro = []microOp{
		func(c *CPU) bool { _ = c.bus.Read(c.PC); return true },
		func(c *CPU) bool {
			var v byte
			op(c, &v)
			c.push(v)
			return true
		},
	}
}

func (c *CPU) buildPull(op operation) {
	c.micro = []microOp{
		func(c *CPU) bool { _ = c.bus.Read(c.PC); return true },
		func(c *CPU) bool { _ = c.bus.Read(0x0100 | uint16(c.SP)); return true },
		func(c *CPU) bool {
			v := c.pull()
			op(c, &v)
			return true
		},
	}
}
