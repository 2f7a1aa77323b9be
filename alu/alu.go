// Package alu implements the machine's arithmetic logic unit as a pure
// function from an opcode, two 16-bit operands and the incoming flags
// word to a result and a fresh flags word.
package alu

import "github.com/hexvm/s16/arch"

// Flag bits of the status register.
const (
	ZF uint16 = 0x0001 // Zero.
	CF uint16 = 0x0002 // Carry / borrow.
	OF uint16 = 0x0004 // Overflow.
	SF uint16 = 0x0008 // Sign.
	EF uint16 = 0x0040 // ALU error: an unknown opcode was dispatched.
)

// Op applies the given ALU operation to a and b and returns the result
// along with a recomputed flags word. Only the carry bit of the incoming
// flags is consulted, and only by ADC and SBB.
//
// An unknown opcode yields a zero result with just EF set. This is a soft
// failure: execution continues and callers that care must inspect the
// flags register. It is deliberately weaker than the machine's fatal
// unsupported-instruction error.
func Op(op int, a, b, incoming uint16) (uint16, uint16) {
	switch op {
	case arch.ADD:
		return add(a, b)
	case arch.SUB:
		return sub(a, b)
	case arch.OR:
		c := a | b
		return c, flags(c, false)
	case arch.NOR:
		c := ^(a | b)
		return c, flags(c, false)
	case arch.AND:
		c := a & b
		return c, flags(c, false)
	case arch.NAND:
		c := ^(a & b)
		return c, flags(c, false)
	case arch.XOR:
		c := a ^ b
		return c, flags(c, false)
	case arch.XNOR:
		c := ^(a ^ b)
		return c, flags(c, false)
	case arch.ADC:
		// The carry-in is folded into a as a separate wrapping add whose
		// own carry-out is discarded; result and flags come from the
		// second add only.
		return add(a+carry(incoming), b)
	case arch.SBB:
		// Mirror of ADC: the borrow-in is taken out of a first.
		return sub(a-carry(incoming), b)
	case arch.CMP:
		// Subtraction flags, but the destination keeps its value.
		_, f := sub(a, b)
		return a, f
	}
	return 0, EF
}

func add(a, b uint16) (uint16, uint16) {
	c := a + b
	return c, flags(c, c < a)
}

func sub(a, b uint16) (uint16, uint16) {
	return a - b, flags(a-b, a < b)
}

// flags computes the full flags word from a raw result and the
// carry-out/borrow-out of the operation that produced it. The overflow
// bit derives from the carry and sign bits alone, not from signed
// operand analysis.
func flags(c uint16, cf bool) uint16 {
	var f uint16
	if c == 0 {
		f |= ZF
	}
	if cf {
		f |= CF
	}
	if c&0x8000 != 0 {
		f |= SF
		if !cf {
			f |= OF
		}
	}
	return f
}

// carry extracts the incoming carry bit as 0 or 1.
func carry(f uint16) uint16 {
	return (f & CF) >> 1
}
