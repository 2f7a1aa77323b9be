package vm

import (
	"github.com/hexvm/s16/alu"
	"github.com/hexvm/s16/arch"
)

// RegisterFile is the machine's register array. Ordinary instructions
// reach only the base bank r0..r15 through their 4-bit register fields;
// the reserved registers live at the named indices in package arch and
// can only be touched by the machine itself or by a banked move.
type RegisterFile [arch.RegisterCount]uint16

// IP returns the instruction pointer.
func (r *RegisterFile) IP() uint16 {
	return r[arch.RIP]
}

// SetIP sets the instruction pointer.
func (r *RegisterFile) SetIP(v uint16) {
	r[arch.RIP] = v
}

// AdvanceIP adds n to the instruction pointer, wrapping at 16 bits.
func (r *RegisterFile) AdvanceIP(n uint16) {
	r[arch.RIP] += n
}

// SP returns the stack pointer.
func (r *RegisterFile) SP() uint16 {
	return r[arch.RSP]
}

// SetSP sets the stack pointer.
func (r *RegisterFile) SetSP(v uint16) {
	r[arch.RSP] = v
}

// Flags returns the flags register.
func (r *RegisterFile) Flags() uint16 {
	return r[arch.RST]
}

// SetFlags replaces the flags register wholesale.
func (r *RegisterFile) SetFlags(v uint16) {
	r[arch.RST] = v
}

// Zero reports the state of the zero flag.
func (r *RegisterFile) Zero() bool { return r.Flags()&alu.ZF != 0 }

// Carry reports the state of the carry flag.
func (r *RegisterFile) Carry() bool { return r.Flags()&alu.CF != 0 }

// Overflow reports the state of the overflow flag.
func (r *RegisterFile) Overflow() bool { return r.Flags()&alu.OF != 0 }

// Sign reports the state of the sign flag.
func (r *RegisterFile) Sign() bool { return r.Flags()&alu.SF != 0 }

// AluError reports the state of the ALU error flag.
func (r *RegisterFile) AluError() bool { return r.Flags()&alu.EF != 0 }
