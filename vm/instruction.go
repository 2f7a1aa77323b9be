package vm

import (
	"fmt"

	"github.com/hexvm/s16/arch"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	Addr  uint16           // Fetch address.
	Word  uint16           // Raw instruction word.
	Class int              // One of the arch.Class* constants.
	Op    int              // ALU opcode, one-operand selector or jump condition.
	Mode  arch.AddressMode // Target address mode, absolute jumps only.
	Rd    int              // Destination register index.
	Rs    int              // Source register index.
	Ro    int              // Offset register index, indexed load/store only.
	Imm   uint16           // Immediate operand, extended as the class requires.
	Size  uint16           // Encoded size in bytes.
}

// Decode decodes the instruction at the given address. It fails when the
// class nibble, a one-operand selector or a jump address mode has no
// defined behavior; these failures are terminal for the machine.
func (i *Instruction) Decode(m Memory, addr uint16) error {
	word := m.U16(addr)
	*i = Instruction{Addr: addr, Word: word, Size: 2}

	switch int(word >> 12) {
	case arch.ClassALU:
		i.Op = int(word>>8) & 0xf
		if i.Op == 0 {
			i.Class = arch.ClassUnary
			i.Op = int(word>>4) & 0xf
			i.Rd = int(word) & 0xf
			if _, ok := arch.UnaryName(i.Op); !ok {
				return NewError(i, "unsupported one-operand selector %d", i.Op)
			}
			return nil
		}
		i.Class = arch.ClassALU
		i.Rd = int(word>>4) & 0xf
		i.Rs = int(word) & 0xf

	case arch.ClassJumpAbs:
		i.Class = arch.ClassJumpAbs
		i.Op = int(word>>8) & 0xf
		i.Rd = int(word>>4) & 0xf
		i.Mode = arch.AddressMode(word & 0xf)

		switch i.Mode {
		case arch.RegisterDirect, arch.RegisterIndirect:
		case arch.Immediate:
			i.Imm = m.U16(addr + 2)
			i.Size = 4
		default:
			return NewError(i, "unsupported jump address mode %d", i.Mode)
		}

	case arch.ClassALUImm:
		i.Class = arch.ClassALUImm
		i.Op = int(word>>8) & 0xf
		i.Rd = int(word>>4) & 0xf
		i.Imm = word & 0xf

	case arch.ClassJumpRel:
		i.Class = arch.ClassJumpRel
		i.Op = int(word>>8) & 0xf
		// Sign-extended offset, relative to the next instruction.
		i.Imm = uint16(int8(word))

	case arch.ClassLoad, arch.ClassStore:
		i.Class = int(word >> 12)
		i.Rd = int(word>>8) & 0xf
		i.Rs = int(word>>4) & 0xf
		i.Ro = int(word) & 0xf

	case arch.ClassMovImm8:
		i.Class = arch.ClassMovImm8
		i.Rd = int(word>>8) & 0xf
		i.Imm = word & 0xff

	case arch.ClassMovImm16:
		i.Class = arch.ClassMovImm16
		i.Rd = int(word>>8) & 0xf
		i.Imm = m.U16(addr + 2)
		i.Size = 4

	case arch.ClassMovBank:
		i.Class = arch.ClassMovBank
		i.Rd = int(word>>8)&0xf + arch.BankSize*(int(word>>2)&0x3)
		i.Rs = int(word>>4)&0xf + arch.BankSize*(int(word)&0x3)

	default:
		return NewError(i, "unsupported instruction class %x", word>>12)
	}

	return nil
}

// String returns an assembly style rendering of the instruction.
func (i *Instruction) String() string {
	switch i.Class {
	case arch.ClassUnary:
		name, _ := arch.UnaryName(i.Op)
		return fmt.Sprintf("%s %s", name, arch.RegisterName(i.Rd))

	case arch.ClassALU:
		return fmt.Sprintf("%s %s, %s", aluName(i.Op), arch.RegisterName(i.Rd), arch.RegisterName(i.Rs))

	case arch.ClassALUImm:
		return fmt.Sprintf("%s %s, %d", aluName(i.Op), arch.RegisterName(i.Rd), i.Imm)

	case arch.ClassJumpAbs:
		switch i.Mode {
		case arch.RegisterDirect:
			return fmt.Sprintf("%s %s", condName(i.Op), arch.RegisterName(i.Rd))
		case arch.RegisterIndirect:
			return fmt.Sprintf("%s [%s]", condName(i.Op), arch.RegisterName(i.Rd))
		default:
			return fmt.Sprintf("%s 0x%04x", condName(i.Op), i.Imm)
		}

	case arch.ClassJumpRel:
		return fmt.Sprintf("%s %+d", condName(i.Op), int16(i.Imm))

	case arch.ClassLoad:
		return fmt.Sprintf("LOAD %s, [%s+%s]", arch.RegisterName(i.Rd), arch.RegisterName(i.Rs), arch.RegisterName(i.Ro))

	case arch.ClassStore:
		return fmt.Sprintf("STORE [%s+%s], %s", arch.RegisterName(i.Rd), arch.RegisterName(i.Ro), arch.RegisterName(i.Rs))

	case arch.ClassMovImm8, arch.ClassMovImm16:
		return fmt.Sprintf("MOV %s, %d", arch.RegisterName(i.Rd), i.Imm)

	case arch.ClassMovBank:
		return fmt.Sprintf("MOV %s, %s", arch.RegisterName(i.Rd), arch.RegisterName(i.Rs))
	}

	return fmt.Sprintf("0x%04x", i.Word)
}

// aluName never fails: ALU opcodes outside the defined range decode fine
// and fail softly at execution, so they still need a rendering.
func aluName(op int) string {
	if name, ok := arch.AluName(op); ok {
		return name
	}
	return fmt.Sprintf("ALU(%d)", op)
}

// condName never fails: condition 0 and conditions above JMP are valid
// encodings that simply never jump.
func condName(cond int) string {
	if name, ok := arch.CondName(cond); ok {
		return name
	}
	return fmt.Sprintf("J(%d)", cond)
}
