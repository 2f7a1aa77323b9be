package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexvm/s16/arch"
)

// decode loads the given bytes at address 0 of an otherwise zeroed
// memory bank and decodes the instruction found there.
func decode(t *testing.T, image ...byte) (*Instruction, error) {
	t.Helper()

	mem := make(Memory, MemoryCapacity)
	copy(mem, image)

	var i Instruction
	err := i.Decode(mem, 0)
	return &i, err
}

func TestDecode(t *testing.T) {
	table := []struct {
		name  string
		image []byte
		want  Instruction
	}{
		{
			"alu register",
			[]byte{0x01, 0x21},
			Instruction{Word: 0x0121, Class: arch.ClassALU, Op: arch.ADD, Rd: 2, Rs: 1, Size: 2},
		},
		{
			"unary",
			[]byte{0x00, 0x51},
			Instruction{Word: 0x0051, Class: arch.ClassUnary, Op: arch.INC, Rd: 1, Size: 2},
		},
		{
			"jump absolute register direct",
			[]byte{0x1d, 0x10},
			Instruction{Word: 0x1d10, Class: arch.ClassJumpAbs, Op: arch.JMP, Rd: 1, Mode: arch.RegisterDirect, Size: 2},
		},
		{
			"jump absolute register indirect",
			[]byte{0x19, 0x11},
			Instruction{Word: 0x1911, Class: arch.ClassJumpAbs, Op: arch.JE, Rd: 1, Mode: arch.RegisterIndirect, Size: 2},
		},
		{
			"jump absolute immediate",
			[]byte{0x1d, 0x02, 0x12, 0x34},
			Instruction{Word: 0x1d02, Class: arch.ClassJumpAbs, Op: arch.JMP, Mode: arch.Immediate, Imm: 0x1234, Size: 4},
		},
		{
			"alu immediate",
			[]byte{0x2b, 0x14},
			Instruction{Word: 0x2b14, Class: arch.ClassALUImm, Op: arch.CMP, Rd: 1, Imm: 4, Size: 2},
		},
		{
			"jump relative forward",
			[]byte{0x3d, 0x02},
			Instruction{Word: 0x3d02, Class: arch.ClassJumpRel, Op: arch.JMP, Imm: 2, Size: 2},
		},
		{
			"jump relative backward",
			[]byte{0x39, 0xf2},
			Instruction{Word: 0x39f2, Class: arch.ClassJumpRel, Op: arch.JE, Imm: 0xfff2, Size: 2},
		},
		{
			"indexed load",
			[]byte{0x41, 0x23},
			Instruction{Word: 0x4123, Class: arch.ClassLoad, Rd: 1, Rs: 2, Ro: 3, Size: 2},
		},
		{
			"indexed store",
			[]byte{0x51, 0x23},
			Instruction{Word: 0x5123, Class: arch.ClassStore, Rd: 1, Rs: 2, Ro: 3, Size: 2},
		},
		{
			"mov imm8",
			[]byte{0x81, 0xff},
			Instruction{Word: 0x81ff, Class: arch.ClassMovImm8, Rd: 1, Imm: 0xff, Size: 2},
		},
		{
			"mov imm16",
			[]byte{0x91, 0x00, 0xab, 0xcd},
			Instruction{Word: 0x9100, Class: arch.ClassMovImm16, Rd: 1, Imm: 0xabcd, Size: 4},
		},
		{
			"mov banked",
			[]byte{0xb1, 0x26},
			Instruction{Word: 0xb126, Class: arch.ClassMovBank, Rd: 1 + arch.BankSize, Rs: 2 + 2*arch.BankSize, Size: 2},
		},
	}

	for _, entry := range table {
		i, err := decode(t, entry.image...)
		require.NoError(t, err, entry.name)
		assert.Equal(t, entry.want, *i, entry.name)
	}
}

func TestInstructionString(t *testing.T) {
	table := []struct {
		image []byte
		want  string
	}{
		{[]byte{0x01, 0x21}, "ADD R2, R1"},
		{[]byte{0x0c, 0x15}, "ALU(12) R1, R5"},
		{[]byte{0x00, 0x51}, "INC R1"},
		{[]byte{0x00, 0x31}, "PUSH R1"},
		{[]byte{0x2b, 0x14}, "CMP R1, 4"},
		{[]byte{0x1d, 0x10}, "JMP R1"},
		{[]byte{0x19, 0x11}, "JE [R1]"},
		{[]byte{0x1d, 0x02, 0x00, 0x08}, "JMP 0x0008"},
		{[]byte{0x3d, 0x02}, "JMP +2"},
		{[]byte{0x39, 0xf2}, "JE -14"},
		{[]byte{0x30, 0x02}, "J(0) +2"},
		{[]byte{0x41, 0x23}, "LOAD R1, [R2+R3]"},
		{[]byte{0x51, 0x23}, "STORE [R1+R3], R2"},
		{[]byte{0x81, 0xff}, "MOV R1, 255"},
		{[]byte{0x91, 0x00, 0xab, 0xcd}, "MOV R1, 43981"},
		{[]byte{0xb0, 0x18}, "MOV RIP, R1"},
		{[]byte{0xb1, 0x26}, "MOV R17, RSP"},
	}

	for _, entry := range table {
		i, err := decode(t, entry.image...)
		require.NoError(t, err, entry.want)
		assert.Equal(t, entry.want, i.String())
	}
}

func TestDecodeUnsupported(t *testing.T) {
	table := []struct {
		name  string
		image []byte
	}{
		{"reserved class 6", []byte{0x60, 0x00}},
		{"reserved class 7", []byte{0x7f, 0xff}},
		{"reserved class a", []byte{0xa0, 0x00}},
		{"reserved class c", []byte{0xc0, 0x00}},
		{"reserved class f", []byte{0xff, 0xff}},
		{"unary selector 7", []byte{0x00, 0x71}},
		{"unary selector 15", []byte{0x00, 0xf1}},
		{"jump address mode 3", []byte{0x1d, 0x03}},
		{"jump address mode 15", []byte{0x1d, 0x0f}},
	}

	for _, entry := range table {
		_, err := decode(t, entry.image...)
		require.Error(t, err, entry.name)

		var e *Error
		require.ErrorAs(t, err, &e, entry.name)
		assert.Equal(t, uint16(0), e.Addr, entry.name)
	}
}
