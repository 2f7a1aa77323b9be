// Package arch defines the machine's instruction set along with
// some related helper functions.
package arch

// Instruction classes, keyed on the top 4 bits of an instruction word.
const (
	ClassALU      = 0x0 // Two-operand register form. Unary group when the op nibble is 0.
	ClassJumpAbs  = 0x1 // Conditional absolute jump.
	ClassALUImm   = 0x2 // Two-operand form with a 4-bit immediate.
	ClassJumpRel  = 0x3 // Conditional relative jump.
	ClassLoad     = 0x4 // Indexed load.
	ClassStore    = 0x5 // Indexed store.
	ClassMovImm8  = 0x8 // Load 8-bit immediate.
	ClassMovImm16 = 0x9 // Load 16-bit trailing immediate.
	ClassMovBank  = 0xb // Register move across register banks.

	// ClassUnary is produced by the decoder for the one-operand group,
	// which shares encoding nibble 0 with ClassALU.
	ClassUnary = 0x10
)

// ALU opcodes.
const (
	ADD = 1 + iota
	SUB
	OR
	NOR
	AND
	NAND
	XOR
	XNOR
	ADC
	SBB
	CMP
)

// One-operand selectors.
const (
	NOT = 1 + iota
	NEG
	PUSH
	POP
	INC
	DEC
)

// AluName returns the mnemonic for the given ALU opcode.
// Returns false if the opcode is not recognized.
func AluName(opcode int) (string, bool) {
	switch opcode {
	case ADD:
		return "ADD", true
	case SUB:
		return "SUB", true
	case OR:
		return "OR", true
	case NOR:
		return "NOR", true
	case AND:
		return "AND", true
	case NAND:
		return "NAND", true
	case XOR:
		return "XOR", true
	case XNOR:
		return "XNOR", true
	case ADC:
		return "ADC", true
	case SBB:
		return "SBB", true
	case CMP:
		return "CMP", true
	}
	return "", false
}

// UnaryName returns the mnemonic for the given one-operand selector.
// Returns false if the selector is not recognized.
func UnaryName(selector int) (string, bool) {
	switch selector {
	case NOT:
		return "NOT", true
	case NEG:
		return "NEG", true
	case PUSH:
		return "PUSH", true
	case POP:
		return "POP", true
	case INC:
		return "INC", true
	case DEC:
		return "DEC", true
	}
	return "", false
}
