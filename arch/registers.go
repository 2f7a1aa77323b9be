package arch

import (
	"fmt"
	"strings"
)

// Register file layout. Instruction register fields are 4 bits wide and
// reach only the base bank r0..r15; the banked move reaches all
// RegisterCount registers through its 2-bit bank fields. The reserved
// registers sit in bank 2, out of range of ordinary instructions.
const (
	BankSize      = 16
	RegisterCount = 4 * BankSize

	RIP = 32 // Instruction pointer index.
	RST = 33 // Flags/status register index.
	RSP = 34 // Stack pointer index.
)

// IsRegister returns true if the given name represents a known register.
func IsRegister(name string) bool {
	return RegisterIndex(name) > -1
}

// RegisterIndex returns the index for the given register.
// Returns -1 if the name is not recognized.
func RegisterIndex(name string) int {
	switch strings.ToLower(name) {
	case "rip":
		return RIP
	case "rst":
		return RST
	case "rsp":
		return RSP
	}

	var n int
	if _, err := fmt.Sscanf(strings.ToLower(name), "r%d", &n); err != nil {
		return -1
	}
	if n < 0 || n >= RegisterCount {
		return -1
	}
	return n
}

// RegisterName returns the name associated with the given register index.
// Returns "" if the index is not recognized.
func RegisterName(n int) string {
	switch n {
	case RIP:
		return "RIP"
	case RST:
		return "RST"
	case RSP:
		return "RSP"
	}
	if n < 0 || n >= RegisterCount {
		return ""
	}
	return fmt.Sprintf("R%d", n)
}
