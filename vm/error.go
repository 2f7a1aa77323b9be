package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrProgramTooLarge is returned by Load when the given program image
// does not fit in memory.
var ErrProgramTooLarge = errors.New("program image exceeds memory capacity")

// Error defines a runtime error.
type Error struct {
	*Instruction
	Msg string
}

// NewError creates a new, formatted error message for the given instruction.
func NewError(instr *Instruction, f string, argv ...interface{}) *Error {
	return &Error{
		Instruction: instr,
		Msg:         fmt.Sprintf(f, argv...),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04x: %s", e.Addr, e.Msg)
}
