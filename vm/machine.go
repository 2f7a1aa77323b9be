// Package vm implements the 16-bit register machine: a flat byte
// addressable memory, a 64-entry register file and the synchronous
// fetch/decode/execute loop driving both.
package vm

import (
	"github.com/pkg/errors"

	"github.com/hexvm/s16/alu"
	"github.com/hexvm/s16/arch"
)

// Event describes a single fetch as seen by a trace sink. Regs holds a
// snapshot of the low general purpose registers at fetch time.
type Event struct {
	Addr uint16    // Fetch address.
	Word uint16    // Raw instruction word.
	Regs [8]uint16 // r0..r7 at the time of the fetch.
}

// TraceFunc represents a callback handler for debug trace output.
// It is invoked once per Step, before the fetched word is acted on.
type TraceFunc func(Event)

// PortFunc receives words written to the diagnostic output port.
type PortFunc func(uint16)

// Machine implements the runtime. It exclusively owns its register file
// and memory; a single Step runs to completion with no partial state, so
// independent machines may run on separate goroutines with nothing shared.
type Machine struct {
	regs  RegisterFile
	mem   Memory
	instr Instruction // Decoded instruction data.
	trace TraceFunc   // Handler for debug trace output.
	port  PortFunc    // Handler for diagnostic port writes.
}

// New creates a machine with zeroed registers and memory.
// Either sink may be nil.
func New(trace TraceFunc, port PortFunc) *Machine {
	if trace == nil {
		trace = func(Event) { /* nop */ }
	}
	if port == nil {
		port = func(uint16) { /* nop */ }
	}

	return &Machine{
		mem:   make(Memory, MemoryCapacity),
		trace: trace,
		port:  port,
	}
}

// Memory returns the machine's memory bank.
func (m *Machine) Memory() Memory {
	return m.mem
}

// Registers returns the machine's register file.
func (m *Machine) Registers() *RegisterFile {
	return &m.regs
}

// Load copies a program image into memory starting at address 0.
// Registers and memory beyond the image are left untouched.
func (m *Machine) Load(program []byte) error {
	if len(program) > len(m.mem) {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes", len(program))
	}
	copy(m.mem, program)
	return nil
}

// Step fetches and executes a single instruction. It returns false when
// the fetched word is zero, leaving all machine state untouched. Decode
// failures are terminal and also stop execution. The trace sink sees
// every fetch, the halting one included.
func (m *Machine) Step() (bool, error) {
	addr := m.regs.IP()
	word := m.mem.U16(addr)

	var ev Event
	ev.Addr = addr
	ev.Word = word
	copy(ev.Regs[:], m.regs[:len(ev.Regs)])
	m.trace(ev)

	if word == 0 {
		return false, nil
	}

	if err := m.instr.Decode(m.mem, addr); err != nil {
		return false, err
	}

	m.exec(&m.instr)
	return true, nil
}

// Run calls Step until the machine halts or fails.
func (m *Machine) Run() error {
	for {
		more, err := m.Step()
		if !more || err != nil {
			return err
		}
	}
}

// exec executes a decoded instruction. Jumps advance the instruction
// pointer before the conditional redirect; every other class advances it
// after its effect, so a banked move into the instruction pointer is
// advanced past like any other destination.
func (m *Machine) exec(instr *Instruction) {
	regs := &m.regs

	switch instr.Class {
	case arch.ClassJumpAbs:
		var target uint16
		switch instr.Mode {
		case arch.RegisterDirect:
			target = regs[instr.Rd]
		case arch.RegisterIndirect:
			target = m.mem.U16(regs[instr.Rd])
		case arch.Immediate:
			target = instr.Imm
		}
		regs.AdvanceIP(instr.Size)
		if m.shouldJump(instr.Op) {
			regs.SetIP(target)
		}
		return

	case arch.ClassJumpRel:
		regs.AdvanceIP(instr.Size)
		if m.shouldJump(instr.Op) {
			regs.AdvanceIP(instr.Imm)
		}
		return

	case arch.ClassUnary:
		switch instr.Op {
		case arch.NOT:
			regs[instr.Rd] = ^regs[instr.Rd]
		case arch.NEG:
			regs[instr.Rd] = -regs[instr.Rd]
		case arch.PUSH:
			m.push(regs[instr.Rd])
		case arch.POP:
			regs[instr.Rd] = m.pop()
		case arch.INC:
			regs[instr.Rd]++
		case arch.DEC:
			regs[instr.Rd]--
		}

	case arch.ClassALU:
		c, f := alu.Op(instr.Op, regs[instr.Rd], regs[instr.Rs], regs.Flags())
		regs.SetFlags(f)
		regs[instr.Rd] = c

	case arch.ClassALUImm:
		c, f := alu.Op(instr.Op, regs[instr.Rd], instr.Imm, regs.Flags())
		regs.SetFlags(f)
		regs[instr.Rd] = c

	case arch.ClassLoad:
		regs[instr.Rd] = m.mem.U16(regs[instr.Rs] + regs[instr.Ro])

	case arch.ClassStore:
		m.storeWord(regs[instr.Rd]+regs[instr.Ro], regs[instr.Rs])

	case arch.ClassMovImm8, arch.ClassMovImm16:
		regs[instr.Rd] = instr.Imm

	case arch.ClassMovBank:
		regs[instr.Rd] = regs[instr.Rs]
	}

	regs.AdvanceIP(instr.Size)
}

// shouldJump evaluates a jump condition against the current flags.
func (m *Machine) shouldJump(cond int) bool {
	r := &m.regs

	switch cond {
	case arch.JA:
		return !r.Zero() && !r.Carry()
	case arch.JAE:
		return !r.Carry()
	case arch.JB:
		return r.Carry()
	case arch.JBE:
		return r.Carry() || r.Zero()
	case arch.JG:
		return !r.Zero() && r.Sign() == r.Overflow()
	case arch.JGE:
		return r.Sign() == r.Overflow()
	case arch.JL:
		return r.Sign() != r.Overflow()
	case arch.JLE:
		// The right-hand comparison is against the zero flag, not the
		// overflow flag.
		return !r.Zero() || r.Sign() != r.Zero()
	case arch.JE:
		return r.Zero()
	case arch.JNE:
		return !r.Zero()
	case arch.JO:
		return r.Overflow()
	case arch.JNO:
		return !r.Overflow()
	case arch.JMP:
		return true
	}
	return false
}

// push stores the given word below the stack pointer and updates RSP.
// The write goes through the port check like any other store.
func (m *Machine) push(v uint16) {
	sp := m.regs.SP() - 2
	m.regs.SetSP(sp)
	m.storeWord(sp, v)
}

// pop returns the word at the stack pointer and updates RSP.
// The read precedes the increment.
func (m *Machine) pop() uint16 {
	sp := m.regs.SP()
	v := m.mem.U16(sp)
	m.regs.SetSP(sp + 2)
	return v
}

// storeWord writes a word through the memory-mapped port check. Writes
// to the port address are surfaced to the port sink and never stored;
// memory at that address keeps its previous contents.
func (m *Machine) storeWord(addr, v uint16) {
	if addr == PortAddress {
		m.port(v)
		return
	}
	m.mem.SetU16(addr, v)
}
