package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/hexvm/s16/vm"
)

func main() {
	if err := run(parseArgs()); err != nil {
		log.Fatal(err)
	}
}

func run(config *Config) error {
	image, err := os.ReadFile(config.Image)
	if err != nil {
		return errors.Wrapf(err, "failed to read image %q", config.Image)
	}

	var machine *vm.Machine
	var trace vm.TraceFunc
	if config.PrintTrace {
		trace = func(ev vm.Event) {
			printTrace(machine.Memory(), ev)
		}
	}

	machine = vm.New(trace, printPort)
	if err := machine.Load(image); err != nil {
		return err
	}

	regs := machine.Registers()
	for index, value := range config.Presets {
		regs[index] = value
	}

	return machine.Run()
}

// printTrace writes one line per fetch to stderr: the fetch address, the
// raw instruction word in binary, its mnemonic rendering and the low
// register bank.
func printTrace(mem vm.Memory, ev vm.Event) {
	var text string
	if ev.Word != 0 {
		var instr vm.Instruction
		if err := instr.Decode(mem, ev.Addr); err == nil {
			text = instr.String()
		}
	}

	fmt.Fprintf(os.Stderr, "%04x: %016b  %-20s %04x\n", ev.Addr, ev.Word, text, ev.Regs)
}

// printPort writes diagnostic port output to stdout.
func printPort(v uint16) {
	fmt.Printf("%#x\n", v)
}
