package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hexvm/s16/arch"
)

// Config defines program configuration.
type Config struct {
	Image      string         // Path to the image file to load.
	PrintTrace bool           // Print instruction trace data?
	Presets    map[int]uint16 // Initial register values, by register index.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config

	flag.Usage = func() {
		fmt.Printf("%s [options] <image file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print a per-step execution trace to stderr.")
	set := flag.String("set", "", "Comma separated initial register values, e.g.: r1=11,rsp=0x8000")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	presets, err := parsePresets(*set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c.Presets = presets
	c.Image = flag.Arg(0)
	return &c
}

// parsePresets parses a comma separated list of register assignments of
// the form r1=11. Values may use any base strconv.ParseUint recognizes.
func parsePresets(s string) (map[int]uint16, error) {
	presets := make(map[int]uint16)
	if s == "" {
		return presets, nil
	}

	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, errors.Errorf("malformed register assignment %q", part)
		}
		if !arch.IsRegister(name) {
			return nil, errors.Errorf("unknown register %q", name)
		}

		v, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "register %s", name)
		}

		presets[arch.RegisterIndex(name)] = uint16(v)
	}

	return presets, nil
}
