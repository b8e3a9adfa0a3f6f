// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/rvasm/assembler"
	"github.com/ezrec/rvasm/config"
	"github.com/ezrec/rvasm/diag"
	"github.com/ezrec/rvasm/memory"
)

func main() {
	var configFile string
	var basicOnly bool
	var warningsAreErrors bool
	var errorLimit int
	var startAtMain bool
	var symbols bool
	var dump bool
	var layout string
	var verbose bool

	flag.StringVar(&configFile, "c", "", ".toml configuration file")
	flag.BoolVar(&basicOnly, "p", false, "Disable pseudo-instructions")
	flag.BoolVar(&warningsAreErrors, "W", false, "Treat warnings as errors")
	flag.IntVar(&errorLimit, "e", diag.DEFAULT_LIMIT, "Error limit, 0 for none")
	flag.BoolVar(&startAtMain, "m", false, "Start execution at the global 'main'")
	flag.BoolVar(&symbols, "s", false, "Print the symbol tables")
	flag.BoolVar(&dump, "d", false, "Dump the data segment")
	flag.StringVar(&layout, "l", "", "Memory layout: "+strings.Join(memory.LayoutNames(), ", "))
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("%v: No source files", os.Args[0])
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	// Flags given on the command line override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "p":
			cfg.Assembler.BasicOnly = basicOnly
		case "W":
			cfg.Assembler.WarningsAreErrors = warningsAreErrors
		case "e":
			cfg.Assembler.ErrorLimit = errorLimit
		case "m":
			cfg.Assembler.StartAtMain = startAtMain
		case "v":
			cfg.Assembler.Verbose = verbose
		case "l":
			ly, ok := memory.LayoutByName(layout)
			if !ok {
				log.Fatalf("%v: %v", layout, config.ErrLayoutName)
			}
			cfg.Memory.Name = layout
			cfg.Memory.Layout = ly
		}
	})

	asm := &assembler.Assembler{}
	cfg.Apply(asm)

	prog, err := asm.AssembleFiles(os.DirFS("."), flag.Args()...)

	ouf := bufio.NewWriter(os.Stdout)
	defer ouf.Flush()

	var dl *diag.List
	if errors.As(err, &dl) || err == nil {
		for msg := range asm.Diagnostics.Select(diag.SEVERITY_WARNING) {
			log.Print(msg)
		}
	}
	if err != nil {
		if dl != nil {
			for msg := range dl.Select(diag.SEVERITY_ERROR) {
				log.Print(msg)
			}
			log.Fatalf("%v: %d errors", os.Args[0], dl.ErrorCount())
		}
		log.Fatal(err)
	}

	err = prog.WriteListing(ouf)
	if err == nil && symbols {
		err = prog.WriteSymbols(ouf)
	}
	if err == nil && dump {
		err = dumpData(ouf, prog)
	}
	if err == nil {
		_, err = fmt.Fprintf(ouf, "entry: 0x%08x\n", prog.Entry)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// dumpData writes the data segment words that were written to.
func dumpData(ouf *bufio.Writer, prog *assembler.Program) (err error) {
	mem, ok := prog.Store.(*memory.Memory)
	if !ok {
		return
	}

	for address, word := range mem.Words(memory.SEGMENT_DATA) {
		_, err = fmt.Fprintf(ouf, "0x%08x: 0x%08x\n", address, word)
		if err != nil {
			return
		}
	}

	return
}
