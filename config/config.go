// Package config loads assembler options and the memory layout from
// TOML files.
//
//	[assembler]
//	error_limit = 200
//	basic_only = false
//
//	[assembler.equates]
//	STACK_SIZE = "0x1000"
//
//	[memory]
//	layout = "compact-data"
//	text_base = 0x0000
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/rvasm/assembler"
	"github.com/ezrec/rvasm/memory"
)

// Memory is a named layout preset, with individual addresses
// overridden.
type Memory struct {
	Name string `toml:"layout"`
	memory.Layout
}

// Config is the contents of a configuration file.
type Config struct {
	Assembler assembler.Options `toml:"assembler"`
	Memory    Memory            `toml:"memory"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Assembler: assembler.DefaultOptions(),
		Memory: Memory{
			Name:   "default",
			Layout: memory.DefaultLayout,
		},
	}
}

// Decode reads a configuration on top of the defaults. Keys absent from
// the input keep their default value.
func Decode(input io.Reader) (cfg Config, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	cfg = Default()

	// The layout preset is the base the other [memory] keys override.
	var preset struct {
		Memory struct {
			Name string `toml:"layout"`
		} `toml:"memory"`
	}
	_, err = toml.Decode(string(text), &preset)
	if err != nil {
		return
	}

	if name := preset.Memory.Name; len(name) != 0 {
		layout, ok := memory.LayoutByName(name)
		if !ok {
			err = &ErrConfig{Key: "memory.layout", Err: ErrLayoutName}
			return
		}
		cfg.Memory.Layout = layout
	}

	md, err := toml.Decode(string(text), &cfg)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = &ErrConfig{Key: strings.Join(keys, ", "), Err: ErrUnknownKey}
		return
	}

	err = cfg.Memory.Validate()
	if err != nil {
		err = &ErrConfig{Key: "memory", Err: err}
		return
	}

	return
}

// Load reads a configuration file.
func Load(path string) (cfg Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Decode(inf)
}

// Apply configures an assembler.
func (cfg *Config) Apply(asm *assembler.Assembler) {
	asm.Options = cfg.Assembler
	asm.Layout = cfg.Memory.Layout
}
