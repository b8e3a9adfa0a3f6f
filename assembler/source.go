package assembler

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/rvasm/diag"
	"github.com/ezrec/rvasm/directive"
	"github.com/ezrec/rvasm/token"
)

// Line is one loaded source line.
type Line struct {
	File   string     // File the line came from, which differs for included lines.
	Number int        // 1-based line number within File.
	Raw    string     // Text as read.
	Text   string     // Text after .eqv and $(...) substitution.
	Tokens token.List // Tokens of Text, nil if it did not tokenize.
}

// Source is a loaded source file. Lines of included files are spliced in
// after their .include line.
type Source struct {
	Name   string
	Lines  []Line
	Errors []diag.Message // Problems found while loading.
}

// loader holds the state of loading one source file.
type loader struct {
	asm       *Assembler
	src       *Source
	fsys      fs.FS
	tokenizer *token.Tokenizer
	equates   map[string]string
	including []string
}

func (ld *loader) addError(file string, lineno int, column int, err error) {
	ld.src.Errors = append(ld.src.Errors, diag.Message{
		Severity: diag.SEVERITY_ERROR,
		File:     file,
		Line:     lineno,
		Column:   column,
		Err:      err,
	})
}

// Parse loads a source file. Only read errors are returned; problems in
// the text are kept in Source.Errors and reported by Assemble.
func (asm *Assembler) Parse(name string, input io.Reader) (src *Source, err error) {
	return asm.parse(name, input, asm.Include)
}

func (asm *Assembler) parse(name string, input io.Reader, fsys fs.FS) (src *Source, err error) {
	src = &Source{Name: name}
	ld := &loader{
		asm:       asm,
		src:       src,
		fsys:      fsys,
		tokenizer: asm.tokenizer(),
		equates:   maps.Clone(asm.Equates),
	}
	if ld.equates == nil {
		ld.equates = map[string]string{}
	}

	err = ld.load(name, input)
	return
}

// substitute replaces the .eqv names among the tokens of text.
func (ld *loader) substitute(text string, tl token.List) (line string, changed bool) {
	line = text
	for n := len(tl) - 1; n >= 0; n-- {
		tok := tl[n]
		if tok.Type != token.IDENTIFIER {
			continue
		}
		value, ok := ld.equates[tok.Text]
		if !ok {
			continue
		}
		start := tok.Column - 1
		end := start + len(tok.Text)
		line = line[:start] + value + line[end:]
		changed = true
	}
	return
}

// equate records a .eqv definition.
func (ld *loader) equate(text string, tl token.List) (err error) {
	if len(tl) < 3 || tl[1].Type != token.IDENTIFIER {
		err = ErrEquate
		return
	}

	name := tl[1].Text
	value := strings.TrimSpace(text[tl[2].Column-1:])
	if tl[len(tl)-1].Type == token.COMMENT {
		value = strings.TrimSpace(text[tl[2].Column-1 : tl[len(tl)-1].Column-1])
	}

	old, ok := ld.equates[name]
	if ok && old != value {
		err = &ErrName{Name: name, Err: ErrEquate}
		return
	}

	ld.equates[name] = value
	return
}

// include splices the lines of an included file.
func (ld *loader) include(tl token.List) (err error) {
	if len(tl) != 2 || tl[1].Type != token.QUOTED_STRING {
		err = ErrInclude
		return
	}

	name, err := token.Unescape(tl[1].Text[1 : len(tl[1].Text)-1])
	if err != nil {
		return
	}

	if ld.fsys == nil || slices.Contains(ld.including, name) {
		err = &ErrName{Name: name, Err: ErrInclude}
		return
	}

	inf, err := ld.fsys.Open(name)
	if err != nil {
		err = &ErrName{Name: name, Err: ErrInclude}
		return
	}
	defer inf.Close()

	if ld.asm.Verbose {
		log.Printf("include %v", name)
	}

	return ld.load(name, inf)
}

// load reads the lines of one file.
func (ld *loader) load(name string, input io.Reader) (err error) {
	ld.including = append(ld.including, name)
	defer func() { ld.including = ld.including[:len(ld.including)-1] }()

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		raw := scanner.Text()
		lineno++

		line := Line{File: name, Number: lineno, Raw: raw, Text: raw}

		text, err := evaluate(raw, ld.equates)
		if err != nil {
			ld.addError(name, lineno, 0, err)
		}

		tl, err := ld.tokenizer.Tokenize(name, lineno, text)
		if err != nil {
			ld.addError(name, lineno, columnOf(err), err)
			ld.src.Lines = append(ld.src.Lines, line)
			continue
		}

		first := tl.WithoutComment()
		isDirective := func(d directive.Directive) bool {
			return len(first) > 0 && first[0].Type == token.DIRECTIVE && strings.EqualFold(first[0].Text, d.String())
		}

		switch {
		case isDirective(directive.EQV):
			err = ld.equate(text, tl)
			if err != nil {
				ld.addError(name, lineno, first[0].Column, err)
			}
		case isDirective(directive.INCLUDE):
			line.Text, line.Tokens = text, tl
			ld.src.Lines = append(ld.src.Lines, line)
			err = ld.include(first)
			if err != nil {
				ld.addError(name, lineno, first[0].Column, err)
			}
			continue
		default:
			var changed bool
			text, changed = ld.substitute(text, tl)
			if changed {
				tl, err = ld.tokenizer.Tokenize(name, lineno, text)
				if err != nil {
					ld.addError(name, lineno, columnOf(err), err)
					ld.src.Lines = append(ld.src.Lines, line)
					continue
				}
			}
		}

		line.Text, line.Tokens = text, tl
		ld.src.Lines = append(ld.src.Lines, line)
	}

	err = scanner.Err()
	return
}

// columnOf returns the column of a tokenizer error.
func columnOf(err error) int {
	var et *token.ErrToken
	if errors.As(err, &et) {
		return et.Column
	}
	return 0
}
