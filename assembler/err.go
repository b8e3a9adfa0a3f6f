package assembler

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	// Source loading errors
	ErrInclude    = errors.New(f(".include failed"))
	ErrEquate     = errors.New(f(".eqv invalid"))
	ErrExpression = errors.New(f("expression invalid"))

	// Directive errors
	ErrDirectiveUnknown  = errors.New(f("directive unknown, ignored"))
	ErrDirectiveSyntax   = errors.New(f("directive operands invalid"))
	ErrSegment           = errors.New(f("not permitted in this segment"))
	ErrValueRange        = errors.New(f("value out of range, truncated"))
	ErrValueInvalid      = errors.New(f("value invalid"))
	ErrTextAlignment     = errors.New(f("text alignment below 4 bytes, rounded up to 4"))
	ErrMacroUnterminated = errors.New(f(".macro without .end_macro"))
	ErrMacroLoop         = errors.New(f("macro expansion loop detected"))
	ErrMacroNotFound     = errors.New(f("no macro matches the arguments"))

	// Symbol errors
	ErrUndeclaredGlobal     = errors.New(f("global symbol not defined in this file"))
	ErrDuplicateGlobal      = errors.New(f("global symbol already defined in another file"))
	ErrDuplicateTextAddress = errors.New(f("duplicate text segment address"))

	// Instruction errors
	ErrExtendedDisabled = errors.New(f("pseudo-instructions are disabled"))
	ErrBranchRange      = errors.New(f("branch target out of range"))
)

// ErrName attaches the offending name to an error.
type ErrName struct {
	Name string
	Err  error
}

func (err *ErrName) Error() string {
	return f("'%v' %v", err.Name, err.Err)
}

func (err *ErrName) Unwrap() error {
	return err.Err
}
