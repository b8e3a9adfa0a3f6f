package macro

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	ErrNestedMacro          = errors.New(f(".macro in .macro prohibited"))
	ErrEndMacroWithoutMacro = errors.New(f(".end_macro without .macro"))
	ErrMacroSyntax          = errors.New(f(".macro syntax"))
	ErrMacroParameter       = errors.New(f("macro parameter not defined"))
)

// ErrParameter names an unrecognized macro parameter.
type ErrParameter struct {
	Macro  string
	Name   string
	Column int
}

func (err *ErrParameter) Error() string {
	return f("macro %v parameter %v: %v", err.Macro, err.Name, ErrMacroParameter)
}

func (err *ErrParameter) Unwrap() error {
	return ErrMacroParameter
}
