package symbol

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	ErrDuplicateSymbol = errors.New(f("duplicate symbol"))
)

// ErrSymbol ties a symbol table error to the symbol name.
type ErrSymbol struct {
	Name string
	Err  error
}

func (err *ErrSymbol) Error() string {
	return f("symbol '%v' %v", err.Name, err.Err)
}

func (err *ErrSymbol) Unwrap() error {
	return err.Err
}
