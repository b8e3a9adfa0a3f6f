package token

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	ErrUnterminatedString = errors.New(f("unterminated quoted text"))
	ErrInvalidCharacter   = errors.New(f("invalid character"))
	ErrInvalidNumber      = errors.New(f("invalid number"))
	ErrEscape             = errors.New(f("invalid escape sequence"))
)

// ErrToken locates a lexical error within a line.
type ErrToken struct {
	Column int
	Text   string
	Err    error
}

func (err *ErrToken) Error() string {
	return f("column %d '%v' %v", err.Column, err.Text, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}
