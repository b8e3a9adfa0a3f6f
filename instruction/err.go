package instruction

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	ErrMaskSyntax         = errors.New(f("operation mask syntax"))
	ErrOperandCount       = errors.New(f("operand count"))
	ErrOperandFormat      = errors.New(f("operand format"))
	ErrOperandType        = errors.New(f("operand of incorrect type"))
	ErrOperandRange       = errors.New(f("operand out of range"))
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrUndefinedSymbol    = errors.New(f("symbol undefined"))
)

// ErrOperand locates an operand problem on a source line.
type ErrOperand struct {
	Column  int
	Text    string
	Example string // Expected format, if known.
	Err     error
}

func (err *ErrOperand) Error() string {
	if len(err.Example) != 0 {
		return f("'%v' %v, expected: %v", err.Text, err.Err, err.Example)
	}
	return f("'%v' %v", err.Text, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}
