package memory

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	ErrLayout     = errors.New(f("memory layout invalid"))
	ErrOutOfRange = errors.New(f("address out of range"))
	ErrMisaligned = errors.New(f("address not aligned"))
	ErrLength     = errors.New(f("access length invalid"))
)

// ErrAddress is a failed memory access.
type ErrAddress struct {
	Address uint32
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address 0x%08x: %v", err.Address, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}
