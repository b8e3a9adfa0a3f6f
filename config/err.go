package config

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	ErrLayoutName = errors.New(f("memory layout name unknown"))
	ErrUnknownKey = errors.New(f("configuration key unknown"))
)

// ErrConfig locates a configuration error.
type ErrConfig struct {
	Key string
	Err error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
