package core

import (
	"errors"
	"syscall"
)

var (
	ErrAddrInUse     = errors.New("wildrydes: address already in use")
	ErrInvalidConfig = errors.New("wildrydes: invalid config")
)

func IsAddrInUseError(err error) bool {
	return errors.Is(err, ErrAddrInUse) || errors.Is(err, syscall.EADDRINUSE)
}

func IsInvalidConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
