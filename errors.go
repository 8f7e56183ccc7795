package gnssfec

import "errors"

var (
	ErrInvalidLength = errors.New("invalid frame length")
	ErrInvalidBit    = errors.New("invalid bit value")
	ErrUncorrectable = errors.New("uncorrectable string")
	ErrNoValidPath   = errors.New("no valid trellis path")
	ErrInvalidOpt    = errors.New("invalid option")
)
