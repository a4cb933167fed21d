package errors

import (
	"strconv"
)

type Type uint8

const (
	Unknown Type = iota
	System
	Config
	// Native signals that a call into an OS library reported a failure.
	Native
	// Extraction signals that memory returned by the OS could not be decoded.
	Extraction
	Unsupported
)

func (t Type) Newf(msg string, args ...any) *Error {
	return Newf(t, msg, args...)
}

func (t Type) IsErr(err error) bool {
	return IsType(err, t)
}

func (t Type) String() string {
	v, ok := typeToStr[t]
	if !ok {
		return "unknown-" + strconv.FormatUint(uint64(t), 10)
	}
	return v
}

var typeToStr = map[Type]string{
	Unknown:     "unknown",
	System:      "system",
	Config:      "config",
	Native:      "native",
	Extraction:  "extraction",
	Unsupported: "unsupported",
}
