// Package nativetest provides a native.Bridge which is fully controlled by
// the test using it.
package nativetest

import (
	"slices"
	"strings"
	"sync/atomic"
)

// Bridge is a native.Bridge which reports CommandLine as the raw command line
// and splits using Split (strings.Fields if nil).
type Bridge struct {
	CommandLine string
	Split       func(raw string) ([]string, error)

	// RawErr is returned by RawCommandLine if set.
	RawErr error
	// SplitErr is returned by SplitCommandLine if set.
	SplitErr error
	// Panic lets SplitCommandLine panic with this value if set.
	Panic any

	rawCalls   atomic.Int32
	splitCalls atomic.Int32
}

// New creates a Bridge reporting args joined by spaces as command line.
func New(args ...string) *Bridge {
	return &Bridge{CommandLine: strings.Join(args, " ")}
}

func (this *Bridge) RawCommandLine() (string, error) {
	this.rawCalls.Add(1)
	if err := this.RawErr; err != nil {
		return "", err
	}
	return this.CommandLine, nil
}

func (this *Bridge) SplitCommandLine(raw string) ([]string, error) {
	this.splitCalls.Add(1)
	if v := this.Panic; v != nil {
		panic(v)
	}
	if err := this.SplitErr; err != nil {
		return nil, err
	}
	if split := this.Split; split != nil {
		return split(raw)
	}
	return strings.Fields(raw), nil
}

// RawCalls returns how often RawCommandLine was called.
func (this *Bridge) RawCalls() int {
	return int(this.rawCalls.Load())
}

// SplitCalls returns how often SplitCommandLine was called.
func (this *Bridge) SplitCalls() int {
	return int(this.splitCalls.Load())
}

// Fixed returns a split function which ignores the raw command line and
// always returns a copy of args.
func Fixed(args ...string) func(string) ([]string, error) {
	return func(string) ([]string, error) {
		return slices.Clone(args), nil
	}
}
