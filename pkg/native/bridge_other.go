//go:build !windows

package native

import (
	"runtime"

	"github.com/engity-com/winargv/pkg/errors"
)

// BridgeName names the Bridge of this platform.
const BridgeName = "unsupported"

var defaultBridge Bridge = unsupportedBridge{}

type unsupportedBridge struct{}

func (unsupportedBridge) RawCommandLine() (string, error) {
	return "", errors.Unsupported.Newf("raw command line is not available on %s", runtime.GOOS)
}

func (unsupportedBridge) SplitCommandLine(string) ([]string, error) {
	return nil, errors.Unsupported.Newf("native command line splitting is not available on %s", runtime.GOOS)
}
