//go:build windows

package native

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/engity-com/winargv/pkg/common"
	"github.com/engity-com/winargv/pkg/errors"
)

// BridgeName names the Bridge of this platform.
const BridgeName = "windows"

var defaultBridge Bridge = windowsBridge{}

// The wrappers of x/sys panic if a procedure cannot be found, so both libraries
// are checked up front. The outcome lives as long as the process does, a
// failed load included; there are no retries.
var (
	loadKernel32 = sync.OnceValue(func() error {
		return loadProcs("kernel32.dll", "GetCommandLineW", "LocalFree")
	})
	loadShell32 = sync.OnceValue(func() error {
		return loadProcs("shell32.dll", "CommandLineToArgvW")
	})
)

func loadProcs(name string, procs ...string) error {
	dll := windows.NewLazySystemDLL(name)
	if err := dll.Load(); err != nil {
		return errors.Native.Newf("cannot load %s: %w", dll.Name, err)
	}
	for _, proc := range procs {
		if err := dll.NewProc(proc).Find(); err != nil {
			return errors.Native.Newf("cannot find %s in %s: %w", proc, dll.Name, err)
		}
	}
	return nil
}

func free(argv *[8192]*[8192]uint16) error {
	if _, err := windows.LocalFree(windows.Handle(unsafe.Pointer(argv))); err != nil {
		return errors.Native.Newf("LocalFree failed: %w", err)
	}
	return nil
}

type windowsBridge struct{}

func (windowsBridge) RawCommandLine() (string, error) {
	if err := loadKernel32(); err != nil {
		return "", err
	}
	// The returned buffer belongs to the process and must not be released.
	p := windows.GetCommandLine()
	if p == nil {
		return "", errors.Native.Newf("GetCommandLineW returned no command line")
	}
	return WideString(p)
}

func (windowsBridge) SplitCommandLine(raw string) (result []string, rErr error) {
	if err := loadKernel32(); err != nil {
		return nil, err
	}
	if err := loadShell32(); err != nil {
		return nil, err
	}

	in, err := windows.UTF16PtrFromString(raw)
	if err != nil {
		return nil, errors.Native.Newf("cannot encode command line as UTF-16: %w", err)
	}

	var argc int32
	argv, err := windows.CommandLineToArgv(in, &argc)
	if err != nil {
		return nil, errors.Native.Newf("CommandLineToArgvW failed: %w", err)
	}
	defer common.KeepError(&rErr, func() error {
		return free(argv)
	})

	return WideStringArray(unsafe.Pointer(argv), int(argc))
}
