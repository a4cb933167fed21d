package native

import (
	"unicode/utf16"
	"unsafe"

	"github.com/engity-com/winargv/pkg/errors"
)

// MaxWideStringLength is the maximum number of UTF-16 code units (including
// the terminating NUL) a single wide string returned by the OS may span. It
// is the limit Windows imposes on a whole command line.
const MaxWideStringLength = 32768

// WideString decodes the NUL-terminated UTF-16 string p points to. A nil
// pointer results in an empty string. If no terminator could be found within
// MaxWideStringLength code units the buffer is considered truncated.
//
// Unpaired surrogates are decoded as U+FFFD.
func WideString(p *uint16) (string, error) {
	if p == nil {
		return "", nil
	}
	ptr := unsafe.Pointer(p)
	n := 0
	for *(*uint16)(ptr) != 0 {
		n++
		if n >= MaxWideStringLength {
			return "", errors.Extraction.Newf("wide string is not terminated within %d code units", MaxWideStringLength)
		}
		ptr = unsafe.Add(ptr, unsafe.Sizeof(*p))
	}
	return string(utf16.Decode(unsafe.Slice(p, n))), nil
}

// WideStringArray copies argc wide strings out of the OS owned array argv
// (which is a LPWSTR*). The memory argv points to is neither modified nor
// released. On success the result has exactly argc elements.
func WideStringArray(argv unsafe.Pointer, argc int) ([]string, error) {
	if argc < 0 {
		return nil, errors.Extraction.Newf("illegal argument count: %d", argc)
	}
	args := make([]string, argc)
	if argc == 0 {
		return args, nil
	}
	if argv == nil {
		return nil, errors.Extraction.Newf("argument array is nil but %d arguments were reported", argc)
	}
	for i, p := range unsafe.Slice((**uint16)(argv), argc) {
		if p == nil {
			return nil, errors.Extraction.Newf("[%d] argument is nil", i)
		}
		v, err := WideString(p)
		if err != nil {
			return nil, errors.Extraction.Newf("[%d] %w", i, err)
		}
		args[i] = v
	}
	return args, nil
}
