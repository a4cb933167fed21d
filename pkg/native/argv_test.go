package native

import (
	"strings"
	"testing"
	"unicode/utf16"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/engity-com/winargv/pkg/errors"
)

func wide(s string) *uint16 {
	buf := append(utf16.Encode([]rune(s)), 0)
	return &buf[0]
}

func TestWideString(t *testing.T) {
	cases := []struct {
		name     string
		in       *uint16
		expected string
	}{{
		name:     "nil",
		in:       nil,
		expected: "",
	}, {
		name:     "empty",
		in:       wide(""),
		expected: "",
	}, {
		name:     "ascii",
		in:       wide(`C:\app\launcher.jar`),
		expected: `C:\app\launcher.jar`,
	}, {
		name:     "unicode",
		in:       wide(`D:\Filme\Übergröße – 東京.mkv`),
		expected: `D:\Filme\Übergröße – 東京.mkv`,
	}, {
		name:     "surrogate-pair",
		in:       wide("🎬.mp4"),
		expected: "🎬.mp4",
	}, {
		name:     "unpaired-surrogate",
		in:       &[]uint16{0xD800, 'a', 0}[0],
		expected: "\uFFFDa",
	}, {
		name:     "longest",
		in:       wide(strings.Repeat("a", MaxWideStringLength-1)),
		expected: strings.Repeat("a", MaxWideStringLength-1),
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, actualErr := WideString(c.in)
			require.NoError(t, actualErr)
			require.Equal(t, c.expected, actual)
		})
	}
}

func TestWideString_unterminated(t *testing.T) {
	buf := make([]uint16, MaxWideStringLength)
	for i := range buf {
		buf[i] = 'a'
	}

	_, actualErr := WideString(&buf[0])
	require.EqualError(t, actualErr, "wide string is not terminated within 32768 code units")
	require.True(t, errors.Extraction.IsErr(actualErr))
}

func TestWideStringArray(t *testing.T) {
	argv := []*uint16{wide(`C:\jre\java.exe`), wide("-jar"), wide(`C:\app\launcher.jar`), wide("Übergröße.mp4")}

	actual, actualErr := WideStringArray(unsafe.Pointer(&argv[0]), len(argv))
	require.NoError(t, actualErr)
	require.Len(t, actual, len(argv))
	require.Equal(t, []string{`C:\jre\java.exe`, "-jar", `C:\app\launcher.jar`, "Übergröße.mp4"}, actual)

	actual, actualErr = WideStringArray(unsafe.Pointer(&argv[0]), 2)
	require.NoError(t, actualErr)
	require.Len(t, actual, 2)
	require.Equal(t, []string{`C:\jre\java.exe`, "-jar"}, actual)
}

func TestWideStringArray_empty(t *testing.T) {
	actual, actualErr := WideStringArray(nil, 0)
	require.NoError(t, actualErr)
	require.NotNil(t, actual)
	require.Empty(t, actual)
}

func TestWideStringArray_failures(t *testing.T) {
	unterminated := make([]uint16, MaxWideStringLength)
	for i := range unterminated {
		unterminated[i] = 'x'
	}
	withNil := []*uint16{wide("a"), nil}
	withUnterminated := []*uint16{&unterminated[0]}

	cases := []struct {
		name        string
		argv        unsafe.Pointer
		argc        int
		expectedErr string
	}{{
		name:        "negative-count",
		argv:        unsafe.Pointer(&withNil[0]),
		argc:        -1,
		expectedErr: "illegal argument count: -1",
	}, {
		name:        "nil-array",
		argv:        nil,
		argc:        2,
		expectedErr: "argument array is nil but 2 arguments were reported",
	}, {
		name:        "nil-element",
		argv:        unsafe.Pointer(&withNil[0]),
		argc:        2,
		expectedErr: "[1] argument is nil",
	}, {
		name:        "unterminated-element",
		argv:        unsafe.Pointer(&withUnterminated[0]),
		argc:        1,
		expectedErr: "[0] wide string is not terminated within 32768 code units",
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, actualErr := WideStringArray(c.argv, c.argc)
			require.EqualError(t, actualErr, c.expectedErr)
			require.True(t, errors.Extraction.IsErr(actualErr))
			require.Nil(t, actual)
		})
	}
}
