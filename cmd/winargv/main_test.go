package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/echocat/slf4g/level"
	"github.com/stretchr/testify/require"

	"github.com/engity-com/winargv/pkg/argv"
	"github.com/engity-com/winargv/pkg/logging/recording"
	"github.com/engity-com/winargv/pkg/native/nativetest"
	"github.com/engity-com/winargv/pkg/output"
)

const testMarker = "com.example.Main"

func newTestApplication(bridge *nativetest.Bridge) (*application, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	return &application{
		resolver: &argv.Resolver{
			Bridge: bridge,
			Logger: recording.NewProvider("test", level.Debug).GetLogger("argv"),
		},
		stdout: stdout,
		stderr: io.Discard,
		osArgs: []string{"winargv.exe"},
		processCommandLine: func(context.Context, int32) (string, []string, error) {
			panic("unexpected")
		},
		format: output.FormatLines,
	}, stdout
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		osArgs   []string
		bridge   *nativetest.Bridge
		args     []string
		expected string
	}{{
		name:     "default-command",
		osArgs:   []string{"winargv.exe", "input.mp4"},
		bridge:   nativetest.New("java.exe", "-jar", "launcher.jar", "Übergröße.mp4"),
		args:     []string{},
		expected: "Übergröße.mp4\n",
	}, {
		name:     "marker",
		bridge:   nativetest.New("java.exe", "-cp", "idea_rt.jar", testMarker, "a", "b"),
		args:     []string{"resolve", "--marker", testMarker},
		expected: "a\nb\n",
	}, {
		name:     "suffix",
		bridge:   nativetest.New("python.exe", "app.pyz", "a"),
		args:     []string{"resolve", "--suffix", ".pyz", "--format", "json"},
		expected: "[\n  \"a\"\n]\n",
	}, {
		name: "empty-argument-without-marker",
		bridge: &nativetest.Bridge{
			Split: nativetest.Fixed("java.exe", "-jar", "app.jar", "", "out.mp4"),
		},
		args:     []string{"resolve", "-f", "json"},
		expected: "[\n  \"\",\n  \"out.mp4\"\n]\n",
	}, {
		name:     "without-archive",
		bridge:   nativetest.New("winargv.exe", "a"),
		args:     []string{"resolve", "-f", "yaml"},
		expected: "- winargv.exe\n- a\n",
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			instance, stdout := newTestApplication(c.bridge)
			if c.osArgs != nil {
				instance.osArgs = c.osArgs
			}

			_, err := instance.kingpin().Parse(c.args)
			require.NoError(t, err)
			require.Equal(t, c.expected, stdout.String())
		})
	}
}

func TestResolve_fallsBack(t *testing.T) {
	bridge := nativetest.New("a")
	bridge.RawErr = io.ErrUnexpectedEOF
	instance, stdout := newTestApplication(bridge)
	instance.osArgs = []string{"winargv.exe", "input.mp4", "-o", "out.mp4"}

	_, err := instance.kingpin().Parse([]string{"resolve"})
	require.NoError(t, err)
	require.Equal(t, "input.mp4\n-o\nout.mp4\n", stdout.String())
}

func TestSplit(t *testing.T) {
	instance, stdout := newTestApplication(nativetest.New())

	_, err := instance.kingpin().Parse([]string{"split", "java.exe -jar launcher.jar a", "--format", "json"})
	require.NoError(t, err)
	require.Equal(t, "[\n  \"java.exe\",\n  \"-jar\",\n  \"launcher.jar\",\n  \"a\"\n]\n", stdout.String())
}

func TestSplit_fails(t *testing.T) {
	bridge := nativetest.New()
	bridge.SplitErr = io.ErrUnexpectedEOF
	instance, stdout := newTestApplication(bridge)

	_, err := instance.kingpin().Parse([]string{"split", "a b"})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Empty(t, stdout.String())
}

func TestProcess(t *testing.T) {
	instance, stdout := newTestApplication(nativetest.New("ignored"))
	var requestedPid int32
	instance.processCommandLine = func(_ context.Context, pid int32) (string, []string, error) {
		requestedPid = pid
		return "java.exe -jar launcher.jar " + testMarker + " a b", []string{"-jar", "launcher.jar", testMarker, "a", "b"}, nil
	}

	_, err := instance.kingpin().Parse([]string{"process", "4711", "--marker", testMarker})
	require.NoError(t, err)
	require.Equal(t, int32(4711), requestedPid)
	require.Equal(t, "a\nb\n", stdout.String())
}

func TestProcess_fails(t *testing.T) {
	instance, stdout := newTestApplication(nativetest.New("ignored"))
	instance.processCommandLine = func(context.Context, int32) (string, []string, error) {
		return "", nil, io.ErrUnexpectedEOF
	}

	_, err := instance.kingpin().Parse([]string{"process", "4711"})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Empty(t, stdout.String())
}

func TestVersion(t *testing.T) {
	instance, stdout := newTestApplication(nativetest.New())

	_, err := instance.kingpin().Parse([]string{"version", "--no-long"})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), title+" "+version+"-"+revision+"@")

	stdout.Reset()
	_, err = instance.kingpin().Parse([]string{"version"})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "archive-suffix: .jar")
	require.Contains(t, stdout.String(), "formats:")
}
