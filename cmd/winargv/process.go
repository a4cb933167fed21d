package main

import (
	"context"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/engity-com/winargv/pkg/errors"
)

func (this *application) registerProcessCmd(app *kingpin.Application) {
	var pid int32
	timeout := 10 * time.Second
	cmd := app.Command("process", "Resolves the arguments of another running process and prints them.").
		Action(func(*kingpin.ParseContext) error {
			ctx, cancelFunc := context.WithTimeout(context.Background(), timeout)
			defer cancelFunc()
			return this.doProcess(ctx, pid)
		})
	cmd.Arg("pid", "Process ID of the process to inspect.").
		Required().
		Int32Var(&pid)
	cmd.Flag("timeout", "Maximum time to wait for the process information. Default: "+timeout.String()).
		PlaceHolder("<duration>").
		DurationVar(&timeout)
	this.registerResolverFlags(cmd)
	this.registerFormatFlag(cmd)
}

func (this *application) doProcess(ctx context.Context, pid int32) error {
	raw, fallback, err := this.processCommandLine(ctx, pid)
	if err != nil {
		return err
	}
	return this.print(this.resolver.ResolveCommandLine(raw, fallback, this.marker))
}

// processCommandLine returns the raw command line of the process with the
// given pid together with the arguments as gopsutil splits them (without the
// executable) as fallback.
func processCommandLine(ctx context.Context, pid int32) (string, []string, error) {
	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return "", nil, errors.System.Newf("cannot find process #%d: %w", pid, err)
	}
	raw, err := proc.CmdlineWithContext(ctx)
	if err != nil {
		return "", nil, errors.System.Newf("cannot get command line of process #%d: %w", pid, err)
	}
	fallback, err := proc.CmdlineSliceWithContext(ctx)
	if err != nil {
		return "", nil, errors.System.Newf("cannot get arguments of process #%d: %w", pid, err)
	}
	if len(fallback) > 0 {
		fallback = fallback[1:]
	}
	return raw, fallback, nil
}
