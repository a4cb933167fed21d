package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"

	"github.com/engity-com/winargv/pkg/argv"
	"github.com/engity-com/winargv/pkg/logging"
	"github.com/engity-com/winargv/pkg/output"
)

const envPrefix = "WINARGV_"

func main() {
	app := newApplication()
	ka := app.kingpin().
		Terminate(func(i int) {
			code := max(i, 1)
			os.Exit(code)
		})
	logging.ConfigureLoggingForFlags(ka, envPrefix, native.DefaultProvider)

	if _, err := ka.Parse(os.Args[1:]); err != nil {
		log.WithError(err).Error("execution failed")
		os.Exit(1)
	}
}

type application struct {
	resolver *argv.Resolver
	stdout   io.Writer
	stderr   io.Writer
	// osArgs are the arguments as provided by the Go runtime, including the
	// executable.
	osArgs             []string
	processCommandLine func(ctx context.Context, pid int32) (raw string, fallback []string, err error)

	marker string
	format output.Format
}

func newApplication() *application {
	return &application{
		resolver:           argv.NewResolver(),
		stdout:             os.Stdout,
		stderr:             os.Stderr,
		osArgs:             os.Args,
		processCommandLine: processCommandLine,
		format:             output.FormatLines,
	}
}

func (this *application) kingpin() *kingpin.Application {
	app := kingpin.New("winargv", "Shows the command line arguments of a process as Windows itself splits them, without the launcher specific prefix (like \"java -jar app.jar\").").
		UsageWriter(this.stderr).
		ErrorWriter(this.stderr)

	this.registerResolveCmd(app)
	this.registerSplitCmd(app)
	this.registerProcessCmd(app)
	this.registerVersionCmd(app)

	return app
}

func (this *application) registerResolverFlags(cmd *kingpin.CmdClause) {
	cmd.Flag("marker", "Entry point which gets dropped if it directly follows the archive.").
		Envar(envPrefix + "MARKER").
		PlaceHolder("<entry point>").
		StringVar(&this.marker)
	cmd.Flag("suffix", "Suffix of the archive after which the real arguments start. Default: "+argv.DefaultArchiveSuffix).
		Envar(envPrefix + "SUFFIX").
		Default(argv.DefaultArchiveSuffix).
		PlaceHolder("<suffix>").
		StringVar(&this.resolver.ArchiveSuffix)
}

func (this *application) registerFormatFlag(cmd *kingpin.CmdClause) {
	cmd.Flag("format", "How the arguments are printed. Default: "+this.format.String()).
		Envar(envPrefix+"FORMAT").
		Short('f').
		PlaceHolder("<"+strings.Join(output.Names(), "|")+">").
		SetValue(&this.format)
}

func (this *application) print(args []string) error {
	return this.format.Write(this.stdout, args)
}
