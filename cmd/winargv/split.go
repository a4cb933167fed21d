package main

import (
	"github.com/alecthomas/kingpin/v2"
)

func (this *application) registerSplitCmd(app *kingpin.Application) {
	var commandLine string
	cmd := app.Command("split", "Splits the given command line the way the operating system does and prints the result.").
		Action(func(*kingpin.ParseContext) error {
			return this.doSplit(commandLine)
		})
	cmd.Arg("command-line", "Command line to split.").
		Required().
		StringVar(&commandLine)
	this.registerFormatFlag(cmd)
}

func (this *application) doSplit(commandLine string) error {
	args, err := this.resolver.Bridge.SplitCommandLine(commandLine)
	if err != nil {
		return err
	}
	return this.print(args)
}
