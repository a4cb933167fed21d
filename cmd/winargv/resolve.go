package main

import (
	"github.com/alecthomas/kingpin/v2"
)

func (this *application) registerResolveCmd(app *kingpin.Application) {
	cmd := app.Command("resolve", "Resolves the arguments of this process and prints them.").
		Default().
		Action(func(*kingpin.ParseContext) error {
			return this.doResolve()
		})
	this.registerResolverFlags(cmd)
	this.registerFormatFlag(cmd)
}

func (this *application) doResolve() error {
	var fallback []string
	if len(this.osArgs) > 1 {
		fallback = this.osArgs[1:]
	}
	return this.print(this.resolver.Resolve(fallback, this.marker))
}
