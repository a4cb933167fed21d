package logging

import (
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/level"
	"github.com/echocat/slf4g/native/consumer"
	"github.com/echocat/slf4g/native/facade/value"

	"github.com/engity-com/winargv/pkg/common"
)

type LogProvider interface {
	log.Provider
	value.ProviderTarget
	level.NamesAware
}

// ConfigureLoggingForFlags lets all log output of the given provider go to
// stderr (stdout is reserved for the resolved arguments) and registers the
// log.* flags at app. Every flag can also be set via an environment variable
// prefixed with envPrefix.
func ConfigureLoggingForFlags(app *kingpin.Application, envPrefix string, of LogProvider) {
	of.SetConsumer(consumer.NewWriter(os.Stderr))

	lv := value.NewProvider(of)
	app.Flag("log.level", "Defines the minimum level at which the log messages will be logged. Default: "+lv.Level.String()).
		Envar(envPrefix + "LOG_LEVEL").
		PlaceHolder("<" + strings.Join(logLevelStrings(of), "|") + ">").
		SetValue(lv.Level)
	app.Flag("log.format", "In which format the log output should be printed. Default: "+lv.Consumer.Formatter.String()).
		Envar(envPrefix + "LOG_FORMAT").
		PlaceHolder("<" + strings.Join(logFormatStrings(), "|") + ">").
		SetValue(lv.Consumer.Formatter)
	app.Flag("log.colorMode", "Tells if to log in color or not. Default: "+lv.Consumer.Formatter.ColorMode.String()).
		Envar(envPrefix + "LOG_COLOR_MODE").
		PlaceHolder("<auto|always|never>").
		SetValue(lv.Consumer.Formatter.ColorMode)
}

func logLevelStrings(of LogProvider) []string {
	names := of.GetLevelNames()

	lvls := of.GetAllLevels()
	all := make([]string, len(lvls))
	for i, lvl := range lvls {
		name, err := names.ToName(lvl)
		common.Must(err)
		all[i] = name
	}
	return all
}

func logFormatStrings() []string {
	codecs := value.DefaultFormatterCodec.(value.MappingFormatterCodec)
	all := make([]string, 0, len(codecs))
	for k := range codecs {
		all = append(all, k)
	}
	sort.Strings(all)
	return all
}
