package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/engity-com/winargv/pkg/errors"
)

// Format defines how a list of arguments is printed.
type Format uint8

const (
	// FormatLines prints one argument per line.
	FormatLines Format = iota
	FormatJson
	FormatYaml
)

// Write prints args to w in this Format.
func (this Format) Write(w io.Writer, args []string) error {
	if args == nil {
		args = []string{}
	}
	switch this {
	case FormatLines:
		for _, arg := range args {
			if _, err := fmt.Fprintln(w, arg); err != nil {
				return err
			}
		}
		return nil
	case FormatJson:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return encoder.Encode(args)
	case FormatYaml:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(args); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errors.Config.Newf("illegal-format: %d", this)
	}
}

func (this Format) String() string {
	v, ok := formatToName[this]
	if !ok {
		return fmt.Sprintf("illegal-format-%d", this)
	}
	return v
}

func (this Format) MarshalText() ([]byte, error) {
	v, ok := formatToName[this]
	if !ok {
		return nil, errors.Config.Newf("illegal-format: %d", this)
	}
	return []byte(v), nil
}

func (this *Format) UnmarshalText(in []byte) error {
	v, ok := nameToFormat[strings.ToLower(string(in))]
	if !ok {
		return errors.Config.Newf("illegal-format: %s", string(in))
	}
	*this = v
	return nil
}

// Set implements kingpin.Value.
func (this *Format) Set(plain string) error {
	return this.UnmarshalText([]byte(plain))
}

// Names returns the names of all known formats.
func Names() []string {
	return []string{FormatLines.String(), FormatJson.String(), FormatYaml.String()}
}

var (
	nameToFormat = map[string]Format{
		"lines": FormatLines,
		"json":  FormatJson,
		"yaml":  FormatYaml,
	}
	formatToName = func(in map[string]Format) map[Format]string {
		result := make(map[Format]string, len(in))
		for k, v := range in {
			result[v] = k
		}
		return result
	}(nameToFormat)
)
