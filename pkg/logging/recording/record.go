package recording

import (
	"fmt"
	"sort"
	"strings"

	"github.com/echocat/slf4g/level"
	tlevel "github.com/echocat/slf4g/sdk/testlog/level"
)

// Record is a single recorded log event.
type Record struct {
	Level   level.Level
	Logger  string
	Message string
	Error   error
	Fields  map[string]any
}

func (this Record) String() string {
	var buf strings.Builder
	buf.WriteString("[" + tlevel.DefaultFormatter.Format(this.Level) + "]")
	if this.Logger != RootLoggerName {
		buf.WriteString(" " + this.Logger + ":")
	}
	if this.Message != "" {
		buf.WriteString(" " + this.Message)
	}

	keys := make([]string, 0, len(this.Fields))
	for k := range this.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(&buf, " %s=%v", k, this.Fields[k])
	}
	if this.Error != nil {
		buf.WriteString(" error=" + this.Error.Error())
	}
	return buf.String()
}
