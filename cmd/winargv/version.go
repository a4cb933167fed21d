package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/engity-com/winargv/pkg/common"
)

var (
	title    = "Engity's winargv"
	version  = "development"
	revision = "HEAD"
	buildAt  = ""
	vendor   = "unknown"

	buildAtV time.Time
)

func (this *application) registerVersionCmd(app *kingpin.Application) {
	long := true
	cmd := app.Command("version", "Show version details of this executable.").
		Action(func(*kingpin.ParseContext) error {
			return this.doVersion(long)
		})
	cmd.Flag("long", "Show all details. Default: "+fmt.Sprint(long)).
		PlaceHolder("<true|false>").
		BoolVar(&long)
}

func (this *application) doVersion(long bool) error {
	f := common.VersionFormatShort
	if long {
		f = common.VersionFormatLong
	}
	_, err := fmt.Fprintln(this.stdout, common.FormatVersion(versionV, f))
	return err
}

func init() {
	//goland:noinspection GoBoolExpressions
	if buildAt == "" {
		buildAtV = time.Now()
	} else if v, err := time.Parse(time.RFC3339, buildAt); err != nil {
		panic(fmt.Errorf("illegal main.buildAt value (%q): %w", buildAt, err))
	} else {
		buildAtV = v
	}
}

var versionV = &versionT{}

type versionT struct{}

func (this versionT) Title() string {
	return title
}

func (this versionT) Version() string {
	return version
}

func (this versionT) Revision() string {
	return revision
}

func (this versionT) BuildAt() time.Time {
	return buildAtV
}

func (this versionT) Vendor() string {
	return vendor
}

func (this versionT) GoVersion() string {
	return strings.TrimPrefix(runtime.Version(), "go")
}

func (this versionT) Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

func (this versionT) Features() common.VersionFeatures {
	return featuresV
}
