package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Version interface {
	Title() string
	Version() string
	Revision() string
	BuildAt() time.Time
	Vendor() string
	GoVersion() string
	Platform() string
	Features() VersionFeatures
}

func FormatVersion(v Version, format VersionFormat) string {
	switch format {
	case VersionFormatLong:
		result := v.Title() + `

Version:  ` + v.Version() + `
Revision: ` + v.Revision() + `
Build:    ` + v.BuildAt().Format(time.RFC3339) + ` by ` + v.Vendor() + `
Go:       ` + v.GoVersion() + `
Platform: ` + v.Platform() + `
Features: `

		csnl := 0
		v.Features().ForEach(func(category VersionFeatureCategory) {
			csnl = max(csnl, len(category.Name())+1)
		})

		v.Features().ForEach(func(category VersionFeatureCategory) {
			var fts []string
			category.ForEach(func(feature VersionFeature) {
				fts = append(fts, feature.Name())
			})
			result += fmt.Sprintf("\n\t%-"+strconv.Itoa(csnl)+"s %s", category.Name()+":", strings.Join(fts, " "))
		})

		return result
	default:
		return v.Title() + ` ` + v.Version() + `-` + v.Revision() + `@` + v.Platform() + ` ` + v.BuildAt().Format(time.RFC3339)
	}
}

type VersionFormat uint8

const (
	VersionFormatShort VersionFormat = iota
	VersionFormatLong
)

type VersionFeatures interface {
	ForEach(func(VersionFeatureCategory))
}

type VersionFeatureCategory interface {
	Name() string
	ForEach(func(VersionFeature))
}

type VersionFeature interface {
	Name() string
}
