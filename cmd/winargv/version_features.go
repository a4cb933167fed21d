package main

import (
	"github.com/engity-com/winargv/pkg/argv"
	"github.com/engity-com/winargv/pkg/common"
	"github.com/engity-com/winargv/pkg/native"
	"github.com/engity-com/winargv/pkg/output"
)

var (
	featuresV = &features{}
)

type features struct{}

func (this *features) ForEach(consumer func(common.VersionFeatureCategory)) {
	consumer(&featureCategory{"native-bridge", func() []string {
		return []string{native.BridgeName}
	}})
	consumer(&featureCategory{"archive-suffix", func() []string {
		return []string{argv.DefaultArchiveSuffix}
	}})
	consumer(&featureCategory{"formats", output.Names})
}

type featureCategory struct {
	name   string
	getter func() []string
}

func (this *featureCategory) Name() string {
	return this.name
}

func (this *featureCategory) ForEach(consumer func(common.VersionFeature)) {
	for _, v := range this.getter() {
		consumer(feature(v))
	}
}

type feature string

func (this feature) Name() string {
	return string(this)
}
