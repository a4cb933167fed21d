package recording

import (
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/fields"
	"github.com/echocat/slf4g/level"
)

// event is an immutable log.Event; every With* returns a modified copy.
type event struct {
	provider *Provider
	fields   fields.Fields
	level    level.Level
}

func (instance *event) ForEach(consumer func(key string, value interface{}) error) error {
	return instance.fields.ForEach(consumer)
}

func (instance *event) Get(key string) (interface{}, bool) {
	return instance.fields.Get(key)
}

func (instance *event) Len() int {
	return instance.fields.Len()
}

func (instance *event) GetLevel() level.Level {
	return instance.level
}

func (instance *event) With(key string, value interface{}) log.Event {
	return instance.derive(instance.fields.With(key, value))
}

func (instance *event) Withf(key string, format string, args ...interface{}) log.Event {
	return instance.derive(instance.fields.Withf(key, format, args...))
}

func (instance *event) WithError(err error) log.Event {
	return instance.derive(instance.fields.With(instance.provider.GetFieldKeysSpec().GetError(), err))
}

func (instance *event) WithAll(of map[string]interface{}) log.Event {
	return instance.derive(instance.fields.WithAll(of))
}

func (instance *event) Without(keys ...string) log.Event {
	return instance.derive(instance.fields.Without(keys...))
}

func (instance *event) derive(f fields.Fields) log.Event {
	return &event{
		provider: instance.provider,
		fields:   f,
		level:    instance.level,
	}
}
