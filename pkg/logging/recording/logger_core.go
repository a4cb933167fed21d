package recording

import (
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/fields"
	"github.com/echocat/slf4g/level"
)

// RootLoggerName specifies the name of the root version of coreLogger
// instances which are managed by Provider.
const RootLoggerName = "ROOT"

type coreLogger struct {
	*Provider
}

// Log implements log.CoreLogger#Log(event).
func (instance *coreLogger) Log(event log.Event, skipFrames uint16) {
	instance.log(instance.GetName(), event, skipFrames+1)
}

func (instance *coreLogger) log(loggerName string, event log.Event, _ uint16) {
	if !instance.IsLevelEnabled(event.GetLevel()) {
		return
	}
	instance.add(instance.toRecord(loggerName, event))
}

// IsLevelEnabled implements log.CoreLogger#IsLevelEnabled()
func (instance *coreLogger) IsLevelEnabled(v level.Level) bool {
	return instance.GetLevel().CompareTo(v) <= 0
}

// GetName implements log.CoreLogger#GetName()
func (instance *coreLogger) GetName() string {
	return RootLoggerName
}

// GetProvider implements log.CoreLogger#GetProvider()
func (instance *coreLogger) GetProvider() log.Provider {
	return instance.Provider
}

func (instance *coreLogger) NewEvent(l level.Level, values map[string]interface{}) log.Event {
	return instance.NewEventWithFields(l, fields.WithAll(values))
}

func (instance *coreLogger) NewEventWithFields(l level.Level, f fields.ForEachEnabled) log.Event {
	asFields, err := fields.AsFields(f)
	if err != nil {
		panic(err)
	}
	return &event{
		provider: instance.Provider,
		fields:   asFields,
		level:    l,
	}
}

func (instance *coreLogger) Accepts(e log.Event) bool {
	return e != nil
}

func (instance *coreLogger) toRecord(loggerName string, event log.Event) Record {
	result := Record{
		Level:  event.GetLevel(),
		Logger: loggerName,
		Fields: map[string]any{},
	}
	if v := log.GetMessageOf(event, instance); v != nil {
		result.Message = *v
	}

	keys := instance.GetFieldKeysSpec()
	_ = event.ForEach(func(k string, vp interface{}) error {
		if vl, ok := vp.(fields.Filtered); ok {
			fv, shouldBeRespected := vl.Filter(event)
			if !shouldBeRespected {
				return nil
			}
			vp = fv
		} else if vl, ok := vp.(fields.Lazy); ok {
			vp = vl.Get()
		}
		switch {
		case vp == fields.Exclude:
		case k == keys.GetMessage(), k == keys.GetTimestamp(), k == keys.GetLogger():
		case k == keys.GetError():
			if err, ok := vp.(error); ok {
				result.Error = err
			}
		default:
			result.Fields[k] = vp
		}
		return nil
	})

	return result
}
