package recording

import (
	"sync"

	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/fields"
	"github.com/echocat/slf4g/level"
)

// NewProvider creates a new instance of Provider which is ready to use. Only
// events with at least the given level.Level are recorded.
func NewProvider(name string, lvl level.Level) *Provider {
	return &Provider{name: name, level: lvl}
}

// Provider is an implementation of log.Provider which keeps every logged event
// in memory. Use NewProvider(..) to get a new instance.
type Provider struct {
	name  string
	level level.Level

	records []Record
	mutex   sync.Mutex

	coreLogger *coreLogger
	logger     log.Logger
	initLogger sync.Once
}

func (instance *Provider) initIfRequired() {
	instance.initLogger.Do(func() {
		instance.coreLogger = &coreLogger{instance}
		instance.logger = log.NewLogger(instance.coreLogger)
	})
}

// GetRootLogger implements log.Provider#GetRootLogger()
func (instance *Provider) GetRootLogger() log.Logger {
	instance.initIfRequired()
	return instance.logger
}

// GetLogger implements log.Provider#GetLogger()
func (instance *Provider) GetLogger(name string) log.Logger {
	if name == RootLoggerName {
		return instance.GetRootLogger()
	}

	instance.initIfRequired()
	return log.NewLogger(&coreLoggerRenamed{instance.coreLogger, name})
}

// GetName implements log.Provider#GetName()
func (instance *Provider) GetName() string {
	return instance.name
}

// GetAllLevels implements log.Provider#GetAllLevels()
func (instance *Provider) GetAllLevels() level.Levels {
	return level.GetProvider().GetLevels()
}

// GetFieldKeysSpec implements log.Provider#GetFieldKeysSpec()
func (instance *Provider) GetFieldKeysSpec() fields.KeysSpec {
	return &fields.KeysSpecImpl{}
}

// GetLevel returns the minimum level.Level which will be recorded.
func (instance *Provider) GetLevel() level.Level {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	return instance.level
}

// SetLevel changes the minimum level.Level which will be recorded.
func (instance *Provider) SetLevel(v level.Level) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.level = v
}

// Records returns a copy of everything recorded so far, in order.
func (instance *Provider) Records() []Record {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	result := make([]Record, len(instance.records))
	copy(result, instance.records)
	return result
}

// RecordsOf returns every recorded Record with exactly the given level.Level.
func (instance *Provider) RecordsOf(lvl level.Level) []Record {
	var result []Record
	for _, r := range instance.Records() {
		if r.Level == lvl {
			result = append(result, r)
		}
	}
	return result
}

// Reset drops everything recorded so far.
func (instance *Provider) Reset() {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.records = nil
}

func (instance *Provider) add(r Record) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.records = append(instance.records, r)
}
