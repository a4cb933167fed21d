package argv

import (
	"fmt"

	log "github.com/echocat/slf4g"

	"github.com/engity-com/winargv/pkg/errors"
	"github.com/engity-com/winargv/pkg/native"
)

// DefaultArchiveSuffix identifies the packaged application archive in the
// command line of a launcher like "java -jar <archive> ...".
const DefaultArchiveSuffix = ".jar"

var defaultResolver = NewResolver()

// Resolve resolves the arguments of the current process using the default
// Resolver. See Resolver.Resolve for details.
func Resolve(fallback []string, marker string) []string {
	return defaultResolver.Resolve(fallback, marker)
}

// NewResolver creates a Resolver using the native.DefaultBridge of this
// platform.
func NewResolver() *Resolver {
	return &Resolver{
		Bridge:        native.DefaultBridge(),
		ArchiveSuffix: DefaultArchiveSuffix,
	}
}

// Resolver recovers the arguments of a process from the command line stored
// by the operating system instead of relying on the splitting (and decoding)
// done by the runtime.
type Resolver struct {
	// Bridge to the operating system. If nil native.DefaultBridge() is used.
	Bridge native.Bridge

	// ArchiveSuffix marks the element of the command line after which the
	// real arguments start. If empty DefaultArchiveSuffix is used.
	ArchiveSuffix string

	// Logger to use. If nil the logger "argv" is used.
	Logger log.Logger
}

// Resolve returns the arguments the current process was started with, as
// split by the operating system, without the launcher specific prefix. See
// Reconcile for how the prefix is detected.
//
// fallback are the arguments as provided by the runtime (without the
// executable). They are returned unchanged if anything goes wrong; this
// method never fails.
func (this *Resolver) Resolve(fallback []string, marker string) []string {
	return this.resolveWith(fallback, func(b native.Bridge) ([]string, error) {
		return native.Arguments(b)
	}, marker)
}

// ResolveCommandLine is the same as Resolve but splits the given raw command
// line instead of the one of the current process.
func (this *Resolver) ResolveCommandLine(raw string, fallback []string, marker string) []string {
	return this.resolveWith(fallback, func(b native.Bridge) ([]string, error) {
		return b.SplitCommandLine(raw)
	}, marker)
}

func (this *Resolver) resolveWith(fallback []string, source func(native.Bridge) ([]string, error), marker string) []string {
	l := this.logger()
	l.With("fallback", fallback).Debug("in case of failures arguments will fall back to the provided ones")

	result, err := this.resolve(source, marker)
	if errors.Unsupported.IsErr(err) {
		l.WithError(err).
			With("fallback", fallback).
			Info("no native API available on this platform; using the arguments provided by the runtime")
		return fallback
	}
	if err != nil {
		l.WithError(err).
			With("fallback", fallback).
			Error("cannot resolve command line arguments using the native API; falling back to the ones provided by the runtime")
		return fallback
	}

	l.With("arguments", result).Debug("these arguments will be used")
	return result
}

func (this *Resolver) resolve(source func(native.Bridge) ([]string, error), marker string) (result []string, rErr error) {
	defer func() {
		if r := recover(); r != nil {
			rErr = errors.System.Newf("unexpected failure while resolving arguments: %v", r)
		}
	}()

	osArgs, err := source(this.bridge())
	if err != nil {
		return nil, fmt.Errorf("cannot get command line from operating system: %w", err)
	}
	this.logger().With("arguments", osArgs).Debug("according to the operating system the process was started with these arguments")

	return Reconcile(osArgs, marker, this.archiveSuffix()), nil
}

func (this *Resolver) bridge() native.Bridge {
	if v := this.Bridge; v != nil {
		return v
	}
	return native.DefaultBridge()
}

func (this *Resolver) archiveSuffix() string {
	if v := this.ArchiveSuffix; v != "" {
		return v
	}
	return DefaultArchiveSuffix
}

func (this *Resolver) logger() log.Logger {
	if v := this.Logger; v != nil {
		return v
	}
	return log.GetLogger("argv")
}
