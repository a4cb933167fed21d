package common

// KeepError calls when and stores its error at target, but only if target
// does not already hold an error. Meant to be deferred on functions with a
// named error result.
func KeepError(target *error, when func() error) {
	if when != nil {
		if err := when(); err != nil && *target == nil {
			*target = err
		}
	}
}
