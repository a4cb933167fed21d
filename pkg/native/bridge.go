package native

// Bridge gives access to the command line of the current process as the
// operating system has stored it and to the splitting rules of the operating
// system.
type Bridge interface {
	// RawCommandLine returns the command line of the current process exactly
	// as it was passed at process creation.
	RawCommandLine() (string, error)

	// SplitCommandLine splits raw into its arguments using the quoting and
	// escaping rules of the operating system. The first element is by
	// convention the path of the executable.
	SplitCommandLine(raw string) ([]string, error)
}

// DefaultBridge returns the Bridge of the current platform.
func DefaultBridge() Bridge {
	return defaultBridge
}

// Arguments returns the arguments of the current process as split by the
// operating system, including the executable in front.
func Arguments(b Bridge) ([]string, error) {
	raw, err := b.RawCommandLine()
	if err != nil {
		return nil, err
	}
	return b.SplitCommandLine(raw)
}
