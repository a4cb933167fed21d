package argv

import "strings"

// Reconcile strips the launcher specific prefix from osArgs.
//
// Everything up to and including the first element ending with archiveSuffix
// (case-insensitive) is launch machinery. If the first element after it
// equals marker it is dropped as well; IDEs inject the entry point there. An
// empty marker means there is none. If no element ends with archiveSuffix,
// osArgs is returned as it is, including a possible marker.
func Reconcile(osArgs []string, marker, archiveSuffix string) []string {
	var argsOnly []string
	for _, s := range osArgs {
		switch {
		case argsOnly == nil:
			if HasSuffixFold(s, archiveSuffix) {
				argsOnly = make([]string, 0, len(osArgs))
			}
		case len(argsOnly) == 0 && marker != "" && s == marker:
			// Entry point injected by the IDE.
		default:
			argsOnly = append(argsOnly, s)
		}
	}
	if argsOnly == nil {
		return osArgs
	}
	return argsOnly
}

// HasSuffixFold reports whether s ends with suffix under simple Unicode case
// folding. The comparison does not depend on any locale.
func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
