package cmd

import "strings"

const (
	flagSearchPattern = "sP"
	flagFilePattern   = "fP"
)

// singleDashLong lists the multi-letter flags traditionally written with one dash.
var singleDashLong = []string{flagSearchPattern, flagFilePattern, "help"}

// NormalizeArgs rewrites "-sP", "-fP" and "-help" (with or without "=value")
// to their double-dash form so they are not read as clusters of shorthands.
// Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		out = append(out, normalizeArg(arg))
	}
	return out
}

func normalizeArg(arg string) string {
	if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
		return arg
	}
	name := arg[1:]
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	for _, long := range singleDashLong {
		if name == long {
			return "-" + arg
		}
	}
	return arg
}
