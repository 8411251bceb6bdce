package app

import (
	"strings"

	"github.com/spf13/pflag"
)

// SplitArgs separates the flags defined on fs from everything else. Known
// flags (with their values) are returned first; all other arguments are
// returned in their original order so they can be handed to gh unchanged.
// Everything after a literal "--" is passed through.
func SplitArgs(fs *pflag.FlagSet, args []string) (known, forward []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			forward = append(forward, args[i+1:]...)
			break
		}

		switch {
		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			name, _, hasValue := strings.Cut(arg[2:], "=")
			f := fs.Lookup(name)
			if f == nil {
				forward = append(forward, arg)
				continue
			}
			known = append(known, arg)
			if !hasValue && !isBoolFlag(f) && i+1 < len(args) {
				known = append(known, args[i+1])
				i++
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			own, rest, needsValue := shorthandGroup(fs, arg[1:])
			if own != "" {
				known = append(known, "-"+own)
			}
			if needsValue && i+1 < len(args) {
				known = append(known, args[i+1])
				i++
			}
			if rest != "" {
				forward = append(forward, "-"+rest)
			}

		default:
			forward = append(forward, arg)
		}
	}
	return known, forward
}

// shorthandGroup splits a group such as "PO" or "Pd" at the first letter fs
// does not define. own holds the leading letters that belong to fs and rest
// everything from the first unknown letter on, since that letter may take the
// remainder as its value. needsValue reports whether the last letter of own
// takes its value from the next argument.
func shorthandGroup(fs *pflag.FlagSet, group string) (own, rest string, needsValue bool) {
	for i := 0; i < len(group); i++ {
		f := fs.ShorthandLookup(group[i : i+1])
		if f == nil {
			return group[:i], group[i:], false
		}
		if isBoolFlag(f) {
			continue
		}
		// A value flag swallows the rest of the group.
		return group, "", i == len(group)-1
	}
	return group, "", false
}

func isBoolFlag(f *pflag.Flag) bool {
	return f.NoOptDefVal != ""
}
