package gen

import "strings"

// list2cmdline joins arguments into a single command line using the MS C
// runtime quoting rules: arguments containing spaces or tabs (and empty
// arguments) are wrapped in double quotes, literal quotes are
// backslash-escaped, and backslashes are doubled when they precede a
// quote, including the closing one.
func list2cmdline(args []string) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}

		needquote := arg == "" || strings.ContainsAny(arg, " \t")
		if needquote {
			sb.WriteByte('"')
		}

		backslashes := 0
		for _, c := range arg {
			switch c {
			case '\\':
				backslashes++
			case '"':
				sb.WriteString(strings.Repeat(`\`, backslashes*2))
				sb.WriteString(`\"`)
				backslashes = 0
			default:
				if backslashes > 0 {
					sb.WriteString(strings.Repeat(`\`, backslashes))
					backslashes = 0
				}
				sb.WriteRune(c)
			}
		}

		if backslashes > 0 {
			sb.WriteString(strings.Repeat(`\`, backslashes))
		}
		if needquote {
			// trailing backslashes must be doubled so they don't
			// escape the closing quote
			sb.WriteString(strings.Repeat(`\`, backslashes))
			sb.WriteByte('"')
		}
	}
	return sb.String()
}
