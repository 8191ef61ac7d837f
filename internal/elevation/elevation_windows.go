//go:build windows

package elevation

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process token carries elevation.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch starts a new elevated copy of the current binary with the given
// arguments via ShellExecuteW("runas"). On success the caller should exit;
// the elevated copy carries on. The UAC prompt appears in between, so a
// user decline surfaces as an error here.
func Relaunch(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(buildCommandLine(args))
	if err != nil {
		return err
	}

	return windows.ShellExecute(0, verb, file, params, nil, windows.SW_SHOWNORMAL)
}

func buildCommandLine(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, quoteArg(a))
	}
	return strings.Join(quoted, " ")
}

// quoteArg quotes a single argument following the CreateProcess rules:
// backslashes only need doubling when they precede a quote.
func quoteArg(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"") {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	backslashes := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			backslashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, backslashes*2+1))
			b.WriteByte('"')
			backslashes = 0
		default:
			if backslashes > 0 {
				b.WriteString(strings.Repeat(`\`, backslashes))
				backslashes = 0
			}
			b.WriteByte(s[i])
		}
	}
	b.WriteString(strings.Repeat(`\`, backslashes*2))
	b.WriteByte('"')
	return b.String()
}
