package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// targetPlaceholder is replaced by the URL in a configured open command.
const targetPlaceholder = "{target}"

// OpenCommand returns the program and arguments that open target on goos.
// When override is non-empty it is split on whitespace; a {target}
// placeholder is substituted, otherwise target is appended as the last
// argument.
func OpenCommand(goos, override, target string) (string, []string, error) {
	if fields := strings.Fields(override); len(fields) > 0 {
		args := make([]string, 0, len(fields))
		substituted := false
		for _, f := range fields[1:] {
			if strings.Contains(f, targetPlaceholder) {
				f = strings.ReplaceAll(f, targetPlaceholder, target)
				substituted = true
			}
			args = append(args, f)
		}
		if !substituted {
			args = append(args, target)
		}
		return fields[0], args, nil
	}

	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("no default open command for %s: set open_command", goos)
	}
}

// CurrentOpenCommand is OpenCommand for the running OS.
func CurrentOpenCommand(override, target string) (string, []string, error) {
	return OpenCommand(runtime.GOOS, override, target)
}
