package argbind

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sys/unix"
)

// fieldNameToFlagName converts a Go field name to its kebab-case form, e.g. "OutputFile" to "output-file" and
// "HTTPPort" to "http-port".
func fieldNameToFlagName(fieldName string) string {
	runes := []rune(fieldName)
	var result []rune
	for i, r := range runes {
		if i == 0 {
			result = append(result, unicode.ToLower(r))
		} else if unicode.IsUpper(r) {
			if unicode.IsLower(runes[i-1]) {
				result = append(result, '-')
			}
			result = append(result, unicode.ToLower(r))
		} else {
			if i >= 2 && unicode.IsUpper(runes[i-1]) && unicode.IsUpper(runes[i-2]) {
				last := result[len(result)-1]
				result = append(result[0:len(result)-1], '-', last)
			}
			result = append(result, r)
		}
	}
	return string(result)
}

func getTerminalWidth() int {
	fd := int(os.Stdout.Fd())
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80
	}
	return int(ws.Col)
}

// getProcessName returns the executable's base name, as invoked.
func getProcessName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
}

// getBuildVersion returns the main module's version, as recorded by the Go toolchain in the binary.
func getBuildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if _, err := semver.NewVersion(info.Main.Version); err == nil {
			return info.Main.Version
		}
	}
	return "0.0.0"
}

// formatVersion renders a version as "<major>.<minor>.<patch>", dropping any prerelease or build metadata.
// Versions that are not semantic versions are returned as is.
func formatVersion(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
