package probe

import (
	"os"
	"strings"

	"go.trai.ch/rcdb/internal/core/ports"
)

// Environment builds the environment for a simulated build: the process
// environment, with any discovered toolchain bin directories prepended to
// PATH, plus the given extra "KEY=VALUE" entries.
func Environment(locator ports.ToolchainLocator, extra ...string) []string {
	env := os.Environ()

	if tc, ok := locator.Locate(); ok && len(tc.BinDirs) > 0 {
		prefix := strings.Join(tc.BinDirs, string(os.PathListSeparator))
		for i, entry := range env {
			k, v, found := strings.Cut(entry, "=")
			if found && k == "PATH" {
				env[i] = "PATH=" + prefix + string(os.PathListSeparator) + v
				prefix = ""
				break
			}
		}
		if prefix != "" {
			env = append(env, "PATH="+prefix)
		}
	}

	return append(env, extra...)
}
