package domain

// ProcessResult captures the outcome of a spawned external command.
type ProcessResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited cleanly.
func (r ProcessResult) Success() bool {
	return r.ExitCode == 0
}

// Output returns stdout and stderr concatenated, stdout first. Dry-run
// drivers are not consistent about which stream carries the echoed compile
// line, so log parsing scans both.
func (r ProcessResult) Output() string {
	if r.Stderr == "" {
		return r.Stdout
	}
	return r.Stdout + "\n" + r.Stderr
}
