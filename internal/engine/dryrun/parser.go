// Package dryrun extracts compiler flags from raw build-tool output.
//
// The upstream build drivers emit plain make-style logs rather than a
// structured compilation database, so this is deliberately tolerant text
// scraping: lines and flags that do not match are silently ignored. The
// scrape lives behind the Parser interface so it can be replaced wholesale
// if the log format ever changes.
package dryrun

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/rcdb/internal/core/domain"
)

// Parser extracts compile arguments from a dry-run build log.
type Parser interface {
	// ExtractFlags returns the include/define/force-include/standard flags
	// found on the compile line(s) for the named source file, in the order
	// encountered.
	ExtractFlags(srcFileName string, log string) domain.ArgumentSet
}

// flagPattern matches the flags libclang cares about: -I, -D, -i*, -std=.
// Quoted values keep their spaces; the quotes themselves are stripped later.
var flagPattern = regexp.MustCompile(`[ \t]-(?:[IDif]|std)(?:"[^"]+"|[^ ]+)`)

// MakeParser scrapes make-style dry-run logs.
type MakeParser struct{}

// NewParser creates a new MakeParser.
func NewParser() *MakeParser {
	return &MakeParser{}
}

// ExtractFlags splits the log into lines and collects flags from every line
// containing the compile invocation for srcFileName. Matching on
// "-c <file> -o <stem>" guards against unrelated compiler invocations that
// appear earlier in a verbose log.
func (p *MakeParser) ExtractFlags(srcFileName string, log string) domain.ArgumentSet {
	stem := strings.TrimSuffix(srcFileName, filepath.Ext(srcFileName))
	compile := "-c " + srcFileName + " -o " + stem

	var args domain.ArgumentSet
	for _, line := range strings.FieldsFunc(log, isLineBreak) {
		if !strings.Contains(line, compile) {
			continue
		}
		args = append(args, extractCompileArgs(line)...)
	}
	return args
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

func extractCompileArgs(line string) []string {
	var args []string
	for _, match := range flagPattern.FindAllString(line, -1) {
		arg := strings.TrimSpace(match)
		arg = strings.ReplaceAll(arg, `"`, "")
		args = append(args, arg)
	}
	return args
}
