package resolver

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/engine/probe"
	"go.trai.ch/zerr"
)

var (
	// attributePattern matches inline dependency attributes such as
	// // [[Rcpp::depends(BH)]] or // [[Rcpp::export]].
	attributePattern = regexp.MustCompile(`(?m)^[ \t]*//[ \t]*\[\[Rcpp::(\w+)(\(.*?\))?\]\][ \t]*$`)

	// rcppIncludePattern matches a plain include of the dependency header.
	rcppIncludePattern = regexp.MustCompile(`#include\s+<Rcpp`)

	// rcpp11IncludePattern matches the Rcpp11 variant. sourceCpp is what we
	// dry-run to recover the compile line, and it only speaks Rcpp proper,
	// so Rcpp11 files are excluded from resolution entirely. Packages using
	// Rcpp11 still work through the package path.
	rcpp11IncludePattern = regexp.MustCompile(`#include\s+<Rcpp11`)

	spaceRun = regexp.MustCompile(`\s+`)
)

// standaloneArgs returns the compile arguments for a free-standing
// annotated source file, resolving through the single-file build driver
// when the file's dependency signature changed.
func (d *Database) standaloneArgs(ctx context.Context, path string) (domain.ArgumentSet, bool) {
	signature := sourceSignature(path, d.logger)
	fp := signatureFingerprint(signature)

	if entry, ok := d.sources[path]; ok && entry.Fingerprint == fp {
		return entry.Args, true
	}

	// No recognized dependency declarations: not a standalone unit we can
	// resolve.
	if fp.Empty() {
		return nil, false
	}

	env := probe.Environment(d.locator)
	result, err := d.tool.DryRunSourceCpp(ctx, env, path)
	if err != nil {
		d.logger.Error(zerr.Wrap(err, domain.ErrToolInvocationFailed.Error()))
		return nil, false
	}
	if !result.Success() {
		d.logger.Error(zerr.With(
			zerr.With(domain.ErrToolInvocationFailed, "exit_code", result.ExitCode),
			"stderr", result.Stderr,
		))
		return nil, false
	}

	args := d.index.CompileArgs(true)
	args = args.Append(d.parser.ExtractFlags(filepath.Base(path), result.Output())...)

	if !args.Empty() {
		d.sources[path] = domain.SourceEntry{
			Fingerprint: fp,
			Args:        args,
		}
	}
	return args, false
}

// sourceSignature scans a source file for dependency declarations and
// returns them concatenated in order, whitespace-collapsed. The result is
// empty when the file carries no recognized declarations; a file that only
// includes the dependency header without attributes yields the sentinel
// package name.
func sourceSignature(path string, logger interface{ Error(error) }) string {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the indexer
	if err != nil {
		logger.Error(zerr.Wrap(err, "failed to read source file"))
		return ""
	}
	contents := string(data)

	if rcpp11IncludePattern.MatchString(contents) {
		return ""
	}

	var sb strings.Builder
	for _, attrib := range attributePattern.FindAllString(contents, -1) {
		sb.WriteString(collapseSpace(attrib))
	}

	if sb.Len() == 0 && rcppIncludePattern.MatchString(contents) {
		return rcppPackage
	}
	return sb.String()
}

// collapseSpace trims s and collapses internal whitespace runs to single
// spaces, so formatting-only edits to an attribute do not change the
// signature.
func collapseSpace(s string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}
