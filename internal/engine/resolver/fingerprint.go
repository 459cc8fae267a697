package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rcdb/internal/core/domain"
)

// packageFingerprint summarizes the files whose changes would invalidate
// the package argument cache: the manifest and the per-package build
// configuration. Mtimes rather than contents keep the check cheap enough to
// run on every lookup.
func (d *Database) packageFingerprint() domain.Fingerprint {
	pkgDir := d.project.Dir()
	srcDir := domain.SrcPath(pkgDir)

	digest := xxhash.New()
	for _, path := range []string{
		domain.ManifestPath(pkgDir),
		filepath.Join(srcDir, domain.MakevarsFileName),
		filepath.Join(srcDir, domain.MakevarsWinFileName),
	} {
		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})
		_, _ = digest.WriteString(mtimeToken(path))
		_, _ = digest.Write([]byte{0})
	}
	return domain.Fingerprint(fmt.Sprintf("%016x", digest.Sum64()))
}

// mtimeToken returns the last-modified timestamp of path, or a sentinel for
// files that do not exist (their appearance is itself an invalidation).
func mtimeToken(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "absent"
	}
	return strconv.FormatInt(info.ModTime().UnixNano(), 10)
}

// signatureFingerprint hashes a standalone file's dependency signature. An
// empty signature has no fingerprint: the file is not a recognized
// standalone unit.
func signatureFingerprint(signature string) domain.Fingerprint {
	if signature == "" {
		return ""
	}
	return domain.Fingerprint(fmt.Sprintf("%016x", xxhash.Sum64String(signature)))
}
