package domain

// PackageEntry is the single cached resolution for the active package
// project. It is replaced wholesale on invalidation, never partially updated.
type PackageEntry struct {
	// Fingerprint of the manifest and build configuration files that
	// produced Args.
	Fingerprint Fingerprint
	// Args is the resolved argument set. Owned by the cache; callers
	// receive clones.
	Args ArgumentSet
	// HeaderPackage is the dependency whose precompiled header should be
	// attached to package translation units, or "" for none.
	HeaderPackage string
}

// SourceEntry is a cached resolution for one standalone source file.
type SourceEntry struct {
	// Fingerprint derived from the file's dependency attributes.
	Fingerprint Fingerprint
	// Args is the resolved argument set. Owned by the cache; callers
	// receive clones.
	Args ArgumentSet
}
