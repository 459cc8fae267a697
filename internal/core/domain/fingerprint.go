package domain

// Fingerprint is an opaque summary of the inputs that would change a
// resolved argument set. Equal fingerprints mean cached arguments may be
// reused without invoking the build tool; the zero value means the inputs
// could not be fingerprinted (not a recognized unit, or no project).
type Fingerprint string

// Empty reports whether the fingerprint is the zero value.
func (f Fingerprint) Empty() bool {
	return f == ""
}
