package domain

// Toolchain describes a discovered auxiliary compiler toolchain.
type Toolchain struct {
	// IncludeArgs are -I arguments for the toolchain's system headers. They
	// are contributed directly to resolved argument sets.
	IncludeArgs ArgumentSet
	// BinDirs are directories to prepend to PATH when running the native
	// build under this toolchain.
	BinDirs []string
}
