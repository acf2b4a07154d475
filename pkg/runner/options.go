// Package runner classifies many JPEG files concurrently and aggregates the results.
package runner

// Options controls which files a run visits and how many workers it uses.
type Options struct {
	// Paths are files or directories to scan. Empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob matching.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions are lowercase file extensions with a leading dot.
	// Empty means DefaultExtensions().
	Extensions []string

	// IncludeGlobs restricts discovery to matching paths when non-empty.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories (config ignore plus --ignore).
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// Jobs is the worker count. Zero or less means runtime.NumCPU().
	Jobs int
}

// DefaultExtensions returns the extensions JPEG files are commonly stored under.
func DefaultExtensions() []string {
	return []string{".jpg", ".jpeg", ".jfif", ".jpe"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
