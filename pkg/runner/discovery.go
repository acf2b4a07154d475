package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds JPEG files under opts.Paths. Explicitly named files are kept
// when their extension matches, even if hidden. The result is absolute, sorted,
// and free of duplicates.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	walker := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := walker.walk(absPath); err != nil {
				return nil, err
			}
			continue
		}

		if walker.matches(absPath) {
			walker.add(absPath)
		}
	}

	slices.Sort(walker.files)

	return walker.files, nil
}

type walker struct {
	ctx        context.Context //nolint:containedctx // Scoped to a single Discover call.
	workDir    string
	extensions []string
	opts       Options
	seen       map[string]struct{}
	files      []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if path != root && (hidden || matchesAny(w.rel(path), w.opts.ExcludeGlobs)) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.symlink(path)
		}

		if w.matches(path) {
			w.add(path)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}

	return nil
}

// symlink handles a symlink found while walking. Broken links are skipped.
// Directory links are walked through their target only with FollowSymlinks.
func (w *walker) symlink(path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Unreadable targets are skipped.
	}

	if info.IsDir() {
		if !w.opts.FollowSymlinks {
			return nil
		}
		return w.walk(target)
	}

	if w.matches(path) {
		w.add(path)
	}

	return nil
}

func (w *walker) rel(path string) string {
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// matches applies the extension, exclude, and include filters to a file.
func (w *walker) matches(path string) bool {
	if !hasExtension(path, w.extensions) {
		return false
	}

	rel := w.rel(path)

	if matchesAny(rel, w.opts.ExcludeGlobs) {
		return false
	}

	if len(w.opts.IncludeGlobs) > 0 && !matchesAny(rel, w.opts.IncludeGlobs) {
		return false
	}

	return true
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}

	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	return absPath, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range extensions {
		if strings.ToLower(candidate) == ext {
			return true
		}
	}
	return false
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// MatchGlob matches a slash-separated relative path against a glob pattern.
// "**" matches any number of path segments. A pattern without a slash also
// matches the base name, so "*.jpe" excludes such files at any depth.
func MatchGlob(relPath, pattern string) bool {
	relPath = filepath.ToSlash(relPath)
	pattern = filepath.ToSlash(pattern)

	if !strings.Contains(pattern, "/") && !strings.Contains(pattern, "**") {
		if ok, _ := path.Match(pattern, path.Base(relPath)); ok {
			return true
		}
	}

	return matchSegments(strings.Split(relPath, "/"), strings.Split(pattern, "/"))
}

func matchSegments(parts, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for skip := 0; skip <= len(parts); skip++ {
				if matchSegments(parts[skip:], rest) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, err := path.Match(pattern[0], parts[0])
		if err != nil || !ok {
			return false
		}

		parts, pattern = parts[1:], pattern[1:]
	}

	return len(parts) == 0
}
