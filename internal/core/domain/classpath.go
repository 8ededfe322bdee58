package domain

import (
	"path/filepath"
	"strings"
)

// OriginalFilePlaceholderSuffix marks a placeholder file. A file name
// ending in this suffix means "the real content is the original file
// stored in the build-scoped cache under the hash formed by stripping
// the suffix".
const OriginalFilePlaceholderSuffix = ".original"

// IsPlaceholderFile reports whether the file path names a placeholder.
func IsPlaceholderFile(file string) bool {
	return strings.HasSuffix(filepath.Base(file), OriginalFilePlaceholderSuffix)
}

// PlaceholderHash extracts the content hash encoded in a placeholder
// file name. The result is undefined for non-placeholder names; callers
// check IsPlaceholderFile first.
func PlaceholderHash(file string) string {
	return strings.TrimSuffix(filepath.Base(file), OriginalFilePlaceholderSuffix)
}

// PlaceholderFileName builds the placeholder file name for a content
// hash.
func PlaceholderFileName(hash string) string {
	return hash + OriginalFilePlaceholderSuffix
}

// ClassPath is an ordered, deduplicated list of binary artifact files.
type ClassPath struct {
	files []string
}

// NewClassPath builds a classpath from the given files, dropping
// duplicates while preserving first-seen order.
func NewClassPath(files ...string) ClassPath {
	seen := make(map[string]struct{}, len(files))
	deduped := make([]string, 0, len(files))
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		deduped = append(deduped, f)
	}
	return ClassPath{files: deduped}
}

// Files returns the ordered entries. The returned slice is a copy.
func (c ClassPath) Files() []string {
	out := make([]string, len(c.files))
	copy(out, c.files)
	return out
}

// Len returns the number of entries.
func (c ClassPath) Len() int {
	return len(c.files)
}

// Empty reports whether the classpath has no entries.
func (c ClassPath) Empty() bool {
	return len(c.files) == 0
}
