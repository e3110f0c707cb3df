package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yamui/generator-backend/internal/platform/apierr"
)

// NormalizePath reduces a user-supplied path to the canonical root-relative
// form: trimmed, forward slashes, no leading slash, no empty, "." or ".."
// segments. The empty string means the input normalized to nothing and must
// be treated as invalid by the caller.
func NormalizePath(raw string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), "\\", "/")
	normalized = strings.TrimLeft(normalized, "/")
	parts := strings.Split(normalized, "/")
	segments := parts[:0]
	for _, segment := range parts {
		if segment == "" || segment == "." || segment == ".." {
			continue
		}
		segments = append(segments, segment)
	}
	return strings.Join(segments, "/")
}

// Resolve maps a normalized path to its absolute on-disk location under
// root. It returns ok=false unless the canonical (symlink-evaluated) result
// is still inside root and refers to an existing regular file. Together with
// NormalizePath this is the traversal defense: lexical normalization first,
// canonical containment second.
func Resolve(root, normalized string) (string, bool) {
	if root == "" || normalized == "" {
		return "", false
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	rootCanon, err := filepath.EvalSymlinks(rootAbs)
	if err != nil {
		rootCanon = rootAbs
	}
	candidate := filepath.Join(rootAbs, filepath.FromSlash(normalized))
	canon, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", false
	}
	if !containedIn(rootCanon, canon) {
		return "", false
	}
	info, err := os.Stat(canon)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return canon, true
}

// canonicalDestination is the write-side counterpart of Resolve: once the
// destination's parent directory exists, both it and any pre-existing file at
// the destination are symlink-evaluated and must still land inside the
// canonical root. Catches a symlinked directory (or file) inside the root
// pointing out of it.
func canonicalDestination(root, destination string) (string, error) {
	rootCanon, err := filepath.EvalSymlinks(root)
	if err != nil {
		rootCanon = root
	}
	parent, err := filepath.EvalSymlinks(filepath.Dir(destination))
	if err != nil {
		return "", apierr.Configuration("resolve asset directory: %v", err)
	}
	if !containedIn(rootCanon, parent) {
		return "", apierr.InvalidArgument("asset path escapes configured root")
	}
	canon := filepath.Join(parent, filepath.Base(destination))
	if resolved, err := filepath.EvalSymlinks(canon); err == nil {
		if !containedIn(rootCanon, resolved) {
			return "", apierr.InvalidArgument("asset path escapes configured root")
		}
		canon = resolved
	}
	return canon, nil
}

// containedIn reports whether candidate is lexically inside root. Both
// arguments must already be absolute.
func containedIn(root, candidate string) bool {
	rel, err := filepath.Rel(root, candidate)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
