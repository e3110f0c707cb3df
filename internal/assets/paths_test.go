package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"media/hero.png", "media/hero.png"},
		{"/media/hero.png", "media/hero.png"},
		{"  media/hero.png  ", "media/hero.png"},
		{"media\\icons\\home.svg", "media/icons/home.svg"},
		{"media//hero.png", "media/hero.png"},
		{"./media/./hero.png", "media/hero.png"},
		{"../../etc/passwd", "etc/passwd"},
		{"media/../hero.png", "media/hero.png"},
		{"", ""},
		{"  ", ""},
		{"/..", ""},
		{".", ""},
	}
	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Fatalf("NormalizePath(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	inputs := []string{"media/hero.png", "\\a\\b\\..\\c", "/x//y/./z", "..", "a/+ b/c.png"}
	for _, in := range inputs {
		once := NormalizePath(in)
		if twice := NormalizePath(once); twice != once {
			t.Fatalf("NormalizePath not idempotent for %q: %q != %q", in, twice, once)
		}
		for _, segment := range strings.Split(once, "/") {
			if segment == ".." {
				t.Fatalf("NormalizePath(%q) kept a .. segment: %q", in, once)
			}
		}
	}
}

func TestResolveRejectsEscapes(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "inside.txt"), []byte("ok"), 0o644); err != nil {
		t.Fatal(err)
	}
	outside := filepath.Join(filepath.Dir(root), "outside.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer os.Remove(outside)

	for _, p := range []string{"../../secret", "/etc/passwd", "a/../../outside.txt"} {
		if resolved, ok := Resolve(root, NormalizePath(p)); ok {
			// NormalizePath strips traversal, so a hit here must still be
			// inside the root.
			if !strings.HasPrefix(resolved, root) {
				t.Fatalf("Resolve escaped root for %q: got=%q", p, resolved)
			}
		}
	}

	if _, ok := Resolve(root, "missing.txt"); ok {
		t.Fatal("Resolve succeeded for a missing file")
	}
	if resolved, ok := Resolve(root, "inside.txt"); !ok || resolved == "" {
		t.Fatalf("Resolve failed for existing file: ok=%v", ok)
	}
	if _, ok := Resolve(root, ""); ok {
		t.Fatal("Resolve succeeded for empty path")
	}
	if _, ok := Resolve("", "inside.txt"); ok {
		t.Fatal("Resolve succeeded without a root")
	}
}

func TestResolveRejectsSymlinkEscape(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "outside.txt")
	if err := os.WriteFile(target, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "sneaky.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if resolved, ok := Resolve(root, "sneaky.txt"); ok {
		t.Fatalf("Resolve followed a symlink out of root: got=%q", resolved)
	}
}

func TestResolveRejectsDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "media"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, ok := Resolve(root, "media"); ok {
		t.Fatal("Resolve succeeded for a directory")
	}
}
