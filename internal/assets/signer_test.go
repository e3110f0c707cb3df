package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestPublicURLSignedAgainstCDN(t *testing.T) {
	signer := NewURLSigner(Config{
		CDNBase:       "https://cdn.example.com",
		SigningSecret: "s",
		URLTTLSeconds: 60,
	})
	signer.now = fixedClock(1699999940)

	got := signer.PublicURL("media/a.png")
	want := "https://cdn.example.com/media/a.png" +
		"?token=2deb4779d762a1a90df3dca7cce5167999968230c8d0c29e3f52d279660a1c86" +
		"&expires=1700000000"
	if got != want {
		t.Fatalf("PublicURL: got=%q want=%q", got, want)
	}
}

func TestPublicURLLocalRouteEncodesSpacesKeepsPlus(t *testing.T) {
	signer := NewURLSigner(Config{
		Root:          t.TempDir(),
		SigningSecret: "topsecret",
		URLTTLSeconds: 360,
	})
	signer.now = fixedClock(1700000000)

	got := signer.PublicURL("media/hero image+v2.png")
	want := "/assets/files/media/hero%20image+v2.png" +
		"?token=42a78a70e5d57150f76153e544b6ecee26cb30669caaa201aa4675b709d5692f" +
		"&expires=1700000360"
	if got != want {
		t.Fatalf("PublicURL: got=%q want=%q", got, want)
	}
}

func TestPublicURLWithoutSecretIsUnsigned(t *testing.T) {
	signer := NewURLSigner(Config{
		Root:       t.TempDir(),
		PublicBase: "https://studio.example.com",
	})
	got := signer.PublicURL("media/a.png")
	want := "https://studio.example.com/assets/files/media/a.png"
	if got != want {
		t.Fatalf("PublicURL: got=%q want=%q", got, want)
	}
}

func TestPublicURLUnconfigured(t *testing.T) {
	signer := NewURLSigner(Config{})
	if got := signer.PublicURL("media/a.png"); got != "" {
		t.Fatalf("PublicURL without CDN or root: got=%q want empty", got)
	}
	if got := signer.PublicURL(""); got != "" {
		t.Fatalf("PublicURL for empty path: got=%q want empty", got)
	}
}

func TestThumbnailURLRequiresDerivative(t *testing.T) {
	root := t.TempDir()
	signer := NewURLSigner(Config{Root: root})

	if got := signer.ThumbnailURL("media/a.png"); got != "" {
		t.Fatalf("ThumbnailURL without a derivative on disk: got=%q want empty", got)
	}

	thumb := filepath.Join(root, ThumbnailDirName, "media", "a.jpg")
	if err := os.MkdirAll(filepath.Dir(thumb), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(thumb, []byte{0xff, 0xd8}, 0o644); err != nil {
		t.Fatal(err)
	}

	got := signer.ThumbnailURL("media/a.png")
	want := "/assets/files/" + ThumbnailDirName + "/media/a.jpg"
	if got != want {
		t.Fatalf("ThumbnailURL: got=%q want=%q", got, want)
	}
}

func TestThumbnailURLSignsOverSourcePath(t *testing.T) {
	root := t.TempDir()
	thumb := filepath.Join(root, ThumbnailDirName, "media", "a.jpg")
	if err := os.MkdirAll(filepath.Dir(thumb), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(thumb, []byte{0xff, 0xd8}, 0o644); err != nil {
		t.Fatal(err)
	}

	signer := NewURLSigner(Config{
		Root:          root,
		SigningSecret: "s",
		URLTTLSeconds: 60,
	})
	signer.now = fixedClock(1699999940)

	// Same token as the download URL for media/a.png at the same instant.
	got := signer.ThumbnailURL("media/a.png")
	want := "/assets/files/" + ThumbnailDirName + "/media/a.jpg" +
		"?token=2deb4779d762a1a90df3dca7cce5167999968230c8d0c29e3f52d279660a1c86" +
		"&expires=1700000000"
	if got != want {
		t.Fatalf("ThumbnailURL: got=%q want=%q", got, want)
	}
}

func TestQuotePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"media/a.png", "media/a.png"},
		{"media/hero image.png", "media/hero%20image.png"},
		{"media/a+b.png", "media/a+b.png"},
		{"media/a&b=c.png", "media/a%26b%3Dc.png"},
		{"media/ü.png", "media/%C3%BC.png"},
	}
	for _, tc := range cases {
		if got := quotePath(tc.in); got != tc.want {
			t.Fatalf("quotePath(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestThumbnailRelPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"media/a.png", ThumbnailDirName + "/media/a.jpg"},
		{"a.jpeg", ThumbnailDirName + "/a.jpg"},
		{"noext", ThumbnailDirName + "/noext.jpg"},
	}
	for _, tc := range cases {
		if got := thumbnailRelPath(tc.in); got != tc.want {
			t.Fatalf("thumbnailRelPath(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}
