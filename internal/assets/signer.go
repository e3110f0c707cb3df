package assets

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

// URLSigner builds public and thumbnail URLs for normalized asset paths and,
// when a signing secret is configured, appends a capability-style expiring
// token. Verification is the concern of whatever serves the file; the
// construction here is the wire contract:
//
//	?token=<hex hmac-sha256(secret, "<path>:<expires>")>&expires=<unix>
type URLSigner struct {
	cfg Config
	now func() time.Time
}

func NewURLSigner(cfg Config) *URLSigner {
	return &URLSigner{cfg: cfg, now: time.Now}
}

// PublicURL returns the download URL for a normalized path, or "" when no
// URL can be built (empty path, or neither CDN nor root configured).
func (s *URLSigner) PublicURL(normalized string) string {
	if normalized == "" {
		return ""
	}
	raw := s.rawURL(quotePath(normalized))
	if raw == "" {
		return ""
	}
	return s.sign(raw, normalized)
}

// ThumbnailURL returns the URL of the derived thumbnail, or "" when no
// derivative exists on disk. The token is still computed over the source
// path, matching the download URL contract.
func (s *URLSigner) ThumbnailURL(normalized string) string {
	if normalized == "" || s.cfg.Root == "" {
		return ""
	}
	relative := thumbnailRelPath(normalized)
	if _, ok := Resolve(s.cfg.Root, relative); !ok {
		return ""
	}
	raw := s.rawURL(quotePath(relative))
	if raw == "" {
		return ""
	}
	return s.sign(raw, normalized)
}

func (s *URLSigner) rawURL(encoded string) string {
	if s.cfg.CDNBase != "" {
		return s.cfg.CDNBase + "/" + encoded
	}
	if s.cfg.Root == "" {
		return ""
	}
	local := localAssetRoute + "/" + encoded
	if s.cfg.PublicBase != "" {
		return s.cfg.PublicBase + local
	}
	return local
}

func (s *URLSigner) sign(rawURL, normalized string) string {
	if s.cfg.SigningSecret == "" {
		return rawURL
	}
	expires := s.now().Unix() + s.cfg.URLTTLSeconds
	mac := hmac.New(sha256.New, []byte(s.cfg.SigningSecret))
	mac.Write([]byte(normalized + ":" + strconv.FormatInt(expires, 10)))
	digest := hex.EncodeToString(mac.Sum(nil))
	separator := "?"
	if strings.Contains(rawURL, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%stoken=%s&expires=%d", rawURL, separator, digest, expires)
}

// thumbnailRelPath maps a source path to its shadow-tree derivative,
// replacing the extension with .jpg.
func thumbnailRelPath(normalized string) string {
	ext := path.Ext(normalized)
	return ThumbnailDirName + "/" + strings.TrimSuffix(normalized, ext) + ".jpg"
}

// quotePath percent-encodes a normalized path, preserving "/" and "+" so
// signed URLs stay bit-compatible with existing stores.
func quotePath(normalized string) string {
	var b strings.Builder
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '~' || c == '/' || c == '+':
			b.WriteByte(c)
		default:
			b.WriteString(fmt.Sprintf("%%%02X", c))
		}
	}
	return b.String()
}
