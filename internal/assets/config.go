package assets

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yamui/generator-backend/internal/platform/envutil"
	"github.com/yamui/generator-backend/internal/platform/logger"
)

// On-disk layout relative to the asset root. Load-bearing for interop with
// existing stores: the tag file and the thumbnail shadow tree are excluded
// from catalog walks by name.
const (
	TagStoreFileName = ".yamui_asset_tags.json"
	ThumbnailDirName = ".yamui-thumbnails"

	localAssetRoute = "/assets/files"
)

const (
	defaultURLTTLSeconds  = 3600
	minURLTTLSeconds      = 60
	defaultMaxUploadBytes = 25 * 1024 * 1024
	minUploadBytes        = 1024
)

// Config is the immutable operational configuration of the asset core.
// It is built once (FromEnv) and passed into NewService; nothing in the
// core reads the environment after that.
type Config struct {
	// Root is the asset store directory. Empty means no storage is
	// configured; catalog builds still work from project references alone.
	Root string
	// CDNBase, when set, is an absolute URL prefix for public asset URLs.
	CDNBase string
	// PublicBase is prepended to locally served relative URLs.
	PublicBase string
	// SigningSecret switches HMAC URL signing on when non-empty.
	SigningSecret string
	// URLTTLSeconds is the lifetime of signed URLs.
	URLTTLSeconds int64
	// MaxUploadBytes is the streaming upload quota.
	MaxUploadBytes int64
	// AllowUnknownExt admits uploads whose extension is missing or not in
	// the allow-list.
	AllowUnknownExt bool
}

// FromEnv resolves the configuration from the process environment.
// Invalid optional values fall back with a warning; only the root is
// required, and its absence is reported by the operations that need it.
func FromEnv(log *logger.Logger) Config {
	cfg := Config{
		Root:            envutil.String("YAMUI_ASSET_ROOT", ""),
		PublicBase:      strings.TrimRight(envutil.String("YAMUI_ASSET_PUBLIC_BASE", ""), "/"),
		SigningSecret:   os.Getenv("YAMUI_ASSET_SIGNING_SECRET"),
		URLTTLSeconds:   int64(envutil.Int("YAMUI_ASSET_URL_TTL", defaultURLTTLSeconds)),
		MaxUploadBytes:  parseByteSize(os.Getenv("YAMUI_ASSET_MAX_SIZE")),
		AllowUnknownExt: envutil.Flag("YAMUI_ASSET_ALLOW_UNKNOWN_EXT"),
	}
	if cfg.Root != "" {
		if abs, err := filepath.Abs(cfg.Root); err == nil {
			cfg.Root = abs
		}
	}
	if cfg.URLTTLSeconds < minURLTTLSeconds {
		cfg.URLTTLSeconds = minURLTTLSeconds
	}
	if raw := strings.TrimSpace(os.Getenv("YAMUI_ASSET_CDN")); raw != "" {
		cleaned := strings.TrimRight(raw, "/")
		parsed, err := url.Parse(cleaned)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			if log != nil {
				log.Warn("ignoring YAMUI_ASSET_CDN because it is not an absolute URL", "value", raw)
			}
		} else {
			cfg.CDNBase = cleaned
		}
	}
	return cfg
}

// parseByteSize understands plain byte counts and kb/mb/gb suffixes with
// binary multiples. Unparseable input falls back to the default; the floor
// is 1 KiB.
func parseByteSize(raw string) int64 {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return defaultMaxUploadBytes
	}
	multiplier := int64(1)
	switch {
	case strings.HasSuffix(text, "kb"):
		multiplier = 1024
		text = strings.TrimSuffix(text, "kb")
	case strings.HasSuffix(text, "mb"):
		multiplier = 1024 * 1024
		text = strings.TrimSuffix(text, "mb")
	case strings.HasSuffix(text, "gb"):
		multiplier = 1024 * 1024 * 1024
		text = strings.TrimSuffix(text, "gb")
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return defaultMaxUploadBytes
	}
	size := int64(value * float64(multiplier))
	if size < minUploadBytes {
		return minUploadBytes
	}
	return size
}
