package assets

import (
	"path"
	"sort"
	"strings"

	"github.com/yamui/generator-backend/internal/domain"
)

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".bmp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true, ".mkv": true, ".avi": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".aac": true, ".ogg": true,
}

var fontExtensions = map[string]bool{
	".ttf": true, ".otf": true, ".woff": true, ".woff2": true,
}

// extraUploadExtensions are non-media types explicitly admitted by the
// ingestion pipeline.
var extraUploadExtensions = map[string]bool{
	".zip": true, ".json": true, ".yaml": true, ".yml": true,
	".txt": true, ".csv": true, ".bin": true, ".glb": true, ".gltf": true,
}

// KindOf derives the asset kind from the extension alone.
func KindOf(normalized string) string {
	ext := strings.ToLower(path.Ext(normalized))
	switch {
	case imageExtensions[ext]:
		return domain.KindImage
	case videoExtensions[ext]:
		return domain.KindVideo
	case audioExtensions[ext]:
		return domain.KindAudio
	case fontExtensions[ext]:
		return domain.KindFont
	case ext != "":
		return domain.KindBinary
	default:
		return domain.KindUnknown
	}
}

func isAllowedUploadExtension(ext string) bool {
	if ext == "" {
		return false
	}
	return imageExtensions[ext] || videoExtensions[ext] || audioExtensions[ext] ||
		fontExtensions[ext] || extraUploadExtensions[ext]
}

// allowedUploadExtensions returns the sorted allow-list, used verbatim in
// the rejection message.
func allowedUploadExtensions() []string {
	out := make([]string, 0, 32)
	for _, set := range []map[string]bool{
		imageExtensions, videoExtensions, audioExtensions, fontExtensions, extraUploadExtensions,
	} {
		for ext := range set {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}
