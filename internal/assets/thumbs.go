package assets

import (
	"image"
	"image/jpeg"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	thumbnailMaxDim      = 640
	thumbnailJPEGQuality = 80
)

// ThumbnailCodec is the image derivative capability. The service selects an
// implementation at startup instead of probing codec availability at call
// sites; NopCodec stands in when derivatives are disabled.
type ThumbnailCodec interface {
	// Thumbnail writes a bounded JPEG derivative of srcPath to dstPath,
	// creating parent directories as needed.
	Thumbnail(srcPath, dstPath string) error
}

// NopCodec produces no derivatives.
type NopCodec struct{}

func (NopCodec) Thumbnail(_, _ string) error { return nil }

// ImageCodec decodes png/jpeg/gif/webp/bmp, converts to NRGBA and
// downsamples to fit within 640x640 preserving aspect ratio. Images already
// within bounds are re-encoded without upscaling.
type ImageCodec struct{}

func (ImageCodec) Thumbnail(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	decoded, _, err := image.Decode(src)
	if err != nil {
		return err
	}
	bounds := decoded.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	scaledW, scaledH := fitWithin(width, height, thumbnailMaxDim)
	scaled := image.NewNRGBA(image.Rect(0, 0, scaledW, scaledH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), decoded, bounds, draw.Over, nil)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(dst, scaled, &jpeg.Options{Quality: thumbnailJPEGQuality}); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return err
	}
	return dst.Close()
}

func fitWithin(width, height, max int) (int, int) {
	if width <= 0 || height <= 0 {
		return 1, 1
	}
	if width <= max && height <= max {
		return width, height
	}
	if width >= height {
		scaled := height * max / width
		if scaled < 1 {
			scaled = 1
		}
		return max, scaled
	}
	scaled := width * max / height
	if scaled < 1 {
		scaled = 1
	}
	return scaled, max
}

// maybeThumbnail derives a JPEG under the shadow tree for image-kind
// sources. Failures are logged and swallowed; a missing derivative must
// never fail an upload.
func (s *Service) maybeThumbnail(normalized, sourcePath string) {
	if s.cfg.Root == "" {
		return
	}
	ext := strings.ToLower(path.Ext(sourcePath))
	if !imageExtensions[ext] {
		return
	}
	dst := filepath.Join(s.cfg.Root, filepath.FromSlash(thumbnailRelPath(normalized)))
	if err := s.codec.Thumbnail(sourcePath, dst); err != nil {
		s.log.Debug("thumbnail generation failed", "path", normalized, "error", err)
	}
}
