package assets

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yamui/generator-backend/internal/domain"
	"github.com/yamui/generator-backend/internal/platform/apierr"
)

// copyChunkSize is the streaming granularity; the quota check runs once per
// chunk, so at most one extra chunk is read past the limit.
const copyChunkSize = 1 << 20

// Ingest admits a byte stream into the asset store: it validates the
// destination and extension, streams to disk under the upload quota with
// abort-and-cleanup on overflow, derives a thumbnail (best effort),
// persists tags and returns the catalog entry for the new path. Ingestion
// knows nothing about project references, so usage_count is always 0.
func (s *Service) Ingest(stream io.Reader, filename, desiredPath string, tags []string) (*domain.AssetReference, error) {
	input := desiredPath
	if input == "" {
		input = filename
	}
	normalized := NormalizePath(input)
	if normalized == "" {
		return nil, apierr.InvalidArgument("a destination path or filename is required")
	}
	if s.cfg.Root == "" {
		return nil, apierr.Configuration("asset root is not configured")
	}
	if err := os.MkdirAll(s.cfg.Root, 0o755); err != nil {
		return nil, apierr.Configuration("create asset root: %v", err)
	}

	// NormalizePath already strips traversal segments; the containment
	// check is the second gate.
	destination := filepath.Join(s.cfg.Root, filepath.FromSlash(normalized))
	if !containedIn(s.cfg.Root, destination) {
		return nil, apierr.InvalidArgument("asset path escapes configured root")
	}

	extension := strings.ToLower(path.Ext(normalized))
	if err := s.checkExtension(extension); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return nil, apierr.Configuration("create asset directory: %v", err)
	}
	// Lexical containment is not enough once directories exist: a symlinked
	// directory inside the root could point outside it. Re-check against the
	// canonical destination before any byte is written.
	destination, err := canonicalDestination(s.cfg.Root, destination)
	if err != nil {
		return nil, err
	}

	// Rewind if the caller handed us a consumed seekable stream.
	if seeker, ok := stream.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	written, err := s.copyWithQuota(stream, destination)
	if err != nil {
		return nil, err
	}
	if written == 0 {
		os.Remove(destination)
		return nil, apierr.InvalidArgument("uploaded file is empty")
	}

	s.maybeThumbnail(normalized, destination)

	tagMap, err := s.tags.Persist(normalized, tags)
	if err != nil {
		return nil, err
	}
	return s.summarize(normalized, 0, nil, nil, tagMap), nil
}

func (s *Service) checkExtension(extension string) error {
	if s.cfg.AllowUnknownExt {
		return nil
	}
	if extension == "" {
		return apierr.UnsupportedMediaType("uploaded file must include an extension")
	}
	if !isAllowedUploadExtension(extension) {
		return apierr.UnsupportedMediaType(
			"extension %q is not allowed, allowed types: %s",
			extension, strings.Join(allowedUploadExtensions(), ", "),
		)
	}
	return nil
}

// copyWithQuota streams to destination in fixed-size chunks. Exceeding the
// quota mid-copy aborts immediately: the partial file is closed and removed
// before the error surfaces, so no truncated upload is ever left behind.
func (s *Service) copyWithQuota(stream io.Reader, destination string) (int64, error) {
	out, err := os.Create(destination)
	if err != nil {
		return 0, apierr.Configuration("create destination file: %v", err)
	}
	var total int64
	buf := make([]byte, copyChunkSize)
	for {
		n, readErr := stream.Read(buf)
		if n > 0 {
			total += int64(n)
			if total > s.cfg.MaxUploadBytes {
				out.Close()
				os.Remove(destination)
				limitMB := s.cfg.MaxUploadBytes / (1024 * 1024)
				if limitMB < 1 {
					limitMB = 1
				}
				return 0, apierr.PayloadTooLarge("file exceeds max upload size of %d MB", limitMB)
			}
			if _, err := out.Write(buf[:n]); err != nil {
				out.Close()
				os.Remove(destination)
				return 0, apierr.Configuration("write destination file: %v", err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			out.Close()
			os.Remove(destination)
			return 0, apierr.InvalidArgument("read upload stream: %v", readErr)
		}
	}
	if err := out.Close(); err != nil {
		os.Remove(destination)
		return 0, apierr.Configuration("close destination file: %v", err)
	}
	return total, nil
}
