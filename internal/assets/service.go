// Package assets is the asset catalog and ingestion core: path sandboxing,
// quota-enforced streaming uploads, best-effort thumbnail derivation,
// HMAC-signed URLs, a JSON tag side-table and the per-request catalog build.
package assets

import (
	"github.com/yamui/generator-backend/internal/platform/logger"
)

// Service wires the asset core together. The configuration is immutable for
// the lifetime of the service; the asset root directory and the tag store
// file are shared mutable state across concurrent requests.
type Service struct {
	cfg    Config
	log    *logger.Logger
	codec  ThumbnailCodec
	signer *URLSigner
	tags   *TagStore
}

func NewService(cfg Config, log *logger.Logger, codec ThumbnailCodec) *Service {
	if codec == nil {
		codec = NopCodec{}
	}
	return &Service{
		cfg:    cfg,
		log:    log.With("service", "AssetService"),
		codec:  codec,
		signer: NewURLSigner(cfg),
		tags:   NewTagStore(cfg.Root),
	}
}

// TagStore exposes the side-table, mainly for tests and diagnostics.
func (s *Service) TagStore() *TagStore { return s.tags }
