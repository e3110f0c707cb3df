package assets

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yamui/generator-backend/internal/domain"
	"github.com/yamui/generator-backend/internal/platform/apierr"
)

// occurrence accumulates widget references against one normalized path
// before the entry is summarized.
type occurrence struct {
	usage     int
	widgetIDs []string
	targets   []string
	source    string
}

// Catalog merges the project's widget references with the files present in
// the asset store into one deduplicated, enriched, deterministically sorted
// list. The directory walk and per-file digests run on every call; callers
// needing low latency cache above this layer.
func (s *Service) Catalog(project *domain.Project, filters *domain.CatalogFilters) []*domain.AssetReference {
	tagMap := map[string][]string{}
	if s.cfg.Root != "" {
		tagMap = s.tags.Read()
	}

	seen := map[string]*occurrence{}
	order := []string{}

	register := func(src, widgetID, target string) {
		normalized := NormalizePath(src)
		if normalized == "" {
			return
		}
		entry := seen[normalized]
		if entry == nil {
			entry = &occurrence{source: "project"}
			seen[normalized] = entry
			order = append(order, normalized)
		}
		// usage counts occurrences; the id and target lists deduplicate by
		// membership. A structurally repeated widget bumps the count
		// without growing the lists.
		entry.usage++
		if widgetID == "" {
			widgetID = "anonymous"
		}
		if !contains(entry.widgetIDs, widgetID) {
			entry.widgetIDs = append(entry.widgetIDs, widgetID)
		}
		if !contains(entry.targets, target) {
			entry.targets = append(entry.targets, target)
		}
	}

	if project != nil {
		for _, name := range sortedKeys(project.Screens) {
			target := "screen:" + name
			walkWidgets(project.Screens[name].Widgets, func(w *domain.Widget) {
				if w.Src != "" {
					register(w.Src, w.ID, target)
				}
			})
		}
		for _, name := range sortedKeys(project.Components) {
			target := "component:" + name
			walkWidgets(project.Components[name].Widgets, func(w *domain.Widget) {
				if w.Src != "" {
					register(w.Src, w.ID, target)
				}
			})
		}
	}

	if s.cfg.Root != "" {
		for _, stored := range s.listStoredFiles() {
			normalized := NormalizePath(stored)
			if normalized == "" || seen[normalized] != nil {
				continue
			}
			seen[normalized] = &occurrence{source: "store"}
			order = append(order, normalized)
		}
	}

	catalog := make([]*domain.AssetReference, 0, len(order))
	for _, normalized := range order {
		occ := seen[normalized]
		entry := s.summarize(normalized, occ.usage, occ.widgetIDs, occ.targets, tagMap)
		entry.Metadata["source"] = occ.source
		catalog = append(catalog, entry)
	}

	sort.SliceStable(catalog, func(i, j int) bool {
		if catalog[i].UsageCount != catalog[j].UsageCount {
			return catalog[i].UsageCount > catalog[j].UsageCount
		}
		return strings.ToLower(catalog[i].Label) < strings.ToLower(catalog[j].Label)
	})
	return applyFilters(catalog, filters)
}

// UpdateTags persists tags for a path. With a project supplied the
// project-derived catalog is rebuilt so the returned entry carries current
// usage counts; otherwise a bare disk/tag summary with usage 0 is returned.
func (s *Service) UpdateTags(rawPath string, tags []string, project *domain.Project) (*domain.AssetReference, error) {
	normalized := NormalizePath(rawPath)
	if normalized == "" {
		return nil, apierr.InvalidArgument("path is required")
	}
	tagMap, err := s.tags.Persist(normalized, tags)
	if err != nil {
		return nil, err
	}
	if project != nil {
		for _, entry := range s.Catalog(project, nil) {
			if entry.Path == normalized {
				entry.Tags = tagList(tagMap, normalized)
				return entry, nil
			}
		}
	}
	return s.summarize(normalized, 0, nil, nil, tagMap), nil
}

// ResolveFile maps a raw path to its on-disk location for serving.
func (s *Service) ResolveFile(rawPath string) (string, error) {
	normalized := NormalizePath(rawPath)
	if normalized == "" {
		return "", apierr.NotFound("asset path is empty")
	}
	resolved, ok := Resolve(s.cfg.Root, normalized)
	if !ok {
		if s.cfg.Root == "" {
			return "", apierr.Configuration("asset root is not configured")
		}
		return "", apierr.NotFound("asset %q not found", normalized)
	}
	return resolved, nil
}

// summarize computes the full catalog entry for one normalized path.
func (s *Service) summarize(normalized string, usage int, widgetIDs, targets []string, tagMap map[string][]string) *domain.AssetReference {
	label := normalized
	if label != "" {
		label = path.Base(normalized)
	}
	if label == "" {
		label = "asset"
	}
	kind := KindOf(normalized)
	downloadURL := s.signer.PublicURL(normalized)
	thumbnailURL := s.signer.ThumbnailURL(normalized)
	previewURL := ""
	switch kind {
	case domain.KindImage:
		previewURL = downloadURL
		if thumbnailURL == "" {
			thumbnailURL = downloadURL
		}
	case domain.KindVideo:
		previewURL = thumbnailURL
		if previewURL == "" {
			previewURL = downloadURL
		}
	}

	metadata := map[string]any{}
	var sizeBytes *int64
	if resolved, ok := Resolve(s.cfg.Root, normalized); ok {
		metadata["exists_on_disk"] = true
		metadata["filesystem_path"] = resolved
		if info, err := os.Stat(resolved); err == nil {
			size := info.Size()
			sizeBytes = &size
			metadata["modified_ts"] = float64(info.ModTime().UnixNano()) / 1e9
		}
		if digest := fileSHA256(resolved); digest != "" {
			metadata["sha256"] = digest
		}
	} else {
		metadata["exists_on_disk"] = false
	}

	entry := &domain.AssetReference{
		ID:           assetDigest(firstNonEmpty(normalized, label)),
		Path:         normalized,
		Label:        label,
		Extension:    strings.ToLower(path.Ext(normalized)),
		Kind:         kind,
		UsageCount:   usage,
		WidgetIDs:    nonNil(widgetIDs),
		Targets:      nonNil(targets),
		Tags:         tagList(tagMap, normalized),
		SizeBytes:    sizeBytes,
		Metadata:     metadata,
		PreviewURL:   optional(previewURL),
		ThumbnailURL: optional(thumbnailURL),
		DownloadURL:  optional(downloadURL),
	}
	metadata["search_index"] = buildSearchIndex(entry)
	return entry
}

// listStoredFiles walks the asset root for regular files, excluding the tag
// store file and the thumbnail shadow tree. Paths come back root-relative
// with forward slashes.
func (s *Service) listStoredFiles() []string {
	var out []string
	root := s.cfg.Root
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if rel, relErr := filepath.Rel(root, p); relErr == nil && filepath.ToSlash(rel) == ThumbnailDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		relative := filepath.ToSlash(rel)
		if relative == TagStoreFileName || strings.HasPrefix(relative, ThumbnailDirName+"/") {
			return nil
		}
		out = append(out, relative)
		return nil
	})
	sort.Strings(out)
	return out
}

// applyFilters is AND-composed: kind membership first (cheapest reject),
// then tag subset, then target intersection, then the free-text query
// against the precomputed search blob.
func applyFilters(catalog []*domain.AssetReference, filters *domain.CatalogFilters) []*domain.AssetReference {
	if filters == nil {
		return catalog
	}
	query := strings.ToLower(strings.TrimSpace(filters.Query))
	tagFilters := map[string]bool{}
	for _, tag := range filters.Tags {
		if trimmed := strings.ToLower(strings.TrimSpace(tag)); trimmed != "" {
			tagFilters[trimmed] = true
		}
	}
	kindFilters := map[string]bool{}
	for _, kind := range filters.Kinds {
		kindFilters[kind] = true
	}

	matches := func(entry *domain.AssetReference) bool {
		if len(kindFilters) > 0 && !kindFilters[entry.Kind] {
			return false
		}
		if len(tagFilters) > 0 {
			have := map[string]bool{}
			for _, tag := range entry.Tags {
				have[strings.ToLower(tag)] = true
			}
			for tag := range tagFilters {
				if !have[tag] {
					return false
				}
			}
		}
		if len(filters.Targets) > 0 {
			hit := false
			for _, target := range entry.Targets {
				if contains(filters.Targets, target) {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		}
		if query != "" {
			haystack, _ := entry.Metadata["search_index"].(string)
			if haystack == "" {
				haystack = buildSearchIndex(entry)
			}
			if !strings.Contains(haystack, query) {
				return false
			}
		}
		return true
	}

	out := make([]*domain.AssetReference, 0, len(catalog))
	for _, entry := range catalog {
		if matches(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// walkWidgets visits a widget forest pre-order (parent before children)
// with an explicit stack, so hostile nesting depth cannot blow the call
// stack.
func walkWidgets(roots []domain.Widget, visit func(*domain.Widget)) {
	type frame struct {
		widgets []domain.Widget
		index   int
	}
	stack := []frame{{widgets: roots}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.index >= len(top.widgets) {
			stack = stack[:len(stack)-1]
			continue
		}
		w := &top.widgets[top.index]
		top.index++
		visit(w)
		if len(w.Widgets) > 0 {
			stack = append(stack, frame{widgets: w.Widgets})
		}
	}
}

func buildSearchIndex(entry *domain.AssetReference) string {
	tokens := []string{entry.Label, entry.Path, strings.Join(entry.Tags, " "), strings.Join(entry.Targets, " ")}
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token != "" {
			parts = append(parts, strings.ToLower(token))
		}
	}
	return strings.Join(parts, " ")
}

// assetDigest is the stable short id for a normalized path. A client-side
// key, not a security token.
func assetDigest(normalized string) string {
	sum := sha1.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])[:12]
}

func fileSHA256(p string) string {
	f, err := os.Open(p)
	if err != nil {
		return ""
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}

func tagList(tagMap map[string][]string, normalized string) []string {
	if tags, ok := tagMap[normalized]; ok && tags != nil {
		return tags
	}
	return []string{}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
