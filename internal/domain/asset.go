package domain

// Asset kinds, derived purely from file extension.
const (
	KindImage   = "image"
	KindVideo   = "video"
	KindAudio   = "audio"
	KindFont    = "font"
	KindBinary  = "binary"
	KindUnknown = "unknown"
)

// AssetReference is one catalog entry. Identity is the normalized
// root-relative path; ID is a short stable digest of it, usable as a client
// key but not as a security token. The three URLs are computed per request
// and never persisted.
type AssetReference struct {
	ID           string         `json:"id"`
	Path         string         `json:"path"`
	Label        string         `json:"label"`
	Extension    string         `json:"extension"`
	Kind         string         `json:"kind"`
	UsageCount   int            `json:"usage_count"`
	WidgetIDs    []string       `json:"widget_ids"`
	Targets      []string       `json:"targets"`
	Tags         []string       `json:"tags"`
	SizeBytes    *int64         `json:"size_bytes"`
	Metadata     map[string]any `json:"metadata"`
	PreviewURL   *string        `json:"preview_url"`
	ThumbnailURL *string        `json:"thumbnail_url"`
	DownloadURL  *string        `json:"download_url"`
}

// CatalogFilters narrow a catalog build. Absent members impose no
// constraint; present members are AND-composed.
type CatalogFilters struct {
	Query   string   `json:"query,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Targets []string `json:"targets,omitempty"`
	Kinds   []string `json:"kinds,omitempty"`
}
