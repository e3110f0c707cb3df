package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yamui/generator-backend/internal/assets"
	"github.com/yamui/generator-backend/internal/domain"
	"github.com/yamui/generator-backend/internal/http/response"
	"github.com/yamui/generator-backend/internal/platform/logger"
)

type AssetHandler struct {
	log *logger.Logger
	svc *assets.Service
}

func NewAssetHandler(log *logger.Logger, svc *assets.Service) *AssetHandler {
	return &AssetHandler{
		log: log.With("handler", "AssetHandler"),
		svc: svc,
	}
}

type assetCatalogRequest struct {
	Project *domain.Project        `json:"project" binding:"required"`
	Filters *domain.CatalogFilters `json:"filters"`
}

type assetCatalogResponse struct {
	Assets []*domain.AssetReference `json:"assets"`
}

func (h *AssetHandler) Catalog(c *gin.Context) {
	var req assetCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	assets := h.svc.Catalog(req.Project, req.Filters)
	response.RespondOK(c, assetCatalogResponse{Assets: assets})
}

type assetEnvelope struct {
	Asset *domain.AssetReference `json:"asset"`
}

func (h *AssetHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_multipart_form", err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_multipart_form", err)
		return
	}
	defer file.Close()

	desiredPath := c.PostForm("path")
	tags := parseTags(c.PostForm("tags"))

	asset, err := h.svc.Ingest(file, fileHeader.Filename, desiredPath, tags)
	if err != nil {
		h.log.Warn("asset upload rejected", "filename", fileHeader.Filename, "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, assetEnvelope{Asset: asset})
}

type assetTagUpdateRequest struct {
	Path    string          `json:"path" binding:"required"`
	Tags    []string        `json:"tags"`
	Project *domain.Project `json:"project"`
}

func (h *AssetHandler) UpdateTags(c *gin.Context) {
	var req assetTagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	asset, err := h.svc.UpdateTags(req.Path, req.Tags, req.Project)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, assetEnvelope{Asset: asset})
}

func (h *AssetHandler) ServeFile(c *gin.Context) {
	resolved, err := h.svc.ResolveFile(c.Param("path"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.File(resolved)
}

// parseTags accepts either a JSON array (elements of any type are
// stringified) or a comma separated list.
func parseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var decoded []any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		out := make([]string, 0, len(decoded))
		for _, item := range decoded {
			tag, ok := item.(string)
			if !ok {
				tag = fmt.Sprint(item)
			}
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	out := []string{}
	for _, token := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
