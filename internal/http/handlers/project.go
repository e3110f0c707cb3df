package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamui/generator-backend/internal/domain"
	"github.com/yamui/generator-backend/internal/http/response"
	"github.com/yamui/generator-backend/internal/platform/logger"
	"github.com/yamui/generator-backend/internal/yamlio"
)

type ProjectHandler struct {
	log *logger.Logger
}

func NewProjectHandler(log *logger.Logger) *ProjectHandler {
	return &ProjectHandler{log: log.With("handler", "ProjectHandler")}
}

func (h *ProjectHandler) Template(c *gin.Context) {
	response.RespondOK(c, domain.TemplateProject())
}

func (h *ProjectHandler) Palette(c *gin.Context) {
	response.RespondOK(c, domain.Palette)
}

type projectImportRequest struct {
	YAML string `json:"yaml" binding:"required"`
}

type projectImportResponse struct {
	Project *domain.Project          `json:"project"`
	Issues  []domain.ValidationIssue `json:"issues"`
}

func (h *ProjectHandler) Import(c *gin.Context) {
	var req projectImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	project, issues, err := yamlio.Import(req.YAML)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, projectImportResponse{Project: project, Issues: issues})
}

type projectExportRequest struct {
	Project *domain.Project `json:"project" binding:"required"`
}

type projectExportResponse struct {
	YAML   string                   `json:"yaml"`
	Issues []domain.ValidationIssue `json:"issues"`
}

func (h *ProjectHandler) Export(c *gin.Context) {
	var req projectExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	text, issues, err := yamlio.Export(req.Project)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, projectExportResponse{YAML: text, Issues: issues})
}

type projectValidateRequest struct {
	Project *domain.Project `json:"project"`
	YAML    string          `json:"yaml"`
}

type projectValidateResponse struct {
	Valid  bool                     `json:"valid"`
	Issues []domain.ValidationIssue `json:"issues"`
}

func (h *ProjectHandler) Validate(c *gin.Context) {
	var req projectValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	if req.Project == nil && req.YAML == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload",
			errors.New("either project or yaml must be provided"))
		return
	}
	var issues []domain.ValidationIssue
	if req.Project != nil {
		issues = yamlio.Validate(req.Project)
	} else {
		var err error
		_, issues, err = yamlio.Import(req.YAML)
		if err != nil {
			response.RespondAPIError(c, err)
			return
		}
	}
	valid := true
	for _, issue := range issues {
		if issue.Severity == "error" {
			valid = false
			break
		}
	}
	response.RespondOK(c, projectValidateResponse{Valid: valid, Issues: issues})
}

type projectSettingsResponse struct {
	Settings map[string]any `json:"settings"`
}

func (h *ProjectHandler) Settings(c *gin.Context) {
	template := domain.TemplateProject()
	response.RespondOK(c, projectSettingsResponse{Settings: template.App})
}

type projectSettingsUpdateRequest struct {
	Project  *domain.Project `json:"project" binding:"required"`
	Settings map[string]any  `json:"settings"`
}

type projectSettingsUpdateResponse struct {
	Project  *domain.Project          `json:"project"`
	Settings map[string]any           `json:"settings"`
	Issues   []domain.ValidationIssue `json:"issues"`
}

func (h *ProjectHandler) UpdateSettings(c *gin.Context) {
	var req projectSettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	project := req.Project
	if project.App == nil {
		project.App = map[string]any{}
	}
	for key, value := range req.Settings {
		project.App[key] = value
	}
	issues := yamlio.Validate(project)
	response.RespondOK(c, projectSettingsUpdateResponse{
		Project:  project,
		Settings: project.App,
		Issues:   issues,
	})
}
