// Package yamlio reads and writes YamUI project YAML bundles and runs the
// structural validation surfaced to the editor.
package yamlio

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yamui/generator-backend/internal/domain"
	"github.com/yamui/generator-backend/internal/platform/apierr"
)

// FromYAML deserializes a project document. The top level must be a
// mapping.
func FromYAML(text string) (*domain.Project, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &domain.Project{}, nil
	}
	var probe any
	if err := yaml.Unmarshal([]byte(text), &probe); err != nil {
		return nil, apierr.InvalidArgument("parse project yaml: %v", err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, apierr.InvalidArgument("project yaml must contain a mapping at the top level")
	}
	var project domain.Project
	if err := yaml.Unmarshal([]byte(text), &project); err != nil {
		return nil, apierr.InvalidArgument("decode project yaml: %v", err)
	}
	return &project, nil
}

// ToYAML serializes a project into canonical YAML.
func ToYAML(project *domain.Project) (string, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(project); err != nil {
		return "", fmt.Errorf("encode project yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flush project yaml: %w", err)
	}
	return b.String(), nil
}

// Import parses YAML and validates the result.
func Import(text string) (*domain.Project, []domain.ValidationIssue, error) {
	project, err := FromYAML(text)
	if err != nil {
		return nil, nil, err
	}
	return project, Validate(project), nil
}

// Export validates and serializes a project.
func Export(project *domain.Project) (string, []domain.ValidationIssue, error) {
	issues := Validate(project)
	text, err := ToYAML(project)
	if err != nil {
		return "", nil, err
	}
	return text, issues, nil
}
