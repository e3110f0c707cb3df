package yamlio

import (
	"fmt"
	"sort"

	"github.com/yamui/generator-backend/internal/domain"
)

var styleCategories = map[string]bool{
	"color": true, "surface": true, "text": true, "spacing": true, "shadow": true,
}

// Validate runs the structural checks the editor relies on: widgets carry a
// type, widget ids are unique within a screen or component, component
// references resolve, style categories are known, at most one screen is
// flagged initial.
func Validate(project *domain.Project) []domain.ValidationIssue {
	issues := []domain.ValidationIssue{}
	if project == nil {
		return append(issues, domain.ValidationIssue{
			Path: "/", Message: "no payload to validate", Severity: "error",
		})
	}

	for _, name := range sortedKeys(project.Styles) {
		token := project.Styles[name]
		if token.Category != "" && !styleCategories[token.Category] {
			issues = append(issues, domain.ValidationIssue{
				Path:     "/styles/" + name,
				Message:  fmt.Sprintf("unknown style category %q", token.Category),
				Severity: "warning",
			})
		}
	}

	initialCount := 0
	for _, name := range sortedKeys(project.Screens) {
		screen := project.Screens[name]
		if screen.Initial {
			initialCount++
		}
		if screen.Name == "" {
			issues = append(issues, domain.ValidationIssue{
				Path: "/screens/" + name, Message: "screen is missing a name", Severity: "error",
			})
		}
		issues = append(issues, validateWidgets("/screens/"+name, screen.Widgets, project)...)
	}
	if initialCount > 1 {
		issues = append(issues, domain.ValidationIssue{
			Path: "/screens", Message: "more than one screen is flagged initial", Severity: "warning",
		})
	}

	for _, name := range sortedKeys(project.Components) {
		component := project.Components[name]
		issues = append(issues, validateWidgets("/components/"+name, component.Widgets, project)...)
	}
	return issues
}

func validateWidgets(base string, roots []domain.Widget, project *domain.Project) []domain.ValidationIssue {
	issues := []domain.ValidationIssue{}
	seenIDs := map[string]bool{}

	type frame struct {
		widgets []domain.Widget
		path    string
		index   int
	}
	stack := []frame{{widgets: roots, path: base + "/widgets"}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.index >= len(top.widgets) {
			stack = stack[:len(stack)-1]
			continue
		}
		w := &top.widgets[top.index]
		widgetPath := fmt.Sprintf("%s/%d", top.path, top.index)
		top.index++

		if w.Type == "" {
			issues = append(issues, domain.ValidationIssue{
				Path: widgetPath, Message: "widget is missing a type", Severity: "error",
			})
		}
		if w.ID != "" {
			if seenIDs[w.ID] {
				issues = append(issues, domain.ValidationIssue{
					Path:     widgetPath,
					Message:  fmt.Sprintf("duplicate widget id %q", w.ID),
					Severity: "warning",
				})
			}
			seenIDs[w.ID] = true
		}
		if w.Type == "component" {
			ref, _ := w.Props["component"].(string)
			if ref == "" || project.Components == nil {
				issues = append(issues, domain.ValidationIssue{
					Path: widgetPath, Message: "component widget is missing a component reference", Severity: "warning",
				})
			} else if _, ok := project.Components[ref]; !ok {
				issues = append(issues, domain.ValidationIssue{
					Path:     widgetPath,
					Message:  fmt.Sprintf("unknown component %q", ref),
					Severity: "warning",
				})
			}
		}
		if w.Style != "" && project.Styles != nil {
			if _, ok := project.Styles[w.Style]; !ok {
				issues = append(issues, domain.ValidationIssue{
					Path:     widgetPath,
					Message:  fmt.Sprintf("unknown style %q", w.Style),
					Severity: "warning",
				})
			}
		}
		if len(w.Widgets) > 0 {
			stack = append(stack, frame{widgets: w.Widgets, path: widgetPath + "/widgets"})
		}
	}
	return issues
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
