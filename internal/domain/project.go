// Package domain holds the YamUI project document model and the asset
// catalog types shared between the core services and the HTTP layer.
package domain

// Widget is a single node on the canvas. Containers nest children under
// Widgets; the asset core only reads ID and Src.
type Widget struct {
	Type          string         `json:"type" yaml:"type"`
	ID            string         `json:"id,omitempty" yaml:"id,omitempty"`
	Text          string         `json:"text,omitempty" yaml:"text,omitempty"`
	Src           string         `json:"src,omitempty" yaml:"src,omitempty"`
	Style         string         `json:"style,omitempty" yaml:"style,omitempty"`
	Props         map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Events        map[string]any `json:"events,omitempty" yaml:"events,omitempty"`
	Bindings      map[string]any `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	Accessibility map[string]any `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`
	Widgets       []Widget       `json:"widgets,omitempty" yaml:"widgets,omitempty"`
}

type Screen struct {
	Name     string         `json:"name" yaml:"name"`
	Title    string         `json:"title,omitempty" yaml:"title,omitempty"`
	Widgets  []Widget       `json:"widgets,omitempty" yaml:"widgets,omitempty"`
	Initial  bool           `json:"initial,omitempty" yaml:"initial,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type ComponentProp struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Default  any    `json:"default,omitempty" yaml:"default,omitempty"`
}

type ComponentDefinition struct {
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Props       map[string]any  `json:"props,omitempty" yaml:"props,omitempty"`
	PropSchema  []ComponentProp `json:"prop_schema,omitempty" yaml:"prop_schema,omitempty"`
	Widgets     []Widget        `json:"widgets,omitempty" yaml:"widgets,omitempty"`
}

type StyleToken struct {
	Name        string         `json:"name" yaml:"name"`
	Category    string         `json:"category,omitempty" yaml:"category,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Value       map[string]any `json:"value,omitempty" yaml:"value,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Project is the top-level YamUI document. Translations are carried through
// import/export untouched; nothing here interprets them.
type Project struct {
	App          map[string]any                 `json:"app" yaml:"app"`
	State        map[string]any                 `json:"state,omitempty" yaml:"state,omitempty"`
	Styles       map[string]StyleToken          `json:"styles,omitempty" yaml:"styles,omitempty"`
	Components   map[string]ComponentDefinition `json:"components,omitempty" yaml:"components,omitempty"`
	Screens      map[string]Screen              `json:"screens,omitempty" yaml:"screens,omitempty"`
	Translations map[string]map[string]string   `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// InitialScreen returns the name of the screen flagged as initial, if any.
func (p *Project) InitialScreen() string {
	for name, screen := range p.Screens {
		if screen.Initial {
			return name
		}
	}
	return ""
}

// ValidationIssue is a structured finding from project validation.
type ValidationIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// WidgetMetadata describes a palette entry exposed to the editor.
type WidgetMetadata struct {
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Icon            string   `json:"icon"`
	Description     string   `json:"description"`
	AcceptsChildren bool     `json:"accepts_children"`
	AllowedChildren []string `json:"allowed_children,omitempty"`
}
