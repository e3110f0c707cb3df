package domain

// TemplateProject returns the starter document served by the template
// endpoint. Built fresh on every call so handlers can hand it out without
// sharing mutable state.
func TemplateProject() *Project {
	return &Project{
		App: map[string]any{
			"name":    "YamUI Sample Application",
			"version": "0.1.0",
			"author":  "YamUI",
		},
		State: map[string]any{
			"welcome_message": "Welcome to YamUI",
			"device_status": map[string]any{
				"connected": 4,
				"active":    3,
			},
		},
		Styles: map[string]StyleToken{
			"card": {
				Name:        "Card Surface",
				Category:    "surface",
				Description: "Dark elevated card used for stats",
				Tags:        []string{"panel", "stat"},
				Value: map[string]any{
					"padding":         16,
					"borderRadius":    8,
					"backgroundColor": "#0f172a",
					"color":           "#e2e8f0",
					"shadow":          "md",
				},
			},
			"cta": {
				Name:        "Primary CTA",
				Category:    "surface",
				Description: "Button styling for primary actions",
				Value: map[string]any{
					"paddingHorizontal": 24,
					"paddingVertical":   12,
					"backgroundColor":   "#22d3ee",
					"color":             "#0f172a",
					"borderRadius":      999,
				},
			},
			"heading": {
				Name:     "Heading Text",
				Category: "text",
				Value: map[string]any{
					"fontSize":   20,
					"fontWeight": 600,
					"color":      "#94a3b8",
				},
			},
			"stat-label": {
				Name:     "Stat Label",
				Category: "text",
				Value: map[string]any{
					"fontSize":      14,
					"fontWeight":    500,
					"color":         "#94a3b8",
					"textTransform": "uppercase",
				},
			},
			"stat-value": {
				Name:     "Stat Value",
				Category: "text",
				Value: map[string]any{
					"fontSize":      32,
					"fontWeight":    700,
					"color":         "#f8fafc",
					"letterSpacing": -0.5,
				},
			},
		},
		Components: map[string]ComponentDefinition{
			"stat_card": {
				Description: "Compact statistic card with value and label.",
				PropSchema: []ComponentProp{
					{Name: "label", Type: "string", Required: true},
					{Name: "value", Type: "number", Required: true},
					{Name: "unit", Type: "string", Default: ""},
				},
				Widgets: []Widget{
					{
						Type:  "column",
						ID:    "stat-card-root",
						Style: "card",
						Props: map[string]any{"gap": 4},
						Widgets: []Widget{
							{
								Type:  "label",
								ID:    "stat-card-label",
								Text:  "{{ props.label }}",
								Style: "stat-label",
							},
							{
								Type:  "label",
								ID:    "stat-card-value",
								Text:  "{{ props.value }}{{ props.unit }}",
								Style: "stat-value",
							},
						},
					},
				},
			},
		},
		Screens: map[string]Screen{
			"dashboard": {
				Name:    "dashboard",
				Title:   "Dashboard",
				Initial: true,
				Widgets: []Widget{
					{
						Type:  "column",
						ID:    "dashboard-root",
						Props: map[string]any{"gap": 16},
						Widgets: []Widget{
							{
								Type:  "label",
								ID:    "welcome",
								Text:  "{{ state.welcome_message }}",
								Style: "heading",
							},
							{
								Type: "row",
								ID:   "stats",
								Widgets: []Widget{
									{
										Type:  "component",
										ID:    "stat-connected",
										Props: map[string]any{"component": "stat_card", "label": "Connected", "value": "{{ state.device_status.connected }}"},
									},
									{
										Type:  "component",
										ID:    "stat-active",
										Props: map[string]any{"component": "stat_card", "label": "Active", "value": "{{ state.device_status.active }}"},
									},
								},
							},
							{
								Type: "img",
								ID:   "hero",
								Src:  "media/hero.png",
							},
						},
					},
				},
			},
		},
	}
}
