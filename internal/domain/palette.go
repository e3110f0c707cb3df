package domain

var containerChildren = []string{"label", "button", "img", "textarea", "switch", "slider", "component"}

// Palette is the static widget palette exposed to the editor.
var Palette = []WidgetMetadata{
	{
		Type:            "row",
		Category:        "layout",
		Icon:            "mdi-view-row",
		Description:     "Horizontal layout container",
		AcceptsChildren: true,
		AllowedChildren: containerChildren,
	},
	{
		Type:            "column",
		Category:        "layout",
		Icon:            "mdi-view-column",
		Description:     "Vertical layout container",
		AcceptsChildren: true,
		AllowedChildren: containerChildren,
	},
	{
		Type:            "panel",
		Category:        "layout",
		Icon:            "mdi-card-outline",
		Description:     "Panel with optional header",
		AcceptsChildren: true,
		AllowedChildren: []string{"row", "column", "list", "component"},
	},
	{
		Type:        "spacer",
		Category:    "layout",
		Icon:        "mdi-dots-horizontal",
		Description: "Flexible spacer used inside layouts",
	},
	{
		Type:            "list",
		Category:        "layout",
		Icon:            "mdi-view-list",
		Description:     "Scrollable list container",
		AcceptsChildren: true,
		AllowedChildren: []string{"row", "column", "component"},
	},
	{
		Type:        "label",
		Category:    "ui",
		Icon:        "mdi-format-text",
		Description: "Displays static or bound text",
	},
	{
		Type:        "button",
		Category:    "ui",
		Icon:        "mdi-gesture-tap",
		Description: "Interactive button with actions",
	},
	{
		Type:        "img",
		Category:    "ui",
		Icon:        "mdi-image",
		Description: "Bitmap or vector image",
	},
	{
		Type:        "textarea",
		Category:    "ui",
		Icon:        "mdi-form-textarea",
		Description: "Multi-line text entry",
	},
	{
		Type:        "switch",
		Category:    "ui",
		Icon:        "mdi-toggle-switch",
		Description: "Binary toggle switch",
	},
	{
		Type:        "slider",
		Category:    "ui",
		Icon:        "mdi-tune-variant",
		Description: "Analog slider",
	},
}
