package templates

// Style describes the visual parameters of one resume template. The renderer
// consumes these values without branching on template identifiers; adding a
// template means adding one entry here.
type Style struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	Font             string `json:"font"`
	HeaderAlignment  string `json:"headerAlignment"`
	HeaderBackground string `json:"headerBackground"`
	HeaderTextColor  string `json:"headerTextColor"`
	AccentColor      string `json:"accentColor"`
	BorderStyle      string `json:"borderStyle"`
	SectionTitle     string `json:"sectionTitleStyle"`
}

// Section title decorations understood by the renderer.
const (
	SectionBorderBottom   = "border-bottom"
	SectionColoredTitle   = "colored-title"
	SectionSimple         = "simple"
	SectionUppercaseTitle = "uppercase-title"
)

// DefaultID is used whenever a template id is missing or unrecognized.
const DefaultID = "classic"

var registry = map[string]Style{
	"classic": {
		ID:               "classic",
		DisplayName:      "Classic",
		Font:             "Georgia, serif",
		HeaderAlignment:  "center",
		HeaderBackground: "transparent",
		HeaderTextColor:  "#1a1a1a",
		AccentColor:      "#1a1a1a",
		BorderStyle:      "2px solid #1a1a1a",
		SectionTitle:     SectionBorderBottom,
	},
	"modern": {
		ID:               "modern",
		DisplayName:      "Modern",
		Font:             "system-ui, -apple-system, sans-serif",
		HeaderAlignment:  "left",
		HeaderBackground: "#2563eb",
		HeaderTextColor:  "#ffffff",
		AccentColor:      "#2563eb",
		BorderStyle:      "none",
		SectionTitle:     SectionColoredTitle,
	},
	"minimal": {
		ID:               "minimal",
		DisplayName:      "Minimal",
		Font:             "Inter, system-ui, sans-serif",
		HeaderAlignment:  "left",
		HeaderBackground: "transparent",
		HeaderTextColor:  "#374151",
		AccentColor:      "#6b7280",
		BorderStyle:      "1px solid #e5e7eb",
		SectionTitle:     SectionSimple,
	},
	"professional": {
		ID:               "professional",
		DisplayName:      "Professional",
		Font:             "Cambria, Georgia, serif",
		HeaderAlignment:  "center",
		HeaderBackground: "#1e293b",
		HeaderTextColor:  "#ffffff",
		AccentColor:      "#0891b2",
		BorderStyle:      "none",
		SectionTitle:     SectionUppercaseTitle,
	},
}

// order fixes the listing order for the API.
var order = []string{"classic", "modern", "minimal", "professional"}

// Resolve returns the style for the given template id, falling back to the
// default entry when the id is unknown or empty. It never fails.
func Resolve(id string) Style {
	if s, ok := registry[id]; ok {
		return s
	}
	return registry[DefaultID]
}

// Known reports whether the id names a registered template.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// List returns all registered styles in display order.
func List() []Style {
	out := make([]Style, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}
