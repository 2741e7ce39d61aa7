// Package portfolio provides the statically declared career dataset and its data-quality rules.
package portfolio

// Data aggregates the full portfolio dataset. It is also the shape of the
// JSON document written by the export command.
type Data struct {
	Metadata       Metadata            `json:"metadata"`
	Experience     []Role              `json:"experience"`
	Skills         []SkillProficiency  `json:"skills"`
	Bands          []Band              `json:"proficiency_bands"`
	Competencies   []string            `json:"competencies"`
	SkillsByRole   []RoleUsage         `json:"skills_by_role"`
	Tools          []ToolScore         `json:"tools"`
	Connections    []Connection        `json:"connections"`
	NodeCategories map[string]Category `json:"node_categories"`
	NodeSizes      map[string]int      `json:"node_sizes"`
}

// CategoryOf returns the category of a graph node in this dataset,
// defaulting to competency for unmapped nodes.
func (d *Data) CategoryOf(node string) Category {
	if category, ok := d.NodeCategories[node]; ok {
		return category
	}
	return defaultCategory
}

// ColorOf returns the display color of a graph node in this dataset.
func (d *Data) ColorOf(node string) string {
	if color, ok := CategoryColors[d.CategoryOf(node)]; ok {
		return color
	}
	return defaultNodeColor
}

// SizeOf returns the display size of a graph node in this dataset.
func (d *Data) SizeOf(node string) int {
	if size, ok := d.NodeSizes[node]; ok {
		return size
	}
	return defaultNodeSize
}

// Default returns the built-in dataset.
func Default() *Data {
	return &Data{
		Metadata:       DataMetadata,
		Experience:     Experience,
		Skills:         Skills,
		Bands:          ProficiencyBands,
		Competencies:   Competencies,
		SkillsByRole:   SkillsByRole,
		Tools:          Tools,
		Connections:    Connections,
		NodeCategories: NodeCategories,
		NodeSizes:      NodeSizes,
	}
}
