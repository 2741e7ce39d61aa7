// Package portfolio provides the statically declared career dataset and its data-quality rules.
package portfolio

// Connection is an undirected edge between two skill/tool nodes.
type Connection struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// Category groups graph nodes for coloring and legend placement.
type Category string

const (
	CategoryLanguage       Category = "language"
	CategoryCompetency     Category = "competency"
	CategoryDataTool       Category = "data_tool"
	CategoryVizTool        Category = "viz_tool"
	CategoryMLTool         Category = "ml_tool"
	CategoryInfrastructure Category = "infrastructure"
)

// Categories is the legend order.
var Categories = []Category{
	CategoryLanguage,
	CategoryCompetency,
	CategoryDataTool,
	CategoryVizTool,
	CategoryMLTool,
	CategoryInfrastructure,
}

// DisplayName returns the human-readable category label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryLanguage:
		return "Programming Languages"
	case CategoryCompetency:
		return "Core Competencies"
	case CategoryDataTool:
		return "Data Tools"
	case CategoryVizTool:
		return "Visualization Tools"
	case CategoryMLTool:
		return "ML/AI Tools"
	case CategoryInfrastructure:
		return "Infrastructure & Orchestration"
	default:
		return string(c)
	}
}

// Connections relates tools, skills and technologies as used in practice.
var Connections = []Connection{
	// Python ecosystem
	{Source: "Python", Target: "Pandas"},
	{Source: "Python", Target: "NLP"},
	{Source: "Python", Target: "SQL"},
	{Source: "Python", Target: "Data Engineering"},
	{Source: "Python", Target: "Machine Learning"},
	{Source: "Python", Target: "Matplotlib"},
	{Source: "Python", Target: "Plotly"},

	// SQL and databases
	{Source: "SQL", Target: "Snowflake"},
	{Source: "SQL", Target: "DBT"},
	{Source: "SQL", Target: "Tableau"},
	{Source: "SQL", Target: "Data Analysis"},

	// DBT connections
	{Source: "DBT", Target: "Snowflake"},
	{Source: "DBT", Target: "Tableau"},
	{Source: "DBT", Target: "Data Engineering"},

	// Data science stack
	{Source: "Pandas", Target: "NLP"},
	{Source: "Pandas", Target: "Machine Learning"},
	{Source: "Pandas", Target: "Data Analysis"},

	// NLP/ML tools
	{Source: "NLP", Target: "Hugging Face"},
	{Source: "NLP", Target: "OpenAI"},
	{Source: "NLP", Target: "WhisperX"},
	{Source: "Machine Learning", Target: "Hugging Face"},

	// Visualization tools
	{Source: "Tableau", Target: "Data Visualization"},
	{Source: "Matplotlib", Target: "Data Visualization"},
	{Source: "Plotly", Target: "Data Visualization"},
	{Source: "Pandas", Target: "Matplotlib"},
	{Source: "Pandas", Target: "Plotly"},

	// Data engineering
	{Source: "Snowflake", Target: "Data Engineering"},
	{Source: "Data Engineering", Target: "Data Pipelines"},
	{Source: "Data Engineering", Target: "Flyte"},
	{Source: "Docker", Target: "Flyte"},
	{Source: "Flyte", Target: "NLP"},
	{Source: "Flyte", Target: "Data Pipelines"},

	// Data analysis connections
	{Source: "Data Analysis", Target: "Data Visualization"},
	{Source: "Data Analysis", Target: "Machine Learning"},
}

// NodeCategories assigns each graph node to a category for coloring and grouping.
var NodeCategories = map[string]Category{
	// Programming languages
	"Python": CategoryLanguage,
	"SQL":    CategoryLanguage,

	// Core competencies
	"Data Analysis":      CategoryCompetency,
	"Data Visualization": CategoryCompetency,
	"Data Engineering":   CategoryCompetency,
	"NLP":                CategoryCompetency,
	"Machine Learning":   CategoryCompetency,

	// Data tools
	"Pandas":    CategoryDataTool,
	"Snowflake": CategoryDataTool,
	"DBT":       CategoryDataTool,

	// Visualization tools
	"Tableau":    CategoryVizTool,
	"Matplotlib": CategoryVizTool,
	"Plotly":     CategoryVizTool,

	// ML/AI tools
	"Hugging Face": CategoryMLTool,
	"OpenAI":       CategoryMLTool,
	"WhisperX":     CategoryMLTool,

	// Infrastructure
	"Docker":         CategoryInfrastructure,
	"Flyte":          CategoryInfrastructure,
	"Data Pipelines": CategoryInfrastructure,
}

// CategoryColors is the color scheme for node categories.
var CategoryColors = map[Category]string{
	CategoryLanguage:       "#FF6B6B",
	CategoryCompetency:     "#4ECDC4",
	CategoryDataTool:       "#45B7D1",
	CategoryVizTool:        "#FFA07A",
	CategoryMLTool:         "#98D8C8",
	CategoryInfrastructure: "#95E1D3",
}

// NodeSizes holds display sizes based on importance/proficiency.
var NodeSizes = map[string]int{
	"Python":             84,
	"SQL":                95,
	"Data Analysis":      95,
	"Data Visualization": 90,
	"Data Engineering":   70,
	"NLP":                79,
	"Machine Learning":   71,
	"Pandas":             80,
	"Tableau":            70,
	"Snowflake":          60,
	"DBT":                50,
	"Docker":             60,
	"Flyte":              50,
	"Hugging Face":       45,
	"OpenAI":             45,
	"WhisperX":           40,
	"Matplotlib":         70,
	"Plotly":             65,
	"Data Pipelines":     70,
}

const (
	defaultCategory  = CategoryCompetency
	defaultNodeColor = "#999999"
	defaultNodeSize  = 50
)

// NodeCategory returns the category for a node, defaulting to competency.
func NodeCategory(node string) Category {
	if category, ok := NodeCategories[node]; ok {
		return category
	}
	return defaultCategory
}

// NodeColor returns the display color for a node based on its category.
func NodeColor(node string) string {
	if color, ok := CategoryColors[NodeCategory(node)]; ok {
		return color
	}
	return defaultNodeColor
}

// NodeSize returns the display size for a node based on proficiency/importance.
func NodeSize(node string) int {
	if size, ok := NodeSizes[node]; ok {
		return size
	}
	return defaultNodeSize
}
