// Package portfolio provides the statically declared career dataset and its data-quality rules.
package portfolio

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProficiencyLevel is a qualitative band over the 0-100 proficiency scale.
type ProficiencyLevel int

const (
	LevelAwareness ProficiencyLevel = iota
	LevelApplied
	LevelProficient
	LevelExpert
)

// Band defines the inclusive score range of one proficiency level.
type Band struct {
	Level       ProficiencyLevel `json:"-"`
	Name        string           `json:"name"`
	MinScore    int              `json:"min_score"`
	MaxScore    int              `json:"max_score"`
	Description string           `json:"description"`
}

// ProficiencyBands partitions 0-100 in ascending order with no gaps or overlaps.
var ProficiencyBands = []Band{
	{Level: LevelAwareness, Name: "Awareness", MinScore: 0, MaxScore: 30, Description: "Learning / Awareness"},
	{Level: LevelApplied, Name: "Applied", MinScore: 31, MaxScore: 60, Description: "Applied in Projects"},
	{Level: LevelProficient, Name: "Proficient", MinScore: 61, MaxScore: 85, Description: "Proficient Daily Use"},
	{Level: LevelExpert, Name: "Expert", MinScore: 86, MaxScore: 100, Description: "Expert / Teaching Others"},
}

// LevelFromScore maps a proficiency score to its qualitative band.
func LevelFromScore(score int) (ProficiencyLevel, error) {
	for _, band := range ProficiencyBands {
		if score >= band.MinScore && score <= band.MaxScore {
			return band.Level, nil
		}
	}
	return 0, fmt.Errorf("score %d out of range (0-100)", score)
}

func (l ProficiencyLevel) band() Band {
	for _, band := range ProficiencyBands {
		if band.Level == l {
			return band
		}
	}
	return Band{Name: "Unknown", Description: "Unknown"}
}

// String returns the short band name, e.g. "Applied".
func (l ProficiencyLevel) String() string {
	return l.band().Name
}

// Description returns the long band description, e.g. "Applied in Projects".
func (l ProficiencyLevel) Description() string {
	return l.band().Description
}

// SkillProficiency represents self-assessed proficiency in one skill.
type SkillProficiency struct {
	Name            string  `json:"name" validate:"required"`
	Score           int     `json:"score" validate:"min=0,max=100"`
	YearsExperience float64 `json:"years_experience" validate:"min=0"`
	LastUsed        string  `json:"last_used" validate:"required"`
	Context         string  `json:"context" validate:"required"`
}

// Level returns the qualitative band for the skill's score.
func (s SkillProficiency) Level() (ProficiencyLevel, error) {
	return LevelFromScore(s.Score)
}

// Validate validates the SkillProficiency using the validator.
func (s *SkillProficiency) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// RoleUsage records how much of a role's time each competency consumed.
// Percentages are responsibility weight, not proficiency.
type RoleUsage struct {
	Company string         `json:"company" validate:"required"`
	Weights map[string]int `json:"weights" validate:"required,dive,min=0,max=100"`
}

// Skills are the core proficiencies shown on the radar chart, in axis order.
var Skills = []SkillProficiency{
	{
		Name:            "Python",
		Score:           84,
		YearsExperience: 7.0,
		LastUsed:        "Current",
		Context:         "Daily use for data pipelines, ML models, automation scripts",
	},
	{
		Name:            "SQL",
		Score:           95,
		YearsExperience: 7.0,
		LastUsed:        "Current",
		Context:         "Daily use for data analysis, dbt transformations, query optimization",
	},
	{
		Name:            "NLP",
		Score:           79,
		YearsExperience: 3.0,
		LastUsed:        "Current",
		Context:         "Production models using Hugging Face, OpenAI, WhisperX for transcription",
	},
	{
		Name:            "Data Visualization",
		Score:           90,
		YearsExperience: 6.0,
		LastUsed:        "Current",
		Context:         "Tableau dashboards, Python (matplotlib, seaborn, plotly), executive reporting",
	},
	{
		Name:            "Machine Learning",
		Score:           71,
		YearsExperience: 3.0,
		LastUsed:        "Current",
		Context:         "Classification models, NLP pipelines, scikit-learn, transformers",
	},
	{
		Name:            "Data Engineering",
		Score:           70,
		YearsExperience: 4.0,
		LastUsed:        "Current",
		Context:         "Flyte orchestration, Docker, dbt, Snowflake, data pipeline design",
	},
}

// Competencies is the heatmap column order.
var Competencies = []string{
	"Data Analysis",
	"Scripting",
	"Big Data",
	"Data Visualization",
	"Creative/Communication",
}

// SkillsByRole is the responsibility-weight table behind the heatmap,
// one row per company in chronological order.
var SkillsByRole = []RoleUsage{
	{
		Company: "Blizzard Entertainment",
		Weights: map[string]int{
			"Data Analysis":          65,
			"Scripting":              5,
			"Big Data":               80,
			"Data Visualization":     10,
			"Creative/Communication": 100,
		},
	},
	{
		Company: "Jolt Online Gaming",
		Weights: map[string]int{
			"Data Analysis":          15,
			"Scripting":              10,
			"Big Data":               0,
			"Data Visualization":     15,
			"Creative/Communication": 63,
		},
	},
	{
		Company: "Lionbridge",
		Weights: map[string]int{
			"Data Analysis":          45,
			"Scripting":              40,
			"Big Data":               15,
			"Data Visualization":     50,
			"Creative/Communication": 50,
		},
	},
	{
		Company: "HBO Max",
		Weights: map[string]int{
			"Data Analysis":          90,
			"Scripting":              65,
			"Big Data":               90,
			"Data Visualization":     80,
			"Creative/Communication": 90,
		},
	},
	{
		Company: "HBO Max / WarnerBros",
		Weights: map[string]int{
			"Data Analysis":          95,
			"Scripting":              90,
			"Big Data":               85,
			"Data Visualization":     90,
			"Creative/Communication": 85,
		},
	},
	{
		Company: "Schibsted",
		Weights: map[string]int{
			"Data Analysis":          95,
			"Scripting":              90,
			"Big Data":               85,
			"Data Visualization":     90,
			"Creative/Communication": 75,
		},
	},
}

// ToolScore is a proficiency score for a single tool or technology.
type ToolScore struct {
	Name  string `json:"name" validate:"required"`
	Score int    `json:"score" validate:"min=0,max=100"`
}

// Tools is the expanded skill/tool inventory behind the treemap.
var Tools = []ToolScore{
	// Programming languages
	{Name: "Python", Score: 84},
	{Name: "SQL", Score: 95},
	// Data tools
	{Name: "Tableau", Score: 70},
	{Name: "Snowflake", Score: 60},
	{Name: "DBT", Score: 50},
	{Name: "Pandas", Score: 80},
	// ML/AI tools
	{Name: "NLP", Score: 79},
	{Name: "Machine Learning", Score: 75},
	{Name: "Hugging Face", Score: 45},
	{Name: "OpenAI", Score: 45},
	{Name: "WhisperX", Score: 40},
	// Visualization
	{Name: "Matplotlib", Score: 70},
	{Name: "Plotly", Score: 65},
	{Name: "Data Visualization", Score: 90},
	// Engineering
	{Name: "Docker", Score: 60},
	{Name: "Flyte", Score: 50},
	{Name: "Data Engineering", Score: 65},
	{Name: "Data Pipelines", Score: 70},
}

// Methodology documents how the scores and weights were assessed.
const Methodology = `## Skills Assessment Methodology

### Proficiency Scoring (0-100)
- **0-30 (Awareness/Learning)**: Familiar with concepts, learning actively, not yet applied in production
- **31-60 (Applied in Projects)**: Used in real projects, comfortable with basics, need documentation for advanced features
- **61-85 (Proficient Daily Use)**: Daily usage, can solve complex problems, mentor others on basics
- **86-100 (Expert/Teaching Others)**: Deep expertise, teach others, contribute to community, optimize and architect

### Data Sources
- **Years Experience**: Based on employment records and project timelines
- **Proficiency Scores**: Self-assessment validated against:
  - Project complexity and outcomes
  - Peer feedback and code reviews
  - Frequency of use (daily, weekly, monthly)
  - Teaching/mentoring activities

### Skills by Role Percentages
These represent **responsibility weight** (% of time/importance), not proficiency:
- Based on role descriptions and actual work performed
- Validated against project portfolios and deliverables
- Updated periodically to reflect career progression

### Last Updated
2025-01-26

### Limitations
- Self-assessment inherently subjective
- Scores reflect practical application, not theoretical knowledge
- Some skills overlap (e.g., Data Engineering includes SQL, Python, Docker)
`
