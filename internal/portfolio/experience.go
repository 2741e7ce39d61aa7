// Package portfolio provides the statically declared career dataset and its data-quality rules.
package portfolio

import (
	"github.com/go-playground/validator/v10"
)

// Role represents a single professional position.
type Role struct {
	Company string `json:"company" validate:"required"`
	Title   string `json:"title" validate:"required"`
	// StartYear and EndYear are calendar years. EndYear is 0 for the current role.
	StartYear        int      `json:"start_year" validate:"required,min=1990,max=2100"`
	EndYear          int      `json:"end_year,omitempty" validate:"omitempty,min=1990,max=2100"`
	Color            string   `json:"color" validate:"required,hexcolor"`
	Responsibilities []string `json:"responsibilities" validate:"required,min=1,dive,required"`
}

// IsCurrent reports whether the role is still held.
func (r Role) IsCurrent() bool {
	return r.EndYear == 0
}

// Duration returns the role length in years. Current roles are measured up to asOfYear.
func (r Role) Duration(asOfYear int) int {
	end := r.EndYear
	if r.IsCurrent() {
		end = asOfYear
	}
	return end - r.StartYear
}

// Validate validates the Role using the validator.
func (r *Role) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Metadata describes where the dataset comes from and how it was assembled.
type Metadata struct {
	Source      string `json:"source"`
	LastUpdated string `json:"last_updated"`
	Methodology string `json:"methodology"`
}

// Experience is the professional timeline, ordered chronologically.
// The current role is last and has EndYear 0.
var Experience = []Role{
	{
		Company:   "Blizzard Entertainment",
		Title:     "Specialist Game Master",
		StartYear: 2006,
		EndYear:   2008,
		Color:     "#4A90E2",
		Responsibilities: []string{
			"Customer support for World of Warcraft",
			"Community management and player relations",
			"Issue resolution and escalation handling",
			"Player behavior analysis and reporting",
		},
	},
	{
		Company:   "Jolt Online Gaming",
		Title:     "Community Manager",
		StartYear: 2008,
		EndYear:   2012,
		Color:     "#FFD700",
		Responsibilities: []string{
			"Community engagement and content moderation",
			"Event planning and coordination",
			"Content creation and social media management",
			"Analytics reporting on community metrics",
		},
	},
	{
		Company:   "Lionbridge",
		Title:     "Consultant",
		StartYear: 2012,
		EndYear:   2018,
		Color:     "#87CEEB",
		Responsibilities: []string{
			"Quality assurance testing",
			"Technical documentation",
			"Client communication and reporting",
			"Process improvement and automation",
		},
	},
	{
		Company:   "HBO Max",
		Title:     "Technical Support",
		StartYear: 2018,
		EndYear:   2021,
		Color:     "#9B59B6",
		Responsibilities: []string{
			"Technical troubleshooting for streaming platform",
			"Data analysis of support tickets and user issues",
			"Cross-functional collaboration with engineering teams",
			"Performance metrics tracking and reporting",
		},
	},
	{
		Company:   "HBO Max / WarnerBros",
		Title:     "Data Analyst",
		StartYear: 2021,
		EndYear:   2023,
		Color:     "#FF8C00",
		Responsibilities: []string{
			"Data pipeline development and maintenance",
			"Advanced analytics and reporting",
			"Stakeholder collaboration and insights delivery",
			"Machine learning model development",
		},
	},
	{
		Company:   "Schibsted",
		Title:     "Data Analyst",
		StartYear: 2023,
		EndYear:   2025,
		Color:     "#32CD32",
		Responsibilities: []string{
			"Analytics engineering with dbt",
			"Data pipeline orchestration with Flyte",
			"Advanced NLP and ML model development",
			"Cross-team data platform initiatives",
		},
	},
	{
		Company:   "Schibsted",
		Title:     "Data Scientist",
		StartYear: 2025,
		Color:     "#FF69B4",
		Responsibilities: []string{
			"Sequential NLP model development",
			"Recommender systems engineering",
			"Real-time data processing pipelines",
		},
	},
}

// DataMetadata records the provenance of the career dataset.
var DataMetadata = Metadata{
	Source:      "LinkedIn profile + manual curation",
	LastUpdated: "2025-12-10",
	Methodology: "Dates verified against employment records",
}
