package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromScore_MapsToExpectedBands(t *testing.T) {
	cases := []struct {
		score int
		level ProficiencyLevel
	}{
		{15, LevelAwareness},
		{50, LevelApplied},
		{75, LevelProficient},
		{95, LevelExpert},
	}

	for _, tc := range cases {
		level, err := LevelFromScore(tc.score)
		require.NoError(t, err)
		assert.Equal(t, tc.level, level, "score %d", tc.score)
	}
}

func TestLevelFromScore_BandBoundaries(t *testing.T) {
	cases := []struct {
		score int
		level ProficiencyLevel
	}{
		{0, LevelAwareness},
		{30, LevelAwareness},
		{31, LevelApplied},
		{60, LevelApplied},
		{61, LevelProficient},
		{85, LevelProficient},
		{86, LevelExpert},
		{100, LevelExpert},
	}

	for _, tc := range cases {
		level, err := LevelFromScore(tc.score)
		require.NoError(t, err)
		assert.Equal(t, tc.level, level, "score %d", tc.score)
	}
}

func TestLevelFromScore_OutOfRange(t *testing.T) {
	for _, score := range []int{-1, -50, 101, 150} {
		_, err := LevelFromScore(score)
		require.Error(t, err, "score %d", score)
		assert.Contains(t, err.Error(), "out of range")
	}
}

func TestProficiencyBands_PartitionScale(t *testing.T) {
	require.NotEmpty(t, ProficiencyBands)
	assert.Equal(t, 0, ProficiencyBands[0].MinScore)
	assert.Equal(t, 100, ProficiencyBands[len(ProficiencyBands)-1].MaxScore)

	for i := 1; i < len(ProficiencyBands); i++ {
		assert.Equal(t, ProficiencyBands[i-1].MaxScore+1, ProficiencyBands[i].MinScore,
			"band %q should start right after %q", ProficiencyBands[i].Name, ProficiencyBands[i-1].Name)
	}

	// Every score on the scale maps to exactly one band.
	for score := 0; score <= 100; score++ {
		_, err := LevelFromScore(score)
		assert.NoError(t, err, "score %d", score)
	}
}

func TestProficiencyLevel_Descriptions(t *testing.T) {
	assert.Equal(t, "Learning / Awareness", LevelAwareness.Description())
	assert.Equal(t, "Applied in Projects", LevelApplied.Description())
	assert.Equal(t, "Proficient Daily Use", LevelProficient.Description())
	assert.Equal(t, "Expert / Teaching Others", LevelExpert.Description())
}

func TestProficiencyLevel_String(t *testing.T) {
	assert.Equal(t, "Awareness", LevelAwareness.String())
	assert.Equal(t, "Expert", LevelExpert.String())
	assert.Equal(t, "Unknown", ProficiencyLevel(42).String())
}

func TestSkills_ScoresWithinRange(t *testing.T) {
	require.NotEmpty(t, Skills)
	for i := range Skills {
		skill := Skills[i]
		assert.GreaterOrEqual(t, skill.Score, 0, "skill %q", skill.Name)
		assert.LessOrEqual(t, skill.Score, 100, "skill %q", skill.Name)
		assert.NoError(t, skill.Validate(), "skill %q", skill.Name)
	}
}

func TestSkillProficiency_Level(t *testing.T) {
	skill := SkillProficiency{Name: "SQL", Score: 95, YearsExperience: 7, LastUsed: "Current", Context: "x"}
	level, err := skill.Level()
	require.NoError(t, err)
	assert.Equal(t, LevelExpert, level)
}

func TestSkillProficiency_Validate_ScoreOutOfRange(t *testing.T) {
	skill := SkillProficiency{Name: "SQL", Score: 150, YearsExperience: 7, LastUsed: "Current", Context: "x"}
	assert.Error(t, skill.Validate())
}

func TestSkillsByRole_CompleteGrid(t *testing.T) {
	require.NotEmpty(t, SkillsByRole)
	for _, row := range SkillsByRole {
		require.Len(t, row.Weights, len(Competencies), "company %q", row.Company)
		for _, competency := range Competencies {
			weight, ok := row.Weights[competency]
			require.True(t, ok, "company %q missing %q", row.Company, competency)
			assert.GreaterOrEqual(t, weight, 0, "company %q, competency %q", row.Company, competency)
			assert.LessOrEqual(t, weight, 100, "company %q, competency %q", row.Company, competency)
		}
	}
}

func TestSkillsByRole_CompaniesMatchExperience(t *testing.T) {
	companies := make(map[string]struct{})
	for _, role := range Experience {
		companies[role.Company] = struct{}{}
	}

	for _, row := range SkillsByRole {
		_, ok := companies[row.Company]
		assert.True(t, ok, "weight row %q should reference a known company", row.Company)
	}
}

func TestTools_ScoresWithinRange(t *testing.T) {
	require.NotEmpty(t, Tools)
	seen := make(map[string]struct{}, len(Tools))
	for _, tool := range Tools {
		assert.GreaterOrEqual(t, tool.Score, 0, "tool %q", tool.Name)
		assert.LessOrEqual(t, tool.Score, 100, "tool %q", tool.Name)

		_, dup := seen[tool.Name]
		assert.False(t, dup, "tool %q listed twice", tool.Name)
		seen[tool.Name] = struct{}{}
	}
}
