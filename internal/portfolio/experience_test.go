package portfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperience_ChronologicalOrder(t *testing.T) {
	require.NotEmpty(t, Experience)

	for i := 1; i < len(Experience); i++ {
		prev := Experience[i-1]
		curr := Experience[i]
		assert.GreaterOrEqual(t, curr.StartYear, prev.StartYear,
			"role %q should not start before %q", curr.Title, prev.Title)
	}
}

func TestExperience_NoOverlaps(t *testing.T) {
	for i := 1; i < len(Experience); i++ {
		prev := Experience[i-1]
		curr := Experience[i]
		require.False(t, prev.IsCurrent(), "only the last role may be current")
		assert.GreaterOrEqual(t, curr.StartYear, prev.EndYear,
			"role %q overlaps %q", curr.Title, prev.Title)
	}
}

func TestExperience_SingleCurrentRoleIsLast(t *testing.T) {
	currentCount := 0
	for _, role := range Experience {
		if role.IsCurrent() {
			currentCount++
		}
	}

	require.Equal(t, 1, currentCount, "expected exactly one current role")
	assert.True(t, Experience[len(Experience)-1].IsCurrent(), "current role should be the last record")
}

func TestExperience_RecordsComplete(t *testing.T) {
	for i := range Experience {
		role := Experience[i]
		assert.NoError(t, role.Validate(), "role %q should be a valid record", role.Title)
		assert.True(t, strings.HasPrefix(role.Color, "#"), "role %q color should be a hex value", role.Title)
		assert.NotEmpty(t, role.Responsibilities, "role %q should list responsibilities", role.Title)
	}
}

func TestRole_Duration_EndedRole(t *testing.T) {
	role := Role{StartYear: 2006, EndYear: 2008}
	assert.Equal(t, 2, role.Duration(2030), "ended roles ignore the as-of year")
}

func TestRole_Duration_CurrentRole(t *testing.T) {
	role := Role{StartYear: 2025}
	assert.Equal(t, 1, role.Duration(2026))
	assert.Equal(t, 0, role.Duration(2025), "a role started this year has zero whole years")
}

func TestRole_IsCurrent(t *testing.T) {
	assert.True(t, Role{StartYear: 2025}.IsCurrent())
	assert.False(t, Role{StartYear: 2021, EndYear: 2023}.IsCurrent())
}

func TestRole_Validate_MissingFields(t *testing.T) {
	role := Role{StartYear: 2020, EndYear: 2022, Color: "#FFFFFF", Responsibilities: []string{"x"}}
	err := role.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Company")
}

func TestRole_Validate_BadColor(t *testing.T) {
	role := Role{
		Company:          "Acme",
		Title:            "Engineer",
		StartYear:        2020,
		EndYear:          2022,
		Color:            "blue",
		Responsibilities: []string{"x"},
	}
	assert.Error(t, role.Validate(), "non-hex colors should be rejected")
}
