// Package portfolio provides the statically declared career dataset and its data-quality rules.
package portfolio

import (
	"fmt"
	"sort"
)

// ValidateData checks the dataset against the data-quality rules and returns
// every violation found. Chart generation never aborts on violations; callers
// decide how to report them.
func ValidateData(d *Data) *Violations {
	var all []Violation

	// 1. Role records: structure, chronology, overlap, current-role rules
	all = append(all, validateExperience(d.Experience)...)

	// 2. Skill scores and proficiency banding
	all = append(all, validateSkills(d.Skills)...)
	all = append(all, validateBands(d.Bands)...)

	// 3. Responsibility weights and tool scores
	all = append(all, validateWeights(d.SkillsByRole, d.Competencies, d.Experience)...)
	all = append(all, validateTools(d.Tools)...)

	// 4. Connection graph: edge hygiene and node coverage
	all = append(all, validateConnections(d.Connections)...)
	all = append(all, validateGraphCoverage(d)...)

	return &Violations{Violations: all}
}

func validateExperience(roles []Role) []Violation {
	var violations []Violation

	if len(roles) == 0 {
		return []Violation{{
			Type:     "missing_field",
			Severity: SeverityError,
			Details:  "experience list is empty",
		}}
	}

	currentCount := 0
	for i := range roles {
		role := roles[i]
		record := fmt.Sprintf("%s (%s)", role.Company, role.Title)

		if err := role.Validate(); err != nil {
			violations = append(violations, Violation{
				Type:     "missing_field",
				Severity: SeverityError,
				Details:  fmt.Sprintf("invalid role record: %v", err),
				Record:   record,
			})
		}

		if !role.IsCurrent() && role.EndYear < role.StartYear {
			violations = append(violations, Violation{
				Type:     "year_range",
				Severity: SeverityError,
				Details:  fmt.Sprintf("end year %d precedes start year %d", role.EndYear, role.StartYear),
				Record:   record,
			})
		}

		if role.IsCurrent() {
			currentCount++
			if i != len(roles)-1 {
				violations = append(violations, Violation{
					Type:     "current_role",
					Severity: SeverityError,
					Details:  "current role must be the last record",
					Record:   record,
				})
			}
		}

		if i == 0 {
			continue
		}
		prev := roles[i-1]
		prevRecord := fmt.Sprintf("%s (%s)", prev.Company, prev.Title)

		if role.StartYear < prev.StartYear {
			violations = append(violations, Violation{
				Type:     "role_order",
				Severity: SeverityError,
				Details:  fmt.Sprintf("starts %d, before previous role's %d", role.StartYear, prev.StartYear),
				Record:   record,
			})
		}
		if prev.IsCurrent() {
			// Already reported above via the last-record rule; an overlap
			// check against an open-ended role would double-count it.
			continue
		}
		if role.StartYear < prev.EndYear {
			violations = append(violations, Violation{
				Type:     "role_overlap",
				Severity: SeverityError,
				Details:  fmt.Sprintf("starts %d, overlapping %s which ends %d", role.StartYear, prevRecord, prev.EndYear),
				Record:   record,
			})
		}
	}

	if currentCount != 1 {
		violations = append(violations, Violation{
			Type:     "current_role",
			Severity: SeverityError,
			Details:  fmt.Sprintf("expected exactly 1 current role, found %d", currentCount),
		})
	}

	return violations
}

func validateSkills(skills []SkillProficiency) []Violation {
	var violations []Violation
	for i := range skills {
		skill := skills[i]
		if err := skill.Validate(); err != nil {
			violations = append(violations, Violation{
				Type:     "score_range",
				Severity: SeverityError,
				Details:  fmt.Sprintf("invalid skill record: %v", err),
				Record:   skill.Name,
			})
		}
		if _, err := skill.Level(); err != nil {
			violations = append(violations, Violation{
				Type:     "score_range",
				Severity: SeverityError,
				Details:  err.Error(),
				Record:   skill.Name,
			})
		}
	}
	return violations
}

func validateBands(bands []Band) []Violation {
	var violations []Violation
	if len(bands) == 0 {
		return []Violation{{
			Type:     "band_gap",
			Severity: SeverityError,
			Details:  "no proficiency bands defined",
		}}
	}

	if bands[0].MinScore != 0 {
		violations = append(violations, Violation{
			Type:     "band_gap",
			Severity: SeverityError,
			Details:  fmt.Sprintf("first band starts at %d, expected 0", bands[0].MinScore),
			Record:   bands[0].Name,
		})
	}
	for i := 1; i < len(bands); i++ {
		prev, next := bands[i-1], bands[i]
		if next.MinScore != prev.MaxScore+1 {
			violations = append(violations, Violation{
				Type:     "band_gap",
				Severity: SeverityError,
				Details:  fmt.Sprintf("band starts at %d, expected %d after %s", next.MinScore, prev.MaxScore+1, prev.Name),
				Record:   next.Name,
			})
		}
	}
	last := bands[len(bands)-1]
	if last.MaxScore != 100 {
		violations = append(violations, Violation{
			Type:     "band_gap",
			Severity: SeverityError,
			Details:  fmt.Sprintf("last band ends at %d, expected 100", last.MaxScore),
			Record:   last.Name,
		})
	}
	return violations
}

func validateWeights(usage []RoleUsage, competencies []string, roles []Role) []Violation {
	var violations []Violation

	companies := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		companies[role.Company] = struct{}{}
	}

	for _, row := range usage {
		if _, known := companies[row.Company]; !known {
			violations = append(violations, Violation{
				Type:     "unknown_company",
				Severity: SeverityWarning,
				Details:  "weight row references a company absent from the experience timeline",
				Record:   row.Company,
			})
		}
		for _, competency := range competencies {
			weight, ok := row.Weights[competency]
			if !ok {
				violations = append(violations, Violation{
					Type:     "weight_missing",
					Severity: SeverityError,
					Details:  fmt.Sprintf("no weight recorded for %q", competency),
					Record:   row.Company,
				})
				continue
			}
			if weight < 0 || weight > 100 {
				violations = append(violations, Violation{
					Type:     "weight_range",
					Severity: SeverityError,
					Details:  fmt.Sprintf("weight %d for %q out of range (0-100)", weight, competency),
					Record:   row.Company,
				})
			}
		}
	}

	rows := make(map[string]struct{}, len(usage))
	for _, row := range usage {
		rows[row.Company] = struct{}{}
	}
	for _, role := range roles {
		if _, ok := rows[role.Company]; !ok {
			violations = append(violations, Violation{
				Type:     "weight_missing",
				Severity: SeverityWarning,
				Details:  "company has no responsibility-weight row",
				Record:   role.Company,
			})
		}
	}

	return violations
}

func validateTools(tools []ToolScore) []Violation {
	var violations []Violation
	for i := range tools {
		tool := tools[i]
		if tool.Score < 0 || tool.Score > 100 {
			violations = append(violations, Violation{
				Type:     "score_range",
				Severity: SeverityError,
				Details:  fmt.Sprintf("tool score %d out of range (0-100)", tool.Score),
				Record:   tool.Name,
			})
		}
	}
	return violations
}

func validateConnections(connections []Connection) []Violation {
	var violations []Violation

	seen := make(map[[2]string]struct{}, len(connections))
	for _, conn := range connections {
		record := fmt.Sprintf("%s -- %s", conn.Source, conn.Target)

		if conn.Source == "" || conn.Target == "" {
			violations = append(violations, Violation{
				Type:     "missing_field",
				Severity: SeverityError,
				Details:  "connection endpoint is empty",
				Record:   record,
			})
			continue
		}
		if conn.Source == conn.Target {
			violations = append(violations, Violation{
				Type:     "self_loop",
				Severity: SeverityError,
				Details:  "connection links a node to itself",
				Record:   record,
			})
			continue
		}

		key := [2]string{conn.Source, conn.Target}
		if _, dup := seen[key]; dup {
			violations = append(violations, Violation{
				Type:     "duplicate_edge",
				Severity: SeverityError,
				Details:  "connection appears more than once",
				Record:   record,
			})
			continue
		}
		if _, rev := seen[[2]string{conn.Target, conn.Source}]; rev {
			violations = append(violations, Violation{
				Type:     "reversed_edge",
				Severity: SeverityWarning,
				Details:  "connection also appears with endpoints swapped",
				Record:   record,
			})
		}
		seen[key] = struct{}{}
	}

	return violations
}

func validateGraphCoverage(d *Data) []Violation {
	var violations []Violation

	nodes := make(map[string]struct{}, len(d.Connections)*2)
	for _, conn := range d.Connections {
		nodes[conn.Source] = struct{}{}
		nodes[conn.Target] = struct{}{}
	}

	// Every core proficiency skill must appear in the connection graph.
	for _, skill := range d.Skills {
		if _, ok := nodes[skill.Name]; !ok {
			violations = append(violations, Violation{
				Type:     "missing_core_skill",
				Severity: SeverityError,
				Details:  "core skill is absent from the connection graph",
				Record:   skill.Name,
			})
		}
	}

	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := d.NodeCategories[name]; !ok {
			violations = append(violations, Violation{
				Type:     "unknown_category",
				Severity: SeverityWarning,
				Details:  fmt.Sprintf("node has no category mapping, defaults to %q", defaultCategory),
				Record:   name,
			})
		}
		if _, ok := d.NodeSizes[name]; !ok {
			violations = append(violations, Violation{
				Type:     "missing_node_size",
				Severity: SeverityWarning,
				Details:  fmt.Sprintf("node has no size entry, defaults to %d", defaultNodeSize),
				Record:   name,
			})
		}
	}

	return violations
}
