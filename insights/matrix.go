package insights

// SkillMatrixRow is one distinct skill with a per-candidate matched cell.
// Cells line up with the result order the matrix was built from.
type SkillMatrixRow struct {
	Skill string
	Cells []bool
}

// BuildSkillMatrix builds the deduplicated skill list as the union of every
// result's matched and missing skill names, preserving first-occurrence
// order, and marks which candidates match each skill.
func BuildSkillMatrix(results []RankedResult) []SkillMatrixRow {
	var order []string
	seen := make(map[string]bool)

	matched := make([]map[string]bool, len(results))
	for i, r := range results {
		matched[i] = make(map[string]bool, len(r.MatchedSkills))
		for _, s := range r.MatchedSkills {
			if !seen[s.Name] {
				seen[s.Name] = true
				order = append(order, s.Name)
			}
			matched[i][s.Name] = true
		}
		for _, s := range r.MissingSkills {
			if !seen[s.Name] {
				seen[s.Name] = true
				order = append(order, s.Name)
			}
		}
	}

	rows := make([]SkillMatrixRow, len(order))
	for i, skill := range order {
		cells := make([]bool, len(results))
		for j := range results {
			cells[j] = matched[j][skill]
		}
		rows[i] = SkillMatrixRow{Skill: skill, Cells: cells}
	}
	return rows
}
