package matching

import "skillmatch/internal/domain/skill"

// Report partitions a requirement set against a possessed set. It is
// the set-valued presentation of the same fact Score presents as a
// scalar, so MatchPercentage is always computed through Score itself.
type Report struct {
	MatchedSkills         []string
	MissingRequiredSkills []string
	MissingOptionalSkills []string
	MatchPercentage       float64
}

// Gap derives the matched/missing partition for the same inputs Score
// takes. Required names are reported in input order, deduplicated on
// the folded name, keeping the first-seen casing.
func Gap(possessed []PossessedSkill, required []RequiredSkill) Report {
	byName := make(map[string]struct{}, len(possessed))
	for _, p := range possessed {
		key := skill.Normalize(p.Name)
		if key == "" {
			continue
		}
		byName[key] = struct{}{}
	}

	rep := Report{
		MatchedSkills:         make([]string, 0, len(required)),
		MissingRequiredSkills: make([]string, 0),
		MissingOptionalSkills: make([]string, 0),
	}

	seen := make(map[string]struct{}, len(required))
	for _, r := range required {
		key := skill.Normalize(r.Name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := byName[key]; ok {
			rep.MatchedSkills = append(rep.MatchedSkills, r.Name)
			continue
		}
		if r.Importance == skill.ImportanceRequired {
			rep.MissingRequiredSkills = append(rep.MissingRequiredSkills, r.Name)
		} else {
			rep.MissingOptionalSkills = append(rep.MissingOptionalSkills, r.Name)
		}
	}

	rep.MatchPercentage = Score(possessed, required)
	return rep
}
