package matching

import (
	"math"

	"skillmatch/internal/domain/skill"
)

type PossessedSkill struct {
	Name        string
	Proficiency skill.Proficiency
}

type RequiredSkill struct {
	Name       string
	Importance skill.Importance
}

// Score computes the 0-100 fitment between a possessed skill set and a
// required skill set. Pure: no I/O, same inputs always yield the same
// score, rounded to two decimals.
//
// A target with no stated requirements scores 0; that is policy, not an
// omission. Duplicate required names each count independently; dedup is
// the catalog's job, not the engine's.
func Score(possessed []PossessedSkill, required []RequiredSkill) float64 {
	if len(required) == 0 {
		return 0
	}

	byName := make(map[string]skill.Proficiency, len(possessed))
	for _, p := range possessed {
		key := skill.Normalize(p.Name)
		if key == "" {
			continue
		}
		byName[key] = p.Proficiency
	}

	var totalPoints float64
	var matchPoints float64

	for _, r := range required {
		weight := r.Importance.Weight()
		totalPoints += weight

		prof, ok := byName[skill.Normalize(r.Name)]
		if !ok {
			continue
		}
		matchPoints += weight * prof.Multiplier()
	}

	if totalPoints == 0 {
		return 0
	}
	return round2(matchPoints / totalPoints * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
