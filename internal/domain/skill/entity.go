package skill

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Skill is a catalog entry. Name keeps its original (trimmed) casing;
// uniqueness and all lookups fold through Normalize.
type Skill struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Proficiency is how well a subject claims to know a skill.
type Proficiency string

const (
	ProficiencyBasic        Proficiency = "basic"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// ParseProficiency maps a free-form level string onto the closed enum.
// Unrecognized values degrade to basic rather than erroring.
func ParseProficiency(s string) Proficiency {
	switch Proficiency(Normalize(s)) {
	case ProficiencyIntermediate:
		return ProficiencyIntermediate
	case ProficiencyAdvanced:
		return ProficiencyAdvanced
	case ProficiencyExpert:
		return ProficiencyExpert
	default:
		return ProficiencyBasic
	}
}

// Multiplier is the scoring contribution factor for a possessed skill.
func (p Proficiency) Multiplier() float64 {
	switch p {
	case ProficiencyIntermediate:
		return 0.75
	case ProficiencyAdvanced, ProficiencyExpert:
		return 1.0
	default:
		return 0.5
	}
}

// Importance is how strongly a target demands a skill.
type Importance string

const (
	ImportanceRequired  Importance = "required"
	ImportancePreferred Importance = "preferred"
	ImportanceOptional  Importance = "optional"
)

// ParseImportance maps a free-form importance string onto the closed
// enum. Unrecognized values degrade to optional.
func ParseImportance(s string) Importance {
	switch Importance(Normalize(s)) {
	case ImportanceRequired:
		return ImportanceRequired
	case ImportancePreferred:
		return ImportancePreferred
	default:
		return ImportanceOptional
	}
}

// Weight is the scoring denominator contribution for a required skill.
func (i Importance) Weight() float64 {
	switch i {
	case ImportanceRequired:
		return 3
	case ImportancePreferred:
		return 2
	default:
		return 1
	}
}

// Normalize is the single name-folding function used everywhere a skill
// name is compared or stored for lookup: trim then lowercase. Applied
// uniformly so the catalog, the engine, and the gap reporter cannot
// drift apart on what counts as the same skill.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
