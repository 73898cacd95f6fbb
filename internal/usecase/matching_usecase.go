package usecase

import (
	"context"
	"strings"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/skill"
)

// SkillClaim is a possessed skill as callers supply it, with the
// proficiency still free-form; parsing onto the closed enum happens
// here so unrecognized levels degrade instead of erroring.
type SkillClaim struct {
	Name        string
	Proficiency string
}

// SkillDemand is a required skill as callers supply it.
type SkillDemand struct {
	Name       string
	Importance string
}

type MatchingUsecase interface {
	ComputeMatch(ctx context.Context, possessed []SkillClaim, required []SkillDemand) (float64, error)
	ComputeGap(ctx context.Context, possessed []SkillClaim, required []SkillDemand) (matching.Report, error)
}

type Matching struct{}

func NewMatchingUsecase() *Matching {
	return &Matching{}
}

func (u *Matching) ComputeMatch(_ context.Context, possessed []SkillClaim, required []SkillDemand) (float64, error) {
	p, r, err := toEngineInputs(possessed, required)
	if err != nil {
		return 0, err
	}
	return matching.Score(p, r), nil
}

func (u *Matching) ComputeGap(_ context.Context, possessed []SkillClaim, required []SkillDemand) (matching.Report, error) {
	p, r, err := toEngineInputs(possessed, required)
	if err != nil {
		return matching.Report{}, err
	}
	return matching.Gap(p, r), nil
}

func toEngineInputs(possessed []SkillClaim, required []SkillDemand) ([]matching.PossessedSkill, []matching.RequiredSkill, error) {
	p := make([]matching.PossessedSkill, 0, len(possessed))
	for _, c := range possessed {
		if strings.TrimSpace(c.Name) == "" {
			return nil, nil, ErrInvalidInput
		}
		p = append(p, matching.PossessedSkill{
			Name:        c.Name,
			Proficiency: skill.ParseProficiency(c.Proficiency),
		})
	}

	r := make([]matching.RequiredSkill, 0, len(required))
	for _, d := range required {
		if strings.TrimSpace(d.Name) == "" {
			return nil, nil, ErrInvalidInput
		}
		r = append(r, matching.RequiredSkill{
			Name:       d.Name,
			Importance: skill.ParseImportance(d.Importance),
		})
	}

	return p, r, nil
}
