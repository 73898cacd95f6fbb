package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestMatching_ComputeMatch(t *testing.T) {
	uc := NewMatchingUsecase()

	score, err := uc.ComputeMatch(context.Background(),
		[]SkillClaim{{Name: "SQL", Proficiency: "advanced"}},
		[]SkillDemand{{Name: "SQL", Importance: "required"}, {Name: "Excel", Importance: "preferred"}},
	)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if score != 60.0 {
		t.Fatalf("expected 60.0, got %v", score)
	}
}

func TestMatching_ComputeMatch_RejectsBlankNames(t *testing.T) {
	uc := NewMatchingUsecase()

	_, err := uc.ComputeMatch(context.Background(),
		[]SkillClaim{{Name: ""}},
		[]SkillDemand{{Name: "Go", Importance: "required"}},
	)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = uc.ComputeMatch(context.Background(),
		[]SkillClaim{{Name: "Go", Proficiency: "expert"}},
		[]SkillDemand{{Name: "   "}},
	)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatching_ComputeGap_ConsistentWithScore(t *testing.T) {
	uc := NewMatchingUsecase()
	possessed := []SkillClaim{{Name: "Go", Proficiency: "intermediate"}}
	required := []SkillDemand{
		{Name: "Go", Importance: "required"},
		{Name: "Docker", Importance: "required"},
		{Name: "AWS", Importance: "optional"},
	}

	rep, err := uc.ComputeGap(context.Background(), possessed, required)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	score, err := uc.ComputeMatch(context.Background(), possessed, required)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if rep.MatchPercentage != score {
		t.Fatalf("gap percentage %v diverged from match score %v", rep.MatchPercentage, score)
	}
	if len(rep.MatchedSkills) != 1 || rep.MatchedSkills[0] != "Go" {
		t.Fatalf("unexpected matched: %v", rep.MatchedSkills)
	}
	if len(rep.MissingRequiredSkills) != 1 || rep.MissingRequiredSkills[0] != "Docker" {
		t.Fatalf("unexpected missing required: %v", rep.MissingRequiredSkills)
	}
	if len(rep.MissingOptionalSkills) != 1 || rep.MissingOptionalSkills[0] != "AWS" {
		t.Fatalf("unexpected missing optional: %v", rep.MissingOptionalSkills)
	}
}
