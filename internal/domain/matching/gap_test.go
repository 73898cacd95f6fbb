package matching

import "testing"

func TestGap_Partition(t *testing.T) {
	rep := Gap(
		possessed("Go", "advanced", "sql", "basic"),
		required("Go", "required", "SQL", "preferred", "Docker", "required", "AWS", "optional"),
	)

	if len(rep.MatchedSkills) != 2 || rep.MatchedSkills[0] != "Go" || rep.MatchedSkills[1] != "SQL" {
		t.Fatalf("unexpected matched skills: %v", rep.MatchedSkills)
	}
	if len(rep.MissingRequiredSkills) != 1 || rep.MissingRequiredSkills[0] != "Docker" {
		t.Fatalf("unexpected missing required: %v", rep.MissingRequiredSkills)
	}
	if len(rep.MissingOptionalSkills) != 1 || rep.MissingOptionalSkills[0] != "AWS" {
		t.Fatalf("unexpected missing optional: %v", rep.MissingOptionalSkills)
	}
}

func TestGap_PercentageMatchesScore(t *testing.T) {
	p := possessed("Go", "intermediate")
	r := required("Go", "required", "Kubernetes", "preferred")

	rep := Gap(p, r)
	if rep.MatchPercentage != Score(p, r) {
		t.Fatalf("gap percentage %v diverged from score %v", rep.MatchPercentage, Score(p, r))
	}
}

func TestGap_DeduplicatesReportedNames(t *testing.T) {
	rep := Gap(nil, required("Docker", "required", "docker", "required"))
	if len(rep.MissingRequiredSkills) != 1 {
		t.Fatalf("expected 1 missing required, got %v", rep.MissingRequiredSkills)
	}
	if rep.MissingRequiredSkills[0] != "Docker" {
		t.Fatalf("expected first-seen casing, got %q", rep.MissingRequiredSkills[0])
	}
}

func TestGap_EmptyRequirements(t *testing.T) {
	rep := Gap(possessed("Go", "expert"), nil)
	if len(rep.MatchedSkills) != 0 || rep.MatchPercentage != 0 {
		t.Fatalf("expected empty report, got %+v", rep)
	}
}
