package dto

type SkillClaimRequest struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type SkillDemandRequest struct {
	Name       string `json:"name"`
	Importance string `json:"importance"`
}

type MatchRequest struct {
	PossessedSkills []SkillClaimRequest  `json:"possessed_skills"`
	RequiredSkills  []SkillDemandRequest `json:"required_skills"`
}

type MatchResponse struct {
	Score float64 `json:"score"`
}

type GapResponse struct {
	MatchedSkills         []string `json:"matched_skills"`
	MissingRequiredSkills []string `json:"missing_required_skills"`
	MissingOptionalSkills []string `json:"missing_optional_skills"`
	MatchPercentage       float64  `json:"match_percentage"`
}
