package dto

type RecommendationRequest struct {
	Skills     []SkillClaimRequest `json:"skills"`
	TargetRole string              `json:"target_role"`
	Location   string              `json:"location"`
	TimeoutMs  int                 `json:"timeout_ms"`
}

type RecommendedJobResponse struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	RequiredSkills  []string `json:"required_skills"`
	Description     string   `json:"description"`
	ApplicationLink string   `json:"application_link"`
	MatchScore      float64  `json:"match_score"`
	SourcePlatform  string   `json:"source_platform"`
}

type RecommendationResponse struct {
	Jobs []RecommendedJobResponse `json:"jobs"`
}
