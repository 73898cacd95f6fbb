package dto

import "github.com/google/uuid"

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SkillEntryRequest struct {
	Name   string `json:"name"`
	Weight string `json:"weight"`
}

type AssociateSkillsRequest struct {
	Skills []SkillEntryRequest `json:"skills"`
}

type RecordMatchRequest struct {
	TargetID uuid.UUID `json:"target_id"`
	Score    float64   `json:"score"`
}

type RecordMatchResponse struct {
	ID uuid.UUID `json:"id"`
}

type MatchResultResponse struct {
	SubjectID  uuid.UUID `json:"subject_id"`
	TargetID   uuid.UUID `json:"target_id"`
	Score      float64   `json:"score"`
	ComputedAt string    `json:"computed_at"`
}

type RecomputeResponse struct {
	Succeeded []MatchResultResponse `json:"succeeded"`
	Failed    []uuid.UUID           `json:"failed"`
}
