package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchesRecomputedEvent struct {
	Type      string `json:"type"`
	SubjectID string `json:"subject_id"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Timestamp string `json:"timestamp"`
}

// MatchesRecomputed satisfies the match store's notifier interface.
func (h *Hub) MatchesRecomputed(subjectID uuid.UUID, succeeded, failed int) {
	if h == nil || subjectID == uuid.Nil {
		return
	}

	evt := MatchesRecomputedEvent{
		Type:      "matches_recomputed",
		SubjectID: subjectID.String(),
		Succeeded: succeeded,
		Failed:    failed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
