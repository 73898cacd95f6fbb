package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"skillmatch/internal/domain/skill"
)

// RecommendationCache is satisfied by the redis cache client; a nil
// cache disables caching entirely.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// recommendationCacheKey hashes the request shape: skills are folded
// and sorted so equivalent requests share an entry regardless of order
// or casing.
func recommendationCacheKey(p RecommendationParams) string {
	names := make([]string, 0, len(p.Skills))
	for _, c := range p.Skills {
		key := skill.Normalize(c.Name)
		if key == "" {
			continue
		}
		names = append(names, key+"@"+string(skill.ParseProficiency(c.Proficiency)))
	}
	sort.Strings(names)

	raw := strings.Join(names, ",") +
		"|role=" + skill.Normalize(p.TargetRole) +
		"|loc=" + skill.Normalize(p.Location)

	sum := sha256.Sum256([]byte(raw))
	return "recommendations:" + hex.EncodeToString(sum[:16])
}

func recommendationLockKey(cacheKey string) string {
	return cacheKey + ":lock"
}
