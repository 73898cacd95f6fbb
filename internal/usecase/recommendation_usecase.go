package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/skill"
	"skillmatch/internal/source"

	"go.uber.org/zap"
)

const (
	// MinRecommendationScore is the qualifying floor: anything scoring
	// below it is dropped before ranking.
	MinRecommendationScore = 30.0

	// MaxRecommendations caps the ranked result list.
	MaxRecommendations = 10

	defaultSourceTimeout     = 10 * time.Second
	recommendationCacheTTL   = 5 * time.Minute
	recommendationLockTTL    = 30 * time.Second
	recommendationLockWaitMs = 300
)

type RecommendationParams struct {
	Skills     []SkillClaim
	TargetRole string
	Location   string

	// Timeout bounds each primary-source call. Zero means the default;
	// a timed-out source counts as a source that returned nothing.
	Timeout time.Duration
}

type RecommendedJob struct {
	Title           string
	Company         string
	Location        string
	RequiredSkills  []string
	Description     string
	ApplicationLink string
	MatchScore      float64
	SourcePlatform  string
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, params RecommendationParams) ([]RecommendedJob, error)
}

type Recommendation struct {
	sources  []source.JobSource
	fallback *source.FallbackGenerator
	cache    RecommendationCache
	logger   *zap.Logger
}

func NewRecommendationUsecase(sources []source.JobSource, fallback *source.FallbackGenerator, cache RecommendationCache, logger *zap.Logger) *Recommendation {
	if fallback == nil {
		fallback = source.NewFallbackGenerator()
	}
	return &Recommendation{sources: sources, fallback: fallback, cache: cache, logger: logger}
}

// GetRecommendations never errors for "no results": source failures and
// timeouts degrade to fallback generation, and an empty list is a valid
// payload. Only a malformed request surfaces an error.
func (u *Recommendation) GetRecommendations(ctx context.Context, params RecommendationParams) ([]RecommendedJob, error) {
	for _, c := range params.Skills {
		if strings.TrimSpace(c.Name) == "" {
			return nil, ErrInvalidInput
		}
	}

	cacheKey := recommendationCacheKey(params)
	if cached, ok := u.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}
	lockAcquired := u.acquireLock(ctx, cacheKey)
	if !lockAcquired {
		// Another identical request is computing; give it a beat and
		// re-check before doing the work twice.
		time.Sleep(recommendationLockWaitMs * time.Millisecond)
		if cached, ok := u.cacheGet(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	possessed := make([]matching.PossessedSkill, 0, len(params.Skills))
	skillNames := make([]string, 0, len(params.Skills))
	for _, c := range params.Skills {
		possessed = append(possessed, matching.PossessedSkill{
			Name:        c.Name,
			Proficiency: skill.ParseProficiency(c.Proficiency),
		})
		skillNames = append(skillNames, strings.TrimSpace(c.Name))
	}

	q := source.Query{
		Skills:   skillNames,
		Title:    strings.TrimSpace(params.TargetRole),
		Location: strings.TrimSpace(params.Location),
	}

	primary := u.searchPrimary(ctx, q, params.Timeout)
	out := u.scoreAndFilter(possessed, primary)

	if len(out) == 0 {
		synthetic := u.fallback.Generate(q)
		if u.logger != nil {
			u.logger.Info("primary sources yielded no qualifying jobs, using fallback",
				zap.Int("primary_candidates", len(primary)),
				zap.Int("synthetic", len(synthetic)),
			)
		}
		out = u.scoreAndFilter(possessed, synthetic)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}

	u.cacheSet(ctx, cacheKey, out)
	return out, nil
}

// searchPrimary fans out to every configured source with a per-source
// timeout. A failing or timed-out source is equivalent to a source that
// returned zero jobs; it is logged, never propagated.
func (u *Recommendation) searchPrimary(ctx context.Context, q source.Query, timeout time.Duration) []source.Job {
	if len(u.sources) == 0 {
		return nil
	}
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}

	type res struct {
		source string
		jobs   []source.Job
		err    error
	}

	outCh := make(chan res, len(u.sources))
	wg := sync.WaitGroup{}

	for _, src := range u.sources {
		src := src
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx2, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			jobs, err := src.Search(ctx2, q)
			outCh <- res{source: src.Name(), jobs: jobs, err: err}
		}()
	}

	wg.Wait()
	close(outCh)

	all := make([]source.Job, 0)
	for r := range outCh {
		if r.err != nil {
			if u.logger != nil {
				u.logger.Warn("job source failed, treating as empty",
					zap.String("source", r.source), zap.Error(r.err))
			}
			continue
		}
		all = append(all, r.jobs...)
	}
	return all
}

// scoreAndFilter is the shared scoring step for primary and synthetic
// candidates: one scoring path, one qualifying floor.
func (u *Recommendation) scoreAndFilter(possessed []matching.PossessedSkill, jobs []source.Job) []RecommendedJob {
	out := make([]RecommendedJob, 0, len(jobs))
	for _, j := range jobs {
		reqs := make([]matching.RequiredSkill, 0, len(j.RequiredSkills))
		names := make([]string, 0, len(j.RequiredSkills))
		for _, r := range j.RequiredSkills {
			reqs = append(reqs, matching.RequiredSkill{Name: r.Name, Importance: r.Importance})
			names = append(names, r.Name)
		}

		score := matching.Score(possessed, reqs)
		if score < MinRecommendationScore {
			continue
		}

		out = append(out, RecommendedJob{
			Title:           j.Title,
			Company:         j.Company,
			Location:        j.Location,
			RequiredSkills:  names,
			Description:     j.Description,
			ApplicationLink: j.ApplicationLink,
			MatchScore:      score,
			SourcePlatform:  j.Platform,
		})
	}
	return out
}

func (u *Recommendation) cacheGet(ctx context.Context, key string) ([]RecommendedJob, bool) {
	if u.cache == nil {
		return nil, false
	}
	var cached []RecommendedJob
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	if u.logger != nil {
		u.logger.Debug("recommendation cache hit", zap.String("key", key))
	}
	return cached, true
}

func (u *Recommendation) cacheSet(ctx context.Context, key string, jobs []RecommendedJob) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, jobs, recommendationCacheTTL); err != nil && u.logger != nil {
		u.logger.Warn("recommendation cache store failed", zap.Error(err))
	}
}

func (u *Recommendation) acquireLock(ctx context.Context, cacheKey string) bool {
	if u.cache == nil {
		return true
	}
	ok, err := u.cache.SetIfNotExists(ctx, recommendationLockKey(cacheKey), "1", recommendationLockTTL)
	if err != nil {
		return true
	}
	return ok
}
