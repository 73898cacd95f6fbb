package usecase

import (
	"context"
	"time"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/skill"
	"skillmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchResult struct {
	SubjectID  uuid.UUID
	TargetID   uuid.UUID
	Score      float64
	ComputedAt time.Time
}

// RecomputeResult is the typed partial outcome of a subject rescan.
// Each target is recorded independently, so a storage failure partway
// leaves the successes in place and names the failures instead of
// erroring the whole batch.
type RecomputeResult struct {
	Succeeded []MatchResult
	Failed    []uuid.UUID
}

// RecomputeNotifier is told when a subject rescan finishes; the ws hub
// satisfies it. Nil disables notification.
type RecomputeNotifier interface {
	MatchesRecomputed(subjectID uuid.UUID, succeeded, failed int)
}

type MatchStoreUsecase interface {
	RecordMatch(ctx context.Context, subjectID, targetID uuid.UUID, score float64) (uuid.UUID, error)
	ListMatchesForSubject(ctx context.Context, subjectID uuid.UUID) ([]MatchResult, error)
	RecomputeMatchesForSubject(ctx context.Context, subjectID uuid.UUID) (RecomputeResult, error)
}

type MatchStore struct {
	matches  repository.MatchRepository
	targets  repository.TargetRepository
	assocs   repository.AssociationRepository
	notifier RecomputeNotifier
	logger   *zap.Logger
}

func NewMatchStoreUsecase(
	matches repository.MatchRepository,
	targets repository.TargetRepository,
	assocs repository.AssociationRepository,
	notifier RecomputeNotifier,
	logger *zap.Logger,
) *MatchStore {
	return &MatchStore{matches: matches, targets: targets, assocs: assocs, notifier: notifier, logger: logger}
}

func (u *MatchStore) RecordMatch(ctx context.Context, subjectID, targetID uuid.UUID, score float64) (uuid.UUID, error) {
	if subjectID == uuid.Nil || targetID == uuid.Nil {
		return uuid.Nil, ErrInvalidInput
	}
	if score < 0 || score > 100 {
		return uuid.Nil, ErrInvalidInput
	}

	exists, err := u.targets.ExistsByID(ctx, targetID)
	if err != nil {
		return uuid.Nil, ErrStorage
	}
	if !exists {
		return uuid.Nil, ErrNotFound
	}

	id, err := u.matches.Upsert(ctx, repository.MatchUpsert{
		SubjectID: subjectID,
		TargetID:  targetID,
		Score:     score,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Error("record match failed",
				zap.String("subject_id", subjectID.String()),
				zap.String("target_id", targetID.String()),
				zap.Error(err))
		}
		return uuid.Nil, ErrStorage
	}
	return id, nil
}

func (u *MatchStore) ListMatchesForSubject(ctx context.Context, subjectID uuid.UUID) ([]MatchResult, error) {
	if subjectID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	rows, err := u.matches.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, ErrStorage
	}

	out := make([]MatchResult, 0, len(rows))
	for _, m := range rows {
		out = append(out, MatchResult{
			SubjectID:  m.SubjectID,
			TargetID:   m.TargetID,
			Score:      m.Score,
			ComputedAt: m.ComputedAt,
		})
	}
	return out, nil
}

// RecomputeMatchesForSubject rescores the subject against every current
// target after its skill set changes. Listing failures surface as
// ErrStorage; per-target insert failures land in Failed.
func (u *MatchStore) RecomputeMatchesForSubject(ctx context.Context, subjectID uuid.UUID) (RecomputeResult, error) {
	if subjectID == uuid.Nil {
		return RecomputeResult{}, ErrInvalidInput
	}

	subjectAssocs, err := u.assocs.FindByOwner(ctx, subjectID)
	if err != nil {
		return RecomputeResult{}, ErrStorage
	}

	possessed := make([]matching.PossessedSkill, 0, len(subjectAssocs))
	for _, a := range subjectAssocs {
		possessed = append(possessed, matching.PossessedSkill{
			Name:        a.SkillName,
			Proficiency: skill.ParseProficiency(a.Weight),
		})
	}

	targets, err := u.targets.ListTargets(ctx)
	if err != nil {
		return RecomputeResult{}, ErrStorage
	}

	targetIDs := make([]uuid.UUID, 0, len(targets))
	for _, t := range targets {
		targetIDs = append(targetIDs, t.ID)
	}
	reqsByTarget, err := u.assocs.FindByOwners(ctx, targetIDs)
	if err != nil {
		return RecomputeResult{}, ErrStorage
	}

	out := RecomputeResult{
		Succeeded: make([]MatchResult, 0, len(targets)),
		Failed:    make([]uuid.UUID, 0),
	}

	now := time.Now().UTC()
	for _, t := range targets {
		reqs := make([]matching.RequiredSkill, 0, len(reqsByTarget[t.ID]))
		for _, a := range reqsByTarget[t.ID] {
			reqs = append(reqs, matching.RequiredSkill{
				Name:       a.SkillName,
				Importance: skill.ParseImportance(a.Weight),
			})
		}

		score := matching.Score(possessed, reqs)

		_, err := u.matches.Upsert(ctx, repository.MatchUpsert{
			SubjectID:  subjectID,
			TargetID:   t.ID,
			Score:      score,
			ComputedAt: now,
		})
		if err != nil {
			out.Failed = append(out.Failed, t.ID)
			if u.logger != nil {
				u.logger.Warn("recompute insert failed",
					zap.String("subject_id", subjectID.String()),
					zap.String("target_id", t.ID.String()),
					zap.Error(err))
			}
			continue
		}

		out.Succeeded = append(out.Succeeded, MatchResult{
			SubjectID:  subjectID,
			TargetID:   t.ID,
			Score:      score,
			ComputedAt: now,
		})
	}

	if u.notifier != nil {
		u.notifier.MatchesRecomputed(subjectID, len(out.Succeeded), len(out.Failed))
	}
	return out, nil
}
