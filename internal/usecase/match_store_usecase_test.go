package usecase

import (
	"context"
	"errors"
	"testing"

	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

type fakeMatchRepo struct {
	upserts []repository.MatchUpsert
	failOn  map[uuid.UUID]bool // fail upserts for these target ids
}

func (r *fakeMatchRepo) Upsert(_ context.Context, m repository.MatchUpsert) (uuid.UUID, error) {
	if r.failOn[m.TargetID] {
		return uuid.Nil, errors.New("insert failed")
	}
	r.upserts = append(r.upserts, m)
	return uuid.New(), nil
}

func (r *fakeMatchRepo) FindBySubject(_ context.Context, subjectID uuid.UUID) ([]repository.MatchRow, error) {
	out := make([]repository.MatchRow, 0)
	for _, m := range r.upserts {
		if m.SubjectID == subjectID {
			out = append(out, repository.MatchRow{
				ID:         uuid.New(),
				SubjectID:  m.SubjectID,
				TargetID:   m.TargetID,
				Score:      m.Score,
				ComputedAt: m.ComputedAt,
			})
		}
	}
	return out, nil
}

type fakeTargetRepo struct {
	targets []repository.Target
	err     error
	missing map[uuid.UUID]bool
}

func (r *fakeTargetRepo) ListTargets(context.Context) ([]repository.Target, error) {
	return r.targets, r.err
}

func (r *fakeTargetRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return !r.missing[id], nil
}

type fakeAssocLookup struct {
	byOwner map[uuid.UUID][]repository.Association
}

func (r *fakeAssocLookup) Insert(context.Context, repository.Association) error { return nil }
func (r *fakeAssocLookup) FindByOwner(_ context.Context, id uuid.UUID) ([]repository.Association, error) {
	return r.byOwner[id], nil
}
func (r *fakeAssocLookup) FindByOwners(_ context.Context, ids []uuid.UUID) (map[uuid.UUID][]repository.Association, error) {
	out := make(map[uuid.UUID][]repository.Association, len(ids))
	for _, id := range ids {
		if as, ok := r.byOwner[id]; ok {
			out[id] = as
		}
	}
	return out, nil
}

type fakeNotifier struct {
	subject   uuid.UUID
	succeeded int
	failed    int
	calls     int
}

func (n *fakeNotifier) MatchesRecomputed(subjectID uuid.UUID, succeeded, failed int) {
	n.subject = subjectID
	n.succeeded = succeeded
	n.failed = failed
	n.calls++
}

func TestMatchStore_RecordMatch_Validation(t *testing.T) {
	uc := NewMatchStoreUsecase(&fakeMatchRepo{}, &fakeTargetRepo{}, &fakeAssocLookup{}, nil, nil)

	if _, err := uc.RecordMatch(context.Background(), uuid.Nil, uuid.New(), 50); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil subject, got %v", err)
	}
	if _, err := uc.RecordMatch(context.Background(), uuid.New(), uuid.New(), 101); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range score, got %v", err)
	}
}

func TestMatchStore_RecordMatch_Persists(t *testing.T) {
	matches := &fakeMatchRepo{}
	uc := NewMatchStoreUsecase(matches, &fakeTargetRepo{}, &fakeAssocLookup{}, nil, nil)

	id, err := uc.RecordMatch(context.Background(), uuid.New(), uuid.New(), 72.5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected a match id")
	}
	if len(matches.upserts) != 1 || matches.upserts[0].Score != 72.5 {
		t.Fatalf("unexpected upserts: %+v", matches.upserts)
	}
}

func TestMatchStore_RecordMatch_UnknownTarget(t *testing.T) {
	ghost := uuid.New()
	targets := &fakeTargetRepo{missing: map[uuid.UUID]bool{ghost: true}}
	uc := NewMatchStoreUsecase(&fakeMatchRepo{}, targets, &fakeAssocLookup{}, nil, nil)

	if _, err := uc.RecordMatch(context.Background(), uuid.New(), ghost, 50); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown target, got %v", err)
	}
}

func TestMatchStore_ListMatchesForSubject(t *testing.T) {
	subject := uuid.New()
	target := uuid.New()
	matches := &fakeMatchRepo{}
	uc := NewMatchStoreUsecase(matches, &fakeTargetRepo{}, &fakeAssocLookup{}, nil, nil)

	if _, err := uc.RecordMatch(context.Background(), subject, target, 88); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := uc.ListMatchesForSubject(context.Background(), subject)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].TargetID != target || got[0].Score != 88 {
		t.Fatalf("unexpected matches: %+v", got)
	}

	if _, err := uc.ListMatchesForSubject(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil subject, got %v", err)
	}
}

func TestMatchStore_Recompute_ScoresEveryTarget(t *testing.T) {
	subject := uuid.New()
	fitJob := uuid.New()
	unfitJob := uuid.New()
	goID := uuid.New()
	cobolID := uuid.New()

	assocs := &fakeAssocLookup{byOwner: map[uuid.UUID][]repository.Association{
		subject:  {{OwnerID: subject, SkillID: goID, SkillName: "Go", Weight: "expert"}},
		fitJob:   {{OwnerID: fitJob, SkillID: goID, SkillName: "Go", Weight: "required"}},
		unfitJob: {{OwnerID: unfitJob, SkillID: cobolID, SkillName: "COBOL", Weight: "required"}},
	}}
	targets := &fakeTargetRepo{targets: []repository.Target{
		{ID: fitJob, Title: "Go Engineer"},
		{ID: unfitJob, Title: "COBOL Maintainer"},
	}}
	matches := &fakeMatchRepo{}
	notifier := &fakeNotifier{}

	uc := NewMatchStoreUsecase(matches, targets, assocs, notifier, nil)
	res, err := uc.RecomputeMatchesForSubject(context.Background(), subject)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(res.Succeeded) != 2 || len(res.Failed) != 0 {
		t.Fatalf("expected 2 succeeded, got %+v", res)
	}
	byTarget := map[uuid.UUID]float64{}
	for _, m := range res.Succeeded {
		byTarget[m.TargetID] = m.Score
	}
	if byTarget[fitJob] != 100.0 {
		t.Fatalf("expected 100 for fit target, got %v", byTarget[fitJob])
	}
	if byTarget[unfitJob] != 0.0 {
		t.Fatalf("expected 0 for unfit target, got %v", byTarget[unfitJob])
	}
	if notifier.calls != 1 || notifier.succeeded != 2 || notifier.failed != 0 {
		t.Fatalf("unexpected notification: %+v", notifier)
	}
}

func TestMatchStore_Recompute_PartialFailure(t *testing.T) {
	subject := uuid.New()
	okJob := uuid.New()
	badJob := uuid.New()

	assocs := &fakeAssocLookup{byOwner: map[uuid.UUID][]repository.Association{
		subject: {{OwnerID: subject, SkillName: "Go", Weight: "advanced"}},
		okJob:   {{OwnerID: okJob, SkillName: "Go", Weight: "required"}},
		badJob:  {{OwnerID: badJob, SkillName: "Go", Weight: "required"}},
	}}
	targets := &fakeTargetRepo{targets: []repository.Target{{ID: okJob}, {ID: badJob}}}
	matches := &fakeMatchRepo{failOn: map[uuid.UUID]bool{badJob: true}}

	uc := NewMatchStoreUsecase(matches, targets, assocs, nil, nil)
	res, err := uc.RecomputeMatchesForSubject(context.Background(), subject)
	if err != nil {
		t.Fatalf("partial failure must not error the batch, got %v", err)
	}
	if len(res.Succeeded) != 1 || len(res.Failed) != 1 {
		t.Fatalf("expected 1/1 split, got %+v", res)
	}
	if res.Failed[0] != badJob {
		t.Fatalf("expected failed target %s, got %s", badJob, res.Failed[0])
	}
}

func TestMatchStore_Recompute_ListFailureIsStorageError(t *testing.T) {
	uc := NewMatchStoreUsecase(
		&fakeMatchRepo{},
		&fakeTargetRepo{err: errors.New("db down")},
		&fakeAssocLookup{byOwner: map[uuid.UUID][]repository.Association{}},
		nil, nil,
	)
	_, err := uc.RecomputeMatchesForSubject(context.Background(), uuid.New())
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
