package usecase

import (
	"context"
	"errors"
	"testing"

	"skillmatch/internal/database"
	"skillmatch/internal/repository"

	"github.com/google/uuid"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (t *fakeTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (t *fakeTx) Commit(context.Context) error                          { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error                        { t.rolledBack = true; return nil }

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (d *fakeDB) Ping(context.Context) error                            { return nil }
func (d *fakeDB) Close() error                                          { return nil }
func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

type fakeSkillRepo struct {
	byName   map[string]repository.Skill
	resolved []string
	failOn   string
}

func (r *fakeSkillRepo) FindByName(_ context.Context, name string) (repository.Skill, error) {
	s, ok := r.byName[name]
	if !ok {
		return repository.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (r *fakeSkillRepo) ResolveOrCreate(_ context.Context, name string) (repository.Skill, error) {
	if name == r.failOn {
		return repository.Skill{}, errors.New("db down")
	}
	r.resolved = append(r.resolved, name)
	if s, ok := r.byName[name]; ok {
		return s, nil
	}
	s := repository.Skill{ID: uuid.New(), Name: name}
	if r.byName == nil {
		r.byName = map[string]repository.Skill{}
	}
	r.byName[name] = s
	return s, nil
}

func (r *fakeSkillRepo) GetAllSkills(context.Context) ([]repository.Skill, error) {
	out := make([]repository.Skill, 0, len(r.byName))
	for _, s := range r.byName {
		out = append(out, s)
	}
	return out, nil
}

type fakeAssocRepo struct {
	inserted []repository.Association
	failOn   int // fail on nth insert, 0 = never
}

func (r *fakeAssocRepo) Insert(_ context.Context, a repository.Association) error {
	if r.failOn > 0 && len(r.inserted)+1 == r.failOn {
		return errors.New("insert failed")
	}
	r.inserted = append(r.inserted, a)
	return nil
}

func (r *fakeAssocRepo) FindByOwner(context.Context, uuid.UUID) ([]repository.Association, error) {
	return r.inserted, nil
}

func (r *fakeAssocRepo) FindByOwners(context.Context, []uuid.UUID) (map[uuid.UUID][]repository.Association, error) {
	return nil, nil
}

func newTestCatalog(db *fakeDB, skills *fakeSkillRepo, assocs *fakeAssocRepo) *Catalog {
	return &Catalog{
		db:        db,
		newSkills: func(database.Queryer) repository.SkillRepository { return skills },
		newAssocs: func(database.Queryer) repository.AssociationRepository { return assocs },
	}
}

func TestCatalog_ResolveOrCreate_Idempotent(t *testing.T) {
	skills := &fakeSkillRepo{}
	uc := newTestCatalog(&fakeDB{tx: &fakeTx{}}, skills, &fakeAssocRepo{})

	a, err := uc.ResolveOrCreate(context.Background(), "Python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := uc.ResolveOrCreate(context.Background(), "Python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ID != b.ID {
		t.Fatalf("resolve not idempotent: %s vs %s", a.ID, b.ID)
	}
	if len(skills.byName) != 1 {
		t.Fatalf("expected exactly one stored skill, got %d", len(skills.byName))
	}
}

func TestCatalog_ResolveOrCreate_EmptyName(t *testing.T) {
	uc := newTestCatalog(&fakeDB{tx: &fakeTx{}}, &fakeSkillRepo{}, &fakeAssocRepo{})
	if _, err := uc.ResolveOrCreate(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalog_AssociateSkills_CommitsBatch(t *testing.T) {
	tx := &fakeTx{}
	skills := &fakeSkillRepo{}
	assocs := &fakeAssocRepo{}
	uc := newTestCatalog(&fakeDB{tx: tx}, skills, assocs)

	owner := uuid.New()
	err := uc.AssociateSkills(context.Background(), owner, []SkillEntry{
		{Name: "Go", Weight: "intermediate"},
		{Name: "Go", Weight: "intermediate"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !tx.committed || tx.rolledBack {
		t.Fatalf("expected commit without rollback, got committed=%v rolledBack=%v", tx.committed, tx.rolledBack)
	}
	// Duplicate names resolve to one skill row but still produce one
	// association row per entry; guarding duplicates is the caller's job.
	if len(skills.byName) != 1 {
		t.Fatalf("expected one skill row, got %d", len(skills.byName))
	}
	if len(assocs.inserted) != 2 {
		t.Fatalf("expected two association rows, got %d", len(assocs.inserted))
	}
}

func TestCatalog_AssociateSkills_RollsBackOnFailure(t *testing.T) {
	tx := &fakeTx{}
	assocs := &fakeAssocRepo{failOn: 2}
	uc := newTestCatalog(&fakeDB{tx: tx}, &fakeSkillRepo{}, assocs)

	err := uc.AssociateSkills(context.Background(), uuid.New(), []SkillEntry{
		{Name: "Go", Weight: "basic"},
		{Name: "SQL", Weight: "advanced"},
	})
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if !tx.rolledBack || tx.committed {
		t.Fatalf("expected rollback without commit, got committed=%v rolledBack=%v", tx.committed, tx.rolledBack)
	}
}

func TestCatalog_AssociateSkills_RejectsBlankEntry(t *testing.T) {
	tx := &fakeTx{}
	uc := newTestCatalog(&fakeDB{tx: tx}, &fakeSkillRepo{}, &fakeAssocRepo{})

	err := uc.AssociateSkills(context.Background(), uuid.New(), []SkillEntry{
		{Name: "Go", Weight: "basic"},
		{Name: "  ", Weight: "basic"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if tx.committed || tx.rolledBack {
		t.Fatalf("validation should run before any transaction work")
	}
}

func TestCatalog_AssociateSkills_NilOwner(t *testing.T) {
	uc := newTestCatalog(&fakeDB{tx: &fakeTx{}}, &fakeSkillRepo{}, &fakeAssocRepo{})
	err := uc.AssociateSkills(context.Background(), uuid.Nil, []SkillEntry{{Name: "Go"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
