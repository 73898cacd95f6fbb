package usecase

import (
	"context"
	"strings"

	"skillmatch/internal/database"
	"skillmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SkillItem struct {
	ID   uuid.UUID
	Name string
}

// SkillEntry is one (name, weight) pair in an association batch. Weight
// is a proficiency level when the owner is a user and an importance
// level when the owner is a job; the catalog stores it as given.
type SkillEntry struct {
	Name   string
	Weight string
}

type CatalogUsecase interface {
	ResolveOrCreate(ctx context.Context, name string) (SkillItem, error)
	AssociateSkills(ctx context.Context, ownerID uuid.UUID, entries []SkillEntry) error
	ListSkills(ctx context.Context) ([]SkillItem, error)
}

type skillRepoFactory func(q database.Queryer) repository.SkillRepository

type assocRepoFactory func(q database.Queryer) repository.AssociationRepository

type Catalog struct {
	db        database.DB
	newSkills skillRepoFactory
	newAssocs assocRepoFactory
	logger    *zap.Logger
}

func NewCatalogUsecase(db database.DB, logger *zap.Logger) *Catalog {
	return &Catalog{
		db: db,
		newSkills: func(q database.Queryer) repository.SkillRepository {
			return repository.NewPostgresSkillRepository(q)
		},
		newAssocs: func(q database.Queryer) repository.AssociationRepository {
			return repository.NewPostgresAssociationRepository(q)
		},
		logger: logger,
	}
}

func (u *Catalog) ResolveOrCreate(ctx context.Context, name string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	s, err := u.newSkills(u.db).ResolveOrCreate(ctx, name)
	if err != nil {
		if u.logger != nil {
			u.logger.Error("catalog resolve failed", zap.String("skill", name), zap.Error(err))
		}
		return SkillItem{}, ErrStorage
	}
	return SkillItem{ID: s.ID, Name: s.Name}, nil
}

// AssociateSkills resolves-or-creates every named skill and inserts one
// association row per entry, all inside a single transaction. Any
// failure rolls the whole batch back: a partial skill set would silently
// corrupt every score computed from it afterwards.
func (u *Catalog) AssociateSkills(ctx context.Context, ownerID uuid.UUID, entries []SkillEntry) error {
	if ownerID == uuid.Nil {
		return ErrInvalidInput
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return ErrInvalidInput
		}
	}
	if len(entries) == 0 {
		return nil
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Error("catalog begin tx failed", zap.Error(err))
		}
		return ErrStorage
	}

	skills := u.newSkills(tx)
	assocs := u.newAssocs(tx)

	for _, e := range entries {
		s, err := skills.ResolveOrCreate(ctx, strings.TrimSpace(e.Name))
		if err != nil {
			_ = tx.Rollback(ctx)
			if u.logger != nil {
				u.logger.Error("catalog resolve in batch failed",
					zap.String("skill", e.Name), zap.Error(err))
			}
			return ErrStorage
		}

		if err := assocs.Insert(ctx, repository.Association{
			OwnerID: ownerID,
			SkillID: s.ID,
			Weight:  strings.TrimSpace(e.Weight),
		}); err != nil {
			_ = tx.Rollback(ctx)
			if u.logger != nil {
				u.logger.Error("catalog association insert failed",
					zap.String("skill", e.Name), zap.Error(err))
			}
			return ErrStorage
		}
	}

	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		if u.logger != nil {
			u.logger.Error("catalog commit failed", zap.Error(err))
		}
		return ErrStorage
	}
	return nil
}

func (u *Catalog) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.newSkills(u.db).GetAllSkills(ctx)
	if err != nil {
		return nil, ErrStorage
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name})
	}
	return out, nil
}
