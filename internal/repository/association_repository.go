package repository

import (
	"context"

	"skillmatch/internal/database"

	"github.com/google/uuid"
)

// Association links an owner (a user or a job) to a catalog skill with
// a weight: a proficiency level for possessed skills, an importance
// level for required skills. Duplicate (owner, skill) pairs are the
// caller's responsibility; the repository inserts what it is given.
type Association struct {
	OwnerID   uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Weight    string
}

type AssociationRepository interface {
	Insert(ctx context.Context, a Association) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Association, error)
	FindByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID][]Association, error)
}

type PostgresAssociationRepository struct {
	db database.Queryer
}

func NewPostgresAssociationRepository(db database.Queryer) *PostgresAssociationRepository {
	return &PostgresAssociationRepository{db: db}
}

func (r *PostgresAssociationRepository) Insert(ctx context.Context, a Association) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_associations (id, owner_id, skill_id, weight)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New(), a.OwnerID, a.SkillID, a.Weight,
	)
	return err
}

func (r *PostgresAssociationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Association, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sa.owner_id, sa.skill_id, s.name, COALESCE(sa.weight, '')
		 FROM skill_associations sa
		 JOIN skills s ON s.id = sa.skill_id
		 WHERE sa.owner_id = $1
		 ORDER BY s.name ASC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Association, 0)
	for rows.Next() {
		var a Association
		if err := rows.Scan(&a.OwnerID, &a.SkillID, &a.SkillName, &a.Weight); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAssociationRepository) FindByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID][]Association, error) {
	out := make(map[uuid.UUID][]Association, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT sa.owner_id, sa.skill_id, s.name, COALESCE(sa.weight, '')
		 FROM skill_associations sa
		 JOIN skills s ON s.id = sa.skill_id
		 WHERE sa.owner_id = ANY($1)
		 ORDER BY s.name ASC`,
		ownerIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a Association
		if err := rows.Scan(&a.OwnerID, &a.SkillID, &a.SkillName, &a.Weight); err != nil {
			return nil, err
		}
		out[a.OwnerID] = append(out[a.OwnerID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
