package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmatch/internal/database"
	domainskill "skillmatch/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID   uuid.UUID
	Name string
}

type SkillRepository interface {
	FindByName(ctx context.Context, name string) (Skill, error)
	ResolveOrCreate(ctx context.Context, name string) (Skill, error)
	GetAllSkills(ctx context.Context) ([]Skill, error)
}

// PostgresSkillRepository runs against any Queryer so the catalog can
// hand it a transaction for batch association.
type PostgresSkillRepository struct {
	db database.Queryer
}

func NewPostgresSkillRepository(db database.Queryer) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name FROM skills WHERE lower(name) = $1`,
		domainskill.Normalize(name),
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

// ResolveOrCreate is a single insert-or-fetch statement. The unique
// index on lower(name) makes a duplicate-name race from concurrent
// callers collapse to exactly one stored row; the no-op DO UPDATE lets
// RETURNING yield the surviving row either way.
func (r *PostgresSkillRepository) ResolveOrCreate(ctx context.Context, name string) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name) VALUES ($1, $2)
		 ON CONFLICT (lower(name)) DO UPDATE SET name = skills.name
		 RETURNING id, name`,
		uuid.New(), name,
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
