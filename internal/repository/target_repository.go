package repository

import (
	"context"

	"skillmatch/internal/database"

	"github.com/google/uuid"
)

// Target is a match target (a job) as the match store sees it.
type Target struct {
	ID       uuid.UUID
	Title    string
	Company  string
	Location string
}

type TargetRepository interface {
	ListTargets(ctx context.Context) ([]Target, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresTargetRepository struct {
	db database.Queryer
}

func NewPostgresTargetRepository(db database.Queryer) *PostgresTargetRepository {
	return &PostgresTargetRepository{db: db}
}

func (r *PostgresTargetRepository) ListTargets(ctx context.Context) ([]Target, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(company, ''), COALESCE(location, '')
		 FROM jobs
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Target, 0)
	for rows.Next() {
		var t Target
		if err := rows.Scan(&t.ID, &t.Title, &t.Company, &t.Location); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTargetRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
