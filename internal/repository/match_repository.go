package repository

import (
	"context"
	"time"

	"skillmatch/internal/database"

	"github.com/google/uuid"
)

type MatchUpsert struct {
	SubjectID  uuid.UUID
	TargetID   uuid.UUID
	Score      float64
	ComputedAt time.Time
}

type MatchRow struct {
	ID         uuid.UUID
	SubjectID  uuid.UUID
	TargetID   uuid.UUID
	Score      float64
	ComputedAt time.Time
}

type MatchRepository interface {
	Upsert(ctx context.Context, m MatchUpsert) (uuid.UUID, error)
	FindBySubject(ctx context.Context, subjectID uuid.UUID) ([]MatchRow, error)
}

type PostgresMatchRepository struct {
	db database.Queryer
}

func NewPostgresMatchRepository(db database.Queryer) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Upsert replaces any prior score for the (subject, target) pair;
// match rows are superseded, not versioned.
func (r *PostgresMatchRepository) Upsert(ctx context.Context, m MatchUpsert) (uuid.UUID, error) {
	if m.ComputedAt.IsZero() {
		m.ComputedAt = time.Now().UTC()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO match_results (id, subject_id, target_id, score, computed_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (subject_id, target_id) DO UPDATE SET
			score = EXCLUDED.score,
			computed_at = EXCLUDED.computed_at
		 RETURNING id`,
		uuid.New(), m.SubjectID, m.TargetID, m.Score, m.ComputedAt,
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresMatchRepository) FindBySubject(ctx context.Context, subjectID uuid.UUID) ([]MatchRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, subject_id, target_id, score, computed_at
		 FROM match_results
		 WHERE subject_id = $1
		 ORDER BY score DESC`,
		subjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MatchRow, 0)
	for rows.Next() {
		var m MatchRow
		if err := rows.Scan(&m.ID, &m.SubjectID, &m.TargetID, &m.Score, &m.ComputedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
