package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
)

// FeedbackRepository manages swing feedback persistence.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.SwingFeedback) error
	GetByID(ctx context.Context, id string) (*domain.SwingFeedback, error)
	ListByGolfer(ctx context.Context, golferID string) ([]domain.SwingFeedback, error)
	Delete(ctx context.Context, id string) error
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository returns a Postgres-backed implementation.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.SwingFeedback) error {
	const query = `
        INSERT INTO swing_feedback (golfer_id, instructor_id, area, rating, note)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		feedback.GolferID,
		feedback.InstructorID,
		feedback.Area,
		feedback.Rating,
		feedback.Note,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*domain.SwingFeedback, error) {
	const query = `
        SELECT id, golfer_id, instructor_id, area, rating, note, created_at
        FROM swing_feedback WHERE id=$1`

	var feedback domain.SwingFeedback
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&feedback.ID,
		&feedback.GolferID,
		&feedback.InstructorID,
		&feedback.Area,
		&feedback.Rating,
		&feedback.Note,
		&feedback.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ListByGolfer(ctx context.Context, golferID string) ([]domain.SwingFeedback, error) {
	const query = `
        SELECT id, golfer_id, instructor_id, area, rating, note, created_at
        FROM swing_feedback WHERE golfer_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, golferID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.SwingFeedback
	for rows.Next() {
		var feedback domain.SwingFeedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.GolferID,
			&feedback.InstructorID,
			&feedback.Area,
			&feedback.Rating,
			&feedback.Note,
			&feedback.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, feedback)
	}
	return entries, rows.Err()
}

func (r *feedbackRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM swing_feedback WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
