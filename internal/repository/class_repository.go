package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
)

// ClassRepository manages scheduled class persistence.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]domain.Class, error)
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, reg *domain.ClassRegistration) error
	CountRegistrations(ctx context.Context, classID string) (int, error)
	ListRegistrations(ctx context.Context, classID string) ([]domain.ClassRegistration, error)
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository returns a Postgres-backed implementation.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

const classColumns = `id, title, instructor_id, level, location, starts_at, ends_at, capacity, created_at, updated_at`

func (r *classRepository) Create(ctx context.Context, class *domain.Class) error {
	const query = `
        INSERT INTO classes (title, instructor_id, level, location, starts_at, ends_at, capacity)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		class.Title,
		class.InstructorID,
		class.Level,
		class.Location,
		class.StartsAt,
		class.EndsAt,
		class.Capacity,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id=$1`

	var class domain.Class
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Title,
		&class.InstructorID,
		&class.Level,
		&class.Location,
		&class.StartsAt,
		&class.EndsAt,
		&class.Capacity,
		&class.CreatedAt,
		&class.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context) ([]domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY starts_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []domain.Class
	for rows.Next() {
		var class domain.Class
		if err := rows.Scan(
			&class.ID,
			&class.Title,
			&class.InstructorID,
			&class.Level,
			&class.Location,
			&class.StartsAt,
			&class.EndsAt,
			&class.Capacity,
			&class.CreatedAt,
			&class.UpdatedAt,
		); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

func (r *classRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *classRepository) Register(ctx context.Context, reg *domain.ClassRegistration) error {
	const query = `
        INSERT INTO class_registrations (class_id, golfer_id)
        VALUES ($1,$2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, reg.ClassID, reg.GolferID).
		Scan(&reg.ID, &reg.CreatedAt)
}

func (r *classRepository) CountRegistrations(ctx context.Context, classID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM class_registrations WHERE class_id=$1`, classID).
		Scan(&count)
	return count, err
}

func (r *classRepository) ListRegistrations(ctx context.Context, classID string) ([]domain.ClassRegistration, error) {
	const query = `
        SELECT id, class_id, golfer_id, created_at
        FROM class_registrations WHERE class_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.ClassRegistration
	for rows.Next() {
		var reg domain.ClassRegistration
		if err := rows.Scan(&reg.ID, &reg.ClassID, &reg.GolferID, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
