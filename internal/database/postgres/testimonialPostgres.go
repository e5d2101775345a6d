package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const testimonialColumns = `id, name, role, trip, text, rating, image, is_active, created_at, updated_at`

type TestimonialRepository struct {
	db *sqlx.DB
}

func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO testimonials (` + testimonialColumns + `)
		VALUES (:id, :name, :role, :trip, :text, :rating, :image, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	var t entity.Testimonial
	err := r.db.GetContext(ctx, &t, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, entity.ErrTestimonialNotFound)
	}
	return &t, nil
}

func (r *TestimonialRepository) List(ctx context.Context, onlyActive bool) ([]entity.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	items := make([]entity.Testimonial, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return items, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	t.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE testimonials SET
			name = :name, role = :role, trip = :trip, text = :text, rating = :rating,
			image = :image, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	return checkAffected(res, entity.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return checkAffected(res, entity.ErrTestimonialNotFound)
}
