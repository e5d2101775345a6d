package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const subscriberColumns = `id, email, is_active, source, created_at, updated_at`

type SubscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *entity.Subscriber) error {
	now := time.Now().UTC()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO subscribers (` + subscriberColumns + `)
		VALUES (:id, :email, :is_active, :source, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) GetByID(ctx context.Context, id string) (*entity.Subscriber, error) {
	var s entity.Subscriber
	err := r.db.GetContext(ctx, &s, `SELECT `+subscriberColumns+` FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, entity.ErrSubscriberNotFound)
	}
	return &s, nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	var s entity.Subscriber
	err := r.db.GetContext(ctx, &s, `SELECT `+subscriberColumns+` FROM subscribers WHERE email = $1`, email)
	if err != nil {
		return nil, notFound(err, entity.ErrSubscriberNotFound)
	}
	return &s, nil
}

func (r *SubscriberRepository) List(ctx context.Context) ([]entity.Subscriber, error) {
	items := make([]entity.Subscriber, 0)
	if err := r.db.SelectContext(ctx, &items, `SELECT `+subscriberColumns+` FROM subscribers ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return items, nil
}

func (r *SubscriberRepository) Update(ctx context.Context, s *entity.Subscriber) error {
	s.UpdatedAt = time.Now().UTC()

	res, err := r.db.NamedExecContext(ctx,
		`UPDATE subscribers SET is_active = :is_active, source = :source, updated_at = :updated_at WHERE id = :id`,
		s,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscriber: %w", err)
	}
	return checkAffected(res, entity.ErrSubscriberNotFound)
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return checkAffected(res, entity.ErrSubscriberNotFound)
}
