package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const carColumns = `id, brand, model, year, category, transmission, fuel_type, seating_capacity,
	location, price_per_day, description, image, is_available, created_at, updated_at`

type CarRepository struct {
	db *sqlx.DB
}

func NewCarRepository(db *sqlx.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) Create(ctx context.Context, car *entity.Car) error {
	now := time.Now().UTC()
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	car.CreatedAt = now
	car.UpdatedAt = now

	query := `
		INSERT INTO cars (` + carColumns + `)
		VALUES (:id, :brand, :model, :year, :category, :transmission, :fuel_type, :seating_capacity,
			:location, :price_per_day, :description, :image, :is_available, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, car); err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	var car entity.Car
	err := r.db.GetContext(ctx, &car, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, entity.ErrCarNotFound)
	}
	return &car, nil
}

func (r *CarRepository) List(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars`
	if filter.OnlyAvailable {
		query += ` WHERE is_available = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	cars := make([]entity.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, query); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (r *CarRepository) Update(ctx context.Context, car *entity.Car) error {
	car.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE cars SET
			brand = :brand, model = :model, year = :year, category = :category,
			transmission = :transmission, fuel_type = :fuel_type, seating_capacity = :seating_capacity,
			location = :location, price_per_day = :price_per_day, description = :description,
			image = :image, is_available = :is_available, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, car)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}
	return checkAffected(res, entity.ErrCarNotFound)
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	return checkAffected(res, entity.ErrCarNotFound)
}

func (r *CarRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM cars`); err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return n, nil
}
