package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CarRepository struct {
	coll *mongo.Collection
}

func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{coll: db.Collection(carsCollection)}
}

func (r *CarRepository) Create(ctx context.Context, car *entity.Car) error {
	now := time.Now().UTC()
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	car.CreatedAt = now
	car.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, car); err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	return findOne[entity.Car](ctx, r.coll, byID(id), entity.ErrCarNotFound)
}

func (r *CarRepository) List(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error) {
	query := bson.M{}
	if filter.OnlyAvailable {
		query["isAvailable"] = true
	}
	return findAll[entity.Car](ctx, r.coll, query, newestFirst())
}

func (r *CarRepository) Update(ctx context.Context, car *entity.Car) error {
	car.UpdatedAt = time.Now().UTC()
	return replace(ctx, r.coll, car.ID, car, entity.ErrCarNotFound)
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, entity.ErrCarNotFound)
}

func (r *CarRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return int(n), nil
}
