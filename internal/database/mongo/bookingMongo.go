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

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	now := time.Now().UTC()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	return findOne[entity.Booking](ctx, r.coll, byID(id), entity.ErrBookingNotFound)
}

func (r *BookingRepository) List(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = equalFold(string(filter.Status))
	}
	if filter.CustomerEmail != "" {
		query["customerEmail"] = equalFold(filter.CustomerEmail)
	}
	return findAll[entity.Booking](ctx, r.coll, query, newestFirst())
}

func (r *BookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	booking.UpdatedAt = time.Now().UTC()
	return replace(ctx, r.coll, booking.ID, booking, entity.ErrBookingNotFound)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, entity.ErrBookingNotFound)
}
