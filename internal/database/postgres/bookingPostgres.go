package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const bookingColumns = `id, car_id, car_brand, car_model, car_plate, customer_name, customer_email,
	customer_phone, pickup_date, return_date, status, total_price, price, notes, created_at, updated_at`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	now := time.Now().UTC()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES (:id, :car_id, :car_brand, :car_model, :car_plate, :customer_name, :customer_email,
			:customer_phone, :pickup_date, :return_date, :status, :total_price, :price, :notes,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, entity.ErrBookingNotFound)
	}
	return &booking, nil
}

func (r *BookingRepository) List(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(` AND LOWER(status) = LOWER($%d)`, len(args))
	}
	if filter.CustomerEmail != "" {
		args = append(args, filter.CustomerEmail)
		query += fmt.Sprintf(` AND LOWER(customer_email) = LOWER($%d)`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	bookings := make([]entity.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	booking.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE bookings SET
			car_id = :car_id, car_brand = :car_brand, car_model = :car_model, car_plate = :car_plate,
			customer_name = :customer_name, customer_email = :customer_email,
			customer_phone = :customer_phone, pickup_date = :pickup_date, return_date = :return_date,
			status = :status, total_price = :total_price, price = :price, notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return checkAffected(res, entity.ErrBookingNotFound)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return checkAffected(res, entity.ErrBookingNotFound)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return checkAffected(res, entity.ErrBookingNotFound)
}
