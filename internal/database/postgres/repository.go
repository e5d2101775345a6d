package postgres

import (
	"database/sql"
	"errors"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func NewRepositories(db *sqlx.DB) *database.Repositories {
	return &database.Repositories{
		Cars:         NewCarRepository(db),
		Bookings:     NewBookingRepository(db),
		Blogs:        NewBlogRepository(db),
		Testimonials: NewTestimonialRepository(db),
		Subscribers:  NewSubscriberRepository(db),
		Admins:       NewAdminRepository(db),
		Customers:    NewCustomerRepository(db),
	}
}

// notFound maps sql.ErrNoRows to the given sentinel.
func notFound(err error, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// checkAffected turns "0 rows" into the given sentinel.
func checkAffected(res sql.Result, sentinel error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel
	}
	return nil
}
