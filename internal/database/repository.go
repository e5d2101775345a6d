// Package database declares the storage contracts. Both the postgres and the
// mongo packages implement every interface here.
package database

import (
	"context"
	"errors"

	"github.com/ds124wfegd/car-rental/internal/entity"
)

// ErrCacheMiss is returned by OverviewCache.Get when nothing is stored.
var ErrCacheMiss = errors.New("cache miss")

type CarRepository interface {
	Create(ctx context.Context, car *entity.Car) error
	GetByID(ctx context.Context, id string) (*entity.Car, error)
	// List is newest first.
	List(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	// List is newest first; the status filter matches case-insensitively.
	List(ctx context.Context, filter entity.BookingFilter) ([]entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	List(ctx context.Context) ([]entity.BlogPost, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *entity.Testimonial) error
	GetByID(ctx context.Context, id string) (*entity.Testimonial, error)
	List(ctx context.Context, onlyActive bool) ([]entity.Testimonial, error)
	Update(ctx context.Context, t *entity.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type SubscriberRepository interface {
	Create(ctx context.Context, s *entity.Subscriber) error
	GetByID(ctx context.Context, id string) (*entity.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	List(ctx context.Context) ([]entity.Subscriber, error)
	Update(ctx context.Context, s *entity.Subscriber) error
	Delete(ctx context.Context, id string) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	GetByID(ctx context.Context, id string) (*entity.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	List(ctx context.Context) ([]entity.AdminUser, error)
	Count(ctx context.Context) (int, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
}

// OverviewCache keeps the last computed dashboard snapshot.
type OverviewCache interface {
	Get(ctx context.Context) (*entity.Overview, error)
	Set(ctx context.Context, overview *entity.Overview) error
	Invalidate(ctx context.Context) error
}

// Repositories bundles one backend's implementations.
type Repositories struct {
	Cars         CarRepository
	Bookings     BookingRepository
	Blogs        BlogRepository
	Testimonials TestimonialRepository
	Subscribers  SubscriberRepository
	Admins       AdminRepository
	Customers    CustomerRepository
}
