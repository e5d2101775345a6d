package service

import (
	"context"
	"mime/multipart"

	"github.com/ds124wfegd/car-rental/internal/entity"
)

type CarService interface {
	CreateCar(ctx context.Context, in *CarInput) (*entity.Car, error)
	GetCar(ctx context.Context, id string) (*entity.Car, error)
	ListCars(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error)
	UpdateCar(ctx context.Context, id string, in *CarInput) (*entity.Car, error)
	DeleteCar(ctx context.Context, id string) (*entity.Car, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, in *BookingInput) (*entity.BookingWithCar, error)
	GetBooking(ctx context.Context, id string) (*entity.BookingWithCar, error)
	ListBookings(ctx context.Context, status string) ([]entity.BookingWithCar, error)
	ListCustomerBookings(ctx context.Context, email string) ([]entity.BookingWithCar, error)
	UpdateBooking(ctx context.Context, id string, in *BookingInput) (*entity.BookingWithCar, error)
	UpdateBookingStatus(ctx context.Context, id, status string) (*entity.BookingWithCar, error)
	DeleteBooking(ctx context.Context, id string) (*entity.Booking, error)
}

type BlogService interface {
	CreatePost(ctx context.Context, in *BlogInput) (*entity.BlogPost, error)
	GetPost(ctx context.Context, id string) (*entity.BlogPost, error)
	ListPosts(ctx context.Context) ([]entity.BlogPost, error)
	UpdatePost(ctx context.Context, id string, in *BlogInput) (*entity.BlogPost, error)
	DeletePost(ctx context.Context, id string) (*entity.BlogPost, error)
}

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, in *TestimonialInput) (*entity.Testimonial, error)
	ListTestimonials(ctx context.Context, onlyActive bool) ([]entity.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, in *TestimonialInput) (*entity.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (SubscribeResult, error)
	ListSubscribers(ctx context.Context) ([]entity.Subscriber, error)
	ToggleSubscriber(ctx context.Context, id string) (*entity.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) error
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (*AdminSession, error)
	SeedAdmin(ctx context.Context, in *AdminInput) (*AdminProfile, error)
	InviteAdmin(ctx context.Context, in *AdminInput) (*AdminProfile, error)
	ListAdmins(ctx context.Context) ([]AdminProfile, error)
	ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error
	DeleteAdmin(ctx context.Context, actorID, id string) error
}

type CustomerService interface {
	Signup(ctx context.Context, in *SignupInput) (*CustomerSession, error)
	Login(ctx context.Context, email, password string) (*CustomerSession, error)
}

type OverviewService interface {
	GetOverview(ctx context.Context) (*entity.Overview, error)
	// Refresh recomputes the snapshot and stores it in the cache, if any.
	Refresh(ctx context.Context) (*entity.Overview, error)
	Invalidate(ctx context.Context)
}

// ImageUploader stores an uploaded image under dir and returns its URL.
type ImageUploader interface {
	Upload(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error)
}

// EventPublisher is satisfied by the kafka producer and the RabbitMQ client.
type EventPublisher interface {
	Publish(ctx context.Context, message interface{}) error
}

// SnapshotInvalidator drops cached dashboard data after writes.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context)
}
