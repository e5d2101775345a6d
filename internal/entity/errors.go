package entity

import "errors"

var (
	// Car errors
	ErrCarNotFound = errors.New("car not found")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// Content errors
	ErrBlogPostNotFound    = errors.New("blog post not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrSubscriberNotFound  = errors.New("subscriber not found")

	// Account errors
	ErrAdminNotFound      = errors.New("admin not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("old password is wrong")
	ErrSelfDelete         = errors.New("you cannot delete yourself")
	ErrAdminAlreadySeeded = errors.New("admin already exists")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidImage = errors.New("invalid image type")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden operation")
)
