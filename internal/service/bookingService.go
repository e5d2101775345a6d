package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/sirupsen/logrus"
)

// BookingInput is a create or partial update payload. Nil fields are left alone.
type BookingInput struct {
	Car           *string              `json:"car" form:"car"`
	CarBrand      *string              `json:"carBrand" form:"carBrand"`
	CarModel      *string              `json:"carModel" form:"carModel"`
	CarPlate      *string              `json:"carPlate" form:"carPlate"`
	CustomerName  *string              `json:"customerName" form:"customerName"`
	CustomerEmail *string              `json:"customerEmail" form:"customerEmail"`
	CustomerPhone *string              `json:"customerPhone" form:"customerPhone"`
	PickupDate    *entity.FlexibleTime `json:"pickupDate" form:"pickupDate"`
	ReturnDate    *entity.FlexibleTime `json:"returnDate" form:"returnDate"`
	Status        *string              `json:"status" form:"status"`
	TotalPrice    *FormValue           `json:"totalPrice" form:"totalPrice"`
	Notes         *string              `json:"notes" form:"notes"`
}

func (in *BookingInput) apply(b *entity.Booking) error {
	var errs validation.Errors

	setString(&b.CarID, in.Car)
	setString(&b.CarBrand, in.CarBrand)
	setString(&b.CarModel, in.CarModel)
	setString(&b.CarPlate, in.CarPlate)
	setString(&b.CustomerName, in.CustomerName)
	setString(&b.CustomerPhone, in.CustomerPhone)
	if in.CustomerEmail != nil {
		b.CustomerEmail = normalizeEmail(*in.CustomerEmail)
	}
	if in.PickupDate != nil {
		b.PickupDate = in.PickupDate.Time
	}
	if in.ReturnDate != nil {
		b.ReturnDate = in.ReturnDate.Time
	}
	if in.TotalPrice != nil {
		if in.TotalPrice.String() == "" {
			b.TotalPrice = nil
		} else if price, err := in.TotalPrice.Float(); err != nil {
			errs = errs.Add("totalPrice", "must be a number")
		} else {
			b.TotalPrice = &price
		}
	}
	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		b.Notes = &notes
	}

	return errs.Err()
}

type bookingService struct {
	bookingRepo database.BookingRepository
	carRepo     database.CarRepository
	events      EventPublisher
	snapshot    SnapshotInvalidator
}

func NewBookingService(
	bookingRepo database.BookingRepository,
	carRepo database.CarRepository,
	events EventPublisher,
	snapshot SnapshotInvalidator,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		events:      events,
		snapshot:    snapshot,
	}
}

// CreateBooking falls back to Pending for a missing or unknown status.
func (s *bookingService) CreateBooking(ctx context.Context, in *BookingInput) (*entity.BookingWithCar, error) {
	booking := &entity.Booking{Status: entity.BookingStatusPending}
	if err := in.apply(booking); err != nil {
		return nil, err
	}
	if in.Status != nil {
		if status, err := entity.ParseStatus(*in.Status); err == nil {
			booking.Status = status
		}
	}
	if err := validation.Struct(booking); err != nil {
		return nil, err
	}

	car, err := s.resolveCar(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"car_id":     booking.CarID,
		"status":     booking.Status,
	}).Info("Booking created")

	invalidate(ctx, s.snapshot)
	publishEvent(ctx, s.events, bookingEvent(entity.EventBookingCreated, booking))

	return &entity.BookingWithCar{Booking: *booking, Car: car}, nil
}

// resolveCar checks the referenced car exists and fills the display snapshot
// from it when the client did not send one.
func (s *bookingService) resolveCar(ctx context.Context, b *entity.Booking) (*entity.Car, error) {
	if !b.HasCar() {
		return nil, nil
	}

	car, err := s.carRepo.GetByID(ctx, b.CarID)
	if errors.Is(err, entity.ErrCarNotFound) {
		return nil, validation.Errors{}.Add("car", "car not found")
	}
	if err != nil {
		return nil, err
	}

	if b.CarBrand == "" {
		b.CarBrand = car.Brand
	}
	if b.CarModel == "" {
		b.CarModel = car.Model
	}
	return car, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*entity.BookingWithCar, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withCar(ctx, booking)
}

// ListBookings filters by status case-insensitively; an unrecognised
// status matches nothing.
func (s *bookingService) ListBookings(ctx context.Context, status string) ([]entity.BookingWithCar, error) {
	filter := entity.BookingFilter{}
	if strings.TrimSpace(status) != "" {
		filter.Status = entity.NormalizeStatus(status)
		if filter.Status == entity.BookingStatusUnknown {
			return []entity.BookingWithCar{}, nil
		}
	}
	return s.list(ctx, filter)
}

func (s *bookingService) ListCustomerBookings(ctx context.Context, email string) ([]entity.BookingWithCar, error) {
	email = normalizeEmail(email)
	if email == "" {
		return []entity.BookingWithCar{}, nil
	}
	return s.list(ctx, entity.BookingFilter{CustomerEmail: email})
}

func (s *bookingService) list(ctx context.Context, filter entity.BookingFilter) ([]entity.BookingWithCar, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	cars, err := s.carRepo.List(ctx, entity.CarFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	carsByID := make(map[string]*entity.Car, len(cars))
	for i := range cars {
		carsByID[cars[i].ID] = &cars[i]
	}

	out := make([]entity.BookingWithCar, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, entity.BookingWithCar{Booking: b, Car: carsByID[b.CarID]})
	}
	return out, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, id string, in *BookingInput) (*entity.BookingWithCar, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := booking.Status

	if in.Status != nil {
		status, err := entity.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		booking.Status = status
	}
	carChanged := in.Car != nil && strings.TrimSpace(*in.Car) != booking.CarID
	if err := in.apply(booking); err != nil {
		return nil, err
	}
	if err := validation.Struct(booking); err != nil {
		return nil, err
	}
	if carChanged {
		if _, err := s.resolveCar(ctx, booking); err != nil {
			return nil, err
		}
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	invalidate(ctx, s.snapshot)
	if !booking.Status.Is(prev) {
		event := bookingEvent(entity.EventBookingStatusChanged, booking)
		event.PrevStatus = prev
		publishEvent(ctx, s.events, event)
	}
	return s.withCar(ctx, booking)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id, raw string) (*entity.BookingWithCar, error) {
	status, err := entity.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := booking.Status

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status

	logrus.WithFields(logrus.Fields{
		"booking_id": id,
		"from":       prev,
		"to":         status,
	}).Info("Booking status updated")

	invalidate(ctx, s.snapshot)
	event := bookingEvent(entity.EventBookingStatusChanged, booking)
	event.PrevStatus = prev
	publishEvent(ctx, s.events, event)

	return s.withCar(ctx, booking)
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	invalidate(ctx, s.snapshot)
	publishEvent(ctx, s.events, bookingEvent(entity.EventBookingDeleted, booking))
	return booking, nil
}

// withCar attaches the car; a dangling reference yields a nil car.
func (s *bookingService) withCar(ctx context.Context, b *entity.Booking) (*entity.BookingWithCar, error) {
	out := &entity.BookingWithCar{Booking: *b}
	if !b.HasCar() {
		return out, nil
	}

	car, err := s.carRepo.GetByID(ctx, b.CarID)
	switch {
	case errors.Is(err, entity.ErrCarNotFound):
		// car was deleted, the snapshot fields still describe it
	case err != nil:
		return nil, err
	default:
		out.Car = car
	}
	return out, nil
}

func bookingEvent(t entity.EventType, b *entity.Booking) entity.DomainEvent {
	pickup, ret := b.PickupDate, b.ReturnDate
	return entity.DomainEvent{
		Type:          t,
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Car:           strings.TrimSpace(b.CarBrand + " " + b.CarModel),
		PickupDate:    &pickup,
		ReturnDate:    &ret,
		Status:        b.Status,
	}
}
