package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/sirupsen/logrus"
)

const carImageDir = "cars"

// CarInput is a create or partial update payload. Nil fields are left alone.
type CarInput struct {
	Brand           *string    `json:"brand" form:"brand"`
	Model           *string    `json:"model" form:"model"`
	Year            *FormValue `json:"year" form:"year"`
	Category        *string    `json:"category" form:"category"`
	Transmission    *string    `json:"transmission" form:"transmission"`
	FuelType        *string    `json:"fuel_type" form:"fuel_type"`
	SeatingCapacity *FormValue `json:"seating_capacity" form:"seating_capacity"`
	Location        *string    `json:"location" form:"location"`
	PricePerDay     *FormValue `json:"pricePerDay" form:"pricePerDay"`
	Description     *string    `json:"description" form:"description"`
	Image           *string    `json:"image" form:"image"`
	IsAvailable     *FormValue `json:"isAvailable" form:"isAvailable"`

	// ImageFile wins over Image when both are sent.
	ImageFile *multipart.FileHeader `json:"-" form:"-"`
}

func (in *CarInput) apply(car *entity.Car) error {
	var errs validation.Errors

	setString(&car.Brand, in.Brand)
	setString(&car.Model, in.Model)
	setString(&car.Category, in.Category)
	setString(&car.Transmission, in.Transmission)
	setString(&car.FuelType, in.FuelType)
	setString(&car.Location, in.Location)
	setString(&car.Description, in.Description)
	setString(&car.Image, in.Image)

	if in.Year != nil {
		year, err := in.Year.Int()
		if err != nil {
			errs = errs.Add("year", "must be a number")
		}
		car.Year = year
	}
	if in.SeatingCapacity != nil {
		seats, err := in.SeatingCapacity.Int()
		if err != nil {
			errs = errs.Add("seating_capacity", "must be a number")
		}
		car.SeatingCapacity = seats
	}
	if in.PricePerDay != nil {
		price, err := in.PricePerDay.Float()
		if err != nil {
			errs = errs.Add("pricePerDay", "must be a number")
		}
		car.PricePerDay = price
	}
	if in.IsAvailable != nil {
		car.IsAvailable = in.IsAvailable.Bool()
	}

	return errs.Err()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

type carService struct {
	carRepo  database.CarRepository
	uploader ImageUploader
	snapshot SnapshotInvalidator
}

func NewCarService(
	carRepo database.CarRepository,
	uploader ImageUploader,
	snapshot SnapshotInvalidator,
) CarService {
	return &carService{
		carRepo:  carRepo,
		uploader: uploader,
		snapshot: snapshot,
	}
}

func (s *carService) CreateCar(ctx context.Context, in *CarInput) (*entity.Car, error) {
	car := &entity.Car{IsAvailable: true}
	if err := in.apply(car); err != nil {
		return nil, err
	}
	if err := validation.Struct(car); err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, car, in.ImageFile); err != nil {
		return nil, err
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	logrus.WithFields(logrus.Fields{"car_id": car.ID, "brand": car.Brand, "model": car.Model}).Info("Car created")
	invalidate(ctx, s.snapshot)
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id string) (*entity.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) ListCars(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error) {
	cars, err := s.carRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (s *carService) UpdateCar(ctx context.Context, id string, in *CarInput) (*entity.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := in.apply(car); err != nil {
		return nil, err
	}
	if err := validation.Struct(car); err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, car, in.ImageFile); err != nil {
		return nil, err
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	invalidate(ctx, s.snapshot)
	return car, nil
}

// DeleteCar keeps bookings untouched; they still carry the brand/model snapshot.
func (s *carService) DeleteCar(ctx context.Context, id string) (*entity.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.carRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	logrus.WithField("car_id", id).Info("Car deleted")
	invalidate(ctx, s.snapshot)
	return car, nil
}

func (s *carService) attachImage(ctx context.Context, car *entity.Car, fh *multipart.FileHeader) error {
	if fh == nil || s.uploader == nil {
		return nil
	}
	url, err := s.uploader.Upload(ctx, carImageDir, fh)
	if err != nil {
		return err
	}
	car.Image = url
	return nil
}
