package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploader struct {
	calls int
	dirs  []string
}

func (u *stubUploader) Upload(_ context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	u.calls++
	u.dirs = append(u.dirs, dir)
	return "http://localhost:5000/uploads/" + dir + "/" + fh.Filename, nil
}

func validCarInput() *CarInput {
	return &CarInput{
		Brand:           ptr(" Toyota "),
		Model:           ptr("RAV4"),
		Year:            ptr(FormValue("2022")),
		Category:        ptr("SUV"),
		Transmission:    ptr("Automatic"),
		FuelType:        ptr("Petrol"),
		SeatingCapacity: ptr(FormValue("5")),
		Location:        ptr("Kampala"),
		PricePerDay:     ptr(FormValue("85.5")),
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field)
	}
	return names
}

func TestCarService_CreateCar(t *testing.T) {
	repo := newMemCars()
	snapshot := &countingInvalidator{}
	svc := NewCarService(repo, nil, snapshot)

	car, err := svc.CreateCar(context.Background(), validCarInput())
	require.NoError(t, err)

	assert.NotEmpty(t, car.ID)
	assert.Equal(t, "Toyota", car.Brand)
	assert.Equal(t, 2022, car.Year)
	assert.Equal(t, 5, car.SeatingCapacity)
	assert.Equal(t, 85.5, car.PricePerDay)
	assert.True(t, car.IsAvailable, "new cars are available by default")
	assert.Equal(t, 1, snapshot.calls)
}

func TestCarService_CreateCarValidation(t *testing.T) {
	svc := NewCarService(newMemCars(), nil, nil)

	t.Run("missing required fields", func(t *testing.T) {
		_, err := svc.CreateCar(context.Background(), &CarInput{Brand: ptr("Toyota")})
		fields := fieldNames(t, err)
		assert.Contains(t, fields, "model")
		assert.Contains(t, fields, "year")
		assert.Contains(t, fields, "pricePerDay")
		assert.NotContains(t, fields, "brand")
	})

	t.Run("non numeric year", func(t *testing.T) {
		in := validCarInput()
		in.Year = ptr(FormValue("twenty"))
		_, err := svc.CreateCar(context.Background(), in)
		assert.Equal(t, []string{"year"}, fieldNames(t, err))
	})
}

func TestCarService_CreateCarUploadsImageAfterValidation(t *testing.T) {
	uploader := &stubUploader{}
	svc := NewCarService(newMemCars(), uploader, nil)

	bad := &CarInput{ImageFile: &multipart.FileHeader{Filename: "rav4.jpg"}}
	_, err := svc.CreateCar(context.Background(), bad)
	require.Error(t, err)
	assert.Zero(t, uploader.calls)

	in := validCarInput()
	in.Image = ptr("http://example.com/old.jpg")
	in.ImageFile = &multipart.FileHeader{Filename: "rav4.jpg"}
	car, err := svc.CreateCar(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/cars/rav4.jpg", car.Image)
	assert.Equal(t, []string{"cars"}, uploader.dirs)
}

func TestCarService_UpdateCarIsPartial(t *testing.T) {
	repo := newMemCars()
	svc := NewCarService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.CreateCar(ctx, validCarInput())
	require.NoError(t, err)

	updated, err := svc.UpdateCar(ctx, created.ID, &CarInput{
		PricePerDay: ptr(FormValue("99")),
		IsAvailable: ptr(FormValue("no")),
	})
	require.NoError(t, err)

	assert.Equal(t, 99.0, updated.PricePerDay)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "Toyota", updated.Brand)
	assert.Equal(t, "RAV4", updated.Model)

	_, err = svc.UpdateCar(ctx, created.ID, &CarInput{Brand: ptr("   ")})
	assert.Equal(t, []string{"brand"}, fieldNames(t, err))

	_, err = svc.UpdateCar(ctx, "missing", &CarInput{})
	assert.ErrorIs(t, err, entity.ErrCarNotFound)
}

func TestCarService_DeleteCar(t *testing.T) {
	repo := newMemCars(entity.Car{ID: "c1", Brand: "Toyota"})
	snapshot := &countingInvalidator{}
	svc := NewCarService(repo, nil, snapshot)
	ctx := context.Background()

	deleted, err := svc.DeleteCar(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", deleted.Brand)
	assert.Equal(t, 1, snapshot.calls)

	_, err = svc.GetCar(ctx, "c1")
	assert.ErrorIs(t, err, entity.ErrCarNotFound)

	_, err = svc.DeleteCar(ctx, "c1")
	assert.ErrorIs(t, err, entity.ErrCarNotFound)
}

func TestCarService_ListCarsOnlyAvailable(t *testing.T) {
	repo := newMemCars(
		entity.Car{ID: "c1", IsAvailable: true},
		entity.Car{ID: "c2", IsAvailable: false},
	)
	svc := NewCarService(repo, nil, nil)

	all, err := svc.ListCars(context.Background(), entity.CarFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := svc.ListCars(context.Background(), entity.CarFilter{OnlyAvailable: true})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "c1", available[0].ID)
}
