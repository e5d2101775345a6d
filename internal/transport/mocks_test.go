package transport

import (
	"context"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockCarService struct{ mock.Mock }

func (m *mockCarService) CreateCar(ctx context.Context, in *service.CarInput) (*entity.Car, error) {
	args := m.Called(ctx, in)
	car, _ := args.Get(0).(*entity.Car)
	return car, args.Error(1)
}

func (m *mockCarService) GetCar(ctx context.Context, id string) (*entity.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*entity.Car)
	return car, args.Error(1)
}

func (m *mockCarService) ListCars(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error) {
	args := m.Called(ctx, filter)
	cars, _ := args.Get(0).([]entity.Car)
	return cars, args.Error(1)
}

func (m *mockCarService) UpdateCar(ctx context.Context, id string, in *service.CarInput) (*entity.Car, error) {
	args := m.Called(ctx, id, in)
	car, _ := args.Get(0).(*entity.Car)
	return car, args.Error(1)
}

func (m *mockCarService) DeleteCar(ctx context.Context, id string) (*entity.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*entity.Car)
	return car, args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) CreateBooking(ctx context.Context, in *service.BookingInput) (*entity.BookingWithCar, error) {
	args := m.Called(ctx, in)
	b, _ := args.Get(0).(*entity.BookingWithCar)
	return b, args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, id string) (*entity.BookingWithCar, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.BookingWithCar)
	return b, args.Error(1)
}

func (m *mockBookingService) ListBookings(ctx context.Context, status string) ([]entity.BookingWithCar, error) {
	args := m.Called(ctx, status)
	b, _ := args.Get(0).([]entity.BookingWithCar)
	return b, args.Error(1)
}

func (m *mockBookingService) ListCustomerBookings(ctx context.Context, email string) ([]entity.BookingWithCar, error) {
	args := m.Called(ctx, email)
	b, _ := args.Get(0).([]entity.BookingWithCar)
	return b, args.Error(1)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, id string, in *service.BookingInput) (*entity.BookingWithCar, error) {
	args := m.Called(ctx, id, in)
	b, _ := args.Get(0).(*entity.BookingWithCar)
	return b, args.Error(1)
}

func (m *mockBookingService) UpdateBookingStatus(ctx context.Context, id, status string) (*entity.BookingWithCar, error) {
	args := m.Called(ctx, id, status)
	b, _ := args.Get(0).(*entity.BookingWithCar)
	return b, args.Error(1)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, id string) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

type mockBlogService struct{ mock.Mock }

func (m *mockBlogService) CreatePost(ctx context.Context, in *service.BlogInput) (*entity.BlogPost, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*entity.BlogPost)
	return p, args.Error(1)
}

func (m *mockBlogService) GetPost(ctx context.Context, id string) (*entity.BlogPost, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.BlogPost)
	return p, args.Error(1)
}

func (m *mockBlogService) ListPosts(ctx context.Context) ([]entity.BlogPost, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]entity.BlogPost)
	return p, args.Error(1)
}

func (m *mockBlogService) UpdatePost(ctx context.Context, id string, in *service.BlogInput) (*entity.BlogPost, error) {
	args := m.Called(ctx, id, in)
	p, _ := args.Get(0).(*entity.BlogPost)
	return p, args.Error(1)
}

func (m *mockBlogService) DeletePost(ctx context.Context, id string) (*entity.BlogPost, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.BlogPost)
	return p, args.Error(1)
}

type mockTestimonialService struct{ mock.Mock }

func (m *mockTestimonialService) CreateTestimonial(ctx context.Context, in *service.TestimonialInput) (*entity.Testimonial, error) {
	args := m.Called(ctx, in)
	t, _ := args.Get(0).(*entity.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialService) ListTestimonials(ctx context.Context, onlyActive bool) ([]entity.Testimonial, error) {
	args := m.Called(ctx, onlyActive)
	t, _ := args.Get(0).([]entity.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialService) UpdateTestimonial(ctx context.Context, id string, in *service.TestimonialInput) (*entity.Testimonial, error) {
	args := m.Called(ctx, id, in)
	t, _ := args.Get(0).(*entity.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockNewsletterService struct{ mock.Mock }

func (m *mockNewsletterService) Subscribe(ctx context.Context, email string) (service.SubscribeResult, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(service.SubscribeResult), args.Error(1)
}

func (m *mockNewsletterService) ListSubscribers(ctx context.Context) ([]entity.Subscriber, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]entity.Subscriber)
	return s, args.Error(1)
}

func (m *mockNewsletterService) ToggleSubscriber(ctx context.Context, id string) (*entity.Subscriber, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Subscriber)
	return s, args.Error(1)
}

func (m *mockNewsletterService) DeleteSubscriber(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdminService struct{ mock.Mock }

func (m *mockAdminService) Login(ctx context.Context, email, password string) (*service.AdminSession, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*service.AdminSession)
	return s, args.Error(1)
}

func (m *mockAdminService) SeedAdmin(ctx context.Context, in *service.AdminInput) (*service.AdminProfile, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*service.AdminProfile)
	return p, args.Error(1)
}

func (m *mockAdminService) InviteAdmin(ctx context.Context, in *service.AdminInput) (*service.AdminProfile, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*service.AdminProfile)
	return p, args.Error(1)
}

func (m *mockAdminService) ListAdmins(ctx context.Context) ([]service.AdminProfile, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]service.AdminProfile)
	return p, args.Error(1)
}

func (m *mockAdminService) ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	return m.Called(ctx, adminID, oldPassword, newPassword).Error(0)
}

func (m *mockAdminService) DeleteAdmin(ctx context.Context, actorID, id string) error {
	return m.Called(ctx, actorID, id).Error(0)
}

type mockCustomerService struct{ mock.Mock }

func (m *mockCustomerService) Signup(ctx context.Context, in *service.SignupInput) (*service.CustomerSession, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*service.CustomerSession)
	return s, args.Error(1)
}

func (m *mockCustomerService) Login(ctx context.Context, email, password string) (*service.CustomerSession, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*service.CustomerSession)
	return s, args.Error(1)
}

type mockOverviewService struct{ mock.Mock }

func (m *mockOverviewService) GetOverview(ctx context.Context) (*entity.Overview, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).(*entity.Overview)
	return o, args.Error(1)
}

func (m *mockOverviewService) Refresh(ctx context.Context) (*entity.Overview, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).(*entity.Overview)
	return o, args.Error(1)
}

func (m *mockOverviewService) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
