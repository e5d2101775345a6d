package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/validation"
)

const testimonialImageDir = "testimonials"

type TestimonialInput struct {
	Name     *string    `json:"name" form:"name"`
	Role     *string    `json:"role" form:"role"`
	Trip     *string    `json:"trip" form:"trip"`
	Text     *string    `json:"text" form:"text"`
	Rating   *FormValue `json:"rating" form:"rating"`
	Image    *string    `json:"image" form:"image"`
	IsActive *FormValue `json:"isActive" form:"isActive"`

	ImageFile *multipart.FileHeader `json:"-" form:"-"`
}

func (in *TestimonialInput) apply(t *entity.Testimonial) {
	setString(&t.Name, in.Name)
	setString(&t.Role, in.Role)
	setString(&t.Trip, in.Trip)
	setString(&t.Text, in.Text)
	setString(&t.Image, in.Image)
	if in.Rating != nil {
		t.Rating = parseRating(*in.Rating)
	}
	t.IsActive = boolOr(in.IsActive, t.IsActive)
}

// parseRating falls back to the default for anything outside 1..5.
func parseRating(v FormValue) int {
	rating, err := v.Int()
	if err != nil || rating < entity.MinRating || rating > entity.MaxRating {
		return entity.DefaultRating
	}
	return rating
}

type testimonialService struct {
	repo     database.TestimonialRepository
	uploader ImageUploader
}

func NewTestimonialService(repo database.TestimonialRepository, uploader ImageUploader) TestimonialService {
	return &testimonialService{
		repo:     repo,
		uploader: uploader,
	}
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, in *TestimonialInput) (*entity.Testimonial, error) {
	t := &entity.Testimonial{
		Rating:   entity.DefaultRating,
		IsActive: true,
	}
	in.apply(t)
	if err := validation.Struct(t); err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, t, in.ImageFile); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return t, nil
}

func (s *testimonialService) ListTestimonials(ctx context.Context, onlyActive bool) ([]entity.Testimonial, error) {
	items, err := s.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return items, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id string, in *TestimonialInput) (*entity.Testimonial, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(t)
	if err := validation.Struct(t); err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, t, in.ImageFile); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *testimonialService) attachImage(ctx context.Context, t *entity.Testimonial, fh *multipart.FileHeader) error {
	if fh == nil || s.uploader == nil {
		return nil
	}
	url, err := s.uploader.Upload(ctx, testimonialImageDir, fh)
	if err != nil {
		return err
	}
	t.Image = url
	return nil
}
