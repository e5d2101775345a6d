package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/database"
	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/pkg/auth"
	"github.com/ds124wfegd/car-rental/internal/validation"
)

type SignupInput struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type CustomerProfile struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type CustomerSession struct {
	Token string          `json:"token"`
	User  CustomerProfile `json:"user"`
}

type customerService struct {
	repo   database.CustomerRepository
	tokens TokenIssuer
	ttl    time.Duration
}

func NewCustomerService(repo database.CustomerRepository, tokens TokenIssuer, ttl time.Duration) CustomerService {
	return &customerService{
		repo:   repo,
		tokens: tokens,
		ttl:    ttl,
	}
}

func (s *customerService) Signup(ctx context.Context, in *SignupInput) (*CustomerSession, error) {
	in.Email = normalizeEmail(in.Email)
	in.FullName = trimmed(&in.FullName)
	in.Phone = trimmed(&in.Phone)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	_, err := s.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, entity.ErrEmailTaken
	case !errors.Is(err, entity.ErrCustomerNotFound):
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &entity.Customer{
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return s.session(customer)
}

// Login only lets active accounts in.
func (s *customerService) Login(ctx context.Context, email, password string) (*CustomerSession, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, validation.Errors{}.Add("email", "email and password are required")
	}

	customer, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, entity.ErrCustomerNotFound) {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !customer.IsActive || !auth.CheckPassword(customer.PasswordHash, password) {
		return nil, entity.ErrInvalidCredentials
	}
	return s.session(customer)
}

func (s *customerService) session(c *entity.Customer) (*CustomerSession, error) {
	token, err := s.tokens.Issue(entity.Claims{ID: c.ID, Email: c.Email, Role: entity.RoleCustomer}, s.ttl)
	if err != nil {
		return nil, err
	}
	return &CustomerSession{
		Token: token,
		User: CustomerProfile{
			ID:       c.ID,
			FullName: c.FullName,
			Email:    c.Email,
			Phone:    c.Phone,
		},
	}, nil
}
