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
	"github.com/sirupsen/logrus"
)

// TokenIssuer is implemented by auth.TokenManager.
type TokenIssuer interface {
	Issue(claims entity.Claims, ttl time.Duration) (string, error)
}

type AdminInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AdminProfile is an admin without credentials.
type AdminProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminSession struct {
	Token string       `json:"token"`
	User  AdminProfile `json:"user"`
}

func newAdminProfile(a *entity.AdminUser) AdminProfile {
	return AdminProfile{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

type adminService struct {
	repo   database.AdminRepository
	tokens TokenIssuer
	ttl    time.Duration
}

func NewAdminService(repo database.AdminRepository, tokens TokenIssuer, ttl time.Duration) AdminService {
	return &adminService{
		repo:   repo,
		tokens: tokens,
		ttl:    ttl,
	}
}

// Login answers ErrInvalidCredentials for both an unknown email and a bad password.
func (s *adminService) Login(ctx context.Context, email, password string) (*AdminSession, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, validation.Errors{}.Add("email", "email and password are required")
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, entity.ErrAdminNotFound) {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, entity.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(entity.Claims{ID: admin.ID, Email: admin.Email, Role: admin.Role}, s.ttl)
	if err != nil {
		return nil, err
	}

	logrus.WithField("admin_id", admin.ID).Info("Admin logged in")
	return &AdminSession{Token: token, User: newAdminProfile(admin)}, nil
}

// SeedAdmin creates the very first admin and refuses once any exists.
func (s *adminService) SeedAdmin(ctx context.Context, in *AdminInput) (*AdminProfile, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil, entity.ErrAdminAlreadySeeded
	}
	return s.create(ctx, in)
}

func (s *adminService) InviteAdmin(ctx context.Context, in *AdminInput) (*AdminProfile, error) {
	return s.create(ctx, in)
}

func (s *adminService) create(ctx context.Context, in *AdminInput) (*AdminProfile, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = trimmed(&in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entity.AdminUser{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"admin_id": admin.ID, "email": admin.Email}).Info("Admin created")
	profile := newAdminProfile(admin)
	return &profile, nil
}

func (s *adminService) ListAdmins(ctx context.Context) ([]AdminProfile, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	out := make([]AdminProfile, 0, len(admins))
	for i := range admins {
		out = append(out, newAdminProfile(&admins[i]))
	}
	return out, nil
}

func (s *adminService) ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return validation.Errors{}.Add("password", "old and new password required")
	}
	if err := validation.Var("newPassword", newPassword, "min=6"); err != nil {
		return err
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(admin.PasswordHash, oldPassword) {
		return entity.ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, adminID, hash)
}

func (s *adminService) DeleteAdmin(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return entity.ErrSelfDelete
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"admin_id": id, "by": actorID}).Info("Admin deleted")
	return nil
}
