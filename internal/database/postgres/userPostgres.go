package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	adminColumns    = `id, email, name, password_hash, role, created_at, updated_at`
	customerColumns = `id, full_name, email, phone, password_hash, role, is_active, created_at, updated_at`
)

type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	now := time.Now().UTC()
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now

	query := `
		INSERT INTO admin_users (` + adminColumns + `)
		VALUES (:id, :email, :name, :password_hash, :role, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, admin); err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	var admin entity.AdminUser
	err := r.db.GetContext(ctx, &admin, `SELECT `+adminColumns+` FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, entity.ErrAdminNotFound)
	}
	return &admin, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var admin entity.AdminUser
	err := r.db.GetContext(ctx, &admin, `SELECT `+adminColumns+` FROM admin_users WHERE email = $1`, email)
	if err != nil {
		return nil, notFound(err, entity.ErrAdminNotFound)
	}
	return &admin, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	admins := make([]entity.AdminUser, 0)
	if err := r.db.SelectContext(ctx, &admins, `SELECT `+adminColumns+` FROM admin_users ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM admin_users`); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	return checkAffected(res, entity.ErrAdminNotFound)
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	return checkAffected(res, entity.ErrAdminNotFound)
}

type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	now := time.Now().UTC()
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES (:id, :full_name, :email, :phone, :password_hash, :role, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, customer); err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.GetContext(ctx, &c, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, entity.ErrCustomerNotFound)
	}
	return &c, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.GetContext(ctx, &c, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	if err != nil {
		return nil, notFound(err, entity.ErrCustomerNotFound)
	}
	return &c, nil
}
