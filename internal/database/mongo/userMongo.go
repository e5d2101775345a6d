package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(adminsCollection)}
}

func (r *AdminRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	now := time.Now().UTC()
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	return findOne[entity.AdminUser](ctx, r.coll, byID(id), entity.ErrAdminNotFound)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	return findOne[entity.AdminUser](ctx, r.coll, bson.M{"email": email}, entity.ErrAdminNotFound)
}

func (r *AdminRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	return findAll[entity.AdminUser](ctx, r.coll, bson.M{}, newestFirst())
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return int(n), nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{
		"$set": bson.M{"passwordHash": passwordHash, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, entity.ErrAdminNotFound)
}

type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(customersCollection)}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	now := time.Now().UTC()
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return findOne[entity.Customer](ctx, r.coll, byID(id), entity.ErrCustomerNotFound)
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return findOne[entity.Customer](ctx, r.coll, bson.M{"email": email}, entity.ErrCustomerNotFound)
}
