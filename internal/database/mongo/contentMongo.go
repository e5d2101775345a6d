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

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

func (r *BlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	now := time.Now().UTC()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	return findOne[entity.BlogPost](ctx, r.coll, byID(id), entity.ErrBlogPostNotFound)
}

func (r *BlogRepository) List(ctx context.Context) ([]entity.BlogPost, error) {
	return findAll[entity.BlogPost](ctx, r.coll, bson.M{}, newestFirst())
}

func (r *BlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	post.UpdatedAt = time.Now().UTC()
	return replace(ctx, r.coll, post.ID, post, entity.ErrBlogPostNotFound)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, entity.ErrBlogPostNotFound)
}

type TestimonialRepository struct {
	coll *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{coll: db.Collection(testimonialsCollection)}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	return findOne[entity.Testimonial](ctx, r.coll, byID(id), entity.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) List(ctx context.Context, onlyActive bool) ([]entity.Testimonial, error) {
	query := bson.M{}
	if onlyActive {
		query["isActive"] = true
	}
	return findAll[entity.Testimonial](ctx, r.coll, query, newestFirst())
}

func (r *TestimonialRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	t.UpdatedAt = time.Now().UTC()
	return replace(ctx, r.coll, t.ID, t, entity.ErrTestimonialNotFound)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, entity.ErrTestimonialNotFound)
}

type SubscriberRepository struct {
	coll *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{coll: db.Collection(subscribersCollection)}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *entity.Subscriber) error {
	now := time.Now().UTC()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) GetByID(ctx context.Context, id string) (*entity.Subscriber, error) {
	return findOne[entity.Subscriber](ctx, r.coll, byID(id), entity.ErrSubscriberNotFound)
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	return findOne[entity.Subscriber](ctx, r.coll, bson.M{"email": email}, entity.ErrSubscriberNotFound)
}

func (r *SubscriberRepository) List(ctx context.Context) ([]entity.Subscriber, error) {
	return findAll[entity.Subscriber](ctx, r.coll, bson.M{}, newestFirst())
}

func (r *SubscriberRepository) Update(ctx context.Context, s *entity.Subscriber) error {
	s.UpdatedAt = time.Now().UTC()
	return replace(ctx, r.coll, s.ID, s, entity.ErrSubscriberNotFound)
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, entity.ErrSubscriberNotFound)
}
