package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/ds124wfegd/car-rental/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names match the ones the site has always used.
const (
	carsCollection         = "cars"
	bookingsCollection     = "bookings"
	blogsCollection        = "blogposts"
	testimonialsCollection = "testimonials"
	subscribersCollection  = "subscribers"
	adminsCollection       = "adminusers"
	customersCollection    = "users"
)

func NewRepositories(db *mongo.Database) *database.Repositories {
	return &database.Repositories{
		Cars:         NewCarRepository(db),
		Bookings:     NewBookingRepository(db),
		Blogs:        NewBlogRepository(db),
		Testimonials: NewTestimonialRepository(db),
		Subscribers:  NewSubscriberRepository(db),
		Admins:       NewAdminRepository(db),
		Customers:    NewCustomerRepository(db),
	}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// equalFold matches a string field case-insensitively and exactly.
func equalFold(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// byID matches our string ids and the ObjectIds of documents created before
// the move to string ids.
func byID(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

// withoutID drops _id so a replacement keeps the stored one, whatever its type.
func withoutID(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	delete(m, "_id")
	return m, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sentinel error) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, sentinel
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", coll.Name(), err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func replace(ctx context.Context, coll *mongo.Collection, id string, doc interface{}, sentinel error) error {
	replacement, err := withoutID(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", coll.Name(), err)
	}

	res, err := coll.ReplaceOne(ctx, byID(id), replacement)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return sentinel
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string, sentinel error) error {
	res, err := coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return sentinel
	}
	return nil
}
