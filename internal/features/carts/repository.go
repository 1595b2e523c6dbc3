package carts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/storefront/internal/pkg/pagination"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

const CollectionName = "carts"

type Store interface {
	Create(ctx context.Context, cart *Cart) error
	FindByID(ctx context.Context, id string) (*Cart, error)
	FindByUser(ctx context.Context, userID string) (*Cart, error)
	UpdateProducts(ctx context.Context, id string, products []LineItem) (*Cart, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req pagination.Request) ([]Cart, int64, error)
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(CollectionName)}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("carts indexes: %w", err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, cart *Cart) error {
	now := time.Now().UTC()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.Products == nil {
		cart.Products = []LineItem{}
	}

	result, err := r.collection.InsertOne(ctx, cart)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		cart.ID = oid
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Cart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	return r.findOne(ctx, bson.M{"_id": oid}, nil)
}

// FindByUser returns the user's most recently updated cart.
func (r *Repository) FindByUser(ctx context.Context, userID string) (*Cart, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return r.findOne(ctx, bson.M{"userId": userID}, opts)
}

func (r *Repository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*Cart, error) {
	var cart Cart
	if err := r.collection.FindOne(ctx, filter, opts).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *Repository) UpdateProducts(ctx context.Context, id string, products []LineItem) (*Cart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	var cart Cart
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"products": products, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, req pagination.Request) ([]Cart, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetSkip(req.Skip()).
		SetLimit(int64(req.Limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	carts := []Cart{}
	if err := cursor.All(ctx, &carts); err != nil {
		return nil, 0, err
	}
	return carts, total, nil
}
