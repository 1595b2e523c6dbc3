package products

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

const CollectionName = "products"

type Store interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, set map[string]interface{}) (*Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, category string, req pagination.Request) ([]Product, int64, error)
	Newest(ctx context.Context, n int64) ([]Product, error)
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(CollectionName)}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{
			Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "desc", Value: "text"}},
			Options: options.Index().SetName("products_text").SetWeights(bson.D{{Key: "title", Value: 5}, {Key: "desc", Value: 1}}),
		},
	})
	if err != nil {
		return fmt.Errorf("products indexes: %w", err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, product *Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrDuplicate, err)
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	var product Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *Repository) Update(ctx context.Context, id string, set map[string]interface{}) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	set["updatedAt"] = time.Now().UTC()

	var product Product
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apperrors.ErrNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, fmt.Errorf("%w: %v", apperrors.ErrDuplicate, err)
		}
		return nil, err
	}
	return &product, nil
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

// List returns a page of products, optionally restricted to one category.
func (r *Repository) List(ctx context.Context, category string, req pagination.Request) ([]Product, int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["categories"] = bson.M{"$in": bson.A{category}}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(req.Skip()).
		SetLimit(int64(req.Limit))
	products, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *Repository) Newest(ctx context.Context, n int64) ([]Product, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(n))
}

func (r *Repository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Product, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
