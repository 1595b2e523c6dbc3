package search

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/storefront/internal/features/products"
	"github.com/xyz-asif/storefront/internal/features/users"
	"github.com/xyz-asif/storefront/internal/pkg/pagination"
)

// Repository reads the products and users collections. Product search relies on the text
// index products.Repository creates.
type Repository struct {
	productsCollection *mongo.Collection
	usersCollection    *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		productsCollection: db.Collection(products.CollectionName),
		usersCollection:    db.Collection(users.CollectionName),
	}
}

// SearchProducts runs a text search over title and desc.
func (r *Repository) SearchProducts(ctx context.Context, q ProductQuery) ([]ProductResult, int64, error) {
	filter := bson.M{"$text": bson.M{"$search": q.Q}}
	if q.Category != "" {
		filter["categories"] = exact(q.Category)
	}
	if q.InStock != nil {
		filter["inStock"] = *q.InStock
	}

	page := pagination.Request{Page: q.Page, Limit: q.Limit}
	opts := options.Find().
		SetSkip(page.Skip()).
		SetLimit(int64(q.Limit))

	switch q.Sort {
	case SortRecent:
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	case SortPriceAsc:
		opts.SetSort(bson.D{{Key: "price", Value: 1}, {Key: "createdAt", Value: -1}})
	case SortPriceDesc:
		opts.SetSort(bson.D{{Key: "price", Value: -1}, {Key: "createdAt", Value: -1}})
	default:
		opts.SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}})
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	}

	cursor, err := r.productsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	results := []ProductResult{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}

	total, err := r.productsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// SearchUsers matches a username or email prefix, case-insensitively.
func (r *Repository) SearchUsers(ctx context.Context, q UserQuery) ([]users.User, int64, error) {
	prefix := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(q.Q), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"username": bson.M{"$regex": prefix}},
		bson.M{"email": bson.M{"$regex": prefix}},
	}}

	page := pagination.Request{Page: q.Page, Limit: q.Limit}
	opts := options.Find().
		SetSort(bson.D{{Key: "username", Value: 1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(q.Limit))

	cursor, err := r.usersCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	found := []users.User{}
	if err = cursor.All(ctx, &found); err != nil {
		return nil, 0, err
	}

	total, err := r.usersCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return found, total, nil
}

func exact(value string) bson.M {
	return bson.M{"$regex": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}}
}
