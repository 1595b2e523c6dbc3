package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/xyz-asif/storefront/internal/pkg/pagination"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := &Product{Title: "Mug", Desc: "Ceramic", Price: 8}
		require.NoError(mt, repo.Create(ctx, p))
		require.False(mt, p.ID.IsZero())
		require.False(mt, p.CreatedAt.IsZero())
	})

	mt.Run("create duplicate title", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Create(ctx, &Product{Title: "Mug"})
		require.ErrorIs(mt, err, apperrors.ErrDuplicate)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Mug"},
			{Key: "price", Value: 8.0},
			{Key: "categories", Value: bson.A{"kitchen"}},
		}))

		p, err := repo.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		require.Equal(mt, "Mug", p.Title)
		require.Equal(mt, []string{"kitchen"}, p.Categories)
	})

	mt.Run("find invalid id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		_, err := repo.FindByID(ctx, "not-hex")
		require.ErrorIs(mt, err, apperrors.ErrInvalidID)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), map[string]interface{}{"price": 4.0})
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("list by category", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Mug"}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Bowl"}},
			),
		)

		products, total, err := repo.List(ctx, "kitchen", pagination.FromRequest("1", "10"))
		require.NoError(mt, err)
		require.Equal(mt, int64(2), total)
		require.Len(mt, products, 2)
	})

	mt.Run("newest", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		products, err := repo.Newest(ctx, NewestLimit)
		require.NoError(mt, err)
		require.NotNil(mt, products)
		require.Empty(mt, products)
	})
}
