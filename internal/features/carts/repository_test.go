package carts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create defaults products", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		cart := &Cart{UserID: "U1"}
		require.NoError(mt, repo.Create(ctx, cart))
		require.NotNil(mt, cart.Products)
		require.False(mt, cart.ID.IsZero())
	})

	mt.Run("find by user", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: "U1"},
			{Key: "products", Value: bson.A{bson.D{{Key: "productId", Value: "p1"}, {Key: "quantity", Value: int32(2)}}}},
		}))

		cart, err := repo.FindByUser(ctx, "U1")
		require.NoError(mt, err)
		require.Equal(mt, "U1", cart.UserID)
		require.Equal(mt, []LineItem{{ProductID: "p1", Quantity: 2}}, cart.Products)
	})

	mt.Run("update missing cart", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateProducts(ctx, primitive.NewObjectID().Hex(), []LineItem{})
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()))
	})
}
