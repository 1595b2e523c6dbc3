package users

import (
	"context"
	"testing"
	"time"

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

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &User{Username: "alice", Email: "alice@example.com", Password: "stored"}
		require.NoError(mt, repo.Create(ctx, u))
		require.False(mt, u.ID.IsZero())
		require.False(mt, u.CreatedAt.IsZero())
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := repo.Create(ctx, &User{Username: "alice"})
		require.ErrorIs(mt, err, apperrors.ErrDuplicate)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "alice"},
			{Key: "isAdmin", Value: true},
		}))

		u, err := repo.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		require.Equal(mt, "alice", u.Username)
		require.True(mt, u.IsAdmin)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByUsername(ctx, "ghost")
		require.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)

		_, err := repo.FindByID(ctx, "nope")
		require.ErrorIs(mt, err, apperrors.ErrInvalidID)
		require.ErrorIs(mt, repo.Delete(ctx, "nope"), apperrors.ErrInvalidID)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		require.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()), apperrors.ErrNotFound)
	})

	mt.Run("update returns new document", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "alice2"},
		}}))

		u, err := repo.Update(ctx, id.Hex(), map[string]interface{}{"username": "alice2"})
		require.NoError(mt, err)
		require.Equal(mt, "alice2", u.Username)
	})

	mt.Run("list pages", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(12)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "username", Value: "u1"}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "username", Value: "u2"}},
			),
		)

		users, total, err := repo.List(ctx, pagination.Request{Page: 2, Limit: 10})
		require.NoError(mt, err)
		require.Equal(mt, int64(12), total)
		require.Len(mt, users, 2)
	})

	mt.Run("monthly registrations", func(mt *mtest.T) {
		repo := NewRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionName
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int32(5)}, {Key: "total", Value: int32(3)}},
			bson.D{{Key: "_id", Value: int32(6)}, {Key: "total", Value: int32(1)}},
		))

		buckets, err := repo.MonthlyRegistrations(ctx, time.Now().AddDate(-1, 0, 0))
		require.NoError(mt, err)
		require.Equal(mt, []StatsBucket{{Month: 5, Total: 3}, {Month: 6, Total: 1}}, buckets)
	})
}
