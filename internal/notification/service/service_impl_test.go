package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/piadesu/attn-store/internal/notification/domain"
	"github.com/piadesu/attn-store/internal/notification/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Notification{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		Config: config.Config{LowStockThreshold: 5},
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   repository.Provide(),
	})
	return svc, db
}

func TestRecordLowStockRespectsThreshold(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	err := svc.RecordLowStock(ctx, db, domain.LowStockProduct{ID: 1, Name: "espresso", Stock: 6})
	require.NoError(t, err)

	items, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Empty(t, items)

	err = svc.RecordLowStock(ctx, db, domain.LowStockProduct{ID: 1, Name: "espresso", Stock: 5})
	require.NoError(t, err)

	items, err = svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, domain.KindLowStock, items[0].Kind)
	require.Contains(t, items[0].Message, "espresso")
	require.NotEmpty(t, items[0].Payload)
}

func TestRecordLowStockDeduplicatesUnread(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	product := domain.LowStockProduct{ID: 7, Name: "americano", Stock: 2}
	require.NoError(t, svc.RecordLowStock(ctx, db, product))
	require.NoError(t, svc.RecordLowStock(ctx, db, product))

	items, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Acknowledging the alert re-arms it for the next stock drop.
	_, err = svc.MarkRead(ctx, items[0].ID)
	require.NoError(t, err)
	require.NoError(t, svc.RecordLowStock(ctx, db, product))

	items, err = svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestListUnreadOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordLowStock(ctx, db, domain.LowStockProduct{ID: 1, Name: "mocha", Stock: 1}))
	require.NoError(t, svc.RecordLowStock(ctx, db, domain.LowStockProduct{ID: 2, Name: "latte", Stock: 0}))

	items, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	read, err := svc.MarkRead(ctx, items[0].ID)
	require.NoError(t, err)
	require.True(t, read.IsRead)

	unread, err := svc.List(ctx, domain.ListRequest{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 1)
}

func TestMarkReadErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.MarkRead(ctx, "garbage")
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.MarkRead(ctx, "123456789")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
