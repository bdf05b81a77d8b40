package service

import (
	"context"
	"testing"
	"time"

	"github.com/piadesu/attn-store/internal/analytics/domain"
	"github.com/piadesu/attn-store/internal/analytics/repository"
	orderdomain "github.com/piadesu/attn-store/internal/order/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&orderdomain.Order{}, &orderdomain.OrderedItem{}))

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db
}

func seedOrder(t *testing.T, db *gorm.DB, id int64, total float64, daysAgo int) {
	t.Helper()
	orderDate := time.Now().UTC().AddDate(0, 0, -daysAgo)
	require.NoError(t, db.Create(&orderdomain.Order{
		ID:        id,
		Status:    orderdomain.StatusPaid,
		TotalAmt:  total,
		OrderDate: orderDate,
		CreatedAt: orderDate,
	}).Error)
}

func seedItem(t *testing.T, db *gorm.DB, id, orderID int64, name string, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&orderdomain.OrderedItem{
		ID:          id,
		OrderID:     orderID,
		ProductName: name,
		Qty:         qty,
		CreatedAt:   time.Now().UTC(),
	}).Error)
}

func TestOverviewDailySalesWindow(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedOrder(t, db, 1, 100, 0)
	seedOrder(t, db, 2, 50, 0)
	seedOrder(t, db, 3, 200, 2)
	seedOrder(t, db, 4, 999, 60) // outside the default window

	resp, err := svc.Overview(ctx, domain.OverviewRequest{})
	require.NoError(t, err)
	require.Len(t, resp.DailySales, 2)

	// Ascending by day, so the older row comes first.
	require.Equal(t, 200.0, resp.DailySales[0].Total)
	require.Equal(t, 150.0, resp.DailySales[1].Total)
}

func TestOverviewTopProducts(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedOrder(t, db, 1, 100, 0)
	names := []string{"coffee", "soap", "noodles", "rice", "sugar", "salt"}
	for i, name := range names {
		seedItem(t, db, int64(i+1), 1, name, i+1)
	}
	seedItem(t, db, 100, 1, "coffee", 10)

	resp, err := svc.Overview(ctx, domain.OverviewRequest{Days: 7})
	require.NoError(t, err)
	require.Len(t, resp.TopProducts, 5)
	require.Equal(t, "coffee", resp.TopProducts[0].ProductName)
	require.Equal(t, 11, resp.TopProducts[0].Qty)
}

func TestOverviewEmptyDatabase(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Overview(context.Background(), domain.OverviewRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.DailySales)
	require.NotNil(t, resp.TopProducts)
	require.Empty(t, resp.DailySales)
	require.Empty(t, resp.TopProducts)
}
