package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/piadesu/attn-store/internal/catalog/domain"
	catalogrepo "github.com/piadesu/attn-store/internal/catalog/repository"
	"github.com/piadesu/attn-store/internal/config"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
	notificationrepo "github.com/piadesu/attn-store/internal/notification/repository"
	notificationservice "github.com/piadesu/attn-store/internal/notification/service"
	"github.com/piadesu/attn-store/internal/order/domain"
	"github.com/piadesu/attn-store/internal/order/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// SQLite support hack: remove FOR UPDATE clauses
	db.Callback().Query().Before("gorm:query").Register("sqlite_skip_locked", func(d *gorm.DB) {
		sql := d.Statement.SQL.String()
		if strings.Contains(sql, "FOR UPDATE") {
			newSQL := strings.ReplaceAll(sql, "FOR UPDATE", "")
			d.Statement.SQL.Reset()
			d.Statement.SQL.WriteString(newSQL)
		}
	})
	db.Callback().Row().Before("gorm:row").Register("sqlite_skip_locked_row", func(d *gorm.DB) {
		sql := d.Statement.SQL.String()
		if strings.Contains(sql, "FOR UPDATE") {
			newSQL := strings.ReplaceAll(sql, "FOR UPDATE", "")
			d.Statement.SQL.Reset()
			d.Statement.SQL.WriteString(newSQL)
		}
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&domain.Order{},
		&domain.OrderedItem{},
		&notificationdomain.Notification{},
	))
	return db
}

type fixture struct {
	db       *gorm.DB
	node     *snowflake.Node
	svc      domain.Service
	products catalogdomain.ProductRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	products := catalogrepo.ProvideProduct()
	notifier := notificationservice.New(notificationservice.Params{
		Config: config.Config{LowStockThreshold: 5},
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   notificationrepo.Provide(),
	})

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     repository.Provide(),
		Products: products,
		Notifier: notifier,
	})

	return &fixture{db: db, node: node, svc: svc, products: products}
}

func (f *fixture) seedProduct(t *testing.T, name string, stock int) *catalogdomain.Product {
	t.Helper()

	p := &catalogdomain.Product{
		ID:           f.node.Generate().Int64(),
		Name:         name,
		Stock:        stock,
		CostPrice:    10,
		SellingPrice: 15,
		StockStatus:  stock > 0,
		IsActive:     true,
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func idStr(id int64) string { return snowflake.ID(id).String() }

func strPtr(s string) *string { return &s }

func TestCreateOrderDeductsStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "coke", 20)

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		Status:   domain.StatusPending,
		CusName:  strPtr("Ana"),
		TotalAmt: 45,
		Items: []domain.CreateItem{
			{ProductID: idStr(p.ID), Qty: 3, CostPrice: 10, SellingPrice: 15, Subtotal: 45},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, "coke", resp.Items[0].ProductName)
	require.Equal(t, 45.0, resp.TotalAmt)

	var got catalogdomain.Product
	require.NoError(t, f.db.First(&got, "id = ?", p.ID).Error)
	require.Equal(t, 17, got.Stock)
	require.True(t, got.StockStatus)
}

func TestCreateOrderStockExhaustedClearsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "chips", 10)

	_, err := f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 150,
		Items: []domain.CreateItem{
			{ProductID: idStr(p.ID), Qty: 10, Subtotal: 150},
		},
	})
	require.NoError(t, err)

	var got catalogdomain.Product
	require.NoError(t, f.db.First(&got, "id = ?", p.ID).Error)
	require.Equal(t, 0, got.Stock)
	require.False(t, got.StockStatus)
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.seedProduct(t, "soap", 10)
	second := f.seedProduct(t, "shampoo", 2)

	_, err := f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 100,
		Items: []domain.CreateItem{
			{ProductID: idStr(first.ID), Qty: 5, Subtotal: 50},
			{ProductID: idStr(second.ID), Qty: 3, Subtotal: 50},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nothing from the failed request may remain.
	var got catalogdomain.Product
	require.NoError(t, f.db.First(&got, "id = ?", first.ID).Error)
	require.Equal(t, 10, got.Stock)

	var orders, items int64
	require.NoError(t, f.db.Model(&domain.Order{}).Count(&orders).Error)
	require.NoError(t, f.db.Model(&domain.OrderedItem{}).Count(&items).Error)
	require.Zero(t, orders)
	require.Zero(t, items)
}

func TestCreateOrderDuplicateLinesSeeDecrementedStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "rice", 5)

	_, err := f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 90,
		Items: []domain.CreateItem{
			{ProductID: idStr(p.ID), Qty: 3, Subtotal: 45},
			{ProductID: idStr(p.ID), Qty: 3, Subtotal: 45},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var got catalogdomain.Product
	require.NoError(t, f.db.First(&got, "id = ?", p.ID).Error)
	require.Equal(t, 5, got.Stock)

	// With enough stock the same request drains it to zero.
	_, err = f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 75,
		Items: []domain.CreateItem{
			{ProductID: idStr(p.ID), Qty: 3, Subtotal: 45},
			{ProductID: idStr(p.ID), Qty: 2, Subtotal: 30},
		},
	})
	require.NoError(t, err)
	require.NoError(t, f.db.First(&got, "id = ?", p.ID).Error)
	require.Equal(t, 0, got.Stock)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "sugar", 10)

	_, err := f.svc.Create(ctx, domain.CreateRequest{Status: "Shipped", Items: []domain.CreateItem{{ProductID: idStr(p.ID), Qty: 1}}})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = f.svc.Create(ctx, domain.CreateRequest{})
	require.ErrorIs(t, err, domain.ErrEmptyItems)

	_, err = f.svc.Create(ctx, domain.CreateRequest{Items: []domain.CreateItem{{ProductID: idStr(p.ID), Qty: 0}}})
	require.ErrorIs(t, err, domain.ErrInvalidQty)

	bad := "31-12-2024"
	_, err = f.svc.Create(ctx, domain.CreateRequest{DueDate: &bad, Items: []domain.CreateItem{{ProductID: idStr(p.ID), Qty: 1}}})
	require.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = f.svc.Create(ctx, domain.CreateRequest{Items: []domain.CreateItem{{ProductID: idStr(f.node.Generate().Int64()), Qty: 1}}})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateOrderRecordsLowStockOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "milk", 10)

	_, err := f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 90,
		Items:    []domain.CreateItem{{ProductID: idStr(p.ID), Qty: 6, Subtotal: 90}},
	})
	require.NoError(t, err)

	var notifications []notificationdomain.Notification
	require.NoError(t, f.db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.Equal(t, notificationdomain.KindLowStock, notifications[0].Kind)
	require.False(t, notifications[0].IsRead)

	// Another order for the same product must not duplicate the unread
	// notification.
	_, err = f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 15,
		Items:    []domain.CreateItem{{ProductID: idStr(p.ID), Qty: 1, Subtotal: 15}},
	})
	require.NoError(t, err)

	require.NoError(t, f.db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
}

func TestOrderedItemSnapshotSurvivesRename(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "bread", 10)

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 30,
		Items:    []domain.CreateItem{{ProductID: idStr(p.ID), Qty: 2, SellingPrice: 15, Subtotal: 30}},
	})
	require.NoError(t, err)

	require.NoError(t, f.db.Model(&catalogdomain.Product{}).Where("id = ?", p.ID).Update("name", "wheat bread").Error)

	got, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, "bread", got.Items[0].ProductName)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "eggs", 10)

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 20,
		Items:    []domain.CreateItem{{ProductID: idStr(p.ID), Qty: 1, Subtotal: 20}},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, resp.Status)

	updated, err := f.svc.UpdateStatus(ctx, resp.ID, domain.StatusPaid)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaid, updated.Status)

	_, err = f.svc.UpdateStatus(ctx, resp.ID, "Cancelled")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	// Stored value must be unchanged after the rejected transition.
	got, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaid, got.Status)

	_, err = f.svc.UpdateStatus(ctx, idStr(f.node.Generate().Int64()), domain.StatusPaid)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemSnapshotUsesRequestName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.seedProduct(t, "coffee", 10)

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		TotalAmt: 50,
		Items: []domain.CreateItem{
			{ProductID: idStr(p.ID), ProductName: strPtr("Coffee 3-in-1"), Qty: 2, Subtotal: 50},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Coffee 3-in-1", resp.Items[0].ProductName)
}
