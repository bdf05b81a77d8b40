package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/catalog/domain"
	"github.com/piadesu/attn-store/internal/catalog/repository"
	"github.com/piadesu/attn-store/internal/config"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
	notificationrepo "github.com/piadesu/attn-store/internal/notification/repository"
	notificationsvc "github.com/piadesu/attn-store/internal/notification/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Category{},
		&domain.Product{},
		&notificationdomain.Notification{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	notifier := notificationsvc.New(notificationsvc.Params{
		Config: config.Config{LowStockThreshold: 2},
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   notificationrepo.Provide(),
	})

	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Categories: repository.ProvideCategory(),
		Products:   repository.ProvideProduct(),
		Notifier:   notifier,
	})
	return svc, db
}

func TestCreateCategorySlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Cold Brews"})
	require.NoError(t, err)
	require.Equal(t, "Cold Brews", resp.Name)
	require.Equal(t, "cold-brews", resp.Slug)

	_, err = svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Cold Brews"})
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreateProductNormalizesName(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		Name:         "  Iced Latte  ",
		SellingPrice: 120,
	})
	require.NoError(t, err)
	require.Equal(t, "iced latte", resp.Name)
	require.Equal(t, 0, resp.Stock)
	require.False(t, resp.StockStatus)
	require.True(t, resp.IsActive)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	bogus := "999999999999999999"
	_, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		Name:       "espresso",
		CategoryID: &bogus,
	})
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	negStock := -1
	_, err := svc.CreateProduct(ctx, domain.CreateProductRequest{Name: "espresso", Stock: &negStock})
	require.ErrorIs(t, err, domain.ErrInvalidStock)

	_, err = svc.CreateProduct(ctx, domain.CreateProductRequest{Name: "espresso", SellingPrice: -5})
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestGetProductBadID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetProduct(ctx, "not-a-number")
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.GetProduct(ctx, "424242424242")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProductStockStatusAndCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Drinks"})
	require.NoError(t, err)

	ten := 10
	created, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
		Name:  "americano",
		Stock: &ten,
	})
	require.NoError(t, err)
	require.True(t, created.StockStatus)

	zero := 0
	updated, err := svc.UpdateProduct(ctx, domain.UpdateProductRequest{
		ID:         created.ID,
		Stock:      &zero,
		CategoryID: &cat.ID,
	})
	require.NoError(t, err)
	require.False(t, updated.StockStatus)
	require.NotNil(t, updated.CategoryID)
	require.Equal(t, cat.ID, *updated.CategoryID)
}

func TestUpdateProductLowStockNotifies(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	ten := 10
	created, err := svc.CreateProduct(ctx, domain.CreateProductRequest{
		Name:  "flat white",
		Stock: &ten,
	})
	require.NoError(t, err)

	one := 1
	_, err = svc.UpdateProduct(ctx, domain.UpdateProductRequest{ID: created.ID, Stock: &one})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&notificationdomain.Notification{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	// A second drop while the first notification is unread stays quiet.
	zero := 0
	_, err = svc.UpdateProduct(ctx, domain.UpdateProductRequest{ID: created.ID, Stock: &zero})
	require.NoError(t, err)
	require.NoError(t, db.Model(&notificationdomain.Notification{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}
