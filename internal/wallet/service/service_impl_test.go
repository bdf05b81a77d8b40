package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/piadesu/attn-store/internal/wallet/domain"
	"github.com/piadesu/attn-store/internal/wallet/repository"
	"github.com/piadesu/attn-store/pkg/db/pagination"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.WalletEntry{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Fees:  config.NewStaticFeeScheduleHolder(config.DefaultFeeSchedule()),
		Repo:  repository.Provide(),
	})
	return svc, db
}

func TestCreateComputesFeeFromSchedule(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, domain.CreateRequest{
		App:          "GCash",
		Direction:    domain.DirectionCashIn,
		AccountName:  "Maria Cruz",
		MobileNumber: "09171234567",
		Amount:       750,
	})
	require.NoError(t, err)
	require.Equal(t, 20.0, resp.Fee)
	require.Equal(t, 770.0, resp.Total)
	require.NotEmpty(t, resp.Reference)
	require.Len(t, resp.Reference, 26) // ULID
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	base := domain.CreateRequest{
		App:          "GCash",
		Direction:    domain.DirectionCashOut,
		AccountName:  "Juan",
		MobileNumber: "09998887766",
		Amount:       100,
	}

	req := base
	req.App = " "
	_, err := svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidApp)

	req = base
	req.Direction = "transfer"
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidDirection)

	req = base
	req.AccountName = ""
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidName)

	for _, mobile := range []string{"0917123456", "091712345678", "19171234567", "9171234567", "0917-123-4567"} {
		req = base
		req.MobileNumber = mobile
		_, err = svc.Create(ctx, req)
		require.ErrorIs(t, err, domain.ErrInvalidMobile, "mobile %q", mobile)
	}

	req = base
	req.Amount = 0
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	bad := "01/02/2024"
	req = base
	req.EntryDate = &bad
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestListFiltersByDirection(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, direction := range []string{domain.DirectionCashIn, domain.DirectionCashOut, domain.DirectionCashIn} {
		_, err := svc.Create(ctx, domain.CreateRequest{
			App:          "Maya",
			Direction:    direction,
			AccountName:  "Ana",
			MobileNumber: "09170001122",
			Amount:       50,
		})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, all.Entries, 3)
	require.False(t, all.PageInfo.HasMore)

	in, err := svc.List(ctx, domain.ListRequest{Direction: domain.DirectionCashIn})
	require.NoError(t, err)
	require.Len(t, in.Entries, 2)

	_, err = svc.List(ctx, domain.ListRequest{Direction: "sideways"})
	require.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestListPaginates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, domain.CreateRequest{
			App:          "GCash",
			Direction:    domain.DirectionCashIn,
			AccountName:  "Ana",
			MobileNumber: "09170001122",
			Amount:       50,
		})
		require.NoError(t, err)
	}

	first, err := svc.List(ctx, domain.ListRequest{Page: pagination.Pagination{PageSize: 10}})
	require.NoError(t, err)
	require.Len(t, first.Entries, 10)
	require.True(t, first.PageInfo.HasMore)
	require.NotEmpty(t, first.PageInfo.NextPageToken)
}
