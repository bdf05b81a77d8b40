package service

import (
	"context"

	"github.com/piadesu/attn-store/internal/analytics/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultWindowDays = 30
	maxWindowDays     = 365
	topProductCount   = 5
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("analytics.service"),
		repo: p.Repo,
	}
}

func (s *Service) Overview(ctx context.Context, req domain.OverviewRequest) (*domain.OverviewResponse, error) {
	days := req.Days
	if days <= 0 {
		days = defaultWindowDays
	}
	if days > maxWindowDays {
		days = maxWindowDays
	}

	dailySales, err := s.repo.DailySales(ctx, s.db, days)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.repo.TopProducts(ctx, s.db, topProductCount)
	if err != nil {
		return nil, err
	}

	resp := &domain.OverviewResponse{
		DailySales:  dailySales,
		TopProducts: topProducts,
	}
	if resp.DailySales == nil {
		resp.DailySales = []domain.DailySalesRow{}
	}
	if resp.TopProducts == nil {
		resp.TopProducts = []domain.TopProductRow{}
	}
	return resp, nil
}
