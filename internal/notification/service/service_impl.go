package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/piadesu/attn-store/internal/notification/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	genID     *snowflake.Node
	threshold int
}

func New(p Params) *Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("notification.service"),
		repo:      p.Repo,
		genID:     p.GenID,
		threshold: p.Config.LowStockThreshold,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	items, err := s.repo.List(ctx, s.db, req.UnreadOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, s.toResponse(&item))
	}
	return resp, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) (*domain.Response, error) {
	notificationID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, notificationID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if !item.IsRead {
		if err := s.repo.MarkRead(ctx, s.db, item.ID); err != nil {
			return nil, err
		}
		item.IsRead = true
	}

	resp := s.toResponse(item)
	return &resp, nil
}

// RecordLowStock inserts a low-stock notification inside the caller's
// transaction when the product has fallen to or below the threshold.
// An existing unread notification for the product suppresses a new one.
func (s *Service) RecordLowStock(ctx context.Context, tx *gorm.DB, product domain.LowStockProduct) error {
	if product.Stock > s.threshold {
		return nil
	}

	exists, err := s.repo.HasUnreadForProduct(ctx, tx, domain.KindLowStock, product.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"product_id": snowflake.ID(product.ID).String(),
		"name":       product.Name,
		"stock":      product.Stock,
	})
	if err != nil {
		return err
	}

	productID := product.ID
	n := &domain.Notification{
		ID:        s.genID.Generate().Int64(),
		Message:   fmt.Sprintf("%s is running low on stock (%d left)", product.Name, product.Stock),
		Kind:      domain.KindLowStock,
		ProductID: &productID,
		Payload:   datatypes.JSON(payload),
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, tx, n); err != nil {
		return err
	}

	s.log.Info("low stock notification recorded",
		zap.Int64("product_id", product.ID),
		zap.Int("stock", product.Stock),
	)
	return nil
}

func (s *Service) toResponse(n *domain.Notification) domain.Response {
	resp := domain.Response{
		ID:        snowflake.ID(n.ID).String(),
		Message:   n.Message,
		Kind:      n.Kind,
		Payload:   n.Payload,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.ProductID != nil {
		id := snowflake.ID(*n.ProductID).String()
		resp.ProductID = &id
	}
	return resp
}

var (
	_ domain.Service  = (*Service)(nil)
	_ domain.Recorder = (*Service)(nil)
)
