package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/piadesu/attn-store/internal/catalog/domain"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
	"github.com/piadesu/attn-store/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Products catalogdomain.ProductRepository
	Notifier notificationdomain.Recorder
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	products catalogdomain.ProductRepository
	notifier notificationdomain.Recorder
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("order.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		products: p.Products,
		notifier: p.Notifier,
	}
}

// Create places an order and reconciles stock in a single transaction.
// Every line locks its product row, so concurrent placements for the
// same product serialize on the database and duplicate lines within
// one request are checked against the already-decremented stock.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}
	for _, item := range req.Items {
		if item.Qty <= 0 {
			return nil, domain.ErrInvalidQty
		}
	}

	var dueDate *time.Time
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*req.DueDate))
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		dueDate = &parsed
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         s.genID.Generate().Int64(),
		Status:     status,
		CusName:    normalizeOptional(req.CusName),
		ContactNum: normalizeOptional(req.ContactNum),
		TotalAmt:   req.TotalAmt,
		OrderDate:  now,
		DueDate:    dueDate,
		CreatedAt:  now,
	}

	var items []domain.OrderedItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, order); err != nil {
			return err
		}

		// Final stock per touched product, in first-touch order, for
		// the low-stock pass after all deductions.
		touched := make(map[int64]notificationdomain.LowStockProduct)
		var touchedOrder []int64

		for _, line := range req.Items {
			productID, err := snowflake.ParseString(strings.TrimSpace(line.ProductID))
			if err != nil {
				return domain.ErrProductNotFound
			}

			product, err := s.products.LockByID(ctx, tx, productID.Int64())
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			if line.Qty > product.Stock {
				return domain.ErrInsufficientStock
			}

			remaining := product.Stock - line.Qty
			if err := s.products.UpdateStock(ctx, tx, product.ID, remaining, remaining > 0); err != nil {
				return err
			}

			name := product.Name
			if line.ProductName != nil && strings.TrimSpace(*line.ProductName) != "" {
				name = strings.TrimSpace(*line.ProductName)
			}

			item := domain.OrderedItem{
				ID:           s.genID.Generate().Int64(),
				OrderID:      order.ID,
				ProductName:  name,
				Qty:          line.Qty,
				CostPrice:    line.CostPrice,
				SellingPrice: line.SellingPrice,
				Subtotal:     line.Subtotal,
				CreatedAt:    now,
			}
			if err := s.repo.CreateItem(ctx, tx, &item); err != nil {
				return err
			}
			items = append(items, item)

			if _, seen := touched[product.ID]; !seen {
				touchedOrder = append(touchedOrder, product.ID)
			}
			touched[product.ID] = notificationdomain.LowStockProduct{
				ID:    product.ID,
				Name:  product.Name,
				Stock: remaining,
			}
		}

		for _, id := range touchedOrder {
			if err := s.notifier.RecordLowStock(ctx, tx, touched[id]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int("lines", len(items)),
		zap.Float64("total_amt", order.TotalAmt),
	)

	resp := s.toResponse(order, items)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	orderID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	order, err := s.repo.FindByID(ctx, s.db, orderID.Int64())
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	items, err := s.repo.FindItems(ctx, s.db, order.ID)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(order, items)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	if status := strings.TrimSpace(req.Status); status != "" && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	orders, err := s.repo.List(ctx, s.db, req)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, s.toResponse(&order, nil))
	}
	return resp, nil
}

func (s *Service) ListItems(ctx context.Context) ([]domain.ItemResponse, error) {
	items, err := s.repo.FindAllItems(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	return resp, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*domain.Response, error) {
	orderID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	status = strings.TrimSpace(status)
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.repo.FindByID(ctx, s.db, orderID.Int64())
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if order.Status != status {
		if err := s.repo.UpdateStatus(ctx, s.db, order.ID, status); err != nil {
			return nil, err
		}
		order.Status = status
	}

	items, err := s.repo.FindItems(ctx, s.db, order.ID)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(order, items)
	return &resp, nil
}

func (s *Service) toResponse(o *domain.Order, items []domain.OrderedItem) domain.Response {
	resp := domain.Response{
		ID:         snowflake.ID(o.ID).String(),
		Status:     o.Status,
		CusName:    o.CusName,
		ContactNum: o.ContactNum,
		TotalAmt:   o.TotalAmt,
		OrderDate:  o.OrderDate,
		DueDate:    o.DueDate,
		CreatedAt:  o.CreatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp
}

func toItemResponse(item domain.OrderedItem) domain.ItemResponse {
	return domain.ItemResponse{
		ID:           snowflake.ID(item.ID).String(),
		OrderID:      snowflake.ID(item.OrderID).String(),
		ProductName:  item.ProductName,
		Qty:          item.Qty,
		CostPrice:    item.CostPrice,
		SellingPrice: item.SellingPrice,
		Subtotal:     item.Subtotal,
	}
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
