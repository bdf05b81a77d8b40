package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/piadesu/attn-store/internal/catalog/domain"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
	"github.com/piadesu/attn-store/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Categories domain.CategoryRepository
	Products   domain.ProductRepository
	Notifier   notificationdomain.Recorder
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	categories domain.CategoryRepository
	products   domain.ProductRepository
	notifier   notificationdomain.Recorder
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("catalog.service"),
		genID:      p.GenID,
		categories: p.Categories,
		products:   p.Products,
		notifier:   p.Notifier,
	}
}

func (s *Service) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	c := &domain.Category{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.categories.Create(ctx, s.db, c); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, err
	}

	resp := s.toCategoryResponse(c)
	return &resp, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	items, err := s.categories.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.CategoryResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, s.toCategoryResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.ProductResponse, error) {
	// Product names are normalized to lowercase on every write so that
	// lookups and the top-products rollup are case-insensitive.
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	if stock < 0 {
		return nil, domain.ErrInvalidStock
	}
	if req.CostPrice < 0 || req.SellingPrice < 0 {
		return nil, domain.ErrInvalidPrice
	}

	var categoryID *int64
	if req.CategoryID != nil && strings.TrimSpace(*req.CategoryID) != "" {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.CategoryID))
		if err != nil {
			return nil, domain.ErrCategoryNotFound
		}
		category, err := s.categories.FindByID(ctx, s.db, parsed.Int64())
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
		id := category.ID
		categoryID = &id
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:           s.genID.Generate().Int64(),
		CategoryID:   categoryID,
		Name:         name,
		Stock:        stock,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		IsActive:     active,
		ImageURL:     normalizeOptional(req.ImageURL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p.StockStatus = p.InStock()

	if err := s.products.Create(ctx, s.db, p); err != nil {
		return nil, err
	}

	resp := s.toProductResponse(p)
	return &resp, nil
}

func (s *Service) ListProducts(ctx context.Context, req domain.ListProductsRequest) ([]domain.ProductResponse, error) {
	items, err := s.products.List(ctx, s.db, req)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ProductResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, s.toProductResponse(&item))
	}
	return resp, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.ProductResponse, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.products.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := s.toProductResponse(item)
	return &resp, nil
}

func (s *Service) UpdateProduct(ctx context.Context, req domain.UpdateProductRequest) (*domain.ProductResponse, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.products.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.ToLower(strings.TrimSpace(*req.Name))
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.CategoryID != nil {
		trimmed := strings.TrimSpace(*req.CategoryID)
		if trimmed == "" {
			item.CategoryID = nil
		} else {
			parsed, err := snowflake.ParseString(trimmed)
			if err != nil {
				return nil, domain.ErrCategoryNotFound
			}
			category, err := s.categories.FindByID(ctx, s.db, parsed.Int64())
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrCategoryNotFound
			}
			id := category.ID
			item.CategoryID = &id
		}
	}

	stockChanged := false
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, domain.ErrInvalidStock
		}
		stockChanged = *req.Stock != item.Stock
		item.Stock = *req.Stock
	}
	if req.CostPrice != nil {
		if *req.CostPrice < 0 {
			return nil, domain.ErrInvalidPrice
		}
		item.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		if *req.SellingPrice < 0 {
			return nil, domain.ErrInvalidPrice
		}
		item.SellingPrice = *req.SellingPrice
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.ImageURL != nil {
		item.ImageURL = normalizeOptional(req.ImageURL)
	}

	item.StockStatus = item.InStock()
	item.UpdatedAt = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.products.Update(ctx, tx, item); err != nil {
			return err
		}
		if stockChanged {
			return s.notifier.RecordLowStock(ctx, tx, notificationdomain.LowStockProduct{
				ID:    item.ID,
				Name:  item.Name,
				Stock: item.Stock,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.toProductResponse(item)
	return &resp, nil
}

func (s *Service) toCategoryResponse(c *domain.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:        snowflake.ID(c.ID).String(),
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
	}
}

func (s *Service) toProductResponse(p *domain.Product) domain.ProductResponse {
	resp := domain.ProductResponse{
		ID:           snowflake.ID(p.ID).String(),
		Name:         p.Name,
		Stock:        p.Stock,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		StockStatus:  p.StockStatus,
		IsActive:     p.IsActive,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.CategoryID != nil {
		id := snowflake.ID(*p.CategoryID).String()
		resp.CategoryID = &id
	}
	return resp
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
