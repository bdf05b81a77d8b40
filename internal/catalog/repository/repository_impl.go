package repository

import (
	"context"

	"github.com/piadesu/attn-store/internal/catalog/domain"
	"gorm.io/gorm"
)

type categoryRepo struct{}

func ProvideCategory() domain.CategoryRepository {
	return &categoryRepo{}
}

func (r *categoryRepo) Create(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO categories (id, name, slug, created_at)
		 VALUES (?, ?, ?, ?)`,
		category.ID,
		category.Name,
		category.Slug,
		category.CreatedAt,
	).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, slug, created_at FROM categories WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *categoryRepo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var items []domain.Category
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, slug, created_at FROM categories ORDER BY name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

type productRepo struct{}

func ProvideProduct() domain.ProductRepository {
	return &productRepo{}
}

func (r *productRepo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, category_id, name, stock, cost_price, selling_price, stock_status, is_active, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.CategoryID,
		product.Name,
		product.Stock,
		product.CostPrice,
		product.SellingPrice,
		product.StockStatus,
		product.IsActive,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *productRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, category_id, name, stock, cost_price, selling_price, stock_status, is_active, image_url, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, db *gorm.DB, filter domain.ListProductsRequest) ([]domain.Product, error) {
	var items []domain.Product
	stmt := db.WithContext(ctx).Model(&domain.Product{})
	if !filter.All {
		stmt = stmt.Where("is_active = ?", true)
	}
	err := stmt.Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *productRepo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET category_id = ?, name = ?, stock = ?, cost_price = ?, selling_price = ?, stock_status = ?, is_active = ?, image_url = ?, updated_at = ?
		 WHERE id = ?`,
		product.CategoryID,
		product.Name,
		product.Stock,
		product.CostPrice,
		product.SellingPrice,
		product.StockStatus,
		product.IsActive,
		product.ImageURL,
		product.UpdatedAt,
		product.ID,
	).Error
}

func (r *productRepo) LockByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := tx.WithContext(ctx).Raw(
		`SELECT id, category_id, name, stock, cost_price, selling_price, stock_status, is_active, image_url, created_at, updated_at
		 FROM products
		 WHERE id = ?
		 FOR UPDATE`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) UpdateStock(ctx context.Context, tx *gorm.DB, id int64, stock int, inStock bool) error {
	return tx.WithContext(ctx).Exec(
		`UPDATE products SET stock = ?, stock_status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		stock,
		inStock,
		id,
	).Error
}
