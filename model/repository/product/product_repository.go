package product

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	productEntity "storefront.GO/model/entity/product"
	categoryRepo "storefront.GO/model/repository/category"
)

type ProductRepository struct {
	db         *gorm.DB
	categories *categoryRepo.CategoryRepository
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:         db,
		categories: categoryRepo.NewCategoryRepository(db),
	}
}

// CreateProduct inserts one product row, creating its category (and
// subcategory, parented under it) on first use. Implements the importer's
// ProductStore boundary. A duplicate slug surfaces as the database's unique
// constraint error — the importer records it and moves on.
func (r *ProductRepository) CreateProduct(ctx context.Context, p *productEntity.Product) error {
	if p.Category != "" {
		catID, err := r.categories.EnsureByName(ctx, p.Category, nil)
		if err != nil {
			return fmt.Errorf("ensure category %q: %w", p.Category, err)
		}
		if p.Subcategory != "" {
			if _, err := r.categories.EnsureByName(ctx, p.Subcategory, &catID); err != nil {
				return fmt.Errorf("ensure subcategory %q: %w", p.Subcategory, err)
			}
		}
	}
	return r.db.WithContext(ctx).Create(p).Error
}

// GetBySlug returns one product by slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*productEntity.Product, error) {
	var p productEntity.Product
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns active products, optionally filtered by category, newest first.
func (r *ProductRepository) List(ctx context.Context, category string, limit, offset int) ([]productEntity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var products []productEntity.Product
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

// Count returns the number of active products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&productEntity.Product{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}
