package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"storefront.GO/core/cache"
	categoryEntity "storefront.GO/model/entity/category"
	productService "storefront.GO/service/product"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func cacheKey(name string) string {
	return "category:name:" + strings.ToLower(strings.TrimSpace(name))
}

// EnsureByName returns the ID of the category with the given name, creating
// the row on first use. Lookups are memoized in the process cache — bulk
// imports hit the same handful of categories for thousands of rows.
func (r *CategoryRepository) EnsureByName(ctx context.Context, name string, parentID *uint) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("category name is empty")
	}

	key := cacheKey(name)
	if v, ok := cache.GetInstance().Get(key); ok {
		if id, ok := v.(uint); ok {
			return id, nil
		}
	}

	var cat categoryEntity.Category
	err := r.db.WithContext(ctx).Where("slug = ?", productService.Slugify(name)).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cat = categoryEntity.Category{
			Name:     name,
			Slug:     productService.Slugify(name),
			ParentID: parentID,
			IsActive: true,
		}
		err = r.db.WithContext(ctx).Create(&cat).Error
	}
	if err != nil {
		return 0, err
	}

	cache.GetInstance().Set(key, cat.ID, 0, []string{"categories"})
	return cat.ID, nil
}

// GetBySlug returns one category by slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*categoryEntity.Category, error) {
	var cat categoryEntity.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// List returns all active categories.
func (r *CategoryRepository) List(ctx context.Context) ([]categoryEntity.Category, error) {
	var cats []categoryEntity.Category
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&cats).Error
	return cats, err
}
