package product

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents the products table — the persistence-ready shape the
// importer and the catalog API share.
type Product struct {
	ID            uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	Name          string         `gorm:"column:name;size:255;not null" json:"name"`
	NameAr        string         `gorm:"column:name_ar;size:255" json:"name_ar,omitempty"`
	Slug          string         `gorm:"column:slug;size:255;not null;uniqueIndex" json:"slug"`
	Description   string         `gorm:"column:description;type:text" json:"description,omitempty"`
	DescriptionAr string         `gorm:"column:description_ar;type:text" json:"description_ar,omitempty"`
	Category      string         `gorm:"column:category;size:128;not null;default:general;index" json:"category"`
	Subcategory   string         `gorm:"column:subcategory;size:128" json:"subcategory,omitempty"`
	Price         float64        `gorm:"column:price;type:decimal(12,4);not null;default:0" json:"price"`
	ComparePrice  *float64       `gorm:"column:compare_price;type:decimal(12,4)" json:"compare_price,omitempty"`
	Currency      string         `gorm:"column:currency;size:8;not null;default:USD" json:"currency"`
	SKU           string         `gorm:"column:sku;size:64;index" json:"sku,omitempty"`
	StockQuantity int            `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	FeaturedImage string         `gorm:"column:featured_image;size:2048" json:"featured_image,omitempty"`
	Images        datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
	Tags          datatypes.JSON `gorm:"column:tags" json:"tags,omitempty"`
	IsFeatured    bool           `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsOnSale      bool           `gorm:"column:is_on_sale;not null;default:false" json:"is_on_sale"`
	IsNew         bool           `gorm:"column:is_new;not null;default:false" json:"is_new"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	ProductType   string         `gorm:"column:product_type;size:32;not null;default:simple" json:"product_type"`
	Weight        float64        `gorm:"column:weight;type:decimal(12,4);not null;default:0" json:"weight,omitempty"`
	Dimensions    string         `gorm:"column:dimensions;size:64" json:"dimensions,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at,omitempty"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
