package product

import (
	"strings"
)

// standardSetters maps every recognized normalized header of the standard
// schema onto a canonical field setter. The table is pure data so the parser
// itself stays a dumb loop; unrecognized headers are simply ignored.
//
// Assignments are last-write-wins in header-iteration order, except
// featured_image which keeps the first non-empty value (a file may carry both
// "image" and "featured_image" columns and the earlier one must not be
// clobbered by an empty later one).
var standardSetters = map[string]func(*CanonicalProductRecord, string){
	"name":         func(r *CanonicalProductRecord, v string) { r.Name = v },
	"title":        func(r *CanonicalProductRecord, v string) { r.Name = v },
	"product_name": func(r *CanonicalProductRecord, v string) { r.Name = v },

	"name_ar":     func(r *CanonicalProductRecord, v string) { r.NameAr = v },
	"title_ar":    func(r *CanonicalProductRecord, v string) { r.NameAr = v },
	"arabic_name": func(r *CanonicalProductRecord, v string) { r.NameAr = v },

	"slug":    func(r *CanonicalProductRecord, v string) { r.Slug = v },
	"handle":  func(r *CanonicalProductRecord, v string) { r.Slug = v },
	"url_key": func(r *CanonicalProductRecord, v string) { r.Slug = v },

	"description": func(r *CanonicalProductRecord, v string) { r.Description = v },
	"body":        func(r *CanonicalProductRecord, v string) { r.Description = v },
	"body_html":   func(r *CanonicalProductRecord, v string) { r.Description = v },
	"desc":        func(r *CanonicalProductRecord, v string) { r.Description = v },

	"description_ar": func(r *CanonicalProductRecord, v string) { r.DescriptionAr = v },

	"category":         func(r *CanonicalProductRecord, v string) { r.Category = v },
	"categories":       func(r *CanonicalProductRecord, v string) { r.Category = v },
	"product_category": func(r *CanonicalProductRecord, v string) { r.Category = v },

	"subcategory":  func(r *CanonicalProductRecord, v string) { r.Subcategory = v },
	"sub_category": func(r *CanonicalProductRecord, v string) { r.Subcategory = v },

	"price":         func(r *CanonicalProductRecord, v string) { r.Price = v },
	"regular_price": func(r *CanonicalProductRecord, v string) { r.Price = v },

	"compare_at_price": func(r *CanonicalProductRecord, v string) { r.CompareAtPrice = v },
	"compare_price":    func(r *CanonicalProductRecord, v string) { r.CompareAtPrice = v },
	"original_price":   func(r *CanonicalProductRecord, v string) { r.CompareAtPrice = v },
	"msrp":             func(r *CanonicalProductRecord, v string) { r.CompareAtPrice = v },

	"discount_percentage": func(r *CanonicalProductRecord, v string) { r.DiscountPercentage = v },
	"discount":            func(r *CanonicalProductRecord, v string) { r.DiscountPercentage = v },

	"sku":          func(r *CanonicalProductRecord, v string) { r.SKU = v },
	"product_code": func(r *CanonicalProductRecord, v string) { r.SKU = v },

	"stock_quantity": func(r *CanonicalProductRecord, v string) { r.StockQuantity = v },
	"stock":          func(r *CanonicalProductRecord, v string) { r.StockQuantity = v },
	"qty":            func(r *CanonicalProductRecord, v string) { r.StockQuantity = v },
	"quantity":       func(r *CanonicalProductRecord, v string) { r.StockQuantity = v },
	"inventory":      func(r *CanonicalProductRecord, v string) { r.StockQuantity = v },

	"featured_image": setFeaturedImage,
	"image":          setFeaturedImage,
	"main_image":     setFeaturedImage,
	"image_url":      setFeaturedImage,

	"images":            func(r *CanonicalProductRecord, v string) { r.Images = v },
	"gallery":           func(r *CanonicalProductRecord, v string) { r.Images = v },
	"gallery_images":    func(r *CanonicalProductRecord, v string) { r.Images = v },
	"additional_images": func(r *CanonicalProductRecord, v string) { r.Images = v },

	"tags":     func(r *CanonicalProductRecord, v string) { r.Tags = v },
	"keywords": func(r *CanonicalProductRecord, v string) { r.Tags = v },

	"is_featured": func(r *CanonicalProductRecord, v string) { r.IsFeatured = v },
	"featured":    func(r *CanonicalProductRecord, v string) { r.IsFeatured = v },
	"is_on_sale":  func(r *CanonicalProductRecord, v string) { r.IsOnSale = v },
	"on_sale":     func(r *CanonicalProductRecord, v string) { r.IsOnSale = v },
	"is_new":      func(r *CanonicalProductRecord, v string) { r.IsNew = v },
	"new":         func(r *CanonicalProductRecord, v string) { r.IsNew = v },

	"weight":     func(r *CanonicalProductRecord, v string) { r.Weight = v },
	"dimensions": func(r *CanonicalProductRecord, v string) { r.Dimensions = v },
}

// first non-empty wins for the featured image
func setFeaturedImage(r *CanonicalProductRecord, v string) {
	if r.FeaturedImage == "" {
		r.FeaturedImage = v
	}
}

// parseStandard maps one row to one candidate record via the synonym table.
// Rows that end up without a name are dropped.
func parseStandard(rows [][]string, header []string) []CanonicalProductRecord {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = normalizeHeader(h)
	}

	out := make([]CanonicalProductRecord, 0, len(rows))
	for _, row := range rows {
		var rec CanonicalProductRecord
		for i, key := range keys {
			set, ok := standardSetters[key]
			if !ok || i >= len(row) {
				continue
			}
			set(&rec, strings.TrimSpace(row[i]))
		}
		if rec.Name == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}
