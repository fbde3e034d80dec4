package product

import (
	"strconv"
	"strings"
)

// parseShopify reconciles Shopify-style exports where one logical product
// spans multiple physical rows (one per variant/image), grouped by handle.
// The first row seen for a handle seeds the record; every later row with the
// same handle contributes at most an additional gallery image. Rows without
// a handle are dropped.
func parseShopify(rows [][]string, header []string) []CanonicalProductRecord {
	idx := headerIndex(header)

	// insertion-ordered handle -> record accumulator
	order := make([]string, 0, len(rows))
	byHandle := make(map[string]*CanonicalProductRecord, len(rows))

	for _, row := range rows {
		handle := rowValue(row, idx, "handle")
		if handle == "" {
			continue
		}

		rec, seen := byHandle[handle]
		if !seen {
			price := rowValue(row, idx, "variant_price")
			compare := rowValue(row, idx, "variant_compare_at_price")
			rec = &CanonicalProductRecord{
				Name:           rowValue(row, idx, "title"),
				Slug:           handle,
				Description:    rowValue(row, idx, "body_html"),
				Category:       rowValue(row, idx, "type"),
				Subcategory:    rowValue(row, idx, "vendor"),
				Tags:           rowValue(row, idx, "tags"),
				Price:          price,
				CompareAtPrice: compare,
				SKU:            rowValue(row, idx, "variant_sku"),
				StockQuantity:  rowValue(row, idx, "variant_inventory_qty"),
				Weight:         rowValue(row, idx, "variant_grams"),
				FeaturedImage:  rowValue(row, idx, "image_src"),
			}
			// On sale iff the export carries a compare-at price above the price.
			if cp, err := strconv.ParseFloat(compare, 64); err == nil {
				if p, err := strconv.ParseFloat(price, 64); err == nil && cp > p {
					rec.IsOnSale = "true"
				}
			}
			byHandle[handle] = rec
			order = append(order, handle)
			continue
		}

		// follow-up row for a known handle: only a distinct gallery image
		img := rowValue(row, idx, "image_src")
		if img == "" || img == rec.FeaturedImage || hasImage(rec.Images, img) {
			continue
		}
		if rec.Images == "" {
			rec.Images = img
		} else {
			rec.Images += "|" + img
		}
	}

	out := make([]CanonicalProductRecord, 0, len(order))
	for _, h := range order {
		out = append(out, *byHandle[h])
	}
	return out
}

func hasImage(images, img string) bool {
	for _, existing := range strings.Split(images, "|") {
		if existing == img {
			return true
		}
	}
	return false
}
