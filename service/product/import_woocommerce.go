package product

import (
	"strings"
)

// parseWooCommerce handles WooCommerce-style exports where rows carry a Type
// discriminator. "variation" rows are sub-SKUs of an already-captured parent
// and are skipped entirely; "variable" rows are the parent products and get
// their slug from the SKU with the "-parent" suffix stripped. Rows without a
// name are dropped.
//
// A variable row whose prices live only on its (skipped) variation children
// ends up with price 0 — child prices are deliberately not aggregated up.
func parseWooCommerce(rows [][]string, header []string) []CanonicalProductRecord {
	idx := headerIndex(header)

	out := make([]CanonicalProductRecord, 0, len(rows))
	for _, row := range rows {
		rowType := strings.ToLower(rowValue(row, idx, "type"))
		if rowType == "variation" {
			continue
		}
		name := rowValue(row, idx, "name")
		if name == "" {
			continue
		}

		regular := rowValue(row, idx, "regular_price")
		sale := rowValue(row, idx, "sale_price")
		price := regular
		compare := ""
		if sale != "" {
			// Compare-at only exists when there is an actual sale price;
			// a lone regular price is just the price.
			price = sale
			compare = regular
		}

		rec := CanonicalProductRecord{
			Name:           name,
			Description:    rowValue(row, idx, "description"),
			Category:       rowValue(row, idx, "categories"),
			Tags:           rowValue(row, idx, "tags"),
			Price:          price,
			CompareAtPrice: compare,
			SKU:            rowValue(row, idx, "sku"),
			StockQuantity:  rowValue(row, idx, "stock"),
			IsFeatured:     rowValue(row, idx, "featured"),
		}
		if rec.Description == "" {
			rec.Description = rowValue(row, idx, "short_description")
		}

		if rowType == "variable" && rec.SKU != "" {
			rec.Slug = strings.TrimSuffix(rec.SKU, "-parent")
		}

		// single comma-joined Images column: first entry is the featured
		// image, the rest become the gallery
		if imgs := splitList(rowValue(row, idx, "images"), ","); len(imgs) > 0 {
			rec.FeaturedImage = imgs[0]
			rec.Images = strings.Join(imgs[1:], "|")
		}

		out = append(out, rec)
	}
	return out
}
