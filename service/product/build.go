package product

import (
	"regexp"
	"strconv"
	"strings"
)

// truthy is the fixed token set for boolean-like CSV cells.
var truthy = map[string]bool{"true": true, "yes": true, "1": true, "on": true}

func parseFlag(s string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(s))]
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns free text into a URL-safe identifier: lower-cased, runs of
// non-alphanumeric characters collapse to a single hyphen, edge hyphens
// trimmed.
func Slugify(s string) string {
	s = nonSlug.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// splitList splits s on any of the separator runes, trims each piece and
// drops empties.
func splitList(s, seps string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildProduct converts a canonical record into the persistence-ready shape.
// It is total: unparseable numerics become defaults, never errors.
func BuildProduct(rec CanonicalProductRecord) ValidatedProductRecord {
	price, _ := strconv.ParseFloat(strings.TrimSpace(rec.Price), 64)

	var compare *float64
	if v := strings.TrimSpace(rec.CompareAtPrice); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			compare = &f
		}
	}
	// No explicit compare-at price but a usable discount percentage: derive
	// the original price the discount was taken from.
	if compare == nil {
		if d, err := strconv.ParseFloat(strings.TrimSpace(rec.DiscountPercentage), 64); err == nil && d > 0 && d < 100 {
			orig := price / (1 - d/100)
			compare = &orig
		}
	}

	category := "general"
	subcategory := strings.TrimSpace(rec.Subcategory)
	if parts := splitList(rec.Category, ",>"); len(parts) > 0 {
		category = parts[0]
		if len(parts) > 1 {
			subcategory = parts[1]
		}
	}

	slug := strings.TrimSpace(rec.Slug)
	if slug == "" {
		slug = Slugify(rec.Name)
	}

	stock := 10
	if v := strings.TrimSpace(rec.StockQuantity); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			stock = n
		}
	}

	weight, _ := strconv.ParseFloat(strings.TrimSpace(rec.Weight), 64)

	return ValidatedProductRecord{
		Name:          strings.TrimSpace(rec.Name),
		NameAr:        strings.TrimSpace(rec.NameAr),
		Slug:          slug,
		Description:   strings.TrimSpace(rec.Description),
		DescriptionAr: strings.TrimSpace(rec.DescriptionAr),
		Category:      category,
		Subcategory:   subcategory,
		Price:         price,
		ComparePrice:  compare,
		SKU:           strings.TrimSpace(rec.SKU),
		StockQuantity: stock,
		FeaturedImage: strings.TrimSpace(rec.FeaturedImage),
		Images:        splitList(rec.Images, "|,"),
		Tags:          splitList(rec.Tags, ","),
		IsFeatured:    parseFlag(rec.IsFeatured),
		IsOnSale:      parseFlag(rec.IsOnSale) || (compare != nil && *compare > price),
		IsNew:         parseFlag(rec.IsNew),
		Weight:        weight,
		Dimensions:    strings.TrimSpace(rec.Dimensions),
	}
}
