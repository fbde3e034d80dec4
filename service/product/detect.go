package product

import (
	"strings"
)

// SourceFormat identifies which of the three supported CSV schemas a file uses.
type SourceFormat int

const (
	FormatStandard SourceFormat = iota
	FormatShopify
	FormatWooCommerce
)

func (f SourceFormat) String() string {
	switch f {
	case FormatShopify:
		return "shopify"
	case FormatWooCommerce:
		return "woocommerce"
	default:
		return "standard"
	}
}

// ParseSourceFormat maps a format name (as used by the API and CLI) back to a
// SourceFormat. Unknown names fall back to the standard schema.
func ParseSourceFormat(s string) SourceFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shopify":
		return FormatShopify
	case "woocommerce":
		return FormatWooCommerce
	default:
		return FormatStandard
	}
}

// DetectFormat classifies a header row into one of the three known source
// schemas. Classification is total: it always returns a format and never
// fails. Rule order matters — the Shopify check runs before the WooCommerce
// one, so a header satisfying both heuristics is classified as Shopify.
//
// Known limitation: a standard file that happens to carry both a "handle"
// and a "sku"-like column is classified as Shopify. Importers downstream
// rely on this exact rule order, so changing the heuristic changes which
// files are accepted under which schema.
func DetectFormat(header []string) SourceFormat {
	scan := strings.ToLower(strings.Join(header, ","))

	if strings.Contains(scan, "handle") &&
		(strings.Contains(scan, "variant sku") ||
			strings.Contains(scan, "image src") ||
			strings.Contains(scan, "variant price") ||
			strings.Contains(scan, "variant grams")) {
		return FormatShopify
	}

	if (strings.Contains(scan, "regular price") || strings.Contains(scan, "sale price")) &&
		(strings.Contains(scan, "type") || strings.Contains(scan, "sku")) {
		return FormatWooCommerce
	}

	return FormatStandard
}
