package product

import (
	"strings"
	"testing"
)

const shopifyHeader = "Handle,Title,Body (HTML),Vendor,Type,Tags,Variant SKU,Variant Grams,Variant Inventory Qty,Variant Price,Variant Compare At Price,Image Src"

func TestParseShopify_GroupsRowsByHandle(t *testing.T) {
	rows, header := rowsFromCSV(t, shopifyHeader+`
fern,Fern,A fern,Greenhouse,Plants,indoor,PLT-001,350,25,29.99,39.99,a.jpg
fern,,,,,,PLT-002,600,12,44.99,,b.jpg
fern,,,,,,PLT-003,900,5,59.99,,c.jpg
pot,Ceramic Pot,A pot,Greenhouse,Accessories,ceramic,ACC-014,900,40,14.50,,p.jpg
`)
	recs := parseShopify(rows, header)
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2 (grouped by handle)", len(recs))
	}

	fern := recs[0]
	if fern.Name != "Fern" || fern.Slug != "fern" {
		t.Errorf("seed row: name=%q slug=%q", fern.Name, fern.Slug)
	}
	if fern.Category != "Plants" || fern.Subcategory != "Greenhouse" {
		t.Errorf("category=%q subcategory=%q, want Plants/Greenhouse", fern.Category, fern.Subcategory)
	}
	if fern.Price != "29.99" || fern.SKU != "PLT-001" || fern.StockQuantity != "25" {
		t.Errorf("seed variant fields: %+v", fern)
	}
	if fern.FeaturedImage != "a.jpg" {
		t.Errorf("FeaturedImage = %q, want a.jpg", fern.FeaturedImage)
	}
	if fern.Images != "b.jpg|c.jpg" {
		t.Errorf("Images = %q, want b.jpg|c.jpg", fern.Images)
	}
	if fern.IsOnSale != "true" {
		t.Errorf("IsOnSale = %q, want true (39.99 > 29.99)", fern.IsOnSale)
	}

	pot := recs[1]
	if pot.Name != "Ceramic Pot" || pot.IsOnSale != "" {
		t.Errorf("pot = %+v", pot)
	}
}

// Gallery contains no duplicates and never the featured image itself.
func TestParseShopify_GalleryDeduped(t *testing.T) {
	rows, header := rowsFromCSV(t, shopifyHeader+`
fern,Fern,,,,,PLT-001,,,29.99,,a.jpg
fern,,,,,,,,,,,a.jpg
fern,,,,,,,,,,,b.jpg
fern,,,,,,,,,,,b.jpg
fern,,,,,,,,,,,
`)
	recs := parseShopify(rows, header)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].Images != "b.jpg" {
		t.Errorf("Images = %q, want b.jpg (deduped, featured excluded)", recs[0].Images)
	}
}

func TestParseShopify_HandlelessRowsDropped(t *testing.T) {
	rows, header := rowsFromCSV(t, shopifyHeader+`
,Orphan,,,,,SKU-X,,,9.99,,x.jpg
fern,Fern,,,,,PLT-001,,,29.99,,a.jpg
`)
	recs := parseShopify(rows, header)
	if len(recs) != 1 || recs[0].Name != "Fern" {
		t.Fatalf("records = %+v, want only Fern", recs)
	}
}

func TestParseShopify_OrderPreserved(t *testing.T) {
	var b strings.Builder
	b.WriteString(shopifyHeader + "\n")
	handles := []string{"c-prod", "a-prod", "b-prod"}
	for _, h := range handles {
		b.WriteString(h + ",Title " + h + ",,,,,SKU,,,10,,\n")
	}
	rows, header := rowsFromCSV(t, b.String())
	recs := parseShopify(rows, header)
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	for i, h := range handles {
		if recs[i].Slug != h {
			t.Errorf("recs[%d].Slug = %q, want %q (insertion order)", i, recs[i].Slug, h)
		}
	}
}
