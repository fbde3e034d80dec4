package product

import (
	"strings"
	"testing"
)

const wooHeader = "ID,Type,SKU,Name,Published,Featured,Short description,Description,Regular price,Sale price,Categories,Tags,Images,Stock"

func TestParseWooCommerce_VariationRowsSkipped(t *testing.T) {
	rows, header := rowsFromCSV(t, wooHeader+`
1,simple,PLT-001,Fern,1,0,Short,Long,39.99,29.99,Plants,indoor,a.jpg,25
2,variation,ACC-014-S,Pot Small,1,0,,,18.00,14.50,Accessories,,,15
3,variation,ACC-014-L,Pot Large,1,0,,,22.00,,Accessories,,,9
`)
	recs := parseWooCommerce(rows, header)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1 (variations skipped)", len(recs))
	}
	if recs[0].Name != "Fern" {
		t.Errorf("Name = %q, want Fern", recs[0].Name)
	}
}

func TestParseWooCommerce_PriceSelection(t *testing.T) {
	rows, header := rowsFromCSV(t, wooHeader+`
1,simple,S1,Sale Item,1,0,,,40.00,30.00,Plants,,,5
2,simple,S2,Plain Item,1,0,,,40.00,,Plants,,,5
3,simple,S3,No Price Item,1,0,,,,,Plants,,,5
`)
	recs := parseWooCommerce(rows, header)
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}

	// sale price present: price = sale, compare = regular
	if recs[0].Price != "30.00" || recs[0].CompareAtPrice != "40.00" {
		t.Errorf("sale item: price=%q compare=%q", recs[0].Price, recs[0].CompareAtPrice)
	}
	// regular only: price = regular, NO compare price
	if recs[1].Price != "40.00" || recs[1].CompareAtPrice != "" {
		t.Errorf("plain item: price=%q compare=%q", recs[1].Price, recs[1].CompareAtPrice)
	}
	// neither: price stays empty (validator defaults it to 0)
	if recs[2].Price != "" {
		t.Errorf("no-price item: price=%q, want empty", recs[2].Price)
	}
}

func TestParseWooCommerce_VariableSlugFromSKU(t *testing.T) {
	rows, header := rowsFromCSV(t, wooHeader+`
1,variable,ACC-014-parent,Ceramic Pot,1,0,,,,,Accessories,,p.jpg,40
2,variable,,Bare Variable,1,0,,,,,Accessories,,,3
`)
	recs := parseWooCommerce(rows, header)
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].Slug != "ACC-014" {
		t.Errorf("Slug = %q, want ACC-014 (-parent stripped)", recs[0].Slug)
	}
	// no SKU: slug left empty, validator falls back to slugified name
	if recs[1].Slug != "" {
		t.Errorf("Slug = %q, want empty", recs[1].Slug)
	}
	if v := BuildProduct(recs[1]); v.Slug != "bare-variable" {
		t.Errorf("fallback slug = %q, want bare-variable", v.Slug)
	}
}

func TestParseWooCommerce_ImagesSplit(t *testing.T) {
	// built by hand: the comma-joined Images cell would confuse rowsFromCSV
	header := strings.Split("ID,Type,SKU,Name,Regular price,Sale price,Images", ",")
	rows := [][]string{{"1", "simple", "S1", "Fern", "39.99", "", "a.jpg, b.jpg, c.jpg"}}
	recs := parseWooCommerce(rows, header)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].FeaturedImage != "a.jpg" {
		t.Errorf("FeaturedImage = %q, want a.jpg", recs[0].FeaturedImage)
	}
	if recs[0].Images != "b.jpg|c.jpg" {
		t.Errorf("Images = %q, want b.jpg|c.jpg", recs[0].Images)
	}
}

func TestParseWooCommerce_NamelessRowsDropped(t *testing.T) {
	rows, header := rowsFromCSV(t, wooHeader+`
1,simple,S1,,1,0,,,10,,Plants,,,5
`)
	if recs := parseWooCommerce(rows, header); len(recs) != 0 {
		t.Fatalf("records = %d, want 0", len(recs))
	}
}

func TestParseWooCommerce_DescriptionFallback(t *testing.T) {
	rows, header := rowsFromCSV(t, wooHeader+`
1,simple,S1,Fern,1,0,Short only,,10,,Plants,,,5
2,simple,S2,Pot,1,0,Short,Long,10,,Plants,,,5
`)
	recs := parseWooCommerce(rows, header)
	if recs[0].Description != "Short only" {
		t.Errorf("Description = %q, want short description fallback", recs[0].Description)
	}
	if recs[1].Description != "Long" {
		t.Errorf("Description = %q, want Long", recs[1].Description)
	}
}
