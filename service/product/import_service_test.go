package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	productEntity "storefront.GO/model/entity/product"
)

// stubStore records created products and fails on configured names.
type stubStore struct {
	created []*productEntity.Product
	failOn  map[string]string // name -> failure reason
}

func (s *stubStore) CreateProduct(_ context.Context, p *productEntity.Product) error {
	if reason, ok := s.failOn[p.Name]; ok {
		return errors.New(reason)
	}
	s.created = append(s.created, p)
	return nil
}

func TestImportProducts_EndToEndStandard(t *testing.T) {
	csv := "name,category,price,compare_at_price\n" +
		`"Fern",Plants,29.99,39.99` + "\n"

	store := &stubStore{}
	res, err := ImportProducts(context.Background(), store, strings.NewReader(csv), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Format != FormatStandard {
		t.Errorf("Format = %v, want standard", res.Format)
	}
	if res.Total != 1 || res.Imported != 1 || res.Failed != 0 {
		t.Fatalf("result = %+v, want 1/1/0", res)
	}

	p := store.created[0]
	if p.Name != "Fern" || p.Category != "Plants" || p.Slug != "fern" {
		t.Errorf("product = %+v", p)
	}
	if p.Price != 29.99 {
		t.Errorf("Price = %v, want 29.99", p.Price)
	}
	if p.ComparePrice == nil || *p.ComparePrice != 39.99 {
		t.Errorf("ComparePrice = %v, want 39.99", p.ComparePrice)
	}
	if !p.IsOnSale {
		t.Error("IsOnSale = false, want true")
	}
	if p.Currency != "USD" {
		t.Errorf("Currency = %q, want default USD", p.Currency)
	}
}

func TestImportProducts_FailureAggregation(t *testing.T) {
	csv := "name,price\nAlpha,1\nBeta,2\nGamma,3\n"

	store := &stubStore{failOn: map[string]string{"Beta": "duplicate SKU"}}
	res, err := ImportProducts(context.Background(), store, strings.NewReader(csv), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Total != 3 || res.Imported != 2 || res.Failed != 1 {
		t.Fatalf("result = %+v, want total=3 imported=2 failed=1", res)
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Beta: duplicate SKU" {
		t.Errorf("Errors = %v, want [Beta: duplicate SKU]", res.Errors)
	}
	// earlier success is not rolled back, later rows still processed
	if len(store.created) != 2 || store.created[0].Name != "Alpha" || store.created[1].Name != "Gamma" {
		t.Errorf("created = %v", store.created)
	}
}

func TestImportProducts_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "name,price\n"} {
		store := &stubStore{}
		res, err := ImportProducts(context.Background(), store, strings.NewReader(input), ImportOptions{})
		if err != nil {
			t.Fatalf("input %q: %v", input, err)
		}
		if res.Total != 0 || len(store.created) != 0 {
			t.Errorf("input %q: result = %+v", input, res)
		}
	}
}

// Quoted cells may contain the delimiter verbatim.
func TestReadRecords_QuotedFields(t *testing.T) {
	csv := "name,price\n\"Smith, John\",29.99\n"
	_, recs, err := ReadRecords(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].Name != "Smith, John" {
		t.Errorf("Name = %q, want \"Smith, John\"", recs[0].Name)
	}
	if recs[0].Price != "29.99" {
		t.Errorf("Price = %q, want 29.99", recs[0].Price)
	}
}

func TestImportProducts_ProgressReported(t *testing.T) {
	csv := "name\nA\nB\nC\n"
	var calls []string
	store := &stubStore{}
	_, err := ImportProducts(context.Background(), store, strings.NewReader(csv), ImportOptions{
		Progress: func(done, total int) {
			calls = append(calls, fmt.Sprintf("%d/%d", done, total))
		},
	})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	want := []string{"1/3", "2/3", "3/3"}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestImportProducts_ShopifyDetectedFromHeader(t *testing.T) {
	csv := shopifyHeader + "\n" +
		"fern,Fern,A fern,Greenhouse,Plants,indoor,PLT-001,350,25,29.99,39.99,a.jpg\n" +
		"fern,,,,,,PLT-002,600,12,44.99,,b.jpg\n"

	store := &stubStore{}
	res, err := ImportProducts(context.Background(), store, strings.NewReader(csv), ImportOptions{CurrencyCode: "EUR"})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Format != FormatShopify {
		t.Errorf("Format = %v, want shopify", res.Format)
	}
	if res.Total != 1 || res.Imported != 1 {
		t.Fatalf("result = %+v, want one grouped product", res)
	}
	p := store.created[0]
	if p.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", p.Currency)
	}
	if string(p.Images) != `["b.jpg"]` {
		t.Errorf("Images JSON = %s, want [\"b.jpg\"]", p.Images)
	}
}

func TestTemplate_MatchesDetector(t *testing.T) {
	for _, f := range []SourceFormat{FormatStandard, FormatShopify, FormatWooCommerce} {
		_, recs, err := ReadRecords(strings.NewReader(Template(f)))
		if err != nil {
			t.Fatalf("template %s: %v", f, err)
		}
		if len(recs) == 0 {
			t.Errorf("template %s parsed to zero records", f)
		}
		header := strings.Split(strings.SplitN(Template(f), "\n", 2)[0], ",")
		if got := DetectFormat(header); got != f {
			t.Errorf("template %s detected as %s", f, got)
		}
	}
}
