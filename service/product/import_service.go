package product

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gorm.io/datatypes"

	productEntity "storefront.GO/model/entity/product"
)

// ProductStore is the single boundary the importer talks to. Implemented by
// model/repository/product; tests substitute stubs to exercise failure paths.
type ProductStore interface {
	CreateProduct(ctx context.Context, p *productEntity.Product) error
}

// ImportOptions configures an import run.
type ImportOptions struct {
	CurrencyCode string
	// Progress, when set, is called after every persisted (or failed) record.
	Progress func(done, total int)
}

// ImportResult holds counters and per-row failures from an import run.
type ImportResult struct {
	Format   SourceFormat `json:"-"`
	Total    int          `json:"total"`
	Imported int          `json:"imported"`
	Failed   int          `json:"failed"`
	Errors   []string     `json:"errors,omitempty"`
}

// ReadRecords reads a delimited file, detects its source schema from the
// header row and parses every data row into canonical records. Input shorter
// than header + one data row yields zero records, not an error.
func ReadRecords(r io.Reader) (SourceFormat, []CanonicalProductRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true // platform exports are sometimes sloppily quoted

	header, err := reader.Read()
	if err == io.EOF {
		return FormatStandard, nil, nil
	}
	if err != nil {
		return FormatStandard, nil, fmt.Errorf("read CSV header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return FormatStandard, nil, fmt.Errorf("read CSV rows: %w", err)
	}

	format := DetectFormat(header)
	return format, ParseRecords(format, rows, header), nil
}

// ParseRecords dispatches data rows to the parser for the detected format.
func ParseRecords(format SourceFormat, rows [][]string, header []string) []CanonicalProductRecord {
	switch format {
	case FormatShopify:
		return parseShopify(rows, header)
	case FormatWooCommerce:
		return parseWooCommerce(rows, header)
	default:
		return parseStandard(rows, header)
	}
}

// ImportProducts runs the full pipeline: detect, parse, validate, then
// persist each record independently via store. A per-row persistence failure
// is counted and recorded as "name: reason" but never aborts the batch; rows
// already persisted stay persisted.
func ImportProducts(ctx context.Context, store ProductStore, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	if opts.CurrencyCode == "" {
		opts.CurrencyCode = "USD"
	}

	format, records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Format: format, Total: len(records)}
	for i, rec := range records {
		v := BuildProduct(rec)
		if err := store.CreateProduct(ctx, ToEntity(&v, opts.CurrencyCode)); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", v.Name, err))
		} else {
			result.Imported++
		}
		if opts.Progress != nil {
			opts.Progress(i+1, len(records))
		}
	}
	return result, nil
}

// jsonList marshals a string list as a JSON column value, [] when empty.
func jsonList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

// ToEntity maps a validated record onto the products table row shape.
func ToEntity(v *ValidatedProductRecord, currency string) *productEntity.Product {
	return &productEntity.Product{
		Name:          v.Name,
		NameAr:        v.NameAr,
		Slug:          v.Slug,
		Description:   v.Description,
		DescriptionAr: v.DescriptionAr,
		Category:      v.Category,
		Subcategory:   v.Subcategory,
		Price:         v.Price,
		ComparePrice:  v.ComparePrice,
		Currency:      currency,
		SKU:           v.SKU,
		StockQuantity: v.StockQuantity,
		FeaturedImage: v.FeaturedImage,
		Images:        jsonList(v.Images),
		Tags:          jsonList(v.Tags),
		IsFeatured:    v.IsFeatured,
		IsOnSale:      v.IsOnSale,
		IsNew:         v.IsNew,
		IsActive:      true,
		ProductType:   "simple",
		Weight:        v.Weight,
		Dimensions:    v.Dimensions,
	}
}
