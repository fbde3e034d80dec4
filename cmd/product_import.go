package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	productRepo "storefront.GO/model/repository/product"
	productService "storefront.GO/service/product"
)

var (
	importFile     string
	importCurrency string
	importDryRun   bool
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import products from a CSV file (standard, Shopify or WooCommerce export)",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		if importDryRun {
			format, records, err := productService.ReadRecords(f)
			if err != nil {
				fmt.Printf("Parse failed: %v\n", err)
				return
			}
			fmt.Printf("Detected format: %s\n", format)
			fmt.Printf("Parsed %d product(s), nothing persisted (dry run)\n", len(records))
			for _, rec := range records {
				v := productService.BuildProduct(rec)
				fmt.Printf("  %-30s slug=%-30s price=%.2f stock=%d\n", v.Name, v.Slug, v.Price, v.StockQuantity)
			}
			return
		}

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		start := time.Now()
		res, err := productService.ImportProducts(context.Background(), productRepo.NewProductRepository(db), f, productService.ImportOptions{
			CurrencyCode: importCurrency,
			Progress: func(done, total int) {
				fmt.Printf("\r  %d/%d", done, total)
			},
		})
		fmt.Println()
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, e := range res.Errors {
			fmt.Printf("  [row error] %s\n", e)
		}
		if res.Total == 0 {
			fmt.Println("No valid product rows found in file.")
			return
		}

		fmt.Printf(`
=== Import Report ===
Format:     %s
Rows:       %d
Imported:   %d
Failed:     %d
Total time: %s
=====================
`, res.Format, res.Total, res.Imported, res.Failed, time.Since(start).Round(time.Millisecond))
	},
}

var templateFormat string

var templateCmd = &cobra.Command{
	Use:   "products:template",
	Short: "Print a starter CSV for one of the supported import formats",
	Run: func(cmd *cobra.Command, args []string) {
		format := productService.ParseSourceFormat(templateFormat)
		fmt.Print(productService.Template(format))
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().StringVar(&importCurrency, "currency", "", "Currency code for imported prices (default from config)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse and validate without persisting")
	rootCmd.AddCommand(importCmd)

	templateCmd.Flags().StringVar(&templateFormat, "format", "standard", "standard | shopify | woocommerce")
	rootCmd.AddCommand(templateCmd)
}
