package jobs

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	productRepo "storefront.GO/model/repository/product"
	productService "storefront.GO/service/product"
)

// OpenDB is injected at startup (cron scheduler, cmd) so this package does
// not import config, which itself references the job table.
var OpenDB func() (*gorm.DB, error)

// ImportWatchJob scans a drop directory for CSV files and imports each one,
// moving processed files into done/ or failed/. The directory comes from the
// first arg, or the IMPORT_WATCH_DIR env var.
func ImportWatchJob(args ...string) {
	dir := os.Getenv("IMPORT_WATCH_DIR")
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	if dir == "" {
		return
	}
	if OpenDB == nil {
		log.Println("importwatch: no DB opener configured, skipping")
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("importwatch: read %s: %v", dir, err)
		return
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return
	}

	db, err := OpenDB()
	if err != nil {
		log.Printf("importwatch: db: %v", err)
		return
	}
	store := productRepo.NewProductRepository(db)

	for _, name := range files {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			log.Printf("importwatch: open %s: %v", name, err)
			continue
		}
		res, err := productService.ImportProducts(context.Background(), store, f, productService.ImportOptions{})
		f.Close()

		target := "done"
		if err != nil || (res != nil && res.Failed > 0) {
			target = "failed"
		}
		if err != nil {
			log.Printf("importwatch: %s: %v", name, err)
		} else {
			log.Printf("importwatch: %s: format=%s imported=%d failed=%d", name, res.Format, res.Imported, res.Failed)
			for _, rowErr := range res.Errors {
				log.Printf("importwatch:   [row] %s", rowErr)
			}
		}

		dest := filepath.Join(dir, target)
		if err := os.MkdirAll(dest, 0755); err != nil {
			log.Printf("importwatch: mkdir %s: %v", dest, err)
			continue
		}
		if err := os.Rename(path, filepath.Join(dest, name)); err != nil {
			log.Printf("importwatch: move %s: %v", name, err)
		}
	}
}
