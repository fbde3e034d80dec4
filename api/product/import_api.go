package product

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	"storefront.GO/api"
	"storefront.GO/config"
	productRepo "storefront.GO/model/repository/product"
	productService "storefront.GO/service/product"
)

func init() {
	api.RegisterModule(RegisterImportRoutes)
}

// importForm carries the optional multipart form fields next to the file.
// Decoded weakly typed — form values are always strings.
type importForm struct {
	Currency string `mapstructure:"currency"`
	DryRun   bool   `mapstructure:"dry_run"`
}

func RegisterImportRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/products/import")

	// POST /api/products/import – multipart CSV upload (auth required via /api middleware)
	g.POST("", func(c echo.Context) error {
		start := time.Now()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "file field is required"})
		}
		f, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		defer f.Close()

		var form importForm
		if values, err := c.FormParams(); err == nil {
			raw := make(map[string]interface{}, len(values))
			for k, v := range values {
				if len(v) > 0 {
					raw[k] = v[0]
				}
			}
			dec, _ := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				WeaklyTypedInput: true,
				Result:           &form,
			})
			if err := dec.Decode(raw); err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
		}
		if form.Currency == "" {
			form.Currency = config.DefaultCurrency()
		}

		if form.DryRun {
			format, records, err := productService.ReadRecords(f)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, echo.Map{
				"dry_run": true,
				"format":  format.String(),
				"total":   len(records),
			})
		}

		progressKey := fmt.Sprintf("import:progress:%d", start.UnixNano())
		opts := productService.ImportOptions{
			CurrencyCode: form.Currency,
			Progress:     redisProgress(progressKey),
		}

		res, err := productService.ImportProducts(c.Request().Context(), productRepo.NewProductRepository(db), f, opts)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		body := echo.Map{
			"format":              res.Format.String(),
			"total":               res.Total,
			"imported":            res.Imported,
			"failed":              res.Failed,
			"errors":              res.Errors,
			"request_duration_ms": duration,
		}
		if res.Total == 0 {
			// empty file or no valid rows — a notice, not an error
			body["message"] = "no valid product rows found in file"
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, body)
	})

	// GET /api/products/import/template?format=standard|shopify|woocommerce
	g.GET("/template", func(c echo.Context) error {
		format := productService.ParseSourceFormat(c.QueryParam("format"))
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="products-%s-template.csv"`, format))
		return c.Blob(http.StatusOK, "text/csv", []byte(productService.Template(format)))
	})
}

// redisProgress writes "done/total" percentage under key when Redis is
// configured, and is a no-op otherwise.
func redisProgress(key string) func(done, total int) {
	if config.RedisClient == nil {
		return nil
	}
	return func(done, total int) {
		pct := 0
		if total > 0 {
			pct = done * 100 / total
		}
		config.RedisClient.Set(config.RedisCtx(), key, pct, 30*time.Minute)
	}
}
