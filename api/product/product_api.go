package product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	categoryRepo "storefront.GO/model/repository/category"
	productRepo "storefront.GO/model/repository/product"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

// RegisterProductRoutes exposes catalog reads (public per auth skipper).
func RegisterProductRoutes(apiGroup *echo.Group, db *gorm.DB) {
	products := productRepo.NewProductRepository(db)
	categories := categoryRepo.NewCategoryRepository(db)

	apiGroup.GET("/products", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		items, err := products.List(c.Request().Context(), c.QueryParam("category"), limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
	})

	apiGroup.GET("/products/:slug", func(c echo.Context) error {
		p, err := products.GetBySlug(c.Request().Context(), c.Param("slug"))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, p)
	})

	apiGroup.GET("/categories", func(c echo.Context) error {
		cats, err := categories.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": cats, "count": len(cats)})
	})
}
