package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-storefront-backend/internal/catalog"
	"solar-storefront-backend/models"
	"solar-storefront-backend/utils"
)

// SetupCatalogRoutes registers the read-only product catalog endpoints.
func SetupCatalogRoutes(router *gin.Engine, store catalog.Store) {
	api := router.Group("/api")
	{
		api.GET("/products", func(c *gin.Context) {
			products, err := store.ListProducts(c.Request.Context())
			if err != nil {
				utils.RespondWithInternalError(c, "failed to list products", nil)
				return
			}

			if raw := c.Query("category"); raw != "" {
				category := models.Category(raw)
				if !category.IsValid() {
					utils.RespondWithBadRequest(c, "unknown category", raw)
					return
				}
				filtered := make([]models.Product, 0, len(products))
				for _, p := range products {
					if p.Category == category {
						filtered = append(filtered, p)
					}
				}
				products = filtered
			}

			c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
		})

		api.GET("/products/:id", func(c *gin.Context) {
			product, err := store.GetProduct(c.Request.Context(), c.Param("id"))
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					utils.RespondWithNotFound(c, "product not found")
					return
				}
				utils.RespondWithInternalError(c, "failed to fetch product", nil)
				return
			}
			c.JSON(http.StatusOK, product)
		})

		api.GET("/categories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"categories": models.Categories()})
		})
	}
}
