package httpserver

import (
	"net/http"

	"storefront-api/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), catalog.ListParams{
			Category: c.Query("category"),
			Brand:    c.Query("brand"),
			SortBy:   c.Query("sortBy"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, products)
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, p)
	}
}

func searchProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Search(c.Request.Context(), c.Param("keyword"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, products)
	}
}
