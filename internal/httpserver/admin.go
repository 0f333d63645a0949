package httpserver

import (
	"net/http"

	"storefront-api/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func adminListProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), catalog.ListParams{})
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, products)
	}
}

func adminAddProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		p, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, p)
	}
}

func adminEditProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		p, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, p)
	}
}

func adminDeleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, "product deleted")
	}
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

func adminListOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, orders)
	}
}

func adminOrderDetailsHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetAny(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, order)
	}
}

func adminUpdateOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		order, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.OrderStatus)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, order)
	}
}
