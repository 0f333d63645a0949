package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func addCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		cart, err := svc.AddItem(c.Request.Context(), currentUser(c).ID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		cart, err := svc.SetQuantity(c.Request.Context(), currentUser(c).ID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(c.Request.Context(), currentUser(c).ID, c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}
