package httpserver

import (
	"net/http"

	"storefront-api/internal/service/address"
	"github.com/gin-gonic/gin"
)

func listAddressesHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		addrs, err := svc.List(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, addrs)
	}
}

func addAddressHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req address.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		a, err := svc.Create(c.Request.Context(), currentUser(c).ID, req)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, a)
	}
}

func updateAddressHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req address.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		a, err := svc.Update(c.Request.Context(), currentUser(c).ID, c.Param("addressId"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, a)
	}
}

func deleteAddressHandler(svc AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), currentUser(c).ID, c.Param("addressId")); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, "address deleted")
	}
}
