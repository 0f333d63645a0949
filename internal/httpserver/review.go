package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addReviewRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	ReviewMessage string `json:"reviewMessage"`
	ReviewValue   int    `json:"reviewValue"`
}

func addReviewHandler(svc ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		user := currentUser(c)
		review, err := svc.Add(c.Request.Context(), user.ID, user.UserName, req.ProductID, req.ReviewMessage, req.ReviewValue)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, review)
	}
}

func listReviewsHandler(svc ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := svc.ListByProduct(c.Request.Context(), c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, reviews)
	}
}
