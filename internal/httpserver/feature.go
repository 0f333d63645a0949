package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addFeatureRequest struct {
	Image string `json:"image" binding:"required"`
}

func listFeaturesHandler(svc FeatureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, images)
	}
}

func addFeatureHandler(svc FeatureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addFeatureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		img, err := svc.Add(c.Request.Context(), req.Image)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, img)
	}
}

func deleteFeatureHandler(svc FeatureService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, "feature image deleted")
	}
}
