package httpserver

import (
	"net/http"

	"storefront-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

func registerHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		u, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, u)
	}
}

func loginHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		u, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, loginResponse{User: u, Token: token})
	}
}

func logoutHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("authToken")
		if err := svc.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
		respondMessage(c, http.StatusOK, "logged out")
	}
}

func checkAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		respondData(c, http.StatusOK, currentUser(c))
	}
}
