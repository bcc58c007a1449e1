package handler

import (
	"net/http"

	"orgsite-backend/internal/middleware"
	"orgsite-backend/internal/services"
	"orgsite-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication. The session token travels
// as an HttpOnly cookie so the admin panel needs no token plumbing.
type AuthHandler struct {
	service *services.AuthService
	secure  bool
}

func NewAuthHandler(service *services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, secure: secureCookies}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	token, ttl, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("invalid credentials", "UNAUTHORIZED"))
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AdminAuthCookie, token, int(ttl.Seconds()), "/", "", h.secure, true)
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.AuthStatusResponse{Authenticated: true}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AdminAuthCookie, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "logged out"}))
}

// Check reports whether the request carries a valid admin session. It
// never returns an error status; the admin UI polls it on load.
func (h *AuthHandler) Check(c *gin.Context) {
	token := middleware.ExtractAdminToken(c)
	authenticated := h.service.ValidateToken(token) == nil
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.AuthStatusResponse{Authenticated: authenticated}))
}
