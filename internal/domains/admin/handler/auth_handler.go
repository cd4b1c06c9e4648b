package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/domains/admin/model"
	"gallery-backend/internal/domains/admin/service"
	"gallery-backend/internal/shared/middleware"
	"gallery-backend/internal/shared/response"
)

// legacyCookieNames are session cookies set by earlier frontends.
// Logout clears all of them so stale variants cannot linger.
var legacyCookieNames = []string{
	middleware.AuthCookieName,
	"auth_session",
	"admin_session",
	"admin_token",
	"jwt",
}

type AuthHandler struct {
	service      service.AuthServiceInterface
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(svc service.AuthServiceInterface, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// Login - POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, result.Token, h.cookieMaxAge, "/", "", h.cookieSecure, true)

	response.Success(c, http.StatusOK, gin.H{"admin": result.Admin})
}

// Logout - POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	for _, name := range legacyCookieNames {
		c.SetCookie(name, "", -1, "/", "", h.cookieSecure, true)
	}

	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

// Check - GET /v1/auth/check (behind auth middleware)
func (h *AuthHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"authenticated": true,
		"admin": gin.H{
			"id":    c.GetString("adminID"),
			"email": c.GetString("adminEmail"),
			"name":  c.GetString("adminName"),
		},
	})
}
