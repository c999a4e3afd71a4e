package controllers

import (
	"net/http"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	authService   services.AuthService
	tokens        *services.TokenService
	cookieMaxAge  int
	secureCookies bool
}

// NewAuthController creates a new AuthController. secureCookies should be
// true whenever the storefront is served over HTTPS.
func NewAuthController(authService services.AuthService, tokens *services.TokenService, cookieMaxAge int, secureCookies bool) *AuthController {
	return &AuthController{
		authService:   authService,
		tokens:        tokens,
		cookieMaxAge:  cookieMaxAge,
		secureCookies: secureCookies,
	}
}

// Register handles POST /auth/register. A successful registration also
// establishes a session, matching the login flow.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, svcErr := ac.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if !ac.setSessionCookie(c, user) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created",
		"user":    user,
	})
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, svcErr := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if !ac.setSessionCookie(c, user) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged in", "user": user})
}

// Logout handles POST /auth/logout. Clearing the cookie is unconditional.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ac.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, user *models.User) bool {
	token, err := ac.tokens.GenerateSessionToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
		return false
	}
	c.SetCookie(middleware.SessionCookie, token, ac.cookieMaxAge, "/", "", ac.secureCookies, true)
	return true
}
