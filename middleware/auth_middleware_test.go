package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func protectedRouter(tokens TokenValidator, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{RequireAuth(tokens)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c).String()})
	})
	router.GET("/protected", chain...)
	return router
}

func TestRequireAuth(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	t.Run("No Cookie - 401", func(t *testing.T) {
		router := protectedRouter(tokens)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Garbage Cookie - 401", func(t *testing.T) {
		router := protectedRouter(tokens)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Valid Cookie - Identity In Context", func(t *testing.T) {
		router := protectedRouter(tokens)

		tokenStr, err := tokens.GenerateSessionToken(userID, "alice@example.com", models.RoleCustomer)
		assert.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenStr})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), userID.String())
	})
}

func TestRequireRole(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)

	t.Run("Customer Hitting Admin Route - Bare 403", func(t *testing.T) {
		router := protectedRouter(tokens, RequireRole(models.RoleAdmin))

		tokenStr, _ := tokens.GenerateSessionToken(uuid.New(), "alice@example.com", models.RoleCustomer)
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenStr})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	t.Run("Admin Passes", func(t *testing.T) {
		router := protectedRouter(tokens, RequireRole(models.RoleAdmin))

		tokenStr, _ := tokens.GenerateSessionToken(uuid.New(), "admin@example.com", models.RoleAdmin)
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tokenStr})
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
