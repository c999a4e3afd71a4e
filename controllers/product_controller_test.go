package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/middleware"
	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock Service ---

type MockCatalogService struct{ mock.Mock }

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]models.Product, *services.ServiceError) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).([]models.Product), nil
}
func (m *MockCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *services.ServiceError) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).(*models.Product), nil
}
func (m *MockCatalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *services.ServiceError) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).(*models.Product), nil
}

// withRole fakes an authenticated session with the given role, the way
// RequireAuth would populate the context.
func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, uuid.New())
		c.Set(middleware.ContextRoleKey, role)
		c.Next()
	}
}

// --- Tests ---

func TestCreateProductController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Admin Creates Product - 201", func(t *testing.T) {
		mockService := new(MockCatalogService)
		pc := NewProductController(mockService)

		created := &models.Product{ID: uuid.New(), Name: "Widget", Price: 10}
		mockService.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(created, nil).Once()

		router := gin.New()
		router.POST("/products", withRole(models.RoleAdmin), middleware.RequireRole(models.RoleAdmin), pc.CreateProduct)

		payload := `{"name": "Widget", "price": 10}`
		req, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Widget")
		mockService.AssertExpectations(t)
	})

	t.Run("Non-Admin Is Forbidden, No Row Created", func(t *testing.T) {
		mockService := new(MockCatalogService)
		pc := NewProductController(mockService)

		router := gin.New()
		router.POST("/products", withRole(models.RoleCustomer), middleware.RequireRole(models.RoleAdmin), pc.CreateProduct)

		payload := `{"name": "Widget", "price": 10}`
		req, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Empty(t, recorder.Body.String())
		mockService.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Duplicate Name - 409", func(t *testing.T) {
		mockService := new(MockCatalogService)
		pc := NewProductController(mockService)

		mockService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, services.ErrDuplicateName).Once()

		router := gin.New()
		router.POST("/products", withRole(models.RoleAdmin), middleware.RequireRole(models.RoleAdmin), pc.CreateProduct)

		payload := `{"name": "Widget", "price": 10}`
		req, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("Invalid Price - 400", func(t *testing.T) {
		mockService := new(MockCatalogService)
		pc := NewProductController(mockService)

		router := gin.New()
		router.POST("/products", withRole(models.RoleAdmin), middleware.RequireRole(models.RoleAdmin), pc.CreateProduct)

		payload := `{"name": "Widget", "price": -5}`
		req, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "CreateProduct")
	})
}

func TestGetProductController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Invalid ID - 400", func(t *testing.T) {
		mockService := new(MockCatalogService)
		pc := NewProductController(mockService)

		router := gin.New()
		router.GET("/products/:id", pc.GetProduct)

		req, _ := http.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Not Found - 404", func(t *testing.T) {
		mockService := new(MockCatalogService)
		pc := NewProductController(mockService)

		id := uuid.New()
		mockService.On("GetProduct", mock.Anything, id).Return(nil, services.ErrProductNotFound).Once()

		router := gin.New()
		router.GET("/products/:id", pc.GetProduct)

		req, _ := http.NewRequest(http.MethodGet, "/products/"+id.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
