package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock Service ---

type MockCartService struct{ mock.Mock }

func (m *MockCartService) AddItem(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, *services.ServiceError) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).(*models.CartItem), nil
}
func (m *MockCartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, *services.ServiceError) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).(*models.CartView), nil
}
func (m *MockCartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) *services.ServiceError {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*services.ServiceError)
}

// --- Tests ---

func TestGetCartController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	t.Run("Returns Items And Total", func(t *testing.T) {
		mockService := new(MockCartService)
		cc := NewCartController(mockService)

		view := &models.CartView{
			Items: []models.CartItem{{ID: uuid.New(), Label: "Widget", UserID: userID}},
			Total: 10,
		}
		mockService.On("GetCart", mock.Anything, userID).Return(view, nil).Once()

		router := gin.New()
		router.GET("/cart", withUser(userID), cc.GetCart)

		req, _ := http.NewRequest(http.MethodGet, "/cart", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total":10`)
		assert.Contains(t, recorder.Body.String(), "Widget")
		mockService.AssertExpectations(t)
	})
}

func TestAddItemController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Success - 201", func(t *testing.T) {
		mockService := new(MockCartService)
		cc := NewCartController(mockService)

		item := &models.CartItem{ID: uuid.New(), Label: "Widget", ProductID: productID, UserID: userID}
		mockService.On("AddItem", mock.Anything, userID, productID).Return(item, nil).Once()

		router := gin.New()
		router.POST("/cart/items/:product_id", withUser(userID), cc.AddItem)

		req, _ := http.NewRequest(http.MethodPost, "/cart/items/"+productID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Widget added to shopping cart")
	})

	t.Run("Unknown Product - 404", func(t *testing.T) {
		mockService := new(MockCartService)
		cc := NewCartController(mockService)

		mockService.On("AddItem", mock.Anything, userID, productID).
			Return(nil, services.ErrProductNotFound).Once()

		router := gin.New()
		router.POST("/cart/items/:product_id", withUser(userID), cc.AddItem)

		req, _ := http.NewRequest(http.MethodPost, "/cart/items/"+productID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Invalid Product ID - 400", func(t *testing.T) {
		mockService := new(MockCartService)
		cc := NewCartController(mockService)

		router := gin.New()
		router.POST("/cart/items/:product_id", withUser(userID), cc.AddItem)

		req, _ := http.NewRequest(http.MethodPost, "/cart/items/garbage", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "AddItem")
	})
}

func TestRemoveItemController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Already Removed - 404", func(t *testing.T) {
		mockService := new(MockCartService)
		cc := NewCartController(mockService)

		mockService.On("RemoveItem", mock.Anything, userID, productID).
			Return(services.ErrCartItemNotFound).Once()

		router := gin.New()
		router.DELETE("/cart/items/:product_id", withUser(userID), cc.RemoveItem)

		req, _ := http.NewRequest(http.MethodDelete, "/cart/items/"+productID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
