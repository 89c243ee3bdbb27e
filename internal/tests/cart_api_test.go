// internal/tests/cart_api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/boomapp/boom-backend/internal/config"
	"github.com/boomapp/boom-backend/internal/handlers"
	"github.com/boomapp/boom-backend/internal/metrics"
	"github.com/boomapp/boom-backend/internal/middleware"
	"github.com/boomapp/boom-backend/internal/models"
	"github.com/boomapp/boom-backend/internal/session"
	"github.com/boomapp/boom-backend/internal/utils"
)

// fakeCatalog serves products from memory so the API suite runs
// without a database.
type fakeCatalog struct {
	products map[uuid.UUID]models.Product
}

func (f *fakeCatalog) GetProduct(id uuid.UUID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return &product, nil
}

type ShopAPITestSuite struct {
	suite.Suite
	router  *gin.Engine
	token   string
	sneaker models.Product
	hoodie  models.Product
}

func (suite *ShopAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")

	suite.sneaker = models.Product{
		Name:           "Air Boom 1",
		Brand:          "BoomWear",
		Price:          129.99,
		AvailableSizes: pq.StringArray{"42", "43"},
	}
	suite.sneaker.ID = uuid.New()

	suite.hoodie = models.Product{
		Name:  "Night Hoodie",
		Brand: "Urbana",
		Price: 59,
	}
	suite.hoodie.ID = uuid.New()

	catalog := &fakeCatalog{products: map[uuid.UUID]models.Product{
		suite.sneaker.ID: suite.sneaker,
		suite.hoodie.ID:  suite.hoodie,
	}}

	cfg := &config.Config{
		Environment: "development",
		JWT:         config.JWTConfig{SessionTTL: 1},
		Engagement: config.EngagementConfig{
			EnergyMax:         1000,
			LikePoints:        10,
			CommentPoints:     25,
			SharePoints:       50,
			PostPoints:        100,
			FeedbackTTLMillis: 2500,
		},
	}

	manager := session.NewManager(cfg.Engagement.EnergyMax, time.Hour, time.Hour)
	registry := metrics.NewRegistry()

	points := session.PointsTable{
		session.ActionLike:    cfg.Engagement.LikePoints,
		session.ActionComment: cfg.Engagement.CommentPoints,
		session.ActionShare:   cfg.Engagement.SharePoints,
		session.ActionPost:    cfg.Engagement.PostPoints,
	}

	sessionHandler := handlers.NewSessionHandler(manager, cfg, registry)
	cartHandler := handlers.NewCartHandler(catalog, registry)
	favoritesHandler := handlers.NewFavoritesHandler(catalog, registry)
	energyHandler := handlers.NewEnergyHandler(points, registry)

	suite.router = gin.New()
	v1 := suite.router.Group("/v1")
	v1.POST("/sessions", sessionHandler.CreateSession)

	protected := v1.Group("")
	protected.Use(middleware.SessionRequired(manager))
	{
		protected.GET("/sessions/me", sessionHandler.GetSession)
		protected.GET("/cart", cartHandler.GetCart)
		protected.DELETE("/cart", cartHandler.ClearCart)
		protected.POST("/cart/items", cartHandler.AddItem)
		protected.PUT("/cart/items/:productId", cartHandler.UpdateItem)
		protected.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
		protected.GET("/favorites", favoritesHandler.GetFavorites)
		protected.POST("/favorites/toggle", favoritesHandler.ToggleFavorite)
		protected.GET("/feedback", cartHandler.GetFeedback)
		protected.DELETE("/feedback", cartHandler.DismissFeedback)
		protected.GET("/energy", energyHandler.GetEnergy)
		protected.POST("/energy/actions", energyHandler.PerformAction)
	}
}

// SetupTest opens a fresh session so tests never share cart state.
func (suite *ShopAPITestSuite) SetupTest() {
	w := suite.request("POST", "/v1/sessions", nil, "")
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	data := suite.data(w)
	suite.token = data["token"].(string)
	assert.NotEmpty(suite.T(), suite.token)
	assert.InDelta(suite.T(), 1000, data["energy_max"].(float64), 1e-9)
	assert.InDelta(suite.T(), 2500, data["feedback_ttl_ms"].(float64), 1e-9)
}

func (suite *ShopAPITestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ShopAPITestSuite) data(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response["success"].(bool))

	data, _ := response["data"].(map[string]interface{})
	return data
}

func (suite *ShopAPITestSuite) TestCartRequiresSession() {
	w := suite.request("GET", "/v1/cart", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.request("GET", "/v1/cart", nil, "not-a-token")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ShopAPITestSuite) TestAddSameProductTwice() {
	body := map[string]interface{}{
		"product_id": suite.sneaker.ID.String(),
		"quantity":   1,
	}

	w := suite.request("POST", "/v1/cart/items", body, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.data(w)
	assert.InDelta(suite.T(), 1, data["cart_count"].(float64), 1e-9)
	feedback := data["feedback"].(map[string]interface{})
	assert.Equal(suite.T(), "cart-added", feedback["kind"])

	body["quantity"] = 2
	w = suite.request("POST", "/v1/cart/items", body, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data = suite.data(w)
	assert.InDelta(suite.T(), 3, data["cart_count"].(float64), 1e-9)
	items := data["items"].([]interface{})
	assert.Len(suite.T(), items, 1)
	feedback = data["feedback"].(map[string]interface{})
	assert.Equal(suite.T(), "cart-updated", feedback["kind"])
}

func (suite *ShopAPITestSuite) TestAddUnknownProductIsNotFound() {
	body := map[string]interface{}{
		"product_id": uuid.New().String(),
		"quantity":   1,
	}

	w := suite.request("POST", "/v1/cart/items", body, suite.token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ShopAPITestSuite) TestUpdateQuantityToZeroRemovesLine() {
	body := map[string]interface{}{
		"product_id": suite.sneaker.ID.String(),
		"quantity":   2,
	}
	suite.request("POST", "/v1/cart/items", body, suite.token)

	w := suite.request("PUT", "/v1/cart/items/"+suite.sneaker.ID.String(),
		map[string]interface{}{"quantity": 0}, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.data(w)
	assert.Empty(suite.T(), data["items"])
	assert.InDelta(suite.T(), 0, data["cart_count"].(float64), 1e-9)
}

func (suite *ShopAPITestSuite) TestRemoveUnknownProductIsSilent() {
	w := suite.request("DELETE", "/v1/cart/items/"+uuid.New().String(), nil, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/feedback", nil, suite.token)
	data := suite.data(w)
	assert.Nil(suite.T(), data["feedback"])
}

func (suite *ShopAPITestSuite) TestToggleFavorite() {
	body := map[string]interface{}{"product_id": suite.hoodie.ID.String()}

	w := suite.request("POST", "/v1/favorites/toggle", body, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.data(w)
	assert.True(suite.T(), data["is_favorite"].(bool))
	assert.InDelta(suite.T(), 1, data["favorite_count"].(float64), 1e-9)

	w = suite.request("POST", "/v1/favorites/toggle", body, suite.token)
	data = suite.data(w)
	assert.False(suite.T(), data["is_favorite"].(bool))
	assert.InDelta(suite.T(), 0, data["favorite_count"].(float64), 1e-9)
}

func (suite *ShopAPITestSuite) TestFeedbackIsSingleSlotAndDismissable() {
	suite.request("POST", "/v1/favorites/toggle",
		map[string]interface{}{"product_id": suite.hoodie.ID.String()}, suite.token)
	suite.request("POST", "/v1/cart/items",
		map[string]interface{}{"product_id": suite.sneaker.ID.String(), "quantity": 1}, suite.token)

	w := suite.request("GET", "/v1/feedback", nil, suite.token)
	data := suite.data(w)
	feedback := data["feedback"].(map[string]interface{})
	assert.Equal(suite.T(), "cart-added", feedback["kind"])

	w = suite.request("DELETE", "/v1/feedback", nil, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/feedback", nil, suite.token)
	data = suite.data(w)
	assert.Nil(suite.T(), data["feedback"])
}

func (suite *ShopAPITestSuite) TestEnergyActions() {
	w := suite.request("POST", "/v1/energy/actions",
		map[string]interface{}{"action": "like"}, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.data(w)
	assert.InDelta(suite.T(), 10, data["energy"].(float64), 1e-9)
	assert.InDelta(suite.T(), 0, data["coins"].(float64), 1e-9)

	w = suite.request("POST", "/v1/energy/actions",
		map[string]interface{}{"action": "jump"}, suite.token)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.request("GET", "/v1/energy", nil, suite.token)
	data = suite.data(w)
	assert.InDelta(suite.T(), 10, data["energy"].(float64), 1e-9)
}

func TestShopAPISuite(t *testing.T) {
	suite.Run(t, new(ShopAPITestSuite))
}
