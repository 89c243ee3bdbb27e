// internal/session/cart_test.go
package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/boomapp/boom-backend/internal/models"
)

func newTestProduct(name string, price float64, sizes ...string) models.Product {
	p := models.Product{
		Name:  name,
		Brand: "Boom",
		Price: price,
		Image: "https://cdn.example.com/" + name + ".png",
	}
	p.ID = uuid.New()
	if len(sizes) > 0 {
		p.AvailableSizes = pq.StringArray(sizes)
	}
	return p
}

func TestToggleFavoriteIsInvolution(t *testing.T) {
	store := NewCartStore()
	sneaker := newTestProduct("Air Boom 1", 120, "42", "43")

	assert.False(t, store.IsFavorite(sneaker.ID))

	store.ToggleFavorite(sneaker)
	assert.True(t, store.IsFavorite(sneaker.ID))
	assert.Equal(t, 1, store.FavoriteCount())
	assert.Equal(t, FeedbackFavoriteAdded, store.Feedback().Kind)
	assert.Contains(t, store.Feedback().Message, "Air Boom 1")

	store.ToggleFavorite(sneaker)
	assert.False(t, store.IsFavorite(sneaker.ID))
	assert.Equal(t, 0, store.FavoriteCount())
	assert.Empty(t, store.Favorites())
	assert.Equal(t, FeedbackFavoriteRemoved, store.Feedback().Kind)
}

func TestFavoritesKeepInsertionOrderWithoutDuplicates(t *testing.T) {
	store := NewCartStore()
	first := newTestProduct("First", 10)
	second := newTestProduct("Second", 20)
	third := newTestProduct("Third", 30)

	store.ToggleFavorite(first)
	store.ToggleFavorite(second)
	store.ToggleFavorite(third)
	store.ToggleFavorite(second) // remove the middle one

	favorites := store.Favorites()
	assert.Len(t, favorites, 2)
	assert.Equal(t, first.ID, favorites[0].ID)
	assert.Equal(t, third.ID, favorites[1].ID)
	assert.Equal(t, len(favorites), store.FavoriteCount())
}

func TestAddToCartDerivedFields(t *testing.T) {
	store := NewCartStore()
	sneaker := newTestProduct("Air Boom 1", 129.99, "42", "43")

	store.AddToCart(sneaker, 1)

	items := store.CartItems()
	assert.Len(t, items, 1)
	assert.Equal(t, "42", items[0].Size)
	assert.Equal(t, int64(129990), items[0].PriceLocal)
	assert.InDelta(t, 65.0, items[0].PriceAltCurrency, 1e-9)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, FeedbackCartAdded, store.Feedback().Kind)
	assert.Contains(t, store.Feedback().Message, "added to cart")
}

func TestAddToCartDefaultsToOneSize(t *testing.T) {
	store := NewCartStore()
	scarf := newTestProduct("Scarf", 19.99)

	store.AddToCart(scarf, 1)

	assert.Equal(t, models.DefaultSize, store.CartItems()[0].Size)
}

func TestAddToCartFloorsAndClampsQuantity(t *testing.T) {
	store := NewCartStore()
	sneaker := newTestProduct("Air Boom 1", 100)

	store.AddToCart(sneaker, 2.9) // floored to 2
	assert.Equal(t, 2, store.CartItems()[0].Quantity)
	assert.Contains(t, store.Feedback().Message, "2")

	store.ClearCart()
	store.AddToCart(sneaker, -5) // clamped to 1
	assert.Equal(t, 1, store.CartItems()[0].Quantity)

	store.ClearCart()
	store.AddToCart(sneaker, 0)
	assert.Equal(t, 1, store.CartItems()[0].Quantity)
}

func TestAddSameProductTwice(t *testing.T) {
	store := NewCartStore()
	sneaker := newTestProduct("Air Boom 1", 100)

	store.AddToCart(sneaker, 1)
	assert.Len(t, store.CartItems(), 1)
	assert.Equal(t, FeedbackCartAdded, store.Feedback().Kind)

	store.AddToCart(sneaker, 2)
	items := store.CartItems()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, store.CartCount())
	assert.Equal(t, FeedbackCartUpdated, store.Feedback().Kind)
	assert.Contains(t, store.Feedback().Message, "3")
}

func TestCartCountSumsQuantities(t *testing.T) {
	store := NewCartStore()
	a := newTestProduct("A", 10)
	b := newTestProduct("B", 20)

	store.AddToCart(a, 2)
	store.AddToCart(b, 3)

	assert.Len(t, store.CartItems(), 2)
	assert.Equal(t, 5, store.CartCount())
}

func TestUpdateCartItemQuantity(t *testing.T) {
	store := NewCartStore()
	sneaker := newTestProduct("Air Boom 1", 100)
	store.AddToCart(sneaker, 1)

	store.UpdateCartItemQuantity(sneaker.ID, 4)
	assert.Equal(t, 4, store.CartItems()[0].Quantity)

	// Driving quantity to zero removes the line, never retains it
	store.UpdateCartItemQuantity(sneaker.ID, 0)
	assert.Empty(t, store.CartItems())

	store.AddToCart(sneaker, 1)
	store.UpdateCartItemQuantity(sneaker.ID, -2)
	assert.Empty(t, store.CartItems())

	// Unknown product is a no-op
	store.UpdateCartItemQuantity(uuid.New(), 5)
	assert.Empty(t, store.CartItems())
}

func TestQuantityAlwaysPositiveOrAbsent(t *testing.T) {
	store := NewCartStore()
	a := newTestProduct("A", 10)
	b := newTestProduct("B", 20)

	store.AddToCart(a, -1)
	store.AddToCart(b, 2)
	store.UpdateCartItemQuantity(a.ID, -3)
	store.AddToCart(a, 0.5)
	store.RemoveFromCart(b.ID)
	store.AddToCart(b, 4)
	store.UpdateCartItemQuantity(b.ID, 2)

	for _, item := range store.CartItems() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestRemoveFromCartUnknownProductIsSilent(t *testing.T) {
	store := NewCartStore()

	store.RemoveFromCart(uuid.New())

	assert.Empty(t, store.CartItems())
	assert.Nil(t, store.Feedback())
}

func TestClearCartKeepsFavoritesAndEmitsNothing(t *testing.T) {
	store := NewCartStore()
	sneaker := newTestProduct("Air Boom 1", 100)

	store.ToggleFavorite(sneaker)
	store.AddToCart(sneaker, 2)
	store.DismissFeedback()

	store.ClearCart()

	assert.Empty(t, store.CartItems())
	assert.Equal(t, 0, store.CartCount())
	assert.Equal(t, 1, store.FavoriteCount())
	assert.Nil(t, store.Feedback())
}

func TestFeedbackIsSingleSlot(t *testing.T) {
	store := NewCartStore()
	a := newTestProduct("A", 10)
	b := newTestProduct("B", 20)

	store.ToggleFavorite(a)
	first := store.Feedback()
	store.AddToCart(b, 1)
	second := store.Feedback()

	assert.Equal(t, FeedbackCartAdded, second.Kind)
	assert.Greater(t, second.ID, first.ID)

	store.DismissFeedback()
	assert.Nil(t, store.Feedback())
	store.DismissFeedback() // idempotent
	assert.Nil(t, store.Feedback())
}

func TestSubtotalRoundsToTwoDecimals(t *testing.T) {
	store := NewCartStore()
	a := newTestProduct("A", 10.555)
	b := newTestProduct("B", 0.1)

	store.AddToCart(a, 2)
	store.AddToCart(b, 3)

	// 21.11 + 0.30, half-up
	assert.InDelta(t, 21.41, store.Subtotal(), 1e-9)
}
