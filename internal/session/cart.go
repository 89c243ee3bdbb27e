// internal/session/cart.go
package session

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/boomapp/boom-backend/internal/models"
)

type FeedbackKind string

const (
	FeedbackFavoriteAdded   FeedbackKind = "favorite-added"
	FeedbackFavoriteRemoved FeedbackKind = "favorite-removed"
	FeedbackCartAdded       FeedbackKind = "cart-added"
	FeedbackCartUpdated     FeedbackKind = "cart-updated"
)

// FeedbackEvent is a single-slot toast notification. Only the latest
// event is retained; the client dismisses it after its display timer.
type FeedbackEvent struct {
	ID      int64        `json:"id"`
	Message string       `json:"message"`
	Kind    FeedbackKind `json:"kind"`
}

// CartLineItem aggregates one product in the cart. At most one line
// exists per product; repeated adds bump Quantity instead.
type CartLineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Image     string    `json:"image"`
	Size      string    `json:"size"`
	Price     float64   `json:"price"`
	// Price scaled to the local display currency (price x 1000,
	// rounded half-up to a whole unit).
	PriceLocal int64 `json:"price_local"`
	// Price in the alternate currency (price / 2, rounded half-up to
	// 2 decimals).
	PriceAltCurrency float64 `json:"price_alt_currency"`
	Quantity         int     `json:"quantity"`
}

// CartStore is the single source of truth for one session's favorites
// and cart. Every input is normalized instead of rejected: unknown ids
// are no-ops, quantities are clamped, and no operation returns an
// error. Callers serialize access through the owning Session.
type CartStore struct {
	favorites []models.Product
	favorite  map[uuid.UUID]struct{}
	items     []CartLineItem
	feedback  *FeedbackEvent
	lastID    int64
}

func NewCartStore() *CartStore {
	return &CartStore{
		favorite: make(map[uuid.UUID]struct{}),
	}
}

func (s *CartStore) IsFavorite(productID uuid.UUID) bool {
	_, ok := s.favorite[productID]
	return ok
}

// ToggleFavorite flips membership of product in the favorite set and
// emits a feedback event either way. Toggling twice restores the
// original state.
func (s *CartStore) ToggleFavorite(product models.Product) {
	if s.IsFavorite(product.ID) {
		delete(s.favorite, product.ID)
		for i, p := range s.favorites {
			if p.ID == product.ID {
				s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
				break
			}
		}
		s.emit(FeedbackFavoriteRemoved, fmt.Sprintf("%s removed from favorites", product.Name))
		return
	}

	s.favorite[product.ID] = struct{}{}
	s.favorites = append(s.favorites, product)
	s.emit(FeedbackFavoriteAdded, fmt.Sprintf("%s added to favorites", product.Name))
}

// Favorites returns the favorite set in insertion order.
func (s *CartStore) Favorites() []models.Product {
	out := make([]models.Product, len(s.favorites))
	copy(out, s.favorites)
	return out
}

func (s *CartStore) FavoriteCount() int {
	return len(s.favorites)
}

// AddToCart adds quantity units of product. The quantity is floored to
// an integer and clamped to at least 1 before use. An existing line
// item has its quantity increased; otherwise a new line is created
// with the derived pricing fields.
func (s *CartStore) AddToCart(product models.Product, quantity float64) {
	qty := int(math.Floor(quantity))
	if qty < 1 {
		qty = 1
	}

	if item := s.findItem(product.ID); item != nil {
		item.Quantity += qty
		s.emit(FeedbackCartUpdated, fmt.Sprintf("%s quantity updated to %d", product.Name, item.Quantity))
		return
	}

	price := decimal.NewFromFloat(product.Price)
	priceLocal := price.Mul(decimal.NewFromInt(1000)).Round(0).IntPart()
	priceAlt, _ := price.Div(decimal.NewFromInt(2)).Round(2).Float64()

	s.items = append(s.items, CartLineItem{
		ProductID:        product.ID,
		Name:             product.Name,
		Brand:            product.Brand,
		Image:            product.Image,
		Size:             product.FirstSize(),
		Price:            product.Price,
		PriceLocal:       priceLocal,
		PriceAltCurrency: priceAlt,
		Quantity:         qty,
	})

	if qty > 1 {
		s.emit(FeedbackCartAdded, fmt.Sprintf("Added %d x %s to cart", qty, product.Name))
	} else {
		s.emit(FeedbackCartAdded, fmt.Sprintf("%s added to cart", product.Name))
	}
}

// RemoveFromCart deletes the line item for productID. Removing an
// absent product does nothing and emits no feedback.
func (s *CartStore) RemoveFromCart(productID uuid.UUID) {
	for i, item := range s.items {
		if item.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateCartItemQuantity sets the quantity for an existing line item.
// A quantity of zero or less removes the line entirely; a line item
// never survives with quantity below 1. Unknown ids are no-ops.
func (s *CartStore) UpdateCartItemQuantity(productID uuid.UUID, quantity int) {
	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		return
	}
}

// ClearCart empties the cart without touching favorites or feedback.
func (s *CartStore) ClearCart() {
	s.items = nil
}

func (s *CartStore) CartItems() []CartLineItem {
	out := make([]CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// CartCount is the total unit count across all lines, not the number
// of distinct lines.
func (s *CartStore) CartCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the cart total in the base currency, rounded half-up to
// 2 decimals.
func (s *CartStore) Subtotal() float64 {
	total := decimal.Zero
	for _, item := range s.items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	subtotal, _ := total.Round(2).Float64()
	return subtotal
}

// Feedback returns the pending event, or nil when none is pending.
func (s *CartStore) Feedback() *FeedbackEvent {
	if s.feedback == nil {
		return nil
	}
	event := *s.feedback
	return &event
}

// DismissFeedback clears the pending event. Safe to call repeatedly.
func (s *CartStore) DismissFeedback() {
	s.feedback = nil
}

func (s *CartStore) findItem(productID uuid.UUID) *CartLineItem {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return &s.items[i]
		}
	}
	return nil
}

// emit replaces any pending feedback event. IDs are strictly
// increasing even when two mutations land in the same millisecond.
func (s *CartStore) emit(kind FeedbackKind, message string) {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.feedback = &FeedbackEvent{
		ID:      id,
		Message: message,
		Kind:    kind,
	}
}
