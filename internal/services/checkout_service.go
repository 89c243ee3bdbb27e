// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/boomapp/boom-backend/internal/config"
	"github.com/boomapp/boom-backend/internal/models"
	"github.com/boomapp/boom-backend/internal/session"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutService struct {
	db     *gorm.DB
	config *config.Config
}

type CheckoutResponse struct {
	OrderID      uuid.UUID `json:"order_id"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	ClientSecret string    `json:"client_secret,omitempty"`
	PaymentID    string    `json:"payment_id,omitempty"`
	Status       string    `json:"status"`
}

func NewCheckoutService(db *gorm.DB, config *config.Config) *CheckoutService {
	// Initialize Stripe
	stripe.Key = config.Payment.StripeSecretKey

	return &CheckoutService{
		db:     db,
		config: config,
	}
}

// CreateCheckout snapshots the cart lines into a persisted order and
// opens a Stripe PaymentIntent for the total. The caller clears the
// session cart only after this returns successfully.
func (s *CheckoutService) CreateCheckout(sessionID uuid.UUID, items []session.CartLineItem) (*CheckoutResponse, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		total = total.Add(line)
		lineTotal, _ := line.Float64()
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Size:      item.Size,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
	}
	amount, _ := total.Round(2).Float64()

	order := &models.Order{
		SessionID: sessionID,
		Amount:    amount,
		Currency:  s.config.Payment.Currency,
		Status:    models.OrderStatusPending,
		Items:     orderItems,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		// Bump catalog sales counts
		for _, item := range items {
			if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
				UpdateColumn("sales_count", gorm.Expr("sales_count + ?", item.Quantity)).Error; err != nil {
				return fmt.Errorf("failed to update sales count: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Without a Stripe key the order stays pending and the client is
	// told no payment is attached. Mirrors the storage service's
	// local-development fallback.
	if s.config.Payment.StripeSecretKey == "" {
		logrus.WithField("order_id", order.ID).Warn("Stripe key not configured, skipping payment intent")
		return &CheckoutResponse{
			OrderID:  order.ID,
			Amount:   amount,
			Currency: order.Currency,
			Status:   "payment_disabled",
		}, nil
	}

	pi, err := s.createPaymentIntent(order)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(order).Update("payment_intent_id", pi.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to attach payment intent: %w", err)
	}

	return &CheckoutResponse{
		OrderID:      order.ID,
		Amount:       amount,
		Currency:     order.Currency,
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}

// ConfirmPayment marks the order paid once its payment intent has
// succeeded on Stripe's side.
func (s *CheckoutService) ConfirmPayment(paymentIntentID string) error {
	pi, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return fmt.Errorf("failed to get payment intent: %w", err)
	}

	var order models.Order
	if err := s.db.Where("payment_intent_id = ?", paymentIntentID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("order not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	status := models.OrderStatusFailed
	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		status = models.OrderStatusPaid
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

func (s *CheckoutService) GetSessionOrders(sessionID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("session_id = ?", sessionID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

func (s *CheckoutService) createPaymentIntent(order *models.Order) (*stripe.PaymentIntent, error) {
	// Convert amount to cents for Stripe
	amountInCents := decimal.NewFromFloat(order.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(order.Currency),
	}
	params.AddMetadata("order_id", order.ID.String())
	params.AddMetadata("session_id", order.SessionID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return pi, nil
}
