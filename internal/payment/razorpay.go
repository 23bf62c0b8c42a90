package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

var (
	ErrMalformedOrder = errors.New("malformed order response")
)

type RazorpayGateway struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}

	body, err := g.client.Order.Create(map[string]interface{}{
		"amount":          req.Amount,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return Order{}, fmt.Errorf("g.client.Order.Create -> %w", err)
	}

	return orderFromBody(body, req)
}

func orderFromBody(body map[string]interface{}, req OrderRequest) (Order, error) {
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return Order{}, ErrMalformedOrder
	}

	order := Order{
		ID:       id,
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}

	// The SDK decodes numbers into float64.
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}

	return order, nil
}
