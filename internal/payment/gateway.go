package payment

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownProvider = errors.New("unknown payment provider")
)

const (
	ProviderRazorpay = "razorpay"
	ProviderSandbox  = "sandbox"
)

// OrderRequest describes an order to open with the gateway. Amount is in minor currency units.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
	KeyID() string
}

// NewGateway builds the gateway client for the configured provider.
func NewGateway(provider, keyID, keySecret string) (Gateway, error) {
	switch provider {
	case ProviderRazorpay:
		return NewRazorpayGateway(keyID, keySecret), nil
	case ProviderSandbox, "":
		return NewSandboxGateway(keyID), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
}
