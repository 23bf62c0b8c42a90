package payment

import (
	"context"

	"github.com/google/uuid"
)

// SandboxGateway issues orders locally without calling a provider.
type SandboxGateway struct {
	keyID string
}

func NewSandboxGateway(keyID string) *SandboxGateway {
	return &SandboxGateway{
		keyID: keyID,
	}
}

func (g *SandboxGateway) KeyID() string {
	return g.keyID
}

func (g *SandboxGateway) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}

	return Order{
		ID:       "order_" + uuid.NewString(),
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}
