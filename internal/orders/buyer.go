package orders

import (
	"context"
	"sync"

	"onlinemart-client/internal/domain"
)

type buyerGateway interface {
	BuyerOrders(ctx context.Context, token string) ([]domain.OrderSummary, error)
	BuyerOrder(ctx context.Context, token string, orderID int) (domain.BuyerOrder, error)
	CancelBuyerOrder(ctx context.Context, token string, orderID int) (domain.OrderStatusResponse, error)
}

// BuyerOrders caches the buyer's order listing. Status is server
// authoritative: a cancel request reconciles on the returned value, never
// on assumed local success.
type BuyerOrders struct {
	mu      sync.Mutex
	gateway buyerGateway
	orders  []domain.OrderSummary
}

func NewBuyerOrders(g buyerGateway) *BuyerOrders {
	return &BuyerOrders{gateway: g}
}

func (b *BuyerOrders) Load(ctx context.Context, token string) error {
	orders, err := b.gateway.BuyerOrders(ctx, token)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.orders = orders
	b.mu.Unlock()
	return nil
}

func (b *BuyerOrders) Orders() []domain.OrderSummary {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.OrderSummary, len(b.orders))
	copy(out, b.orders)
	return out
}

// Cancel requests the transition and overwrites the cached status with
// whatever the server answered.
func (b *BuyerOrders) Cancel(ctx context.Context, token string, orderID int) (domain.OrderStatus, error) {
	resp, err := b.gateway.CancelBuyerOrder(ctx, token, orderID)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	for i := range b.orders {
		if b.orders[i].ID == orderID {
			b.orders[i].Status = resp.Status
			break
		}
	}
	b.mu.Unlock()
	return resp.Status, nil
}

// Detail fetches a single order snapshot.
func (b *BuyerOrders) Detail(ctx context.Context, token string, orderID int) (domain.BuyerOrder, error) {
	return b.gateway.BuyerOrder(ctx, token, orderID)
}
