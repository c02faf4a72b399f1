package orders

import (
	"context"
	"sync"

	"onlinemart-client/internal/domain"
)

type adminGateway interface {
	pageFetcher
	AdminOrder(ctx context.Context, token string, orderID int) (domain.AdminOrderDetail, error)
	CompleteAdminOrder(ctx context.Context, token string, orderID int) (domain.OrderStatusResponse, error)
	CancelAdminOrder(ctx context.Context, token string, orderID int) (domain.OrderStatusResponse, error)
}

// AdminOrders caches the full accumulated admin listing.
type AdminOrders struct {
	mu      sync.Mutex
	gateway adminGateway
	acc     *Accumulator
	orders  []domain.AdminOrderSummary
	loading bool
}

func NewAdminOrders(g adminGateway) *AdminOrders {
	return &AdminOrders{gateway: g, acc: NewAccumulator(g)}
}

// Load accumulates every page. Partial results are published into the cache
// as they arrive; a mid-run fetch error keeps what was accumulated.
func (a *AdminOrders) Load(ctx context.Context, token string) error {
	a.mu.Lock()
	a.loading = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.loading = false
		a.mu.Unlock()
	}()

	collected, err := a.acc.Run(ctx, token, func(partial []domain.AdminOrderSummary) {
		a.mu.Lock()
		a.orders = partial
		a.mu.Unlock()
	})
	a.mu.Lock()
	a.orders = collected
	a.mu.Unlock()
	return err
}

func (a *AdminOrders) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *AdminOrders) Orders() []domain.AdminOrderSummary {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AdminOrderSummary, len(a.orders))
	copy(out, a.orders)
	return out
}

func (a *AdminOrders) Complete(ctx context.Context, token string, orderID int) (domain.OrderStatus, error) {
	resp, err := a.gateway.CompleteAdminOrder(ctx, token, orderID)
	if err != nil {
		return "", err
	}
	a.reconcile(orderID, resp.Status)
	return resp.Status, nil
}

func (a *AdminOrders) Cancel(ctx context.Context, token string, orderID int) (domain.OrderStatus, error) {
	resp, err := a.gateway.CancelAdminOrder(ctx, token, orderID)
	if err != nil {
		return "", err
	}
	a.reconcile(orderID, resp.Status)
	return resp.Status, nil
}

func (a *AdminOrders) Detail(ctx context.Context, token string, orderID int) (domain.AdminOrderDetail, error) {
	return a.gateway.AdminOrder(ctx, token, orderID)
}

func (a *AdminOrders) reconcile(orderID int, status domain.OrderStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.orders {
		if a.orders[i].ID == orderID {
			a.orders[i].Status = status
			return
		}
	}
}
