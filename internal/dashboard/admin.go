package dashboard

import (
	"context"
	"errors"
	"sync"

	"onlinemart-client/internal/domain"
)

type adminDashboardGateway interface {
	AdminOrders(ctx context.Context, token string, page int) (domain.OrderPage, error)
	AdminProducts(ctx context.Context, token string) ([]domain.AdminProduct, error)
	ProfitSummary(ctx context.Context, token string) (domain.ProfitSummary, error)
	PopularProducts(ctx context.Context, token string) ([]domain.PopularItem, error)
	TotalSold(ctx context.Context, token string) (domain.TotalSold, error)
}

// failureMode states whether a sub-call's error reaches the caller or
// degrades its slot to empty. The policy is fixed per sub-call.
type failureMode int

const (
	propagate failureMode = iota
	swallow
)

// Orders and products are the page's primary data; the three summaries are
// decoration and degrade silently.
const (
	ordersFailureMode    = propagate
	productsFailureMode  = propagate
	profitFailureMode    = swallow
	popularFailureMode   = swallow
	totalSoldFailureMode = swallow
)

// AdminData is one composite dashboard snapshot. Nil pointers and empty
// slices mark sub-calls that failed under the swallow policy.
type AdminData struct {
	Orders    []domain.AdminOrderSummary
	Products  []domain.AdminProduct
	Profit    *domain.ProfitSummary
	Popular   []domain.PopularItem
	TotalSold *domain.TotalSold
}

// AdminDashboard fans out the admin landing page's reads and joins them
// into one view model, tolerant of partial failure per sub-call.
type AdminDashboard struct {
	mu      sync.Mutex
	gateway adminDashboardGateway
	data    AdminData
}

func NewAdminDashboard(g adminDashboardGateway) *AdminDashboard {
	return &AdminDashboard{gateway: g}
}

// Load refreshes every slot concurrently. Failures of swallow-mode calls
// empty their slot; failures of propagate-mode calls are joined and
// returned after every sibling finished.
func (d *AdminDashboard) Load(ctx context.Context, token string) error {
	var (
		wg   sync.WaitGroup
		next AdminData
		errs [2]error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		page, err := d.gateway.AdminOrders(ctx, token, 0)
		if err != nil && ordersFailureMode == propagate {
			errs[0] = err
			return
		}
		next.Orders = page.Content
	}()
	go func() {
		defer wg.Done()
		products, err := d.gateway.AdminProducts(ctx, token)
		if err != nil && productsFailureMode == propagate {
			errs[1] = err
			return
		}
		next.Products = products
	}()
	go func() {
		defer wg.Done()
		profit, err := d.gateway.ProfitSummary(ctx, token)
		if err != nil && profitFailureMode == swallow {
			return
		}
		next.Profit = &profit
	}()
	go func() {
		defer wg.Done()
		popular, err := d.gateway.PopularProducts(ctx, token)
		if err != nil && popularFailureMode == swallow {
			return
		}
		next.Popular = popular
	}()
	go func() {
		defer wg.Done()
		total, err := d.gateway.TotalSold(ctx, token)
		if err != nil && totalSoldFailureMode == swallow {
			return
		}
		next.TotalSold = &total
	}()
	wg.Wait()

	d.mu.Lock()
	d.data = next
	d.mu.Unlock()
	return errors.Join(errs[0], errs[1])
}

// Snapshot returns the latest composite view model.
func (d *AdminDashboard) Snapshot() AdminData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data
}
