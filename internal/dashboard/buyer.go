package dashboard

import (
	"context"
	"errors"
	"sync"

	"onlinemart-client/internal/domain"
)

type insightsGateway interface {
	TopFrequent(ctx context.Context, token string) ([]domain.TopFrequentItem, error)
	TopRecent(ctx context.Context, token string) ([]domain.TopRecentItem, error)
}

// Both insight calls are the page's only data, so both propagate.
const (
	frequentFailureMode = propagate
	recentFailureMode   = propagate
)

// InsightsData is the buyer purchase-insights view model.
type InsightsData struct {
	Frequent []domain.TopFrequentItem
	Recent   []domain.TopRecentItem
}

// BuyerInsights joins the buyer's frequent and recent purchase rankings.
type BuyerInsights struct {
	mu      sync.Mutex
	gateway insightsGateway
	data    InsightsData
}

func NewBuyerInsights(g insightsGateway) *BuyerInsights {
	return &BuyerInsights{gateway: g}
}

func (b *BuyerInsights) Load(ctx context.Context, token string) error {
	var (
		wg   sync.WaitGroup
		next InsightsData
		errs [2]error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		frequent, err := b.gateway.TopFrequent(ctx, token)
		if err != nil && frequentFailureMode == propagate {
			errs[0] = err
			return
		}
		next.Frequent = frequent
	}()
	go func() {
		defer wg.Done()
		recent, err := b.gateway.TopRecent(ctx, token)
		if err != nil && recentFailureMode == propagate {
			errs[1] = err
			return
		}
		next.Recent = recent
	}()
	wg.Wait()

	b.mu.Lock()
	b.data = next
	b.mu.Unlock()
	return errors.Join(errs[0], errs[1])
}

func (b *BuyerInsights) Snapshot() InsightsData {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}
