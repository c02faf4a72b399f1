package orders

import (
	"context"

	"onlinemart-client/internal/domain"
)

type pageFetcher interface {
	AdminOrders(ctx context.Context, token string, page int) (domain.OrderPage, error)
}

// Accumulator flattens the paginated admin orders endpoint into one
// complete, deduplicated list.
type Accumulator struct {
	gateway pageFetcher
}

func NewAccumulator(g pageFetcher) *Accumulator {
	return &Accumulator{gateway: g}
}

// Run fetches pages starting at 0 and accumulates fresh items. Items whose
// id was already seen are dropped, which also stops the walk if the server
// re-serves page 0 content forever. After each page with fresh items the
// partial result is published for progressive rendering. Accumulation stops
// once a page yields no raw items or no fresh items. A fetch error aborts
// the walk but the accumulated result so far is returned alongside it.
func (a *Accumulator) Run(ctx context.Context, token string, publish func([]domain.AdminOrderSummary)) ([]domain.AdminOrderSummary, error) {
	seen := make(map[int]struct{})
	var collected []domain.AdminOrderSummary

	for page := 0; ; page++ {
		fetched, err := a.gateway.AdminOrders(ctx, token, page)
		if err != nil {
			return collected, err
		}

		batch := fetched.Content
		var fresh []domain.AdminOrderSummary
		for _, order := range batch {
			if _, dup := seen[order.ID]; dup {
				continue
			}
			seen[order.ID] = struct{}{}
			fresh = append(fresh, order)
		}

		if len(fresh) > 0 {
			collected = append(collected, fresh...)
			if publish != nil {
				snapshot := make([]domain.AdminOrderSummary, len(collected))
				copy(snapshot, collected)
				publish(snapshot)
			}
		}

		if len(batch) == 0 || len(fresh) == 0 {
			return collected, nil
		}
	}
}
