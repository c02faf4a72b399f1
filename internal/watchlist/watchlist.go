package watchlist

import (
	"context"
	"sync"

	"onlinemart-client/internal/domain"
)

// UpdatePolicy states when a local mutation is applied relative to server
// confirmation. The choice is an explicit tag per synchronizer, not an
// implicit code path.
type UpdatePolicy int

const (
	// ConfirmFirst applies the local change only after the server accepts
	// the call. A failed call leaves local state untouched.
	ConfirmFirst UpdatePolicy = iota
	// Optimistic applies the local change immediately and rolls it back if
	// the server rejects the call.
	Optimistic
)

type gateway interface {
	Watchlist(ctx context.Context, token string) ([]domain.BuyerProduct, error)
	AddWatchlist(ctx context.Context, token string, productID int) error
	RemoveWatchlist(ctx context.Context, token string, productID int) error
}

// Watchlist mirrors the remote watchlist set. Membership is identity only;
// the cached products exist for listing.
type Watchlist struct {
	mu       sync.Mutex
	gateway  gateway
	policy   UpdatePolicy
	ids      map[int]struct{}
	products []domain.BuyerProduct
}

func New(g gateway, policy UpdatePolicy) *Watchlist {
	return &Watchlist{gateway: g, policy: policy, ids: make(map[int]struct{})}
}

// Refresh replaces local state with the authoritative remote list.
func (w *Watchlist) Refresh(ctx context.Context, token string) error {
	products, err := w.gateway.Watchlist(ctx, token)
	if err != nil {
		return err
	}
	ids := make(map[int]struct{}, len(products))
	for _, p := range products {
		ids[p.ID] = struct{}{}
	}
	w.mu.Lock()
	w.ids = ids
	w.products = products
	w.mu.Unlock()
	return nil
}

func (w *Watchlist) Contains(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.ids[productID]
	return ok
}

// IDs returns a snapshot of the membership set.
func (w *Watchlist) IDs() map[int]struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[int]struct{}, len(w.ids))
	for id := range w.ids {
		out[id] = struct{}{}
	}
	return out
}

func (w *Watchlist) Products() []domain.BuyerProduct {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.BuyerProduct, len(w.products))
	copy(out, w.products)
	return out
}

// Toggle flips membership for productID and reports the new membership.
// Under ConfirmFirst a failed call leaves the set unchanged; under
// Optimistic the flip is applied up front and rolled back on failure.
func (w *Watchlist) Toggle(ctx context.Context, token string, productID int) (bool, error) {
	present := w.Contains(productID)

	if w.policy == Optimistic {
		w.apply(productID, !present)
		if err := w.call(ctx, token, productID, present); err != nil {
			w.apply(productID, present)
			return present, err
		}
		return !present, nil
	}

	if err := w.call(ctx, token, productID, present); err != nil {
		return present, err
	}
	w.apply(productID, !present)
	return !present, nil
}

func (w *Watchlist) call(ctx context.Context, token string, productID int, present bool) error {
	if present {
		return w.gateway.RemoveWatchlist(ctx, token, productID)
	}
	return w.gateway.AddWatchlist(ctx, token, productID)
}

func (w *Watchlist) apply(productID int, member bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if member {
		w.ids[productID] = struct{}{}
		return
	}
	delete(w.ids, productID)
	for i := range w.products {
		if w.products[i].ID == productID {
			w.products = append(w.products[:i], w.products[i+1:]...)
			return
		}
	}
}
