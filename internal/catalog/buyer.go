package catalog

import (
	"context"
	"strings"
	"sync"

	"onlinemart-client/internal/domain"
	"onlinemart-client/internal/watchlist"
)

type shopGateway interface {
	BuyerProducts(ctx context.Context, token string) ([]domain.BuyerProduct, error)
	BuyerProduct(ctx context.Context, token string, productID int) (domain.BuyerProduct, error)
}

// BuyerShop caches the buyer catalog together with watchlist membership so
// a product listing can render both in one pass.
type BuyerShop struct {
	mu       sync.Mutex
	gateway  shopGateway
	watch    *watchlist.Watchlist
	products []domain.BuyerProduct
}

func NewBuyerShop(g shopGateway, watch *watchlist.Watchlist) *BuyerShop {
	return &BuyerShop{gateway: g, watch: watch}
}

// Load fetches the catalog and refreshes watchlist membership concurrently.
// Either failure surfaces; the sibling call still completes.
func (s *BuyerShop) Load(ctx context.Context, token string) error {
	var wg sync.WaitGroup
	var productsErr, watchErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, err := s.gateway.BuyerProducts(ctx, token)
		if err != nil {
			productsErr = err
			return
		}
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		watchErr = s.watch.Refresh(ctx, token)
	}()
	wg.Wait()

	if productsErr != nil {
		return productsErr
	}
	return watchErr
}

func (s *BuyerShop) Products() []domain.BuyerProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.BuyerProduct, len(s.products))
	copy(out, s.products)
	return out
}

// Search filters the cached catalog by case-insensitive description match.
// An empty query returns everything.
func (s *BuyerShop) Search(query string) []domain.BuyerProduct {
	all := s.Products()
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return all
	}
	var out []domain.BuyerProduct
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, p)
		}
	}
	return out
}

// Product returns the cached product or fetches it when absent.
func (s *BuyerShop) Product(ctx context.Context, token string, productID int) (domain.BuyerProduct, error) {
	s.mu.Lock()
	for _, p := range s.products {
		if p.ID == productID {
			s.mu.Unlock()
			return p, nil
		}
	}
	s.mu.Unlock()
	return s.gateway.BuyerProduct(ctx, token, productID)
}

func (s *BuyerShop) OnWatchlist(productID int) bool {
	return s.watch.Contains(productID)
}
