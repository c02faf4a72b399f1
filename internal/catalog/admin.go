package catalog

import (
	"context"
	"sync"

	"onlinemart-client/internal/domain"
)

type adminCatalogGateway interface {
	AdminProducts(ctx context.Context, token string) ([]domain.AdminProduct, error)
	AdminProduct(ctx context.Context, token string, productID int) (domain.AdminProduct, error)
	CreateAdminProduct(ctx context.Context, token string, req domain.AdminProductCreate) (domain.AdminProduct, error)
	UpdateAdminProduct(ctx context.Context, token string, productID int, req domain.AdminProductUpdate) (domain.AdminProduct, error)
}

// AdminCatalog caches the admin product listing. Products are immutable
// snapshots; explicit create/update calls replace the cached copy with the
// server's returned value.
type AdminCatalog struct {
	mu       sync.Mutex
	gateway  adminCatalogGateway
	products []domain.AdminProduct
}

func NewAdminCatalog(g adminCatalogGateway) *AdminCatalog {
	return &AdminCatalog{gateway: g}
}

func (a *AdminCatalog) Load(ctx context.Context, token string) error {
	products, err := a.gateway.AdminProducts(ctx, token)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.products = products
	a.mu.Unlock()
	return nil
}

func (a *AdminCatalog) Products() []domain.AdminProduct {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AdminProduct, len(a.products))
	copy(out, a.products)
	return out
}

func (a *AdminCatalog) Create(ctx context.Context, token string, req domain.AdminProductCreate) (domain.AdminProduct, error) {
	product, err := a.gateway.CreateAdminProduct(ctx, token, req)
	if err != nil {
		return domain.AdminProduct{}, err
	}
	a.apply(product)
	return product, nil
}

func (a *AdminCatalog) Update(ctx context.Context, token string, productID int, req domain.AdminProductUpdate) (domain.AdminProduct, error) {
	product, err := a.gateway.UpdateAdminProduct(ctx, token, productID, req)
	if err != nil {
		return domain.AdminProduct{}, err
	}
	a.apply(product)
	return product, nil
}

// Detail fetches a single product and refreshes its cached copy.
func (a *AdminCatalog) Detail(ctx context.Context, token string, productID int) (domain.AdminProduct, error) {
	product, err := a.gateway.AdminProduct(ctx, token, productID)
	if err != nil {
		return domain.AdminProduct{}, err
	}
	a.apply(product)
	return product, nil
}

// apply replaces the cached copy, or appends when the product is new.
func (a *AdminCatalog) apply(product domain.AdminProduct) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID == product.ID {
			a.products[i] = product
			return
		}
	}
	a.products = append(a.products, product)
}
