package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"onlinemart-client/internal/domain"
)

// Register creates an account and returns the authenticated identity.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	return do[domain.AuthResponse](ctx, c, http.MethodPost, "/api/auth/register", "", nil, req)
}

// Login exchanges credentials for the authenticated identity.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	return do[domain.AuthResponse](ctx, c, http.MethodPost, "/api/auth/login", "", nil, req)
}

func (c *Client) BuyerProducts(ctx context.Context, token string) ([]domain.BuyerProduct, error) {
	return do[[]domain.BuyerProduct](ctx, c, http.MethodGet, "/api/buyer/products", token, nil, nil)
}

func (c *Client) BuyerProduct(ctx context.Context, token string, productID int) (domain.BuyerProduct, error) {
	return do[domain.BuyerProduct](ctx, c, http.MethodGet, "/api/buyer/products/"+strconv.Itoa(productID), token, nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, token string, req domain.CreateOrderRequest) (domain.BuyerOrder, error) {
	return do[domain.BuyerOrder](ctx, c, http.MethodPost, "/api/buyer/orders", token, nil, req)
}

func (c *Client) BuyerOrders(ctx context.Context, token string) ([]domain.OrderSummary, error) {
	return do[[]domain.OrderSummary](ctx, c, http.MethodGet, "/api/buyer/orders", token, nil, nil)
}

func (c *Client) BuyerOrder(ctx context.Context, token string, orderID int) (domain.BuyerOrder, error) {
	return do[domain.BuyerOrder](ctx, c, http.MethodGet, "/api/buyer/orders/"+strconv.Itoa(orderID), token, nil, nil)
}

func (c *Client) CancelBuyerOrder(ctx context.Context, token string, orderID int) (domain.OrderStatusResponse, error) {
	return do[domain.OrderStatusResponse](ctx, c, http.MethodPatch, "/api/buyer/orders/"+strconv.Itoa(orderID)+"/cancel", token, nil, nil)
}

func (c *Client) TopFrequent(ctx context.Context, token string) ([]domain.TopFrequentItem, error) {
	return do[[]domain.TopFrequentItem](ctx, c, http.MethodGet, "/api/buyer/orders/top/frequent", token, nil, nil)
}

func (c *Client) TopRecent(ctx context.Context, token string) ([]domain.TopRecentItem, error) {
	return do[[]domain.TopRecentItem](ctx, c, http.MethodGet, "/api/buyer/orders/top/recent", token, nil, nil)
}

// Watchlist returns the authoritative remote watchlist.
func (c *Client) Watchlist(ctx context.Context, token string) ([]domain.BuyerProduct, error) {
	return do[[]domain.BuyerProduct](ctx, c, http.MethodGet, "/api/buyer/watchlist", token, nil, nil)
}

func (c *Client) AddWatchlist(ctx context.Context, token string, productID int) error {
	_, err := do[Empty](ctx, c, http.MethodPost, "/api/buyer/watchlist/"+strconv.Itoa(productID), token, nil, nil)
	return err
}

func (c *Client) RemoveWatchlist(ctx context.Context, token string, productID int) error {
	_, err := do[Empty](ctx, c, http.MethodDelete, "/api/buyer/watchlist/"+strconv.Itoa(productID), token, nil, nil)
	return err
}

func (c *Client) AdminProducts(ctx context.Context, token string) ([]domain.AdminProduct, error) {
	return do[[]domain.AdminProduct](ctx, c, http.MethodGet, "/api/admin/products", token, nil, nil)
}

func (c *Client) AdminProduct(ctx context.Context, token string, productID int) (domain.AdminProduct, error) {
	return do[domain.AdminProduct](ctx, c, http.MethodGet, "/api/admin/products/"+strconv.Itoa(productID), token, nil, nil)
}

func (c *Client) CreateAdminProduct(ctx context.Context, token string, req domain.AdminProductCreate) (domain.AdminProduct, error) {
	return do[domain.AdminProduct](ctx, c, http.MethodPost, "/api/admin/products", token, nil, req)
}

func (c *Client) UpdateAdminProduct(ctx context.Context, token string, productID int, req domain.AdminProductUpdate) (domain.AdminProduct, error) {
	return do[domain.AdminProduct](ctx, c, http.MethodPatch, "/api/admin/products/"+strconv.Itoa(productID), token, nil, req)
}

// AdminOrders fetches one page; the result is normalized whether the server
// answered with a bare array or a paged envelope.
func (c *Client) AdminOrders(ctx context.Context, token string, page int) (domain.OrderPage, error) {
	query := url.Values{"page": []string{strconv.Itoa(page)}}
	return do[domain.OrderPage](ctx, c, http.MethodGet, "/api/admin/orders", token, query, nil)
}

func (c *Client) AdminOrder(ctx context.Context, token string, orderID int) (domain.AdminOrderDetail, error) {
	return do[domain.AdminOrderDetail](ctx, c, http.MethodGet, "/api/admin/orders/"+strconv.Itoa(orderID), token, nil, nil)
}

func (c *Client) CompleteAdminOrder(ctx context.Context, token string, orderID int) (domain.OrderStatusResponse, error) {
	return do[domain.OrderStatusResponse](ctx, c, http.MethodPatch, "/api/admin/orders/"+strconv.Itoa(orderID)+"/complete", token, nil, nil)
}

func (c *Client) CancelAdminOrder(ctx context.Context, token string, orderID int) (domain.OrderStatusResponse, error) {
	return do[domain.OrderStatusResponse](ctx, c, http.MethodPatch, "/api/admin/orders/"+strconv.Itoa(orderID)+"/cancel", token, nil, nil)
}

func (c *Client) ProfitSummary(ctx context.Context, token string) (domain.ProfitSummary, error) {
	return do[domain.ProfitSummary](ctx, c, http.MethodGet, "/api/admin/summary/profit", token, nil, nil)
}

func (c *Client) PopularProducts(ctx context.Context, token string) ([]domain.PopularItem, error) {
	return do[[]domain.PopularItem](ctx, c, http.MethodGet, "/api/admin/summary/popular", token, nil, nil)
}

func (c *Client) TotalSold(ctx context.Context, token string) (domain.TotalSold, error) {
	return do[domain.TotalSold](ctx, c, http.MethodGet, "/api/admin/summary/total-sold", token, nil, nil)
}
