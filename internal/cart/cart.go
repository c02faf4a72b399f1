package cart

import (
	"context"
	"sync"

	"onlinemart-client/internal/domain"
)

// Item is one pending order line. Lines exist only locally until the order
// is submitted.
type Item struct {
	ProductID   int
	Description string
	UnitPrice   float64
	Quantity    int
}

func (i Item) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type orderPlacer interface {
	CreateOrder(ctx context.Context, token string, req domain.CreateOrderRequest) (domain.BuyerOrder, error)
}

// Cart is the client-local optimistic collection of pending lines plus the
// order-submission workflow. Lines keep insertion order.
type Cart struct {
	mu         sync.Mutex
	gateway    orderPlacer
	items      []Item
	submitting bool
	lastOrder  *domain.BuyerOrder
}

func New(gateway orderPlacer) *Cart {
	return &Cart{gateway: gateway}
}

// Add merges into an existing line or inserts a new one with the given
// quantity. Non-positive quantities are a no-op.
func (c *Cart) Add(product domain.BuyerProduct, quantity int) {
	if quantity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, Item{
		ProductID:   product.ID,
		Description: product.Description,
		UnitPrice:   product.RetailPrice,
		Quantity:    quantity,
	})
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of 1. Unknown
// products are a no-op.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot of the lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is always recomputed, never stored.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

func (c *Cart) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// LastOrder returns the most recently accepted order, if any.
func (c *Cart) LastOrder() *domain.BuyerOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastOrder == nil {
		return nil
	}
	order := *c.lastOrder
	return &order
}

// PlaceOrder submits the cart. An empty cart fails fast with ErrEmptyCart
// and never reaches the network. On success the returned order is stored
// and the cart cleared; on failure the cart is left untouched. The
// submitting flag is released on every exit path.
func (c *Cart) PlaceOrder(ctx context.Context, token string) (domain.BuyerOrder, error) {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return domain.BuyerOrder{}, domain.ErrEmptyCart
	}
	c.submitting = true
	req := domain.CreateOrderRequest{Items: make([]domain.OrderRequestItem, 0, len(c.items))}
	for _, item := range c.items {
		req.Items = append(req.Items, domain.OrderRequestItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	order, err := c.gateway.CreateOrder(ctx, token, req)
	if err != nil {
		return domain.BuyerOrder{}, err
	}

	c.mu.Lock()
	c.items = nil
	c.lastOrder = &order
	c.mu.Unlock()
	return order, nil
}
