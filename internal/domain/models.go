package domain

// Role is the access level assigned to an authenticated user.
type Role string

const (
	RoleBuyer Role = "BUYER"
	RoleAdmin Role = "ADMIN"
)

// OrderStatus is server-authoritative; clients only request transitions.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCanceled   OrderStatus = "CANCELED"
)

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
	UserID   int    `json:"userId"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// BuyerProduct is the catalog view exposed to buyers.
type BuyerProduct struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	RetailPrice float64 `json:"retailPrice"`
}

// AdminProduct adds the wholesale price and stock level buyers never see.
type AdminProduct struct {
	ID             int     `json:"id"`
	Description    string  `json:"description"`
	WholesalePrice float64 `json:"wholesalePrice"`
	RetailPrice    float64 `json:"retailPrice"`
	StockQuantity  int     `json:"stockQuantity"`
}

type AdminProductCreate struct {
	Description    string  `json:"description"`
	WholesalePrice float64 `json:"wholesalePrice"`
	RetailPrice    float64 `json:"retailPrice"`
	StockQuantity  int     `json:"stockQuantity"`
}

// AdminProductUpdate carries only the fields being changed.
type AdminProductUpdate struct {
	Description    *string  `json:"description,omitempty"`
	WholesalePrice *float64 `json:"wholesalePrice,omitempty"`
	RetailPrice    *float64 `json:"retailPrice,omitempty"`
	StockQuantity  *int     `json:"stockQuantity,omitempty"`
}

type OrderSummary struct {
	ID       int         `json:"id"`
	PlacedAt Instant     `json:"placedAt"`
	Status   OrderStatus `json:"status"`
}

type BuyerOrder struct {
	ID       int              `json:"id"`
	PlacedAt Instant          `json:"placedAt"`
	Status   OrderStatus      `json:"status"`
	Items    []BuyerOrderItem `json:"items"`
}

type BuyerOrderItem struct {
	ProductID       int     `json:"productId"`
	Description     string  `json:"description"`
	Quantity        int     `json:"quantity"`
	UnitRetailPrice float64 `json:"unitRetailPrice"`
}

// OrderStatusResponse is the server's word on a requested transition.
type OrderStatusResponse struct {
	OrderID int         `json:"orderId"`
	Status  OrderStatus `json:"status"`
}

type AdminOrderSummary struct {
	ID            int         `json:"id"`
	PlacedAt      Instant     `json:"placedAt"`
	Status        OrderStatus `json:"status"`
	BuyerUsername string      `json:"buyerUsername"`
}

type AdminOrderDetail struct {
	ID            int              `json:"id"`
	PlacedAt      Instant          `json:"placedAt"`
	Status        OrderStatus      `json:"status"`
	BuyerUsername string           `json:"buyerUsername"`
	Items         []AdminOrderItem `json:"items"`
}

type AdminOrderItem struct {
	ProductID          int     `json:"productId"`
	Description        string  `json:"description"`
	Quantity           int     `json:"quantity"`
	UnitWholesalePrice float64 `json:"unitWholesalePrice"`
	UnitRetailPrice    float64 `json:"unitRetailPrice"`
}

type CreateOrderRequest struct {
	Items []OrderRequestItem `json:"items"`
}

type OrderRequestItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type TopFrequentItem struct {
	ProductID     int    `json:"productId"`
	Description   string `json:"description"`
	TotalQuantity int    `json:"totalQuantity"`
}

type TopRecentItem struct {
	ProductID       int     `json:"productId"`
	Description     string  `json:"description"`
	LastPurchasedAt Instant `json:"lastPurchasedAt"`
}

type ProfitSummary struct {
	ProductID   int     `json:"productId"`
	Description string  `json:"description"`
	TotalProfit float64 `json:"totalProfit"`
}

type PopularItem struct {
	ProductID     int    `json:"productId"`
	Description   string `json:"description"`
	TotalQuantity int    `json:"totalQuantity"`
}

type TotalSold struct {
	TotalItems int `json:"totalItems"`
}

// ErrorEnvelope is the structured error payload on non-2xx responses.
type ErrorEnvelope struct {
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}
