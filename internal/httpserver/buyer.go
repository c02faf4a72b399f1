package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"onlinemart-client/internal/cart"
)

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

func shopProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		if err := deps.Shop.Load(c.Request.Context(), token); err != nil {
			writeError(c, err, "Unable to load products.")
			return
		}
		products := deps.Shop.Search(c.Query("q"))
		watched := deps.Watchlist.IDs()
		type row struct {
			ID          int     `json:"id"`
			Description string  `json:"description"`
			RetailPrice float64 `json:"retailPrice"`
			Watched     bool    `json:"watched"`
		}
		rows := make([]row, 0, len(products))
		for _, p := range products {
			_, onList := watched[p.ID]
			rows = append(rows, row{ID: p.ID, Description: p.Description, RetailPrice: p.RetailPrice, Watched: onList})
		}
		c.JSON(http.StatusOK, rows)
	}
}

func shopProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		product, err := deps.Shop.Product(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to load the product.")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func watchlistHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		if err := deps.Watchlist.Refresh(c.Request.Context(), token); err != nil {
			writeError(c, err, "Unable to load the watchlist.")
			return
		}
		c.JSON(http.StatusOK, deps.Watchlist.Products())
	}
}

func watchlistToggleHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		watched, err := deps.Watchlist.Toggle(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to update the watchlist.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"productId": id, "watched": watched})
	}
}

type cartView struct {
	Items      []cartLineView `json:"items"`
	Total      float64        `json:"total"`
	Submitting bool           `json:"submitting"`
}

type cartLineView struct {
	ProductID   int     `json:"productId"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

func viewOfCart(c *cart.Cart) cartView {
	items := c.Items()
	view := cartView{Items: make([]cartLineView, 0, len(items)), Total: c.Total(), Submitting: c.Submitting()}
	for _, item := range items {
		view.Items = append(view.Items, cartLineView{
			ProductID:   item.ProductID,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}
	return view
}

func cartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, viewOfCart(deps.Cart))
	}
}

func cartAddHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID int `json:"productId"`
			Quantity  int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		token := deps.Sessions.Snapshot().Token
		product, err := deps.Shop.Product(c.Request.Context(), token, req.ProductID)
		if err != nil {
			writeError(c, err, "Unable to load the product.")
			return
		}
		deps.Cart.Add(product, req.Quantity)
		c.JSON(http.StatusOK, viewOfCart(deps.Cart))
	}
}

func cartUpdateHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		deps.Cart.UpdateQuantity(id, req.Quantity)
		c.JSON(http.StatusOK, viewOfCart(deps.Cart))
	}
}

func cartRemoveHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		deps.Cart.Remove(id)
		c.JSON(http.StatusOK, viewOfCart(deps.Cart))
	}
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		order, err := deps.Cart.PlaceOrder(c.Request.Context(), token)
		if err != nil {
			writeError(c, err, "Unable to place the order.")
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func buyerOrdersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		if err := deps.Orders.Load(c.Request.Context(), token); err != nil {
			writeError(c, err, "Unable to load orders.")
			return
		}
		c.JSON(http.StatusOK, deps.Orders.Orders())
	}
}

func buyerOrderHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		order, err := deps.Orders.Detail(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to load the order.")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func buyerCancelHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		status, err := deps.Orders.Cancel(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to cancel the order.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orderId": id, "status": status})
	}
}

func insightsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		if err := deps.Insights.Load(c.Request.Context(), token); err != nil {
			writeError(c, err, "Unable to load purchase insights.")
			return
		}
		data := deps.Insights.Snapshot()
		c.JSON(http.StatusOK, gin.H{"frequent": data.Frequent, "recent": data.Recent})
	}
}
