package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"onlinemart-client/internal/domain"
)

func adminProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		if err := deps.Catalog.Load(c.Request.Context(), token); err != nil {
			writeError(c, err, "Unable to load products.")
			return
		}
		c.JSON(http.StatusOK, deps.Catalog.Products())
	}
}

func adminProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		product, err := deps.Catalog.Detail(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to load the product.")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func adminCreateProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.AdminProductCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		token := deps.Sessions.Snapshot().Token
		product, err := deps.Catalog.Create(c.Request.Context(), token, req)
		if err != nil {
			writeError(c, err, "Unable to create the product.")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func adminUpdateProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req domain.AdminProductUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		token := deps.Sessions.Snapshot().Token
		product, err := deps.Catalog.Update(c.Request.Context(), token, id, req)
		if err != nil {
			writeError(c, err, "Unable to update the product.")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// adminOrdersHandler returns the fully accumulated flat listing. When a
// page fetch failed mid-run, the partial accumulation is still served
// alongside the error message.
func adminOrdersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		err := deps.AdminList.Load(c.Request.Context(), token)
		body := gin.H{"orders": deps.AdminList.Orders()}
		if err != nil {
			body["message"] = domain.UserMessage(err, "Unable to load orders.")
			c.JSON(http.StatusOK, body)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

func adminOrderHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		order, err := deps.AdminList.Detail(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to load the order.")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func adminCompleteHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		status, err := deps.AdminList.Complete(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to complete the order.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orderId": id, "status": status})
	}
}

func adminCancelHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		token := deps.Sessions.Snapshot().Token
		status, err := deps.AdminList.Cancel(c.Request.Context(), token, id)
		if err != nil {
			writeError(c, err, "Unable to cancel the order.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"orderId": id, "status": status})
	}
}

func adminDashboardHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := deps.Sessions.Snapshot().Token
		err := deps.Dashboard.Load(c.Request.Context(), token)
		data := deps.Dashboard.Snapshot()
		body := gin.H{
			"orders":    data.Orders,
			"products":  data.Products,
			"profit":    data.Profit,
			"popular":   data.Popular,
			"totalSold": data.TotalSold,
		}
		if err != nil {
			body["message"] = domain.UserMessage(err, "Unable to load the dashboard.")
		}
		c.JSON(http.StatusOK, body)
	}
}
