package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"onlinemart-client/internal/domain"
	"onlinemart-client/internal/session"
)

// buildRouter wires the web shell routes around the sync-core stores.
func buildRouter(logger *log.Logger, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(allowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = allowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)

	router.POST("/auth/register", registerHandler(deps))
	router.POST("/auth/login", loginHandler(deps))
	router.POST("/auth/logout", logoutHandler(deps))
	router.GET("/auth/session", sessionHandler(deps))

	buyer := router.Group("/", requireRole(deps.Sessions, domain.RoleBuyer))
	{
		buyer.GET("/shop/products", shopProductsHandler(deps))
		buyer.GET("/shop/products/:id", shopProductHandler(deps))
		buyer.GET("/watchlist", watchlistHandler(deps))
		buyer.POST("/watchlist/:id/toggle", watchlistToggleHandler(deps))
		buyer.GET("/cart", cartHandler(deps))
		buyer.POST("/cart/items", cartAddHandler(deps))
		buyer.PATCH("/cart/items/:id", cartUpdateHandler(deps))
		buyer.DELETE("/cart/items/:id", cartRemoveHandler(deps))
		buyer.POST("/cart/checkout", checkoutHandler(deps))
		buyer.GET("/orders", buyerOrdersHandler(deps))
		buyer.GET("/orders/:id", buyerOrderHandler(deps))
		buyer.PATCH("/orders/:id/cancel", buyerCancelHandler(deps))
		buyer.GET("/insights", insightsHandler(deps))
	}

	admin := router.Group("/admin", requireRole(deps.Sessions, domain.RoleAdmin))
	{
		admin.GET("/products", adminProductsHandler(deps))
		admin.POST("/products", adminCreateProductHandler(deps))
		admin.GET("/products/:id", adminProductHandler(deps))
		admin.PATCH("/products/:id", adminUpdateProductHandler(deps))
		admin.GET("/orders", adminOrdersHandler(deps))
		admin.GET("/orders/:id", adminOrderHandler(deps))
		admin.PATCH("/orders/:id/complete", adminCompleteHandler(deps))
		admin.PATCH("/orders/:id/cancel", adminCancelHandler(deps))
		admin.GET("/dashboard", adminDashboardHandler(deps))
	}

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireRole gates a route group on the session guard's decision. The
// JSON analog of "redirect to login" is 401 for a missing session and 403
// for a role mismatch, both carrying the login location.
func requireRole(sessions *session.Store, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := sessions.Snapshot()
		if session.Authorize(snapshot, role) == session.Allow {
			c.Next()
			return
		}
		status := http.StatusForbidden
		if !snapshot.IsAuthenticated() {
			status = http.StatusUnauthorized
		}
		c.AbortWithStatusJSON(status, gin.H{"redirect": "/login"})
	}
}

// writeError maps the core error taxonomy onto shell status codes.
func writeError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	var srvErr *domain.ServerError
	switch {
	case errors.As(err, &srvErr):
		status = srvErr.Code
	case errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidResponse), errors.Is(err, domain.ErrDecode):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"message": domain.UserMessage(err, fallback)})
}
