package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"onlinemart-client/internal/domain"
)

type authGateway interface {
	Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
}

func registerHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		auth, err := deps.Auth.Register(c.Request.Context(), req)
		if err != nil {
			writeError(c, err, "Unable to register.")
			return
		}
		if err := deps.Sessions.SignIn(auth); err != nil {
			writeError(c, err, "Unable to save the session.")
			return
		}
		c.JSON(http.StatusOK, auth)
	}
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		auth, err := deps.Auth.Login(c.Request.Context(), req)
		if err != nil {
			writeError(c, err, "Unable to sign in.")
			return
		}
		if err := deps.Sessions.SignIn(auth); err != nil {
			writeError(c, err, "Unable to save the session.")
			return
		}
		c.JSON(http.StatusOK, auth)
	}
}

func logoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Sessions.SignOut(); err != nil {
			writeError(c, err, "Unable to sign out.")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func sessionHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := deps.Sessions.Snapshot()
		if !snapshot.IsAuthenticated() {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"role":          snapshot.Role,
			"username":      snapshot.Username,
			"userId":        snapshot.UserID,
		})
	}
}
