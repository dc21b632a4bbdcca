package account

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public auth endpoints; Me must be registered
// behind the auth middleware by the caller.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	g := r.Group("/auth")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
	}
}

func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/auth/me", h.Me)
}
