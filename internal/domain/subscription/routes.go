package subscription

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	g := r.Group("/subscription")
	{
		g.GET("/get/:id", h.GetByID)
		g.GET("/get/all", h.GetAll)
		g.POST("/create", h.Create)
		g.PUT("/update/:id", h.Update)
		g.DELETE("/delete/:id", h.Delete)
	}
}
