package client

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	g := r.Group("/client")
	{
		g.GET("/get/:id", h.GetByID)
		g.GET("/get/all", h.GetAll)
		g.GET("/search/filter", h.Search)
		g.POST("/create", h.Create)
		g.PUT("/update/:id", h.Update)
		g.DELETE("/delete/:id", h.Delete)
	}
}
