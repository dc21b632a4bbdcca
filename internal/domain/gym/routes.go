package gym

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the gym endpoints directly on the /gym base group;
// unlike the other entities there is no nested path segment.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/get/:id", h.GetByID)
	r.GET("/get/all", h.GetAll)
	r.POST("/create", h.Create)
	r.PUT("/update/:id", h.Update)
	r.DELETE("/delete/:id", h.Delete)
}
