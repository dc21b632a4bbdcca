package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymoffice/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad request", err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Created(c, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad request", err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", err.Error())
			return
		}
		response.ServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Me returns the account behind the bearer token; the auth middleware has
// already placed account_id into the context.
func (h *Handler) Me(c *gin.Context) {
	id := c.GetInt64("account_id")
	if id == 0 {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", "missing account")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
