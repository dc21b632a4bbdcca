package client

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymoffice/internal/pkg/response"
	"gymoffice/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad request", "invalid client id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Search handles /search/filter with optional client_id, client_email,
// pageSize and pageNumber query parameters.
func (h *Handler) Search(c *gin.Context) {
	var filter SearchFilter

	if raw := c.Query("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Bad request", "invalid client_id filter")
			return
		}
		filter.ID = &id
	}
	if raw := c.Query("client_email"); raw != "" {
		filter.Email = &raw
	}
	if raw := c.Query("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Bad request", "invalid pageSize")
			return
		}
		filter.PageSize = &size
	}
	if raw := c.Query("pageNumber"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Bad request", "invalid pageNumber")
			return
		}
		filter.PageNumber = &page
	}

	resp, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad request", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.Created(c, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad request", "invalid client id")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad request", err.Error())
		return
	}
	if violations := validator.Validate(&req); violations != nil {
		response.ValidationError(c, violations)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad request", "invalid client id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ServiceError(c, err)
		return
	}
	response.NoContent(c)
}
