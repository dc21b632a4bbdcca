package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymoffice/internal/database"
)

type errorBody struct {
	Message         string    `json:"message"`
	DetailedMessage string    `json:"detailedMessage"`
	ErrorTime       time.Time `json:"errorTime"`
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Client{}))

	handler := NewHandler(NewService(NewRepository(db)))

	router := gin.New()
	base := router.Group("/gym")
	RegisterRoutes(base, handler)

	return router, db
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateClient(t *testing.T) {
	router, db := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/gym/client/create", CreateClientRequest{
		FirstName: "Anna",
		LastName:  "Petrova",
		Phone:     "+1-202-555-0110",
		Email:     "anna@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var payload ClientResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotZero(t, payload.ID)
	require.False(t, payload.RegistrationDate.IsZero())

	var stored Client
	require.NoError(t, db.First(&stored, payload.ID).Error)
	require.Equal(t, "anna@example.com", stored.Email)
}

func TestCreateClientValidation(t *testing.T) {
	router, _ := setupRouter(t)

	// missing required last_name
	resp := performRequest(router, http.MethodPost, "/gym/client/create", map[string]any{
		"first_name": "Anna",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Bad request", payload.Message)
	require.NotEmpty(t, payload.DetailedMessage)
	require.False(t, payload.ErrorTime.IsZero())
}

func TestCreateClientBlankName(t *testing.T) {
	router, db := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/gym/client/create", map[string]any{
		"first_name": "   ",
		"last_name":  "Petrova",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Bad request", payload.Message)

	var count int64
	require.NoError(t, db.Model(&Client{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGetClientNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/gym/client/get/42", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var payload errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Entity not found", payload.Message)
	require.Contains(t, payload.DetailedMessage, "42")
}

func TestUpdateClientPartial(t *testing.T) {
	router, db := setupRouter(t)

	c := Client{FirstName: "Anna", LastName: "Petrova", Phone: "+1-202-555-0110", Email: "anna@example.com", RegistrationDate: time.Now()}
	require.NoError(t, db.Create(&c).Error)

	resp := performRequest(router, http.MethodPut, fmt.Sprintf("/gym/client/update/%d", c.ID), map[string]any{
		"email": "anna.petrova@example.com",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated Client
	require.NoError(t, db.First(&updated, c.ID).Error)
	require.Equal(t, "anna.petrova@example.com", updated.Email)
	require.Equal(t, "Anna", updated.FirstName)
	require.Equal(t, "+1-202-555-0110", updated.Phone)
}

func TestDeleteClient(t *testing.T) {
	router, db := setupRouter(t)

	c := Client{FirstName: "Anna", LastName: "Petrova", RegistrationDate: time.Now()}
	require.NoError(t, db.Create(&c).Error)

	resp := performRequest(router, http.MethodDelete, fmt.Sprintf("/gym/client/delete/%d", c.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	var count int64
	require.NoError(t, db.Model(&Client{}).Count(&count).Error)
	require.Zero(t, count)

	// a second delete reports not found
	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/gym/client/delete/%d", c.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSearchFilter(t *testing.T) {
	router, db := setupRouter(t)

	for i := 1; i <= 15; i++ {
		c := Client{
			FirstName:        "Client",
			LastName:         fmt.Sprintf("Number%d", i),
			Phone:            fmt.Sprintf("+1-202-555-02%02d", i),
			Email:            fmt.Sprintf("client%d@example.com", i),
			RegistrationDate: time.Now(),
		}
		require.NoError(t, db.Create(&c).Error)
	}

	// default page size caps at 10
	resp := performRequest(router, http.MethodGet, "/gym/client/search/filter", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var page []ClientResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page, 10)

	// second page holds the remainder
	resp = performRequest(router, http.MethodGet, "/gym/client/search/filter?pageNumber=1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	page = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page, 5)

	// equality filter on email
	resp = performRequest(router, http.MethodGet, "/gym/client/search/filter?client_email=client7@example.com", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	page = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page, 1)
	require.Equal(t, "client7@example.com", page[0].Email)

	// no match is an empty list, not an error
	resp = performRequest(router, http.MethodGet, "/gym/client/search/filter?client_email=nobody@example.com", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	page = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Empty(t, page)

	// malformed pageSize is rejected before hitting the service
	resp = performRequest(router, http.MethodGet, "/gym/client/search/filter?pageSize=abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
