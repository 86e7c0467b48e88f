package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ainfakroun/database/repository"
	"ainfakroun/models"
	"ainfakroun/services/directory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessService struct {
	lastQuery  directory.BusinessListQuery
	lastInput  directory.BusinessCreateInput
	listResult []models.Business
	pagination directory.Pagination
	err        error
}

func (f *fakeBusinessService) List(q directory.BusinessListQuery) ([]models.Business, directory.Pagination, error) {
	f.lastQuery = q
	return f.listResult, f.pagination, f.err
}

func (f *fakeBusinessService) Get(id string) (*models.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Business{Name: "Cafe El Nour"}, nil
}

func (f *fakeBusinessService) Create(in directory.BusinessCreateInput) (*models.Business, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Business{Name: in.Name}, nil
}

func (f *fakeBusinessService) Update(id string, in directory.BusinessUpdateInput) (*models.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Business{}, nil
}

func (f *fakeBusinessService) Delete(id string) error { return f.err }

func businessRouter(svc directory.BusinessService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBusinessHandler(svc)
	r.GET("/api/businesses", h.ListHandler)
	r.GET("/api/businesses/:id", h.GetHandler)
	r.POST("/api/businesses", h.CreateHandler)
	r.DELETE("/api/businesses/:id", h.DeleteHandler)
	return r
}

func TestBusinessList_QueryParams(t *testing.T) {
	svc := &fakeBusinessService{pagination: directory.Pagination{Page: 2, Limit: 5, Total: 12, TotalPages: 3}}
	r := businessRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses?search=cafe&category=restaurant&page=2&limit=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cafe", svc.lastQuery.Search)
	assert.Equal(t, "restaurant", svc.lastQuery.Category)
	assert.Equal(t, int64(2), svc.lastQuery.Page)
	assert.Equal(t, int64(5), svc.lastQuery.Limit)

	var body struct {
		Data       []models.Business   `json:"data"`
		Pagination directory.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Pagination.TotalPages)
}

func TestBusinessGet_NotFound(t *testing.T) {
	svc := &fakeBusinessService{err: repository.ErrNotFound}
	r := businessRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/64f1a2b3c4d5e6f708192a3b", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Business not found"}`, w.Body.String())
}

func TestBusinessGet_StoreFailure(t *testing.T) {
	svc := &fakeBusinessService{err: errors.New("connection reset")}
	r := businessRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/64f1a2b3c4d5e6f708192a3b", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch business")
}

func TestBusinessCreate_Valid(t *testing.T) {
	svc := &fakeBusinessService{}
	r := businessRouter(svc)

	payload := `{"name":"Cafe El Nour","address":"Place du Marché","category":"restaurant"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Cafe El Nour", svc.lastInput.Name)
	assert.Contains(t, w.Body.String(), `"data"`)
}

func TestBusinessCreate_MissingRequiredFields(t *testing.T) {
	svc := &fakeBusinessService{}
	r := businessRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses", strings.NewReader(`{"name":"No Address"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBusinessCreate_RejectsBadCategory(t *testing.T) {
	svc := &fakeBusinessService{}
	r := businessRouter(svc)

	payload := `{"name":"X","address":"Y","category":"spaceport"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/businesses", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBusinessDelete_Success(t *testing.T) {
	svc := &fakeBusinessService{}
	r := businessRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/businesses/64f1a2b3c4d5e6f708192a3b", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Business deleted successfully"}`, w.Body.String())
}
