package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ainfakroun/database/repository"
	"ainfakroun/middleware"
	"ainfakroun/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAdminUserRepo struct {
	users      []models.User
	updatedID  primitive.ObjectID
	updatedSet bson.M
	updateErr  error
}

func (f *fakeAdminUserRepo) GetByEmail(email string) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeAdminUserRepo) GetByID(id primitive.ObjectID) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeAdminUserRepo) Create(user *models.User) error { return nil }

func (f *fakeAdminUserRepo) SetLastLogin(id primitive.ObjectID) error { return nil }

func (f *fakeAdminUserRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.User, error) {
	f.updatedID = id
	f.updatedSet = set
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.User{ID: id, Email: "user@example.com", Role: models.RoleEditor, IsActive: true}, nil
}

func (f *fakeAdminUserRepo) List() ([]models.User, error) { return f.users, nil }

func (f *fakeAdminUserRepo) EnsureIndexes() error { return nil }

func adminRouter(repo *fakeAdminUserRepo, callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, callerID)
		c.Set(middleware.CtxUserRole, models.RoleAdmin)
	})
	h := NewAdminHandler(repo)
	r.GET("/api/admin/users", h.ListUsersHandler)
	r.PUT("/api/admin/users/:id", h.UpdateUserHandler)
	return r
}

func TestAdminListUsers_OmitsPasswordHash(t *testing.T) {
	repo := &fakeAdminUserRepo{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "a@example.com", PasswordHash: "secret-hash", Role: models.RoleViewer},
	}}
	r := adminRouter(repo, primitive.NewObjectID().Hex())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@example.com")
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestAdminUpdateUser_PromotesRole(t *testing.T) {
	repo := &fakeAdminUserRepo{}
	r := adminRouter(repo, primitive.NewObjectID().Hex())

	target := primitive.NewObjectID()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/"+target.Hex(), strings.NewReader(`{"role":"editor"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, target, repo.updatedID)
	assert.Equal(t, "editor", repo.updatedSet["role"])
	assert.Contains(t, repo.updatedSet, "updatedAt")
	assert.NotContains(t, repo.updatedSet, "isActive")
}

func TestAdminUpdateUser_RejectsBadRole(t *testing.T) {
	r := adminRouter(&fakeAdminUserRepo{}, primitive.NewObjectID().Hex())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"role":"superuser"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUpdateUser_EmptyBodyRejected(t *testing.T) {
	r := adminRouter(&fakeAdminUserRepo{}, primitive.NewObjectID().Hex())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/"+primitive.NewObjectID().Hex(), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUpdateUser_CannotDemoteSelf(t *testing.T) {
	self := primitive.NewObjectID()
	r := adminRouter(&fakeAdminUserRepo{}, self.Hex())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/"+self.Hex(), strings.NewReader(`{"role":"viewer"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "own role")
}

func TestAdminUpdateUser_CannotDeactivateSelf(t *testing.T) {
	self := primitive.NewObjectID()
	r := adminRouter(&fakeAdminUserRepo{}, self.Hex())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/"+self.Hex(), strings.NewReader(`{"isActive":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUpdateUser_InvalidIDIsNotFound(t *testing.T) {
	r := adminRouter(&fakeAdminUserRepo{}, primitive.NewObjectID().Hex())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/not-hex", strings.NewReader(`{"role":"editor"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUpdateUser_UnknownUser(t *testing.T) {
	repo := &fakeAdminUserRepo{updateErr: repository.ErrNotFound}
	r := adminRouter(repo, primitive.NewObjectID().Hex())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"role":"editor"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
