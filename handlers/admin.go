package handlers

import (
	"errors"
	"net/http"
	"time"

	"ainfakroun/database/repository"
	userRepo "ainfakroun/database/repository/user"
	"ainfakroun/middleware"
	"ainfakroun/models"
	"ainfakroun/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler serves user administration. Only admins reach these routes;
// the role gate lives in the router.
type AdminHandler struct {
	Repo userRepo.UserRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(repo userRepo.UserRepository) *AdminHandler {
	return &AdminHandler{Repo: repo}
}

type adminUserView struct {
	ID        string     `json:"_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toAdminView(u models.User) adminUserView {
	return adminUserView{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Repo.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}
	views := make([]adminUserView, 0, len(users))
	for _, u := range users {
		views = append(views, toAdminView(u))
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

type adminUserUpdate struct {
	Role     *string `json:"role" binding:"omitempty,oneof=viewer editor admin"`
	IsActive *bool   `json:"isActive"`
}

// UpdateUserHandler handles PUT /api/admin/users/:id. Admins may change a
// user's role or active flag, but cannot demote or deactivate themselves.
func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input adminUserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Role == nil && input.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if c.GetString(middleware.CtxUserID) == id.Hex() {
		if input.Role != nil && *input.Role != models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot change your own role"})
			return
		}
		if input.IsActive != nil && !*input.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot deactivate your own account"})
			return
		}
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Role != nil {
		set["role"] = *input.Role
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	user, err := h.Repo.UpdateByID(id, set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toAdminView(*user)})
}
