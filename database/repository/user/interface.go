package userRepo

import (
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines persistence operations for dashboard accounts.
type UserRepository interface {
	// GetByEmail returns the user with the given (already lowercased)
	// email, or repository.ErrNotFound.
	GetByEmail(email string) (*models.User, error)
	GetByID(id primitive.ObjectID) (*models.User, error)
	// Create inserts a new user; a unique-index violation on email is
	// reported as repository.ErrDuplicateEmail.
	Create(user *models.User) error
	// SetLastLogin records a successful authentication.
	SetLastLogin(id primitive.ObjectID) error
	// UpdateByID applies an administrative partial update (role, isActive)
	// and returns the updated user.
	UpdateByID(id primitive.ObjectID, set bson.M) (*models.User, error)
	List() ([]models.User, error)
	EnsureIndexes() error
}
