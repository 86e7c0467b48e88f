package auth

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"ainfakroun/database/repository"
	userRepo "ainfakroun/database/repository/user"
	"ainfakroun/models"
	"ainfakroun/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, credential authentication and sign-out.
type AuthService interface {
	Register(email, password, name string) (*models.User, error)
	Authenticate(email, password string) (*AuthResponse, error)
	SignOut(token string) error
	GetUser(id string) (*models.User, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string            `json:"token"`
	User  AuthenticatedUser `json:"user"`
}

// AuthenticatedUser is the identity subset safe to hand to clients.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// VerifyPasswordComplexity checks the registration password rules: at least
// 8 characters with an uppercase letter, a lowercase letter and a digit.
func VerifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
	)
	if !hasMinLen || !hasUpper || !hasLower || !hasNumber {
		return ErrWeakPassword
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new viewer account. The role is never taken from the
// request; promotion is an administrative operation.
func (s *DefaultAuthService) Register(email, password, name string) (*models.User, error) {
	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if err := VerifyPasswordComplexity(password); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(name)) < 2 {
		return nil, ErrNameTooShort
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         models.RoleViewer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(user); err != nil {
		// The unique index wins races the pre-check cannot see.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and issues a session token. The
// invalid-credentials failure is identical for unknown email and wrong
// password.
func (s *DefaultAuthService) Authenticate(email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.Repo.SetLastLogin(user.ID); err != nil {
		// Login still succeeds; the timestamp is advisory.
		utils.GetLogger().Warn("Authenticate: failed to record last login", zap.Error(err))
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, err
	}
	return &AuthResponse{
		Token: token,
		User: AuthenticatedUser{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

// SignOut places the token on the denylist for its remaining lifetime.
// Without a configured denylist this is a no-op and the token ages out.
func (s *DefaultAuthService) SignOut(token string) error {
	session, err := utils.ParseSession(token)
	if err != nil {
		// An invalid token needs no revocation.
		return nil
	}
	return utils.RevokeToken(utils.HashToken(token), time.Until(session.ExpiresAt))
}

// GetUser fetches the account behind a session for introspection.
func (s *DefaultAuthService) GetUser(id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.Repo.GetByID(oid)
}
