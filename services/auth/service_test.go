package auth

import (
	"testing"

	"ainfakroun/database/repository"
	"ainfakroun/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users        map[string]*models.User
	createErr    error
	lastLoginIDs []primitive.ObjectID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) SetLastLogin(id primitive.ObjectID) error {
	f.lastLoginIDs = append(f.lastLoginIDs, id)
	return nil
}

func (f *fakeUserRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) List() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) EnsureIndexes() error { return nil }

func addUser(repo *fakeUserRepo, email, password, role string, active bool) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &models.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test User",
		Role:         role,
		IsActive:     active,
	}
	repo.users[email] = u
	return u
}

func TestRegister_NewAccountIsViewer(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultAuthService{Repo: repo}

	user, err := svc.Register("New.User@Example.COM", "Passw0rdX", "Karim")
	require.NoError(t, err)

	assert.Equal(t, "new.user@example.com", user.Email)
	assert.Equal(t, models.RoleViewer, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Passw0rdX", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Passw0rdX")))
}

func TestRegister_Validation(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	_, err := svc.Register("not-an-email", "Passw0rdX", "Karim")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register("a@b.com", "short", "Karim")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register("a@b.com", "alllowercase1", "Karim")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register("a@b.com", "NOLOWERCASE1", "Karim")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register("a@b.com", "NoDigitsHere", "Karim")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register("a@b.com", "Passw0rdX", " K ")
	assert.ErrorIs(t, err, ErrNameTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(repo, "taken@example.com", "Passw0rdX", models.RoleViewer, true)
	svc := &DefaultAuthService{Repo: repo}

	_, err := svc.Register("taken@example.com", "Passw0rdX", "Karim")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newFakeUserRepo()
	user := addUser(repo, "editor@example.com", "Passw0rdX", models.RoleEditor, true)
	svc := &DefaultAuthService{Repo: repo}

	resp, err := svc.Authenticate("Editor@Example.com", "Passw0rdX")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID.Hex(), resp.User.ID)
	assert.Equal(t, models.RoleEditor, resp.User.Role)
	require.Len(t, repo.lastLoginIDs, 1)
	assert.Equal(t, user.ID, repo.lastLoginIDs[0])
}

func TestAuthenticate_SameFailureForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(repo, "known@example.com", "Passw0rdX", models.RoleViewer, true)
	svc := &DefaultAuthService{Repo: repo}

	_, errUnknown := svc.Authenticate("unknown@example.com", "Passw0rdX")
	_, errWrongPw := svc.Authenticate("known@example.com", "WrongPass1")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	addUser(repo, "disabled@example.com", "Passw0rdX", models.RoleViewer, false)
	svc := &DefaultAuthService{Repo: repo}

	_, err := svc.Authenticate("disabled@example.com", "Passw0rdX")
	assert.ErrorIs(t, err, ErrAccountDisabled)
	assert.Empty(t, repo.lastLoginIDs)
}

func TestGetUser_InvalidIDIsNotFound(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	_, err := svc.GetUser("not-hex")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSignOut_InvalidTokenIsNoop(t *testing.T) {
	svc := &DefaultAuthService{Repo: newFakeUserRepo()}

	assert.NoError(t, svc.SignOut("garbage-token"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@EXAMPLE.com "))
}
