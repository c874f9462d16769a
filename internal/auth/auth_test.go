package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treechess/backend/internal/store"
)

type fakeUserStore struct {
	byUsername map[string]*store.User
	byID       map[string]*store.User
	nextID     int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: map[string]*store.User{}, byID: map[string]*store.User{}}
}

func (f *fakeUserStore) Create(username, passwordHash string) (*store.User, error) {
	if _, exists := f.byUsername[username]; exists {
		return nil, store.ErrUsernameExists
	}
	f.nextID++
	u := &store.User{ID: "u" + string(rune('0'+f.nextID)), Username: username, PasswordHash: passwordHash}
	f.byUsername[username] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserStore) GetByUsername(username string) (*store.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(id string) (*store.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func newTestService() (*Service, *fakeUserStore) {
	users := newFakeUserStore()
	return NewService(users, "test-secret", time.Hour), users
}

func TestRegister_RejectsInvalidUsername(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("a", "longenoughpassword")
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("validname", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_IssuesValidatableToken(t *testing.T) {
	svc, _ := newTestService()
	resp, err := svc.Register("validname", "longenoughpassword")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	sub, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, sub)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("validname", "longenoughpassword")
	require.NoError(t, err)
	_, err = svc.Register("validname", "anotherlongpassword")
	assert.ErrorIs(t, err, store.ErrUsernameExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("validname", "longenoughpassword")
	require.NoError(t, err)

	_, err = svc.Login("validname", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Login("nosuchuser", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Register("validname", "longenoughpassword")
	require.NoError(t, err)

	resp, err := svc.Login("validname", "longenoughpassword")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	svc, _ := newTestService()
	resp, err := svc.Register("validname", "longenoughpassword")
	require.NoError(t, err)

	other := NewService(newFakeUserStore(), "different-secret", time.Hour)
	_, err = other.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetUserByID(t *testing.T) {
	svc, _ := newTestService()
	resp, err := svc.Register("validname", "longenoughpassword")
	require.NoError(t, err)

	u, err := svc.GetUserByID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "validname", u.Username)
}
