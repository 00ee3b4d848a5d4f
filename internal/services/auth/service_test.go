package auth

import (
	"testing"
	"time"

	"challan-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	users map[string]*models.User // by username
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserStore) GetByUsername(username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) List() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) UpdatePassword(id string, hashed string) error {
	for _, u := range f.users {
		if u.ID.String() == id {
			u.Password = hashed
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newTestService() (*Service, *fakeUserStore) {
	store := newFakeUserStore()
	return NewService(store, "test-secret", time.Hour), store
}

func TestRegisterSeedsCounter(t *testing.T) {
	service, _ := newTestService()

	user, err := service.Register("gagan", "secret123", "user", "GP")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), user.LastChallanNumber)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	_, err = service.Register("gagan", "other", "user", "GX")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	service, _ := newTestService()
	_, err := service.Register("gagan", "secret123", "user", "GP")
	require.NoError(t, err)

	token, err := service.Login("gagan", "secret123")
	require.NoError(t, err)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "gagan", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "GP", claims.BillingCode)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newTestService()
	_, err := service.Register("gagan", "secret123", "user", "GP")
	require.NoError(t, err)

	_, err = service.Login("gagan", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenGarbage(t *testing.T) {
	service, _ := newTestService()

	_, err := service.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestChangePassword(t *testing.T) {
	service, _ := newTestService()
	_, err := service.Register("gagan", "secret123", "user", "GP")
	require.NoError(t, err)

	err = service.ChangePassword("gagan", "wrong", "newpass456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = service.ChangePassword("gagan", "secret123", "newpass456")
	require.NoError(t, err)

	_, err = service.Login("gagan", "newpass456")
	assert.NoError(t, err)
}
