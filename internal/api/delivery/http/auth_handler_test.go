package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memUserRepository struct {
	users  []*entity.User
	nextID uint
}

func (m *memUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return nil
}

func (m *memUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newAuthTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)

	svc := service.NewAuthService(&memUserRepository{}, testSecret, time.Hour, log)
	e := echo.New()
	NewAuthHandler(svc, log).RegisterRoutes(e)
	return e
}

func TestPing(t *testing.T) {
	e := newAuthTestServer(t)

	rec := doJSON(e, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterLoginFlow(t *testing.T) {
	e := newAuthTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	// The password hash never leaks into the response.
	assert.NotContains(t, rec.Body.String(), "password")

	// Duplicate registration conflicts.
	rec = doJSON(e, http.MethodPost, "/register", "",
		`{"username":"alice","email":"alice@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login with the right password yields a token.
	rec = doJSON(e, http.MethodPost, "/login", "",
		`{"username":"alice","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.NotEmpty(t, login.AccessToken)

	// Wrong password and unknown user both answer 401 with the same body.
	wrong := doJSON(e, http.MethodPost, "/login", "", `{"username":"alice","password":"nope"}`)
	unknown := doJSON(e, http.MethodPost, "/login", "", `{"username":"mallory","password":"s3cret"}`)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	e := newAuthTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing username", body: `{"email":"a@b.c","password":"pw"}`},
		{name: "missing email", body: `{"username":"alice","password":"pw"}`},
		{name: "missing password", body: `{"username":"alice","email":"a@b.c"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
