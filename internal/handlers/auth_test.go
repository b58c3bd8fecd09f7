package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NOCTIMIND_BACK-END/internal/config"
	"NOCTIMIND_BACK-END/internal/dto"
	"NOCTIMIND_BACK-END/internal/middleware"
	"NOCTIMIND_BACK-END/internal/models"
	"NOCTIMIND_BACK-END/internal/storage"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestRegisterThenLogin(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	rr := postJSON(t, h.Register, "/api/auth/register", dto.RegisterRequest{
		Email:    "Luna@Example.com",
		Name:     "Luna",
		Password: "dreamer123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created dto.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "luna@example.com", created.User.Email) // normalized
	assert.NotEmpty(t, created.Token)

	rr = postJSON(t, h.Login, "/api/auth/login", dto.LoginRequest{
		Email:    "luna@example.com",
		Password: "dreamer123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var signed dto.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &signed))
	require.NotEmpty(t, signed.Token)

	claims, err := middleware.ValidateToken(signed.Token, testJWTConfig())
	require.NoError(t, err)
	assert.Equal(t, "luna@example.com", claims.Email)
	assert.Equal(t, "Luna", claims.Name)
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"invalid email", dto.RegisterRequest{Email: "not-an-email", Name: "A", Password: "dreamer123"}},
		{"short password", dto.RegisterRequest{Email: "a@b.com", Name: "A", Password: "abc123"}},
		{"symbols in password", dto.RegisterRequest{Email: "a@b.com", Name: "A", Password: "abc 123!!"}},
		{"missing name", dto.RegisterRequest{Email: "a@b.com", Name: "  ", Password: "dreamer123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h.Register, "/api/auth/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	req := dto.RegisterRequest{Email: "a@b.com", Name: "A", Password: "dreamer123"}
	rr := postJSON(t, h.Register, "/api/auth/register", req)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = postJSON(t, h.Register, "/api/auth/register", req)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegisterConcurrentDuplicate(t *testing.T) {
	// The insert hits the unique constraint even though the existence check
	// saw no account; the response is still the conflict, not a 500.
	repo := newFakeUserRepo()
	repo.createErr = storage.ErrDuplicate
	h := NewAuthHandler(repo, testJWTConfig())

	rr := postJSON(t, h.Register, "/api/auth/register", dto.RegisterRequest{
		Email: "a@b.com", Name: "A", Password: "dreamer123",
	})
	require.Equal(t, http.StatusConflict, rr.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Account already exists", resp.Error)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	rr := postJSON(t, h.Login, "/api/auth/login", dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "dreamer123",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "No account found for this email", resp.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	rr := postJSON(t, h.Register, "/api/auth/register", dto.RegisterRequest{
		Email: "a@b.com", Name: "A", Password: "dreamer123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = postJSON(t, h.Login, "/api/auth/login", dto.LoginRequest{
		Email: "a@b.com", Password: "wrongpass1",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Incorrect password", resp.Message)
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	h := NewAuthHandler(repo, testJWTConfig())

	rr := postJSON(t, h.Register, "/api/auth/register", dto.RegisterRequest{
		Email: "a@b.com", Name: "A", Password: "dreamer123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil), "a@b.com")
	rr = httptest.NewRecorder()
	h.GetProfile(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "A", user.Name)
}

func TestPasswordStrength(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	rr := postJSON(t, h.PasswordStrength, "/api/auth/password-strength", dto.PasswordStrengthRequest{
		Password: "abc",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var weak dto.PasswordStrengthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &weak))
	assert.Equal(t, "Weak", weak.Label)

	rr = postJSON(t, h.PasswordStrength, "/api/auth/password-strength", dto.PasswordStrengthRequest{
		Password: "correcthorseBATTERY42staple",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var strong dto.PasswordStrengthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &strong))
	assert.Equal(t, "Strong", strong.Label)
	assert.Greater(t, strong.Score, weak.Score)
}
