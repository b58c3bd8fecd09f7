package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"NOCTIMIND_BACK-END/internal/auth"
	"NOCTIMIND_BACK-END/internal/config"
	"NOCTIMIND_BACK-END/internal/dto"
	"NOCTIMIND_BACK-END/internal/middleware"
	"NOCTIMIND_BACK-END/internal/models"
	"NOCTIMIND_BACK-END/internal/storage"
	"NOCTIMIND_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users storage.UserRepository
	jwt   *config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users storage.UserRepository, jwt *config.JWTConfig) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt}
}

// Register handles account signup
// @Summary Register a new account
// @Description Create a new account with email, name, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Signup data"
// @Success 201 {object} dto.AuthResponse "Account created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Account already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	email := auth.NormalizeEmail(req.Email)
	if !auth.ValidateEmail(email) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email", "Please enter a valid email address")
		return
	}
	if err := auth.ValidatePasswordPolicy(req.Password); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid password", err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid name", "Please enter your name")
		return
	}

	// Check if the email already has an account
	if _, err := h.users.GetByEmail(r.Context(), email); err == nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Account already exists", "An account with this email already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to check account", err.Error())
		return
	}

	hash, salt, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		// The existence check above races with concurrent signups; the unique
		// constraint is the authority.
		if errors.Is(err, storage.ErrDuplicate) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Account already exists", "An account with this email already exists")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create account", err.Error())
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Name, h.jwt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		User:    toUserResponse(user),
		Token:   token,
		Message: "Account created successfully",
	})
}

// Login handles sign-in
// @Summary Sign in
// @Description Authenticate with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Sign-in credentials"
// @Success 200 {object} dto.AuthResponse "Signed in successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	email := auth.NormalizeEmail(req.Email)
	if !auth.ValidateEmail(email) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email", "Invalid email format")
		return
	}
	if err := auth.ValidatePasswordPolicy(req.Password); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid password", err.Error())
		return
	}

	// "No account" and "wrong password" are deliberately distinguished in
	// messaging; the product favors usability over hiding account existence.
	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "No account", "No account found for this email")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up account", err.Error())
		return
	}

	if !auth.VerifyPassword(req.Password, user.Salt, user.PasswordHash) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Wrong password", "Incorrect password")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Name, h.jwt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User:    toUserResponse(user),
		Token:   token,
		Message: "Signed in successfully",
	})
}

// GetProfile returns the current session's account
// @Summary Get profile
// @Description Get the currently authenticated account
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Account not found", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toUserResponse(user))
}

// PasswordStrength scores a candidate password for the signup form
// @Summary Score password strength
// @Description Rate a candidate password 0-100 with a Weak/Fair/Strong label
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.PasswordStrengthRequest true "Candidate password"
// @Success 200 {object} dto.PasswordStrengthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /api/auth/password-strength [post]
func (h *AuthHandler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.PasswordStrengthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	score, label := auth.StrengthScore(req.Password)
	utils.WriteJSONResponse(w, http.StatusOK, dto.PasswordStrengthResponse{Score: score, Label: label})
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
