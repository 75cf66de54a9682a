package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"assignhub/internal/config"
	"assignhub/internal/middleware"
	"assignhub/internal/models"
	"assignhub/internal/repository"
	"assignhub/internal/service"
	"assignhub/pkg/validator"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *service.AuthService
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued token and the account it belongs to
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse "Registration successful"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Email or username already taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.config.App.EnableRegistration {
		respondWithError(w, http.StatusForbidden, "Registration is disabled")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			respondWithError(w, http.StatusConflict, "Email or username already taken")
			return
		}
		slog.Error("Failed to register user", "error", err)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	token, err := h.authService.GenerateTokenForUser(user)
	if err != nil {
		slog.Error("Failed to generate token", "error", err, "user_id", user.ID)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	slog.Info("User registered", "user_id", user.ID, "username", user.Username)
	JSONResponse(w, http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login handles user login
// @Summary Log in
// @Description Authenticate with email and password and receive a JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse "Login successful"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("Failed to log in user", "error", err)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, AuthResponse{Token: token, User: user})
}

// Profile returns the authenticated user's account
// @Summary Get own profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("Failed to load profile", "error", err, "user_id", userID)
		respondWithError(w, http.StatusInternalServerError, ErrMsgInternal)
		return
	}

	JSONResponse(w, http.StatusOK, user)
}
