package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zatekoja/dermrate/internal/api/middleware"
	"github.com/zatekoja/dermrate/internal/auth"
	"github.com/zatekoja/dermrate/internal/domain/entities"
)

// UserService defines the account operations used by the handler.
type UserService interface {
	Register(ctx context.Context, username, password string) (*entities.User, error)
	Authenticate(ctx context.Context, username, password string) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

// AuthHandler handles signup, login, and authenticated identity lookups.
type AuthHandler struct {
	users      UserService
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users UserService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{users: users, jwtManager: jwtManager}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /api/v1/users
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.users.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.users.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me handles GET /api/v1/users/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}
