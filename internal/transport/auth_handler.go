package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace-be/internal/logger"
	"marketplace-be/internal/user"
	"marketplace-be/internal/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type AuthHandler struct {
	svc user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	ShopName string `json:"shop_name"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

// loginRequest accepts {identifier, password} and, for older clients,
// {email, password}.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type loginResponse struct {
	Message string           `json:"message"`
	User    *user.PublicUser `json:"user"`
	Token   string           `json:"token,omitempty"`
}

type profileResponse struct {
	User *user.PublicUser `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.svc.Register(r.Context(), user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
		ShopName: req.ShopName,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidRole):
			utils.WriteJSONMessage(w, "Invalid role", http.StatusBadRequest)
		case user.IsValidation(err):
			utils.WriteJSONMessage(w, "Missing fields", http.StatusBadRequest)
		case errors.Is(err, user.ErrUserExists):
			utils.WriteJSONMessage(w, "User already exists", http.StatusConflict)
		default:
			logger.FromCtx(r.Context()).Error("register failed", zap.Error(err))
			utils.WriteJSONMessage(w, "Registration failed", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, registerResponse{
		Message: "User registered successfully",
		UserID:  id,
	})
}

// Login handles POST /api/auth/login. Unknown identifiers and wrong
// passwords produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}

	token, u, err := h.svc.Login(r.Context(), identifier, req.Password)
	if err != nil {
		switch {
		case user.IsValidation(err):
			utils.WriteJSONMessage(w, "All fields required", http.StatusBadRequest)
		case errors.Is(err, user.ErrInvalidCredentials):
			utils.WriteJSONMessage(w, "Invalid credentials", http.StatusUnauthorized)
		default:
			logger.FromCtx(r.Context()).Error("login failed", zap.Error(err))
			utils.WriteJSONMessage(w, "Login failed", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		User:    u,
		Token:   token,
	})
}

// Me handles GET /api/auth/me for a request authenticated by AuthMiddleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.svc.GetProfile(r.Context(), int(id))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		logger.FromCtx(r.Context()).Error("profile lookup failed", zap.Uint("user_id", id), zap.Error(err))
		utils.WriteJSONMessage(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profileResponse{User: u})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.WriteJSONMessage(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
