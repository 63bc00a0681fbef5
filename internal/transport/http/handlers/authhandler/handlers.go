package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"payguard/internal/domain/auth"
	"payguard/internal/platform/config"
	"payguard/internal/transport/http/api"
	"payguard/internal/transport/http/middleware"
)

const tokenTTL = 12 * time.Hour

// Handler authenticates the single operator account configured through the
// environment. There is no user table; this service is operated by the
// compliance team, not exposed to employees.
type Handler struct {
	Cfg config.Config
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{Cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if h.Cfg.AdminEmail == "" || h.Cfg.AdminPasswordHash == "" {
		api.Fail(w, http.StatusServiceUnavailable, "auth_unconfigured", "login is not configured", reqID)
		return
	}

	if !strings.EqualFold(payload.Email, h.Cfg.AdminEmail) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}
	if err := auth.CheckPassword(h.Cfg.AdminPasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Cfg.JWTSecret, auth.Claims{Email: h.Cfg.AdminEmail, Role: "admin"}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "could not issue token", reqID)
		return
	}

	api.Success(w, loginResponse{Token: token, ExpiresIn: int64(tokenTTL.Seconds())}, reqID)
}
