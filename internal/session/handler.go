package session

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "roomly/pkg/errors"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	manager *Manager
	log     *logger.Logger
}

func NewHandler(manager *Manager, log *logger.Logger) *Handler {
	return &Handler{
		manager: manager,
		log:     log,
	}
}

// Login and Register behave identically: any email/password shape earns a
// token. Credential verification is out of scope for this service.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.issueToken(w, r, "Login")
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.issueToken(w, r, "Register")
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, op string) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Code:    "BAD_REQUEST",
			Message: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", op, "error", writeErr)
		}
		return
	}

	if creds.Email == "" || creds.Password == "" {
		err := apperrors.Validation("Email and password are required", nil)
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", op, "error", writeErr)
		}
		return
	}

	token, err := h.manager.Issue(creds.Email)
	if err != nil {
		h.log.Error("Failed to issue session token", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to create session", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", op, "error", writeErr)
		}
		return
	}

	h.log.Info("Session issued", "operation", op)
	if err := httputil.WriteSuccess(w, tokenResponse{Token: token}); err != nil {
		h.log.Error("failed to write success response", "handler", op, "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/login", h.Login)
	router.POST("/api/v1/auth/register", h.Register)
}
