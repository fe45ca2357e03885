package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bag-arunava-7/staffhub-payroll-go/internal/gateway/ems"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/handler/http/response"
	"github.com/bag-arunava-7/staffhub-payroll-go/internal/pkg/session"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	gateway  *ems.Client
	sessions session.Store
}

func NewAuthHandler(gateway *ems.Client, sessions session.Store) AuthHandler {
	return &authHandlerImpl{gateway: gateway, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionData struct {
	Authenticated bool   `json:"authenticated"`
	ExpiresAt     string `json:"expiresAt,omitempty"`
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	token, err := h.gateway.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.sessions.Init(token)

	response.SuccessWithMessage(w, "Logged in", h.sessionData())
}

func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Teardown()
	response.SuccessWithMessage(w, "Logged out", nil)
}

func (h *authHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.sessionData())
}

func (h *authHandlerImpl) sessionData() sessionData {
	data := sessionData{}
	if _, ok := h.sessions.Token(); ok {
		data.Authenticated = true
	}
	if expiresAt, ok := h.sessions.ExpiresAt(); ok {
		data.ExpiresAt = expiresAt.Format(time.RFC3339)
	}
	return data
}
