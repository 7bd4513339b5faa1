package http

import (
	"net/http"

	"github.com/dfranca/storefront/internal/domain"
	"github.com/dfranca/storefront/internal/notification"
)

type accountHandler struct {
	server *Server
	users  UserService
}

func (h *accountHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var model domain.UserModel
	if !h.server.readJSON(w, r, &model) {
		return
	}

	n := notification.New()
	h.users.Create(r.Context(), n, model)

	if h.server.writeFailure(w, n) {
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *accountHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.server.readJSON(w, r, &req) {
		return
	}

	n := notification.New()
	token := h.users.Login(r.Context(), n, req.UserName, req.Password)

	if h.server.writeFailure(w, n) {
		return
	}

	h.server.writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
