package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dfranca/storefront/internal/domain"
	"github.com/dfranca/storefront/internal/notification"
)

type productHandler struct {
	server   *Server
	products ProductService
}

func (h *productHandler) handleGetAll(w http.ResponseWriter, r *http.Request) {
	n := notification.New()
	models := h.products.GetAll(r.Context(), n)

	if h.server.writeFailure(w, n) {
		return
	}

	h.server.writeJSON(w, http.StatusOK, models)
}

func (h *productHandler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	n := notification.New()
	model := h.products.GetByID(r.Context(), n, id)

	if h.server.writeFailure(w, n) {
		return
	}

	h.server.writeJSON(w, http.StatusOK, model)
}

func (h *productHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var model domain.ProductModel
	if !h.server.readJSON(w, r, &model) {
		return
	}

	n := notification.New()
	h.products.Create(r.Context(), n, model)

	if h.server.writeFailure(w, n) {
		return
	}

	h.server.writeJSON(w, http.StatusCreated, model)
}

func (h *productHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var model domain.ProductModel
	if !h.server.readJSON(w, r, &model) {
		return
	}

	n := notification.New()
	h.products.Update(r.Context(), n, model)

	if h.server.writeFailure(w, n) {
		return
	}

	h.server.writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Product %s updated successfully.", model.Name),
	})
}

func (h *productHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	n := notification.New()
	h.products.Delete(r.Context(), n, id)

	if h.server.writeFailure(w, n) {
		return
	}

	h.server.writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Product %s deleted successfully.", id),
	})
}

func (h *productHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.server.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id"})
		return uuid.Nil, false
	}
	return id, true
}
