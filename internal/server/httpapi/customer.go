package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"taproom/internal/shared/models"
)

func (r *Router) handleListCustomers(w http.ResponseWriter, req *http.Request) {
	customers, err := r.services.Customers.List(req.Context())
	if err != nil {
		r.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (r *Router) handleGetCustomer(w http.ResponseWriter, req *http.Request) {
	customer, err := r.services.Customers.Get(req.Context(), chi.URLParam(req, "customerId"))
	if err != nil {
		r.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (r *Router) handleCreateCustomer(w http.ResponseWriter, req *http.Request) {
	var dto models.CustomerDTO
	if !r.decodeJSON(w, req, &dto) {
		return
	}
	if fe := models.Validate(dto); fe != nil {
		writeValidationError(w, fe)
		return
	}
	created, err := r.services.Customers.Create(req.Context(), dto)
	if err != nil {
		r.writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", CustomerPath+"/"+created.ID)
	w.WriteHeader(http.StatusCreated)
}

func (r *Router) handleUpdateCustomer(w http.ResponseWriter, req *http.Request) {
	var dto models.CustomerDTO
	if !r.decodeJSON(w, req, &dto) {
		return
	}
	if fe := models.Validate(dto); fe != nil {
		writeValidationError(w, fe)
		return
	}
	if _, err := r.services.Customers.Update(req.Context(), chi.URLParam(req, "customerId"), dto); err != nil {
		r.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) handlePatchCustomer(w http.ResponseWriter, req *http.Request) {
	var dto models.CustomerDTO
	if !r.decodeJSON(w, req, &dto) {
		return
	}
	if fe := models.Validate(dto); fe != nil {
		writeValidationError(w, fe)
		return
	}
	if _, err := r.services.Customers.Patch(req.Context(), chi.URLParam(req, "customerId"), dto); err != nil {
		r.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) handleDeleteCustomer(w http.ResponseWriter, req *http.Request) {
	if err := r.services.Customers.Delete(req.Context(), chi.URLParam(req, "customerId")); err != nil {
		r.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
