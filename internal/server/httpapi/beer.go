package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"taproom/internal/shared/models"
)

func (r *Router) handleListBeers(w http.ResponseWriter, req *http.Request) {
	// a present-but-empty beerStyle still filters, it does not list all
	var style *string
	if vals, ok := req.URL.Query()["beerStyle"]; ok && len(vals) > 0 {
		style = &vals[0]
	}
	beers, err := r.services.Beers.List(req.Context(), style)
	if err != nil {
		r.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, beers)
}

func (r *Router) handleGetBeer(w http.ResponseWriter, req *http.Request) {
	beer, err := r.services.Beers.Get(req.Context(), chi.URLParam(req, "beerId"))
	if err != nil {
		r.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, beer)
}

func (r *Router) handleCreateBeer(w http.ResponseWriter, req *http.Request) {
	var dto models.BeerDTO
	if !r.decodeJSON(w, req, &dto) {
		return
	}
	if fe := models.Validate(dto); fe != nil {
		writeValidationError(w, fe)
		return
	}
	created, err := r.services.Beers.Create(req.Context(), dto)
	if err != nil {
		r.writeServiceError(w, err)
		return
	}
	if r.logger != nil {
		r.logger.Printf("beer %s created by %s", created.ID, getSubject(req.Context()))
	}
	w.Header().Set("Location", BeerPath+"/"+created.ID)
	w.WriteHeader(http.StatusCreated)
}

func (r *Router) handleUpdateBeer(w http.ResponseWriter, req *http.Request) {
	var dto models.BeerDTO
	if !r.decodeJSON(w, req, &dto) {
		return
	}
	if fe := models.Validate(dto); fe != nil {
		writeValidationError(w, fe)
		return
	}
	if _, err := r.services.Beers.Update(req.Context(), chi.URLParam(req, "beerId"), dto); err != nil {
		r.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) handlePatchBeer(w http.ResponseWriter, req *http.Request) {
	var dto models.BeerDTO
	if !r.decodeJSON(w, req, &dto) {
		return
	}
	if fe := models.Validate(dto); fe != nil {
		writeValidationError(w, fe)
		return
	}
	if _, err := r.services.Beers.Patch(req.Context(), chi.URLParam(req, "beerId"), dto); err != nil {
		r.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) handleDeleteBeer(w http.ResponseWriter, req *http.Request) {
	if err := r.services.Beers.Delete(req.Context(), chi.URLParam(req, "beerId")); err != nil {
		r.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
