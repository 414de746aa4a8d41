package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"taproom/internal/server/auth"
	"taproom/internal/server/service"
)

const (
	BeerPath       = "/api/v3/beer"
	BeerIDPath     = BeerPath + "/{beerId}"
	CustomerPath   = "/api/v3/customer"
	CustomerIDPath = CustomerPath + "/{customerId}"
)

type Router struct {
	services        *service.Services
	tokens          *auth.Tokens
	logger          *log.Logger
	maxRequestBytes int64
}

func NewRouter(services *service.Services, tokens *auth.Tokens, logger *log.Logger, maxRequestBytes int64) http.Handler {
	r := &Router{services: services, tokens: tokens, logger: logger, maxRequestBytes: maxRequestBytes}
	mux := chi.NewRouter()

	mux.Get("/health", r.handleHealth)

	mux.Group(func(pr chi.Router) {
		pr.Use(r.authMiddleware)

		pr.Get(BeerPath, r.handleListBeers)
		pr.Get(BeerIDPath, r.handleGetBeer)
		pr.Post(BeerPath, r.handleCreateBeer)
		pr.Put(BeerIDPath, r.handleUpdateBeer)
		pr.Patch(BeerIDPath, r.handlePatchBeer)
		pr.Delete(BeerIDPath, r.handleDeleteBeer)

		pr.Get(CustomerPath, r.handleListCustomers)
		pr.Get(CustomerIDPath, r.handleGetCustomer)
		pr.Post(CustomerPath, r.handleCreateCustomer)
		pr.Put(CustomerIDPath, r.handleUpdateCustomer)
		pr.Patch(CustomerIDPath, r.handlePatchCustomer)
		pr.Delete(CustomerIDPath, r.handleDeleteCustomer)
	})

	return mux
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
